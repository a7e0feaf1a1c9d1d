// Package handlers provides HTTP request handlers for the CX Insights API.
package handlers

import (
	"net/http"
	"runtime"
	"time"

	"lerian-cx-insights/internal/api/response"
	"lerian-cx-insights/internal/config"
)

// HealthHandler provides health check functionality.
type HealthHandler struct {
	config    *config.Config
	startTime time.Time
}

// HealthStatus represents the health check response structure.
type HealthStatus struct {
	Status    string           `json:"status"`
	Service   string           `json:"service"`
	Version   string           `json:"version"`
	Uptime    string           `json:"uptime"`
	Timestamp string           `json:"timestamp"`
	Checks    map[string]Check `json:"checks"`
	System    SystemInfo       `json:"system"`
}

// Check represents an individual health check result.
type Check struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// SystemInfo represents runtime information.
type SystemInfo struct {
	GoVersion    string `json:"go_version"`
	NumGoroutine int    `json:"num_goroutine"`
	MemoryMB     uint64 `json:"memory_mb"`
}

// NewHealthHandler creates a new health check handler.
func NewHealthHandler(cfg *config.Config) *HealthHandler {
	return &HealthHandler{
		config:    cfg,
		startTime: time.Now(),
	}
}

// Handle processes health check requests.
func (h *HealthHandler) Handle(w http.ResponseWriter, _ *http.Request) {
	checks := map[string]Check{
		"config": h.checkConfiguration(),
		"memory": h.checkMemory(),
	}

	status := "healthy"
	statusCode := http.StatusOK
	for _, check := range checks {
		if check.Status != "healthy" {
			status = check.Status
		}
	}
	if status == "unhealthy" {
		statusCode = http.StatusServiceUnavailable
	}

	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	response.WriteSuccessStatus(w, statusCode, HealthStatus{
		Status:    status,
		Service:   "lerian-cx-insights",
		Version:   "1.0.0",
		Uptime:    time.Since(h.startTime).Round(time.Second).String(),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Checks:    checks,
		System: SystemInfo{
			GoVersion:    runtime.Version(),
			NumGoroutine: runtime.NumGoroutine(),
			MemoryMB:     m.Alloc / 1024 / 1024,
		},
	})
}

// checkConfiguration validates configuration health.
func (h *HealthHandler) checkConfiguration() Check {
	if err := h.config.Validate(); err != nil {
		return Check{
			Status:  "warning",
			Message: "Configuration validation warning: " + err.Error(),
		}
	}
	return Check{Status: "healthy", Message: "Configuration valid"}
}

// checkMemory performs a memory usage health check.
func (h *HealthHandler) checkMemory() Check {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	if m.Alloc/1024/1024 > 500 {
		return Check{Status: "warning", Message: "High memory usage"}
	}
	return Check{Status: "healthy", Message: "Memory usage normal"}
}
