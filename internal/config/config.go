// Package config loads and validates the CX Insights service configuration
// from defaults, an optional YAML file, and environment variable overrides.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration.
type Config struct {
	Server    ServerConfig    `json:"server" yaml:"server"`
	Detection DetectionConfig `json:"detection" yaml:"detection"`
	Sentiment SentimentConfig `json:"sentiment" yaml:"sentiment"`
	Logging   LoggingConfig   `json:"logging" yaml:"logging"`
}

// ServerConfig represents HTTP server configuration.
type ServerConfig struct {
	Host         string `json:"host" yaml:"host"`
	Port         int    `json:"port" yaml:"port"`
	ReadTimeout  int    `json:"read_timeout_seconds" yaml:"read_timeout_seconds"`
	WriteTimeout int    `json:"write_timeout_seconds" yaml:"write_timeout_seconds"`
}

// DetectionConfig represents pattern detection engine thresholds.
type DetectionConfig struct {
	// MinBatchSize is the smallest interaction batch the aggregator will
	// analyze; smaller batches yield an empty pattern list.
	MinBatchSize int `json:"min_batch_size" yaml:"min_batch_size"`
	// ConfidenceFloor is the cutoff below which a detected signal is not
	// surfaced as a pattern.
	ConfidenceFloor float64 `json:"confidence_floor" yaml:"confidence_floor"`
}

// SentimentConfig represents sentiment classifier configuration.
type SentimentConfig struct {
	MaxTextLength  int `json:"max_text_length" yaml:"max_text_length"`
	TruncateLength int `json:"truncate_length" yaml:"truncate_length"`
	BatchSize      int `json:"batch_size" yaml:"batch_size"`
	// SLAMillis is the prediction latency budget; slower predictions are
	// logged as warnings.
	SLAMillis int `json:"sla_millis" yaml:"sla_millis"`
}

// LoggingConfig represents logging configuration.
type LoggingConfig struct {
	Level  string `json:"level" yaml:"level"`
	Format string `json:"format" yaml:"format"`
}

// DefaultConfig returns the default configuration. Detection defaults match
// the documented engine thresholds.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:         "localhost",
			Port:         8080,
			ReadTimeout:  30,
			WriteTimeout: 30,
		},
		Detection: DetectionConfig{
			MinBatchSize:    5,
			ConfidenceFloor: 0.7,
		},
		Sentiment: SentimentConfig{
			MaxTextLength:  10000,
			TruncateLength: 1000,
			BatchSize:      32,
			SLAMillis:      500,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// LoadConfig loads configuration from environment variables over defaults.
// A .env file is honored when present.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		// Don't fail if .env doesn't exist
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("error loading .env file: %w", err)
		}
	}

	config := DefaultConfig()
	loadFromEnv(config)

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// LoadFromFile loads configuration from a YAML file over defaults, then
// applies environment variable overrides on top.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path is operator-supplied
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	loadFromEnv(config)

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// loadFromEnv loads configuration from environment variables.
func loadFromEnv(config *Config) {
	loadServerConfig(config)
	loadDetectionConfig(config)
	loadSentimentConfig(config)
	loadLoggingConfig(config)
}

func loadServerConfig(config *Config) {
	if host := os.Getenv("CX_INSIGHTS_HOST"); host != "" {
		config.Server.Host = host
	}
	if port := os.Getenv("CX_INSIGHTS_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			config.Server.Port = p
		}
	}
	if readTimeout := os.Getenv("CX_INSIGHTS_READ_TIMEOUT_SECONDS"); readTimeout != "" {
		if rt, err := strconv.Atoi(readTimeout); err == nil {
			config.Server.ReadTimeout = rt
		}
	}
	if writeTimeout := os.Getenv("CX_INSIGHTS_WRITE_TIMEOUT_SECONDS"); writeTimeout != "" {
		if wt, err := strconv.Atoi(writeTimeout); err == nil {
			config.Server.WriteTimeout = wt
		}
	}
}

func loadDetectionConfig(config *Config) {
	if minBatch := os.Getenv("CX_INSIGHTS_MIN_BATCH_SIZE"); minBatch != "" {
		if mb, err := strconv.Atoi(minBatch); err == nil {
			config.Detection.MinBatchSize = mb
		}
	}
	if floor := os.Getenv("CX_INSIGHTS_CONFIDENCE_FLOOR"); floor != "" {
		if f, err := strconv.ParseFloat(floor, 64); err == nil {
			config.Detection.ConfidenceFloor = f
		}
	}
}

func loadSentimentConfig(config *Config) {
	if maxLength := os.Getenv("CX_INSIGHTS_SENTIMENT_MAX_TEXT_LENGTH"); maxLength != "" {
		if ml, err := strconv.Atoi(maxLength); err == nil {
			config.Sentiment.MaxTextLength = ml
		}
	}
	if truncateLength := os.Getenv("CX_INSIGHTS_SENTIMENT_TRUNCATE_LENGTH"); truncateLength != "" {
		if tl, err := strconv.Atoi(truncateLength); err == nil {
			config.Sentiment.TruncateLength = tl
		}
	}
	if batchSize := os.Getenv("CX_INSIGHTS_SENTIMENT_BATCH_SIZE"); batchSize != "" {
		if bs, err := strconv.Atoi(batchSize); err == nil {
			config.Sentiment.BatchSize = bs
		}
	}
	if sla := os.Getenv("CX_INSIGHTS_SENTIMENT_SLA_MILLIS"); sla != "" {
		if s, err := strconv.Atoi(sla); err == nil {
			config.Sentiment.SLAMillis = s
		}
	}
}

func loadLoggingConfig(config *Config) {
	if level := os.Getenv("CX_INSIGHTS_LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}
	if format := os.Getenv("CX_INSIGHTS_LOG_FORMAT"); format != "" {
		config.Logging.Format = format
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}
	if c.Server.Host == "" {
		return fmt.Errorf("server host cannot be empty")
	}
	if c.Server.ReadTimeout <= 0 || c.Server.WriteTimeout <= 0 {
		return fmt.Errorf("server timeouts must be positive")
	}

	if c.Detection.MinBatchSize < 1 {
		return fmt.Errorf("detection min batch size must be at least 1")
	}
	if c.Detection.ConfidenceFloor < 0 || c.Detection.ConfidenceFloor > 1 {
		return fmt.Errorf("detection confidence floor must be between 0 and 1")
	}

	if c.Sentiment.MaxTextLength <= 0 {
		return fmt.Errorf("sentiment max text length must be positive")
	}
	if c.Sentiment.TruncateLength <= 0 || c.Sentiment.TruncateLength > c.Sentiment.MaxTextLength {
		return fmt.Errorf("sentiment truncate length must be positive and at most max text length")
	}
	if c.Sentiment.BatchSize <= 0 {
		return fmt.Errorf("sentiment batch size must be positive")
	}

	return nil
}
