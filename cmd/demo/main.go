// demo runs the pattern detection engine over a synthetic interaction batch
// and pretty-prints the ranked patterns.
package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/fatih/color"

	"lerian-cx-insights/internal/logging"
	"lerian-cx-insights/internal/patterns"
	"lerian-cx-insights/internal/types"
)

func main() {
	color.Cyan("CX Insights - Pattern Detection Demo")
	color.Cyan("====================================")

	interactions := syntheticBatch()
	engine := patterns.NewEngine(logging.NewNoop())

	detected := engine.DetectPatterns(context.Background(), interactions)

	fmt.Printf("\nAnalyzed %d interactions, %d patterns detected:\n\n", len(interactions), len(detected))

	for i := range detected {
		p := &detected[i]
		color.New(color.FgGreen, color.Bold).Printf("%d. [%s] ", i+1, p.Type)
		fmt.Printf("%s\n", p.Description)
		fmt.Printf("   confidence=%.2f frequency=%d\n", p.Confidence, p.Frequency)
		printMetadata(p)
		fmt.Println()
	}

	engagement := patterns.CalculateEngagementScore(interactions)
	trend := patterns.AnalyzeSentimentTrend(interactions)
	color.Yellow("Engagement: %.2f (%s, %s)", engagement.Score, engagement.Level, engagement.Trend)
	color.Yellow("Sentiment:  %s (consistency %.2f, average %.2f, %s)",
		trend.Dominant, trend.Consistency, trend.Average, trend.Direction)
}

// printMetadata decodes the generic metadata into its typed form.
func printMetadata(p *types.Pattern) {
	switch p.Type {
	case types.PatternTypeChannelFrequency:
		var md patterns.ChannelFrequencyMetadata
		if err := patterns.DecodeMetadata(p, &md); err != nil {
			log.Printf("failed to decode metadata: %v", err)
			return
		}
		fmt.Printf("   channel=%s avg_interval=%.1fh\n", md.Channel, md.AvgIntervalHours)
	case types.PatternTypeSentimentTrend:
		var md patterns.SentimentTrendMetadata
		if err := patterns.DecodeMetadata(p, &md); err != nil {
			log.Printf("failed to decode metadata: %v", err)
			return
		}
		fmt.Printf("   dominant=%s direction=%s average=%.2f\n", md.Dominant, md.Direction, md.Average)
	case types.PatternTypeDayOfWeek, types.PatternTypeTimeOfDay:
		var md patterns.TemporalMetadata
		if err := patterns.DecodeMetadata(p, &md); err != nil {
			log.Printf("failed to decode metadata: %v", err)
			return
		}
		if p.Type == types.PatternTypeDayOfWeek {
			fmt.Printf("   day=%s\n", md.DayName)
		} else {
			fmt.Printf("   time_range=%s\n", md.TimeRange)
		}
	case types.PatternTypeEngagement:
		var md patterns.EngagementMetadata
		if err := patterns.DecodeMetadata(p, &md); err != nil {
			log.Printf("failed to decode metadata: %v", err)
			return
		}
		fmt.Printf("   level=%s trend=%s\n", md.Level, md.Trend)
	}
}

// syntheticBatch builds a customer history with a regular web habit and
// consistently positive sentiment: 15 web interactions exactly 48 hours
// apart, always at the same time of day.
func syntheticBatch() []types.Interaction {
	// 15 interactions 48h apart span 28 days; start far enough back that
	// the newest one is recent.
	base := time.Now().Add(-28*24*time.Hour - 2*time.Hour).Truncate(time.Hour)
	batch := make([]types.Interaction, 0, 15)

	for i := 0; i < 15; i++ {
		label := types.SentimentPositive
		if i%5 == 0 {
			label = types.SentimentNeutral
		}
		batch = append(batch, types.Interaction{
			ID:        fmt.Sprintf("demo-%02d", i),
			Timestamp: base.Add(time.Duration(i) * 48 * time.Hour),
			Channel:   "web",
			Sentiment: &types.Sentiment{Label: label},
			Content:   "Thanks, the new dashboard works great and support was quick to help.",
		})
	}

	return batch
}
