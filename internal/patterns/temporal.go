package patterns

import (
	"fmt"
	"time"

	"lerian-cx-insights/internal/types"
)

// minTemporalSamples is the minimum number of valid timestamps required
// before temporal clustering is attempted.
const minTemporalSamples = 5

// temporalConfidenceFloor is the bucket-share a cluster must exceed before
// it counts as a pattern.
const temporalConfidenceFloor = 0.7

// dayNames is indexed Monday=0 through Sunday=6, matching the day_of_week
// metadata value.
var dayNames = [7]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// hourBlockRanges labels the six 4-hour time-of-day buckets.
var hourBlockRanges = [6]string{"12am-4am", "4am-8am", "8am-12pm", "12pm-4pm", "4pm-8pm", "8pm-12am"}

// TemporalPattern describes a detected time-based habit: either a preferred
// day of the week or a preferred 4-hour block of the day.
type TemporalPattern struct {
	Type        string         `json:"pattern_type"` // day_of_week or time_of_day
	Confidence  float64        `json:"confidence"`
	Description string         `json:"description"`
	Metadata    map[string]any `json:"metadata"`
	Occurrences int            `json:"occurrences"`
}

// DetectTemporalPattern clusters the batch's timestamps by day of week and by
// 4-hour time-of-day block and returns the strongest qualifying cluster, or
// nil when no cluster exceeds the confidence floor. Day-of-week takes
// priority when both qualify and it is at least as strong. Fewer than
// minTemporalSamples valid timestamps always yields nil; that is a normal
// outcome, not an error.
func DetectTemporalPattern(interactions []types.Interaction) *TemporalPattern {
	if len(interactions) < minTemporalSamples {
		return nil
	}

	timestamps := make([]time.Time, 0, len(interactions))
	for i := range interactions {
		if interactions[i].HasTimestamp() {
			timestamps = append(timestamps, interactions[i].Timestamp)
		}
	}
	if len(timestamps) < minTemporalSamples {
		return nil
	}

	total := float64(len(timestamps))

	var dayCounts [7]int
	var blockCounts [6]int
	for _, ts := range timestamps {
		dayCounts[mondayIndexed(ts.Weekday())]++
		blockCounts[ts.Hour()/4]++
	}

	// Ties go to the earliest bucket, which keeps the result deterministic.
	topDay, topDayCount := maxBucket(dayCounts[:])
	topBlock, topBlockCount := maxBucket(blockCounts[:])

	dayConfidence := float64(topDayCount) / total
	timeConfidence := float64(topBlockCount) / total

	switch {
	case dayConfidence > temporalConfidenceFloor && dayConfidence >= timeConfidence:
		return &TemporalPattern{
			Type:        types.PatternTypeDayOfWeek,
			Confidence:  clamp01(dayConfidence),
			Description: fmt.Sprintf("Customer frequently interacts on %s", dayNames[topDay]),
			Metadata: map[string]any{
				"day_of_week": topDay,
				"day_name":    dayNames[topDay],
			},
			Occurrences: topDayCount,
		}
	case timeConfidence > temporalConfidenceFloor:
		return &TemporalPattern{
			Type:        types.PatternTypeTimeOfDay,
			Confidence:  clamp01(timeConfidence),
			Description: fmt.Sprintf("Customer frequently interacts during %s", hourBlockRanges[topBlock]),
			Metadata: map[string]any{
				"hour_block": topBlock,
				"time_range": hourBlockRanges[topBlock],
			},
			Occurrences: topBlockCount,
		}
	default:
		return nil
	}
}

// mondayIndexed converts Go's Sunday=0 weekday to the Monday=0 indexing used
// in pattern metadata.
func mondayIndexed(d time.Weekday) int {
	return (int(d) + 6) % 7
}

// maxBucket returns the index and count of the largest bucket, preferring
// the lowest index on ties.
func maxBucket(counts []int) (index, count int) {
	for i, c := range counts {
		if c > count {
			index = i
			count = c
		}
	}
	return index, count
}
