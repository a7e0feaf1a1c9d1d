package patterns

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lerian-cx-insights/internal/types"
)

func timestampBatch(timestamps ...time.Time) []types.Interaction {
	batch := make([]types.Interaction, 0, len(timestamps))
	for i, ts := range timestamps {
		batch = append(batch, types.Interaction{ID: fmt.Sprintf("t-%d", i), Timestamp: ts})
	}
	return batch
}

func TestDetectTemporalPattern_InsufficientData(t *testing.T) {
	assert.Nil(t, DetectTemporalPattern(nil))

	// 2025-01-06 is a Monday.
	monday := time.Date(2025, 1, 6, 10, 0, 0, 0, time.UTC)
	assert.Nil(t, DetectTemporalPattern(timestampBatch(monday, monday, monday, monday)))

	// 5 interactions but only 4 valid timestamps.
	batch := timestampBatch(monday, monday, monday, monday)
	batch = append(batch, types.Interaction{ID: "no-ts"})
	assert.Nil(t, DetectTemporalPattern(batch))
}

func TestDetectTemporalPattern_DayOfWeek(t *testing.T) {
	monday := time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC)

	// Six consecutive Mondays at spread-out hours so only the day clusters.
	batch := timestampBatch(
		monday.Add(2*time.Hour),
		monday.Add(7*24*time.Hour+6*time.Hour),
		monday.Add(14*24*time.Hour+10*time.Hour),
		monday.Add(21*24*time.Hour+14*time.Hour),
		monday.Add(28*24*time.Hour+18*time.Hour),
		monday.Add(35*24*time.Hour+22*time.Hour),
	)

	pattern := DetectTemporalPattern(batch)
	require.NotNil(t, pattern)
	assert.Equal(t, types.PatternTypeDayOfWeek, pattern.Type)
	assert.InDelta(t, 1.0, pattern.Confidence, 1e-9)
	assert.Equal(t, 6, pattern.Occurrences)
	assert.Equal(t, 0, pattern.Metadata["day_of_week"])
	assert.Equal(t, "Monday", pattern.Metadata["day_name"])
	assert.Contains(t, pattern.Description, "Monday")
}

func TestDetectTemporalPattern_TimeOfDay(t *testing.T) {
	// Eight different days, always between 8am and noon.
	start := time.Date(2025, 1, 6, 9, 0, 0, 0, time.UTC)
	timestamps := make([]time.Time, 0, 8)
	for i := 0; i < 8; i++ {
		timestamps = append(timestamps, start.Add(time.Duration(i)*24*time.Hour))
	}

	pattern := DetectTemporalPattern(timestampBatch(timestamps...))
	require.NotNil(t, pattern)
	assert.Equal(t, types.PatternTypeTimeOfDay, pattern.Type)
	assert.InDelta(t, 1.0, pattern.Confidence, 1e-9)
	assert.Equal(t, 2, pattern.Metadata["hour_block"])
	assert.Equal(t, "8am-12pm", pattern.Metadata["time_range"])
}

func TestDetectTemporalPattern_DayTakesPriority(t *testing.T) {
	// Same weekday AND same hour block: both confidences are 1.0, so the
	// day-of-week pattern wins.
	monday := time.Date(2025, 1, 6, 10, 0, 0, 0, time.UTC)
	timestamps := make([]time.Time, 0, 6)
	for i := 0; i < 6; i++ {
		timestamps = append(timestamps, monday.Add(time.Duration(i)*7*24*time.Hour))
	}

	pattern := DetectTemporalPattern(timestampBatch(timestamps...))
	require.NotNil(t, pattern)
	assert.Equal(t, types.PatternTypeDayOfWeek, pattern.Type)
}

func TestDetectTemporalPattern_NoCluster(t *testing.T) {
	// Spread across days and hour blocks; nothing exceeds the floor.
	start := time.Date(2025, 1, 6, 1, 0, 0, 0, time.UTC)
	timestamps := make([]time.Time, 0, 7)
	for i := 0; i < 7; i++ {
		timestamps = append(timestamps, start.Add(time.Duration(i)*28*time.Hour))
	}

	assert.Nil(t, DetectTemporalPattern(timestampBatch(timestamps...)))
}

func TestMondayIndexed(t *testing.T) {
	assert.Equal(t, 0, mondayIndexed(time.Monday))
	assert.Equal(t, 4, mondayIndexed(time.Friday))
	assert.Equal(t, 6, mondayIndexed(time.Sunday))
}
