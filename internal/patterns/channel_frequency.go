package patterns

import (
	"sort"
	"time"

	"lerian-cx-insights/internal/types"
)

// minChannelOccurrences is the hard cardinality floor below which a channel
// is excluded from frequency analysis entirely.
const minChannelOccurrences = 10

// ChannelStats describes how a customer uses one channel: how often, how
// evenly spaced the uses are, and the average gap between them.
type ChannelStats struct {
	Count       int     `json:"count"`
	Regularity  float64 `json:"regularity"`
	AvgInterval float64 `json:"avg_interval"` // hours
}

// CalculateChannelFrequency groups interactions by channel and scores the
// usage regularity of every channel used at least minChannelOccurrences
// times. Interactions missing a channel or timestamp are ignored. An empty
// batch yields an empty map.
func CalculateChannelFrequency(interactions []types.Interaction) map[string]ChannelStats {
	result := make(map[string]ChannelStats)
	if len(interactions) == 0 {
		return result
	}

	byChannel := make(map[string][]time.Time)
	for i := range interactions {
		it := &interactions[i]
		if it.Channel == "" || !it.HasTimestamp() {
			continue
		}
		byChannel[it.Channel] = append(byChannel[it.Channel], it.Timestamp)
	}

	for channel, timestamps := range byChannel {
		count := len(timestamps)
		if count < minChannelOccurrences {
			continue
		}

		sort.Slice(timestamps, func(a, b int) bool {
			return timestamps[a].Before(timestamps[b])
		})

		regularity, avgInterval := regularityScore(intervalsHours(timestamps))

		result[channel] = ChannelStats{
			Count:       count,
			Regularity:  regularity,
			AvgInterval: avgInterval,
		}
	}

	return result
}
