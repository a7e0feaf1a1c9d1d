package patterns

import (
	"fmt"

	"github.com/go-viper/mapstructure/v2"

	"lerian-cx-insights/internal/types"
)

// ChannelFrequencyMetadata is the typed form of a channel_frequency
// pattern's metadata.
type ChannelFrequencyMetadata struct {
	Channel          string  `mapstructure:"channel"`
	Count            int     `mapstructure:"count"`
	AvgIntervalHours float64 `mapstructure:"avg_interval_hours"`
}

// SentimentTrendMetadata is the typed form of a sentiment_trend pattern's
// metadata.
type SentimentTrendMetadata struct {
	Dominant    string  `mapstructure:"dominant"`
	Consistency float64 `mapstructure:"consistency"`
	Average     float64 `mapstructure:"average"`
	Direction   string  `mapstructure:"direction"`
}

// TemporalMetadata is the typed form of a day_of_week or time_of_day
// pattern's metadata. Only the fields for the actual pattern type are set.
type TemporalMetadata struct {
	DayOfWeek int    `mapstructure:"day_of_week"`
	DayName   string `mapstructure:"day_name"`
	HourBlock int    `mapstructure:"hour_block"`
	TimeRange string `mapstructure:"time_range"`
}

// EngagementMetadata is the typed form of an engagement pattern's metadata.
type EngagementMetadata struct {
	Level string  `mapstructure:"level"`
	Trend string  `mapstructure:"trend"`
	Score float64 `mapstructure:"score"`
}

// DecodeMetadata decodes a pattern's generic metadata map into one of the
// typed metadata structs above. out must be a pointer to the struct matching
// the pattern's type tag.
func DecodeMetadata(p *types.Pattern, out any) error {
	if err := mapstructure.Decode(p.Metadata, out); err != nil {
		return fmt.Errorf("failed to decode %s pattern metadata: %w", p.Type, err)
	}
	return nil
}
