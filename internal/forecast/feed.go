package forecast

import "context"

// FeedClient abstracts the three independent mid-term feed endpoints.
// Implementations convert every remote failure into absence at their own
// boundary: a false ok or a nil map, never an error. The three calls are
// independently fallible; partial results are handled by the aggregation
// policies in this package.
type FeedClient interface {
	// FetchNarrative returns the raw free-text outlook for a broadcast
	// station, or ok=false when none is available.
	FetchNarrative(ctx context.Context, stnID, baseTime string) (string, bool)

	// FetchTemperature returns per-day temperature records keyed by day
	// offset, nil when none are available.
	FetchTemperature(ctx context.Context, regionCode, baseTime string) map[int]DayTemperature

	// FetchPrecipitation returns per-day rain/weather records keyed by day
	// offset, nil when none are available.
	FetchPrecipitation(ctx context.Context, regionCode, baseTime string) map[int]DayPrecipitation
}
