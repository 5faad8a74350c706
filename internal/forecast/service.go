package forecast

import (
	"context"
	"log"
	"time"

	"github.com/yeonwoo-j/kma-midterm-forecast/internal/cache"
)

// NarrativeScope is the cache scope for the nationwide narrative sweep,
// which is not keyed by any single region.
const NarrativeScope = "nationwide"

// DefaultLocation is assumed when a caller names no location and no
// region code.
const DefaultLocation = "서울"

// Service is the single entry point for mid-term forecast lookups. It
// resolves and validates the publication baseTime, serves from cache when
// possible, and otherwise drives the feed client and aggregation before
// writing back. Both operations report absence with ok=false; neither
// returns an error under normal operation.
type Service struct {
	feed    FeedClient
	regions *RegionResolver

	narratives *cache.Cache[[]NarrativeForecast]
	metrics    *cache.Cache[[]CombinedDayForecast]

	now func() time.Time
}

// NewService creates a Service with empty caches.
func NewService(feed FeedClient, regions *RegionResolver) *Service {
	return &Service{
		feed:       feed,
		regions:    regions,
		narratives: cache.New[[]NarrativeForecast](),
		metrics:    cache.New[[]CombinedDayForecast](),
		now:        time.Now,
	}
}

// GetNarrativeOutlook returns the narrative outlook for every broadcast
// region at the given baseTime (silently corrected when invalid). Regions
// whose text is unavailable are skipped; the result is absent only when
// all of them fail.
func (s *Service) GetNarrativeOutlook(ctx context.Context, baseTime string) ([]NarrativeForecast, bool) {
	actual := ValidBaseTime(baseTime, s.now())

	if cached, ok := s.narratives.Get(NarrativeScope, actual); ok {
		return cached, true
	}

	var outlooks []NarrativeForecast
	for _, regionID := range BroadcastRegions {
		stnID := s.regions.StationID(regionID)

		raw, ok := s.feed.FetchNarrative(ctx, stnID, actual)
		if !ok {
			log.Printf("forecast: no narrative for region %s (stnId=%s) at %s; skipping", regionID, stnID, actual)
			continue
		}

		outlooks = append(outlooks, ParseNarrative(regionID, actual, raw))
	}

	if len(outlooks) == 0 {
		log.Printf("forecast: narrative unavailable for every broadcast region at %s", actual)
		return nil, false
	}

	s.narratives.Put(NarrativeScope, actual, outlooks)
	return outlooks, true
}

// GetRegionalMetrics returns the combined per-day forecast for one region.
// The region comes from regionCode when given, otherwise from the location
// name (defaulting to Seoul). The temperature and precipitation feeds are
// paired strictly: if either is empty the whole result is absent.
func (s *Service) GetRegionalMetrics(ctx context.Context, location, regionCode, baseTime string) ([]CombinedDayForecast, bool) {
	if location == "" {
		location = DefaultLocation
	}
	if regionCode == "" {
		regionCode = s.regions.RegionCode(location)
	}
	actual := ValidBaseTime(baseTime, s.now())

	if cached, ok := s.metrics.Get(regionCode, actual); ok {
		return cached, true
	}

	temps := s.feed.FetchTemperature(ctx, regionCode, actual)
	precips := s.feed.FetchPrecipitation(ctx, regionCode, actual)
	if len(temps) == 0 || len(precips) == 0 {
		log.Printf("forecast: incomplete feed pair for region %s at %s (temperature=%d days, precipitation=%d days)",
			regionCode, actual, len(temps), len(precips))
		return nil, false
	}

	combined := CombineDays(regionCode, actual, temps, precips)

	s.metrics.Put(regionCode, actual, combined)
	return combined, true
}

// EvictCaches clears both forecast caches in bulk. The scheduler invokes
// this on a fixed interval; nothing expires per entry.
func (s *Service) EvictCaches() {
	s.narratives.EvictAll()
	s.metrics.EvictAll()
	log.Println("forecast: cleared narrative and metrics caches")
}
