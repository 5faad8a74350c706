package forecast

import (
	"log"
	"strings"
	"time"
)

// The KMA publishes mid-term forecasts twice a day, at 06:00 and 18:00 KST.
// Everything downstream (feed queries, cache keys) is versioned by that
// publication timestamp, formatted yyyyMMddHHmm.
const baseTimeLayout = "200601021504"

// kst avoids a tzdata dependency; KMA base times never observe DST.
var kst = time.FixedZone("KST", 9*60*60)

// CurrentBaseTime returns the most recent publication timestamp as of now:
// today 0600 for hours [6,18), today 1800 for hours >= 18, and yesterday
// 1800 before 06:00.
func CurrentBaseTime(now time.Time) string {
	now = now.In(kst)

	switch {
	case now.Hour() < 6:
		return now.AddDate(0, 0, -1).Format("20060102") + "1800"
	case now.Hour() < 18:
		return now.Format("20060102") + "0600"
	default:
		return now.Format("20060102") + "1800"
	}
}

// ValidBaseTime returns candidate if it is a well-formed publication
// timestamp, otherwise the computed current one. Invalid candidates are
// corrected silently; callers never see an error for a bad baseTime.
func ValidBaseTime(candidate string, now time.Time) string {
	if candidate != "" {
		_, err := time.Parse(baseTimeLayout, candidate)
		if err == nil && (strings.HasSuffix(candidate, "0600") || strings.HasSuffix(candidate, "1800")) {
			return candidate
		}
		log.Printf("forecast: ignoring invalid baseTime %q; falling back to current publication time", candidate)
	}
	return CurrentBaseTime(now)
}
