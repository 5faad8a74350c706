package forecast

import (
	"strings"

	"github.com/yeonwoo-j/kma-midterm-forecast/internal/common"
)

// BroadcastRegions lists the ten region prefixes the narrative feed is
// published for, in announcement order.
var BroadcastRegions = []string{
	"11B", "11D1", "11D2", "11C2", "11C1", "11F2", "11F1", "11H1", "11H2", "11G",
}

// CombineDays pairs per-day temperature and precipitation records into
// combined day forecasts. A day appears in the result only when both
// sources reported it; a day present in one source alone is dropped.
func CombineDays(regionCode, baseTime string, temps map[int]DayTemperature, precips map[int]DayPrecipitation) []CombinedDayForecast {
	var combined []CombinedDayForecast

	for day := MinDayOffset; day <= MaxDayOffset; day++ {
		temp, okTemp := temps[day]
		precip, okPrecip := precips[day]
		if !okTemp || !okPrecip {
			continue
		}

		combined = append(combined, CombinedDayForecast{
			RegionCode: regionCode,
			BaseTime:   baseTime,
			DayOffset:  day,

			MinTemp:  temp.MinTemp,
			MaxTemp:  temp.MaxTemp,
			MinRange: temp.MinRange,
			MaxRange: temp.MaxRange,

			AmRainPercent: precip.AmRainPercent,
			PmRainPercent: precip.PmRainPercent,
			AmWeather:     precip.AmWeather,
			PmWeather:     precip.PmWeather,
		})
	}

	return combined
}

// Narrative outlook text is organized in sections led by "○" with a
// parenthesized header, plus a trailing variability note starting at "*".
const sectionMarker = "○"

// ParseNarrative splits raw outlook text into its standard sections.
// Sections the text does not carry stay empty.
func ParseNarrative(regionID, baseTime, raw string) NarrativeForecast {
	n := NarrativeForecast{RegionID: regionID, BaseTime: baseTime}

	for _, section := range strings.Split(raw, sectionMarker) {
		section = strings.TrimSpace(section)
		if section == "" {
			continue
		}

		switch {
		case strings.HasPrefix(section, "(강수)"):
			n.Precipitation = sectionMarker + " " + section
		case strings.HasPrefix(section, "(기온)"):
			n.Temperature = sectionMarker + " " + section
		case strings.HasPrefix(section, "(해상)"):
			// The maritime section runs up to the variability note.
			n.Maritime = sectionMarker + " " + strings.TrimSpace(common.Before(section, "*"))
		}
	}

	if i := strings.Index(raw, "*"); i >= 0 {
		n.Variability = strings.TrimSpace(raw[i:])
	}

	return n
}
