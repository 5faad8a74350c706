package kma

import (
	"fmt"

	"github.com/yeonwoo-j/kma-midterm-forecast/internal/forecast"
)

// All three mid-term endpoints put their payload under the same nested
// item node, with day-indexed field names on it.
const itemPath = "response.body.items.item[0]"

// temperatureDays extracts per-day temperature records from a decoded
// getMidTa response. A day appears in the result only if it has at least
// a min or max temperature; the low~high confidence bands are rendered as
// range strings only when both bounds are present.
func temperatureDays(tree map[string]any) map[int]forecast.DayTemperature {
	days := make(map[int]forecast.DayTemperature)

	for day := forecast.MinDayOffset; day <= forecast.MaxDayOffset; day++ {
		minTemp := pathInt(tree, fmt.Sprintf("%s.taMin%d", itemPath, day))
		maxTemp := pathInt(tree, fmt.Sprintf("%s.taMax%d", itemPath, day))
		if minTemp == nil && maxTemp == nil {
			continue
		}

		rec := forecast.DayTemperature{MinTemp: minTemp, MaxTemp: maxTemp}

		minLow := pathInt(tree, fmt.Sprintf("%s.taMin%dLow", itemPath, day))
		minHigh := pathInt(tree, fmt.Sprintf("%s.taMin%dHigh", itemPath, day))
		if minLow != nil && minHigh != nil {
			r := fmt.Sprintf("%d~%d℃", *minLow, *minHigh)
			rec.MinRange = &r
		}

		maxLow := pathInt(tree, fmt.Sprintf("%s.taMax%dLow", itemPath, day))
		maxHigh := pathInt(tree, fmt.Sprintf("%s.taMax%dHigh", itemPath, day))
		if maxLow != nil && maxHigh != nil {
			r := fmt.Sprintf("%d~%d℃", *maxLow, *maxHigh)
			rec.MaxRange = &r
		}

		days[day] = rec
	}

	if len(days) == 0 {
		return nil
	}
	return days
}

// precipitationDays extracts per-day rain/weather records from a decoded
// getMidLandFcst response. Days 4-7 report separate AM/PM fields; days
// 8-10 report one unified value per day, which lands in the Am fields with
// the Pm fields left nil. A day with every field absent is omitted.
func precipitationDays(tree map[string]any) map[int]forecast.DayPrecipitation {
	days := make(map[int]forecast.DayPrecipitation)

	for day := forecast.MinDayOffset; day <= forecast.MaxDayOffset; day++ {
		var rec forecast.DayPrecipitation

		if day <= 7 {
			rec.AmRainPercent = pathInt(tree, fmt.Sprintf("%s.rnSt%dAm", itemPath, day))
			rec.PmRainPercent = pathInt(tree, fmt.Sprintf("%s.rnSt%dPm", itemPath, day))
			rec.AmWeather = pathString(tree, fmt.Sprintf("%s.wf%dAm", itemPath, day))
			rec.PmWeather = pathString(tree, fmt.Sprintf("%s.wf%dPm", itemPath, day))
		} else {
			rec.AmRainPercent = pathInt(tree, fmt.Sprintf("%s.rnSt%d", itemPath, day))
			rec.AmWeather = pathString(tree, fmt.Sprintf("%s.wf%d", itemPath, day))
		}

		if rec.AmRainPercent == nil && rec.PmRainPercent == nil &&
			rec.AmWeather == nil && rec.PmWeather == nil {
			continue
		}

		days[day] = rec
	}

	if len(days) == 0 {
		return nil
	}
	return days
}
