package kma

import "testing"

// itemTree wraps one feed item in the standard response envelope.
func itemTree(item map[string]any) map[string]any {
	return map[string]any{
		"response": map[string]any{
			"header": map[string]any{"resultCode": "00"},
			"body": map[string]any{
				"items": map[string]any{
					"item": []any{item},
				},
			},
		},
	}
}

func TestTemperatureDaysRangesAndOmission(t *testing.T) {
	tree := itemTree(map[string]any{
		"taMin5":     float64(3),
		"taMax5":     float64(10),
		"taMin5Low":  float64(2),
		"taMin5High": float64(4),
		"taMax5Low":  float64(9),
		// taMax5High missing: the max range must stay nil.
		"taMax8": float64(7),
	})

	days := temperatureDays(tree)

	if len(days) != 2 {
		t.Fatalf("expected days 5 and 8, got %v", days)
	}

	day5, ok := days[5]
	if !ok {
		t.Fatal("day 5 missing")
	}
	if day5.MinTemp == nil || *day5.MinTemp != 3 || day5.MaxTemp == nil || *day5.MaxTemp != 10 {
		t.Errorf("day 5 temps = %+v", day5)
	}
	if day5.MinRange == nil || *day5.MinRange != "2~4℃" {
		t.Errorf("day 5 MinRange = %v, want 2~4℃", day5.MinRange)
	}
	if day5.MaxRange != nil {
		t.Errorf("day 5 MaxRange = %q, want nil with one bound missing", *day5.MaxRange)
	}

	day8, ok := days[8]
	if !ok || day8.MaxTemp == nil || *day8.MaxTemp != 7 || day8.MinTemp != nil {
		t.Errorf("day 8 = %+v", day8)
	}
}

func TestTemperatureDaysEmptyResponse(t *testing.T) {
	if days := temperatureDays(itemTree(map[string]any{})); days != nil {
		t.Errorf("expected nil for empty item, got %v", days)
	}
}

func TestPrecipitationDaysSplitThenUnified(t *testing.T) {
	tree := itemTree(map[string]any{
		"rnSt4Am": float64(20),
		"rnSt4Pm": float64(60),
		"wf4Am":   "맑음",
		"wf4Pm":   "흐리고 비",
		"rnSt8":   float64(30),
		"wf8":     "구름많음",
	})

	days := precipitationDays(tree)

	if len(days) != 2 {
		t.Fatalf("expected days 4 and 8, got %v", days)
	}

	day4 := days[4]
	if day4.AmRainPercent == nil || *day4.AmRainPercent != 20 || day4.PmRainPercent == nil || *day4.PmRainPercent != 60 {
		t.Errorf("day 4 rain = %+v", day4)
	}
	if day4.PmWeather == nil || *day4.PmWeather != "흐리고 비" {
		t.Errorf("day 4 weather = %+v", day4)
	}

	// Days 8-10 report one unified value: it lands in the Am fields and
	// the Pm fields stay nil.
	day8 := days[8]
	if day8.AmRainPercent == nil || *day8.AmRainPercent != 30 {
		t.Errorf("day 8 rain = %+v", day8)
	}
	if day8.PmRainPercent != nil {
		t.Errorf("day 8 PmRainPercent = %d, want nil", *day8.PmRainPercent)
	}
	if day8.AmWeather == nil || *day8.AmWeather != "구름많음" || day8.PmWeather != nil {
		t.Errorf("day 8 weather = %+v", day8)
	}
}

func TestPrecipitationDayOmittedWhenAllFieldsAbsent(t *testing.T) {
	tree := itemTree(map[string]any{
		"rnSt6Am": float64(10),
	})

	days := precipitationDays(tree)

	if len(days) != 1 {
		t.Fatalf("expected only day 6, got %v", days)
	}
	if _, ok := days[7]; ok {
		t.Error("day 7 has no fields and must be omitted")
	}
}
