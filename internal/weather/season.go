package weather

import (
	"fmt"
	"time"
)

// Season maps a calendar month to one of four seasons (northern hemisphere).
func Season(month time.Month) string {
	switch month {
	case time.December, time.January, time.February:
		return "winter"
	case time.March, time.April, time.May:
		return "spring"
	case time.June, time.July, time.August:
		return "summer"
	default:
		return "fall"
	}
}

// SeasonalEstimate is the coarse fallback used when no real forecast is
// available: a fixed temperature band per season and a 30% rain placeholder.
func SeasonalEstimate(month time.Month) Forecast {
	bands := map[string][2]float64{
		"winter": {-5, 10},
		"spring": {10, 20},
		"summer": {20, 30},
		"fall":   {10, 20},
	}
	season := Season(month)
	band := bands[season]
	return Forecast{
		Date:        "seasonal average",
		TempMin:     band[0],
		TempMax:     band[1],
		Description: fmt.Sprintf("%s weather", season),
		RainChance:  30.0,
	}
}
