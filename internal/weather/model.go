package weather

// Forecast is one day of weather. Date is a display label; the seasonal
// fallback uses "seasonal average" instead of a calendar date.
type Forecast struct {
	Date        string  `json:"date"`
	TempMin     float64 `json:"temp_min"`
	TempMax     float64 `json:"temp_max"`
	Description string  `json:"description"`
	RainChance  float64 `json:"rain_chance"`
}

// Data is the weather for one location over the trip window.
type Data struct {
	Location           string     `json:"location"`
	Forecasts          []Forecast `json:"forecasts"`
	IsSeasonalEstimate bool       `json:"is_seasonal_estimate"`
}
