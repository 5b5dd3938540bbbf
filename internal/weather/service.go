// README: OpenWeather lookup with a seasonal fallback that never fails.
package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"
)

const (
	defaultBaseURL    = "https://api.openweathermap.org/data/2.5"
	defaultOneCallURL = "https://api.openweathermap.org/data/3.0/onecall"

	// forecastHorizonDays is how far out the OneCall daily forecast reaches.
	forecastHorizonDays = 7
)

// Service resolves a location and date range to forecasts. Every network
// or data failure degrades to the seasonal estimate; GetWeather cannot fail.
type Service struct {
	apiKey     string
	baseURL    string
	oneCallURL string
	client     *http.Client
	log        *zap.Logger
	now        func() time.Time
}

func NewService(apiKey string, log *zap.Logger) *Service {
	return &Service{
		apiKey:     apiKey,
		baseURL:    defaultBaseURL,
		oneCallURL: defaultOneCallURL,
		client:     &http.Client{Timeout: 10 * time.Second},
		log:        log,
		now:        time.Now,
	}
}

type geocodeResponse struct {
	Coord struct {
		Lat float64 `json:"lat"`
		Lon float64 `json:"lon"`
	} `json:"coord"`
}

type oneCallResponse struct {
	Daily []dailyForecast `json:"daily"`
}

type dailyForecast struct {
	Dt   int64 `json:"dt"`
	Temp struct {
		Min float64 `json:"min"`
		Max float64 `json:"max"`
	} `json:"temp"`
	Weather []struct {
		Description string `json:"description"`
	} `json:"weather"`
	Pop float64 `json:"pop"`
}

// GetWeather returns forecasts for [start, end] when the trip starts within
// the forecast horizon and a key is configured; otherwise it returns the
// seasonal estimate for the start month.
func (s *Service) GetWeather(ctx context.Context, location string, start, end time.Time) Data {
	data := Data{Location: location}

	daysUntil := int(start.Sub(s.now()).Hours() / 24)
	if daysUntil <= forecastHorizonDays && s.apiKey != "" {
		if lat, lon, ok := s.coordinates(ctx, location); ok {
			for _, day := range s.fetchDaily(ctx, lat, lon) {
				forecastDate := time.Unix(day.Dt, 0).UTC()
				if !sameOrAfterDay(forecastDate, start) || !sameOrBeforeDay(forecastDate, end) {
					continue
				}
				desc := ""
				if len(day.Weather) > 0 {
					desc = day.Weather[0].Description
				}
				data.Forecasts = append(data.Forecasts, Forecast{
					Date:        forecastDate.Format("2006-01-02"),
					TempMin:     day.Temp.Min,
					TempMax:     day.Temp.Max,
					Description: desc,
					RainChance:  day.Pop * 100,
				})
			}
		}
	}

	if len(data.Forecasts) == 0 {
		data.Forecasts = append(data.Forecasts, SeasonalEstimate(start.Month()))
		data.IsSeasonalEstimate = true
	}
	return data
}

// coordinates resolves a location name to lat/lon via the current-weather
// endpoint. ok is false on any failure.
func (s *Service) coordinates(ctx context.Context, location string) (lat, lon float64, ok bool) {
	u := fmt.Sprintf("%s/weather?q=%s&appid=%s", s.baseURL, url.QueryEscape(location), s.apiKey)

	var geo geocodeResponse
	if err := s.getJSON(ctx, u, &geo); err != nil {
		s.log.Warn("geocode failed, using seasonal estimate",
			zap.String("location", location), zap.Error(err))
		return 0, 0, false
	}
	return geo.Coord.Lat, geo.Coord.Lon, true
}

// fetchDaily returns up to forecastHorizonDays of daily forecasts, or nil
// on any failure.
func (s *Service) fetchDaily(ctx context.Context, lat, lon float64) []dailyForecast {
	u := fmt.Sprintf("%s?lat=%f&lon=%f&appid=%s&units=metric", s.oneCallURL, lat, lon, s.apiKey)

	var oc oneCallResponse
	if err := s.getJSON(ctx, u, &oc); err != nil {
		s.log.Warn("forecast fetch failed, using seasonal estimate", zap.Error(err))
		return nil
	}
	if len(oc.Daily) > forecastHorizonDays {
		return oc.Daily[:forecastHorizonDays]
	}
	return oc.Daily
}

func (s *Service) getJSON(ctx context.Context, u string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func sameOrAfterDay(t, ref time.Time) bool {
	return !truncateDay(t).Before(truncateDay(ref))
}

func sameOrBeforeDay(t, ref time.Time) bool {
	return !truncateDay(t).After(truncateDay(ref))
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
