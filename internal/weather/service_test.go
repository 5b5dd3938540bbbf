package weather

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"
)

func TestSeasonalEstimate(t *testing.T) {
	tests := []struct {
		month   time.Month
		wantMin float64
		wantMax float64
		wantIn  string
	}{
		{time.January, -5, 10, "winter"},
		{time.February, -5, 10, "winter"},
		{time.December, -5, 10, "winter"},
		{time.April, 10, 20, "spring"},
		{time.July, 20, 30, "summer"},
		{time.October, 10, 20, "fall"},
	}

	for _, tt := range tests {
		t.Run(tt.month.String(), func(t *testing.T) {
			f := SeasonalEstimate(tt.month)
			if f.TempMin != tt.wantMin || f.TempMax != tt.wantMax {
				t.Fatalf("temps = %.0f..%.0f, want %.0f..%.0f", f.TempMin, f.TempMax, tt.wantMin, tt.wantMax)
			}
			if !strings.Contains(f.Description, tt.wantIn) {
				t.Errorf("description %q does not contain %q", f.Description, tt.wantIn)
			}
			if f.RainChance != 30.0 {
				t.Errorf("rain chance = %.1f, want 30.0", f.RainChance)
			}
			if f.Date != "seasonal average" {
				t.Errorf("date label = %q", f.Date)
			}
		})
	}
}

// newTestService points a Service at an httptest server that answers both
// the geocode and onecall endpoints.
func newTestService(t *testing.T, handler http.Handler, now time.Time) (*Service, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	s := NewService("test-key", zap.NewNop())
	s.baseURL = srv.URL
	s.oneCallURL = srv.URL + "/onecall"
	s.now = func() time.Time { return now }
	return s, srv
}

func TestGetWeatherForecastWindow(t *testing.T) {
	now := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	start := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC)

	mux := http.NewServeMux()
	mux.HandleFunc("/weather", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("q") != "Paris, France" {
			http.NotFound(w, r)
			return
		}
		fmt.Fprint(w, `{"coord":{"lat":48.85,"lon":2.35}}`)
	})
	mux.HandleFunc("/onecall", func(w http.ResponseWriter, r *http.Request) {
		day := func(t time.Time) string {
			return fmt.Sprintf(`{"dt":%d,"temp":{"min":12.5,"max":21.0},"weather":[{"description":"light rain"}],"pop":0.4}`, t.Unix())
		}
		// One day before the window, two inside, one after.
		fmt.Fprintf(w, `{"daily":[%s,%s,%s,%s]}`,
			day(start.AddDate(0, 0, -1).Add(12*time.Hour)),
			day(start.Add(12*time.Hour)),
			day(end.Add(12*time.Hour)),
			day(end.AddDate(0, 0, 1).Add(12*time.Hour)))
	})

	s, _ := newTestService(t, mux, now)
	data := s.GetWeather(context.Background(), "Paris, France", start, end)

	if data.IsSeasonalEstimate {
		t.Fatal("expected real forecast, got seasonal estimate")
	}
	if len(data.Forecasts) != 2 {
		t.Fatalf("got %d forecasts, want 2 (window filter)", len(data.Forecasts))
	}
	f := data.Forecasts[0]
	if f.Date != "2025-06-02" {
		t.Errorf("first forecast date = %q, want 2025-06-02", f.Date)
	}
	if f.RainChance != 40.0 {
		t.Errorf("rain chance = %.1f, want 40.0 (pop fraction converted)", f.RainChance)
	}
	if f.Description != "light rain" {
		t.Errorf("description = %q", f.Description)
	}
}

func TestGetWeatherGeocodeFailureFallsBack(t *testing.T) {
	now := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
	mux := http.NewServeMux()
	mux.HandleFunc("/weather", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	s, _ := newTestService(t, mux, now)
	data := s.GetWeather(context.Background(), "Nowhere", now.AddDate(0, 0, 2), now.AddDate(0, 0, 4))

	if !data.IsSeasonalEstimate {
		t.Fatal("expected seasonal estimate on geocode failure")
	}
	if len(data.Forecasts) != 1 {
		t.Fatalf("got %d forecasts, want 1", len(data.Forecasts))
	}
	if !strings.Contains(data.Forecasts[0].Description, "winter") {
		t.Errorf("January fallback should be winter, got %q", data.Forecasts[0].Description)
	}
}

func TestGetWeatherFarFutureSkipsAPI(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	called := false
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		called = true
		http.NotFound(w, r)
	})

	s, _ := newTestService(t, mux, now)
	data := s.GetWeather(context.Background(), "Tokyo", now.AddDate(0, 1, 0), now.AddDate(0, 1, 5))

	if called {
		t.Error("API should not be called for trips beyond the forecast horizon")
	}
	if !data.IsSeasonalEstimate {
		t.Fatal("expected seasonal estimate for far-future trip")
	}
	if !strings.Contains(data.Forecasts[0].Description, "summer") {
		t.Errorf("July fallback should be summer, got %q", data.Forecasts[0].Description)
	}
}

func TestGetWeatherNoKeyFallsBack(t *testing.T) {
	s := NewService("", zap.NewNop())
	start := time.Now().Add(24 * time.Hour)

	data := s.GetWeather(context.Background(), "Oslo", start, start.Add(48*time.Hour))

	if !data.IsSeasonalEstimate {
		t.Fatal("expected seasonal estimate when no API key is configured")
	}
}

func TestGetWeatherEmptyIntersectionFallsBack(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	mux := http.NewServeMux()
	mux.HandleFunc("/weather", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"coord":{"lat":1,"lon":2}}`)
	})
	mux.HandleFunc("/onecall", func(w http.ResponseWriter, r *http.Request) {
		// Forecast days all before the trip window.
		fmt.Fprintf(w, `{"daily":[{"dt":%d,"temp":{"min":1,"max":2},"weather":[{"description":"x"}],"pop":0}]}`, now.Unix())
	})

	s, _ := newTestService(t, mux, now)
	data := s.GetWeather(context.Background(), "Lisbon", now.AddDate(0, 0, 6), now.AddDate(0, 0, 7))

	if !data.IsSeasonalEstimate {
		t.Fatal("expected seasonal fallback when no forecast day intersects the trip")
	}
}
