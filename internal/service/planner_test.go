package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"packmin/internal/config"
	"packmin/internal/trip"
	"packmin/internal/weather"
)

type stubProvider struct {
	response string
	err      error
	prompts  []string
}

func (s *stubProvider) Generate(_ context.Context, prompt string) (string, error) {
	s.prompts = append(s.prompts, prompt)
	if s.err != nil {
		return "", s.err
	}
	return s.response, nil
}

func (s *stubProvider) Name() string { return "stub" }

type stubWeather struct {
	data weather.Data
}

func (s *stubWeather) GetWeather(_ context.Context, location string, _, _ time.Time) weather.Data {
	d := s.data
	d.Location = location
	return d
}

func testTrip() trip.Info {
	return trip.Info{
		Destinations: []trip.Destination{
			{
				Location:  "Lisbon",
				StartDate: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
				EndDate:   time.Date(2025, 6, 7, 0, 0, 0, 0, time.UTC),
			},
		},
		Traveler:            trip.Traveler{Gender: "female", Age: 30},
		LuggageVolumeLiters: 39,
	}
}

const structuredResponse = `Here is your list.

PARSEABLE_JSON_START
{
  "total_clothes": [{"name": "T-shirt", "qty": 2, "per_item_volume_l": 0.4, "total_volume_l": 0.8}],
  "worn_on_departure": [{"name": "T-shirt", "qty": 1, "per_item_volume_l": 0.4, "total_volume_l": 0.4}],
  "packed_in_luggage": [{"name": "T-shirt", "qty": 1, "per_item_volume_l": 0.4, "total_volume_l": 0.4}],
  "packing_cubes": [],
  "totals": {"estimated_volume_l": 0.4, "percent_of_capacity": 1.0, "estimated_weight_kg": 0.2}
}
PARSEABLE_JSON_END`

func TestGeneratePipeline(t *testing.T) {
	provider := &stubProvider{response: structuredResponse}
	planner := NewPlanner(config.Config{DefaultLuggageVolume: 39, PackingCubeVolume: 9},
		provider, &stubWeather{}, nil, zap.NewNop())

	res, err := planner.Generate(context.Background(), testTrip())
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if !res.List.HasStructuredData() {
		t.Fatalf("expected structured data to be parsed")
	}
	if !res.ValidationOK {
		t.Fatalf("expected validation to pass, got %q", res.ValidationMessage)
	}
	if len(provider.prompts) != 1 {
		t.Fatalf("expected one provider call, got %d", len(provider.prompts))
	}
	if !strings.Contains(provider.prompts[0], "Lisbon") {
		t.Fatalf("prompt missing destination:\n%s", provider.prompts[0])
	}
	if _, ok := res.Weather["Lisbon"]; !ok {
		t.Fatalf("weather map missing Lisbon: %v", res.Weather)
	}
}

func TestGenerateDefaultsLuggageVolume(t *testing.T) {
	provider := &stubProvider{response: "no markers here"}
	planner := NewPlanner(config.Config{DefaultLuggageVolume: 39},
		provider, &stubWeather{}, nil, zap.NewNop())

	info := testTrip()
	info.LuggageVolumeLiters = 0
	res, err := planner.Generate(context.Background(), info)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if res.Trip.LuggageVolumeLiters != 39 {
		t.Fatalf("luggage volume = %v, want 39", res.Trip.LuggageVolumeLiters)
	}
	if res.List.HasStructuredData() {
		t.Fatalf("expected raw-only result for marker-free response")
	}
	if res.List.RawResponse != "no markers here" {
		t.Fatalf("raw response not preserved: %q", res.List.RawResponse)
	}
}

func TestGenerateProviderFailureIsFatal(t *testing.T) {
	provider := &stubProvider{err: context.DeadlineExceeded}
	planner := NewPlanner(config.Config{DefaultLuggageVolume: 39},
		provider, &stubWeather{}, nil, zap.NewNop())

	if _, err := planner.Generate(context.Background(), testTrip()); err == nil {
		t.Fatalf("expected error when provider fails")
	}
}

func TestGenerateRejectsEmptyTrip(t *testing.T) {
	planner := NewPlanner(config.Config{}, &stubProvider{}, &stubWeather{}, nil, zap.NewNop())
	if _, err := planner.Generate(context.Background(), trip.Info{}); err == nil {
		t.Fatalf("expected error for trip without destinations")
	}
}

func TestEstimateLuggageVolume(t *testing.T) {
	tests := []struct {
		name     string
		response string
		err      error
		want     float64
	}{
		{name: "plain number", response: "42", want: 42},
		{name: "number with prose", response: "It holds about 36.5 liters.", want: 36.5},
		{name: "no number falls back", response: "I am not sure.", want: 39},
		{name: "provider error falls back", err: context.DeadlineExceeded, want: 39},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := &stubProvider{response: tt.response, err: tt.err}
			planner := NewPlanner(config.Config{DefaultLuggageVolume: 39},
				provider, &stubWeather{}, nil, zap.NewNop())
			got := planner.EstimateLuggageVolume(context.Background(), "Osprey Farpoint 40")
			if got != tt.want {
				t.Fatalf("EstimateLuggageVolume() = %v, want %v", got, tt.want)
			}
		})
	}
}
