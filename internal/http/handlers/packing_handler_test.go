// README: Handler tests for packing list generation over a stub planner.
package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"packmin/internal/ai"
	"packmin/internal/http/handlers"
	"packmin/internal/packing"
	"packmin/internal/service"
	"packmin/internal/trip"
)

// stubPlanner is a test double for the planner.
type stubPlanner struct {
	result *service.Result
	err    error
	got    trip.Info
}

func (s *stubPlanner) Generate(_ context.Context, info trip.Info) (*service.Result, error) {
	s.got = info
	if s.err != nil {
		return nil, s.err
	}
	return s.result, nil
}

func buildTestRouter(planner handlers.Generator) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := handlers.NewPackingHandler(planner)
	r.POST("/api/packing-lists", h.Create)
	return r
}

func doRequest(r *gin.Engine, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	_ = json.NewEncoder(&buf).Encode(body)
	req := httptest.NewRequest(http.MethodPost, "/api/packing-lists", &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func validBody() map[string]any {
	return map[string]any{
		"destinations": []map[string]any{
			{"location": "Lisbon", "start_date": "2025-06-01", "end_date": "2025-06-07"},
		},
		"gender": "female",
		"age":    30,
	}
}

func TestCreateOK(t *testing.T) {
	planner := &stubPlanner{result: &service.Result{
		List:         packing.List{RawResponse: "hello"},
		ValidationOK: true,
	}}
	r := buildTestRouter(planner)

	w := doRequest(r, validBody())
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body %s", w.Code, w.Body.String())
	}
	if len(planner.got.Destinations) != 1 || planner.got.Destinations[0].Location != "Lisbon" {
		t.Fatalf("planner received %+v", planner.got)
	}
	if planner.got.TotalDurationDays() != 7 {
		t.Fatalf("duration = %d, want 7", planner.got.TotalDurationDays())
	}

	var resp service.Result
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.List.RawResponse != "hello" {
		t.Fatalf("raw response = %q", resp.List.RawResponse)
	}
}

func TestCreateRejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		body map[string]any
	}{
		{name: "no destinations", body: map[string]any{"gender": "male"}},
		{name: "bad date", body: map[string]any{
			"destinations": []map[string]any{
				{"location": "Lisbon", "start_date": "01/06/2025", "end_date": "2025-06-07"},
			},
		}},
		{name: "end before start", body: map[string]any{
			"destinations": []map[string]any{
				{"location": "Lisbon", "start_date": "2025-06-07", "end_date": "2025-06-01"},
			},
		}},
		{name: "blank location", body: map[string]any{
			"destinations": []map[string]any{
				{"location": "  ", "start_date": "2025-06-01", "end_date": "2025-06-07"},
			},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			planner := &stubPlanner{result: &service.Result{}}
			w := doRequest(buildTestRouter(planner), tt.body)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400; body %s", w.Code, w.Body.String())
			}
		})
	}
}

func TestCreateProviderFailureIsBadGateway(t *testing.T) {
	planner := &stubPlanner{err: &ai.ProviderError{Provider: "openai", StatusCode: 401, Message: "invalid api key"}}
	w := doRequest(buildTestRouter(planner), validBody())
	if w.Code != http.StatusBadGateway {
		t.Fatalf("status = %d, want 502; body %s", w.Code, w.Body.String())
	}
}
