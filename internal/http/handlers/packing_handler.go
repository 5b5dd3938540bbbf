// README: Packing list generation handler.
package handlers

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"packmin/internal/service"
	"packmin/internal/trip"
)

// Generator is the subset of the planner the handler needs.
type Generator interface {
	Generate(ctx context.Context, info trip.Info) (*service.Result, error)
}

type PackingHandler struct {
	planner Generator
}

func NewPackingHandler(planner Generator) *PackingHandler {
	return &PackingHandler{planner: planner}
}

type destinationReq struct {
	Location  string `json:"location"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

type dateRangeReq struct {
	From string `json:"from"`
	To   string `json:"to"`
}

type laundryReq struct {
	Available  bool           `json:"available"`
	DateRanges []dateRangeReq `json:"date_ranges"`
}

type packingReq struct {
	Destinations        []destinationReq `json:"destinations"`
	Gender              string           `json:"gender"`
	Age                 int              `json:"age"`
	ClothingSize        string           `json:"clothing_size"`
	ShoeSize            string           `json:"shoe_size"`
	Sleepwear           string           `json:"sleepwear"`
	Activities          string           `json:"activities"`
	AdditionalNotes     string           `json:"additional_notes"`
	Laundry             *laundryReq      `json:"laundry,omitempty"`
	LuggageVolumeLiters float64          `json:"luggage_volume_liters"`
	LuggageName         string           `json:"luggage_name"`
}

const dateLayout = "2006-01-02"

func (r packingReq) toTrip() (trip.Info, error) {
	if len(r.Destinations) == 0 {
		return trip.Info{}, fmt.Errorf("at least one destination is required")
	}

	info := trip.Info{
		Traveler: trip.Traveler{
			Gender:       strings.TrimSpace(r.Gender),
			Age:          r.Age,
			ClothingSize: strings.TrimSpace(r.ClothingSize),
			ShoeSize:     strings.TrimSpace(r.ShoeSize),
			Sleepwear:    strings.TrimSpace(r.Sleepwear),
		},
		Activities:          strings.TrimSpace(r.Activities),
		AdditionalNotes:     strings.TrimSpace(r.AdditionalNotes),
		LuggageVolumeLiters: r.LuggageVolumeLiters,
		LuggageName:         strings.TrimSpace(r.LuggageName),
	}

	for _, d := range r.Destinations {
		location := strings.TrimSpace(d.Location)
		if location == "" {
			return trip.Info{}, fmt.Errorf("destination location is required")
		}
		start, err := time.Parse(dateLayout, d.StartDate)
		if err != nil {
			return trip.Info{}, fmt.Errorf("invalid start_date %q for %s", d.StartDate, location)
		}
		end, err := time.Parse(dateLayout, d.EndDate)
		if err != nil {
			return trip.Info{}, fmt.Errorf("invalid end_date %q for %s", d.EndDate, location)
		}
		if end.Before(start) {
			return trip.Info{}, fmt.Errorf("end_date before start_date for %s", location)
		}
		info.Destinations = append(info.Destinations, trip.Destination{
			Location:  location,
			StartDate: start,
			EndDate:   end,
		})
	}

	if r.Laundry != nil {
		info.Laundry = trip.Laundry{Available: r.Laundry.Available}
		for _, dr := range r.Laundry.DateRanges {
			if _, err := time.Parse(dateLayout, dr.From); err != nil {
				return trip.Info{}, fmt.Errorf("invalid laundry range start %q", dr.From)
			}
			if _, err := time.Parse(dateLayout, dr.To); err != nil {
				return trip.Info{}, fmt.Errorf("invalid laundry range end %q", dr.To)
			}
			info.Laundry.DateRanges = append(info.Laundry.DateRanges, trip.DateRange{From: dr.From, To: dr.To})
		}
	}

	return info, nil
}

// Create handles POST /api/packing-lists.
func (h *PackingHandler) Create(c *gin.Context) {
	var req packingReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}

	info, err := req.toTrip()
	if err != nil {
		writeError(c, http.StatusBadRequest, err.Error())
		return
	}

	res, err := h.planner.Generate(c.Request.Context(), info)
	if err != nil {
		writeGenerateError(c, err)
		return
	}

	writeJSON(c, http.StatusOK, res)
}
