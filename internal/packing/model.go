// README: Typed packing-list records parsed from the AI response.
package packing

import (
	"fmt"
	"math"
	"strings"
)

// Item is a single packing-list entry. TotalVolumeL should roughly equal
// Quantity * PerItemVolumeL, but the model's figures are taken as-is.
type Item struct {
	Name           string  `json:"name"`
	Quantity       int     `json:"quantity"`
	PerItemVolumeL float64 `json:"per_item_volume_l"`
	TotalVolumeL   float64 `json:"total_volume_l"`
	Description    string  `json:"description,omitempty"`
	Category       string  `json:"category,omitempty"`
}

// Cube groups item names into one packing cube.
type Cube struct {
	Name         string   `json:"name"`
	Items        []string `json:"items"`
	TotalVolumeL float64  `json:"total_volume_l"`
}

type Totals struct {
	EstimatedVolumeL  float64 `json:"estimated_volume_l"`
	PercentOfCapacity float64 `json:"percent_of_capacity"`
	EstimatedWeightKg float64 `json:"estimated_weight_kg"`
}

// List is the parsed packing list. RawResponse always holds the full
// original AI text so callers can fall back to it when the structured
// collections are empty.
type List struct {
	TotalClothes    []Item `json:"total_clothes"`
	WornOnDeparture []Item `json:"worn_on_departure"`
	PackedInLuggage []Item `json:"packed_in_luggage"`
	PackingCubes    []Cube `json:"packing_cubes"`
	Totals          Totals `json:"totals"`
	RawResponse     string `json:"raw_response"`
}

// HasStructuredData reports whether the parser found any itemized clothes.
func (l List) HasStructuredData() bool {
	return len(l.TotalClothes) > 0
}

// volumeTolerance absorbs floating-point summation noise when reconciling
// section volumes.
const volumeTolerance = 0.01

// ValidateQuantities checks that worn + packed reconciles with the
// total-clothes section, for both quantities and volumes. The result is
// advisory: callers surface the message as a warning, never an error.
func (l List) ValidateQuantities() (bool, string) {
	sum := func(items []Item) (qty int, vol float64) {
		for _, it := range items {
			qty += it.Quantity
			vol += it.TotalVolumeL
		}
		return qty, vol
	}

	totalQty, totalVol := sum(l.TotalClothes)
	packedQty, packedVol := sum(l.PackedInLuggage)
	wornQty, wornVol := sum(l.WornOnDeparture)

	var issues []string
	if totalQty != packedQty+wornQty {
		issues = append(issues, fmt.Sprintf("Quantity mismatch: total %d != packed %d + worn %d",
			totalQty, packedQty, wornQty))
	}
	if math.Abs(totalVol-(packedVol+wornVol)) > volumeTolerance {
		issues = append(issues, fmt.Sprintf("Volume mismatch: total %.2fL != packed %.2fL + worn %.2fL",
			totalVol, packedVol, wornVol))
	}

	return len(issues) == 0, strings.Join(issues, "; ")
}
