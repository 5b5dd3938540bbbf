// README: Trip data model (destinations, traveler, laundry, luggage).
package trip

import "time"

// Sleepwear preference values.
const (
	SleepwearDedicated = "dedicated"
	SleepwearMinimal   = "minimal"
	SleepwearNone      = "none"
)

// Destination is a single stop with an inclusive date range.
// EndDate must not be before StartDate.
type Destination struct {
	Location  string    `json:"location"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
}

// DurationDays counts days inclusive of both endpoints, so a same-day
// stay is 1 day.
func (d Destination) DurationDays() int {
	return int(d.EndDate.Sub(d.StartDate).Hours()/24) + 1
}

// Traveler holds optional traveler attributes; blank fields are omitted
// from the prompt.
type Traveler struct {
	Gender       string `json:"gender,omitempty"`
	Age          int    `json:"age,omitempty"`
	ClothingSize string `json:"clothing_size,omitempty"`
	ShoeSize     string `json:"shoe_size,omitempty"`
	Sleepwear    string `json:"sleepwear,omitempty"`
}

// DateRange is a laundry-availability exception window.
type DateRange struct {
	From string `json:"from"`
	To   string `json:"to"`
}

type Laundry struct {
	Available  bool        `json:"available"`
	DateRanges []DateRange `json:"date_ranges,omitempty"`
}

// Info is the complete input for one packing-list run.
type Info struct {
	Destinations        []Destination `json:"destinations"`
	Traveler            Traveler      `json:"traveler"`
	Activities          string        `json:"activities,omitempty"`
	AdditionalNotes     string        `json:"additional_notes,omitempty"`
	Laundry             Laundry       `json:"laundry"`
	LuggageVolumeLiters float64       `json:"luggage_volume_liters"`
	LuggageName         string        `json:"luggage_name,omitempty"`
}

// TotalDurationDays sums each destination's inclusive duration.
func (i Info) TotalDurationDays() int {
	total := 0
	for _, d := range i.Destinations {
		total += d.DurationDays()
	}
	return total
}

// Locations returns destination names in itinerary order.
func (i Info) Locations() []string {
	locs := make([]string, 0, len(i.Destinations))
	for _, d := range i.Destinations {
		locs = append(locs, d.Location)
	}
	return locs
}
