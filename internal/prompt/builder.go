// README: Renders trip + weather data into the packing-list instruction prompt.
package prompt

import (
	"fmt"
	"strings"

	"packmin/internal/packing"
	"packmin/internal/trip"
	"packmin/internal/weather"
)

const template = `Create a comprehensive packing list for this trip:

## Trip Details
%s

## Weather Conditions
%s

## Requirements

### Packing Philosophy
- Use **capsule wardrobe** principles: maximize mix-and-match versatility
- Prioritize multi-use, lightweight, quick-drying items
- Only pack what is truly necessary

### Output Structure (REQUIRED)
Provide these 4 sections in order:

1. **Total Clothes for the Trip** - All clothing needed (packed + worn)
2. **Worn on Departure Day** - Items worn, not packed
3. **Packed in Luggage** - Total minus departure clothes
4. **Packing Cubes** - How items fit in %.0fL cubes (1-2 cubes typically)

### Format for Items
Each item: ` + "`Item Name: Quantity (X.XL each, Y.YL total)`" + ` with description

### JSON Block (REQUIRED)
End your response with a machine-parseable JSON block:

` + "```" + `
` + packing.JSONStartMarker + `
{
  "total_clothes": [
    {"name": "T-shirt", "qty": 3, "per_item_volume_l": 0.7, "total_volume_l": 2.1, "description": "quick-dry"}
  ],
  "worn_on_departure": [...],
  "packed_in_luggage": [...],
  "packing_cubes": [
    {"cube": "Cube 1", "items": ["T-shirt", "Underwear"], "total_volume_l": 8.5}
  ],
  "totals": {"estimated_volume_l": 18.5, "percent_of_capacity": 47.4, "estimated_weight_kg": 5.2}
}
` + packing.JSONEndMarker + `
` + "```" + `

### Validation
- Sum of worn + packed MUST equal total clothes (quantities and volumes)
- Include all categories: clothing, toiletries, electronics, documents, accessories

%s`

// Build renders the full instruction prompt. It is a pure function:
// identical inputs produce byte-identical output. Weather is emitted in
// destination order, never map-iteration order, to keep that guarantee.
func Build(info trip.Info, weatherByLocation map[string]weather.Data, cubeVolumeL float64) string {
	notes := ""
	if info.AdditionalNotes != "" {
		notes = "## Additional Notes\n" + info.AdditionalNotes
	}

	return fmt.Sprintf(template,
		formatTripDetails(info),
		formatWeatherDetails(info, weatherByLocation),
		cubeVolumeL,
		notes)
}

func formatTripDetails(info trip.Info) string {
	var b strings.Builder

	b.WriteString("**Destinations:**\n")
	for _, d := range info.Destinations {
		fmt.Fprintf(&b, "- %s: %s to %s (%d days)\n",
			d.Location, d.StartDate.Format("2006-01-02"), d.EndDate.Format("2006-01-02"), d.DurationDays())
	}
	fmt.Fprintf(&b, "\n**Total Duration:** %d days\n", info.TotalDurationDays())

	t := info.Traveler
	if t.Gender != "" {
		fmt.Fprintf(&b, "**Gender:** %s\n", t.Gender)
	}
	if t.Age > 0 {
		fmt.Fprintf(&b, "**Age:** %d\n", t.Age)
	}
	if t.ClothingSize != "" {
		fmt.Fprintf(&b, "**Clothing Size:** %s\n", t.ClothingSize)
	}
	if t.ShoeSize != "" {
		fmt.Fprintf(&b, "**Shoe Size:** %s\n", t.ShoeSize)
	}
	if t.Sleepwear != "" {
		fmt.Fprintf(&b, "**Sleepwear Preference:** %s (dedicated=pack pajamas, minimal=use underwear/undershirt, none=sleep naked)\n", t.Sleepwear)
	}

	if info.Activities != "" {
		fmt.Fprintf(&b, "**Activities:** %s\n", info.Activities)
	}

	laundry := "No"
	if info.Laundry.Available {
		laundry = "Yes"
	}
	fmt.Fprintf(&b, "**Laundry Available:** %s\n", laundry)

	luggage := fmt.Sprintf("**Luggage:** %gL", info.LuggageVolumeLiters)
	if info.LuggageName != "" {
		luggage += fmt.Sprintf(" (%s)", info.LuggageName)
	}
	b.WriteString(luggage)

	return b.String()
}

func formatWeatherDetails(info trip.Info, weatherByLocation map[string]weather.Data) string {
	var b strings.Builder

	for _, location := range info.Locations() {
		data, ok := weatherByLocation[location]
		if !ok {
			continue
		}
		fmt.Fprintf(&b, "**%s:**\n", location)
		for _, f := range data.Forecasts {
			fmt.Fprintf(&b, "  - %s: %g°C to %g°C, %s, %.0f%% rain\n",
				f.Date, f.TempMin, f.TempMax, f.Description, f.RainChance)
		}
		if data.IsSeasonalEstimate {
			b.WriteString("  *(seasonal estimate - no forecast available for these dates)*\n")
		}
	}

	return strings.TrimRight(b.String(), "\n")
}
