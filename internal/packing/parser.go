// README: Extracts the sentinel-delimited JSON block from raw AI text.
package packing

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"
)

// Sentinel markers the prompt instructs the model to emit around the
// machine-parseable JSON block.
const (
	JSONStartMarker = "PARSEABLE_JSON_START"
	JSONEndMarker   = "PARSEABLE_JSON_END"
)

// jsonBlockRe finds the first brace-delimited region between the markers.
// Best-effort: a marker string appearing inside a JSON string value makes
// the block unparseable, which degrades to the raw-response outcome below.
var jsonBlockRe = regexp.MustCompile(`(?s)` + JSONStartMarker + `\s*(\{.*?\})\s*` + JSONEndMarker)

// Parse converts a raw AI response into a List. It never fails: when the
// sentinel block is missing or malformed, the returned List has empty
// collections and zero totals, with RawResponse preserved for fallback
// display and export.
func Parse(raw string) List {
	list := List{RawResponse: raw}

	payload := extractJSONBlock(raw)
	if payload == nil {
		return list
	}

	list.TotalClothes = parseItems(payload["total_clothes"])
	list.WornOnDeparture = parseItems(payload["worn_on_departure"])
	list.PackedInLuggage = parseItems(payload["packed_in_luggage"])
	list.PackingCubes = parseCubes(payload["packing_cubes"])

	if totals, ok := payload["totals"].(map[string]any); ok {
		list.Totals = Totals{
			EstimatedVolumeL:  asFloat(totals["estimated_volume_l"], 0),
			PercentOfCapacity: asFloat(totals["percent_of_capacity"], 0),
			EstimatedWeightKg: asFloat(totals["estimated_weight_kg"], 0),
		}
	}

	return list
}

// extractJSONBlock returns the decoded sentinel payload, or nil when the
// block is absent, malformed, or not a JSON object.
func extractJSONBlock(text string) map[string]any {
	m := jsonBlockRe.FindStringSubmatch(text)
	if m == nil {
		return nil
	}

	var payload map[string]any
	if err := json.Unmarshal([]byte(m[1]), &payload); err != nil {
		return nil
	}
	return payload
}

func parseItems(v any) []Item {
	records, ok := v.([]any)
	if !ok {
		return nil
	}

	var items []Item
	for _, r := range records {
		rec, ok := r.(map[string]any)
		if !ok {
			continue
		}
		items = append(items, Item{
			Name:           asString(rec["name"]),
			Quantity:       asInt(rec["qty"], 1),
			PerItemVolumeL: asFloat(rec["per_item_volume_l"], 0),
			TotalVolumeL:   asFloat(rec["total_volume_l"], 0),
			Description:    asString(rec["description"]),
			Category:       asString(rec["category"]),
		})
	}
	return items
}

func parseCubes(v any) []Cube {
	records, ok := v.([]any)
	if !ok {
		return nil
	}

	var cubes []Cube
	for _, r := range records {
		rec, ok := r.(map[string]any)
		if !ok {
			continue
		}
		cube := Cube{
			Name:         asString(rec["cube"]),
			TotalVolumeL: asFloat(rec["total_volume_l"], 0),
		}
		if names, ok := rec["items"].([]any); ok {
			for _, n := range names {
				cube.Items = append(cube.Items, asString(n))
			}
		}
		cubes = append(cubes, cube)
	}
	return cubes
}

// Coercion helpers: the model is not guaranteed to emit clean types, so
// numbers arriving as strings are tolerated, like the rest of the parser.

func asString(v any) string {
	s, _ := v.(string)
	return s
}

func asInt(v any, def int) int {
	switch n := v.(type) {
	case float64:
		return int(n)
	case string:
		if i, err := strconv.Atoi(strings.TrimSpace(n)); err == nil {
			return i
		}
	}
	return def
}

func asFloat(v any, def float64) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case string:
		if f, err := strconv.ParseFloat(strings.TrimSpace(n), 64); err == nil {
			return f
		}
	}
	return def
}
