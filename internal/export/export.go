// README: File export (plain text, markdown, CSV) for generated lists.
package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"packmin/internal/packing"
	"packmin/internal/trip"
)

// Supported output formats.
const (
	FormatText     = "txt"
	FormatMarkdown = "md"
	FormatCSV      = "csv"
)

// DefaultBaseName derives a filename stem from the first destination,
// e.g. "packing_2025-06-01_Paris_France".
func DefaultBaseName(info trip.Info) string {
	first := info.Destinations[0]
	location := strings.ReplaceAll(strings.ReplaceAll(first.Location, ",", ""), " ", "_")
	return fmt.Sprintf("packing_%s_%s", first.StartDate.Format("2006-01-02"), location)
}

// Save writes the packing list in the given format. When path is empty the
// default base name plus the format extension is used. Returns the path
// written.
func Save(list packing.List, info trip.Info, format, path string) (string, error) {
	if path == "" {
		path = DefaultBaseName(info) + "." + format
	}

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	switch format {
	case FormatCSV:
		err = writeCSV(f, list)
	case FormatMarkdown:
		err = writeMarkdown(f, list, info)
	default:
		err = writeText(f, list, info)
	}
	if err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}

// writeCSV emits one row per packed and worn item, suitable for import
// into todo apps.
func writeCSV(f *os.File, list packing.List) error {
	w := csv.NewWriter(f)

	if err := w.Write([]string{"Category", "Item", "Quantity", "Volume (L)", "Description"}); err != nil {
		return err
	}
	writeRows := func(category string, items []packing.Item) error {
		for _, it := range items {
			row := []string{
				category,
				it.Name,
				strconv.Itoa(it.Quantity),
				strconv.FormatFloat(it.TotalVolumeL, 'f', -1, 64),
				it.Description,
			}
			if err := w.Write(row); err != nil {
				return err
			}
		}
		return nil
	}

	if err := writeRows("Packed", list.PackedInLuggage); err != nil {
		return err
	}
	if err := writeRows("Worn", list.WornOnDeparture); err != nil {
		return err
	}

	w.Flush()
	return w.Error()
}

func writeMarkdown(f *os.File, list packing.List, info trip.Info) error {
	var b strings.Builder
	fmt.Fprintf(&b, "# Packing List for %s\n\n", strings.Join(info.Locations(), ", "))
	fmt.Fprintf(&b, "**Duration:** %d days\n", info.TotalDurationDays())
	fmt.Fprintf(&b, "**Luggage:** %gL\n\n", info.LuggageVolumeLiters)
	b.WriteString("---\n\n")
	b.WriteString(list.RawResponse)

	_, err := f.WriteString(b.String())
	return err
}

func writeText(f *os.File, list packing.List, info trip.Info) error {
	var b strings.Builder
	fmt.Fprintf(&b, "Packing List for %s\n", strings.Join(info.Locations(), ", "))
	fmt.Fprintf(&b, "Duration: %d days\n", info.TotalDurationDays())
	fmt.Fprintf(&b, "Luggage: %gL\n", info.LuggageVolumeLiters)
	b.WriteString(strings.Repeat("=", 50) + "\n\n")
	b.WriteString(list.RawResponse)

	_, err := f.WriteString(b.String())
	return err
}
