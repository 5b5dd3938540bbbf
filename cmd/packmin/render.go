// README: Console rendering and save menu for generated lists.
package main

import (
	"fmt"
	"strings"

	"packmin/internal/export"
	"packmin/internal/packing"
	"packmin/internal/service"
	"packmin/internal/trip"
)

func printPackingList(res *service.Result) {
	list := res.List

	fmt.Println("\n" + strings.Repeat("=", 60))
	fmt.Println("PACKING LIST")
	fmt.Println(strings.Repeat("=", 60))

	printItems("Total Clothes", list.TotalClothes)
	printItems("Worn on Departure", list.WornOnDeparture)
	printItems("Packed in Luggage", list.PackedInLuggage)

	if len(list.PackingCubes) > 0 {
		fmt.Println("\n### Packing Cubes")
		for _, cube := range list.PackingCubes {
			fmt.Printf("  %s: %s (%.1fL)\n", cube.Name, strings.Join(cube.Items, ", "), cube.TotalVolumeL)
		}
	}

	if list.Totals.EstimatedVolumeL > 0 {
		fmt.Println("\n### Totals")
		fmt.Printf("  Volume: %.1fL (%.0f%% capacity)\n", list.Totals.EstimatedVolumeL, list.Totals.PercentOfCapacity)
		fmt.Printf("  Weight: %.1fkg\n", list.Totals.EstimatedWeightKg)
	}

	if !res.ValidationOK {
		fmt.Printf("\nValidation warning: %s\n", res.ValidationMessage)
	}

	fmt.Println("\n" + strings.Repeat("=", 60))
}

func printItems(title string, items []packing.Item) {
	if len(items) == 0 {
		return
	}
	fmt.Printf("\n### %s\n", title)
	fmt.Printf("%-5s %-25s %-12s %s\n", "Qty", "Item", "Volume", "Description")
	fmt.Println(strings.Repeat("-", 60))
	for _, item := range items {
		fmt.Printf("%-5d %-25s %-12.1f %s\n", item.Quantity, item.Name, item.TotalVolumeL, item.Description)
	}
}

// promptSave offers the interactive save menu after a run.
func promptSave(list packing.List, info trip.Info) {
	fmt.Println("\nSave packing list?")
	fmt.Println("   1. Plain text (.txt)")
	fmt.Println("   2. Markdown (.md)")
	fmt.Println("   3. CSV (for todo apps)")
	fmt.Println("   Enter to skip")

	formats := map[string]string{
		"1": export.FormatText,
		"2": export.FormatMarkdown,
		"3": export.FormatCSV,
	}
	format, ok := formats[ask("Choose format", "")]
	if !ok {
		return
	}

	path, err := export.Save(list, info, format, "")
	if err != nil {
		fmt.Printf("   Save failed: %v\n", err)
		return
	}
	fmt.Printf("   Saved to %s\n", path)
}
