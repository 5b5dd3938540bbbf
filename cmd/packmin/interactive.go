// README: Interactive trip intake over stdin.
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"packmin/internal/config"
	"packmin/internal/service"
	"packmin/internal/trip"
)

var stdin = bufio.NewReader(os.Stdin)

// ask prints a prompt and reads one trimmed line. An empty answer returns
// the default.
func ask(label, def string) string {
	if def != "" {
		fmt.Printf("%s [%s]: ", label, def)
	} else {
		fmt.Printf("%s: ", label)
	}
	line, err := stdin.ReadString('\n')
	if err != nil {
		return def
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return def
	}
	return line
}

func collectInteractive(ctx context.Context, planner *service.Planner, cfg config.Config) (trip.Info, error) {
	destinations, err := askDestinations()
	if err != nil {
		return trip.Info{}, err
	}

	fmt.Println("\nTraveler Information:")
	age := 30
	if n, err := strconv.Atoi(ask("  Age", "30")); err == nil {
		age = n
	}
	traveler := trip.Traveler{
		Gender:       ask("  Gender", ""),
		Age:          age,
		ClothingSize: ask("  Clothing size (e.g., Men's M)", ""),
		ShoeSize:     ask("  Shoe size (e.g., US 10)", ""),
		Sleepwear:    askSleepwear(),
	}

	fmt.Println("\nTrip Details:")
	activities := ask("  Activities (e.g., hiking, business)", "")
	laundry := strings.EqualFold(ask("  Laundry available? (y/N)", "n"), "y")

	volume, luggageName := askLuggage(ctx, planner, cfg)
	notes := ask("\nAdditional notes (optional)", "")

	return trip.Info{
		Destinations:        destinations,
		Traveler:            traveler,
		Activities:          activities,
		AdditionalNotes:     notes,
		Laundry:             trip.Laundry{Available: laundry},
		LuggageVolumeLiters: volume,
		LuggageName:         luggageName,
	}, nil
}

func askDestinations() ([]trip.Destination, error) {
	fmt.Println("\nEnter destinations (semicolon-separated)")
	fmt.Println("   Example: Paris, France; Rome, Italy")

	var locations []string
	for len(locations) == 0 {
		for _, loc := range strings.Split(ask("Destinations", ""), ";") {
			if loc = strings.TrimSpace(loc); loc != "" {
				locations = append(locations, loc)
			}
		}
	}

	var destinations []trip.Destination
	for _, location := range locations {
		fmt.Printf("\nDates for %s:\n", location)
		for {
			start, err := time.Parse("2006-01-02", ask("  Start date (YYYY-MM-DD)", ""))
			if err != nil {
				fmt.Println("  Invalid date format. Use YYYY-MM-DD")
				continue
			}
			end, err := time.Parse("2006-01-02", ask("  End date (YYYY-MM-DD)", ""))
			if err != nil {
				fmt.Println("  Invalid date format. Use YYYY-MM-DD")
				continue
			}
			if end.Before(start) {
				fmt.Println("  End date must be after start date")
				continue
			}

			d := trip.Destination{Location: location, StartDate: start, EndDate: end}
			fmt.Printf("  %d days\n", d.DurationDays())
			destinations = append(destinations, d)
			break
		}
	}
	return destinations, nil
}

func askSleepwear() string {
	for {
		answer := ask("  Sleepwear preference (dedicated/minimal/none)", trip.SleepwearMinimal)
		switch answer {
		case trip.SleepwearDedicated, trip.SleepwearMinimal, trip.SleepwearNone:
			return answer
		}
		fmt.Println("  Choose one of: dedicated, minimal, none")
	}
}

// askLuggage resolves luggage volume from a direct answer, dimensions, or
// an AI name lookup.
func askLuggage(ctx context.Context, planner *service.Planner, cfg config.Config) (float64, string) {
	fmt.Println("\nLuggage:")
	fmt.Println("  1. Enter volume in liters")
	fmt.Println("  2. Enter dimensions (L x W x H cm)")
	fmt.Println("  3. Enter luggage name/model (AI lookup)")

	switch ask("  Choose option", "1") {
	case "3":
		name := ask("  Luggage name (e.g. 'Away Carry-On')", "")
		fmt.Println("  Looking up volume...")
		volume := planner.EstimateLuggageVolume(ctx, name)
		fmt.Printf("  Found/Estimated: %gL\n", volume)
		return volume, name

	case "2":
		parts := strings.Split(ask("  Dimensions (e.g., 55 x 35 x 20)", ""), "x")
		if len(parts) == 3 {
			dims := make([]float64, 0, 3)
			for _, p := range parts {
				v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
				if err != nil {
					break
				}
				dims = append(dims, v)
			}
			if len(dims) == 3 {
				volume := dims[0] * dims[1] * dims[2] / 1000
				fmt.Printf("  Calculated: %.1fL\n", volume)
				return volume, ""
			}
		}
		fmt.Printf("  Invalid format, using default: %gL\n", cfg.DefaultLuggageVolume)
		return cfg.DefaultLuggageVolume, ""

	default:
		raw := ask("  Volume (liters)", strconv.FormatFloat(cfg.DefaultLuggageVolume, 'g', -1, 64))
		volume, err := strconv.ParseFloat(raw, 64)
		if err != nil || volume <= 0 {
			volume = cfg.DefaultLuggageVolume
		}
		return volume, ""
	}
}
