// README: CLI entry point; collects trip input, runs the pipeline, renders results.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"packmin/internal/ai"
	"packmin/internal/config"
	"packmin/internal/export"
	"packmin/internal/infra"
	"packmin/internal/modules/history"
	"packmin/internal/service"
	"packmin/internal/trip"
	"packmin/internal/weather"
)

type cliFlags struct {
	destinations []string
	startDates   []string
	endDates     []string
	gender       string
	age          int
	size         string
	shoeSize     string
	sleepwear    string
	activities   string
	laundry      bool
	volume       float64
	luggageName  string
	notes        string
	output       string
	format       string
	debug        bool
	interactive  bool
}

func main() {
	flags := &cliFlags{}

	root := &cobra.Command{
		Use:   "packmin",
		Short: "Minimalist packing list generator",
		Long: `PackMin generates AI-powered packing lists using capsule wardrobe principles.

Run without arguments for interactive mode, or use flags for scripted use:

  packmin
  packmin -d "Paris, France" -s 2025-06-01 -e 2025-06-07 -g male -a 30`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), flags)
		},
	}

	root.Flags().StringArrayVarP(&flags.destinations, "destination", "d", nil, "destination (can be repeated)")
	root.Flags().StringArrayVarP(&flags.startDates, "start-date", "s", nil, "start date YYYY-MM-DD (pairs with --destination)")
	root.Flags().StringArrayVarP(&flags.endDates, "end-date", "e", nil, "end date YYYY-MM-DD (pairs with --destination)")
	root.Flags().StringVarP(&flags.gender, "gender", "g", "", "traveler gender")
	root.Flags().IntVarP(&flags.age, "age", "a", 0, "traveler age")
	root.Flags().StringVar(&flags.size, "size", "", "clothing size")
	root.Flags().StringVar(&flags.shoeSize, "shoe-size", "", "shoe size")
	root.Flags().StringVar(&flags.sleepwear, "sleepwear", trip.SleepwearMinimal, "sleepwear preference (dedicated, minimal, none)")
	root.Flags().StringVar(&flags.activities, "activities", "", "activities (comma-separated)")
	root.Flags().BoolVar(&flags.laundry, "laundry", false, "laundry available")
	root.Flags().Float64VarP(&flags.volume, "volume", "v", 0, "luggage volume in liters")
	root.Flags().StringVar(&flags.luggageName, "luggage-name", "", "luggage brand/model name (overrides volume if found)")
	root.Flags().StringVarP(&flags.notes, "notes", "n", "", "additional notes for the AI")
	root.Flags().StringVarP(&flags.output, "output", "o", "", "output file path")
	root.Flags().StringVar(&flags.format, "format", "", "output format (txt, md, csv)")
	root.Flags().BoolVar(&flags.debug, "debug", false, "enable debug output")
	root.Flags().BoolVarP(&flags.interactive, "interactive", "i", false, "force interactive mode")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, flags *cliFlags) error {
	cfg := config.Load()
	if errs := cfg.Validate(); len(errs) > 0 {
		fmt.Fprintln(os.Stderr, "Configuration errors:")
		for _, e := range errs {
			fmt.Fprintf(os.Stderr, "   - %s\n", e)
		}
		fmt.Fprintln(os.Stderr, "\nSet environment variables or create a .env file.")
		os.Exit(1)
	}

	// The interactive console stays quiet unless --debug is set.
	log := zap.NewNop()
	if flags.debug {
		var err error
		log, err = infra.NewLogger(cfg.Log.Level, cfg.Log.Format)
		if err != nil {
			return err
		}
		defer func() { _ = log.Sync() }()
	}

	fmt.Printf("PackMin - Using %s AI\n", strings.ToUpper(cfg.AIProvider))

	provider, err := ai.NewProvider(ctx, cfg)
	if err != nil {
		return err
	}
	if closer, ok := provider.(interface{ Close() }); ok {
		defer closer.Close()
	}

	var store *history.Store
	if cfg.DB.DSN != "" {
		pool, err := infra.NewDB(ctx, cfg.DB.DSN)
		if err != nil {
			fmt.Fprintf(os.Stderr, "history disabled: %v\n", err)
		} else {
			defer pool.Close()
			store = history.NewStore(pool)
			if err := store.EnsureSchema(ctx); err != nil {
				fmt.Fprintf(os.Stderr, "history disabled: %v\n", err)
				store = nil
			}
		}
	}

	planner := service.NewPlanner(cfg, provider, weather.NewService(cfg.OpenWeatherKey, log), store, log)

	hasRequired := len(flags.destinations) > 0 && len(flags.startDates) > 0 && len(flags.endDates) > 0
	useInteractive := flags.interactive || !hasRequired

	var info trip.Info
	if useInteractive {
		info, err = collectInteractive(ctx, planner, cfg)
	} else {
		info, err = tripFromFlags(ctx, planner, cfg, flags)
	}
	if err != nil {
		return err
	}

	fmt.Println("\nFetching weather and generating packing list...")
	res, err := planner.Generate(ctx, info)
	if err != nil {
		return fmt.Errorf("AI generation failed: %w", err)
	}

	for _, loc := range info.Locations() {
		status := "forecast"
		if res.Weather[loc].IsSeasonalEstimate {
			status = "seasonal estimate"
		}
		fmt.Printf("   %s: %s\n", loc, status)
	}

	if flags.debug {
		fmt.Println("\n--- DEBUG: Prompt ---")
		fmt.Println(res.Prompt)
		fmt.Println("--- END Prompt ---")
	}

	if res.List.HasStructuredData() {
		printPackingList(res)
	} else {
		fmt.Println("\nRaw AI Response:")
		fmt.Println(res.List.RawResponse)
	}

	if flags.format != "" || flags.output != "" {
		format := flags.format
		if format == "" {
			format = export.FormatText
		}
		path, err := export.Save(res.List, info, format, flags.output)
		if err != nil {
			return err
		}
		fmt.Printf("\nSaved to %s\n", path)
	} else if useInteractive {
		promptSave(res.List, info)
	}

	return nil
}

// tripFromFlags builds trip input for scripted (non-interactive) runs.
func tripFromFlags(ctx context.Context, planner *service.Planner, cfg config.Config, flags *cliFlags) (trip.Info, error) {
	if len(flags.destinations) != len(flags.startDates) || len(flags.destinations) != len(flags.endDates) {
		return trip.Info{}, fmt.Errorf("must provide equal numbers of --destination, --start-date, and --end-date")
	}

	var destinations []trip.Destination
	for i, location := range flags.destinations {
		start, err := time.Parse("2006-01-02", flags.startDates[i])
		if err != nil {
			return trip.Info{}, fmt.Errorf("invalid date format: %q", flags.startDates[i])
		}
		end, err := time.Parse("2006-01-02", flags.endDates[i])
		if err != nil {
			return trip.Info{}, fmt.Errorf("invalid date format: %q", flags.endDates[i])
		}
		if end.Before(start) {
			return trip.Info{}, fmt.Errorf("end date before start date for %s", location)
		}
		destinations = append(destinations, trip.Destination{Location: location, StartDate: start, EndDate: end})
	}

	volume := cfg.DefaultLuggageVolume
	if flags.volume > 0 {
		volume = flags.volume
	} else if flags.luggageName != "" {
		fmt.Printf("Looking up volume for %q...\n", flags.luggageName)
		volume = planner.EstimateLuggageVolume(ctx, flags.luggageName)
		fmt.Printf("   Found/Estimated: %gL\n", volume)
	}

	return trip.Info{
		Destinations: destinations,
		Traveler: trip.Traveler{
			Gender:       flags.gender,
			Age:          flags.age,
			ClothingSize: flags.size,
			ShoeSize:     flags.shoeSize,
			Sleepwear:    flags.sleepwear,
		},
		Activities:          flags.activities,
		AdditionalNotes:     flags.notes,
		Laundry:             trip.Laundry{Available: flags.laundry},
		LuggageVolumeLiters: volume,
		LuggageName:         flags.luggageName,
	}, nil
}
