// README: Orchestrates weather -> prompt -> AI -> parse -> validate.
package service

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"packmin/internal/ai"
	"packmin/internal/config"
	"packmin/internal/modules/history"
	"packmin/internal/packing"
	"packmin/internal/prompt"
	"packmin/internal/trip"
	"packmin/internal/weather"
)

// generateTimeout bounds one AI generation call. There is no retry; a
// failed call fails the run.
const generateTimeout = 120 * time.Second

// WeatherSource is the weather collaborator; lookups never fail, they
// degrade to seasonal estimates.
type WeatherSource interface {
	GetWeather(ctx context.Context, location string, start, end time.Time) weather.Data
}

// Planner runs the packing-list pipeline for one trip.
type Planner struct {
	cfg      config.Config
	provider ai.Provider
	weather  WeatherSource
	history  *history.Store // nil disables persistence
	log      *zap.Logger
}

func NewPlanner(cfg config.Config, provider ai.Provider, w WeatherSource, store *history.Store, log *zap.Logger) *Planner {
	return &Planner{
		cfg:      cfg,
		provider: provider,
		weather:  w,
		history:  store,
		log:      log,
	}
}

// Result carries everything one run produced.
type Result struct {
	Trip              trip.Info                `json:"trip"`
	Weather           map[string]weather.Data  `json:"weather"`
	Prompt            string                   `json:"-"`
	List              packing.List             `json:"packing_list"`
	ValidationOK      bool                     `json:"validation_ok"`
	ValidationMessage string                   `json:"validation_message,omitempty"`
}

// Generate runs the full pipeline. The only fatal failure is the AI call;
// weather and parsing degrade locally, and validation is advisory.
func (p *Planner) Generate(ctx context.Context, info trip.Info) (*Result, error) {
	if len(info.Destinations) == 0 {
		return nil, fmt.Errorf("trip needs at least one destination")
	}
	if info.LuggageVolumeLiters <= 0 {
		info.LuggageVolumeLiters = p.cfg.DefaultLuggageVolume
	}

	weatherByLocation := make(map[string]weather.Data, len(info.Destinations))
	for _, d := range info.Destinations {
		data := p.weather.GetWeather(ctx, d.Location, d.StartDate, d.EndDate)
		weatherByLocation[d.Location] = data
		p.log.Info("weather resolved",
			zap.String("location", d.Location),
			zap.Bool("seasonal_estimate", data.IsSeasonalEstimate))
	}

	promptText := prompt.Build(info, weatherByLocation, p.cfg.PackingCubeVolume)

	genCtx, cancel := context.WithTimeout(ctx, generateTimeout)
	defer cancel()

	raw, err := p.provider.Generate(genCtx, promptText)
	if err != nil {
		return nil, fmt.Errorf("generate packing list: %w", err)
	}

	list := packing.Parse(raw)
	ok, msg := list.ValidateQuantities()
	if !ok {
		p.log.Warn("packing list failed reconciliation", zap.String("detail", msg))
	}

	p.record(ctx, info, list, msg)

	return &Result{
		Trip:              info,
		Weather:           weatherByLocation,
		Prompt:            promptText,
		List:              list,
		ValidationOK:      ok,
		ValidationMessage: msg,
	}, nil
}

// record persists the run when a history store is configured. Failures are
// logged only; persistence is a convenience, not part of the pipeline.
func (p *Planner) record(ctx context.Context, info trip.Info, list packing.List, validationMsg string) {
	if p.history == nil {
		return
	}

	_, err := p.history.Save(ctx, history.Run{
		Locations:         strings.Join(info.Locations(), ", "),
		DurationDays:      info.TotalDurationDays(),
		LuggageVolumeL:    info.LuggageVolumeLiters,
		Provider:          p.provider.Name(),
		Parsed:            list.HasStructuredData(),
		ValidationMessage: validationMsg,
		RawResponse:       list.RawResponse,
	})
	if err != nil {
		p.log.Warn("failed to record run", zap.Error(err))
	}
}

var numberRe = regexp.MustCompile(`\d+(?:\.\d+)?`)

// EstimateLuggageVolume asks the provider for the volume of a named piece
// of luggage. Lookup failures fall back to the configured default.
func (p *Planner) EstimateLuggageVolume(ctx context.Context, name string) float64 {
	question := fmt.Sprintf(
		"What is the internal packing volume in liters of the luggage %q? Reply with a single number only, no units.", name)

	genCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	raw, err := p.provider.Generate(genCtx, question)
	if err != nil {
		p.log.Warn("luggage volume lookup failed, using default",
			zap.String("luggage", name), zap.Error(err))
		return p.cfg.DefaultLuggageVolume
	}

	match := numberRe.FindString(raw)
	if match == "" {
		return p.cfg.DefaultLuggageVolume
	}
	volume, err := strconv.ParseFloat(match, 64)
	if err != nil || volume <= 0 {
		return p.cfg.DefaultLuggageVolume
	}
	return volume
}
