// Command viewer renders the interactive damage-ring map in the
// terminal. Mouse wheel zooms, button-1 drag pans, double click or 'r'
// resets the view, 'q' quits.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/pellucidar/impactmap/internal/adapter/neo"
	"github.com/pellucidar/impactmap/internal/adapter/term"
	"github.com/pellucidar/impactmap/internal/domain"
	"github.com/pellucidar/impactmap/internal/observability"
	"github.com/pellucidar/impactmap/internal/render"
)

func main() {
	var (
		diameter = flag.Float64("diameter", 50, "body diameter in meters")
		velocity = flag.Float64("velocity", 20, "entry velocity in km/s")
		density  = flag.Float64("density", 3000, "body density in kg/m³")
		angle    = flag.Float64("angle", 45, "entry angle from horizontal in degrees")
		lat      = flag.Float64("lat", 50.450001, "impact latitude")
		lon      = flag.Float64("lon", 30.523333, "impact longitude")

		neoID   = flag.String("neo-id", "", "NASA NEO reference ID to resolve diameter/velocity from")
		neoName = flag.String("neo-name", "", "exact NEO name to resolve diameter/velocity from")
		apiKey  = flag.String("api-key", envOr("NASA_API_KEY", "DEMO_KEY"), "NASA API key")
		pages   = flag.Int("pages", 3, "max browse pages for name search")
		timeout = flag.Duration("timeout", 20*time.Second, "catalog request timeout")
	)
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	manual := domain.BodyParameters{
		DiameterM:   *diameter,
		VelocityKmS: *velocity,
		DensityKgM3: *density,
		AngleDeg:    *angle,
	}

	resolved := domain.ResolvedParameters{BodyParameters: manual, Source: domain.SourceManual}
	if *neoID != "" || *neoName != "" {
		catalog := neo.NewClient(*apiKey, *timeout, observability.NewMetrics(), logger)
		ctx, cancel := context.WithTimeout(context.Background(), *timeout)
		defer cancel()

		if *neoID != "" {
			resolved = domain.ResolveFromCatalog(ctx, manual, *neoID, catalog, logger)
		} else {
			resolved = domain.ResolveFromCatalogByName(ctx, manual, *neoName, *pages, catalog, logger)
		}
	}

	if err := resolved.BodyParameters.Validate(); err != nil {
		logger.Error("invalid parameters", "error", err)
		os.Exit(1)
	}

	effects := domain.ComputeEffects(resolved.BodyParameters)

	screen, err := tcell.NewScreen()
	if err != nil {
		logger.Error("screen init failed", "error", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		logger.Error("screen init failed", "error", err)
		os.Exit(1)
	}
	defer screen.Fini()
	screen.EnableMouse()

	run(screen, domain.Geo{Lat: *lat, Lon: *lon}, effects)
}

func run(screen tcell.Screen, center domain.Geo, effects domain.EffectsResult) {
	surface := term.NewSurface(screen)
	var translator term.Translator

	state := render.Apply(render.NewViewState(), render.SetData{Center: center, Effects: effects})
	surface.Draw(render.BuildScene(state, surface.Viewport(), render.DefaultTheme))

	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}

		events, action := translator.Translate(ev)
		switch action {
		case term.ActionQuit:
			return
		case term.ActionResize:
			screen.Sync()
		}

		for _, e := range events {
			state = render.Apply(state, e)
		}
		surface.Draw(render.BuildScene(state, surface.Viewport(), render.DefaultTheme))
	}
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
