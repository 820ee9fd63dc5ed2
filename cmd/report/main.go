// Command report prints a one-shot plain-text impact report for a body
// given on the command line, optionally resolving diameter and velocity
// from the NASA NEO catalog.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/pellucidar/impactmap/internal/adapter/neo"
	"github.com/pellucidar/impactmap/internal/domain"
	"github.com/pellucidar/impactmap/internal/observability"
	"github.com/pellucidar/impactmap/internal/report"
)

func main() {
	var (
		diameter = flag.Float64("diameter", 50, "body diameter in meters")
		velocity = flag.Float64("velocity", 20, "entry velocity in km/s")
		density  = flag.Float64("density", 3000, "body density in kg/m³")
		angle    = flag.Float64("angle", 45, "entry angle from horizontal in degrees")
		lead     = flag.Float64("lead", 5, "warning lead time in years")
		ocean    = flag.Bool("ocean", false, "assume an ocean impact")

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
	fmt.Print(report.Render(report.Input{
		Parameters:    resolved.BodyParameters,
		Source:        sourceText(resolved),
		Effects:       effects,
		LeadTimeYears: *lead,
		OceanImpact:   *ocean,
	}))
}

func sourceText(r domain.ResolvedParameters) string {
	switch r.Source {
	case domain.SourceCatalog:
		return fmt.Sprintf("NASA (object data: %s)", r.ObjectName)
	case domain.SourceFailed:
		return "Manual input (catalog lookup failed)"
	default:
		return "Manual input"
	}
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
