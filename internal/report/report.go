// Package report renders the plain-text impact report.
package report

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/pellucidar/impactmap/internal/domain"
)

// Input bundles everything a report needs. Source is free text naming
// where the body parameters came from, e.g. "Manual input" or
// "NASA (object data)".
type Input struct {
	Parameters    domain.BodyParameters
	Source        string
	Effects       domain.EffectsResult
	LeadTimeYears float64
	OceanImpact   bool
}

var printer = message.NewPrinter(language.English)

// Render produces the full impact report: parameters with provenance,
// the computed effects chain, the damage radii, and a mitigation section
// derived from the size and event classification.
func Render(in Input) string {
	p := in.Parameters
	sizeClass := domain.ClassifySize(p.DiameterM)
	eventType := domain.ClassifyEventType(p.DiameterM, p.AngleDeg)
	tips := domain.MitigationBrief(sizeClass, eventType, in.LeadTimeYears, in.OceanImpact)

	var b strings.Builder
	line := func(format string, args ...any) {
		b.WriteString(printer.Sprintf(format, args...))
		b.WriteByte('\n')
	}

	line("=== Impact Report ===")
	line("Parameter source: %s", in.Source)
	line("Diameter: %.3f m", p.DiameterM)
	line("Density: %.1f kg/m³", p.DensityKgM3)
	line("Velocity: %.3f km/s", p.VelocityKmS)
	line("Entry angle: %.1f deg", p.AngleDeg)
	line("Mass: %.0f kg", in.Effects.MassKg)
	b.WriteString(fmt.Sprintf("Energy: %.3e J\n", in.Effects.EnergyJ))
	line("Kinetic yield: %.6f Mt TNT", in.Effects.KineticYieldMt)
	line("Effective surface yield: %.6f Mt TNT", in.Effects.EffectiveSurfaceYieldMt)

	line("Estimated damage radii:")
	for _, kind := range domain.RingKinds {
		line("  • %s: %.3f km", ringHeading(kind), in.Effects.Radius(kind))
	}

	line("")
	line("Mitigation (summary):")
	line("  • Long-term: kinetic impactor (DART-proven), gravity tractor; years of lead time.")
	line("  • Last-minute: evacuate severe/moderate blast zones; avoid windows; prep firebreaks; coastal: tsunami routes.")
	line("  • Nuclear standoff: politically complex; only for late-detected large objects; fragmentation risk.")

	line("")
	line("Mitigation (auto-brief):")
	line("  • Size class: %s    Event: %s    Lead time: %.1f years    Ocean: %s",
		string(sizeClass), string(eventType), in.LeadTimeYears, yesNo(in.OceanImpact))
	for _, tip := range tips {
		line("    - %s", tip)
	}

	return b.String()
}

// ringHeading title-cases the ring kind with a trailing lowercase unit,
// e.g. "severe_blast_km" becomes "Severe Blast km".
func ringHeading(kind domain.RingKind) string {
	words := strings.Split(string(kind), "_")
	for i, w := range words {
		if w == "km" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
