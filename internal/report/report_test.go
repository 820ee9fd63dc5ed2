package report

import (
	"fmt"
	"strings"
	"testing"

	"github.com/pellucidar/impactmap/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func referenceInput() Input {
	params := domain.BodyParameters{
		DiameterM:   50,
		VelocityKmS: 20,
		DensityKgM3: 3000,
		AngleDeg:    45,
	}
	return Input{
		Parameters:    params,
		Source:        "Manual input",
		Effects:       domain.ComputeEffects(params),
		LeadTimeYears: 5,
		OceanImpact:   false,
	}
}

func TestRender_ParameterSection(t *testing.T) {
	out := Render(referenceInput())

	assert.Contains(t, out, "=== Impact Report ===")
	assert.Contains(t, out, "Parameter source: Manual input")
	assert.Contains(t, out, "Diameter: 50.000 m")
	assert.Contains(t, out, "Density: 3,000.0 kg/m³")
	assert.Contains(t, out, "Velocity: 20.000 km/s")
	assert.Contains(t, out, "Entry angle: 45.0 deg")
}

func TestRender_EffectsChain(t *testing.T) {
	in := referenceInput()
	out := Render(in)

	// Mass gets thousands grouping, energy scientific notation.
	assert.Contains(t, out, "Mass: 196,349,541 kg")
	assert.Contains(t, out, "Energy: 3.927e+16 J")
	assert.Contains(t, out, fmt.Sprintf("Kinetic yield: %.6f Mt TNT", in.Effects.KineticYieldMt))
	assert.Contains(t, out, fmt.Sprintf("Effective surface yield: %.6f Mt TNT", in.Effects.EffectiveSurfaceYieldMt))
}

func TestRender_DamageRadii(t *testing.T) {
	in := referenceInput()
	out := Render(in)

	assert.Contains(t, out, "Estimated damage radii:")
	assert.Contains(t, out, fmt.Sprintf("  • Severe Blast km: %.3f km", in.Effects.SevereBlastKm))
	assert.Contains(t, out, fmt.Sprintf("  • Moderate Blast km: %.3f km", in.Effects.ModerateBlastKm))
	assert.Contains(t, out, fmt.Sprintf("  • Light Blast km: %.3f km", in.Effects.LightBlastKm))
	assert.Contains(t, out, fmt.Sprintf("  • Severe Thermal km: %.3f km", in.Effects.SevereThermalKm))
	assert.Contains(t, out, fmt.Sprintf("  • Light Thermal km: %.3f km", in.Effects.LightThermalKm))

	// Most severe first.
	severeIdx := strings.Index(out, "Severe Blast km")
	lightIdx := strings.Index(out, "Light Thermal km")
	require.NotEqual(t, -1, severeIdx)
	assert.Less(t, severeIdx, lightIdx)
}

func TestRender_MitigationSections(t *testing.T) {
	in := referenceInput()
	out := Render(in)

	assert.Contains(t, out, "Mitigation (summary):")
	assert.Contains(t, out, "kinetic impactor (DART-proven)")
	assert.Contains(t, out, "Mitigation (auto-brief):")
	assert.Contains(t, out, "Size class: 50-140m    Event: ground    Lead time: 5.0 years    Ocean: no")

	// Every tip from the brief appears as an indented bullet.
	tips := domain.MitigationBrief(domain.Size50to140m, domain.EventGround, 5, false)
	for _, tip := range tips {
		assert.Contains(t, out, "    - "+tip)
	}
}

func TestRender_OceanImpact(t *testing.T) {
	in := referenceInput()
	in.OceanImpact = true
	out := Render(in)

	assert.Contains(t, out, "Ocean: yes")
	assert.Contains(t, out, "plan coastal evacuation to higher ground")
}

func TestRender_Deterministic(t *testing.T) {
	in := referenceInput()
	assert.Equal(t, Render(in), Render(in))
}
