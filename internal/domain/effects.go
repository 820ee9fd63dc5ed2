package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"math"
)

// ErrInvalidParameter marks body parameters the model cannot accept.
// Callers detect it with errors.Is.
var ErrInvalidParameter = errors.New("invalid parameter")

const (
	joulesPerMegatonTNT = 4.184e15

	// minSurfaceYieldMt floors the effective yield so downstream cube
	// roots and radius divisions never see zero or negative values.
	minSurfaceYieldMt = 1e-9

	minAngleDeg = 1.0
	maxAngleDeg = 90.0
)

// Ring scaling constants in km per cube-root-megaton. Kept verbatim for
// output compatibility with the historical calculator.
var ringScaleKm = map[RingKind]float64{
	SevereBlast:   1.1,
	ModerateBlast: 2.2,
	LightBlast:    3.8,
	SevereThermal: 1.6,
	LightThermal:  4.5,
}

// Validate checks the parameters the model cannot defend against itself.
// The entry angle is not validated here; ComputeEffects clamps it.
func (p BodyParameters) Validate() error {
	if p.DiameterM <= 0 {
		return fmt.Errorf("%w: diameter must be positive, got %g m", ErrInvalidParameter, p.DiameterM)
	}
	if p.VelocityKmS <= 0 {
		return fmt.Errorf("%w: velocity must be positive, got %g km/s", ErrInvalidParameter, p.VelocityKmS)
	}
	if p.DensityKgM3 <= 0 {
		return fmt.Errorf("%w: density must be positive, got %g kg/m³", ErrInvalidParameter, p.DensityKgM3)
	}
	return nil
}

// ComputeEffects runs the scaling chain for one body. Pure arithmetic: no
// error conditions exist for in-range input, and callers are expected to
// have run Validate first. The entry angle is clamped to [1°, 90°].
func ComputeEffects(p BodyParameters) EffectsResult {
	mass := p.DensityKgM3 * sphereVolume(p.DiameterM)
	energy := kineticEnergyJoules(mass, p.VelocityKmS)
	kineticMt := energy / joulesPerMegatonTNT

	angle := clampAngle(p.AngleDeg)
	factor := couplingFactor(angle)
	surfaceMt := math.Max(kineticMt*factor, minSurfaceYieldMt)

	return EffectsResult{
		ID:                      generateID(p),
		MassKg:                  mass,
		EnergyJ:                 energy,
		KineticYieldMt:          kineticMt,
		CouplingFactor:          factor,
		EffectiveSurfaceYieldMt: surfaceMt,
		SevereBlastKm:           scaledRadiusKm(surfaceMt, ringScaleKm[SevereBlast]),
		ModerateBlastKm:         scaledRadiusKm(surfaceMt, ringScaleKm[ModerateBlast]),
		LightBlastKm:            scaledRadiusKm(surfaceMt, ringScaleKm[LightBlast]),
		SevereThermalKm:         scaledRadiusKm(surfaceMt, ringScaleKm[SevereThermal]),
		LightThermalKm:          scaledRadiusKm(surfaceMt, ringScaleKm[LightThermal]),
		ComputedAt:              clock.Now(),
	}
}

// sphereVolume returns the volume in m³ of a sphere with the given diameter.
func sphereVolume(diameterM float64) float64 {
	r := diameterM / 2
	return 4.0 / 3.0 * math.Pi * r * r * r
}

// kineticEnergyJoules computes ½mv² with velocity converted to m/s.
func kineticEnergyJoules(massKg, velocityKmS float64) float64 {
	v := velocityKmS * 1000.0
	return 0.5 * massKg * v * v
}

func clampAngle(angleDeg float64) float64 {
	return math.Max(minAngleDeg, math.Min(maxAngleDeg, angleDeg))
}

// couplingFactor maps a clamped entry angle to the fraction of kinetic
// energy coupled into surface effects: 0.55 at grazing incidence rising to
// 1.0 (capped) near vertical.
func couplingFactor(angleDeg float64) float64 {
	f := 0.55 + 0.5*math.Sin(angleDeg*math.Pi/180.0)
	return math.Min(f, 1.0)
}

// scaledRadiusKm applies the cube-root blast/thermal scaling law.
func scaledRadiusKm(yieldMt, k float64) float64 {
	return k * math.Cbrt(math.Max(yieldMt, 1e-12))
}

// generateID produces a deterministic ID from the body parameters.
// Recomputing a scenario yields the same ID, so consumers can deduplicate
// without coordination.
func generateID(p BodyParameters) string {
	input := fmt.Sprintf("%g|%g|%g|%g", p.DiameterM, p.VelocityKmS, p.DensityKgM3, p.AngleDeg)
	hash := sha256.Sum256([]byte(input))
	return ClassifySize(p.DiameterM).Slug() + "-" + hex.EncodeToString(hash[:8])
}
