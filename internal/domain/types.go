package domain

import "time"

// BodyParameters describes an impacting body. Immutable input to the
// effects model; supplied per calculation, never stored.
type BodyParameters struct {
	DiameterM   float64 `json:"diameter_m"`
	VelocityKmS float64 `json:"velocity_km_s"`
	DensityKgM3 float64 `json:"density_kg_m3"`
	AngleDeg    float64 `json:"angle_deg"` // entry angle from horizontal, clamped to [1,90]
}

// Geo represents a WGS-84 latitude/longitude coordinate pair.
type Geo struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// RingKind names one of the five damage rings.
type RingKind string

const (
	SevereBlast   RingKind = "severe_blast_km"
	ModerateBlast RingKind = "moderate_blast_km"
	LightBlast    RingKind = "light_blast_km"
	SevereThermal RingKind = "severe_thermal_km"
	LightThermal  RingKind = "light_thermal_km"
)

// RingKinds lists the ring kinds from most to least severe within each
// family. Iteration order for reports.
var RingKinds = []RingKind{SevereBlast, ModerateBlast, LightBlast, SevereThermal, LightThermal}

// Label returns a human-readable name, e.g. "Severe blast".
func (k RingKind) Label() string {
	switch k {
	case SevereBlast:
		return "Severe blast"
	case ModerateBlast:
		return "Moderate blast"
	case LightBlast:
		return "Light blast"
	case SevereThermal:
		return "Severe thermal"
	case LightThermal:
		return "Light thermal"
	default:
		return string(k)
	}
}

// EffectsResult holds the computed yield and damage radii for one scenario.
type EffectsResult struct {
	ID string `json:"id"`

	// Intermediate quantities, reported but not used by the renderer.
	MassKg         float64 `json:"mass_kg"`
	EnergyJ        float64 `json:"energy_j"`
	KineticYieldMt float64 `json:"kinetic_yield_mt"`
	CouplingFactor float64 `json:"coupling_factor"`

	EffectiveSurfaceYieldMt float64 `json:"effective_surface_yield_mt"`

	SevereBlastKm   float64 `json:"severe_blast_km"`
	ModerateBlastKm float64 `json:"moderate_blast_km"`
	LightBlastKm    float64 `json:"light_blast_km"`
	SevereThermalKm float64 `json:"severe_thermal_km"`
	LightThermalKm  float64 `json:"light_thermal_km"`

	ComputedAt time.Time `json:"computed_at"`
}

// Radius returns the radius for a ring kind in kilometers.
func (r EffectsResult) Radius(kind RingKind) float64 {
	switch kind {
	case SevereBlast:
		return r.SevereBlastKm
	case ModerateBlast:
		return r.ModerateBlastKm
	case LightBlast:
		return r.LightBlastKm
	case SevereThermal:
		return r.SevereThermalKm
	case LightThermal:
		return r.LightThermalKm
	default:
		return 0
	}
}

// Radii returns the five radii keyed by ring kind.
func (r EffectsResult) Radii() map[RingKind]float64 {
	out := make(map[RingKind]float64, len(RingKinds))
	for _, k := range RingKinds {
		out[k] = r.Radius(k)
	}
	return out
}

// MaxRadiusKm returns the largest of the five radii, or 0 when all are zero.
func (r EffectsResult) MaxRadiusKm() float64 {
	var maxR float64
	for _, k := range RingKinds {
		if v := r.Radius(k); v > maxR {
			maxR = v
		}
	}
	return maxR
}

// IsZero reports whether the result carries no data (the renderer's
// empty-scene state).
func (r EffectsResult) IsZero() bool {
	return r.EffectiveSurfaceYieldMt == 0 && r.MaxRadiusKm() == 0
}
