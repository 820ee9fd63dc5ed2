// Package domain models asteroid/meteoroid impact scenarios and their
// estimated surface effects.
//
// # Effects Model
//
// The model is a closed-form scaling chain, not an entry simulation:
//
//	mass            = density × sphere volume from diameter
//	kinetic energy  = ½ m v²          (velocity converted km/s → m/s)
//	kinetic yield   = E / 4.184e15    (joules per megaton TNT-equivalent)
//	surface yield   = kinetic yield × coupling factor, floored at 1e-9 Mt
//	damage radius   = k × surface_yield^(1/3)   per ring kind
//
// The surface-coupling factor is 0.55 + 0.5·sin(entry angle), capped at 1.0.
// Shallow grazing entries couple less energy into the surface than vertical
// ones. The entry angle is clamped to [1°, 90°] before use.
//
// Ring constants (km per cube-root-megaton):
//
//	severe blast 1.1 | moderate blast 2.2 | light blast 3.8
//	severe thermal 1.6 | light thermal 4.5
//
// The coupling formula and the ring constants are empirical/illustrative
// rather than physically derived. They are kept verbatim for output
// compatibility with the historical calculator.
//
// # Classification
//
// Size classes break at 10 m, 50 m, 140 m, 300 m, and 1 km. An event is an
// airburst when the body is under 30 m, or under 60 m entering shallower
// than 40°; everything else is treated as a ground impact. Both feed the
// mitigation rule table in [MitigationBrief].
//
// # Catalog Input
//
// Scenario parameters may come from a NEO catalog record instead of manual
// input. Catalog diameters arrive as min/max estimates and are collapsed to
// the midpoint; the default velocity is the first close approach with a
// known relative velocity. See [ResolveFromCatalog].
//
// # ID Generation
//
// Scenario IDs are deterministic SHA-256 hashes of the four body parameters,
// prefixed with the size class. Recomputing the same scenario produces the
// same ID, so downstream consumers can deduplicate freely. See [generateID].
package domain
