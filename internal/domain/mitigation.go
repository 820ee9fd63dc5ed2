package domain

// mitigationBase holds the per-size-class advice blocks. Wording is kept
// stable: downstream report output is diffed in consumer tests.
var mitigationBase = map[SizeClass][]string{
	SizeUnder10m: {
		"Public alert within city: do NOT look at the flash; expect shock wave in 1–3 minutes.",
		"Keep people away from windows; cancel 'go watch the sky' routines.",
		"Fire service on standby; monitor infrasound/cameras for altitude and yield.",
	},
	Size10to50m: {
		"Targeted alerts for light–moderate overpressure zone; move people indoors away from glass.",
		"Pause traffic on bridges/viaducts within forecasted focus area.",
		"Close fuel handling and reduce ignition sources; fire brigades staged.",
	},
	Size50to140m: {
		"With ≥5–10 years: kinetic impactor mission; pre-flyby to measure density/shape/rotation.",
		"With days–weeks: staged evacuation from severe/moderate blast zones; firebreak prep.",
		"Shut down hazardous industry; isolate gas lines; protect hospitals' backup power.",
	},
	Size140to300m: {
		"With ≥10 years: series of kinetic impactors; for rubble piles use multi-hit phasing.",
		"Late detection: consider nuclear standoff in deep space (politically hard).",
		"Regional evacuation; protect critical infrastructure and water supplies.",
	},
	Size300mTo1km: {
		"International mission: multiple impactors; optional standoff; decade-scale navigation.",
		"Inter-regional evacuation planning; energy/communications continuity plans.",
	},
	SizeOver1km: {
		"Only early detection + multi-stage deflection over decades will work.",
		"Global civil-protection planning: food, logistics, medical, climate impacts.",
	},
}

var mitigationAirburst = []string{
	"Aim to increase burst altitude (if any standoff is possible) to spread the shock.",
	"Prioritize glass hazard mitigation; shelter-in-place beats road evacuation.",
}

var mitigationGround = []string{
	"Crater-forming impact: prioritize full evacuation from severe/moderate blast and thermal zones.",
	"Debris fires likely; wide firebreaks, water resources pre-positioned.",
}

var mitigationOcean = []string{
	"Ocean impact expected: evaluate bathymetry; plan coastal evacuation to higher ground.",
	"Keep ports clear; protect fuel/chemical tanks; reroute shipping lanes.",
}

// MitigationBrief returns an ordered list of mitigation tips for the given
// classification: the size-class base block, then airburst/ground tweaks,
// then ocean advice when applicable, then a lead-time feasibility line for
// space-based deflection. Negative lead times are treated as zero.
func MitigationBrief(size SizeClass, event EventType, leadYears float64, ocean bool) []string {
	out := make([]string, 0, 8)
	out = append(out, mitigationBase[size]...)

	if event == EventAirburst {
		out = append(out, mitigationAirburst...)
	} else {
		out = append(out, mitigationGround...)
	}

	if ocean {
		out = append(out, mitigationOcean...)
	}

	out = append(out, leadTimeAdvice(max(leadYears, 0)))
	return out
}

// leadTimeAdvice filters space-based deflection options by available lead
// time. Thresholds: 10 years for a full impactor campaign, 5 for a single
// prompt impactor, 1 for civil protection with last-minute measures.
func leadTimeAdvice(leadYears float64) string {
	switch {
	case leadYears >= 10:
		return "Lead time sufficient for kinetic impactor mission(s) after reconnaissance flyby."
	case leadYears >= 5:
		return "Borderline lead time: single kinetic impactor may help if launched promptly."
	case leadYears >= 1:
		return "Too late for slow-push/gravity tractor; consider civil protection and last-minute measures only."
	default:
		return "No real time for orbital deflection; focus 100% on civil protection."
	}
}
