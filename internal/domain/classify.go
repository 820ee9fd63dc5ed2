package domain

// SizeClass buckets body diameters for mitigation planning.
type SizeClass string

const (
	SizeUnder10m  SizeClass = "<10m"
	Size10to50m   SizeClass = "10-50m"
	Size50to140m  SizeClass = "50-140m"
	Size140to300m SizeClass = "140-300m"
	Size300mTo1km SizeClass = "300m-1km"
	SizeOver1km   SizeClass = ">1km"
)

// EventType distinguishes airbursts from crater-forming ground impacts.
type EventType string

const (
	EventAirburst EventType = "airburst"
	EventGround   EventType = "ground"
)

// ClassifySize maps a diameter to its size class. Breakpoints at 10 m,
// 50 m, 140 m, 300 m, and 1 km follow planetary-defense convention (140 m
// is the NASA NEO Survey completeness target).
func ClassifySize(diameterM float64) SizeClass {
	switch {
	case diameterM < 10:
		return SizeUnder10m
	case diameterM < 50:
		return Size10to50m
	case diameterM < 140:
		return Size50to140m
	case diameterM < 300:
		return Size140to300m
	case diameterM < 1000:
		return Size300mTo1km
	default:
		return SizeOver1km
	}
}

// ClassifyEventType guesses airburst versus ground impact from diameter and
// entry angle. Small bodies break up high; mid-size bodies on shallow
// trajectories shed their energy in the atmosphere too.
func ClassifyEventType(diameterM, angleDeg float64) EventType {
	if diameterM < 60 && angleDeg < 40 {
		return EventAirburst
	}
	if diameterM < 30 {
		return EventAirburst
	}
	return EventGround
}

// Slug returns an identifier-safe form of the size class, used as the
// scenario ID prefix.
func (s SizeClass) Slug() string {
	switch s {
	case SizeUnder10m:
		return "sub10m"
	case Size10to50m:
		return "10-50m"
	case Size50to140m:
		return "50-140m"
	case Size140to300m:
		return "140-300m"
	case Size300mTo1km:
		return "300m-1km"
	case SizeOver1km:
		return "1km-plus"
	default:
		return "unknown"
	}
}
