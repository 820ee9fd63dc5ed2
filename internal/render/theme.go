package render

import "github.com/pellucidar/impactmap/internal/domain"

// RingStyle is the stroke color and fill alpha for one damage ring.
type RingStyle struct {
	Color     Color `json:"color"`
	FillAlpha uint8 `json:"fill_alpha"`
}

// Theme is the renderer's cosmetic configuration. It is passed into
// BuildScene rather than hardcoded so frontends can restyle the map without
// touching layout logic.
type Theme struct {
	Background Color `json:"background"`
	Grid       Color `json:"grid"`
	Label      Color `json:"label"`
	ScaleBar   Color `json:"scale_bar"`
	Marker     Color `json:"marker"`

	Rings map[domain.RingKind]RingStyle `json:"rings"`
}

// DefaultTheme is the standard dark palette.
var DefaultTheme = Theme{
	Background: Color{R: 0x0f, G: 0x12, B: 0x17, A: 255},
	Grid:       Color{R: 0x22, G: 0x28, B: 0x33, A: 255},
	Label:      Color{R: 0x9a, G: 0xa3, B: 0xaf, A: 255},
	ScaleBar:   Color{R: 0xa9, G: 0xb1, B: 0xbd, A: 255},
	Marker:     Color{R: 0x32, G: 0x91, B: 0xff, A: 255},

	Rings: map[domain.RingKind]RingStyle{
		domain.SevereBlast:   {Color: Color{R: 0xff, G: 0x4d, B: 0x4f, A: 255}, FillAlpha: 48},
		domain.ModerateBlast: {Color: Color{R: 0xfa, G: 0x8c, B: 0x16, A: 255}, FillAlpha: 28},
		domain.LightBlast:    {Color: Color{R: 0xfa, G: 0xdb, B: 0x14, A: 255}, FillAlpha: 28},
		domain.SevereThermal: {Color: Color{R: 0xd4, G: 0x6b, B: 0x08, A: 255}, FillAlpha: 40},
		domain.LightThermal:  {Color: Color{R: 0xfa, G: 0xad, B: 0x14, A: 255}, FillAlpha: 32},
	},
}
