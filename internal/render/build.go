package render

import (
	"fmt"
	"math"

	"github.com/pellucidar/impactmap/internal/domain"
)

const (
	// safeMargin keeps the largest ring 10% inside the viewport at zoom 1.
	safeMargin = 1.10

	// minRadiusKm floors every radius-based division.
	minRadiusKm = 1e-9

	// gridTargetPx is the desired pixel spacing between grid lines; the
	// actual step is the nearest nice number in kilometers.
	gridTargetPx = 120.0

	// scaleBarTargetPx is the desired scale-bar length.
	scaleBarTargetPx = 150.0

	markerRadiusPx = 5.0
)

// ringDrawOrder lists the rings back to front: largest and least severe
// first, so severe zones composite on top regardless of radius ordering.
var ringDrawOrder = []domain.RingKind{
	domain.LightThermal,
	domain.SevereThermal,
	domain.LightBlast,
	domain.ModerateBlast,
	domain.SevereBlast,
}

// legendOrder lists the rings most severe first for the static legend.
var legendOrder = []domain.RingKind{
	domain.SevereBlast,
	domain.ModerateBlast,
	domain.LightBlast,
	domain.SevereThermal,
	domain.LightThermal,
}

// BuildScene projects the view state onto a scene graph. Deterministic and
// idempotent: the same state, viewport, and theme always produce the same
// scene. A degenerate viewport yields a background-only scene.
func BuildScene(s ViewState, vp Viewport, th Theme) Scene {
	scene := Scene{Background: th.Background}
	if vp.Width <= 0 || vp.Height <= 0 {
		return scene
	}

	cx := vp.Width/2 + s.PanX
	cy := vp.Height/2 + s.PanY

	rmax := s.Effects.MaxRadiusKm()
	if rmax <= 0 {
		rmax = 1.0
	}

	pxPerKm := (math.Min(vp.Width, vp.Height) / 2) / (math.Max(rmax, minRadiusKm) * safeMargin) * s.Zoom
	kmPerPx := 1.0 / pxPerKm

	buildGrid(&scene, vp, cx, cy, pxPerKm, kmPerPx, th)
	buildScaleBar(&scene, vp, kmPerPx, pxPerKm, th)
	buildRings(&scene, s.Effects, cx, cy, pxPerKm, th)
	buildMarker(&scene, cx, cy, th)
	buildLegend(&scene, th)

	return scene
}

// buildGrid draws km grid lines at nice-number multiples with signed
// offset labels. Screen Y grows downward while north is up, so the
// vertical sign is inverted for horizontal lines.
func buildGrid(scene *Scene, vp Viewport, cx, cy, pxPerKm, kmPerPx float64, th Theme) {
	step := NiceStep(gridTargetPx * kmPerPx)

	halfWKm := (vp.Width / 2) * kmPerPx
	halfHKm := (vp.Height / 2) * kmPerPx

	for xKm := -math.Floor(halfWKm/step) * step; xKm <= halfWKm+1e-9; xKm += step {
		x := cx + xKm*pxPerKm
		scene.Lines = append(scene.Lines, Line{X1: x, Y1: 0, X2: x, Y2: vp.Height, Color: th.Grid, Width: 1})
		if math.Abs(xKm) > 1e-6 {
			scene.Labels = append(scene.Labels, Label{X: x + 6, Y: 10, Text: formatSignedKm(xKm), Color: th.Label})
		}
	}

	for yKm := -math.Floor(halfHKm/step) * step; yKm <= halfHKm+1e-9; yKm += step {
		y := cy - yKm*pxPerKm
		scene.Lines = append(scene.Lines, Line{X1: 0, Y1: y, X2: vp.Width, Y2: y, Color: th.Grid, Width: 1})
		if math.Abs(yKm) > 1e-6 {
			scene.Labels = append(scene.Labels, Label{X: 8, Y: y - 14, Text: formatSignedKm(yKm), Color: th.Label})
		}
	}
}

// buildScaleBar draws a nice-length horizontal bar with end ticks near the
// bottom-left corner.
func buildScaleBar(scene *Scene, vp Viewport, kmPerPx, pxPerKm float64, th Theme) {
	kmLen := NiceStep(scaleBarTargetPx * kmPerPx)
	pxLen := kmLen * pxPerKm

	x0 := 20.0
	y := vp.Height - 24

	scene.Lines = append(scene.Lines,
		Line{X1: x0, Y1: y, X2: x0 + pxLen, Y2: y, Color: th.ScaleBar, Width: 2},
		Line{X1: x0, Y1: y - 5, X2: x0, Y2: y + 5, Color: th.ScaleBar, Width: 2},
		Line{X1: x0 + pxLen, Y1: y - 5, X2: x0 + pxLen, Y2: y + 5, Color: th.ScaleBar, Width: 2},
	)
	scene.Labels = append(scene.Labels, Label{X: x0 + pxLen + 8, Y: y - 14, Text: formatKm(kmLen), Color: th.Label})
}

// buildRings draws the five damage rings back to front as semi-transparent
// disks, each labeled just outside its circumference at 3 o'clock. Rings
// with non-positive radius are skipped.
func buildRings(scene *Scene, effects domain.EffectsResult, cx, cy, pxPerKm float64, th Theme) {
	for _, kind := range ringDrawOrder {
		radiusKm := effects.Radius(kind)
		if radiusKm <= 0 {
			continue
		}
		style := th.Rings[kind]
		r := radiusKm * pxPerKm

		scene.Circles = append(scene.Circles, Circle{
			CX:     cx,
			CY:     cy,
			R:      r,
			Stroke: style.Color,
			Fill:   style.Color.WithAlpha(style.FillAlpha),
		})
		scene.Labels = append(scene.Labels, Label{
			X:     cx + r + 8,
			Y:     cy - 10,
			Text:  fmt.Sprintf("%s: %.1f km", kind.Label(), radiusKm),
			Color: th.ScaleBar,
		})
	}
}

func buildMarker(scene *Scene, cx, cy float64, th Theme) {
	scene.Circles = append(scene.Circles, Circle{
		CX:     cx,
		CY:     cy,
		R:      markerRadiusPx,
		Stroke: th.Marker,
		Fill:   th.Marker,
	})
}

// buildLegend draws the fixed legend in the top-left corner, independent of
// zoom and pan.
func buildLegend(scene *Scene, th Theme) {
	y := 10.0
	for _, kind := range legendOrder {
		style := th.Rings[kind]
		scene.Rects = append(scene.Rects, Rect{X: 10, Y: y, W: 14, H: 8, Stroke: style.Color, Fill: style.Color})
		scene.Labels = append(scene.Labels, Label{X: 30, Y: y - 5, Text: kind.Label(), Color: th.Label})
		y += 18
	}
}

// formatSignedKm renders a grid offset like "+120 km" or "-0.5 km".
func formatSignedKm(km float64) string {
	return fmt.Sprintf("%+g km", km)
}

// formatKm renders a scale-bar length like "50 km" or "0.2 km".
func formatKm(km float64) string {
	return fmt.Sprintf("%g km", km)
}
