// Package render turns an impact effects result into a 2D damage-ring map.
//
// The renderer is split the functional way: an immutable [ViewState] value,
// a reducer [Apply] that folds input events into the next state, and a pure
// [BuildScene] that projects the state onto a scene graph of drawing
// primitives. Nothing here touches a drawing surface; adapters rasterize
// the scene (terminal cells, JSON for web frontends).
//
// The projection is a local tangent-plane approximation: rings and grid are
// drawn on a flat km/pixel plane centered on the impact point, with fixed
// km-per-degree constants for geographic context. It is not a map
// projection and is only valid near the chosen center.
package render

// Color is an RGBA color. Alpha 255 is opaque.
type Color struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
	A uint8 `json:"a"`
}

// WithAlpha returns the color with its alpha replaced.
func (c Color) WithAlpha(a uint8) Color {
	c.A = a
	return c
}

// Line is a straight stroke between two points in pixel coordinates.
type Line struct {
	X1    float64 `json:"x1"`
	Y1    float64 `json:"y1"`
	X2    float64 `json:"x2"`
	Y2    float64 `json:"y2"`
	Color Color   `json:"color"`
	Width float64 `json:"width"`
}

// Circle is a stroked, optionally filled disk.
type Circle struct {
	CX     float64 `json:"cx"`
	CY     float64 `json:"cy"`
	R      float64 `json:"r"`
	Stroke Color   `json:"stroke"`
	Fill   Color   `json:"fill"` // fully transparent when A == 0
}

// Rect is an axis-aligned rectangle (legend swatches).
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	W      float64 `json:"w"`
	H      float64 `json:"h"`
	Stroke Color   `json:"stroke"`
	Fill   Color   `json:"fill"`
}

// Label is a text annotation anchored at its top-left corner.
type Label struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Text  string  `json:"text"`
	Color Color   `json:"color"`
}

// Scene is the complete drawable output of one redraw. Primitives within
// each slice are ordered back to front.
type Scene struct {
	Background Color    `json:"background"`
	Lines      []Line   `json:"lines"`
	Circles    []Circle `json:"circles"`
	Rects      []Rect   `json:"rects"`
	Labels     []Label  `json:"labels"`
}

// Viewport is the drawable area in pixels.
type Viewport struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}
