package render

import "github.com/pellucidar/impactmap/internal/domain"

const (
	// ZoomMin and ZoomMax bound the multiplicative zoom factor.
	ZoomMin = 0.2
	ZoomMax = 20.0

	// wheelFactor is the zoom change per wheel tick.
	wheelFactor = 1.2
)

// ViewState is the renderer's complete state. It is a value: every reducer
// step returns a new state and never mutates the input, which keeps redraw
// trivially testable and replayable.
type ViewState struct {
	Center  domain.Geo
	Effects domain.EffectsResult

	Zoom float64
	PanX float64
	PanY float64

	// Drag gesture tracking. LastX/LastY are only meaningful while
	// Dragging is true.
	Dragging bool
	LastX    float64
	LastY    float64
}

// NewViewState returns the neutral state: zoom 1, no pan, no effects.
func NewViewState() ViewState {
	return ViewState{Zoom: 1.0}
}

// Event is an input event folded into the view state by Apply.
type Event interface{ isEvent() }

// SetData replaces the impact center and effects set and resets the view
// transform. A zero Effects value yields the empty-scene state.
type SetData struct {
	Center  domain.Geo
	Effects domain.EffectsResult
}

// Wheel is one zoom tick. Positive DeltaY zooms in, negative zooms out,
// zero is ignored.
type Wheel struct{ DeltaY float64 }

// DragStart begins a pan gesture at the given pixel position.
type DragStart struct{ X, Y float64 }

// DragMove continues an active pan gesture; the delta from the previous
// position accumulates into the pan offset. Ignored when no drag is active.
type DragMove struct{ X, Y float64 }

// DragEnd finishes the pan gesture.
type DragEnd struct{}

// DoubleClick resets zoom and pan, keeping center and effects.
type DoubleClick struct{}

// Reset is the explicit equivalent of DoubleClick.
type Reset struct{}

func (SetData) isEvent()     {}
func (Wheel) isEvent()       {}
func (DragStart) isEvent()   {}
func (DragMove) isEvent()    {}
func (DragEnd) isEvent()     {}
func (DoubleClick) isEvent() {}
func (Reset) isEvent()       {}

// Apply folds one event into the state and returns the next state.
func Apply(s ViewState, ev Event) ViewState {
	switch e := ev.(type) {
	case SetData:
		s.Center = e.Center
		s.Effects = e.Effects
		s.Zoom = 1.0
		s.PanX, s.PanY = 0, 0
		s.Dragging = false

	case Wheel:
		if e.DeltaY == 0 {
			return s
		}
		factor := wheelFactor
		if e.DeltaY < 0 {
			factor = 1 / wheelFactor
		}
		s.Zoom = clamp(s.Zoom*factor, ZoomMin, ZoomMax)

	case DragStart:
		s.Dragging = true
		s.LastX, s.LastY = e.X, e.Y

	case DragMove:
		if !s.Dragging {
			return s
		}
		s.PanX += e.X - s.LastX
		s.PanY += e.Y - s.LastY
		s.LastX, s.LastY = e.X, e.Y

	case DragEnd:
		s.Dragging = false

	case DoubleClick, Reset:
		s.Zoom = 1.0
		s.PanX, s.PanY = 0, 0
		s.Dragging = false
	}
	return s
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
