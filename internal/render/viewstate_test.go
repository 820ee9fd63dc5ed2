package render

import (
	"testing"

	"github.com/pellucidar/impactmap/internal/domain"
	"github.com/stretchr/testify/assert"
)

func testEffects() domain.EffectsResult {
	return domain.ComputeEffects(domain.BodyParameters{
		DiameterM: 50, VelocityKmS: 20, DensityKgM3: 3000, AngleDeg: 45,
	})
}

func TestApply_SetDataResetsTransform(t *testing.T) {
	s := NewViewState()
	s.Zoom = 4.2
	s.PanX, s.PanY = 100, -30
	s.Dragging = true

	s = Apply(s, SetData{Center: domain.Geo{Lat: 50.45, Lon: 30.52}, Effects: testEffects()})

	assert.Equal(t, 1.0, s.Zoom)
	assert.Equal(t, 0.0, s.PanX)
	assert.Equal(t, 0.0, s.PanY)
	assert.False(t, s.Dragging)
	assert.Equal(t, 50.45, s.Center.Lat)
	assert.False(t, s.Effects.IsZero())
}

func TestApply_WheelZoom(t *testing.T) {
	s := NewViewState()

	s = Apply(s, Wheel{DeltaY: 120})
	assert.InDelta(t, 1.2, s.Zoom, 1e-12)

	s = Apply(s, Wheel{DeltaY: -120})
	assert.InDelta(t, 1.0, s.Zoom, 1e-12)

	// Zero delta is a no-op.
	before := s
	assert.Equal(t, before, Apply(s, Wheel{DeltaY: 0}))
}

func TestApply_ZoomClampSaturates(t *testing.T) {
	s := NewViewState()
	for range 50 {
		s = Apply(s, Wheel{DeltaY: 1})
	}
	assert.Equal(t, ZoomMax, s.Zoom)

	for range 100 {
		s = Apply(s, Wheel{DeltaY: -1})
	}
	assert.Equal(t, ZoomMin, s.Zoom)
}

func TestApply_DragAccumulatesPan(t *testing.T) {
	s := NewViewState()

	s = Apply(s, DragStart{X: 100, Y: 100})
	s = Apply(s, DragMove{X: 110, Y: 95})
	s = Apply(s, DragMove{X: 130, Y: 90})
	s = Apply(s, DragEnd{})

	assert.Equal(t, 30.0, s.PanX)
	assert.Equal(t, -10.0, s.PanY)
	assert.False(t, s.Dragging)

	// A second gesture accumulates on top of the first.
	s = Apply(s, DragStart{X: 0, Y: 0})
	s = Apply(s, DragMove{X: -5, Y: 5})
	assert.Equal(t, 25.0, s.PanX)
	assert.Equal(t, -5.0, s.PanY)
}

func TestApply_DragMoveWithoutStartIgnored(t *testing.T) {
	s := NewViewState()
	after := Apply(s, DragMove{X: 50, Y: 50})
	assert.Equal(t, s, after)
}

func TestApply_ResetAndDoubleClick(t *testing.T) {
	for _, ev := range []Event{Reset{}, DoubleClick{}} {
		s := NewViewState()
		s = Apply(s, SetData{Center: domain.Geo{Lat: 1, Lon: 2}, Effects: testEffects()})
		s = Apply(s, Wheel{DeltaY: 1})
		s = Apply(s, DragStart{X: 0, Y: 0})
		s = Apply(s, DragMove{X: 40, Y: 40})

		s = Apply(s, ev)

		assert.Equal(t, 1.0, s.Zoom)
		assert.Equal(t, 0.0, s.PanX)
		assert.Equal(t, 0.0, s.PanY)
		// Center and effects survive a reset.
		assert.Equal(t, 1.0, s.Center.Lat)
		assert.False(t, s.Effects.IsZero())
	}
}

func TestApply_InputStateUnchanged(t *testing.T) {
	s := NewViewState()
	copyOf := s

	_ = Apply(s, Wheel{DeltaY: 1})
	_ = Apply(s, DragStart{X: 9, Y: 9})

	assert.Equal(t, copyOf, s)
}
