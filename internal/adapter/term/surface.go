// Package term rasterizes render scenes onto a terminal screen and
// translates terminal input into renderer events.
//
// Terminal cells are roughly twice as tall as wide, so each cell maps to
// a 1x2 pixel column drawn with the upper-half-block glyph: foreground
// carries the top pixel, background the bottom. A screen of W x H cells
// therefore exposes a W x 2H pixel viewport to the renderer.
package term

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/pellucidar/impactmap/internal/render"
)

const halfBlock = '▀'

// Surface draws scenes onto a tcell screen.
type Surface struct {
	screen tcell.Screen
}

// NewSurface wraps an initialized screen.
func NewSurface(screen tcell.Screen) *Surface {
	return &Surface{screen: screen}
}

// Viewport returns the pixel viewport for the current screen size.
func (s *Surface) Viewport() render.Viewport {
	w, h := s.screen.Size()
	return render.Viewport{Width: float64(w), Height: float64(2 * h)}
}

// Draw rasterizes the scene and flushes it to the terminal.
func (s *Surface) Draw(scene render.Scene) {
	w, h := s.screen.Size()
	if w <= 0 || h <= 0 {
		return
	}

	f := newFrame(w, 2*h, scene.Background)
	for _, l := range scene.Lines {
		f.line(l)
	}
	for _, c := range scene.Circles {
		f.circle(c)
	}
	for _, r := range scene.Rects {
		f.rect(r)
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			top := f.at(x, 2*y)
			bottom := f.at(x, 2*y+1)
			style := tcell.StyleDefault.
				Foreground(toTcell(top)).
				Background(toTcell(bottom))
			s.screen.SetContent(x, y, halfBlock, nil, style)
		}
	}

	for _, l := range scene.Labels {
		s.drawLabel(f, l)
	}

	s.screen.Show()
}

func (s *Surface) drawLabel(f *frame, l render.Label) {
	x, y := int(l.X), int(l.Y)/2
	_, h := s.screen.Size()
	if y < 0 || y >= h {
		return
	}
	for _, r := range l.Text {
		if x >= f.w {
			break
		}
		if x >= 0 {
			style := tcell.StyleDefault.
				Foreground(toTcell(l.Color)).
				Background(toTcell(f.at(x, 2*y+1)))
			s.screen.SetContent(x, y, r, nil, style)
		}
		x++
	}
}

func toTcell(c render.Color) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// frame is the offscreen pixel buffer primitives composite into.
type frame struct {
	w, h int
	px   []render.Color
}

func newFrame(w, h int, background render.Color) *frame {
	f := &frame{w: w, h: h, px: make([]render.Color, w*h)}
	bg := background.WithAlpha(255)
	for i := range f.px {
		f.px[i] = bg
	}
	return f
}

func (f *frame) at(x, y int) render.Color {
	if x < 0 || x >= f.w || y < 0 || y >= f.h {
		return render.Color{}
	}
	return f.px[y*f.w+x]
}

// set alpha-composites c over the existing pixel.
func (f *frame) set(x, y int, c render.Color) {
	if x < 0 || x >= f.w || y < 0 || y >= f.h || c.A == 0 {
		return
	}
	i := y*f.w + x
	if c.A == 255 {
		f.px[i] = c
		return
	}
	base := f.px[i]
	a := uint16(c.A)
	inv := 255 - a
	f.px[i] = render.Color{
		R: uint8((uint16(c.R)*a + uint16(base.R)*inv) / 255),
		G: uint8((uint16(c.G)*a + uint16(base.G)*inv) / 255),
		B: uint8((uint16(c.B)*a + uint16(base.B)*inv) / 255),
		A: 255,
	}
}

// line draws a Bresenham stroke. Strokes wider than one pixel get a
// perpendicular neighbor, which is enough for the scale bar.
func (f *frame) line(l render.Line) {
	x1, y1 := int(math.Round(l.X1)), int(math.Round(l.Y1))
	x2, y2 := int(math.Round(l.X2)), int(math.Round(l.Y2))

	dx, dy := abs(x2-x1), -abs(y2-y1)
	sx, sy := sign(x2-x1), sign(y2-y1)
	err := dx + dy

	steep := -dy > dx
	for {
		f.set(x1, y1, l.Color)
		if l.Width > 1 {
			if steep {
				f.set(x1+1, y1, l.Color)
			} else {
				f.set(x1, y1+1, l.Color)
			}
		}
		if x1 == x2 && y1 == y2 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x1 += sx
		}
		if e2 <= dx {
			err += dx
			y1 += sy
		}
	}
}

// circle composites the fill row by row, then strokes the outline by
// walking both axes so steep arcs have no gaps.
func (f *frame) circle(c render.Circle) {
	r := c.R
	if r <= 0 {
		if c.Fill.A > 0 || c.Stroke.A > 0 {
			f.set(int(math.Round(c.CX)), int(math.Round(c.CY)), c.Stroke)
		}
		return
	}

	if c.Fill.A > 0 {
		top := int(math.Ceil(c.CY - r))
		bottom := int(math.Floor(c.CY + r))
		for y := top; y <= bottom; y++ {
			dy := float64(y) - c.CY
			half := math.Sqrt(math.Max(r*r-dy*dy, 0))
			left := int(math.Ceil(c.CX - half))
			right := int(math.Floor(c.CX + half))
			for x := left; x <= right; x++ {
				f.set(x, y, c.Fill)
			}
		}
	}

	if c.Stroke.A > 0 {
		for y := int(math.Ceil(c.CY - r)); y <= int(math.Floor(c.CY+r)); y++ {
			dy := float64(y) - c.CY
			half := math.Sqrt(math.Max(r*r-dy*dy, 0))
			f.set(int(math.Round(c.CX-half)), y, c.Stroke)
			f.set(int(math.Round(c.CX+half)), y, c.Stroke)
		}
		for x := int(math.Ceil(c.CX - r)); x <= int(math.Floor(c.CX+r)); x++ {
			dx := float64(x) - c.CX
			half := math.Sqrt(math.Max(r*r-dx*dx, 0))
			f.set(x, int(math.Round(c.CY-half)), c.Stroke)
			f.set(x, int(math.Round(c.CY+half)), c.Stroke)
		}
	}
}

func (f *frame) rect(r render.Rect) {
	x1, y1 := int(math.Round(r.X)), int(math.Round(r.Y))
	x2, y2 := int(math.Round(r.X+r.W)), int(math.Round(r.Y+r.H))

	if r.Fill.A > 0 {
		for y := y1; y <= y2; y++ {
			for x := x1; x <= x2; x++ {
				f.set(x, y, r.Fill)
			}
		}
	}
	if r.Stroke.A > 0 {
		for x := x1; x <= x2; x++ {
			f.set(x, y1, r.Stroke)
			f.set(x, y2, r.Stroke)
		}
		for y := y1; y <= y2; y++ {
			f.set(x1, y, r.Stroke)
			f.set(x2, y, r.Stroke)
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
