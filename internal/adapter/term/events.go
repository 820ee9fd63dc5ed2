package term

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/pellucidar/impactmap/internal/render"
)

// Action is what the event loop should do beyond feeding the reducer.
type Action int

const (
	ActionNone Action = iota
	ActionQuit
	ActionResize
)

// doubleClickWindow is the maximum gap between two presses that counts
// as a double click.
const doubleClickWindow = 400 * time.Millisecond

// Translator converts tcell events into renderer events. It tracks drag
// and double-click state across calls, so one instance serves the whole
// event loop.
type Translator struct {
	dragging  bool
	lastPress time.Time
}

// Translate maps one terminal event to zero or more renderer events plus
// an action for the loop. Mouse coordinates are converted from cells to
// the 1x2 pixel space used by Surface.
func (t *Translator) Translate(ev tcell.Event) ([]render.Event, Action) {
	switch e := ev.(type) {
	case *tcell.EventResize:
		return nil, ActionResize

	case *tcell.EventKey:
		switch {
		case e.Key() == tcell.KeyEscape || e.Key() == tcell.KeyCtrlC:
			return nil, ActionQuit
		case e.Key() != tcell.KeyRune:
			return nil, ActionNone
		}
		switch e.Rune() {
		case 'q', 'Q':
			return nil, ActionQuit
		case 'r', 'R':
			return []render.Event{render.Reset{}}, ActionNone
		case '+', '=':
			return []render.Event{render.Wheel{DeltaY: 1}}, ActionNone
		case '-', '_':
			return []render.Event{render.Wheel{DeltaY: -1}}, ActionNone
		}
		return nil, ActionNone

	case *tcell.EventMouse:
		return t.translateMouse(e), ActionNone
	}
	return nil, ActionNone
}

func (t *Translator) translateMouse(e *tcell.EventMouse) []render.Event {
	var out []render.Event

	buttons := e.Buttons()
	if buttons&tcell.WheelUp != 0 {
		out = append(out, render.Wheel{DeltaY: 1})
	}
	if buttons&tcell.WheelDown != 0 {
		out = append(out, render.Wheel{DeltaY: -1})
	}

	x, y := e.Position()
	px, py := float64(x), float64(2*y)

	pressed := buttons&tcell.Button1 != 0
	switch {
	case pressed && !t.dragging:
		if !t.lastPress.IsZero() && e.When().Sub(t.lastPress) <= doubleClickWindow {
			t.lastPress = time.Time{}
			return append(out, render.DoubleClick{})
		}
		t.lastPress = e.When()
		t.dragging = true
		out = append(out, render.DragStart{X: px, Y: py})

	case pressed && t.dragging:
		out = append(out, render.DragMove{X: px, Y: py})

	case !pressed && t.dragging:
		t.dragging = false
		out = append(out, render.DragEnd{})
	}
	return out
}
