// Package gesture turns the canvas event stream into committed primitives.
//
// A Machine holds at most one pending gesture. Each call to Update consumes
// a single event and either advances the pending gesture, commits exactly
// one primitive and returns to idle, or leaves everything untouched.
// Machines are not safe for concurrent use; they belong to the goroutine
// that dispatches UI events.
package gesture

import (
	"log/slog"
	"unicode/utf8"

	"LocalPaint/internal/logging"
	"LocalPaint/internal/state"
)

type Machine struct {
	pending Pending
	// stroke samples the pointer path of a freehand gesture. It lives next
	// to the pending gesture and is cleared with it.
	stroke []state.Point
	log    *slog.Logger
}

func NewMachine() *Machine {
	return &Machine{log: logging.For("gesture")}
}

// Pending returns the gesture in progress, or nil when idle.
func (m *Machine) Pending() Pending {
	return m.pending
}

// Reset abandons the gesture in progress.
func (m *Machine) Reset() {
	m.pending = nil
	m.stroke = nil
}

// Update feeds one event through the machine. The returned primitive is
// non-nil only when the event completed a gesture.
func (m *Machine) Update(ev Event, action state.Action, style state.Style) (Status, state.Primitive) {
	if ev.Kind == TextInput {
		return m.typed(ev.Text), nil
	}
	if ev.Kind != Move && ev.Button != Primary {
		return Ignored, nil
	}

	if !consistent(m.pending, action) {
		// a tool switch left a gesture behind; drop it and start over
		m.log.Debug("discarding stale gesture",
			"pending", describe(m.pending),
			"action", action.String(),
			"event", ev.Kind.String())
		m.Reset()
	}

	if typing, ok := m.pending.(TextTyping); ok {
		return m.whileTyping(ev, typing, style)
	}

	if !ev.Cursor.In {
		return Ignored, nil
	}

	pos := ev.Cursor.Position
	switch ev.Kind {
	case Press:
		return m.press(pos, action, style)
	case Release:
		return m.release(pos, action, style)
	case Move:
		return m.move(pos, action), nil
	}
	return Ignored, nil
}

func (m *Machine) typed(text string) Status {
	typing, ok := m.pending.(TextTyping)
	if !ok {
		return Ignored
	}

	if text == Backspace {
		if _, size := utf8.DecodeLastRuneInString(typing.Buffer); size > 0 {
			typing.Buffer = typing.Buffer[:len(typing.Buffer)-size]
		}
	} else {
		typing.Buffer += text
	}
	m.pending = typing
	return Captured
}

func (m *Machine) whileTyping(ev Event, typing TextTyping, style state.Style) (Status, state.Primitive) {
	if ev.Kind != Press {
		return Ignored, nil
	}
	if ev.Cursor.In && typing.Box().Contains(ev.Cursor.Position) {
		return Ignored, nil
	}

	text := state.NewText(typing.From, typing.To, typing.Buffer, style)
	m.Reset()
	m.committed(text)
	return Captured, text
}

func (m *Machine) press(pos state.Point, action state.Action, style state.Style) (Status, state.Primitive) {
	switch p := m.pending.(type) {
	case nil:
		if action.IsTool(state.ToolText) {
			m.pending = TextAnchor{From: pos}
			return Captured, nil
		}
		m.pending = DrawingOne{From: pos}
		if action.IsFreehand() {
			m.stroke = []state.Point{pos}
		}
		return Captured, nil

	case DrawingTwo:
		bezier := state.NewBezier(p.From, p.To, pos, style)
		m.Reset()
		m.committed(bezier)
		return Captured, bezier
	}
	return Ignored, nil
}

func (m *Machine) release(pos state.Point, action state.Action, style state.Style) (Status, state.Primitive) {
	switch p := m.pending.(type) {
	case DrawingOne:
		if action.IsShape(state.ShapeBezier) {
			m.pending = DrawingTwo{From: p.From, To: pos}
			return Captured, nil
		}

		prim := state.NewPrimitive(action, p.From, pos, style)
		if action.IsFreehand() {
			m.sample(pos)
			prim = state.WithPath(prim, m.stroke)
		}
		m.Reset()
		m.committed(prim)
		return Captured, prim

	case TextAnchor:
		m.pending = TextTyping{From: p.From, To: pos}
		return Captured, nil
	}
	return Ignored, nil
}

func (m *Machine) move(pos state.Point, action state.Action) Status {
	if _, ok := m.pending.(DrawingOne); !ok || !action.IsFreehand() || len(m.stroke) == 0 {
		return Ignored
	}
	m.sample(pos)
	return Captured
}

func (m *Machine) sample(pos state.Point) {
	if n := len(m.stroke); n > 0 && m.stroke[n-1] == pos {
		return
	}
	m.stroke = append(m.stroke, pos)
}

func (m *Machine) committed(p state.Primitive) {
	meta := p.Metadata()
	m.log.Debug("committed primitive", "kind", p.Kind().String(), "id", meta.ID, "seq", meta.Seq)
}

type Interaction int

const (
	InteractionDefault Interaction = iota
	InteractionCrosshair
	InteractionText
)

// Interaction picks the pointer glyph for a cursor that is (over=true) or
// is not hovering the canvas.
func (m *Machine) Interaction(over bool) Interaction {
	if !over {
		return InteractionDefault
	}
	if _, ok := m.pending.(TextAnchor); ok {
		return InteractionText
	}
	return InteractionCrosshair
}
