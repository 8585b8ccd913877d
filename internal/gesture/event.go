package gesture

import "LocalPaint/internal/state"

type EventKind int

const (
	Press EventKind = iota
	Release
	Move
	TextInput
)

func (k EventKind) String() string {
	switch k {
	case Press:
		return "press"
	case Release:
		return "release"
	case Move:
		return "move"
	case TextInput:
		return "text"
	}
	return "unknown"
}

type Button int

const (
	Primary Button = iota
	Secondary
	Tertiary
)

// Backspace is the text a backspace key press carries.
const Backspace = "\b"

// Cursor is the pointer position relative to the canvas. In is false when
// the pointer is outside the canvas bounds, and Position is then
// meaningless.
type Cursor struct {
	Position state.Point
	In       bool
}

func At(x, y float32) Cursor { return Cursor{Position: state.Pt(x, y), In: true} }

// Outside is a cursor that left the canvas.
var Outside = Cursor{}

// Event is one pointer or keyboard event delivered to the canvas.
type Event struct {
	Kind   EventKind
	Button Button
	Cursor Cursor
	Text   string
}

func PressAt(c Cursor) Event   { return Event{Kind: Press, Button: Primary, Cursor: c} }
func ReleaseAt(c Cursor) Event { return Event{Kind: Release, Button: Primary, Cursor: c} }
func MoveTo(c Cursor) Event    { return Event{Kind: Move, Cursor: c} }

// Typed is a key press that produced text. The cursor does not matter for
// keyboard input.
func Typed(text string) Event { return Event{Kind: TextInput, Text: text} }

// Status tells the caller whether the machine consumed the event.
type Status int

const (
	Ignored Status = iota
	Captured
)

func (s Status) String() string {
	if s == Captured {
		return "captured"
	}
	return "ignored"
}
