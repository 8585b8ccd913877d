package gesture

import "LocalPaint/internal/state"

// Pending is a gesture in progress. A nil Pending means idle.
type Pending interface {
	pending()
}

// DrawingOne has its first point and waits for the release.
type DrawingOne struct {
	From state.Point
}

// DrawingTwo is a bezier waiting for the press that places its control
// point.
type DrawingTwo struct {
	From, To state.Point
}

// TextAnchor has the first corner of a text box and waits for the release
// that fixes the opposite corner.
type TextAnchor struct {
	From state.Point
}

// TextTyping has a fixed box and collects keystrokes until a press outside
// the box commits it.
type TextTyping struct {
	From, To state.Point
	Buffer   string
}

func (DrawingOne) pending() {}
func (DrawingTwo) pending() {}
func (TextAnchor) pending() {}
func (TextTyping) pending() {}

// Box is the normalised text box.
func (t TextTyping) Box() state.Rect {
	return state.RectFromCorners(t.From, t.To)
}

func isText(p Pending) bool {
	switch p.(type) {
	case TextAnchor, TextTyping:
		return true
	}
	return false
}

// consistent reports whether p could have been started by action.
func consistent(p Pending, action state.Action) bool {
	switch p.(type) {
	case nil:
		return true
	case TextAnchor, TextTyping:
		return action.IsTool(state.ToolText)
	case DrawingTwo:
		return action.IsShape(state.ShapeBezier)
	default:
		return !action.IsTool(state.ToolText)
	}
}

func describe(p Pending) string {
	switch p.(type) {
	case nil:
		return "none"
	case DrawingOne:
		return "drawing.one"
	case DrawingTwo:
		return "drawing.two"
	case TextAnchor:
		return "text.anchor"
	case TextTyping:
		return "text.typing"
	}
	return "unknown"
}
