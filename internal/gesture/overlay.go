package gesture

import (
	"image/color"
	"slices"

	"LocalPaint/internal/state"
)

// Dash segments and width of the text box outline.
var (
	BoxDash  = []float32{4, 0, 4}
	BoxWidth = float32(2)
)

const (
	baseTextSize = 16
	minTextScale = 0.1
	// text sits this fraction of the canvas size inside the box corner
	textInset = 0.005
)

// Overlay is the ephemeral drawing of a gesture in progress. The zero value
// draws nothing.
type Overlay struct {
	Color color.NRGBA

	HasBox    bool
	Box       state.Rect
	Dash      []float32
	LineWidth float32

	Text     string
	TextAt   state.Point
	TextSize float32
}

func (o Overlay) Empty() bool {
	return !o.HasBox && o.Text == ""
}

// Equal reports whether o and p draw the same thing.
func (o Overlay) Equal(p Overlay) bool {
	return o.Color == p.Color &&
		o.HasBox == p.HasBox && o.Box == p.Box &&
		slices.Equal(o.Dash, p.Dash) && o.LineWidth == p.LineWidth &&
		o.Text == p.Text && o.TextAt == p.TextAt && o.TextSize == p.TextSize
}

// TextOrigin is the top-left corner text starts at inside box on a canvas
// of the given size. The typing echo and committed text share it.
func TextOrigin(box state.Rect, bounds state.Size) state.Point {
	return box.Min.Add(state.Pt(bounds.Width*textInset, bounds.Height*textInset))
}

// TextSize is the point size typed text is drawn at for a scale.
func TextSize(scale float32) float32 {
	return baseTextSize * max(scale, minTextScale)
}

// Overlay renders the pending gesture for the live style. Drawing gestures
// have no preview yet and produce an empty overlay.
func (m *Machine) Overlay(style state.Style, cursor Cursor, bounds state.Size) Overlay {
	if !isText(m.pending) {
		return Overlay{}
	}

	o := Overlay{
		Color:     style.Color,
		Dash:      BoxDash,
		LineWidth: BoxWidth,
	}

	switch p := m.pending.(type) {
	case TextAnchor:
		if !cursor.In {
			return Overlay{}
		}
		o.HasBox = true
		o.Box = state.RectFromCorners(p.From, cursor.Position)

	case TextTyping:
		o.HasBox = true
		o.Box = p.Box()
		o.Text = p.Buffer
		o.TextSize = TextSize(style.Scale)
		o.TextAt = TextOrigin(o.Box, bounds)
	}
	return o
}
