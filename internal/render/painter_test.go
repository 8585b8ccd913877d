package render

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"LocalPaint/internal/gesture"
	"LocalPaint/internal/state"
)

var (
	frameSize = state.Size{Width: 200, Height: 100}
	redStyle  = state.Style{Color: color.NRGBA{R: 255, A: 255}, Scale: 2}
)

func newPainter(t *testing.T) *Painter {
	t.Helper()
	p, err := NewPainter()
	require.NoError(t, err)
	t.Cleanup(func() { _ = p.Close() })
	return p
}

func at(img image.Image, x, y int) color.NRGBA {
	return color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
}

func assertNear(t *testing.T, want, got color.NRGBA) {
	t.Helper()
	assert.InDelta(t, want.R, got.R, 2, "red of %v", got)
	assert.InDelta(t, want.G, got.G, 2, "green of %v", got)
	assert.InDelta(t, want.B, got.B, 2, "blue of %v", got)
	assert.InDelta(t, want.A, got.A, 2, "alpha of %v", got)
}

func differing(a, b image.Image) int {
	n := 0
	r := a.Bounds()
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if at(a, x, y) != at(b, x, y) {
				n++
			}
		}
	}
	return n
}

func TestContentEmptyIsBackground(t *testing.T) {
	p := newPainter(t)
	img := p.Content(frameSize, 1, state.IvoryBackground, nil)

	require.Equal(t, image.Rect(0, 0, 200, 100), img.Bounds())
	for _, pt := range []image.Point{{0, 0}, {199, 99}, {100, 50}, {17, 83}} {
		assertNear(t, state.IvoryBackground, at(img, pt.X, pt.Y))
	}
}

func TestContentDrawsLine(t *testing.T) {
	p := newPainter(t)
	line := state.NewPrimitive(state.ShapeAction(state.ShapeLine), state.Pt(10, 50), state.Pt(190, 50), redStyle)

	img := p.Content(frameSize, 1, state.IvoryBackground, []state.Primitive{line})

	mid := at(img, 100, 50)
	assert.Greater(t, mid.R, uint8(200))
	assert.Less(t, mid.G, uint8(100))
	assertNear(t, state.IvoryBackground, at(img, 100, 10))
}

func TestEraserPaintsBackground(t *testing.T) {
	p := newPainter(t)
	line := state.NewPrimitive(state.ShapeAction(state.ShapeLine), state.Pt(10, 50), state.Pt(190, 50), redStyle)
	eraser := state.WithPath(
		state.NewPrimitive(state.ToolAction(state.ToolEraser), state.Pt(0, 50), state.Pt(200, 50), redStyle),
		[]state.Point{state.Pt(0, 50), state.Pt(200, 50)},
	)

	img := p.Content(frameSize, 1, state.IvoryBackground, []state.Primitive{line, eraser})
	assertNear(t, state.IvoryBackground, at(img, 100, 50))
}

func TestContentDrawsEveryKindWithoutPanicking(t *testing.T) {
	p := newPainter(t)
	from, to := state.Pt(20, 20), state.Pt(120, 80)

	var list []state.Primitive
	for _, a := range []state.Action{
		state.SelectAction(),
		state.ToolAction(state.ToolText),
		state.ShapeAction(state.ShapeLine),
		state.ShapeAction(state.ShapeBezier),
		state.ShapeAction(state.ShapeRectangle),
		state.ShapeAction(state.ShapeCircle),
		state.ShapeAction(state.ShapeTriangle),
		state.ShapeAction(state.ShapeHexagon),
	} {
		list = append(list, state.NewPrimitive(a, from, to, redStyle))
	}
	brush := state.NewPrimitive(state.ToolAction(state.ToolBrush), from, to, redStyle)
	list = append(list,
		brush,
		state.WithPath(brush, []state.Point{from}),
		state.WithPath(brush, []state.Point{from, state.Pt(40, 60), to}),
	)

	var img image.Image
	require.NotPanics(t, func() { img = p.Content(frameSize, 1, state.IvoryBackground, list) })
	empty := p.Content(frameSize, 1, state.IvoryBackground, nil)
	assert.Positive(t, differing(img, empty))
}

func TestOverlayLeavesBaseUntouched(t *testing.T) {
	p := newPainter(t)
	base := p.Content(frameSize, 1, state.IvoryBackground, nil)

	o := gesture.Overlay{
		Color:     color.NRGBA{A: 255},
		HasBox:    true,
		Box:       state.RectFromCorners(state.Pt(20, 20), state.Pt(120, 70)),
		Dash:      gesture.BoxDash,
		LineWidth: gesture.BoxWidth,
		Text:      "Hi",
		TextAt:    state.Pt(21, 21),
		TextSize:  gesture.TextSize(1),
	}
	out := p.Overlay(base, 1, o)

	assert.Positive(t, differing(out, base))
	assertNear(t, state.IvoryBackground, at(base, 20, 45))
}

// outsideBox counts pixels of img that differ from base beyond box.
func outsideBox(img, base image.Image, box image.Rectangle) (outside, inside int) {
	r := img.Bounds()
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if at(img, x, y) == at(base, x, y) {
				continue
			}
			if (image.Point{X: x, Y: y}).In(box) {
				inside++
			} else {
				outside++
			}
		}
	}
	return outside, inside
}

func TestTextStaysInsideBackwardsBox(t *testing.T) {
	p := newPainter(t)
	canvas := state.Size{Width: 400, Height: 300}
	style := state.Style{Color: color.NRGBA{A: 255}, Scale: 1}
	box := image.Rect(100, 100, 301, 201)
	base := p.Content(canvas, 1, state.IvoryBackground, nil)

	committed := state.NewText(state.Pt(300, 200), state.Pt(100, 100), "Hi", style)
	img := p.Content(canvas, 1, state.IvoryBackground, []state.Primitive{committed})
	outside, inside := outsideBox(img, base, box)
	assert.Zero(t, outside)
	assert.Positive(t, inside)

	bounds := committed.Bounds()
	echo := p.Overlay(base, 1, gesture.Overlay{
		Color:    style.Color,
		Text:     "Hi",
		TextAt:   gesture.TextOrigin(bounds, canvas),
		TextSize: gesture.TextSize(style.Scale),
	})
	outside, inside = outsideBox(echo, base, box)
	assert.Zero(t, outside, "typing echo")
	assert.Positive(t, inside, "typing echo")
}

func TestContentAtPixelScale(t *testing.T) {
	p := newPainter(t)
	line := state.NewPrimitive(state.ShapeAction(state.ShapeLine), state.Pt(10, 50), state.Pt(190, 50), redStyle)

	img := p.Content(frameSize, 2, state.IvoryBackground, []state.Primitive{line})
	require.Equal(t, image.Rect(0, 0, 400, 200), img.Bounds())

	mid := at(img, 200, 100)
	assert.Greater(t, mid.R, uint8(200))
	assert.Less(t, mid.G, uint8(100))
	assertNear(t, state.IvoryBackground, at(img, 200, 20))
}
