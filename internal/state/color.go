package state

import "image/color"

type ColorName int

const (
	Black ColorName = iota
	White
	Grey
	Ivory
	Red
	Orange
	Yellow
	Green
	Blue
	Indigo
	Violet
	Rose
	Cyan
	Fuchsia
	Empty
)

// PaintColor is a palette entry. Only Black carries its own opacity.
type PaintColor struct {
	Name  ColorName
	Alpha float32
}

var paletteRGB = map[ColorName]color.NRGBA{
	White:   {R: 255, G: 255, B: 255, A: 255},
	Grey:    {R: 71, G: 85, B: 105, A: 255},
	Ivory:   {R: 240, G: 234, B: 214, A: 255},
	Red:     {R: 255, A: 255},
	Orange:  {R: 234, G: 88, B: 12, A: 255},
	Yellow:  {R: 234, G: 179, B: 8, A: 255},
	Green:   {G: 255, A: 255},
	Blue:    {B: 255, A: 255},
	Indigo:  {R: 79, G: 70, B: 229, A: 255},
	Violet:  {R: 124, G: 58, B: 237, A: 255},
	Rose:    {R: 225, G: 29, B: 72, A: 255},
	Cyan:    {R: 8, G: 145, B: 178, A: 255},
	Fuchsia: {R: 192, G: 38, B: 211, A: 255},
	Empty:   {R: 115, G: 115, B: 115, A: 255},
}

// IvoryBackground is the canvas fill behind all primitives.
var IvoryBackground = paletteRGB[Ivory]

func Named(name ColorName) PaintColor {
	if name == Black {
		return BlackColor(1)
	}
	return PaintColor{Name: name}
}

func BlackColor(alpha float32) PaintColor {
	return PaintColor{Name: Black, Alpha: clamp01(alpha)}
}

// DefaultColor is opaque black.
func DefaultColor() PaintColor { return BlackColor(1) }

// WithOpacity applies the opacity to the black entry; every other entry is
// returned unchanged.
func (c PaintColor) WithOpacity(alpha float32) PaintColor {
	if c.Name != Black {
		return c
	}
	return BlackColor(alpha)
}

func (c PaintColor) IsEmpty() bool { return c.Name == Empty }

func (c PaintColor) NRGBA() color.NRGBA {
	switch c.Name {
	case Black:
		return color.NRGBA{A: uint8(clamp01(c.Alpha)*255 + 0.5)}
	default:
		return paletteRGB[c.Name]
	}
}

// RGBA implements color.Color.
func (c PaintColor) RGBA() (r, g, b, a uint32) {
	return c.NRGBA().RGBA()
}

// Palette returns the toolbar palette: fourteen colors followed by four
// empty slots, with black at the given opacity.
func Palette(opacity float32) [18]PaintColor {
	return [18]PaintColor{
		Named(White),
		BlackColor(opacity),
		Named(Grey),
		Named(Ivory),
		Named(Red),
		Named(Orange),
		Named(Yellow),
		Named(Green),
		Named(Blue),
		Named(Indigo),
		Named(Violet),
		Named(Fuchsia),
		Named(Rose),
		Named(Cyan),
		Named(Empty),
		Named(Empty),
		Named(Empty),
		Named(Empty),
	}
}

// Style is the live stroke style. Primitives copy it at commit time.
type Style struct {
	Color color.NRGBA
	Scale float32
}

func clamp01(v float32) float32 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}
