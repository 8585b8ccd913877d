// Package render rasterizes canvas frames with the gg software renderer.
package render

import (
	"fmt"
	"image"
	"image/color"
	"log/slog"
	"math"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"

	"LocalPaint/internal/gesture"
	"LocalPaint/internal/logging"
	"LocalPaint/internal/state"
)

const (
	baseStroke  = 2.0
	eraserWidth = 12.0
	selectDash  = 4.0
)

// Painter draws primitives and gesture overlays into RGBA images.
type Painter struct {
	font *text.FontSource
	log  *slog.Logger
}

// NewPainter loads the Go Regular face used for every text primitive.
func NewPainter() (*Painter, error) {
	font, err := text.NewFontSource(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("load text font: %w", err)
	}
	return &Painter{font: font, log: logging.For("render")}, nil
}

// Close releases the font.
func (p *Painter) Close() error {
	return p.font.Close()
}

// frame is a gg context addressed in canvas units. Every coordinate and
// width is multiplied by k on the way in.
type frame struct {
	dc *gg.Context
	k  float64
	// bounds is the canvas size in canvas units
	bounds state.Size
}

func (f frame) xy(pt state.Point) (float64, float64) {
	return float64(pt.X) * f.k, float64(pt.Y) * f.k
}

func (p *Painter) Content(size state.Size, pixelScale float32, background color.Color, primitives []state.Primitive) image.Image {
	k := unitScale(pixelScale)
	f := frame{
		dc:     gg.NewContext(pixels(size.Width, k), pixels(size.Height, k)),
		k:      k,
		bounds: size,
	}
	f.dc.ClearWithColor(gg.FromColor(background))

	for _, prim := range primitives {
		p.draw(f, prim, background)
	}
	return p.finish(f.dc)
}

func (p *Painter) Overlay(base image.Image, pixelScale float32, o gesture.Overlay) image.Image {
	f := frame{dc: gg.NewContextForImage(base), k: unitScale(pixelScale)}
	f.dc.SetColor(o.Color)

	if o.HasBox {
		f.pen(float64(o.LineWidth), float64s(o.Dash)...)
		f.rect(o.Box)
		p.stroke(f, "overlay box")
	}
	if o.Text != "" {
		p.drawText(f, o.Text, o.TextAt, o.TextSize)
	}
	return p.finish(f.dc)
}

func (p *Painter) draw(f frame, prim state.Primitive, background color.Color) {
	meta := prim.Metadata()
	f.dc.SetColor(meta.Color)
	f.pen(strokeWidth(meta.Scale))

	switch v := prim.(type) {
	case state.Line:
		f.dc.MoveTo(f.xy(v.From))
		f.dc.LineTo(f.xy(v.To))
	case state.Bezier:
		cx, cy := f.xy(v.Control)
		tx, ty := f.xy(v.To)
		f.dc.MoveTo(f.xy(v.From))
		f.dc.QuadraticTo(cx, cy, tx, ty)
	case state.Rectangle:
		f.rect(v.Bounds())
	case state.Circle:
		x, y := f.xy(v.Center)
		f.dc.DrawCircle(x, y, float64(v.Center.Distance(v.Radius))*f.k)
	case state.Triangle:
		f.polygon(v.Vertices())
	case state.Hexagon:
		f.polygon(v.Vertices())
	case state.Select:
		f.pen(1, selectDash, selectDash)
		f.rect(v.Bounds())
		p.stroke(f, v.Kind().String())
		return
	case state.Text:
		if v.Text != "" {
			at := gesture.TextOrigin(v.Bounds(), f.bounds)
			p.drawText(f, v.Text, at, gesture.TextSize(v.Scale))
		}
		return
	case state.FreeForm:
		p.path(f, v.Points(), strokeWidth(meta.Scale))
		return
	case state.Eraser:
		f.dc.SetColor(background)
		p.path(f, v.Points(), eraserWidth*float64(max(meta.Scale, 0.1)))
		return
	}
	p.stroke(f, prim.Kind().String())
}

// drawText places text with its top-left corner at at. gg draws text in
// device pixels, so the face is sized for the frame's scale.
func (p *Painter) drawText(f frame, s string, at state.Point, size float32) {
	px := float64(size) * f.k
	x, y := f.xy(at)
	f.dc.SetFont(p.font.Face(px))
	f.dc.DrawString(s, x, y+px)
}

// path strokes a sampled stroke. A single sample becomes a dot.
func (p *Painter) path(f frame, points []state.Point, width float64) {
	switch len(points) {
	case 0:
		return
	case 1:
		x, y := f.xy(points[0])
		f.dc.DrawPoint(x, y, width*f.k/2)
		if err := f.dc.Fill(); err != nil {
			p.log.Warn("fill failed", "what", "dot", "error", err)
		}
		return
	}

	f.pen(width)
	f.dc.MoveTo(f.xy(points[0]))
	for _, pt := range points[1:] {
		f.dc.LineTo(f.xy(pt))
	}
	p.stroke(f, "path")
}

func (p *Painter) stroke(f frame, what string) {
	if err := f.dc.Stroke(); err != nil {
		p.log.Warn("stroke failed", "what", what, "error", err)
	}
}

func (p *Painter) finish(dc *gg.Context) image.Image {
	img := dc.Image()
	if err := dc.Close(); err != nil {
		p.log.Warn("close context", "error", err)
	}
	return img
}

// pen sets the whole stroke style at once. No dash lengths means solid.
// Width and dash are in canvas units.
func (f frame) pen(width float64, dash ...float64) {
	for i := range dash {
		dash[i] *= f.k
	}
	f.dc.SetStroke(gg.DefaultStroke().
		WithWidth(width * f.k).
		WithCap(gg.LineCapRound).
		WithDashPattern(dash...))
}

func (f frame) rect(r state.Rect) {
	x, y := f.xy(r.Min)
	f.dc.DrawRectangle(x, y, float64(r.Width())*f.k, float64(r.Height())*f.k)
}

func (f frame) polygon(points []state.Point) {
	if len(points) == 0 {
		return
	}
	f.dc.MoveTo(f.xy(points[0]))
	for _, pt := range points[1:] {
		f.dc.LineTo(f.xy(pt))
	}
	f.dc.ClosePath()
}

func strokeWidth(scale float32) float64 {
	return baseStroke * float64(max(scale, 0.1))
}

func unitScale(pixelScale float32) float64 {
	if pixelScale <= 0 {
		return 1
	}
	return float64(pixelScale)
}

func pixels(v float32, k float64) int {
	return max(1, int(math.Ceil(float64(v)*k)))
}

func float64s(v []float32) []float64 {
	out := make([]float64, len(v))
	for i, f := range v {
		out[i] = float64(f)
	}
	return out
}
