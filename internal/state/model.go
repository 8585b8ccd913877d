package state

import (
	"image/color"
	"math"
)

// TextPlaceholder fills a Text primitive built directly from two corners,
// without going through a typing gesture.
const TextPlaceholder = "Text painting here invalid"

type PrimitiveKind int

const (
	KindFreeForm PrimitiveKind = iota
	KindText
	KindLine
	KindBezier
	KindRectangle
	KindCircle
	KindTriangle
	KindHexagon
	KindEraser
	KindSelect
)

var kindNames = [...]string{
	KindFreeForm:  "freeform",
	KindText:      "text",
	KindLine:      "line",
	KindBezier:    "bezier",
	KindRectangle: "rectangle",
	KindCircle:    "circle",
	KindTriangle:  "triangle",
	KindHexagon:   "hexagon",
	KindEraser:    "eraser",
	KindSelect:    "select",
}

func (k PrimitiveKind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Meta is what every primitive captures when it is committed.
type Meta struct {
	ID    string
	Seq   uint64
	Color color.NRGBA
	Scale float32
}

// Primitive is a committed, immutable drawable. The set of implementations
// is closed to this package.
type Primitive interface {
	Kind() PrimitiveKind
	Metadata() Meta
	Bounds() Rect
	primitive()
}

// FreeForm is a sampled pencil or brush stroke.
type FreeForm struct {
	Meta
	points []Point
}

type Text struct {
	Meta
	TopLeft, BottomRight Point
	Text                 string
}

type Line struct {
	Meta
	From, To Point
}

type Bezier struct {
	Meta
	From, To, Control Point
}

type Rectangle struct {
	Meta
	TopLeft, BottomRight Point
}

// Circle is centered on Center and passes through Radius.
type Circle struct {
	Meta
	Center, Radius Point
}

// Triangle stands on the base Left-Right.
type Triangle struct {
	Meta
	Left, Right Point
}

type Hexagon struct {
	Meta
	TopLeft, BottomRight Point
}

type Eraser struct {
	Meta
	points []Point
}

type Select struct {
	Meta
	TopLeft, BottomRight Point
}

func (p FreeForm) Kind() PrimitiveKind  { return KindFreeForm }
func (p Text) Kind() PrimitiveKind      { return KindText }
func (p Line) Kind() PrimitiveKind      { return KindLine }
func (p Bezier) Kind() PrimitiveKind    { return KindBezier }
func (p Rectangle) Kind() PrimitiveKind { return KindRectangle }
func (p Circle) Kind() PrimitiveKind    { return KindCircle }
func (p Triangle) Kind() PrimitiveKind  { return KindTriangle }
func (p Hexagon) Kind() PrimitiveKind   { return KindHexagon }
func (p Eraser) Kind() PrimitiveKind    { return KindEraser }
func (p Select) Kind() PrimitiveKind    { return KindSelect }

func (m Meta) Metadata() Meta { return m }

func (FreeForm) primitive()  {}
func (Text) primitive()      {}
func (Line) primitive()      {}
func (Bezier) primitive()    {}
func (Rectangle) primitive() {}
func (Circle) primitive()    {}
func (Triangle) primitive()  {}
func (Hexagon) primitive()   {}
func (Eraser) primitive()    {}
func (Select) primitive()    {}

func (p FreeForm) Bounds() Rect  { return BoundingBox(p.points) }
func (p Text) Bounds() Rect      { return RectFromCorners(p.TopLeft, p.BottomRight) }
func (p Line) Bounds() Rect      { return RectFromCorners(p.From, p.To) }
func (p Bezier) Bounds() Rect    { return BoundingBox([]Point{p.From, p.To, p.Control}) }
func (p Rectangle) Bounds() Rect { return RectFromCorners(p.TopLeft, p.BottomRight) }
func (p Hexagon) Bounds() Rect   { return RectFromCorners(p.TopLeft, p.BottomRight) }
func (p Eraser) Bounds() Rect    { return BoundingBox(p.points) }
func (p Select) Bounds() Rect    { return RectFromCorners(p.TopLeft, p.BottomRight) }

func (p Circle) Bounds() Rect {
	r := p.Center.Distance(p.Radius)
	return Rect{Min: p.Center, Max: p.Center}.Inset(r)
}

func (p Triangle) Bounds() Rect {
	return BoundingBox(p.Vertices())
}

// Vertices returns the base corners and the apex of an equilateral
// triangle raised above the base.
func (p Triangle) Vertices() []Point {
	d := p.Right.Sub(p.Left)
	mid := Point{X: (p.Left.X + p.Right.X) / 2, Y: (p.Left.Y + p.Right.Y) / 2}
	h := float32(math.Sqrt(3) / 2)
	// rotate the base vector a quarter turn, screen Y grows downward
	apex := Point{X: mid.X + d.Y*h, Y: mid.Y - d.X*h}
	return []Point{p.Left, p.Right, apex}
}

// Vertices returns the six corners of a flat-topped hexagon inscribed in
// the bounding box.
func (p Hexagon) Vertices() []Point {
	r := p.Bounds()
	w, h := r.Width(), r.Height()
	midY := r.Min.Y + h/2
	return []Point{
		{X: r.Min.X, Y: midY},
		{X: r.Min.X + w/4, Y: r.Min.Y},
		{X: r.Max.X - w/4, Y: r.Min.Y},
		{X: r.Max.X, Y: midY},
		{X: r.Max.X - w/4, Y: r.Max.Y},
		{X: r.Min.X + w/4, Y: r.Max.Y},
	}
}

// Points returns a copy of the sampled stroke.
func (p FreeForm) Points() []Point { return clonePoints(p.points) }

// Points returns a copy of the sampled stroke.
func (p Eraser) Points() []Point { return clonePoints(p.points) }

// NewPrimitive builds the primitive the action draws between from and to,
// capturing style by value.
func NewPrimitive(action Action, from, to Point, style Style) Primitive {
	m := stamp(style)

	switch action.Kind {
	case ActionSelect:
		return Select{Meta: m, TopLeft: from, BottomRight: to}
	case ActionShape:
		switch action.Shape {
		case ShapeLine:
			return Line{Meta: m, From: from, To: to}
		case ShapeBezier:
			return Bezier{Meta: m, From: from, To: to, Control: to}
		case ShapeTriangle:
			return Triangle{Meta: m, Left: from, Right: to}
		case ShapeCircle:
			return Circle{Meta: m, Center: from, Radius: to}
		case ShapeHexagon:
			return Hexagon{Meta: m, TopLeft: from, BottomRight: to}
		default:
			return Rectangle{Meta: m, TopLeft: from, BottomRight: to}
		}
	default:
		switch action.Tool {
		case ToolText:
			return Text{Meta: m, TopLeft: from, BottomRight: to, Text: TextPlaceholder}
		case ToolEraser:
			return Eraser{Meta: m}
		default:
			return FreeForm{Meta: m}
		}
	}
}

// NewText builds a Text primitive holding typed content.
func NewText(from, to Point, text string, style Style) Text {
	return Text{Meta: stamp(style), TopLeft: from, BottomRight: to, Text: text}
}

// NewBezier builds a Bezier primitive with an explicit control point.
func NewBezier(from, to, control Point, style Style) Bezier {
	return Bezier{Meta: stamp(style), From: from, To: to, Control: control}
}

// WithPath returns a copy of a FreeForm or Eraser primitive that carries the
// sampled stroke. Other primitives are returned as is.
func WithPath(p Primitive, points []Point) Primitive {
	path := clonePoints(points)

	switch v := p.(type) {
	case FreeForm:
		v.points = path
		return v
	case Eraser:
		v.points = path
		return v
	}
	return p
}

func clonePoints(points []Point) []Point {
	if len(points) == 0 {
		return nil
	}
	return append([]Point(nil), points...)
}
