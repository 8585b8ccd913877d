package state

import "math"

// Point is a position in canvas coordinates.
type Point struct{ X, Y float32 }

func Pt(x, y float32) Point { return Point{X: x, Y: y} }

func (p Point) Add(q Point) Point { return Point{X: p.X + q.X, Y: p.Y + q.Y} }
func (p Point) Sub(q Point) Point { return Point{X: p.X - q.X, Y: p.Y - q.Y} }

// Distance is the euclidean distance between p and q.
func (p Point) Distance(q Point) float32 {
	d := p.Sub(q)
	return float32(math.Hypot(float64(d.X), float64(d.Y)))
}

type Size struct{ Width, Height float32 }

// Empty reports a size with no drawable area.
func (s Size) Empty() bool { return s.Width <= 0 || s.Height <= 0 }

// Rect is an axis-aligned rectangle with Min <= Max on both axes.
type Rect struct{ Min, Max Point }

// RectFromCorners builds a rectangle from two opposite corners given in any
// order.
func RectFromCorners(a, b Point) Rect {
	return Rect{
		Min: Point{X: min(a.X, b.X), Y: min(a.Y, b.Y)},
		Max: Point{X: max(a.X, b.X), Y: max(a.Y, b.Y)},
	}
}

func (r Rect) Width() float32  { return r.Max.X - r.Min.X }
func (r Rect) Height() float32 { return r.Max.Y - r.Min.Y }

// Contains reports whether p lies inside r, edges included.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X &&
		p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

// Inset grows the rectangle by d on every side (shrinks for negative d).
func (r Rect) Inset(d float32) Rect {
	return Rect{
		Min: Point{X: r.Min.X - d, Y: r.Min.Y - d},
		Max: Point{X: r.Max.X + d, Y: r.Max.Y + d},
	}
}

// BoundingBox returns the smallest rectangle holding every point. It
// returns the zero Rect for an empty slice.
func BoundingBox(points []Point) Rect {
	if len(points) == 0 {
		return Rect{}
	}

	minX, minY := points[0].X, points[0].Y
	maxX, maxY := points[0].X, points[0].Y
	for _, p := range points[1:] {
		minX = min(minX, p.X)
		maxX = max(maxX, p.X)
		minY = min(minY, p.Y)
		maxY = max(maxY, p.Y)
	}
	return Rect{Min: Point{X: minX, Y: minY}, Max: Point{X: maxX, Y: maxY}}
}
