package fontbake

import "math"

// Point is a position in atlas pixel space. Y grows downward.
type Point struct {
	X, Y float32
}

// Sub returns the difference of two points.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Size is a width and height in pixels.
type Size struct {
	Width, Height float32
}

// Rect is an axis-aligned rectangle given by its top-left corner and size.
type Rect struct {
	X, Y, Width, Height float32
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Union returns the smallest rectangle containing both r and s.
// An empty rectangle does not contribute to the union.
func (r Rect) Union(s Rect) Rect {
	if r.Empty() {
		return s
	}
	if s.Empty() {
		return r
	}
	minX := min(r.X, s.X)
	minY := min(r.Y, s.Y)
	maxX := max(r.X+r.Width, s.X+s.Width)
	maxY := max(r.Y+r.Height, s.Y+s.Height)
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// ceil32 rounds up to the next whole pixel.
func ceil32(v float32) float32 {
	return float32(math.Ceil(float64(v)))
}
