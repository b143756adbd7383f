// Package geometry provides points, sizes and rectangles.
package geometry

// Point is a location in the plane.
type Point struct {
	X, Y float64
}

// Size is a width and height.
type Size struct {
	Width, Height float64
}

// Rect is an origin and a size. The zero Rect sits at the origin with no area.
type Rect struct {
	Origin Point
	Size   Size
}

// NewRectCentered returns the rect of the given size centered on center.
func NewRectCentered(center Point, size Size) Rect {
	return Rect{
		Origin: Point{X: center.X - size.Width/2, Y: center.Y - size.Height/2},
		Size:   size,
	}
}

// Center returns the midpoint of r.
func (r Rect) Center() Point {
	return Point{X: r.Origin.X + r.Size.Width/2, Y: r.Origin.Y + r.Size.Height/2}
}
