// Package area provides shapes and places with an area, and a runtime probe
// for values that may or may not have one.
package area

// HasArea has an area.
type HasArea interface {
	Area() float64
}

// pi is the approximation used by Circle.
const pi = 3.1415927

// Circle is a circle of a given radius.
type Circle struct {
	Radius float64
}

// Area returns pi * r^2.
func (c Circle) Area() float64 {
	return pi * c.Radius * c.Radius
}

// Country has a stored area in square kilometers.
type Country struct {
	SquareKilometers float64
}

// Area returns the stored area.
func (c Country) Area() float64 {
	return c.SquareKilometers
}

// Animal has legs but no area.
type Animal struct {
	Legs int
}

// AreaOf returns v's area when v has one.
func AreaOf(v any) (float64, bool) {
	if a, ok := v.(HasArea); ok {
		return a.Area(), true
	}
	return 0, false
}
