package demo

import (
	"context"

	"github.com/cory-johannsen/protocols/internal/geometry"
	"github.com/cory-johannsen/protocols/internal/intx"
	"github.com/cory-johannsen/protocols/internal/units"
)

func (r *Runner) extensions(context.Context) error {
	p := r.out

	p.heading("Extensions: computed properties")
	p.printf(" One inch is %v meters\n", units.Millimeters(25.4).Meters())
	p.printf(" Three feet is %v meters\n", units.Feet(3).Meters())
	p.printf(" A marathon is %v meters long\n", (units.Kilometers(42) + units.Meters(195)).Meters())

	p.heading("Initializers")
	memberwise := geometry.Rect{
		Origin: geometry.Point{X: 2, Y: 2},
		Size:   geometry.Size{Width: 5, Height: 5},
	}
	p.printf(" memberwiseRect origin = (%v, %v)\n", memberwise.Origin.X, memberwise.Origin.Y)
	p.printf(" memberwiseRect size = (%v, %v)\n", memberwise.Size.Width, memberwise.Size.Height)
	centered := geometry.NewRectCentered(geometry.Point{X: 4, Y: 4}, geometry.Size{Width: 3, Height: 3})
	p.printf(" centerRect origin = (%v, %v)\n", centered.Origin.X, centered.Origin.Y)
	p.printf(" centerRect size = (%v, %v)\n", centered.Size.Width, centered.Size.Height)

	p.heading("Methods")
	intx.Repetitions(3, func() { p.println(" Hello!") })
	intx.Repetitions(3, func() { p.println(" Goodbye!") })

	p.heading("Mutating instance methods")
	someInt := 3
	intx.Square(&someInt)
	p.printf(" someInt = %d\n", someInt)

	p.heading("Subscripts")
	for _, q := range []struct{ n, index int }{
		{746381295, 0},
		{746381295, 1},
		{746381295, 9},
		{1746381295, 9},
	} {
		d, err := intx.Digit(q.n, q.index)
		if err != nil {
			return err
		}
		p.printf(" %d[%d] = %d\n", q.n, q.index, d)
	}

	p.heading("Nested types")
	p.printf(" %s\n", intx.Kinds([]int{3, 19, -27, 0, -6, 0, 7}))
	return nil
}
