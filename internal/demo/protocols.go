package demo

import (
	"context"

	"github.com/cory-johannsen/protocols/internal/area"
	"github.com/cory-johannsen/protocols/internal/game/dice"
	"github.com/cory-johannsen/protocols/internal/naming"
	"github.com/cory-johannsen/protocols/internal/switches"
)

func (r *Runner) names(context.Context) error {
	p := r.out
	p.heading("Simple example")
	john := naming.Person{Name: "John Appleseed"}
	p.printf(" %s\n", john.FullName())

	p.heading("More complex example")
	var ncc1701 naming.FullyNamed = naming.Starship{Name: "Enterprise", Prefix: "USS"}
	p.printf(" %s\n", ncc1701.FullName())
	return nil
}

func (r *Runner) generator(context.Context) error {
	p := r.out
	p.heading("Method requirements")
	gen, err := r.newGen()
	if err != nil {
		return err
	}
	p.printf(" Here's a random number: %v\n", gen.Random())
	p.printf(" And another one: %v\n", gen.Random())
	return nil
}

func (r *Runner) toggle(context.Context) error {
	p := r.out
	p.heading("Mutating method requirements")
	light := switches.Off
	var t switches.Togglable = &light
	t.Toggle()
	p.printf(" lightSwitch = %s\n", light)
	return nil
}

func (r *Runner) diceRolls(context.Context) error {
	p := r.out
	p.heading("Interfaces as types")
	d6, err := r.newDie(6)
	if err != nil {
		return err
	}
	for i := 0; i < 5; i++ {
		p.printf(" Random dice roll is %d\n", d6.Roll())
	}
	return nil
}

func (r *Runner) diceExpressions(context.Context) error {
	p := r.out
	p.heading("Dice expressions")
	gen, err := r.newGen()
	if err != nil {
		return err
	}
	roller := dice.NewLoggedRoller(dice.GeneratorSource{Gen: gen}, r.logger)
	for _, expr := range []string{"2d6+3", "3d4-1", "d20"} {
		res, err := roller.RollExpr(expr)
		if err != nil {
			return err
		}
		p.printf(" %s\n", res)
	}
	return nil
}

func (r *Runner) composition(context.Context) error {
	p := r.out
	p.heading("Interface composition")
	p.printf(" %s\n", naming.WishHappyBirthday(naming.Celebrant{FirstName: "Malcolm", Years: 21}))
	return nil
}

func (r *Runner) conformance(context.Context) error {
	p := r.out
	p.heading("Checking for interface conformance")
	objects := []any{
		area.Circle{Radius: 2},
		area.Country{SquareKilometers: 243_610},
		area.Animal{Legs: 4},
	}
	for _, obj := range objects {
		if a, ok := area.AreaOf(obj); ok {
			p.printf(" Area is %v\n", a)
		} else {
			p.println(" Something that doesn't have an area")
		}
	}
	return nil
}
