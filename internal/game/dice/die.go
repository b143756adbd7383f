package dice

import "fmt"

// Die is a single die with a fixed number of sides rolled from a Generator.
type Die struct {
	sides int
	gen   Generator
}

// NewDie creates a die.
//
// Precondition: sides >= 1 and gen non-nil.
// Postcondition: Returns a usable Die or ErrInvalidSides / ErrNilGenerator.
func NewDie(sides int, gen Generator) (*Die, error) {
	if sides < 1 {
		return nil, fmt.Errorf("%w, got %d", ErrInvalidSides, sides)
	}
	if gen == nil {
		return nil, ErrNilGenerator
	}
	return &Die{sides: sides, gen: gen}, nil
}

// MustDie is NewDie that panics on invalid arguments.
func MustDie(sides int, gen Generator) *Die {
	d, err := NewDie(sides, gen)
	if err != nil {
		panic(err.Error())
	}
	return d
}

// Sides returns the number of faces.
func (d *Die) Sides() int {
	return d.sides
}

// Roll returns floor(Random() * sides) + 1.
//
// Postcondition: return value is in [1, Sides()].
func (d *Die) Roll() int {
	return GeneratorSource{Gen: d.gen}.Intn(d.sides) + 1
}

// AsText describes the die.
func (d *Die) AsText() string {
	return fmt.Sprintf("A %d-sided dice", d.sides)
}
