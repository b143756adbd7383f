// Package dice provides the pseudo-random generators, dice, and roll-result
// types used by the dice games.
package dice

import (
	"errors"
	"fmt"
)

// ErrInvalidSides indicates a die was configured with fewer than one side.
var ErrInvalidSides = errors.New("dice: sides must be >= 1")

// ErrNilGenerator indicates a die was configured without a generator.
var ErrNilGenerator = errors.New("dice: generator must not be nil")

// Generator produces uniformly distributed floats.
//
// Postcondition: every value returned by Random is in [0, 1).
type Generator interface {
	Random() float64
}

// Source is the integer randomness provider for dice expressions.
type Source interface {
	// Intn returns a non-negative random int in [0, n).
	//
	// Precondition: n > 0.
	Intn(n int) int
}

// GeneratorSource adapts a Generator into a Source by scaling its output.
type GeneratorSource struct {
	Gen Generator
}

// Intn returns floor(Gen.Random() * n).
//
// Precondition: n > 0. Panics with "dice: Intn called with n <= 0" otherwise.
// Postcondition: return value is in [0, n), even for a generator that
// strays outside [0, 1) or returns NaN.
func (s GeneratorSource) Intn(n int) int {
	if n <= 0 {
		panic("dice: Intn called with n <= 0")
	}
	r := s.Gen.Random()
	if !(r >= 0) {
		return 0
	}
	if r >= 1 {
		return n - 1
	}
	v := int(r * float64(n))
	if v >= n {
		v = n - 1
	}
	return v
}

// RollResult holds the full audit trail for a single dice roll evaluation.
//
// Postcondition: Total() == sum(Dice) + Modifier.
type RollResult struct {
	Expression string // original expression string, e.g. "2d6+3"
	Dice       []int  // individual die results before modifier
	Modifier   int    // flat modifier (may be negative)
}

// Total returns the sum of all die results plus the modifier.
func (r RollResult) Total() int {
	total := r.Modifier
	for _, d := range r.Dice {
		total += d
	}
	return total
}

// String returns a human-readable audit string in the format:
//
//	"2d6+3 → [4 5] +3 = 12"
//
// Precondition: r.Expression is non-empty.
func (r RollResult) String() string {
	if r.Expression == "" {
		panic("dice: RollResult.String() precondition violated: Expression must be non-empty")
	}
	return fmt.Sprintf("%s → %v %+d = %d", r.Expression, r.Dice, r.Modifier, r.Total())
}
