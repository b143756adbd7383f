package dice

import (
	"fmt"
	"math"
)

// Default linear congruential constants.
const (
	DefaultSeed       = 42.0
	DefaultMultiplier = 3877.0
	DefaultIncrement  = 29573.0
	DefaultModulus    = 139968.0
)

// LCG is a linear congruential generator over float64 state.
//
// Invariant: 0 <= last < Modulus after the first call to Random.
// LCG is not safe for concurrent use and is not cryptographically secure.
type LCG struct {
	last       float64
	multiplier float64
	increment  float64
	modulus    float64
}

// NewLCG returns a generator seeded with seed and using the given constants.
//
// Precondition: every constant is finite; modulus > 0; seed, multiplier and
// increment >= 0; max(seed, modulus)*multiplier+increment does not overflow.
// Postcondition: Returns a generator or an error describing the violated precondition.
func NewLCG(seed, multiplier, increment, modulus float64) (*LCG, error) {
	for _, c := range []struct {
		name  string
		value float64
	}{
		{"seed", seed},
		{"multiplier", multiplier},
		{"increment", increment},
		{"modulus", modulus},
	} {
		if math.IsNaN(c.value) || math.IsInf(c.value, 0) {
			return nil, fmt.Errorf("dice: lcg %s must be finite, got %v", c.name, c.value)
		}
	}
	switch {
	case modulus <= 0:
		return nil, fmt.Errorf("dice: lcg modulus must be > 0, got %v", modulus)
	case seed < 0:
		return nil, fmt.Errorf("dice: lcg seed must be >= 0, got %v", seed)
	case multiplier < 0:
		return nil, fmt.Errorf("dice: lcg multiplier must be >= 0, got %v", multiplier)
	case increment < 0:
		return nil, fmt.Errorf("dice: lcg increment must be >= 0, got %v", increment)
	case math.IsInf(math.Max(seed, modulus)*multiplier+increment, 0):
		return nil, fmt.Errorf("dice: lcg constants overflow float64 (multiplier %v, increment %v)", multiplier, increment)
	}
	return &LCG{
		last:       seed,
		multiplier: multiplier,
		increment:  increment,
		modulus:    modulus,
	}, nil
}

// NewDefaultLCG returns a generator with the default seed and constants.
func NewDefaultLCG() *LCG {
	return MustLCG(DefaultSeed, DefaultMultiplier, DefaultIncrement, DefaultModulus)
}

// MustLCG is NewLCG that panics on invalid constants.
func MustLCG(seed, multiplier, increment, modulus float64) *LCG {
	g, err := NewLCG(seed, multiplier, increment, modulus)
	if err != nil {
		panic(err.Error())
	}
	return g
}

// Random advances the state and returns state / modulus.
//
// Postcondition: return value is in [0, 1).
func (g *LCG) Random() float64 {
	g.last = math.Mod(g.last*g.multiplier+g.increment, g.modulus)
	return g.last / g.modulus
}

// Last returns the most recent raw state.
func (g *LCG) Last() float64 {
	return g.last
}
