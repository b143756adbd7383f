// Package intx provides small integer helpers: repetition, in-place squaring,
// decimal digit lookup, and sign classification.
package intx

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNegativeIndex is returned by Digit for a negative digit index.
var ErrNegativeIndex = errors.New("intx: digit index must be >= 0")

// maxDigitIndex is the largest index whose power of ten fits in an int64.
const maxDigitIndex = 18

// Repetitions calls task n times. n <= 0 calls it zero times.
func Repetitions(n int, task func()) {
	for i := 0; i < n; i++ {
		task()
	}
}

// Square replaces *n with its square.
func Square(n *int) {
	*n *= *n
}

// Digit returns the decimal digit index places from the right of n, where
// index 0 is the ones digit. Indices past the most significant digit yield 0,
// as if n were padded with leading zeros. Negative n uses its magnitude.
func Digit(n, index int) (int, error) {
	if index < 0 {
		return 0, fmt.Errorf("%w, got %d", ErrNegativeIndex, index)
	}
	if index > maxDigitIndex {
		return 0, nil
	}
	base := 1
	for i := 0; i < index; i++ {
		base *= 10
	}
	d := (n / base) % 10
	if d < 0 {
		d = -d
	}
	return d, nil
}

// Kind is the sign class of an integer.
type Kind int

const (
	// Negative integers are below zero.
	Negative Kind = iota
	// Zero is zero itself.
	Zero
	// Positive integers are above zero.
	Positive
)

// String returns the sign glyph for k.
func (k Kind) String() string {
	switch k {
	case Negative:
		return "-"
	case Zero:
		return "0"
	default:
		return "+"
	}
}

// KindOf classifies n.
func KindOf(n int) Kind {
	switch {
	case n == 0:
		return Zero
	case n > 0:
		return Positive
	default:
		return Negative
	}
}

// Kinds renders the sign class of each number followed by a space.
func Kinds(numbers []int) string {
	var b strings.Builder
	for _, n := range numbers {
		b.WriteString(KindOf(n).String())
		b.WriteByte(' ')
	}
	return b.String()
}
