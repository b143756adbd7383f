// Package board provides the Snakes and Ladders board model: squares and the
// signed jump offsets applied when a token lands on them.
package board

import (
	"errors"
	"fmt"
)

// ErrInvalidBoard is wrapped by every board validation failure.
var ErrInvalidBoard = errors.New("invalid board")

// DefaultFinalSquare is the last square of the classic board.
const DefaultFinalSquare = 25

// MaxFinalSquare is the largest final square New accepts.
const MaxFinalSquare = 10_000

// Kind classifies a square by its offset.
type Kind int

const (
	// Plain squares have no offset.
	Plain Kind = iota
	// Ladder squares move the token forward.
	Ladder
	// Snake squares move the token back.
	Snake
)

// String returns the glyph used to render the kind.
func (k Kind) String() string {
	switch k {
	case Ladder:
		return "▲"
	case Snake:
		return "▼"
	default:
		return "◦"
	}
}

// Jump places an offset on a square.
type Jump struct {
	Square int
	Offset int
}

// Board is an ordered sequence of offsets indexed 0..FinalSquare.
//
// Invariant: squares 0 and FinalSquare carry no offset.
type Board struct {
	Name    string
	squares []int
}

// New builds a board with finalSquare+1 squares and the given jumps applied in
// order; a later jump on the same square replaces an earlier one.
//
// Precondition: 1 <= finalSquare <= MaxFinalSquare.
// Postcondition: Returns a validated Board or an error wrapping ErrInvalidBoard.
func New(name string, finalSquare int, jumps []Jump) (*Board, error) {
	if finalSquare < 1 || finalSquare > MaxFinalSquare {
		return nil, fmt.Errorf("%w: final square must be in [1, %d], got %d", ErrInvalidBoard, MaxFinalSquare, finalSquare)
	}
	b := &Board{Name: name, squares: make([]int, finalSquare+1)}
	for _, j := range jumps {
		if j.Square < 0 || j.Square > finalSquare {
			return nil, fmt.Errorf("%w: %q: jump square %d outside [0, %d]", ErrInvalidBoard, name, j.Square, finalSquare)
		}
		b.squares[j.Square] = j.Offset
	}
	if err := b.Validate(); err != nil {
		return nil, err
	}
	return b, nil
}

// Default returns the classic 25-square board. Square 10 carries -11: the
// layout first places +2 there and then overwrites it.
func Default() *Board {
	b, err := New("classic", DefaultFinalSquare, []Jump{
		{Square: 3, Offset: +8},
		{Square: 6, Offset: +11},
		{Square: 9, Offset: +9},
		{Square: 10, Offset: +2},
		{Square: 14, Offset: -10},
		{Square: 10, Offset: -11},
		{Square: 22, Offset: -2},
		{Square: 24, Offset: -8},
	})
	if err != nil {
		panic("board: classic layout invalid: " + err.Error())
	}
	return b
}

// Validate checks board invariants.
//
// Postcondition: Returns nil if valid, or an error wrapping ErrInvalidBoard.
func (b *Board) Validate() error {
	if b.Name == "" {
		return fmt.Errorf("%w: name must not be empty", ErrInvalidBoard)
	}
	if len(b.squares) < 2 {
		return fmt.Errorf("%w: %q: must have at least two squares", ErrInvalidBoard, b.Name)
	}
	if b.squares[0] != 0 {
		return fmt.Errorf("%w: %q: square 0 must not carry an offset", ErrInvalidBoard, b.Name)
	}
	if b.squares[b.FinalSquare()] != 0 {
		return fmt.Errorf("%w: %q: final square %d must not carry an offset", ErrInvalidBoard, b.Name, b.FinalSquare())
	}
	return nil
}

// FinalSquare returns the index of the winning square.
func (b *Board) FinalSquare() int {
	return len(b.squares) - 1
}

// Offset returns the jump applied on landing at square.
//
// Precondition: 0 <= square <= FinalSquare().
func (b *Board) Offset(square int) int {
	return b.squares[square]
}

// KindOf classifies square.
func (b *Board) KindOf(square int) Kind {
	switch off := b.squares[square]; {
	case off > 0:
		return Ladder
	case off < 0:
		return Snake
	default:
		return Plain
	}
}

// Jumps returns every non-zero offset in square order.
func (b *Board) Jumps() []Jump {
	var out []Jump
	for i, off := range b.squares {
		if off != 0 {
			out = append(out, Jump{Square: i, Offset: off})
		}
	}
	return out
}

// Render draws squares 1..FinalSquare as ladder, snake and plain glyphs.
func (b *Board) Render() string {
	out := make([]rune, 0, b.FinalSquare())
	for i := 1; i <= b.FinalSquare(); i++ {
		out = append(out, []rune(b.KindOf(i).String())...)
	}
	return string(out)
}
