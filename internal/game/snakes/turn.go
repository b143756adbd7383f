package snakes

import "github.com/cory-johannsen/protocols/internal/game/board"

// Outcome is what a single roll did to the token.
type Outcome int

const (
	// Moved means the token landed and any offset was applied.
	Moved Outcome = iota
	// Overshoot means the roll would pass the final square; the token stays.
	Overshoot
	// Won means the token is on the final square.
	Won
)

// String returns the outcome name.
func (o Outcome) String() string {
	switch o {
	case Overshoot:
		return "overshoot"
	case Won:
		return "won"
	default:
		return "moved"
	}
}

// Turn is the result of applying one roll.
type Turn struct {
	// Candidate is square + roll before any offset or overshoot rule.
	Candidate int
	// Square is the token's square after the turn.
	Square  int
	Outcome Outcome
}

// Advance applies roll to a token on square.
//
// A roll landing exactly on the final square wins. A roll past it is
// forfeited. Otherwise the landing square's offset is applied and the result
// clamped into [0, FinalSquare]; an offset that reaches the final square wins.
//
// Precondition: 0 <= square <= b.FinalSquare(); roll >= 1.
// Postcondition: 0 <= Turn.Square <= b.FinalSquare().
func Advance(b *board.Board, square, roll int) Turn {
	final := b.FinalSquare()
	candidate := square + roll
	switch {
	case candidate == final:
		return Turn{Candidate: candidate, Square: final, Outcome: Won}
	case candidate > final:
		return Turn{Candidate: candidate, Square: square, Outcome: Overshoot}
	}

	next := candidate + b.Offset(candidate)
	if next < 0 {
		next = 0
	}
	if next >= final {
		return Turn{Candidate: candidate, Square: final, Outcome: Won}
	}
	return Turn{Candidate: candidate, Square: next, Outcome: Moved}
}
