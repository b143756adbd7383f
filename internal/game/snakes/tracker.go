package snakes

import (
	"fmt"
	"io"
)

// Tracker is a Delegate that counts turns and narrates the game to w.
type Tracker struct {
	NumberOfTurns int
	w             io.Writer
}

// NewTracker returns a Tracker writing to w.
func NewTracker(w io.Writer) *Tracker {
	return &Tracker{w: w}
}

// GameDidStart resets the turn count and announces the game.
func (t *Tracker) GameDidStart(game DiceGame) {
	t.NumberOfTurns = 0
	if _, ok := game.(*Game); ok {
		fmt.Fprintln(t.w, " Started a new game of Snakes and Ladders")
	}
	fmt.Fprintf(t.w, " The game is using a %d-sided dice\n", game.Dice().Sides())
}

// GameDidStartNewTurn counts the turn and reports the roll.
func (t *Tracker) GameDidStartNewTurn(_ DiceGame, roll int) {
	t.NumberOfTurns++
	fmt.Fprintf(t.w, " Rolled a %d\n", roll)
}

// GameDidEnd reports the number of turns.
func (t *Tracker) GameDidEnd(_ DiceGame) {
	fmt.Fprintf(t.w, " The game lasted for %d turns\n", t.NumberOfTurns)
}
