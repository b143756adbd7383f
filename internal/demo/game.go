package demo

import (
	"context"

	"github.com/cory-johannsen/protocols/internal/game/snakes"
	"github.com/cory-johannsen/protocols/internal/text"
)

// newGame builds a fresh Snakes and Ladders game narrated to the runner's output.
func (r *Runner) newGame(opts ...snakes.Option) (*snakes.Game, error) {
	die, err := r.newDie(r.gameDice.Sides)
	if err != nil {
		return nil, err
	}
	opts = append([]snakes.Option{
		snakes.WithOutput(r.out),
		snakes.WithLogger(r.logger),
		snakes.WithMaxTurns(r.maxTurns),
	}, opts...)
	return snakes.New(r.board, die, opts...)
}

func (r *Runner) delegation(ctx context.Context) error {
	r.out.heading("Delegation")
	game, err := r.newGame(snakes.WithDelegate(snakes.NewTracker(r.out)))
	if err != nil {
		return err
	}
	_, err = game.Play(ctx)
	return err
}

func (r *Runner) textRepresentation(context.Context) error {
	p := r.out
	p.heading("Adding interface conformance alongside a type")
	d12, err := r.newDie(12)
	if err != nil {
		return err
	}
	p.printf(" %s\n", d12.AsText())
	game, err := r.newGame()
	if err != nil {
		return err
	}
	p.printf(" %s\n", game.AsText())

	simon := text.Hamster{Name: "Simon"}
	var somethingTextRepresentable text.TextRepresentable = simon
	p.printf(" %s\n", somethingTextRepresentable.AsText())

	p.heading("Collections of interface types")
	for _, line := range text.Describe([]text.TextRepresentable{game, d12, simon}) {
		p.printf(" %s\n", line)
	}

	p.heading("Interface embedding")
	p.printf(" %s\n", text.Pretty(game))
	return nil
}
