// Package demo runs the language-feature walkthrough: each section exercises
// one package of the module and narrates the result.
package demo

import (
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/cory-johannsen/protocols/internal/config"
	"github.com/cory-johannsen/protocols/internal/game/board"
	"github.com/cory-johannsen/protocols/internal/game/dice"
	"github.com/cory-johannsen/protocols/internal/scripting"
)

// GeneratorFactory returns a fresh generator. Every die in the walkthrough
// gets its own generator, so deterministic factories replay the same
// sequence for each die.
type GeneratorFactory func() (dice.Generator, error)

// GeneratorFactoryFor builds the factory selected by cfg.
func GeneratorFactoryFor(cfg config.GeneratorConfig) (GeneratorFactory, error) {
	switch cfg.Kind {
	case "lcg":
		if _, err := dice.NewLCG(cfg.Seed, cfg.Multiplier, cfg.Increment, cfg.Modulus); err != nil {
			return nil, err
		}
		return func() (dice.Generator, error) {
			return dice.NewLCG(cfg.Seed, cfg.Multiplier, cfg.Increment, cfg.Modulus)
		}, nil
	case "crypto":
		return func() (dice.Generator, error) { return dice.NewCryptoSource(), nil }, nil
	default:
		return nil, fmt.Errorf("demo: unknown generator kind %q", cfg.Kind)
	}
}

// Runner holds everything the walkthrough needs.
type Runner struct {
	out         *printer
	logger      *zap.Logger
	newGen      GeneratorFactory
	board       *board.Board
	gameDice    dice.Expression
	maxTurns    int
	scripts     *scripting.Manager
	counterKeys []string
}

// Option configures a Runner.
type Option func(*Runner)

// WithLogger sets the structured logger.
func WithLogger(l *zap.Logger) Option {
	return func(r *Runner) { r.logger = l }
}

// WithBoard replaces the built-in board.
func WithBoard(b *board.Board) Option {
	return func(r *Runner) { r.board = b }
}

// WithGameDice sets the die used by the Snakes and Ladders section.
func WithGameDice(expr dice.Expression) Option {
	return func(r *Runner) { r.gameDice = expr }
}

// WithMaxTurns caps the Snakes and Ladders game.
func WithMaxTurns(n int) Option {
	return func(r *Runner) { r.maxTurns = n }
}

// WithScriptedCounters enables the scripted counter section for the given
// script keys loaded into mgr.
func WithScriptedCounters(mgr *scripting.Manager, keys []string) Option {
	return func(r *Runner) {
		r.scripts = mgr
		r.counterKeys = keys
	}
}

// New creates a Runner writing to w.
//
// Precondition: w and newGen must be non-nil.
func New(w io.Writer, newGen GeneratorFactory, opts ...Option) (*Runner, error) {
	if w == nil {
		return nil, fmt.Errorf("demo: writer must not be nil")
	}
	if newGen == nil {
		return nil, fmt.Errorf("demo: generator factory must not be nil")
	}
	r := &Runner{
		out:      &printer{w: w},
		logger:   zap.NewNop(),
		newGen:   newGen,
		board:    board.Default(),
		gameDice: dice.MustParse("d6"),
	}
	for _, opt := range opts {
		opt(r)
	}
	if !r.gameDice.Single() {
		return nil, fmt.Errorf("demo: game dice %q must be a single die", r.gameDice.Raw)
	}
	return r, nil
}

type section struct {
	name string
	run  func(context.Context) error
}

func (r *Runner) sections() []section {
	return []section{
		{"extensions", r.extensions},
		{"names", r.names},
		{"generator", r.generator},
		{"toggle", r.toggle},
		{"dice", r.diceRolls},
		{"dice expressions", r.diceExpressions},
		{"delegation", r.delegation},
		{"text", r.textRepresentation},
		{"composition", r.composition},
		{"conformance", r.conformance},
		{"counters", r.counters},
		{"scripted counters", r.scriptedCounters},
	}
}

// Run executes every section in order, stopping at the first error.
func (r *Runner) Run(ctx context.Context) error {
	for _, s := range r.sections() {
		if err := ctx.Err(); err != nil {
			return err
		}
		r.logger.Debug("demo section", zap.String("section", s.name))
		if err := s.run(ctx); err != nil {
			return fmt.Errorf("demo: section %s: %w", s.name, err)
		}
		if r.out.err != nil {
			return fmt.Errorf("demo: writing section %s: %w", s.name, r.out.err)
		}
	}
	return nil
}

// newDie returns a die with a fresh generator.
func (r *Runner) newDie(sides int) (*dice.Die, error) {
	gen, err := r.newGen()
	if err != nil {
		return nil, err
	}
	return dice.NewDie(sides, gen)
}
