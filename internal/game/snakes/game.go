// Package snakes implements Snakes and Ladders as a delegate-driven dice game.
package snakes

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/cory-johannsen/protocols/internal/game/board"
	"github.com/cory-johannsen/protocols/internal/game/dice"
)

const tracerName = "github.com/cory-johannsen/protocols/internal/game/snakes"

// ErrTurnLimit is returned by Play when the configured turn cap is reached
// before the final square.
var ErrTurnLimit = errors.New("snakes: turn limit reached")

// DiceGame is a game played with a single die.
type DiceGame interface {
	Dice() *dice.Die
	Play(ctx context.Context) (Result, error)
}

// Delegate observes a DiceGame. Calls are synchronous and made from Play.
type Delegate interface {
	GameDidStart(game DiceGame)
	GameDidStartNewTurn(game DiceGame, roll int)
	GameDidEnd(game DiceGame)
}

// Result summarises one call to Play.
type Result struct {
	GameID      uuid.UUID
	Turns       int
	FinalSquare int
	Won         bool
}

// Game is a single-token game of Snakes and Ladders.
type Game struct {
	board    *board.Board
	die      *dice.Die
	delegate Delegate
	out      io.Writer
	logger   *zap.Logger
	maxTurns int

	id     uuid.UUID
	square int
}

// Option configures a Game.
type Option func(*Game)

// WithDelegate attaches an observer.
func WithDelegate(d Delegate) Option {
	return func(g *Game) { g.delegate = d }
}

// WithOutput sets where per-turn narration is written.
func WithOutput(w io.Writer) Option {
	return func(g *Game) { g.out = w }
}

// WithLogger sets the structured logger.
func WithLogger(l *zap.Logger) Option {
	return func(g *Game) { g.logger = l }
}

// WithMaxTurns caps the number of turns; 0 means unlimited.
func WithMaxTurns(n int) Option {
	return func(g *Game) { g.maxTurns = n }
}

// New creates a game on b rolled with d.
//
// Precondition: b and d must be non-nil.
// Postcondition: Returns a Game positioned on square 0, or an error.
func New(b *board.Board, d *dice.Die, opts ...Option) (*Game, error) {
	if b == nil {
		return nil, errors.New("snakes: board must not be nil")
	}
	if d == nil {
		return nil, errors.New("snakes: die must not be nil")
	}
	g := &Game{
		board:  b,
		die:    d,
		out:    io.Discard,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.maxTurns < 0 {
		return nil, fmt.Errorf("snakes: max turns must be >= 0, got %d", g.maxTurns)
	}
	return g, nil
}

// Dice returns the die the game is rolled with.
func (g *Game) Dice() *dice.Die {
	return g.die
}

// Board returns the board being played.
func (g *Game) Board() *board.Board {
	return g.board
}

// Square returns the token's current square.
func (g *Game) Square() int {
	return g.square
}

// ID returns the identifier of the most recent play, or uuid.Nil before the first.
func (g *Game) ID() uuid.UUID {
	return g.id
}

// SetDelegate replaces the observer; nil detaches it.
func (g *Game) SetDelegate(d Delegate) {
	g.delegate = d
}

// Play resets the token to square 0 and rolls until the final square is
// reached, the turn cap is hit, or ctx is cancelled. The delegate, if any, is
// notified at start, on every turn, and at end regardless of how play ends.
//
// Postcondition: 0 <= Square() <= FinalSquare() at every point of play.
func (g *Game) Play(ctx context.Context) (Result, error) {
	g.id = uuid.New()
	g.square = 0
	final := g.board.FinalSquare()

	ctx, span := otel.Tracer(tracerName).Start(ctx, "snakes.Play", trace.WithAttributes(
		attribute.String("game.id", g.id.String()),
		attribute.String("board.name", g.board.Name),
		attribute.Int("dice.sides", g.die.Sides()),
	))
	defer span.End()

	logger := g.logger.With(zap.String("game_id", g.id.String()))
	logger.Debug("game started", zap.String("board", g.board.Name), zap.Int("final_square", final))
	if g.delegate != nil {
		g.delegate.GameDidStart(g)
	}

	res := Result{GameID: g.id}
	var err error
	for g.square != final {
		if err = ctx.Err(); err != nil {
			break
		}
		if g.maxTurns > 0 && res.Turns >= g.maxTurns {
			err = fmt.Errorf("%w after %d turns", ErrTurnLimit, res.Turns)
			break
		}

		roll := g.die.Roll()
		res.Turns++
		if g.delegate != nil {
			g.delegate.GameDidStartNewTurn(g, roll)
		}

		t := Advance(g.board, g.square, roll)
		switch t.Outcome {
		case Overshoot:
			fmt.Fprintf(g.out, " Square %d is past the final square, turn forfeited\n", t.Candidate)
		default:
			fmt.Fprintf(g.out, " Board number = %d\n", t.Candidate)
		}
		g.square = t.Square

		span.AddEvent("turn", trace.WithAttributes(
			attribute.Int("roll", roll),
			attribute.Int("square", g.square),
			attribute.String("outcome", t.Outcome.String()),
		))
		logger.Debug("turn",
			zap.Int("turn", res.Turns),
			zap.Int("roll", roll),
			zap.Int("candidate", t.Candidate),
			zap.Int("square", g.square),
			zap.Stringer("outcome", t.Outcome),
		)
	}

	res.FinalSquare = g.square
	res.Won = g.square == final
	span.SetAttributes(attribute.Int("game.turns", res.Turns), attribute.Bool("game.won", res.Won))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		logger.Warn("game ended early", zap.Int("turns", res.Turns), zap.Error(err))
	} else {
		logger.Debug("game ended", zap.Int("turns", res.Turns))
	}

	if g.delegate != nil {
		g.delegate.GameDidEnd(g)
	}
	return res, err
}

// AsText describes the game.
func (g *Game) AsText() string {
	return fmt.Sprintf("A game of Snakes and Ladders with %d squares", g.board.FinalSquare())
}

// AsPrettyText describes the game followed by a rendering of the board.
func (g *Game) AsPrettyText() string {
	return g.AsText() + ":\n" + g.board.Render()
}
