package demo_test

import (
	"bytes"
	"context"
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/cory-johannsen/protocols/internal/config"
	"github.com/cory-johannsen/protocols/internal/demo"
	"github.com/cory-johannsen/protocols/internal/game/board"
	"github.com/cory-johannsen/protocols/internal/game/dice"
	"github.com/cory-johannsen/protocols/internal/game/snakes"
	"github.com/cory-johannsen/protocols/internal/scripting"
)

func defaultFactory(t *testing.T) demo.GeneratorFactory {
	t.Helper()
	f, err := demo.GeneratorFactoryFor(config.GeneratorConfig{
		Kind:       "lcg",
		Seed:       dice.DefaultSeed,
		Multiplier: dice.DefaultMultiplier,
		Increment:  dice.DefaultIncrement,
		Modulus:    dice.DefaultModulus,
	})
	require.NoError(t, err)
	return f
}

func runDemo(t *testing.T, opts ...demo.Option) string {
	t.Helper()
	var out bytes.Buffer
	r, err := demo.New(&out, defaultFactory(t), opts...)
	require.NoError(t, err)
	require.NoError(t, r.Run(context.Background()))
	return out.String()
}

func TestRun_Walkthrough(t *testing.T) {
	out := runDemo(t)

	for _, want := range []string{
		" One inch is 0.0254 meters",
		" Three feet is 0.914399970739201 meters",
		" A marathon is 42195 meters long",
		" memberwiseRect origin = (2, 2)",
		" centerRect origin = (2.5, 2.5)",
		" Hello!",
		" Goodbye!",
		" someInt = 9",
		" 746381295[0] = 5",
		" 746381295[9] = 0",
		" 1746381295[9] = 1",
		" + + - 0 - 0 + ",
		" John Appleseed",
		" USS Enterprise",
		" Here's a random number: 0.3746499199817101",
		" And another one: 0.729023776863283",
		" lightSwitch = On",
		" Random dice roll is 3",
		" 2d6+3 → [3 5] +3 = 11",
		" 3d4-1 → [3 4 3] -1 = 9",
		" d20 → [3] +0 = 3",
		" Started a new game of Snakes and Ladders",
		" The game is using a 6-sided dice",
		" The game lasted for 4 turns",
		" A 12-sided dice",
		" A game of Snakes and Ladders with 25 squares",
		" A hamster named Simon",
		"◦◦▲◦◦▲◦◦▲▼◦◦◦▼◦◦◦◦◦◦◦▼◦▼◦",
		" Happy birthday Malcolm - you're 21!",
		" Area is 12.5663708",
		" Area is 243610",
		" Something that doesn't have an area",
	} {
		assert.Contains(t, out, want)
	}
	assert.Equal(t, 3, bytes.Count([]byte(out), []byte(" Hello!")))
	assert.NotContains(t, out, "Scripted data sources", "no scripts configured")
}

func TestRun_CounterSequences(t *testing.T) {
	out := runDemo(t)
	assert.Contains(t, out, "\n Optional requirements\n 3\n 6\n 9\n 12\n")
	assert.Contains(t, out, "\n More complex data source\n -3\n -2\n -1\n 0\n 0\n")
}

func TestRun_Deterministic(t *testing.T) {
	assert.Equal(t, runDemo(t), runDemo(t))
}

func TestRun_ScriptedCounters(t *testing.T) {
	logger := zap.NewNop()
	mgr := scripting.NewManager(dice.NewLoggedRoller(dice.GeneratorSource{Gen: dice.NewDefaultLCG()}, logger), logger)
	t.Cleanup(mgr.Close)

	root := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(root, "three"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "three", "three.lua"), []byte(`fixed_increment = 3`), 0644))
	keys, err := mgr.LoadDir(root, 0)
	require.NoError(t, err)

	out := runDemo(t, demo.WithScriptedCounters(mgr, keys))
	assert.Contains(t, out, " three from -4: -1 2 5 8 11\n")
}

func TestRun_CustomBoardAndDice(t *testing.T) {
	b, err := board.New("tiny", 3, nil)
	require.NoError(t, err)
	out := runDemo(t, demo.WithBoard(b), demo.WithGameDice(dice.MustParse("d4")))
	assert.Contains(t, out, " The game is using a 4-sided dice")
	assert.Contains(t, out, " A game of Snakes and Ladders with 3 squares")
}

func TestRun_TurnLimit(t *testing.T) {
	b, err := board.New("tiny", 3, nil)
	require.NoError(t, err)
	var out bytes.Buffer
	r, err := demo.New(&out, func() (dice.Generator, error) { return constant(0.99), nil },
		demo.WithBoard(b), demo.WithMaxTurns(5))
	require.NoError(t, err)
	err = r.Run(context.Background())
	assert.ErrorIs(t, err, snakes.ErrTurnLimit)
}

func TestRun_LogsSections(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	runDemo(t, demo.WithLogger(zap.New(core)))
	assert.Equal(t, 12, logs.FilterMessage("demo section").Len())
	assert.Equal(t, 3, logs.FilterMessage("dice roll").Len())
}

func TestRun_WriteError(t *testing.T) {
	r, err := demo.New(failingWriter{}, defaultFactory(t))
	require.NoError(t, err)
	err = r.Run(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, errWrite)
}

func TestRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	r, err := demo.New(&bytes.Buffer{}, defaultFactory(t))
	require.NoError(t, err)
	assert.ErrorIs(t, r.Run(ctx), context.Canceled)
}

func TestRun_GeneratorFailure(t *testing.T) {
	boom := errors.New("no entropy")
	r, err := demo.New(&bytes.Buffer{}, func() (dice.Generator, error) { return nil, boom })
	require.NoError(t, err)
	assert.ErrorIs(t, r.Run(context.Background()), boom)
}

func TestNew_Preconditions(t *testing.T) {
	_, err := demo.New(nil, defaultFactory(t))
	assert.Error(t, err)
	_, err = demo.New(&bytes.Buffer{}, nil)
	assert.Error(t, err)
	_, err = demo.New(&bytes.Buffer{}, defaultFactory(t), demo.WithGameDice(dice.MustParse("2d6")))
	assert.Error(t, err)
}

func TestGeneratorFactoryFor(t *testing.T) {
	f, err := demo.GeneratorFactoryFor(config.GeneratorConfig{Kind: "crypto"})
	require.NoError(t, err)
	g, err := f()
	require.NoError(t, err)
	v := g.Random()
	assert.GreaterOrEqual(t, v, 0.0)
	assert.Less(t, v, 1.0)

	_, err = demo.GeneratorFactoryFor(config.GeneratorConfig{Kind: "lcg", Modulus: 0})
	assert.Error(t, err)
	_, err = demo.GeneratorFactoryFor(config.GeneratorConfig{Kind: "bogus"})
	assert.Error(t, err)
}

func TestGeneratorFactoryFor_NonFiniteSeed(t *testing.T) {
	_, err := demo.GeneratorFactoryFor(config.GeneratorConfig{
		Kind:       "lcg",
		Seed:       math.NaN(),
		Multiplier: dice.DefaultMultiplier,
		Increment:  dice.DefaultIncrement,
		Modulus:    dice.DefaultModulus,
	})
	assert.Error(t, err)
}

func TestGeneratorFactoryFor_FreshSequencePerCall(t *testing.T) {
	f := defaultFactory(t)
	a, err := f()
	require.NoError(t, err)
	b, err := f()
	require.NoError(t, err)
	assert.Equal(t, a.Random(), b.Random())
}

type constant float64

func (c constant) Random() float64 { return float64(c) }

var errWrite = errors.New("disk full")

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errWrite }
