// Package main provides the protocols binary, which runs the walkthrough of
// interfaces, delegation and extensions against a configurable generator.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/cory-johannsen/protocols/internal/config"
	"github.com/cory-johannsen/protocols/internal/demo"
	"github.com/cory-johannsen/protocols/internal/game/board"
	"github.com/cory-johannsen/protocols/internal/game/dice"
	"github.com/cory-johannsen/protocols/internal/observability"
	"github.com/cory-johannsen/protocols/internal/scripting"
)

func main() {
	start := time.Now()

	configPath := flag.String("config", "", "path to configuration file; empty = defaults and environment only")
	boardFile := flag.String("board", "", "board YAML file; overrides game.board_file")
	scriptDir := flag.String("scripts", "", "counter script root; overrides scripting.dir")
	flag.Parse()

	// A missing .env is normal outside development.
	_ = godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}
	if *boardFile != "" {
		cfg.Game.BoardFile = *boardFile
	}
	if *scriptDir != "" {
		cfg.Scripting.Dir = *scriptDir
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	shutdownTracing, err := observability.SetupTracing(ctx, cfg.Telemetry)
	if err != nil {
		logger.Fatal("initializing tracing", zap.Error(err))
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(shutdownCtx); err != nil {
			logger.Warn("flushing traces", zap.Error(err))
		}
	}()

	newGen, err := demo.GeneratorFactoryFor(cfg.Generator)
	if err != nil {
		logger.Fatal("configuring generator", zap.Error(err))
	}

	b := board.Default()
	if cfg.Game.BoardFile != "" {
		b, err = board.LoadFromFile(cfg.Game.BoardFile)
		if err != nil {
			logger.Fatal("loading board", zap.String("file", cfg.Game.BoardFile), zap.Error(err))
		}
	}

	gameDice, err := dice.Parse(cfg.Game.Dice)
	if err != nil {
		logger.Fatal("parsing game dice", zap.Error(err))
	}

	opts := []demo.Option{
		demo.WithLogger(logger),
		demo.WithBoard(b),
		demo.WithGameDice(gameDice),
		demo.WithMaxTurns(cfg.Game.MaxTurns),
	}

	if cfg.Scripting.Dir != "" {
		scriptGen, err := newGen()
		if err != nil {
			logger.Fatal("creating script generator", zap.Error(err))
		}
		mgr := scripting.NewManager(dice.NewLoggedRoller(dice.GeneratorSource{Gen: scriptGen}, logger), logger)
		defer mgr.Close()
		keys, err := mgr.LoadDir(cfg.Scripting.Dir, cfg.Scripting.InstructionLimit)
		if err != nil {
			logger.Fatal("loading counter scripts", zap.String("dir", cfg.Scripting.Dir), zap.Error(err))
		}
		logger.Info("counter scripts loaded", zap.Strings("scripts", keys))
		opts = append(opts, demo.WithScriptedCounters(mgr, keys))
	}

	runner, err := demo.New(os.Stdout, newGen, opts...)
	if err != nil {
		logger.Fatal("creating demo runner", zap.Error(err))
	}

	logger.Info("starting walkthrough",
		zap.String("generator", cfg.Generator.Kind),
		zap.String("board", b.Name),
		zap.String("dice", gameDice.Raw),
	)
	if err := runner.Run(ctx); err != nil {
		logger.Error("walkthrough failed", zap.Error(err))
		os.Exit(1)
	}
	logger.Info("walkthrough complete", zap.Duration("elapsed", time.Since(start)))
}
