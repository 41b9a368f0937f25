package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/ledmind/internal/config"
	"github.com/robalobadob/ledmind/internal/console"
	"github.com/robalobadob/ledmind/internal/hal"
	"github.com/robalobadob/ledmind/internal/secret"
	"github.com/robalobadob/ledmind/internal/store"
	"github.com/robalobadob/ledmind/internal/strip"
)

func main() {
	// stdout is the strip; logs go to stderr.
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	zerolog.SetGlobalLevel(cfg.LogLevel)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	counter, closeCounter, err := openCounter(cfg)
	if err != nil {
		log.Fatal().Err(err).Str("backend", cfg.CounterBackend).Msg("open boot counter")
	}
	defer closeCounter()

	code := secret.Generator{Store: counter, Reset: &secret.Latch{Cause: cfg.ResetCause}}.Generate(ctx)
	log.Debug().Stringer("secret", code).Msg("secret drawn")

	var in hal.Inputs = hal.Idle{}
	if cfg.Input == config.InputKeyboard {
		kb, err := hal.NewKeyboard(os.Stdin, cancel)
		if err != nil {
			log.Fatal().Err(err).Msg("keyboard input needs a terminal; set INPUT=idle")
		}
		defer kb.Close()
		in = kb
	}

	m := console.New(code, in, hal.NewTerminal(os.Stdout, strip.Build()), hal.RealSleeper{})
	log.Info().Str("input", cfg.Input).Msg("starting ledmind")
	if err := m.Run(ctx); err != nil && ctx.Err() == nil {
		log.Error().Err(err).Msg("game loop exited")
	}
}

// openCounter builds the configured boot-counter backend.
func openCounter(cfg config.Config) (secret.CounterStore, func(), error) {
	switch cfg.CounterBackend {
	case config.BackendFile:
		return store.NewFile(cfg.CounterPath), func() {}, nil
	case config.BackendMemory:
		return store.NewMemory(0), func() {}, nil
	default:
		db, err := store.OpenSQLite(cfg.CounterPath)
		if err != nil {
			return nil, nil, err
		}
		return db, func() { _ = db.Close() }, nil
	}
}
