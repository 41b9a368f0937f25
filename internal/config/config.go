// internal/config/config.go
//
// Environment-driven configuration.
// Values come from the process environment, optionally seeded from a .env
// file (godotenv) in development.
//
// Environment variables:
//   LOG_LEVEL=info            zerolog level name
//   COUNTER_BACKEND=sqlite    sqlite | file | memory
//   COUNTER_PATH=...          database or image path (backend default if unset)
//   RESET_CAUSE=1             reset-cause bitmask reported at boot
//   INPUT=keyboard            keyboard | idle

package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

const (
	BackendSQLite = "sqlite"
	BackendFile   = "file"
	BackendMemory = "memory"

	InputKeyboard = "keyboard"
	InputIdle     = "idle"
)

// Config is the resolved runtime configuration.
type Config struct {
	LogLevel       zerolog.Level
	CounterBackend string
	CounterPath    string
	ResetCause     uint8
	Input          string
}

// Load reads .env (if present) and the environment.
func Load() (Config, error) {
	_ = godotenv.Load()
	return FromEnv()
}

// FromEnv resolves the configuration from the current environment only.
func FromEnv() (Config, error) {
	var c Config

	lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info"))
	if err != nil {
		return c, fmt.Errorf("LOG_LEVEL: %w", err)
	}
	c.LogLevel = lvl

	c.CounterBackend = getEnv("COUNTER_BACKEND", BackendSQLite)
	switch c.CounterBackend {
	case BackendSQLite:
		c.CounterPath = getEnv("COUNTER_PATH", "./data/ledmind.db")
	case BackendFile:
		c.CounterPath = getEnv("COUNTER_PATH", "./data/counter.bin")
	case BackendMemory:
	default:
		return c, fmt.Errorf("COUNTER_BACKEND: unknown backend %q", c.CounterBackend)
	}

	cause, err := strconv.ParseUint(getEnv("RESET_CAUSE", "1"), 0, 8)
	if err != nil {
		return c, fmt.Errorf("RESET_CAUSE: %w", err)
	}
	c.ResetCause = uint8(cause)

	c.Input = getEnv("INPUT", InputKeyboard)
	if c.Input != InputKeyboard && c.Input != InputIdle {
		return c, fmt.Errorf("INPUT: unknown source %q", c.Input)
	}
	return c, nil
}

// getEnv returns the value of k or def if unset/empty.
func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
