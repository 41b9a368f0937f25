// internal/secret/secret.go
//
// Per-session secret generation without an entropy source.
// Responsibilities:
//   - Bump the persisted boot counter once per session.
//   - Mix the counter with the reset-cause bits into a non-zero seed.
//   - Draw the secret from a 32-bit linear congruential generator.
//
// Persistence failures are logged and tolerated: a counter that cannot be
// read counts as zero, so every boot then produces the same secret.

package secret

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/ledmind/internal/game"
)

const (
	mixConstant  uint32 = 0x9E3779B9 // odd
	fallbackSeed uint32 = 0x2545F491
)

// CounterStore persists the boot counter across power cycles.
type CounterStore interface {
	ReadCounter(ctx context.Context) (uint32, error)
	WriteCounter(ctx context.Context, v uint32) error
}

// ResetLatch exposes why the device last restarted.
type ResetLatch interface {
	ResetCause() uint8
	ClearResetCause()
}

// LCG is the Numerical Recipes generator state' = 1664525*state + 1013904223.
type LCG struct {
	state uint32
}

// NewLCG seeds a generator.
func NewLCG(seed uint32) *LCG { return &LCG{state: seed} }

// Next steps the generator and returns the new state.
func (l *LCG) Next() uint32 {
	l.state = 1664525*l.state + 1013904223
	return l.state
}

// Symbol draws one secret symbol from the high 16 bits of the next step.
func (l *LCG) Symbol() game.Color {
	return game.Color((l.Next()>>16)%game.NumColors + 1)
}

// Seed mixes a boot counter and reset cause into a non-zero LCG seed.
func Seed(counter uint32, cause uint8) uint32 {
	s := counter ^ uint32(cause)<<24 ^ mixConstant
	if s == 0 {
		return fallbackSeed
	}
	return s
}

// FromSeed draws a full code from a seeded generator.
func FromSeed(seed uint32) game.Code {
	l := NewLCG(seed)
	var c game.Code
	for i := range c {
		c[i] = l.Symbol()
	}
	return c
}

// Generator produces one secret per session.
type Generator struct {
	Store CounterStore
	Reset ResetLatch
}

// Generate reads and bumps the boot counter, consumes the reset cause, and
// returns the session's secret. It always succeeds.
func (g Generator) Generate(ctx context.Context) game.Code {
	counter, err := g.Store.ReadCounter(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("read boot counter; using 0")
		counter = 0
	}
	counter++
	if err := g.Store.WriteCounter(ctx, counter); err != nil {
		log.Warn().Err(err).Uint32("counter", counter).Msg("persist boot counter")
	}

	cause := g.Reset.ResetCause()
	g.Reset.ClearResetCause()

	log.Info().Uint32("boot", counter).Uint8("resetCause", cause).Msg("seeding secret")
	return FromSeed(Seed(counter, cause))
}

// Latch is a ResetLatch holding a fixed cause until cleared.
type Latch struct {
	Cause uint8
}

func (l *Latch) ResetCause() uint8 { return l.Cause }
func (l *Latch) ClearResetCause()  { l.Cause = 0 }
