// internal/console/machine.go
//
// The main loop: one Machine owns every piece of session state and is
// threaded through each tick.
// Per tick:
//   1. Sample both players' controls and step the engine.
//   2. If the row is complete, block until both buttons are released, then
//      commit and score it.
//   3. Render the snapshot with the current blink phase and show the frame.
//
// Everything runs on the caller's goroutine; the only blocking step is the
// release wait, which pauses rendering as well.

package console

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/ledmind/internal/game"
	"github.com/robalobadob/ledmind/internal/hal"
	"github.com/robalobadob/ledmind/internal/render"
	"github.com/robalobadob/ledmind/internal/strip"
)

// TickPeriod is the fixed frame cadence every blink ratio is expressed in.
const TickPeriod = 50 * time.Millisecond

// Machine is the top-level session context.
type Machine struct {
	engine  *game.Engine
	comp    *render.Compositor
	blink   render.Blinker
	in      hal.Inputs
	out     hal.Display
	poller  hal.Poller
	sleeper hal.Sleeper
}

// New wires a machine for one session with the given secret.
func New(secret game.Code, in hal.Inputs, out hal.Display, sleeper hal.Sleeper) *Machine {
	return &Machine{
		engine:  game.New(secret),
		comp:    render.New(strip.Build()),
		in:      in,
		out:     out,
		poller:  hal.DefaultPoller(sleeper),
		sleeper: sleeper,
	}
}

// Engine exposes the engine for inspection.
func (m *Machine) Engine() *game.Engine { return m.engine }

// Tick runs one frame. It returns an error only if the context is
// cancelled during the release wait or the display rejects the frame.
func (m *Machine) Tick(ctx context.Context) error {
	if m.engine.Step(hal.Sample(m.in)) {
		if err := m.poller.WaitReleased(ctx, m.in); err != nil {
			return err
		}
		row := m.engine.Row()
		if m.engine.Commit() {
			m.logCommit(row)
		}
	}

	frame := m.comp.Render(m.engine.Snapshot(), m.blink.On())
	m.blink.Advance()
	if err := m.out.Show(frame); err != nil {
		return fmt.Errorf("show frame: %w", err)
	}
	return nil
}

// Run ticks at TickPeriod until ctx is cancelled. The game ending does not
// stop the loop: the final board keeps blinking until the host exits.
func (m *Machine) Run(ctx context.Context) error {
	for {
		if err := m.Tick(ctx); err != nil {
			return err
		}
		if err := m.sleeper.Sleep(ctx, TickPeriod); err != nil {
			return err
		}
	}
}

func (m *Machine) logCommit(row int) {
	b1, b2 := m.engine.Board(0), m.engine.Board(1)
	t1, t2 := b1.Turns[row], b2.Turns[row]
	log.Debug().
		Int("row", row+1).
		Int("p1Pos", t1.Pos).Int("p1Col", t1.Col).
		Int("p2Pos", t2.Pos).Int("p2Col", t2.Col).
		Msg("row committed")

	if st := m.engine.State(); st.Terminal() {
		log.Info().
			Str("state", st.String()).
			Bool("winningDraw", m.engine.WinningDraw()).
			Int("rows", row+1).
			Msg("game over")
	}
}
