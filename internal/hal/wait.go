package hal

import (
	"context"
	"errors"
	"time"

	"github.com/robalobadob/ledmind/internal/game"
)

// ErrStillPressed is returned by WaitReleased when MaxPolls runs out.
var ErrStillPressed = errors.New("hal: button still pressed")

// Sleeper is the delay primitive behind every poll. Tests substitute a
// simulated clock.
type Sleeper interface {
	Sleep(ctx context.Context, d time.Duration) error
}

// RealSleeper waits on the wall clock.
type RealSleeper struct{}

func (RealSleeper) Sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// Poller blocks until every player's button is up.
type Poller struct {
	Sleeper  Sleeper
	Settle   time.Duration // one-off delay before the first poll
	Interval time.Duration // delay between polls
	MaxPolls int           // 0 waits forever
}

// DefaultPoller settles for 50 ms then polls every 10 ms with no limit.
func DefaultPoller(s Sleeper) Poller {
	return Poller{Sleeper: s, Settle: 50 * time.Millisecond, Interval: 10 * time.Millisecond}
}

// WaitReleased returns once no button reads pressed. Nothing else runs
// meanwhile, so a held button pauses the whole game. It returns the
// context's error on cancellation and ErrStillPressed if MaxPolls is set
// and exhausted.
func (p Poller) WaitReleased(ctx context.Context, in Inputs) error {
	if err := p.Sleeper.Sleep(ctx, p.Settle); err != nil {
		return err
	}
	for polls := 0; ; polls++ {
		if !anyPressed(in) {
			return nil
		}
		if p.MaxPolls > 0 && polls >= p.MaxPolls {
			return ErrStillPressed
		}
		if err := p.Sleeper.Sleep(ctx, p.Interval); err != nil {
			return err
		}
	}
}

// anyPressed samples every button on each poll, without short-circuiting.
func anyPressed(in Inputs) bool {
	pressed := false
	for p := 0; p < game.NumPlayers; p++ {
		if in.ReadButton(p) {
			pressed = true
		}
	}
	return pressed
}
