package render

const (
	blinkPeriod  = 20 // ticks per blink cycle
	blinkOffTick = 4  // leading ticks of each cycle that are dark
)

// Blinker is the duty-cycle counter behind every blinking pixel. Out of each
// 20 ticks the first 4 are off and the remaining 16 are on.
type Blinker struct {
	n int
}

// On reports the phase for the current tick.
func (b *Blinker) On() bool { return b.n >= blinkOffTick }

// Advance moves to the next tick.
func (b *Blinker) Advance() { b.n = (b.n + 1) % blinkPeriod }
