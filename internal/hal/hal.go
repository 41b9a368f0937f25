// internal/hal/hal.go
//
// Peripheral boundary between the game core and whatever drives it.
// Defines:
//   - Inputs:  per-player position / colour buckets and button state.
//   - Display: full-frame strip transmission.
//   - Sampler + ADCInputs: raw analog samples bucketed into Inputs.
//
// The core never sees register-level details; hosts (real strip, terminal,
// tests) plug in here.

package hal

import (
	"github.com/robalobadob/ledmind/internal/game"
	"github.com/robalobadob/ledmind/internal/strip"
)

// Inputs reads the player controls. Buckets are always in range:
// ReadPosition in [0, game.CodeLen), ReadColor in [0, game.NumColors).
type Inputs interface {
	ReadPosition(player int) int
	ReadColor(player int) int
	ReadButton(player int) bool
}

// Display transmits a complete frame of strip.Len pixels.
type Display interface {
	Show(frame []strip.Pixel) error
}

// Sample reads both players' controls into engine inputs.
func Sample(in Inputs) [game.NumPlayers]game.Input {
	var out [game.NumPlayers]game.Input
	for p := range out {
		out[p] = game.Input{
			Slot:    in.ReadPosition(p),
			Color:   game.Color(in.ReadColor(p) + 1),
			Pressed: in.ReadButton(p),
		}
	}
	return out
}

// Bucket maps a raw sample of the given bit resolution onto n buckets by
// floor division: floor(v * n / 2^bits). It is monotonic in v and covers
// every bucket 0..n-1. Samples wider than bits are clamped to full scale.
func Bucket(v uint16, bits uint, n int) int {
	full := uint32(1)<<bits - 1
	x := uint32(v)
	if x > full {
		x = full
	}
	return int((x * uint32(n)) >> bits)
}

// Sampler is a raw analog-to-digital converter.
type Sampler interface {
	Sample(channel int) uint16
}

// Button reads a digital input, true while pressed.
type Button interface {
	Pressed(player int) bool
}

// ADC channel assignment per player.
var (
	positionChannel = [game.NumPlayers]int{2, 4}
	colorChannel    = [game.NumPlayers]int{3, 5}
)

// ADCInputs adapts an 8-bit (or wider) converter and a button bank to Inputs.
// It is the seam for a hardware host; the host binaries in this module use
// Keyboard or Idle instead.
type ADCInputs struct {
	ADC     Sampler
	Buttons Button
	Bits    uint // converter resolution, 8 when zero
}

func (a ADCInputs) bits() uint {
	if a.Bits == 0 {
		return 8
	}
	return a.Bits
}

func (a ADCInputs) ReadPosition(player int) int {
	return Bucket(a.ADC.Sample(positionChannel[player]), a.bits(), game.CodeLen)
}

func (a ADCInputs) ReadColor(player int) int {
	return Bucket(a.ADC.Sample(colorChannel[player]), a.bits(), game.NumColors)
}

func (a ADCInputs) ReadButton(player int) bool { return a.Buttons.Pressed(player) }
