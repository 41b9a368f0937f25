package render

import (
	"github.com/robalobadob/ledmind/internal/game"
	"github.com/robalobadob/ledmind/internal/strip"
)

// dim is used for placed pegs, bright for anything that needs attention.
var (
	dim = [...]strip.Pixel{
		game.Black:   {R: 0, G: 0, B: 0},
		game.Red:     {R: 15, G: 0, B: 0},
		game.Green:   {R: 0, G: 15, B: 0},
		game.Blue:    {R: 0, G: 0, B: 15},
		game.Yellow:  {R: 7, G: 7, B: 0},
		game.Cyan:    {R: 0, G: 7, B: 7},
		game.Magenta: {R: 7, G: 0, B: 7},
	}
	bright = [...]strip.Pixel{
		game.Black:   {R: 0, G: 0, B: 0},
		game.Red:     {R: 30, G: 0, B: 0},
		game.Green:   {R: 0, G: 30, B: 0},
		game.Blue:    {R: 0, G: 0, B: 30},
		game.Yellow:  {R: 30, G: 30, B: 0},
		game.Cyan:    {R: 0, G: 30, B: 30},
		game.Magenta: {R: 30, G: 0, B: 30},
	}
)

const (
	exactPeg     = game.Red    // right colour, right slot
	colorOnlyPeg = game.Yellow // right colour, wrong slot
)

// Dim returns the low-intensity pixel for c; out-of-range colours are black.
func Dim(c game.Color) strip.Pixel {
	if int(c) >= len(dim) {
		return strip.Pixel{}
	}
	return dim[c]
}

// Bright returns the high-intensity pixel for c; out-of-range colours are black.
func Bright(c game.Color) strip.Pixel {
	if int(c) >= len(bright) {
		return strip.Pixel{}
	}
	return bright[c]
}
