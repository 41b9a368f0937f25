// internal/strip/strip.go
//
// Physical layout of the 104-pixel LED strip.
// Responsibilities:
//   - Pixel: one RGB triple as sent to the strip (intensities 0..30).
//   - Map: read-only table from (player, row, column) to strip index for
//     guess pegs and evaluation pegs, plus each player's 4-pixel selection
//     display at either end of the strip.
//
// Layout:
//   - Player 1 rows ascend from index 4; row r owns base..base+5 and
//     base+14..base+15 with base = 4 + 16r.
//   - Player 2 rows descend from index 97; row r owns base-7..base with
//     base = 97 - 16r.
//   - Indices 0..3 and 100..103 are the selection displays.
//
// Build is the only place the layout constants appear.

package strip

import "github.com/robalobadob/ledmind/internal/game"

// Len is the number of addressable pixels on the strip.
const Len = 104

// Pixel is one strip pixel.
type Pixel struct {
	R, G, B uint8
}

// Map holds the precomputed physical indices. It is never mutated after Build.
type Map struct {
	guess [game.NumPlayers][game.NumRows][game.CodeLen]int
	eval  [game.NumPlayers][game.NumRows][game.CodeLen]int
	sel   [game.NumPlayers][game.CodeLen]int
}

// Build computes the address table for the standard layout.
func Build() *Map {
	m := &Map{}
	for r := 0; r < game.NumRows; r++ {
		base := 4 + 16*r
		m.guess[0][r] = [game.CodeLen]int{base + 2, base + 3, base + 4, base + 5}
		m.eval[0][r] = [game.CodeLen]int{base + 0, base + 1, base + 14, base + 15}
	}
	for r := 0; r < game.NumRows; r++ {
		base := 97 - 16*r
		m.guess[1][r] = [game.CodeLen]int{base - 4, base - 5, base - 6, base - 7}
		m.eval[1][r] = [game.CodeLen]int{base - 0, base - 1, base - 2, base - 3}
	}
	m.sel[0] = [game.CodeLen]int{0, 1, 2, 3}
	m.sel[1] = [game.CodeLen]int{100, 101, 102, 103}
	return m
}

// Guess returns the strip index of player p's guess peg at (row, col).
func (m *Map) Guess(p, row, col int) int { return m.guess[p][row][col] }

// Eval returns the strip index of player p's evaluation peg at (row, peg).
func (m *Map) Eval(p, row, peg int) int { return m.eval[p][row][peg] }

// Select returns the strip index of player p's selection pixel for slot.
func (m *Map) Select(p, slot int) int { return m.sel[p][slot] }
