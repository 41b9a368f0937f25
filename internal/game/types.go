// internal/game/types.go
//
// Core type definitions for the code-breaking engine.
// Defines:
//   - Color: peg colour, with Black as the "nothing selected" sentinel.
//   - Code: a fixed-length sequence of colours (secret or guess).
//   - Turn / Board: committed rows per player.
//   - Cursor: a player's live selection for the active row.
//   - State: the game-state machine.

package game

import "strings"

const (
	CodeLen    = 4 // symbols per code
	NumColors  = 6 // selectable colours, Black excluded
	NumRows    = 6 // rows per player board
	NumPlayers = 2
)

// Color is a peg colour. Zero is the unset sentinel and never a valid symbol.
type Color uint8

const (
	Black Color = iota
	Red
	Green
	Blue
	Yellow
	Cyan
	Magenta
)

var colorNames = [...]string{"black", "red", "green", "blue", "yellow", "cyan", "magenta"}

func (c Color) String() string {
	if int(c) < len(colorNames) {
		return colorNames[c]
	}
	return "invalid"
}

// Valid reports whether c is a selectable colour (1..6).
func (c Color) Valid() bool { return c >= Red && c <= Magenta }

// Code is a secret or a guess.
type Code [CodeLen]Color

// Valid reports whether every symbol of the code is a selectable colour.
func (c Code) Valid() bool {
	for _, x := range c {
		if !x.Valid() {
			return false
		}
	}
	return true
}

func (c Code) String() string {
	parts := make([]string, len(c))
	for i, x := range c {
		parts[i] = x.String()
	}
	return strings.Join(parts, ",")
}

// Turn holds one committed row for one player.
// Pos and Col are only meaningful once Committed is true.
type Turn struct {
	Guess     Code
	Pos       int // exact matches
	Col       int // colour-only matches
	Committed bool
}

// Board is a player's fixed-capacity row history, indexed by row number.
type Board struct {
	Turns [NumRows]Turn
}

// Cursor is a player's selection state for the active row.
type Cursor struct {
	Slot     int           // 0..CodeLen-1, from the position input
	Live     Color         // 1..NumColors, from the colour input
	Locked   [CodeLen]bool // slots fixed by a button press
	Selected Code          // colour fixed per locked slot, Black while unlocked
}

// Full reports whether every slot of the cursor is locked.
func (c *Cursor) Full() bool {
	for _, l := range c.Locked {
		if !l {
			return false
		}
	}
	return true
}

func (c *Cursor) reset() {
	c.Locked = [CodeLen]bool{}
	c.Selected = Code{}
}

// State is the game-state machine. Every state but Playing is terminal.
type State int

const (
	Playing State = iota
	Player1Won
	Player2Won
	Draw
)

func (s State) String() string {
	switch s {
	case Playing:
		return "playing"
	case Player1Won:
		return "player1_won"
	case Player2Won:
		return "player2_won"
	case Draw:
		return "draw"
	}
	return "unknown"
}

// Terminal reports whether the game is over.
func (s State) Terminal() bool { return s != Playing }

// Input is one player's sample for a tick, already bucketed by the input layer.
type Input struct {
	Slot    int   // 0..CodeLen-1
	Color   Color // 1..NumColors
	Pressed bool
}

// Snapshot is a read-only copy of everything the compositor needs.
type Snapshot struct {
	State       State
	WinningDraw bool
	Row         int
	Boards      [NumPlayers]Board
	Cursors     [NumPlayers]Cursor
}
