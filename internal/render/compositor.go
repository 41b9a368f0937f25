// internal/render/compositor.go
//
// Compositor turns an engine snapshot into a full strip frame.
// Layers, in order, each overwriting the pixels it touches:
//   1. Base fill:   dim colour of every placed peg, black elsewhere.
//   2. Evaluation:  per committed row, exact pegs then colour-only pegs.
//   3. Cursor:      selection displays, only while playing.
//   4. End game:    winners' final row blinks, only once terminal.

package render

import (
	"github.com/robalobadob/ledmind/internal/game"
	"github.com/robalobadob/ledmind/internal/strip"
)

// Compositor owns the frame buffer. Render reuses it, so callers must not
// hold on to a returned frame across calls.
type Compositor struct {
	m   *strip.Map
	buf [strip.Len]strip.Pixel
}

// New constructs a compositor for the given address map.
func New(m *strip.Map) *Compositor {
	return &Compositor{m: m}
}

// Render draws s into the frame buffer and returns it. blinkOn is the
// current phase of the caller's Blinker.
func (c *Compositor) Render(s game.Snapshot, blinkOn bool) []strip.Pixel {
	c.base(s)
	c.evaluations(s)
	if s.State == game.Playing {
		c.cursors(s, blinkOn)
	} else {
		c.endGame(s, blinkOn)
	}
	return c.buf[:]
}

func (c *Compositor) base(s game.Snapshot) {
	c.buf = [strip.Len]strip.Pixel{}
	for p := range s.Boards {
		for r, t := range s.Boards[p].Turns {
			if !t.Committed {
				continue
			}
			for col, colour := range t.Guess {
				c.buf[c.m.Guess(p, r, col)] = Dim(colour)
			}
		}
		if s.State != game.Playing {
			continue
		}
		// Locked but uncommitted pegs of the active row.
		cur := s.Cursors[p]
		for col, locked := range cur.Locked {
			if locked {
				c.buf[c.m.Guess(p, s.Row, col)] = Dim(cur.Selected[col])
			}
		}
	}
}

func (c *Compositor) evaluations(s game.Snapshot) {
	for p := range s.Boards {
		for r, t := range s.Boards[p].Turns {
			if !t.Committed {
				continue
			}
			peg := 0
			for ; peg < t.Pos && peg < game.CodeLen; peg++ {
				c.buf[c.m.Eval(p, r, peg)] = Bright(exactPeg)
			}
			for ; peg < t.Pos+t.Col && peg < game.CodeLen; peg++ {
				c.buf[c.m.Eval(p, r, peg)] = Bright(colorOnlyPeg)
			}
			for ; peg < game.CodeLen; peg++ {
				c.buf[c.m.Eval(p, r, peg)] = strip.Pixel{}
			}
		}
	}
}

// cursors renders both selection displays the same way: locked slots show
// their chosen colour, the active unlocked slot blinks the live colour.
func (c *Compositor) cursors(s game.Snapshot, blinkOn bool) {
	for p, cur := range s.Cursors {
		for slot := 0; slot < game.CodeLen; slot++ {
			px := strip.Pixel{}
			switch {
			case cur.Locked[slot]:
				px = Bright(cur.Selected[slot])
			case slot == cur.Slot && blinkOn:
				px = Bright(cur.Live)
			}
			c.buf[c.m.Select(p, slot)] = px
		}
	}
}

// endGame blinks the final row and selection display of each winner.
// A losing draw has no winner and the frame stays as drawn.
func (c *Compositor) endGame(s game.Snapshot, blinkOn bool) {
	for p := range s.Boards {
		if !winner(s, p) {
			continue
		}
		final := s.Boards[p].Turns[s.Row].Guess
		for col, colour := range final {
			px := strip.Pixel{}
			if blinkOn {
				px = Bright(colour)
			}
			c.buf[c.m.Guess(p, s.Row, col)] = px
			c.buf[c.m.Select(p, col)] = px
		}
	}
}

func winner(s game.Snapshot, p int) bool {
	switch s.State {
	case game.Player1Won:
		return p == 0
	case game.Player2Won:
		return p == 1
	case game.Draw:
		return s.WinningDraw
	}
	return false
}
