package hal

import (
	"bufio"
	"fmt"
	"io"

	"github.com/robalobadob/ledmind/internal/game"
	"github.com/robalobadob/ledmind/internal/strip"
)

// Terminal draws the strip on an ANSI truecolor terminal, laid out as the
// physical board: one line per row with player 1 on the left and player 2
// on the right, selection displays on the first line.
type Terminal struct {
	w       io.Writer
	m       *strip.Map
	cleared bool
}

// NewTerminal constructs a Terminal writing to w.
func NewTerminal(w io.Writer, m *strip.Map) *Terminal {
	return &Terminal{w: w, m: m}
}

func (t *Terminal) Show(frame []strip.Pixel) error {
	if len(frame) != strip.Len {
		return fmt.Errorf("terminal: frame has %d pixels, want %d", len(frame), strip.Len)
	}
	bw := bufio.NewWriter(t.w)
	if !t.cleared {
		bw.WriteString("\x1b[2J")
		t.cleared = true
	}
	bw.WriteString("\x1b[H")

	for p := 0; p < game.NumPlayers; p++ {
		bw.WriteString("   ")
		for s := 0; s < game.CodeLen; s++ {
			cell(bw, frame[t.m.Select(p, s)])
		}
		bw.WriteString("        ")
	}
	bw.WriteString("\r\n\r\n")

	for r := game.NumRows - 1; r >= 0; r-- {
		for p := 0; p < game.NumPlayers; p++ {
			fmt.Fprintf(bw, "%d  ", r+1)
			for i := 0; i < game.CodeLen; i++ {
				cell(bw, frame[t.m.Guess(p, r, i)])
			}
			bw.WriteString(" ")
			for i := 0; i < game.CodeLen; i++ {
				cell(bw, frame[t.m.Eval(p, r, i)])
			}
			bw.WriteString("    ")
		}
		bw.WriteString("\r\n")
	}
	return bw.Flush()
}

// cell writes one pixel as a two-column block, scaling 0..30 to 0..255.
func cell(w *bufio.Writer, px strip.Pixel) {
	fmt.Fprintf(w, "\x1b[48;2;%d;%d;%dm  \x1b[0m", scale(px.R), scale(px.G), scale(px.B))
}

func scale(v uint8) int {
	x := int(v) * 255 / 30
	if x > 255 {
		return 255
	}
	return x
}
