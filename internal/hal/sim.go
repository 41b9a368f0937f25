package hal

import (
	"sync"

	"github.com/robalobadob/ledmind/internal/game"
	"github.com/robalobadob/ledmind/internal/strip"
)

// Control is one player's physical control state.
type Control struct {
	Position int // bucket 0..3
	Color    int // bucket 0..5
	Pressed  bool
}

// Sim is a settable Inputs and recording Display. Each ReadButton call can
// optionally consume a queued button reading so tests can script presses
// and releases across polls.
type Sim struct {
	mu       sync.Mutex
	controls [game.NumPlayers]Control
	buttons  [game.NumPlayers][]bool
	frames   int
	last     []strip.Pixel
}

// Set replaces player p's control state.
func (s *Sim) Set(p int, c Control) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.controls[p] = c
}

// QueueButton schedules button readings for player p; once drained, the
// button falls back to the value from Set.
func (s *Sim) QueueButton(p int, readings ...bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.buttons[p] = append(s.buttons[p], readings...)
}

func (s *Sim) ReadPosition(p int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.controls[p].Position
}

func (s *Sim) ReadColor(p int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.controls[p].Color
}

func (s *Sim) ReadButton(p int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if q := s.buttons[p]; len(q) > 0 {
		s.buttons[p] = q[1:]
		return q[0]
	}
	return s.controls[p].Pressed
}

// Show records the frame.
func (s *Sim) Show(frame []strip.Pixel) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.frames++
	s.last = append(s.last[:0], frame...)
	return nil
}

// Frames reports how many frames were shown and returns a copy of the last.
func (s *Sim) Frames() (int, []strip.Pixel) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.frames, append([]strip.Pixel(nil), s.last...)
}
