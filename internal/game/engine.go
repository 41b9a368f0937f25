// internal/game/engine.go
//
// Turn engine for a two-player, simultaneous-turn session.
// Responsibilities:
//   - Track each player's cursor (slot + live colour) from per-tick inputs.
//   - Lock slots on a rising button edge.
//   - Detect row completion and commit both rows at once, scoring each guess.
//   - Drive state transitions: playing → player1_won / player2_won / draw.
//
// Notes:
//   - The engine never blocks. Waiting for both buttons to be released
//     between RowComplete and Commit is the caller's job (see hal.Poller).
//   - Terminal states are absorbing: Step and Commit do nothing once the
//     game has ended.
package game

// Engine owns the per-session game state. The zero value is not usable;
// construct with New.
type Engine struct {
	secret      Code
	boards      [NumPlayers]Board
	cursors     [NumPlayers]Cursor
	row         int
	state       State
	winningDraw bool
	wasPressed  [NumPlayers]bool
}

// New constructs an engine for the given secret with cursors parked on
// slot 0 and the first selectable colour.
func New(secret Code) *Engine {
	e := &Engine{secret: secret}
	for p := range e.cursors {
		e.cursors[p].Live = Red
	}
	return e
}

// Step applies one tick of inputs and reports whether the active row is
// now complete (every slot of both players locked).
//
// While playing, each cursor follows its inputs unconditionally. A slot is
// locked with the live colour only on a press that was not already held on
// the previous tick, so a held button locks exactly once.
func (e *Engine) Step(in [NumPlayers]Input) bool {
	if e.state.Terminal() {
		return false
	}
	for p := range in {
		c := &e.cursors[p]
		c.Slot = clampSlot(in[p].Slot)
		c.Live = clampColor(in[p].Color)

		if in[p].Pressed && !e.wasPressed[p] {
			c.Locked[c.Slot] = true
			c.Selected[c.Slot] = c.Live
		}
		e.wasPressed[p] = in[p].Pressed
	}
	return e.RowComplete()
}

// RowComplete reports whether both players have locked all slots of the
// active row and the game is still in progress.
func (e *Engine) RowComplete() bool {
	if e.state.Terminal() {
		return false
	}
	for p := range e.cursors {
		if !e.cursors[p].Full() {
			return false
		}
	}
	return true
}

// Commit copies both players' selections into the active row, scores them,
// and evaluates the outcome. Call it only once both buttons are up. It
// returns false, leaving the engine untouched, unless RowComplete holds;
// calling it again after a non-terminal commit is therefore harmless
// because the new row starts with no locks.
//
// State transitions:
//   - Both guesses exact → Draw with WinningDraw set.
//   - Exactly one exact → that player wins.
//   - Last row used up → Draw (losing).
//   - Otherwise the row advances and both cursors are cleared.
func (e *Engine) Commit() bool {
	if !e.RowComplete() {
		return false
	}

	var solved [NumPlayers]bool
	for p := range e.boards {
		t := &e.boards[p].Turns[e.row]
		t.Guess = e.cursors[p].Selected
		t.Pos, t.Col = Score(e.secret, t.Guess)
		t.Committed = true
		solved[p] = t.Pos == CodeLen
	}

	switch {
	case solved[0] && solved[1]:
		e.state, e.winningDraw = Draw, true
	case solved[0]:
		e.state = Player1Won
	case solved[1]:
		e.state = Player2Won
	case e.row == NumRows-1:
		e.state = Draw
	default:
		e.row++
		for p := range e.cursors {
			e.cursors[p].reset()
		}
	}

	// Callers commit only after both buttons were seen released, so the
	// next press on either side is a fresh edge.
	e.wasPressed = [NumPlayers]bool{}
	return true
}

// State reports the current game state.
func (e *Engine) State() State { return e.state }

// WinningDraw reports whether a Draw was reached by both players solving
// the same row (as opposed to running out of rows).
func (e *Engine) WinningDraw() bool { return e.winningDraw }

// Row returns the 0-based active row (the final row once terminal).
func (e *Engine) Row() int { return e.row }

// Board returns a copy of player p's board.
func (e *Engine) Board(p int) Board { return e.boards[p] }

// Cursor returns a copy of player p's cursor.
func (e *Engine) Cursor(p int) Cursor { return e.cursors[p] }

// Snapshot returns a value copy of the state the compositor draws from.
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		State:       e.state,
		WinningDraw: e.winningDraw,
		Row:         e.row,
		Boards:      e.boards,
		Cursors:     e.cursors,
	}
}

func clampSlot(s int) int {
	if s < 0 {
		return 0
	}
	if s >= CodeLen {
		return CodeLen - 1
	}
	return s
}

func clampColor(c Color) Color {
	if c < Red {
		return Red
	}
	if c > Magenta {
		return Magenta
	}
	return c
}
