package game

import "testing"

// lockRow drives both players through locking the given codes, one slot per
// press/release pair, and returns whether the row reported complete.
func lockRow(t *testing.T, e *Engine, p1, p2 Code) bool {
	t.Helper()
	var complete bool
	for slot := 0; slot < CodeLen; slot++ {
		press := [NumPlayers]Input{
			{Slot: slot, Color: p1[slot], Pressed: true},
			{Slot: slot, Color: p2[slot], Pressed: true},
		}
		release := press
		release[0].Pressed, release[1].Pressed = false, false
		complete = e.Step(press)
		if slot < CodeLen-1 && complete {
			t.Fatalf("row complete after %d slots", slot+1)
		}
		e.Step(release)
	}
	return complete
}

func TestEngineLockOnRisingEdgeOnly(t *testing.T) {
	e := New(Code{Red, Green, Blue, Yellow})

	e.Step([NumPlayers]Input{{Slot: 0, Color: Blue, Pressed: true}, {Slot: 0, Color: Red}})
	// Holding the button while sweeping to slot 1 must not lock slot 1.
	e.Step([NumPlayers]Input{{Slot: 1, Color: Cyan, Pressed: true}, {Slot: 0, Color: Red}})

	c := e.Cursor(0)
	if !c.Locked[0] || c.Selected[0] != Blue {
		t.Fatalf("slot 0: locked=%v colour=%v, want locked blue", c.Locked[0], c.Selected[0])
	}
	if c.Locked[1] {
		t.Fatal("slot 1 locked by a held button")
	}
	if c.Slot != 1 || c.Live != Cyan {
		t.Fatalf("cursor = slot %d %v, want slot 1 cyan", c.Slot, c.Live)
	}
	if e.Cursor(1).Locked[0] {
		t.Fatal("player 2 locked without pressing")
	}
}

func TestEngineFirstPressAfterCommitLocks(t *testing.T) {
	e := New(Code{Red, Green, Blue, Yellow})
	miss := Code{Magenta, Magenta, Magenta, Magenta}

	// Finish the row with both buttons still reading down on the last step,
	// as they are when the release wait starts.
	for slot := 0; slot < CodeLen; slot++ {
		e.Step([NumPlayers]Input{
			{Slot: slot, Color: Magenta, Pressed: true},
			{Slot: slot, Color: Magenta, Pressed: true},
		})
		if slot < CodeLen-1 {
			e.Step([NumPlayers]Input{{Slot: slot, Color: Magenta}, {Slot: slot, Color: Magenta}})
		}
	}
	if !e.Commit() || e.Row() != 1 {
		t.Fatalf("commit of %v failed, row = %d", miss, e.Row())
	}

	// The very next sample already shows both buttons pressed again.
	e.Step([NumPlayers]Input{
		{Slot: 2, Color: Cyan, Pressed: true},
		{Slot: 2, Color: Blue, Pressed: true},
	})
	for p, want := range []Color{Cyan, Blue} {
		c := e.Cursor(p)
		if !c.Locked[2] || c.Selected[2] != want {
			t.Fatalf("player %d slot 2: locked=%v colour=%v, want locked %v", p+1, c.Locked[2], c.Selected[2], want)
		}
	}
}

func TestEngineRelockOverwritesColour(t *testing.T) {
	e := New(Code{Red, Green, Blue, Yellow})
	e.Step([NumPlayers]Input{{Slot: 2, Color: Red, Pressed: true}, {}})
	e.Step([NumPlayers]Input{{Slot: 2, Color: Red}, {}})
	e.Step([NumPlayers]Input{{Slot: 2, Color: Magenta, Pressed: true}, {}})

	if got := e.Cursor(0).Selected[2]; got != Magenta {
		t.Fatalf("slot 2 colour = %v, want magenta", got)
	}
}

func TestEngineCursorTracksLockedSlot(t *testing.T) {
	e := New(Code{Red, Green, Blue, Yellow})
	e.Step([NumPlayers]Input{{Slot: 3, Color: Green, Pressed: true}, {}})
	e.Step([NumPlayers]Input{{Slot: 3, Color: Yellow}, {}})

	c := e.Cursor(0)
	if c.Live != Yellow || c.Selected[3] != Green {
		t.Fatalf("live=%v selected=%v, want live yellow and selected green", c.Live, c.Selected[3])
	}
}

func TestEngineCommitsOncePerRow(t *testing.T) {
	e := New(Code{Red, Green, Blue, Yellow})
	if !lockRow(t, e, Code{Red, Red, Red, Red}, Code{Blue, Blue, Blue, Blue}) {
		t.Fatal("row not complete after locking every slot")
	}
	if !e.Commit() {
		t.Fatal("first commit rejected")
	}
	for i := 0; i < 5; i++ {
		if e.Commit() {
			t.Fatalf("repeated commit %d accepted", i)
		}
	}
	if e.Row() != 1 {
		t.Fatalf("row = %d, want 1", e.Row())
	}
	b := e.Board(0)
	if !b.Turns[0].Committed || b.Turns[1].Committed {
		t.Fatalf("committed flags = %v/%v, want true/false", b.Turns[0].Committed, b.Turns[1].Committed)
	}
	if b.Turns[0].Pos != 1 || b.Turns[0].Col != 0 {
		t.Fatalf("player 1 row 0 = (%d, %d), want (1, 0)", b.Turns[0].Pos, b.Turns[0].Col)
	}
	c := e.Cursor(0)
	if c.Locked != [CodeLen]bool{} || c.Selected != (Code{}) {
		t.Fatal("cursor not cleared for the new row")
	}
}

func TestEngineCommitRequiresCompleteRow(t *testing.T) {
	e := New(Code{Red, Green, Blue, Yellow})
	e.Step([NumPlayers]Input{{Slot: 0, Color: Red, Pressed: true}, {Slot: 0, Color: Red, Pressed: true}})
	if e.Commit() {
		t.Fatal("commit accepted on a partial row")
	}
	if e.Board(0).Turns[0].Committed {
		t.Fatal("partial row committed")
	}
}

func TestEngineLosingDraw(t *testing.T) {
	e := New(Code{Red, Green, Blue, Yellow})
	miss := Code{Cyan, Cyan, Cyan, Cyan}
	for row := 0; row < NumRows; row++ {
		if e.State() != Playing {
			t.Fatalf("state %v before row %d", e.State(), row)
		}
		if e.Row() != row {
			t.Fatalf("row = %d, want %d", e.Row(), row)
		}
		lockRow(t, e, miss, miss)
		if !e.Commit() {
			t.Fatalf("commit of row %d rejected", row)
		}
	}
	if e.State() != Draw || e.WinningDraw() {
		t.Fatalf("state = %v winning=%v, want losing draw", e.State(), e.WinningDraw())
	}
	if e.Row() != NumRows-1 {
		t.Fatalf("row = %d, want %d", e.Row(), NumRows-1)
	}
}

func TestEngineOutcomes(t *testing.T) {
	secret := Code{Red, Green, Blue, Yellow}
	miss := Code{Cyan, Cyan, Cyan, Cyan}
	cases := []struct {
		name    string
		p1, p2  Code
		state   State
		winning bool
	}{
		{"player 1", secret, miss, Player1Won, false},
		{"player 2", miss, secret, Player2Won, false},
		{"both", secret, secret, Draw, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := New(secret)
			lockRow(t, e, miss, miss)
			e.Commit()
			lockRow(t, e, tc.p1, tc.p2)
			e.Commit()
			if e.State() != tc.state || e.WinningDraw() != tc.winning {
				t.Fatalf("state = %v winning=%v, want %v winning=%v", e.State(), e.WinningDraw(), tc.state, tc.winning)
			}
			if e.Row() != 1 {
				t.Fatalf("row advanced to %d after terminal commit", e.Row())
			}
		})
	}
}

func TestEngineTerminalIsAbsorbing(t *testing.T) {
	secret := Code{Red, Green, Blue, Yellow}
	e := New(secret)
	lockRow(t, e, secret, Code{Cyan, Cyan, Cyan, Cyan})
	e.Commit()
	before := e.Snapshot()

	if e.Step([NumPlayers]Input{{Slot: 2, Color: Magenta, Pressed: true}, {Slot: 1, Color: Blue, Pressed: true}}) {
		t.Fatal("step reported a complete row after the game ended")
	}
	if e.Commit() {
		t.Fatal("commit accepted after the game ended")
	}
	if e.Snapshot() != before {
		t.Fatal("terminal state changed")
	}
}
