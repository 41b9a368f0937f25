package hal

import (
	"os"
	"sync"
	"time"

	"golang.org/x/term"

	"github.com/robalobadob/ledmind/internal/game"
)

// pressHold is how long a key press keeps a simulated button down. It
// outlasts the usual 250-500 ms autorepeat delay, so a held key reads as
// one continuous press and autorepeat keeps extending it.
const pressHold = 600 * time.Millisecond

// keyBinding maps one key to a control change for one player.
type keyBinding struct {
	player int
	dPos   int
	dColor int
	press  bool
}

var keymap = map[byte]keyBinding{
	'a': {player: 0, dPos: -1}, 'd': {player: 0, dPos: +1},
	's': {player: 0, dColor: -1}, 'w': {player: 0, dColor: +1},
	' ': {player: 0, press: true},
	'j': {player: 1, dPos: -1}, 'l': {player: 1, dPos: +1},
	'k': {player: 1, dColor: -1}, 'i': {player: 1, dColor: +1},
	'\r': {player: 1, press: true},
}

// Keyboard simulates both players' knobs and buttons from a raw-mode
// terminal:
//
//	player 1: a/d slot, w/s colour, space lock
//	player 2: j/l slot, i/k colour, enter lock
//	q or ctrl-c quits
//
// The reader goroutine stays blocked in Read after Close and only ends
// with the process, or when Read fails.
type Keyboard struct {
	f     *os.File
	old   *term.State
	quit  func()
	now   func() time.Time
	mu    sync.Mutex
	ctl   [game.NumPlayers]Control
	until [game.NumPlayers]time.Time
}

// NewKeyboard switches f into raw mode and starts reading keys. quit is
// called once when the user asks to leave.
func NewKeyboard(f *os.File, quit func()) (*Keyboard, error) {
	old, err := term.MakeRaw(int(f.Fd()))
	if err != nil {
		return nil, err
	}
	k := &Keyboard{f: f, old: old, quit: quit, now: time.Now}
	go k.loop()
	return k, nil
}

// Close restores the terminal. It does not stop the reader goroutine.
func (k *Keyboard) Close() error {
	return term.Restore(int(k.f.Fd()), k.old)
}

func (k *Keyboard) loop() {
	buf := make([]byte, 16)
	for {
		n, err := k.f.Read(buf)
		if err != nil {
			k.quit()
			return
		}
		for _, b := range buf[:n] {
			if b == 'q' || b == 3 {
				k.quit()
				return
			}
			k.apply(b)
		}
	}
}

func (k *Keyboard) apply(b byte) {
	kb, ok := keymap[b]
	if !ok {
		return
	}
	k.mu.Lock()
	defer k.mu.Unlock()
	c := &k.ctl[kb.player]
	c.Position = wrap(c.Position+kb.dPos, game.CodeLen)
	c.Color = wrap(c.Color+kb.dColor, game.NumColors)
	if kb.press {
		k.until[kb.player] = k.now().Add(pressHold)
	}
}

func wrap(v, n int) int { return ((v % n) + n) % n }

func (k *Keyboard) ReadPosition(p int) int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.ctl[p].Position
}

func (k *Keyboard) ReadColor(p int) int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.ctl[p].Color
}

func (k *Keyboard) ReadButton(p int) bool {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.now().Before(k.until[p])
}

// Idle is an Inputs with nobody at the controls.
type Idle struct{}

func (Idle) ReadPosition(int) int { return 0 }
func (Idle) ReadColor(int) int    { return 0 }
func (Idle) ReadButton(int) bool  { return false }
