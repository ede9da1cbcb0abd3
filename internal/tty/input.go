package tty

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/alien-invasion/alien_invasion/internal/game"
)

// DefaultHoldTimeout is longer than the usual keyboard auto-repeat delay, so a
// held arrow keeps the ship moving until the first repeat arrives.
const DefaultHoldTimeout = 600 * time.Millisecond

// Input translates tcell events into game events. Terminals report no key
// releases, so an arrow counts as held until it stops repeating for
// HoldTimeout or the opposite arrow is pressed.
type Input struct {
	HoldTimeout time.Duration

	screen  *Screen
	held    map[game.Key]time.Time // last press or repeat
	buttons tcell.ButtonMask
}

// NewInput creates a translator. Pointer positions are converted to game
// pixels through screen.
func NewInput(screen *Screen) *Input {
	return &Input{
		HoldTimeout: DefaultHoldTimeout,
		screen:      screen,
		held:        make(map[game.Key]time.Time),
	}
}

// Translate converts one tcell event received at now. Events the game does
// not use produce nothing.
func (in *Input) Translate(ev tcell.Event, now time.Time) []game.Event {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return in.key(ev, now)
	case *tcell.EventMouse:
		pressed := ev.Buttons()&tcell.Button1 != 0 && in.buttons&tcell.Button1 == 0
		in.buttons = ev.Buttons()
		if pressed {
			x, y := in.screen.Pixel(ev.Position())
			return []game.Event{game.PointerDown(x, y)}
		}
	case *tcell.EventResize:
		in.screen.term.Sync()
	}
	return nil
}

func (in *Input) key(ev *tcell.EventKey, now time.Time) []game.Event {
	k := keyFor(ev)
	switch k {
	case game.KeyNone:
		return nil
	case game.KeyLeft, game.KeyRight:
		var out []game.Event
		if other := opposite(k); in.release(other) {
			out = append(out, game.KeyUp(other))
		}
		if _, ok := in.held[k]; !ok {
			out = append(out, game.KeyDown(k))
		}
		in.held[k] = now
		return out
	default:
		return []game.Event{game.KeyDown(k)}
	}
}

// Expire releases held arrows that have not repeated since now-HoldTimeout.
func (in *Input) Expire(now time.Time) []game.Event {
	var out []game.Event
	for _, k := range []game.Key{game.KeyLeft, game.KeyRight} {
		if last, ok := in.held[k]; ok && now.Sub(last) >= in.HoldTimeout {
			in.release(k)
			out = append(out, game.KeyUp(k))
		}
	}
	return out
}

func (in *Input) release(k game.Key) bool {
	if _, ok := in.held[k]; !ok {
		return false
	}
	delete(in.held, k)
	return true
}

func opposite(k game.Key) game.Key {
	if k == game.KeyLeft {
		return game.KeyRight
	}
	return game.KeyLeft
}

func keyFor(ev *tcell.EventKey) game.Key {
	switch ev.Key() {
	case tcell.KeyLeft:
		return game.KeyLeft
	case tcell.KeyRight:
		return game.KeyRight
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return game.KeyQuit
	case tcell.KeyRune:
		switch ev.Rune() {
		case ' ':
			return game.KeyFire
		case 'q', 'Q':
			return game.KeyQuit
		case 'p', 'P':
			return game.KeyStart
		}
	}
	return game.KeyNone
}
