package render

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/alien-invasion/alien_invasion/internal/game"
)

// Input turns Ebitengine's per-tick input state into game events.
type Input struct {
	keys []ebiten.Key
}

// Poll returns the events since the previous tick. It must be called from
// Update.
func (in *Input) Poll() []game.Event {
	var events []game.Event
	if ebiten.IsWindowBeingClosed() {
		events = append(events, game.QuitEvent())
	}

	in.keys = inpututil.AppendJustPressedKeys(in.keys[:0])
	for _, k := range in.keys {
		if gk := keyFor(k); gk != game.KeyNone {
			events = append(events, game.KeyDown(gk))
		}
	}
	in.keys = inpututil.AppendJustReleasedKeys(in.keys[:0])
	for _, k := range in.keys {
		if gk := keyFor(k); gk != game.KeyNone {
			events = append(events, game.KeyUp(gk))
		}
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		events = append(events, game.PointerDown(float64(x), float64(y)))
	}
	return events
}

// keyFor maps a physical key onto a game key. Keys the game does not use map
// to game.KeyNone.
func keyFor(k ebiten.Key) game.Key {
	switch k {
	case ebiten.KeyArrowLeft:
		return game.KeyLeft
	case ebiten.KeyArrowRight:
		return game.KeyRight
	case ebiten.KeySpace:
		return game.KeyFire
	case ebiten.KeyQ, ebiten.KeyEscape:
		return game.KeyQuit
	case ebiten.KeyP:
		return game.KeyStart
	default:
		return game.KeyNone
	}
}
