package game

import (
	"errors"
	"image/color"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/alien-invasion/alien_invasion/internal/world"
)

type size struct{ w, h int }

type fakeCatalog map[SpriteID]size

func (c fakeCatalog) Size(id SpriteID) (int, int, error) {
	sz, ok := c[id]
	if !ok {
		return 0, 0, errors.New("no such sprite")
	}
	return sz.w, sz.h, nil
}

// bookCatalog has the sprite sizes of the classic art: 9x3 aliens on the
// default screen.
var bookCatalog = fakeCatalog{
	SpriteShip:  {60, 48},
	SpriteAlien: {60, 58},
}

// tinyCatalog gives a 2x2 fleet on tinySettings.
var tinyCatalog = fakeCatalog{
	SpriteShip:  {20, 20},
	SpriteAlien: {20, 20},
}

// tinySettings is a 100x200 screen. Aliens sit at x 20 and 60, y 40 and 80;
// the ship sits at (40, 180).
func tinySettings() *world.Settings {
	s := world.DefaultSettings()
	s.ScreenWidth = 100
	s.ScreenHeight = 200
	s.BulletsAllowed = 4
	return s
}

type fakeClock struct{ now time.Time }

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time          { return c.now }
func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func newTestSim(t *testing.T, settings *world.Settings, catalog Catalog, highScore int) (*Sim, *fakeClock) {
	t.Helper()
	clock := newFakeClock()
	s, err := NewSim(settings, catalog, highScore, clock)
	require.NoError(t, err)
	return s, clock
}

// startedSim returns a tiny sim in the active state.
func startedSim(t *testing.T) (*Sim, *fakeClock) {
	t.Helper()
	s, clock := newTestSim(t, tinySettings(), tinyCatalog, 0)
	s.Start()
	require.True(t, s.Stats.GameActive)
	return s, clock
}

func moveAlien(f *Fleet, i int, x, y float64) {
	a := f.store.Get(f.entities[i])
	a.X, a.Y = x, y
}

type drawCall struct {
	op     string
	sprite SpriteID
	rect   world.Rect
	label  Label
	bg     color.RGBA
}

type recordCanvas struct {
	calls []drawCall
}

func (c *recordCanvas) Clear(bg color.RGBA) { c.calls = append(c.calls, drawCall{op: "clear", bg: bg}) }
func (c *recordCanvas) Blit(id SpriteID, r world.Rect) {
	c.calls = append(c.calls, drawCall{op: "blit", sprite: id, rect: r})
}
func (c *recordCanvas) Label(l Label) { c.calls = append(c.calls, drawCall{op: "label", label: l}) }
func (c *recordCanvas) Present()      { c.calls = append(c.calls, drawCall{op: "present"}) }

func (c *recordCanvas) blits(id SpriteID) []world.Rect {
	var out []world.Rect
	for _, call := range c.calls {
		if call.op == "blit" && call.sprite == id {
			out = append(out, call.rect)
		}
	}
	return out
}

func (c *recordCanvas) labels() []string {
	var out []string
	for _, call := range c.calls {
		if call.op == "label" {
			out = append(out, call.label.Text)
		}
	}
	return out
}
