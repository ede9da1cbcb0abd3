// Package tty runs the game in a terminal. The game keeps its pixel
// coordinates; the screen scales them onto the character grid.
package tty

import (
	"fmt"
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/alien-invasion/alien_invasion/internal/game"
	"github.com/alien-invasion/alien_invasion/internal/world"
)

// Virtual sprite sizes in game pixels, matching the window frontend.
var spriteSizes = map[game.SpriteID][2]int{
	game.SpriteShip:   {60, 48},
	game.SpriteAlien:  {60, 58},
	game.SpriteButton: {200, 50},
}

// cellLook is how a sprite is drawn on the grid.
type cellLook struct {
	glyph rune
	fg    tcell.Color
	bg    tcell.Color // tcell.ColorDefault keeps the background
}

var looks = map[game.SpriteID]cellLook{
	game.SpriteShip:   {'▲', tcell.NewRGBColor(85, 85, 85), tcell.ColorDefault},
	game.SpriteAlien:  {'Ж', tcell.NewRGBColor(0, 120, 0), tcell.ColorDefault},
	game.SpriteButton: {' ', tcell.ColorWhite, tcell.NewRGBColor(0, 135, 0)},
}

// Screen draws game frames on a tcell screen. It implements game.Canvas and
// game.Catalog.
type Screen struct {
	term     tcell.Screen
	settings *world.Settings
	bg       tcell.Color
}

// NewScreen wraps an initialised tcell screen.
func NewScreen(term tcell.Screen, settings *world.Settings) *Screen {
	return &Screen{term: term, settings: settings, bg: rgb(settings.BgColor.RGBA())}
}

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// Size reports the virtual pixel size of a sprite.
func (s *Screen) Size(id game.SpriteID) (int, int, error) {
	if id == game.SpriteBullet {
		return s.settings.BulletWidth, s.settings.BulletHeight, nil
	}
	sz, ok := spriteSizes[id]
	if !ok {
		return 0, 0, fmt.Errorf("no terminal sprite for %s", id)
	}
	return sz[0], sz[1], nil
}

// toCells converts a game position to fractional cell coordinates.
func (s *Screen) toCells(x, y float64) (float64, float64) {
	cols, rows := s.term.Size()
	return x * float64(cols) / float64(s.settings.ScreenWidth),
		y * float64(rows) / float64(s.settings.ScreenHeight)
}

// Cell converts a game position to a cell.
func (s *Screen) Cell(x, y float64) (int, int) {
	fx, fy := s.toCells(x, y)
	return int(math.Floor(fx)), int(math.Floor(fy))
}

// Pixel converts a cell to the game position of its centre.
func (s *Screen) Pixel(cx, cy int) (float64, float64) {
	cols, rows := s.term.Size()
	x := (float64(cx) + 0.5) * float64(s.settings.ScreenWidth) / float64(cols)
	y := (float64(cy) + 0.5) * float64(s.settings.ScreenHeight) / float64(rows)
	return x, y
}

// Clear fills the grid with the background colour.
func (s *Screen) Clear(bg color.RGBA) {
	s.bg = rgb(bg)
	s.term.Fill(' ', tcell.StyleDefault.Background(s.bg))
}

// Blit fills every cell r touches. Any sprite gets at least one cell.
func (s *Screen) Blit(id game.SpriteID, r world.Rect) {
	look, ok := looks[id]
	if id == game.SpriteBullet {
		look, ok = cellLook{'|', rgb(s.settings.BulletColor.RGBA()), tcell.ColorDefault}, true
	}
	if !ok {
		return
	}
	bg := look.bg
	if bg == tcell.ColorDefault {
		bg = s.bg
	}
	style := tcell.StyleDefault.Foreground(look.fg).Background(bg)

	left, top := s.toCells(r.Left(), r.Top())
	right, bottom := s.toCells(r.Right(), r.Bottom())
	c0, c1 := span(left, right)
	r0, r1 := span(top, bottom)
	for y := r0; y <= r1; y++ {
		for x := c0; x <= c1; x++ {
			s.term.SetContent(x, y, look.glyph, nil, style)
		}
	}
}

// span returns the first and last cell covered by [lo, hi) in cell units.
func span(lo, hi float64) (int, int) {
	first := int(math.Floor(lo))
	last := int(math.Ceil(hi)) - 1
	return first, max(first, last)
}

// Label writes text on the row holding l.Y.
func (s *Screen) Label(l game.Label) {
	cx, cy := s.Cell(l.X, l.Y)
	runes := []rune(l.Text)
	switch l.Align {
	case game.AlignCenter:
		cx -= len(runes) / 2
	case game.AlignRight:
		cx -= len(runes)
	}
	for i, r := range runes {
		x := cx + i
		_, _, st, _ := s.term.GetContent(x, cy)
		_, bg, _ := st.Decompose()
		if bg == tcell.ColorDefault {
			bg = s.bg
		}
		s.term.SetContent(x, cy, r, nil, tcell.StyleDefault.Foreground(toneColor(l.Tone)).Background(bg))
	}
}

// Present flushes the frame to the terminal.
func (s *Screen) Present() {
	s.term.Show()
}

func toneColor(t game.Tone) tcell.Color {
	switch t {
	case game.ToneInfo:
		return tcell.NewRGBColor(0, 0, 170)
	case game.ToneWarning:
		return tcell.NewRGBColor(170, 85, 0)
	case game.ToneCritical:
		return tcell.NewRGBColor(170, 0, 0)
	case game.ToneRecord:
		return tcell.NewRGBColor(170, 0, 170)
	case game.ToneButton:
		return tcell.ColorWhite
	default:
		return tcell.NewRGBColor(30, 30, 30)
	}
}
