package game

import (
	"fmt"
	"image/color"

	"github.com/alien-invasion/alien_invasion/internal/world"
)

// SpriteID names a drawable the asset collaborator resolves to an image.
type SpriteID uint8

const (
	SpriteShip SpriteID = iota
	SpriteAlien
	SpriteBullet
	SpriteButton
)

func (id SpriteID) String() string {
	switch id {
	case SpriteShip:
		return "ship"
	case SpriteAlien:
		return "alien"
	case SpriteBullet:
		return "bullet"
	case SpriteButton:
		return "button"
	default:
		return fmt.Sprintf("sprite(%d)", uint8(id))
	}
}

// Sprite is the draw-handle component carried by every alien and bullet entity.
type Sprite struct {
	ID SpriteID
}

// Body is the capability shared by ship, bullets and aliens.
type Body interface {
	Update()
	Bounds() world.Rect
}

var (
	_ Body = (*Ship)(nil)
	_ Body = (*Bullet)(nil)
	_ Body = (*Alien)(nil)
)

// Catalog resolves sprites to their pixel dimensions. Layout math only ever
// depends on these sizes.
type Catalog interface {
	Size(id SpriteID) (w, h int, err error)
}

// Align is the horizontal anchor of a label.
type Align uint8

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Tone selects the colour a renderer uses for a label.
type Tone uint8

const (
	ToneText Tone = iota
	ToneInfo
	ToneWarning
	ToneCritical
	ToneRecord
	ToneButton
)

// Label is a line of HUD text. X is the anchor picked by Align and Y is the
// vertical middle of the line.
type Label struct {
	Text  string
	X, Y  float64
	Align Align
	Tone  Tone
}

// Canvas is the render collaborator. A frame is Clear, any number of Blit and
// Label calls in painter's order, then Present.
type Canvas interface {
	Clear(bg color.RGBA)
	Blit(id SpriteID, r world.Rect)
	Label(l Label)
	Present()
}
