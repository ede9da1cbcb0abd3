package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/alien-invasion/alien_invasion/internal/game"
	"github.com/alien-invasion/alien_invasion/internal/world"
)

// TextScale enlarges the 7x13 bitmap font for the HUD.
const TextScale = 2

// Canvas draws a game frame onto an Ebitengine image. It implements
// game.Canvas; call Target with the screen before each frame.
type Canvas struct {
	Atlas  *Atlas
	Bullet color.RGBA

	face text.Face
	dst  *ebiten.Image
}

// NewCanvas creates a canvas that blits sprites from atlas and fills bullets
// with the bullet colour.
func NewCanvas(atlas *Atlas, bullet color.RGBA) *Canvas {
	return &Canvas{
		Atlas:  atlas,
		Bullet: bullet,
		face:   text.NewGoXFace(basicfont.Face7x13),
	}
}

// Target sets the image the next frame is drawn on.
func (c *Canvas) Target(dst *ebiten.Image) {
	c.dst = dst
}

func (c *Canvas) Clear(bg color.RGBA) {
	c.dst.Fill(bg)
}

// Blit draws a sprite stretched to fill r.
func (c *Canvas) Blit(id game.SpriteID, r world.Rect) {
	if id == game.SpriteBullet {
		vector.DrawFilledRect(c.dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), c.Bullet, false)
		return
	}
	img := c.Atlas.Image(id)
	if img == nil {
		return
	}
	b := img.Bounds()
	var op ebiten.DrawImageOptions
	op.GeoM.Scale(r.W/float64(b.Dx()), r.H/float64(b.Dy()))
	op.GeoM.Translate(r.X, r.Y)
	c.dst.DrawImage(img, &op)
}

// Label draws a line of text centred vertically on l.Y.
func (c *Canvas) Label(l game.Label) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(TextScale, TextScale)
	op.GeoM.Translate(l.X, l.Y)
	op.ColorScale.ScaleWithColor(ToneColor(l.Tone))
	op.PrimaryAlign = textAlign(l.Align)
	op.SecondaryAlign = text.AlignCenter
	text.Draw(c.dst, l.Text, c.face, op)
}

// Present is a no-op: Ebitengine shows the screen once Draw returns.
func (c *Canvas) Present() {}

func textAlign(a game.Align) text.Align {
	switch a {
	case game.AlignCenter:
		return text.AlignCenter
	case game.AlignRight:
		return text.AlignEnd
	default:
		return text.AlignStart
	}
}
