package render

import (
	"fmt"
	"image"
	"image/color"
	_ "image/png"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/alien-invasion/alien_invasion/internal/game"
	"github.com/alien-invasion/alien_invasion/internal/world"
)

// Procedural sprite sizes, the same as the classic bitmap art.
const (
	ShipWidth    = 60
	ShipHeight   = 48
	AlienWidth   = 60
	AlienHeight  = 58
	ButtonWidth  = 200
	ButtonHeight = 50
)

// Sprite file names looked up in a sprite directory.
var spriteFiles = map[game.SpriteID]string{
	game.SpriteShip:  "ship.png",
	game.SpriteAlien: "alien.png",
}

// Atlas holds the sprite images. It implements game.Catalog.
type Atlas struct {
	settings *world.Settings
	src      map[game.SpriteID]image.Image
	images   map[game.SpriteID]*ebiten.Image
}

// NewAtlas draws every sprite procedurally.
func NewAtlas(settings *world.Settings) *Atlas {
	return &Atlas{
		settings: settings,
		src: map[game.SpriteID]image.Image{
			game.SpriteShip:   drawShip(),
			game.SpriteAlien:  drawAlien(),
			game.SpriteButton: drawButton(),
		},
		images: make(map[game.SpriteID]*ebiten.Image),
	}
}

// LoadAtlas loads ship and alien art from dir. The button is always drawn
// procedurally. A missing or undecodable file is a *world.StartupError.
func LoadAtlas(dir string, settings *world.Settings) (*Atlas, error) {
	a := NewAtlas(settings)
	for id, name := range spriteFiles {
		path := filepath.Join(dir, name)
		img, src, err := ebitenutil.NewImageFromFile(path)
		if err != nil {
			return nil, &world.StartupError{Resource: path, Err: err}
		}
		a.src[id] = src
		a.images[id] = img
	}
	return a, nil
}

// Size returns the pixel size of a sprite. Bullets are plain rectangles sized
// by the settings.
func (a *Atlas) Size(id game.SpriteID) (int, int, error) {
	if id == game.SpriteBullet {
		return a.settings.BulletWidth, a.settings.BulletHeight, nil
	}
	src, ok := a.src[id]
	if !ok {
		return 0, 0, fmt.Errorf("no image for %s", id)
	}
	b := src.Bounds()
	return b.Dx(), b.Dy(), nil
}

// Image returns the GPU image for a sprite, uploading it on first use. It
// returns nil for bullets.
func (a *Atlas) Image(id game.SpriteID) *ebiten.Image {
	if img, ok := a.images[id]; ok {
		return img
	}
	src, ok := a.src[id]
	if !ok {
		return nil
	}
	img := ebiten.NewImageFromImage(src)
	a.images[id] = img
	return img
}

// drawShip paints a delta-wing fighter with a cockpit, nose up.
func drawShip() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, ShipWidth, ShipHeight))
	hull := Palette[ColorLightGray]
	trim := Palette[ColorDarkGray]
	glass := Palette[ColorLightCyan]
	flame := Palette[ColorYellow]

	cx := ShipWidth / 2
	// Wings widen from the nose down to row 36.
	for y := 4; y < 36; y++ {
		half := 2 + (y-4)*(ShipWidth/2-2)/32
		for x := cx - half; x < cx+half; x++ {
			img.Set(x, y, hull)
		}
		img.Set(cx-half, y, trim)
		img.Set(cx+half-1, y, trim)
	}
	// Fuselage
	for y := 0; y < 42; y++ {
		for x := cx - 5; x < cx+5; x++ {
			img.Set(x, y, hull)
		}
	}
	// Cockpit
	for y := 12; y < 22; y++ {
		for x := cx - 3; x < cx+3; x++ {
			img.Set(x, y, glass)
		}
	}
	// Engines
	for _, ex := range []int{cx - 14, cx + 10} {
		for y := 36; y < ShipHeight; y++ {
			for x := ex; x < ex+4; x++ {
				img.Set(x, y, flame)
			}
		}
	}
	return img
}

// drawAlien paints a round-headed invader with eyes and three legs.
func drawAlien() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, AlienWidth, AlienHeight))
	body := Palette[ColorGreen]
	eye := Palette[ColorWhite]
	pupil := Palette[ColorBlack]

	cx, cy, r := AlienWidth/2, 24, 22
	for y := cy - r; y <= cy+r; y++ {
		for x := cx - r; x <= cx+r; x++ {
			dx, dy := x-cx, y-cy
			if dx*dx+dy*dy <= r*r {
				img.Set(x, y, body)
			}
		}
	}
	for _, ex := range []int{cx - 10, cx + 4} {
		for y := cy - 8; y < cy; y++ {
			for x := ex; x < ex+6; x++ {
				img.Set(x, y, eye)
			}
		}
		img.Set(ex+2, cy-4, pupil)
		img.Set(ex+3, cy-4, pupil)
	}
	for _, lx := range []int{cx - 14, cx - 2, cx + 10} {
		for y := cy + r - 2; y < AlienHeight; y++ {
			for x := lx; x < lx+4; x++ {
				img.Set(x, y, body)
			}
		}
	}
	return img
}

// drawButton paints the Play button face. The caption is drawn as a label.
func drawButton() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, ButtonWidth, ButtonHeight))
	face := color.NRGBA{0, 135, 0, 255}
	edge := color.NRGBA{0, 90, 0, 255}
	for y := 0; y < ButtonHeight; y++ {
		for x := 0; x < ButtonWidth; x++ {
			if x < 2 || y < 2 || x >= ButtonWidth-2 || y >= ButtonHeight-2 {
				img.SetNRGBA(x, y, edge)
			} else {
				img.SetNRGBA(x, y, face)
			}
		}
	}
	return img
}
