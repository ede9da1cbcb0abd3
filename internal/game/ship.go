package game

import "github.com/alien-invasion/alien_invasion/internal/world"

// Ship is the player's ship. It rides along the bottom edge of the screen.
type Ship struct {
	X, Y float64
	W, H int

	MovingLeft  bool
	MovingRight bool

	settings *world.Settings
}

// NewShip creates a ship of the given sprite size, centered at the bottom.
func NewShip(settings *world.Settings, w, h int) *Ship {
	s := &Ship{W: w, H: h, settings: settings}
	s.Center()
	return s
}

// Update moves the ship by one step for each held direction. The guards stop
// movement once an edge is reached; the step that reaches it is not clipped.
func (s *Ship) Update() {
	b := s.Bounds()
	if s.MovingRight && b.Right() < float64(s.settings.ScreenWidth) {
		s.X += s.settings.ShipSpeed
	}
	if s.MovingLeft && b.Left() > 0 {
		s.X -= s.settings.ShipSpeed
	}
}

// Center puts the ship at the middle of the bottom edge.
func (s *Ship) Center() {
	s.X = float64(s.settings.ScreenWidth-s.W) / 2
	s.Y = float64(s.settings.ScreenHeight - s.H)
}

func (s *Ship) Bounds() world.Rect { return world.NewRect(s.X, s.Y, s.W, s.H) }
