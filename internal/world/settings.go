package world

import (
	"encoding/json"
	"fmt"
	"image/color"
	"math"
	"time"
)

// Fleet directions.
const (
	DirLeft  = -1
	DirRight = 1
)

// RGB is a colour stored as a JSON array of three bytes.
type RGB [3]uint8

// RGBA returns the opaque colour.
func (c RGB) RGBA() color.RGBA { return color.RGBA{c[0], c[1], c[2], 255} }

// Settings holds every tunable number of the game. The Base* values come from
// the config file; ShipSpeed, BulletSpeed, AlienSpeed and AlienPoints are the
// live values and change as the player clears fleets.
type Settings struct {
	ScreenWidth  int `json:"screen_width"`
	ScreenHeight int `json:"screen_height"`
	BgColor      RGB `json:"bg_color"`

	ShipLimit     int     `json:"ship_limit"`
	BaseShipSpeed float64 `json:"ship_speed"`

	BaseBulletSpeed float64 `json:"bullet_speed"`
	BulletWidth     int     `json:"bullet_width"`
	BulletHeight    int     `json:"bullet_height"`
	BulletColor     RGB     `json:"bullet_color"`
	BulletsAllowed  int     `json:"bullets_allowed"`

	BaseAlienSpeed  float64 `json:"alien_speed"`
	FleetDropSpeed  float64 `json:"fleet_drop_speed"`
	FleetDirection  int     `json:"fleet_direction"` // starting direction of every new game
	BaseAlienPoints int     `json:"alien_points"`

	SpeedupScale float64 `json:"speedup_scale"`
	ScoreScale   float64 `json:"score_scale"`
	PauseSeconds float64 `json:"pause_seconds"`

	ShipSpeed   float64 `json:"-"`
	BulletSpeed float64 `json:"-"`
	AlienSpeed  float64 `json:"-"`
	AlienPoints int     `json:"-"`
}

// DefaultSettings returns the stock game tuning with live values reset.
func DefaultSettings() *Settings {
	s := &Settings{
		ScreenWidth:  1200,
		ScreenHeight: 800,
		BgColor:      RGB{144, 174, 173},

		ShipLimit:     3,
		BaseShipSpeed: 1.5,

		BaseBulletSpeed: 3.0,
		BulletWidth:     3,
		BulletHeight:    15,
		BulletColor:     RGB{60, 60, 60},
		BulletsAllowed:  3,

		BaseAlienSpeed:  1.0,
		FleetDropSpeed:  10,
		FleetDirection:  DirRight,
		BaseAlienPoints: 50,

		SpeedupScale: 1.1,
		ScoreScale:   1.5,
		PauseSeconds: 0.5,
	}
	s.ResetDynamic()
	return s
}

// LoadSettings parses settings from JSON. Keys missing from data keep their
// default values.
func LoadSettings(data []byte) (*Settings, error) {
	s := DefaultSettings()
	if err := json.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("parse settings: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	s.ResetDynamic()
	return s, nil
}

// Validate checks that every value is usable by the simulation.
func (s *Settings) Validate() error {
	switch {
	case s.ScreenWidth <= 0 || s.ScreenHeight <= 0:
		return fmt.Errorf("%w: screen %dx%d", ErrInvalidSettings, s.ScreenWidth, s.ScreenHeight)
	case s.ShipLimit < 1:
		return fmt.Errorf("%w: ship_limit %d", ErrInvalidSettings, s.ShipLimit)
	case s.BaseShipSpeed <= 0 || s.BaseBulletSpeed <= 0 || s.BaseAlienSpeed <= 0:
		return fmt.Errorf("%w: speeds must be positive", ErrInvalidSettings)
	case s.BulletWidth <= 0 || s.BulletHeight <= 0:
		return fmt.Errorf("%w: bullet %dx%d", ErrInvalidSettings, s.BulletWidth, s.BulletHeight)
	case s.BulletsAllowed < 0:
		return fmt.Errorf("%w: bullets_allowed %d", ErrInvalidSettings, s.BulletsAllowed)
	case s.FleetDropSpeed < 0:
		return fmt.Errorf("%w: fleet_drop_speed %v", ErrInvalidSettings, s.FleetDropSpeed)
	case s.FleetDirection != DirLeft && s.FleetDirection != DirRight:
		return fmt.Errorf("%w: fleet_direction %d (want -1 or 1)", ErrInvalidSettings, s.FleetDirection)
	case s.BaseAlienPoints < 0:
		return fmt.Errorf("%w: alien_points %d", ErrInvalidSettings, s.BaseAlienPoints)
	case s.SpeedupScale < 1 || s.ScoreScale < 1:
		return fmt.Errorf("%w: scales must be >= 1", ErrInvalidSettings)
	case s.PauseSeconds < 0:
		return fmt.Errorf("%w: pause_seconds %v", ErrInvalidSettings, s.PauseSeconds)
	}
	return nil
}

// ResetDynamic restores the live speeds and points to their configured values.
func (s *Settings) ResetDynamic() {
	s.ShipSpeed = s.BaseShipSpeed
	s.BulletSpeed = s.BaseBulletSpeed
	s.AlienSpeed = s.BaseAlienSpeed
	s.AlienPoints = s.BaseAlienPoints
}

// IncreaseSpeed applies one step of progression scaling.
func (s *Settings) IncreaseSpeed() {
	s.ShipSpeed *= s.SpeedupScale
	s.BulletSpeed *= s.SpeedupScale
	s.AlienSpeed *= s.SpeedupScale
	s.AlienPoints = int(math.Floor(float64(s.AlienPoints) * s.ScoreScale))
}

// PauseTime is the freeze after losing a ship.
func (s *Settings) PauseTime() time.Duration {
	return time.Duration(s.PauseSeconds * float64(time.Second))
}

// Screen returns the playfield as a rect at the origin.
func (s *Settings) Screen() Rect {
	return NewRect(0, 0, s.ScreenWidth, s.ScreenHeight)
}
