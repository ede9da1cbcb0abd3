package game

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/mlange-42/ark/ecs"

	"github.com/alien-invasion/alien_invasion/internal/world"
)

// Play button size in screen pixels.
const (
	buttonWidth  = 200
	buttonHeight = 50
)

// Message feed display (at 60 TPS).
const (
	messageLines    = 3
	messageLifetime = 180 // a line stays on screen for 3 sec
	messageLogSize  = 32
)

// Sim is the game simulation. It owns all gameplay state.
type Sim struct {
	ECS      *ecs.World
	Settings *world.Settings
	Stats    Stats
	Ship     *Ship
	Fleet    *Fleet
	Bullets  *Bullets
	Board    Scoreboard
	Log      *MessageLog
	Ticks    uint64 // simulated ticks
	Frames   uint64 // calls to Step, simulated or not

	PlayButton world.Rect

	intent     Intent
	clock      Clock
	pauseUntil time.Time
	newRecord  bool // high score beaten during the current game
}

// NewSim creates a simulation in the inactive state with a fleet already on
// screen. Sprite sizes come from catalog; highScore is the stored record.
func NewSim(settings *world.Settings, catalog Catalog, highScore int, clock Clock) (*Sim, error) {
	shipW, shipH, err := spriteSize(catalog, SpriteShip)
	if err != nil {
		return nil, err
	}
	alienW, alienH, err := spriteSize(catalog, SpriteAlien)
	if err != nil {
		return nil, err
	}
	if clock == nil {
		clock = SystemClock{}
	}

	w := ecs.NewWorld(256)
	s := &Sim{
		ECS:      w,
		Settings: settings,
		Stats:    Stats{HighScore: highScore},
		Ship:     NewShip(settings, shipW, shipH),
		Fleet:    NewFleet(w, settings, alienW, alienH, shipH),
		Bullets:  NewBullets(w, settings),
		Board:    Scoreboard{ScreenWidth: settings.ScreenWidth},
		Log:      NewMessageLog(messageLogSize),
		PlayButton: world.Centered(
			float64(settings.ScreenWidth)/2, float64(settings.ScreenHeight)/2,
			buttonWidth, buttonHeight,
		),
		clock: clock,
	}
	s.Stats.Reset(settings.ShipLimit)

	if cols, rows := s.Fleet.Layout(); cols == 0 || rows == 0 {
		return nil, &world.StartupError{
			Resource: "fleet layout",
			Err: fmt.Errorf("%dx%d alien does not fit a %dx%d screen",
				alienW, alienH, settings.ScreenWidth, settings.ScreenHeight),
		}
	}
	s.Fleet.Create()
	return s, nil
}

func spriteSize(catalog Catalog, id SpriteID) (int, int, error) {
	w, h, err := catalog.Size(id)
	if err != nil {
		return 0, 0, &world.StartupError{Resource: id.String() + " sprite", Err: err}
	}
	if w <= 0 || h <= 0 {
		return 0, 0, &world.StartupError{
			Resource: id.String() + " sprite",
			Err:      fmt.Errorf("empty size %dx%d", w, h),
		}
	}
	return w, h, nil
}

// Paused reports whether the post-hit freeze is running.
func (s *Sim) Paused() bool {
	return s.clock.Now().Before(s.pauseUntil)
}

// Step runs one tick: fold the events into the intent, apply it, and advance
// the simulation if the game is active and not frozen. It returns ErrQuit
// when the player asked to leave.
func (s *Sim) Step(events []Event) error {
	s.Frames++
	for _, ev := range events {
		if err := s.intent.Apply(ev); err != nil && !errors.Is(err, ErrUnrecognizedEvent) {
			return err
		}
	}
	in := s.intent.take()
	if in.Quit {
		return ErrQuit
	}

	s.Ship.MovingLeft = in.Left
	s.Ship.MovingRight = in.Right

	if s.Paused() {
		return nil
	}
	if !s.Stats.GameActive && (in.Start || s.clickedPlay(in.Clicks)) {
		s.Start()
	}
	if !s.Stats.GameActive {
		return nil
	}

	for range in.Fire {
		s.Bullets.Fire(s.Ship.Bounds())
	}

	s.Ticks++
	s.Ship.Update()
	s.updateBullets()
	s.updateAliens()
	return nil
}

func (s *Sim) clickedPlay(clicks []Point) bool {
	for _, p := range clicks {
		if s.PlayButton.Contains(p.X, p.Y) {
			return true
		}
	}
	return false
}

// Start begins a new game from the inactive state.
func (s *Sim) Start() {
	s.Settings.ResetDynamic()
	s.Stats.Reset(s.Settings.ShipLimit)
	s.Stats.GameActive = true
	s.newRecord = false

	s.Fleet.Clear()
	s.Bullets.Clear()
	s.Fleet.Direction = s.Settings.FleetDirection
	s.Fleet.Create()
	s.Ship.Center()
	s.Ship.MovingLeft = false
	s.Ship.MovingRight = false
	s.pauseUntil = time.Time{}

	s.Log.Add("Here they come!", MsgInfo, s.Frames)
	log.Printf("game started: %d ships, high score %d", s.Stats.ShipsLeft, s.Stats.HighScore)
}

// updateBullets moves the bullets, drops the ones that left the screen and
// resolves hits on the fleet.
func (s *Sim) updateBullets() {
	s.Bullets.Update()
	s.Bullets.Cull()
	s.checkBulletAlienCollisions()
}

func (s *Sim) checkBulletAlienCollisions() {
	spent, killed := matchHits(s.Bullets.hitboxes(), s.Fleet.hitboxes())
	if len(killed) > 0 {
		s.Bullets.Remove(spent)
		s.Fleet.Remove(killed)
		s.Stats.Score += s.Settings.AlienPoints * len(killed)
		s.checkHighScore()
	}

	if s.Fleet.Empty() {
		s.Bullets.Clear()
		s.Fleet.Create()
		s.Settings.IncreaseSpeed()
		s.Stats.Level++
		s.Log.Add(fmt.Sprintf("Fleet destroyed. Level %d", s.Stats.Level), MsgInfo, s.Frames)
		log.Printf("level %d: alien speed %.2f, %d points per alien",
			s.Stats.Level, s.Settings.AlienSpeed, s.Settings.AlienPoints)
	}
}

func (s *Sim) checkHighScore() {
	if s.Stats.CheckHighScore() && !s.newRecord {
		s.newRecord = true
		s.Log.Add("New high score!", MsgRecord, s.Frames)
	}
}

// updateAliens sweeps the fleet and checks whether it reached the ship or the
// bottom of the screen.
func (s *Sim) updateAliens() {
	s.Fleet.CheckEdges()
	s.Fleet.Update()

	if s.Fleet.Collides(s.Ship.Bounds()) || s.Fleet.ReachedBottom() {
		s.shipHit()
	}
}

// shipHit costs the player a ship. With ships to spare the board is reset and
// play freezes for the pause time; otherwise the game ends.
func (s *Sim) shipHit() {
	if s.Stats.ShipsLeft > 0 {
		s.Stats.ShipsLeft--
	}
	s.Fleet.Clear()
	s.Bullets.Clear()

	if s.Stats.ShipsLeft > 0 {
		s.Fleet.Create()
		s.Ship.Center()
		s.pauseUntil = s.clock.Now().Add(s.Settings.PauseTime())
		s.Log.Add(fmt.Sprintf("Ship lost. %d left", s.Stats.ShipsLeft), MsgWarning, s.Frames)
		log.Printf("ship hit: %d ships left", s.Stats.ShipsLeft)
		return
	}

	s.Stats.GameActive = false
	s.Log.Add("Game over", MsgCritical, s.Frames)
	log.Printf("game over: score %d, level %d, high score %d",
		s.Stats.Score, s.Stats.Level, s.Stats.HighScore)
}
