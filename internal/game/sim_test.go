package game

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alien-invasion/alien_invasion/internal/world"
)

func TestNewSimStartsInactiveWithFleet(t *testing.T) {
	s, _ := newTestSim(t, world.DefaultSettings(), bookCatalog, 1234)

	assert.False(t, s.Stats.GameActive)
	assert.Equal(t, 3, s.Stats.ShipsLeft)
	assert.Equal(t, 1, s.Stats.Level)
	assert.Equal(t, 1234, s.Stats.HighScore)
	assert.Equal(t, 27, s.Fleet.Len())
	assert.Equal(t, world.Rect{X: 500, Y: 375, W: 200, H: 50}, s.PlayButton)
}

func TestNewSimStartupErrors(t *testing.T) {
	tests := map[string]fakeCatalog{
		"missing ship":  {SpriteAlien: {60, 58}},
		"missing alien": {SpriteShip: {60, 48}},
		"empty alien":   {SpriteShip: {60, 48}, SpriteAlien: {0, 58}},
		"no room":       {SpriteShip: {60, 48}, SpriteAlien: {700, 58}},
	}
	for name, catalog := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := NewSim(world.DefaultSettings(), catalog, 0, newFakeClock())
			var startup *world.StartupError
			assert.ErrorAs(t, err, &startup)
		})
	}
}

func TestStepInactiveDoesNothing(t *testing.T) {
	s, _ := newTestSim(t, world.DefaultSettings(), bookCatalog, 0)
	before := s.Fleet.Snapshot()

	require.NoError(t, s.Step([]Event{KeyDown(KeyFire), KeyDown(KeyRight)}))
	assert.Zero(t, s.Bullets.Len(), "fire is ignored between games")
	assert.Equal(t, 570.0, s.Ship.X)
	assert.Equal(t, before, s.Fleet.Snapshot())
	assert.Zero(t, s.Ticks)
	assert.Equal(t, uint64(1), s.Frames)
}

func TestStartWithKey(t *testing.T) {
	s, _ := newTestSim(t, world.DefaultSettings(), bookCatalog, 0)
	s.Settings.AlienSpeed = 5
	s.Fleet.Direction = world.DirLeft
	s.Stats.Score = 900

	require.NoError(t, s.Step([]Event{KeyDown(KeyStart)}))
	assert.True(t, s.Stats.GameActive)
	assert.Equal(t, 1.0, s.Settings.AlienSpeed)
	assert.Equal(t, world.DirRight, s.Fleet.Direction)
	assert.Zero(t, s.Stats.Score)
	assert.Equal(t, uint64(1), s.Ticks)
	assert.Equal(t, 27, s.Fleet.Len())
}

func TestStartWithPlayButton(t *testing.T) {
	s, _ := newTestSim(t, world.DefaultSettings(), bookCatalog, 0)

	require.NoError(t, s.Step([]Event{PointerDown(10, 10)}))
	assert.False(t, s.Stats.GameActive, "click outside the button")

	require.NoError(t, s.Step([]Event{PointerDown(600, 400)}))
	assert.True(t, s.Stats.GameActive)
}

func TestStartIgnoredWhileActive(t *testing.T) {
	s, _ := startedSim(t)
	s.Stats.Score = 300

	require.NoError(t, s.Step([]Event{KeyDown(KeyStart), PointerDown(50, 100)}))
	assert.Equal(t, 300, s.Stats.Score)
}

func TestStepIgnoresUnrecognizedEvents(t *testing.T) {
	s, _ := startedSim(t)
	events := []Event{{Kind: EventUnknown}, KeyDown(KeyNone), KeyUp(KeyFire)}

	assert.NoError(t, s.Step(events))
	assert.True(t, s.Stats.GameActive)
}

func TestStepQuit(t *testing.T) {
	s, _ := startedSim(t)
	assert.ErrorIs(t, s.Step([]Event{QuitEvent()}), ErrQuit)
	assert.ErrorIs(t, s.Step([]Event{KeyDown(KeyQuit)}), ErrQuit)

	// Quit wins over everything else queued in the same tick.
	s.Stats.GameActive = false
	err := s.Step([]Event{KeyDown(KeyStart), QuitEvent()})
	assert.True(t, errors.Is(err, ErrQuit))
	assert.False(t, s.Stats.GameActive)
}

func TestHeldKeysMoveShip(t *testing.T) {
	s, _ := startedSim(t)

	require.NoError(t, s.Step([]Event{KeyDown(KeyRight)}))
	assert.Equal(t, 41.5, s.Ship.X)
	require.NoError(t, s.Step(nil))
	assert.Equal(t, 43.0, s.Ship.X, "right is still held")

	require.NoError(t, s.Step([]Event{KeyUp(KeyRight), KeyDown(KeyLeft)}))
	assert.Equal(t, 41.5, s.Ship.X)
}

func TestFireSpawnsBullet(t *testing.T) {
	s, _ := startedSim(t)

	require.NoError(t, s.Step([]Event{KeyDown(KeyFire)}))
	require.Equal(t, 1, s.Bullets.Len())
	b := s.Bullets.Snapshot()[0]
	assert.Equal(t, 48.5, b.X)
	assert.Equal(t, 177.0, b.Y, "fired from the ship top and advanced once")

	events := make([]Event, 10)
	for i := range events {
		events[i] = KeyDown(KeyFire)
	}
	require.NoError(t, s.Step(events))
	assert.Equal(t, s.Settings.BulletsAllowed, s.Bullets.Len())
}

// placeBullets puts one bullet inside each listed alien so the next tick
// registers the hit.
func placeBullets(s *Sim, aliens ...Alien) {
	for _, a := range aliens {
		s.Bullets.spawn(a.X+5, a.Y+5)
	}
}

func TestClearingFleetLevelsUp(t *testing.T) {
	s, _ := startedSim(t)
	aliens := s.Fleet.Snapshot()
	require.Len(t, aliens, 4)
	placeBullets(s, aliens...)

	require.NoError(t, s.Step(nil))

	assert.Equal(t, 4*50, s.Stats.Score)
	assert.Equal(t, 200, s.Stats.HighScore)
	assert.Equal(t, 2, s.Stats.Level)
	assert.Zero(t, s.Bullets.Len())
	assert.Equal(t, 4, s.Fleet.Len(), "a new fleet was created")
	assert.Greater(t, s.Fleet.Snapshot()[0].ID, aliens[3].ID)
	assert.InDelta(t, 1.1, s.Settings.AlienSpeed, 1e-9)
	assert.InDelta(t, 3.3, s.Settings.BulletSpeed, 1e-9)
	assert.InDelta(t, 1.65, s.Settings.ShipSpeed, 1e-9)
	assert.Equal(t, 75, s.Settings.AlienPoints)
}

func TestPartialHitKeepsFleet(t *testing.T) {
	s, _ := startedSim(t)
	aliens := s.Fleet.Snapshot()
	placeBullets(s, aliens[2])
	s.Bullets.spawn(0, 100) // misses

	require.NoError(t, s.Step(nil))

	assert.Equal(t, 50, s.Stats.Score)
	assert.Equal(t, 1, s.Stats.Level)
	assert.Equal(t, 3, s.Fleet.Len())
	require.Equal(t, 1, s.Bullets.Len(), "only the spent bullet is removed")
	assert.Equal(t, 0.0, s.Bullets.Snapshot()[0].X)
	for _, a := range s.Fleet.Snapshot() {
		assert.NotEqual(t, aliens[2].ID, a.ID)
	}
}

func TestHighScoreUpdatesOnCrossing(t *testing.T) {
	s, _ := newTestSim(t, tinySettings(), tinyCatalog, 500)
	s.Start()
	s.Stats.Score = 500
	placeBullets(s, s.Fleet.Snapshot()[0])

	require.NoError(t, s.Step(nil))

	assert.Equal(t, 550, s.Stats.Score)
	assert.Equal(t, 550, s.Stats.HighScore)
	assert.Equal(t, 3, s.Fleet.Len(), "fleet not cleared yet")
	assert.Equal(t, "New high score!", s.Log.Recent(1)[0].Text)

	placeBullets(s, s.Fleet.Snapshot()[0])
	require.NoError(t, s.Step(nil))
	assert.Equal(t, 600, s.Stats.HighScore)
	assert.Equal(t, "New high score!", s.Log.Recent(1)[0].Text)
	assert.Len(t, s.Log.Messages, 2, "announced once per game")
}

func TestShipHitLastShipEndsGame(t *testing.T) {
	s, _ := startedSim(t)
	s.Stats.ShipsLeft = 1
	s.Bullets.spawn(0, 100)
	moveAlien(s.Fleet, 0, 40, 170)

	require.NoError(t, s.Step(nil))

	assert.Zero(t, s.Stats.ShipsLeft)
	assert.False(t, s.Stats.GameActive)
	assert.True(t, s.Fleet.Empty())
	assert.Zero(t, s.Bullets.Len())
	assert.False(t, s.Paused())
	assert.True(t, s.pauseUntil.IsZero(), "no pause was scheduled")
}

func TestShipHitWithShipsLeftPauses(t *testing.T) {
	s, clock := startedSim(t)
	s.Stats.ShipsLeft = 2
	s.Bullets.spawn(0, 100)
	s.Ship.X = 10
	moveAlien(s.Fleet, 0, 10, 170)

	require.NoError(t, s.Step(nil))

	assert.Equal(t, 1, s.Stats.ShipsLeft)
	assert.True(t, s.Stats.GameActive)
	assert.Equal(t, 4, s.Fleet.Len())
	assert.Zero(t, s.Bullets.Len())
	assert.Equal(t, 40.0, s.Ship.X, "ship recentered")
	require.True(t, s.Paused())

	// Frozen: nothing moves and fire is dropped, but held keys are tracked.
	frozen := s.Fleet.Snapshot()
	ticks := s.Ticks
	require.NoError(t, s.Step([]Event{KeyDown(KeyFire), KeyDown(KeyRight)}))
	assert.Equal(t, frozen, s.Fleet.Snapshot())
	assert.Zero(t, s.Bullets.Len())
	assert.Equal(t, 40.0, s.Ship.X)
	assert.True(t, s.Ship.MovingRight)
	assert.Equal(t, ticks, s.Ticks)

	clock.Advance(s.Settings.PauseTime())
	assert.False(t, s.Paused())
	require.NoError(t, s.Step(nil))
	assert.Equal(t, ticks+1, s.Ticks)
	assert.Equal(t, 41.5, s.Ship.X)
	assert.Equal(t, frozen[0].X+1, s.Fleet.Snapshot()[0].X)
}

func TestFleetReachingBottomCostsShip(t *testing.T) {
	s, _ := startedSim(t)
	moveAlien(s.Fleet, 3, 0.5, 185) // far from the ship, bottom below the screen

	require.NoError(t, s.Step(nil))
	assert.Equal(t, 2, s.Stats.ShipsLeft)
}

func TestOneShipHitPerTick(t *testing.T) {
	s, _ := startedSim(t)
	moveAlien(s.Fleet, 0, 40, 170)
	moveAlien(s.Fleet, 1, 45, 185)

	require.NoError(t, s.Step(nil))
	assert.Equal(t, 2, s.Stats.ShipsLeft)
}

func TestGameOverThenRestart(t *testing.T) {
	s, clock := startedSim(t)
	for s.Stats.GameActive {
		moveAlien(s.Fleet, 0, 40, 170)
		require.NoError(t, s.Step(nil))
		clock.Advance(s.Settings.PauseTime())
	}
	assert.Zero(t, s.Stats.ShipsLeft)
	assert.Equal(t, "Game over", s.Log.Recent(1)[0].Text)

	require.NoError(t, s.Step([]Event{KeyDown(KeyStart)}))
	assert.True(t, s.Stats.GameActive)
	assert.Equal(t, 3, s.Stats.ShipsLeft)
	assert.Equal(t, 4, s.Fleet.Len())
}
