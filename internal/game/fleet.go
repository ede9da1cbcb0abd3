package game

import (
	"slices"

	"github.com/mlange-42/ark/ecs"

	"github.com/alien-invasion/alien_invasion/internal/world"
)

// Alien is one member of the fleet. It has no direction of its own; it reads
// the shared direction from its fleet every tick.
type Alien struct {
	ID   int
	X, Y float64
	W, H int

	fleet *Fleet
}

// Update moves the alien sideways in the fleet's current direction.
func (a *Alien) Update() {
	a.X += a.fleet.settings.AlienSpeed * float64(a.fleet.Direction)
}

func (a *Alien) Bounds() world.Rect { return world.NewRect(a.X, a.Y, a.W, a.H) }

// CheckEdges reports whether the alien touches either side of the screen.
func (a *Alien) CheckEdges() bool {
	b := a.Bounds()
	return b.Right() >= float64(a.fleet.settings.ScreenWidth) || b.Left() <= 0
}

// Fleet owns the aliens and the direction they sweep in.
type Fleet struct {
	// Direction is +1 while the fleet sweeps right and -1 while it sweeps left.
	Direction int

	settings       *world.Settings
	alienW, alienH int
	shipH          int

	world    *ecs.World
	store    *ecs.Map[Alien]
	sprites  *ecs.Map[Sprite]
	entities []ecs.Entity // ID order
	nextID   int
}

// NewFleet creates an empty fleet. alienW and alienH are the alien sprite
// size and shipH the ship sprite height, which the layout keeps clear.
func NewFleet(w *ecs.World, settings *world.Settings, alienW, alienH, shipH int) *Fleet {
	return &Fleet{
		Direction: settings.FleetDirection,
		settings:  settings,
		alienW:    alienW,
		alienH:    alienH,
		shipH:     shipH,
		world:     w,
		store:     ecs.NewMap[Alien](w),
		sprites:   ecs.NewMap[Sprite](w),
	}
}

// Layout returns how many columns and rows of aliens fit on the screen. A gap
// of one alien is left between aliens and at the left edge; two alien heights
// stay free above the fleet and three plus the ship below it.
func (f *Fleet) Layout() (cols, rows int) {
	cols = (f.settings.ScreenWidth - f.alienW) / (2 * f.alienW)
	rows = (f.settings.ScreenHeight - 5*f.alienH - f.shipH) / (2 * f.alienH)
	return max(cols, 0), max(rows, 0)
}

// Create fills the grid with a new formation, row by row.
func (f *Fleet) Create() {
	cols, rows := f.Layout()
	spawn := ecs.NewMap2[Alien, Sprite](f.world)
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			a := Alien{
				ID:    f.nextID,
				X:     float64(f.alienW + 2*f.alienW*col),
				Y:     float64(2*f.alienH + 2*f.alienH*row),
				W:     f.alienW,
				H:     f.alienH,
				fleet: f,
			}
			f.nextID++
			e := spawn.NewEntity(&a, &Sprite{ID: SpriteAlien})
			f.entities = append(f.entities, e)
		}
	}
}

// Update advances every alien.
func (f *Fleet) Update() {
	for _, e := range f.entities {
		f.store.Get(e).Update()
	}
}

// CheckEdges reverses the fleet if any alien touches a side of the screen.
// At most one reversal happens per call.
func (f *Fleet) CheckEdges() bool {
	for _, e := range f.entities {
		if f.store.Get(e).CheckEdges() {
			f.ChangeDirection()
			return true
		}
	}
	return false
}

// ChangeDirection drops the whole fleet and flips its direction.
func (f *Fleet) ChangeDirection() {
	for _, e := range f.entities {
		f.store.Get(e).Y += f.settings.FleetDropSpeed
	}
	f.Direction = -f.Direction
}

// Collides reports whether any alien overlaps r.
func (f *Fleet) Collides(r world.Rect) bool {
	for _, e := range f.entities {
		if f.store.Get(e).Bounds().Intersects(r) {
			return true
		}
	}
	return false
}

// ReachedBottom reports whether any alien touches the bottom of the screen.
func (f *Fleet) ReachedBottom() bool {
	bottom := float64(f.settings.ScreenHeight)
	for _, e := range f.entities {
		if f.store.Get(e).Bounds().Bottom() >= bottom {
			return true
		}
	}
	return false
}

// Remove deletes the aliens with the given IDs. Unknown IDs are ignored.
func (f *Fleet) Remove(ids []int) {
	if len(ids) == 0 {
		return
	}
	doomed := make(map[int]bool, len(ids))
	for _, id := range ids {
		doomed[id] = true
	}
	for _, e := range slices.Clone(f.entities) {
		if doomed[f.store.Get(e).ID] {
			f.world.RemoveEntity(e)
		}
	}
	f.entities = slices.DeleteFunc(f.entities, func(e ecs.Entity) bool {
		return !f.world.Alive(e)
	})
}

// Clear removes every alien.
func (f *Fleet) Clear() {
	for _, e := range f.entities {
		f.world.RemoveEntity(e)
	}
	f.entities = f.entities[:0]
}

func (f *Fleet) Len() int    { return len(f.entities) }
func (f *Fleet) Empty() bool { return len(f.entities) == 0 }

// Snapshot returns copies of the live aliens in ID order.
func (f *Fleet) Snapshot() []Alien {
	out := make([]Alien, 0, len(f.entities))
	for _, e := range f.entities {
		out = append(out, *f.store.Get(e))
	}
	return out
}

func (f *Fleet) hitboxes() []hitbox {
	out := make([]hitbox, 0, len(f.entities))
	for _, e := range f.entities {
		a := f.store.Get(e)
		out = append(out, hitbox{ID: a.ID, Box: a.Bounds()})
	}
	return out
}

// Draw blits every alien.
func (f *Fleet) Draw(c Canvas) {
	for _, e := range f.entities {
		c.Blit(f.sprites.Get(e).ID, f.store.Get(e).Bounds())
	}
}
