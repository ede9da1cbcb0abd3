package game

import (
	"slices"

	"github.com/mlange-42/ark/ecs"

	"github.com/alien-invasion/alien_invasion/internal/world"
)

// Bullet is a shot travelling up the screen.
type Bullet struct {
	ID   int
	X, Y float64
	W, H int

	settings *world.Settings
}

// Update moves the bullet up by the current bullet speed.
func (b *Bullet) Update() {
	b.Y -= b.settings.BulletSpeed
}

func (b *Bullet) Bounds() world.Rect { return world.NewRect(b.X, b.Y, b.W, b.H) }

// Bullets is the set of live bullets. Entities are kept in firing order, which
// is also ID order.
type Bullets struct {
	settings *world.Settings
	world    *ecs.World
	store    *ecs.Map[Bullet]
	sprites  *ecs.Map[Sprite]
	entities []ecs.Entity
	nextID   int
}

// NewBullets creates an empty bullet set backed by w.
func NewBullets(w *ecs.World, settings *world.Settings) *Bullets {
	return &Bullets{
		settings: settings,
		world:    w,
		store:    ecs.NewMap[Bullet](w),
		sprites:  ecs.NewMap[Sprite](w),
	}
}

// Fire spawns a bullet at the top center of the ship. It reports false when
// the allowed number of bullets is already in flight.
func (bs *Bullets) Fire(ship world.Rect) bool {
	if len(bs.entities) >= bs.settings.BulletsAllowed {
		return false
	}
	bs.spawn(ship.CenterX()-float64(bs.settings.BulletWidth)/2, ship.Top())
	return true
}

func (bs *Bullets) spawn(x, y float64) {
	b := Bullet{
		ID:       bs.nextID,
		X:        x,
		Y:        y,
		W:        bs.settings.BulletWidth,
		H:        bs.settings.BulletHeight,
		settings: bs.settings,
	}
	bs.nextID++
	e := ecs.NewMap2[Bullet, Sprite](bs.world).NewEntity(&b, &Sprite{ID: SpriteBullet})
	bs.entities = append(bs.entities, e)
}

// Update advances every bullet.
func (bs *Bullets) Update() {
	for _, e := range bs.entities {
		bs.store.Get(e).Update()
	}
}

// Cull removes bullets that have left the top of the screen and returns how
// many were removed.
func (bs *Bullets) Cull() int {
	var gone []int
	for _, e := range slices.Clone(bs.entities) {
		if b := bs.store.Get(e); b.Bounds().Bottom() <= 0 {
			gone = append(gone, b.ID)
		}
	}
	bs.Remove(gone)
	return len(gone)
}

// Remove deletes the bullets with the given IDs. Unknown IDs are ignored.
func (bs *Bullets) Remove(ids []int) {
	if len(ids) == 0 {
		return
	}
	doomed := make(map[int]bool, len(ids))
	for _, id := range ids {
		doomed[id] = true
	}
	for _, e := range slices.Clone(bs.entities) {
		if doomed[bs.store.Get(e).ID] {
			bs.world.RemoveEntity(e)
		}
	}
	bs.entities = slices.DeleteFunc(bs.entities, func(e ecs.Entity) bool {
		return !bs.world.Alive(e)
	})
}

// Clear removes every bullet.
func (bs *Bullets) Clear() {
	for _, e := range bs.entities {
		bs.world.RemoveEntity(e)
	}
	bs.entities = bs.entities[:0]
}

func (bs *Bullets) Len() int { return len(bs.entities) }

// Snapshot returns copies of the live bullets in ID order.
func (bs *Bullets) Snapshot() []Bullet {
	out := make([]Bullet, 0, len(bs.entities))
	for _, e := range bs.entities {
		out = append(out, *bs.store.Get(e))
	}
	return out
}

func (bs *Bullets) hitboxes() []hitbox {
	out := make([]hitbox, 0, len(bs.entities))
	for _, e := range bs.entities {
		b := bs.store.Get(e)
		out = append(out, hitbox{ID: b.ID, Box: b.Bounds()})
	}
	return out
}

// Draw blits every bullet.
func (bs *Bullets) Draw(c Canvas) {
	for _, e := range bs.entities {
		c.Blit(bs.sprites.Get(e).ID, bs.store.Get(e).Bounds())
	}
}
