package game

import "github.com/alien-invasion/alien_invasion/internal/world"

// hitbox is a collision snapshot of one entity.
type hitbox struct {
	ID  int
	Box world.Rect
}

// matchHits pairs bullets with the aliens they overlap. Bullets are visited in
// the given order and each claims every alien no earlier bullet has claimed,
// so when several bullets overlap one alien the first of them wins. It
// returns the IDs of the bullets that hit something and of the aliens hit.
func matchHits(bullets, aliens []hitbox) (spent, killed []int) {
	claimed := make([]bool, len(aliens))
	for _, b := range bullets {
		hit := false
		for i, a := range aliens {
			if claimed[i] || !b.Box.Intersects(a.Box) {
				continue
			}
			claimed[i] = true
			killed = append(killed, a.ID)
			hit = true
		}
		if hit {
			spent = append(spent, b.ID)
		}
	}
	return spent, killed
}
