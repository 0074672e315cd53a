package world

import "github.com/lixenwraith/neat-arena/geom"

// bulletCollisionRadius is the fixed hit radius used for bullet-vs-agent
// collision.
const bulletCollisionRadius = 1.0

// bullet advances every in-flight bullet: TTL decrements, expired bullets
// are dropped, and the rest are tested against every living agent at a
// fixed radius. The Bullet record carries no velocity (the data model
// lists only {x, y, damage, ttl}), so a bullet does not translate between
// ticks; the wrap applied below is a no-op kept for parity with a
// moving-bullet implementation. On first hit, damage is subtracted
// directly from health, bypassing shield. That asymmetry with Laser fire
// is deliberate.
func (w *World) bullet() {
	live := w.Bullets[:0]
	for _, b := range w.Bullets {
		b.TTL--
		if b.TTL <= 0 {
			continue
		}

		if w.Cfg.DistanceMode == geom.Toroidal {
			b.Pos = b.Pos.Wrap(w.Width, w.Height)
		}

		hit := false
		for i := range w.Agents {
			if !w.Agents[i].Alive() {
				continue
			}
			d := geom.DistSq(w.Cfg.DistanceMode, b.Pos, w.Agents[i].Pos, w.Width, w.Height)
			if d <= bulletCollisionRadius*bulletCollisionRadius {
				w.Agents[i].Health -= b.Damage
				if w.Agents[i].Health <= 0 {
					w.Wrecks = append(w.Wrecks, Wreck{
						Pos:  w.Agents[i].Pos,
						Pool: w.Cfg.HealthMax * w.Cfg.LootInitRatio,
					})
				}
				hit = true
				break
			}
		}
		if hit {
			continue
		}

		live = append(live, b)
	}
	w.Bullets = live
}
