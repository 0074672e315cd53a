package world

import "github.com/lixenwraith/neat-arena/simcontrol"

// combat resolves every Fire command in ascending agent index order. Laser
// fire finds the nearest living enemy under the active distance mode: if
// within range, damage is subtracted from shield first with spillover into
// health, a hit segment is recorded, last_hit_tick is stamped, and a wreck
// is spawned on lethal damage. Missile fire appends a Bullet at the
// shooter's position for the Bullet phase to resolve. A Fire with no valid
// enemy in range is silently a no-op, per the external-interface contract.
func (w *World) combat() {
	for i := range w.Agents {
		if !w.Agents[i].Alive() {
			continue
		}
		cmd, has := w.Commands[i]
		if !has || cmd.Kind != simcontrol.ActionFire {
			continue
		}

		switch cmd.Weapon.Kind {
		case simcontrol.WeaponLaser:
			w.fireLaser(i, cmd.Weapon.Damage, cmd.Weapon.Range)
		case simcontrol.WeaponMissile:
			w.fireMissile(i, cmd.Weapon.Damage, cmd.Weapon.TTL)
		}
	}
}

func (w *World) fireLaser(shooter int, damage, rng float64) {
	target, distSq, ok := w.nearestEnemy(shooter)
	if !ok || distSq > rng*rng {
		return
	}

	w.FireCount++

	t := &w.Agents[target]
	remaining := damage
	if t.Shield > 0 {
		absorbed := remaining
		if absorbed > t.Shield {
			absorbed = t.Shield
		}
		t.Shield -= absorbed
		remaining -= absorbed
	}
	t.Health -= remaining
	t.LastHitTick = w.TickCount

	w.HitSegments = append(w.HitSegments, HitSegment{
		Shooter: w.Agents[shooter].Pos,
		Target:  t.Pos,
	})

	if t.Health <= 0 {
		w.Wrecks = append(w.Wrecks, Wreck{
			Pos:  t.Pos,
			Pool: w.Cfg.HealthMax * w.Cfg.LootInitRatio,
		})
	}
}

func (w *World) fireMissile(shooter int, damage, ttl float64) {
	w.Bullets = append(w.Bullets, Bullet{
		Pos:    w.Agents[shooter].Pos,
		Damage: damage,
		TTL:    ttl,
	})
}
