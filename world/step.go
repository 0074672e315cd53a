package world

import "github.com/lixenwraith/neat-arena/simcontrol"

// Step advances the simulation by exactly one tick, running the eight
// phases in fixed order: Reset, Decision, Movement, Combat,
// Bullet, Loot, Regen, Cleanup. controllers must be indexed the same way
// as w.Agents; a dead agent's controller is never invoked.
func (w *World) Step(controllers []simcontrol.Controller) {
	w.reset()
	w.decision(controllers)
	w.movement()
	w.combat()
	w.bullet()
	w.loot()
	w.regen()
	w.cleanup()
}

// LivingCount returns the number of agents with positive health, optionally
// restricted to one team (pass team < 0 to count across all teams).
func (w *World) LivingCount(team int) int {
	n := 0
	for _, a := range w.Agents {
		if !a.Alive() {
			continue
		}
		if team >= 0 && a.Team != team {
			continue
		}
		n++
	}
	return n
}

// TeamHealth sums the health of living agents on the given team.
func (w *World) TeamHealth(team int) float64 {
	sum := 0.0
	for _, a := range w.Agents {
		if a.Alive() && a.Team == team {
			sum += a.Health
		}
	}
	return sum
}

// TeamHealthRaw sums every agent's Health on the given team, including
// agents at or below zero (overkill damage is not floored), for the match
// runner's damage-inflicted accounting.
func (w *World) TeamHealthRaw(team int) float64 {
	sum := 0.0
	for _, a := range w.Agents {
		if a.Team == team {
			sum += a.Health
		}
	}
	return sum
}

// TeamKills counts agents on the given team with health <= 0.
func (w *World) TeamKills(team int) int {
	n := 0
	for _, a := range w.Agents {
		if a.Team == team && !a.Alive() {
			n++
		}
	}
	return n
}
