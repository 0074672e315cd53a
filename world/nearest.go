package world

import "github.com/lixenwraith/neat-arena/geom"

// nearestEnemy returns the index of the closest living agent on a different
// team than self, under the active distance mode. Ties prefer the lower
// index since candidates are scanned in ascending order and replacement
// requires a strictly smaller distance. ok is false if no enemy exists.
func (w *World) nearestEnemy(self int) (idx int, distSq float64, ok bool) {
	return w.nearestAgent(self, func(a Agent) bool {
		return a.Team != w.Agents[self].Team
	})
}

// nearestAlly returns the closest living agent on the same team as self,
// excluding self.
func (w *World) nearestAlly(self int) (idx int, distSq float64, ok bool) {
	return w.nearestAgent(self, func(a Agent) bool {
		return a.Team == w.Agents[self].Team
	})
}

func (w *World) nearestAgent(self int, match func(Agent) bool) (idx int, distSq float64, ok bool) {
	selfPos := w.Agents[self].Pos
	best := -1
	bestDistSq := 0.0
	for i, a := range w.Agents {
		if i == self || !a.Alive() || !match(a) {
			continue
		}
		d := geom.DistSq(w.Cfg.DistanceMode, selfPos, a.Pos, w.Width, w.Height)
		if best == -1 || d < bestDistSq {
			best, bestDistSq = i, d
		}
	}
	if best == -1 {
		return 0, 0, false
	}
	return best, bestDistSq, true
}

// nearestWreck returns the index of the closest non-empty wreck to pos.
func (w *World) nearestWreck(pos geom.Vec2) (idx int, distSq float64, ok bool) {
	best := -1
	bestDistSq := 0.0
	for i, wr := range w.Wrecks {
		if !wr.Alive() {
			continue
		}
		d := geom.DistSq(w.Cfg.DistanceMode, pos, wr.Pos, w.Width, w.Height)
		if best == -1 || d < bestDistSq {
			best, bestDistSq = i, d
		}
	}
	if best == -1 {
		return 0, 0, false
	}
	return best, bestDistSq, true
}
