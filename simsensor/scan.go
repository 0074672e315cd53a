// Package simsensor builds the fixed-length, normalized sensor vector a
// Controller consumes each tick, sized so every genome in a population
// agrees on input count.
package simsensor

import (
	"sort"

	"github.com/lixenwraith/neat-arena/config"
	"github.com/lixenwraith/neat-arena/geom"
	"github.com/lixenwraith/neat-arena/simcontrol"
)

// Length returns the fixed sensor vector length for a given SimConfig:
// 2 + 4*K_e + 4*K_a + 3*K_w.
func Length(cfg config.SimConfig) int {
	return 2 + 4*cfg.NearestKEnemies + 4*cfg.NearestKAllies + 3*cfg.NearestKWrecks
}

type candidate struct {
	idx    int
	distSq float64
}

// Scan builds the sensor vector for the acting agent exposed as self in
// view: self hp/shield ratios, then the K_e nearest living enemies, the K_a
// nearest living allies, and the K_w nearest non-empty wrecks, each ordered
// by ascending squared distance with ties broken by lower index. Missing
// slots (fewer candidates than K) pad with zeros. Every component is
// bounded to approximately [-1, 1].
func Scan(view simcontrol.View, cfg config.SimConfig) []float64 {
	self, selfTeam := view.Self()
	width, height := view.Dimensions()
	mode := view.Mode()
	selfPos := view.AgentPos(self)

	// ScanMaxDist caps visibility; the difficulty schedule shrinks it as
	// the population improves. Zero or negative means unbounded.
	maxDistSq := cfg.ScanMaxDist * cfg.ScanMaxDist

	out := make([]float64, 0, Length(cfg))
	out = append(out, view.AgentHealth(self)/cfg.HealthMax)
	out = append(out, view.AgentShield(self)/cfg.MaxShield)

	var enemies, allies []candidate
	for i := 0; i < view.AgentCount(); i++ {
		if i == self || !view.AgentAlive(i) {
			continue
		}
		d := geom.DistSq(mode, selfPos, view.AgentPos(i), width, height)
		if cfg.ScanMaxDist > 0 && d > maxDistSq {
			continue
		}
		c := candidate{idx: i, distSq: d}
		if view.AgentTeam(i) == selfTeam {
			allies = append(allies, c)
		} else {
			enemies = append(enemies, c)
		}
	}

	var wrecks []candidate
	for i := 0; i < view.WreckCount(); i++ {
		if !view.WreckAlive(i) {
			continue
		}
		d := geom.DistSq(mode, selfPos, view.WreckPos(i), width, height)
		if cfg.ScanMaxDist > 0 && d > maxDistSq {
			continue
		}
		wrecks = append(wrecks, candidate{idx: i, distSq: d})
	}

	sortNearest(enemies)
	sortNearest(allies)
	sortNearest(wrecks)

	for k := 0; k < cfg.NearestKEnemies; k++ {
		if k < len(enemies) {
			out = appendAgentSlot(out, view, selfPos, width, height, mode, enemies[k].idx, cfg)
		} else {
			out = append(out, 0, 0, 0, 0)
		}
	}
	for k := 0; k < cfg.NearestKAllies; k++ {
		if k < len(allies) {
			out = appendAgentSlot(out, view, selfPos, width, height, mode, allies[k].idx, cfg)
		} else {
			out = append(out, 0, 0, 0, 0)
		}
	}
	for k := 0; k < cfg.NearestKWrecks; k++ {
		if k < len(wrecks) {
			i := wrecks[k].idx
			delta := geom.Delta(mode, selfPos, view.WreckPos(i), width, height)
			pool := view.WreckPool(i)
			maxPool := cfg.HealthMax * cfg.LootInitRatio
			poolNorm := 0.0
			if maxPool > 0 {
				poolNorm = pool / maxPool
			}
			out = append(out, delta.X/(width/2), delta.Y/(height/2), poolNorm)
		} else {
			out = append(out, 0, 0, 0)
		}
	}

	return out
}

func appendAgentSlot(out []float64, view simcontrol.View, selfPos geom.Vec2, width, height float64, mode geom.DistanceMode, idx int, cfg config.SimConfig) []float64 {
	delta := geom.Delta(mode, selfPos, view.AgentPos(idx), width, height)
	return append(out,
		delta.X/(width/2),
		delta.Y/(height/2),
		view.AgentHealth(idx)/cfg.HealthMax,
		view.AgentShield(idx)/cfg.MaxShield,
	)
}

func sortNearest(c []candidate) {
	sort.SliceStable(c, func(i, j int) bool {
		if c[i].distSq != c[j].distSq {
			return c[i].distSq < c[j].distSq
		}
		return c[i].idx < c[j].idx
	})
}
