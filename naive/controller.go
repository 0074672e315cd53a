// Package naive implements the rule-based state-machine controller used as
// a fixed training opponent: a small explicit state machine with
// flee/engage thresholds over current health.
package naive

import (
	"github.com/lixenwraith/neat-arena/config"
	"github.com/lixenwraith/neat-arena/geom"
	"github.com/lixenwraith/neat-arena/simcontrol"
)

// State names the naive controller's four behavior modes.
type State uint8

const (
	StateIdle State = iota
	StateEngaging
	StateRetreating
	StateLooting
)

// Controller is a single-agent instance of the naive state machine. One
// Controller is constructed per agent; it holds no state shared across
// agents or matches.
type Controller struct {
	cfg   config.SimConfig
	state State
}

var _ simcontrol.Controller = (*Controller)(nil)

// New constructs a naive controller bound to cfg's flee/engage thresholds
// and ranges.
func New(cfg config.SimConfig) *Controller {
	return &Controller{cfg: cfg, state: StateIdle}
}

// Think runs the transition function, then selects an Action for the
// resulting state.
func (c *Controller) Think(view simcontrol.View, _ []float64) simcontrol.Action {
	self, _ := view.Self()
	health := view.AgentHealth(self)
	flee := c.cfg.HealthMax * c.cfg.HealthFleeRatio
	engage := c.cfg.HealthMax * c.cfg.HealthEngageRatio

	enemyIdx, _, hasEnemy := nearestEnemy(view, self, c.cfg.ViewRange)
	wreckIdx, wreckDistSq, hasWreck := nearestWreck(view, self, c.cfg.ViewRange)

	switch {
	case health <= flee:
		if hasWreck {
			c.state = StateLooting
		} else {
			c.state = StateRetreating
		}
	case health >= engage:
		if hasEnemy {
			c.state = StateEngaging
		} else {
			c.state = StateIdle
		}
	default:
		if hasEnemy {
			c.state = StateEngaging
		} else {
			c.state = StateIdle
		}
	}

	switch c.state {
	case StateEngaging:
		return c.actEngaging(view, self, enemyIdx)
	case StateRetreating:
		return c.actRetreating(view, self, enemyIdx, hasEnemy)
	case StateLooting:
		return c.actLooting(view, self, wreckIdx, wreckDistSq)
	default:
		return simcontrol.Idle()
	}
}

func (c *Controller) actEngaging(view simcontrol.View, self, enemyIdx int) simcontrol.Action {
	width, height := view.Dimensions()
	mode := view.Mode()
	selfPos := view.AgentPos(self)
	enemyPos := view.AgentPos(enemyIdx)
	distSq := geom.DistSq(mode, selfPos, enemyPos, width, height)

	if distSq <= c.cfg.AttackRange*c.cfg.AttackRange {
		return simcontrol.FireWeapon(simcontrol.LaserWeapon(1, c.cfg.AttackRange))
	}

	toward := geom.Delta(mode, selfPos, enemyPos, width, height).Normalize()
	sep := separationVector(view, self, c.cfg, width, height, mode)
	thrust := toward.Add(sep)
	return simcontrol.ThrustTo(thrust)
}

func (c *Controller) actRetreating(view simcontrol.View, self, enemyIdx int, hasEnemy bool) simcontrol.Action {
	if !hasEnemy {
		return simcontrol.Idle()
	}
	width, height := view.Dimensions()
	mode := view.Mode()
	away := geom.Delta(mode, view.AgentPos(self), view.AgentPos(enemyIdx), width, height).Normalize().Scale(-1)
	return simcontrol.ThrustTo(away)
}

func (c *Controller) actLooting(view simcontrol.View, self, wreckIdx int, distSq float64) simcontrol.Action {
	if distSq <= c.cfg.LootRange*c.cfg.LootRange {
		return simcontrol.Loot()
	}
	width, height := view.Dimensions()
	mode := view.Mode()
	toward := geom.Delta(mode, view.AgentPos(self), view.WreckPos(wreckIdx), width, height).Normalize()
	return simcontrol.ThrustTo(toward)
}

// separationVector sums unit vectors pointing away from every other living
// agent within sep_range, scaled by sep_strength.
func separationVector(view simcontrol.View, self int, cfg config.SimConfig, width, height float64, mode geom.DistanceMode) geom.Vec2 {
	selfPos := view.AgentPos(self)
	sum := geom.Vec2{}
	for i := 0; i < view.AgentCount(); i++ {
		if i == self || !view.AgentAlive(i) {
			continue
		}
		delta := geom.Delta(mode, selfPos, view.AgentPos(i), width, height)
		d2 := delta.X*delta.X + delta.Y*delta.Y
		if d2 > cfg.SeparationRange*cfg.SeparationRange || d2 == 0 {
			continue
		}
		away := delta.Normalize().Scale(-1)
		sum = sum.Add(away)
	}
	return sum.Scale(cfg.SeparationStrength)
}

func nearestEnemy(view simcontrol.View, self int, viewRange float64) (idx int, distSq float64, ok bool) {
	_, team := view.Self()
	width, height := view.Dimensions()
	mode := view.Mode()
	selfPos := view.AgentPos(self)

	best := -1
	bestDistSq := 0.0
	for i := 0; i < view.AgentCount(); i++ {
		if i == self || !view.AgentAlive(i) || view.AgentTeam(i) == team {
			continue
		}
		d := geom.DistSq(mode, selfPos, view.AgentPos(i), width, height)
		if viewRange > 0 && d > viewRange*viewRange {
			continue
		}
		if best == -1 || d < bestDistSq {
			best, bestDistSq = i, d
		}
	}
	if best == -1 {
		return 0, 0, false
	}
	return best, bestDistSq, true
}

func nearestWreck(view simcontrol.View, self int, viewRange float64) (idx int, distSq float64, ok bool) {
	width, height := view.Dimensions()
	mode := view.Mode()
	selfPos := view.AgentPos(self)

	best := -1
	bestDistSq := 0.0
	for i := 0; i < view.WreckCount(); i++ {
		if !view.WreckAlive(i) {
			continue
		}
		d := geom.DistSq(mode, selfPos, view.WreckPos(i), width, height)
		if viewRange > 0 && d > viewRange*viewRange {
			continue
		}
		if best == -1 || d < bestDistSq {
			best, bestDistSq = i, d
		}
	}
	if best == -1 {
		return 0, 0, false
	}
	return best, bestDistSq, true
}
