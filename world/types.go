// Package world owns the tick engine: flat, index-addressable agent/wreck/
// bullet/hit-segment records and the eight ordered phases that advance one
// tick. Records are laid out as typed slices, one small struct per row,
// keeping the hot path contiguous without raw offset arithmetic.
package world

import (
	"github.com/lixenwraith/neat-arena/config"
	"github.com/lixenwraith/neat-arena/geom"
	"github.com/lixenwraith/neat-arena/simcontrol"
)

// Agent is one fixed-stride row: {x, y, team, health, shield, last_hit_tick}.
// A dead agent (Health <= 0) keeps its row so indices never shift; every
// phase skips it instead of removing it.
type Agent struct {
	Pos         geom.Vec2
	Team        int
	Health      float64
	Shield      float64
	LastHitTick int
}

// Alive reports whether the agent still has positive health.
func (a Agent) Alive() bool { return a.Health > 0 }

// Wreck is a consumable loot pool left at a killed agent's position.
type Wreck struct {
	Pos  geom.Vec2
	Pool float64
}

// Alive reports whether the wreck still holds loot.
func (w Wreck) Alive() bool { return w.Pool > 0 }

// Bullet is a missile projectile in flight.
type Bullet struct {
	Pos    geom.Vec2
	Damage float64
	TTL    float64
}

// HitSegment records a resolved laser beam for one tick, cleared on Reset.
type HitSegment struct {
	Shooter, Target geom.Vec2
}

// World holds one simulation's complete mutable state. It is owned by a
// single goroutine for its entire lifetime; the population driver runs many
// Worlds concurrently, one per worker, never sharing one across workers.
type World struct {
	Agents      []Agent
	Wrecks      []Wreck
	Bullets     []Bullet
	HitSegments []HitSegment

	// Commands is the per-tick index -> Action map. Last write wins within
	// a tick; cleared by the Cleanup phase.
	Commands map[int]simcontrol.Action

	Width, Height float64
	TickCount     int

	Cfg config.SimConfig

	// FireCount and LootCount count resolved fires/loots within the
	// current tick; reset zeroes them at the start of every Step.
	FireCount int
	LootCount int
}

// New constructs an empty World of the given size. Agents must be added via
// AddAgent before the first Step.
func New(width, height float64, cfg config.SimConfig) *World {
	return &World{
		Commands: make(map[int]simcontrol.Action),
		Width:    width,
		Height:   height,
		Cfg:      cfg,
	}
}

// AddAgent appends a new agent row and returns its stable index.
func (w *World) AddAgent(pos geom.Vec2, team int, health, shield float64) int {
	w.Agents = append(w.Agents, Agent{
		Pos:         pos,
		Team:        team,
		Health:      health,
		Shield:      shield,
		LastHitTick: 0,
	})
	return len(w.Agents) - 1
}
