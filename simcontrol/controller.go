package simcontrol

import "github.com/lixenwraith/neat-arena/geom"

// View exposes read-only world state to a Controller, indexed the same way
// the engine's internal buffers are: by stable agent/wreck index. A View is
// scoped to one acting agent for the duration of one Think call.
type View interface {
	// Self returns the acting agent's own index and team.
	Self() (index, team int)

	// AgentCount returns the number of agent slots (including dead ones).
	AgentCount() int
	// AgentAlive reports whether agent i has positive health.
	AgentAlive(i int) bool
	// AgentPos returns agent i's position.
	AgentPos(i int) geom.Vec2
	// AgentTeam returns agent i's team.
	AgentTeam(i int) int
	// AgentHealth returns agent i's current health.
	AgentHealth(i int) float64
	// AgentShield returns agent i's current shield.
	AgentShield(i int) float64

	// WreckCount returns the number of wreck slots (including depleted ones).
	WreckCount() int
	// WreckAlive reports whether wreck i still has positive loot pool.
	WreckAlive(i int) bool
	// WreckPos returns wreck i's position.
	WreckPos(i int) geom.Vec2
	// WreckPool returns wreck i's remaining loot pool.
	WreckPool(i int) float64

	// Dimensions returns the world's width and height.
	Dimensions() (width, height float64)
	// Mode returns the active distance mode (toroidal or Euclidean).
	Mode() geom.DistanceMode
}

// Controller decides an Action given a per-agent sensor vector and a
// read-only view of the world. Implementations never mutate world state;
// the tick engine alone applies Actions during later phases.
type Controller interface {
	Think(view View, inputs []float64) Action
}
