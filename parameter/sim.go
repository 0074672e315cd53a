// Package parameter centralizes default tuning constants for the GA and
// gameplay knobs. Defaults here feed config.DefaultSimConfig /
// config.DefaultEvoConfig / config.DefaultEloConfig; callers override
// individual fields, never these constants.
package parameter

// Simulation - Combat & Movement
const (
	// SimSeparationRange is the radius within which the naive controller's
	// separation behavior pushes away from nearby living agents of any team.
	SimSeparationRange = 10.0

	// SimSeparationStrength scales the summed separation vector.
	SimSeparationStrength = 0.5

	// SimAttackRange is the laser engagement distance used by the naive
	// controller's Engaging state.
	SimAttackRange = 50.0

	// SimFriction is the per-tick velocity decay applied to Thrust commands.
	SimFriction = 0.98

	// SimMaxSpeed caps post-friction velocity magnitude (units/tick).
	SimMaxSpeed = 4.0

	// SimViewRange bounds the naive controller's nearest-enemy and
	// nearest-wreck search; a very large value leaves it unbounded. The
	// sensor scan is bounded by SimScanMaxDist instead.
	SimViewRange = 1e9
)

// Simulation - Health & Shield
const (
	SimHealthMax         = 100.0
	SimMaxShield         = 50.0
	SimShieldRegenDelay  = 10 // ticks since last_hit before regen starts
	SimShieldRegenRate   = 2.0
	SimHealthFleeRatio   = 0.2
	SimHealthEngageRatio = 0.6
)

// Simulation - Loot
const (
	SimLootRange     = 5.0
	SimLootFixed     = 2.0
	SimLootFraction  = 0.2
	SimLootInitRatio = 0.5
)

// Simulation - Sensor
const (
	SimNearestKEnemies = 3
	SimNearestKAllies  = 2
	SimNearestKWrecks  = 2
	SimScanMaxDist     = 1e9
)

// Simulation - Misc
const (
	// SimBatchSize is the inference batch width advertised to controllers
	// that evaluate remotely; local feed-forward ignores it.
	SimBatchSize = 32
)
