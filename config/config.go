// Package config defines the plain-struct configuration records passed
// between the simulation, trainer, and tournament layers. Defaults come
// from Default*() constructors backed by the parameter package rather
// than a builder or options pattern.
package config

import (
	"fmt"

	"github.com/lixenwraith/neat-arena/geom"
	"github.com/lixenwraith/neat-arena/parameter"
	"github.com/lixenwraith/neat-arena/simerr"
)

// SimConfig holds the per-tick gameplay constants a MatchRunner applies
// uniformly to every agent: movement, combat, shield, loot, and sensor
// ranges. It carries no map dimensions or team layout; those belong to
// EvoConfig, which owns the scenario a SimConfig is played inside.
type SimConfig struct {
	SeparationRange    float64
	SeparationStrength float64
	AttackRange        float64
	Friction           float64
	MaxSpeed           float64
	ViewRange          float64

	HealthMax         float64
	MaxShield         float64
	ShieldRegenDelay  int
	ShieldRegenRate   float64
	HealthFleeRatio   float64
	HealthEngageRatio float64

	LootRange     float64
	LootFixed     float64
	LootFraction  float64
	LootInitRatio float64

	NearestKEnemies int
	NearestKAllies  int
	NearestKWrecks  int
	ScanMaxDist     float64

	// BatchSize is advertised to controllers that batch inference
	// externally; the tick engine itself is unbatched.
	BatchSize int
	// DifficultyLevel mirrors the trainer's current difficulty so a
	// snapshot records the scenario a champion was trained at.
	DifficultyLevel int

	DistanceMode geom.DistanceMode
}

// DefaultSimConfig returns the baseline gameplay tuning, grounded on the
// parameter package's Sim* constants.
func DefaultSimConfig() SimConfig {
	return SimConfig{
		SeparationRange:    parameter.SimSeparationRange,
		SeparationStrength: parameter.SimSeparationStrength,
		AttackRange:        parameter.SimAttackRange,
		Friction:           parameter.SimFriction,
		MaxSpeed:           parameter.SimMaxSpeed,
		ViewRange:          parameter.SimViewRange,

		HealthMax:         parameter.SimHealthMax,
		MaxShield:         parameter.SimMaxShield,
		ShieldRegenDelay:  parameter.SimShieldRegenDelay,
		ShieldRegenRate:   parameter.SimShieldRegenRate,
		HealthFleeRatio:   parameter.SimHealthFleeRatio,
		HealthEngageRatio: parameter.SimHealthEngageRatio,

		LootRange:     parameter.SimLootRange,
		LootFixed:     parameter.SimLootFixed,
		LootFraction:  parameter.SimLootFraction,
		LootInitRatio: parameter.SimLootInitRatio,

		NearestKEnemies: parameter.SimNearestKEnemies,
		NearestKAllies:  parameter.SimNearestKAllies,
		NearestKWrecks:  parameter.SimNearestKWrecks,
		ScanMaxDist:     parameter.SimScanMaxDist,

		BatchSize: parameter.SimBatchSize,

		DistanceMode: geom.Toroidal,
	}
}

// Validate reports simerr.ErrInvalidConfig for out-of-range weights that
// would make a match meaningless (negative speeds, zero health, etc).
func (c SimConfig) Validate() error {
	switch {
	case c.HealthMax <= 0:
		return fmt.Errorf("%w: health_max must be positive, got %v", simerr.ErrInvalidConfig, c.HealthMax)
	case c.MaxSpeed < 0:
		return fmt.Errorf("%w: max_speed must be non-negative, got %v", simerr.ErrInvalidConfig, c.MaxSpeed)
	case c.Friction < 0 || c.Friction > 1:
		return fmt.Errorf("%w: friction must be in [0,1], got %v", simerr.ErrInvalidConfig, c.Friction)
	case c.NearestKEnemies < 0 || c.NearestKAllies < 0 || c.NearestKWrecks < 0:
		return fmt.Errorf("%w: nearest-k counts must be non-negative", simerr.ErrInvalidConfig)
	}
	return nil
}

// EvoConfig holds the population and scenario parameters a Driver uses to
// run one full evolutionary training session.
type EvoConfig struct {
	PopulationSize          int
	EliteCount              int
	TournamentSize          int
	CrossoverMixProbability float64

	WeightPerturbRate     float64
	WeightPerturbStrength float64
	WeightResetRate       float64
	AddConnectionRate     float64
	AddNodeRate           float64

	MapWidth       float64
	MapHeight      float64
	AgentsPerTeam  int
	TeamCount      int
	MaxTicks       int
	MaxGenerations int
	EarlyExit      bool

	HofSize                int
	HofMatchRate           float64
	CompatibilityThreshold float64
	CrossoverRate          float64

	WHealth         float64
	WDamage         float64
	WKills          float64
	TimeBonusWeight float64
	// FitnessFn selects between "health_plus_damage" and
	// "health_plus_damage_time"; see match.ResolveFitness.
	FitnessFn string

	StagnationWindow            int
	StagnationInjectionFraction float64
	MutationScale               float64
	DifficultyRampGenerations   int
	DifficultyInterval          int
	DifficultyThreshold         float64
	MapVarCoefficient           float64

	Sim SimConfig
}

// DefaultEvoConfig returns the baseline trainer configuration, grounded on
// the parameter package's Evo* constants.
func DefaultEvoConfig() EvoConfig {
	return EvoConfig{
		PopulationSize:          parameter.EvoPopulationSize,
		EliteCount:              parameter.EvoEliteCount,
		TournamentSize:          parameter.EvoTournamentSize,
		CrossoverMixProbability: parameter.EvoCrossoverMixProbability,

		WeightPerturbRate:     parameter.EvoWeightPerturbRate,
		WeightPerturbStrength: parameter.EvoWeightPerturbStrength,
		WeightResetRate:       parameter.EvoWeightResetRate,
		AddConnectionRate:     parameter.EvoAddConnectionRate,
		AddNodeRate:           parameter.EvoAddNodeRate,

		MapWidth:       parameter.EvoMapWidth,
		MapHeight:      parameter.EvoMapHeight,
		AgentsPerTeam:  parameter.EvoAgentsPerTeam,
		TeamCount:      parameter.EvoTeamCount,
		MaxTicks:       parameter.EvoMaxTicks,
		MaxGenerations: parameter.EvoMaxGenerations,
		EarlyExit:      true,

		HofSize:                parameter.EvoHofSize,
		HofMatchRate:           parameter.EvoHofMatchRate,
		CompatibilityThreshold: parameter.EvoCompatibilityThreshold,
		CrossoverRate:          parameter.EvoCrossoverRate,

		WHealth:         parameter.EvoWeightHealth,
		WDamage:         parameter.EvoWeightDamage,
		WKills:          parameter.EvoWeightKills,
		TimeBonusWeight: parameter.EvoTimeBonusWeight,
		FitnessFn:       "health_plus_damage_time",

		StagnationWindow:            parameter.EvoStagnationWindow,
		StagnationInjectionFraction: parameter.EvoStagnationInjectionFraction,
		MutationScale:               parameter.EvoMutationScale,
		DifficultyRampGenerations:   parameter.EvoDifficultyRampGenerations,
		DifficultyInterval:          parameter.EvoDifficultyInterval,
		DifficultyThreshold:         parameter.EvoDifficultyThreshold,
		MapVarCoefficient:           parameter.EvoMapVarCoefficient,

		Sim: DefaultSimConfig(),
	}
}

// Validate reports simerr.ErrInvalidConfig for a configuration that cannot
// run a single generation: zero population, zero map area, or an invalid
// embedded SimConfig.
func (c EvoConfig) Validate() error {
	switch {
	case c.PopulationSize <= 0:
		return fmt.Errorf("%w: population_size must be positive, got %d", simerr.ErrInvalidConfig, c.PopulationSize)
	case c.EliteCount < 0 || c.EliteCount > c.PopulationSize:
		return fmt.Errorf("%w: elite_count must be within [0, population_size]", simerr.ErrInvalidConfig)
	case c.MapWidth <= 0 || c.MapHeight <= 0:
		return fmt.Errorf("%w: map dimensions must be positive", simerr.ErrInvalidConfig)
	case c.AgentsPerTeam <= 0 || c.TeamCount <= 0:
		return fmt.Errorf("%w: agents_per_team and team_count must be positive", simerr.ErrInvalidConfig)
	case c.MaxTicks <= 0:
		return fmt.Errorf("%w: max_ticks must be positive", simerr.ErrInvalidConfig)
	}
	return c.Sim.Validate()
}

// EloConfig holds round-robin tournament tuning.
type EloConfig struct {
	InitialRating float64
	K             float64
	Denominator   float64
}

// DefaultEloConfig returns the standard Elo constants (K=32, denominator=400).
func DefaultEloConfig() EloConfig {
	return EloConfig{
		InitialRating: parameter.EloInitialRating,
		K:             parameter.EloK,
		Denominator:   parameter.EloDenominator,
	}
}
