package parameter

// Evolution - Population
const (
	EvoPopulationSize          = 32
	EvoEliteCount              = 4
	EvoTournamentSize          = 3
	EvoCrossoverMixProbability = 0.5
	EvoMaxGenerations          = 500
)

// Evolution - Mutation
const (
	EvoWeightPerturbRate     = 0.8
	EvoWeightPerturbStrength = 0.2
	EvoWeightResetRate       = 0.1
	EvoAddConnectionRate     = 0.05
	EvoAddNodeRate           = 0.03
	EvoDisableGeneRate       = 0.0 // genes are never force-disabled here
)

// Evolution - Map & Match
const (
	EvoMapWidth      = 1000.0
	EvoMapHeight     = 1000.0
	EvoAgentsPerTeam = 4
	EvoTeamCount     = 2
	EvoMaxTicks      = 2000
)

// Evolution - Hall of Fame & Fitness Weights
const (
	EvoHofSize                = 5
	EvoHofMatchRate           = 0.3
	EvoCompatibilityThreshold = 3.0
	EvoCrossoverRate          = 0.75

	EvoWeightHealth    = 1.0
	EvoWeightDamage    = 0.5
	EvoWeightKills     = 10.0
	EvoTimeBonusWeight = 0.01
)

// Evolution - Stagnation & Difficulty
const (
	// EvoStagnationWindow is the number of generations without a best-fitness
	// improvement before the stagnation-recovery path kicks in.
	EvoStagnationWindow = 15
	// EvoStagnationInjectionFraction is the share of the next population
	// replaced with fresh random genomes when stagnation triggers.
	EvoStagnationInjectionFraction = 0.25
	// EvoDifficultyRampGenerations sets the scan-range shrink per difficulty
	// level: each level multiplies ScanMaxDist by 1 - 1/N (0 leaves the scan
	// range unchanged).
	EvoDifficultyRampGenerations = 50
	// EvoMapVarCoefficient scales the per-quadrant random placement jitter
	// of the configured dimension on each axis.
	EvoMapVarCoefficient = 0.15
	// EvoMutationScale multiplies AddConnectionRate/AddNodeRate for the one
	// generation immediately following a stagnation trigger.
	EvoMutationScale = 3.0
	// EvoDifficultyInterval is the number of generations between difficulty
	// schedule checks (--difficulty_interval).
	EvoDifficultyInterval = 20
	// EvoDifficultyThreshold is the average fitness_naive a population must
	// clear for the difficulty schedule to advance a level.
	EvoDifficultyThreshold = 50.0
)
