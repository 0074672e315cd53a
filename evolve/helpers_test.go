package evolve

import "github.com/lixenwraith/neat-arena/config"

// testEvoConfig returns a small, fast configuration suitable for exercising
// one or two generations in a unit test: a handful of genomes, short
// matches, and a tiny map.
func testEvoConfig() config.EvoConfig {
	cfg := config.DefaultEvoConfig()
	cfg.PopulationSize = 8
	cfg.TournamentSize = 3
	cfg.HofSize = 2
	cfg.MaxTicks = 20
	cfg.MapWidth = 200
	cfg.MapHeight = 200
	cfg.AgentsPerTeam = 1
	cfg.TeamCount = 2
	cfg.StagnationWindow = 3
	cfg.DifficultyInterval = 2
	cfg.MapVarCoefficient = 0
	return cfg
}

func testTeamEvoConfig() config.EvoConfig {
	cfg := testEvoConfig()
	cfg.AgentsPerTeam = 2
	cfg.TeamCount = 2
	cfg.PopulationSize = 12
	return cfg
}
