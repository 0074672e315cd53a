package evolve

import (
	"math/rand/v2"

	"github.com/lixenwraith/neat-arena/config"
	"github.com/lixenwraith/neat-arena/geom"
	"github.com/lixenwraith/neat-arena/world"
)

// sampleDistinct draws n distinct indices in [0, poolSize) using rng.Perm.
func sampleDistinct(rng *rand.Rand, poolSize, n int) []int {
	if n > poolSize {
		n = poolSize
	}
	return rng.Perm(poolSize)[:n]
}

// buildTeamPositions places every participant by its team's quadrant
// (team index mod 4), jittered by the evolution config's map-variance
// coefficient, so opposing teams start in separate corners of the map.
func buildTeamPositions(rng *rand.Rand, cfg config.EvoConfig, teams []int) []geom.Vec2 {
	positions := make([]geom.Vec2, len(teams))
	for i, team := range teams {
		positions[i] = world.QuadrantPlace(rng, team, cfg.MapWidth, cfg.MapHeight, cfg.MapVarCoefficient)
	}
	return positions
}

// jitteredMapSize applies the map_var scenario randomization: when
// MapVarCoefficient > 0, width/height vary by up to +/- that fraction of
// the configured dimension for this generation's matches.
func jitteredMapSize(rng *rand.Rand, cfg config.EvoConfig) (width, height float64) {
	if cfg.MapVarCoefficient <= 0 {
		return cfg.MapWidth, cfg.MapHeight
	}
	width = cfg.MapWidth * (1 + cfg.MapVarCoefficient*(rng.Float64()*2-1))
	height = cfg.MapHeight * (1 + cfg.MapVarCoefficient*(rng.Float64()*2-1))
	return width, height
}
