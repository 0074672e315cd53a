// Package evolve drives the generational training loop: parallel fitness
// evaluation by match play, hall-of-fame elitism, tournament selection,
// NEAT crossover/mutation, stagnation recovery, and the difficulty
// schedule. Specialized to *neat.Genome rather than a generic solution
// type, since reproduction here needs NEAT-specific crossover and
// structural mutation.
package evolve

import (
	"math/rand/v2"

	"github.com/lixenwraith/neat-arena/config"
	"github.com/lixenwraith/neat-arena/neat"
	"github.com/lixenwraith/neat-arena/simsensor"
)

// Population owns one trainer's full evolutionary state: the current
// generation's genomes, the hall of fame, and the difficulty/stagnation
// bookkeeping that persists across generations.
type Population struct {
	Cfg config.EvoConfig

	Genomes    []*neat.Genome
	HallOfFame []*neat.Genome
	Generation int

	NumInputs  int
	NumOutputs int

	rng *rand.Rand

	// DifficultyLevel and ScanMaxDist carry the difficulty schedule: every
	// DifficultyInterval generations, if the average naive-opponent
	// fitness clears a threshold, the level increments and ScanMaxDist
	// shrinks.
	DifficultyLevel int
	ScanMaxDist     float64

	bestFitnessEver float64
	stagnantSince   int
}

// NewPopulation builds an untrained population of cfg.PopulationSize
// genomes, each a minimal fully-connected Input->Output topology with
// random weights in [-1,1]. Input count is derived from
// the sensor vector length for cfg.Sim; output count is fixed at
// neat.OutputCount.
func NewPopulation(cfg config.EvoConfig, seed1, seed2 uint64) *Population {
	numInputs := simsensor.Length(cfg.Sim)
	numOutputs := neat.OutputCount

	p := &Population{
		Cfg:         cfg,
		NumInputs:   numInputs,
		NumOutputs:  numOutputs,
		rng:         rand.New(rand.NewPCG(seed1, seed2)),
		ScanMaxDist: cfg.Sim.ScanMaxDist,
	}

	p.Genomes = make([]*neat.Genome, cfg.PopulationSize)
	for i := range p.Genomes {
		p.Genomes[i] = p.freshGenome()
	}
	return p
}

// freshGenome builds one minimal genome with randomized weights, using the
// population's own RNG so a fixed seed1/seed2 pair reproduces an entire
// run.
func (p *Population) freshGenome() *neat.Genome {
	g := neat.New(p.NumInputs, p.NumOutputs)
	g.RandomizeWeights(p.rng)
	return g
}

// workerRNG derives a fresh, independent RNG for one parallel worker from
// the population's master RNG. Per-worker outcomes are deterministic for
// a fixed master seed; the order in which workers complete is not.
func (p *Population) workerRNG() *rand.Rand {
	return rand.New(rand.NewPCG(p.rng.Uint64(), p.rng.Uint64()))
}

// effectiveSimConfig returns the SimConfig a generation's matches should
// run with: the configured baseline, overridden by the difficulty
// schedule's current ScanMaxDist.
func (p *Population) effectiveSimConfig() config.SimConfig {
	sim := p.Cfg.Sim
	sim.ScanMaxDist = p.ScanMaxDist
	sim.DifficultyLevel = p.DifficultyLevel
	return sim
}

// matchConfig returns the EvoConfig one generation's matches should run
// with: the difficulty-adjusted SimConfig plus, when MapVarCoefficient is
// set, map dimensions jittered once for the whole generation.
func (p *Population) matchConfig() config.EvoConfig {
	cfg := p.Cfg
	cfg.Sim = p.effectiveSimConfig()
	cfg.MapWidth, cfg.MapHeight = jitteredMapSize(p.rng, p.Cfg)
	return cfg
}
