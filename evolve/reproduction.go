package evolve

import (
	"sort"

	"github.com/lixenwraith/neat-arena/neat"
)

// reproduce builds the next generation: sort
// descending, snapshot the hall of fame, copy it forward unchanged
// (elitism), and fill the remainder via k-tournament selection,
// crossover, and mutation. When stagnant is set, mutation rates for this
// one generation are scaled by Cfg.MutationScale and the worst
// StagnationInjectionFraction share of the filled slots are replaced with
// fresh minimal genomes instead of offspring.
func (p *Population) reproduce(stagnant bool) []*neat.Genome {
	sort.SliceStable(p.Genomes, func(i, j int) bool {
		return p.Genomes[i].Fitness > p.Genomes[j].Fitness
	})

	hofSize := p.Cfg.HofSize
	if hofSize > len(p.Genomes) {
		hofSize = len(p.Genomes)
	}
	hof := make([]*neat.Genome, hofSize)
	for i := range hof {
		hof[i] = p.Genomes[i].Clone()
	}
	p.HallOfFame = hof

	addConnRate := p.Cfg.AddConnectionRate
	addNodeRate := p.Cfg.AddNodeRate
	if stagnant {
		addConnRate *= p.Cfg.MutationScale
		addNodeRate *= p.Cfg.MutationScale
	}

	target := len(p.Genomes)
	next := make([]*neat.Genome, 0, target)
	for _, g := range hof {
		next = append(next, g.Clone())
	}

	injectCount := 0
	if stagnant {
		injectCount = int(float64(target) * p.Cfg.StagnationInjectionFraction)
	}

	for len(next) < target {
		if injectCount > 0 {
			next = append(next, p.freshGenome())
			injectCount--
			continue
		}

		parent1 := p.tournamentSelect()
		var child *neat.Genome
		if p.rng.Float64() < p.Cfg.CrossoverRate {
			parent2 := p.tournamentSelect()
			child = neat.Crossover(p.rng, parent1, parent2, p.Cfg.CrossoverMixProbability)
		} else {
			child = parent1.Clone()
			child.Fitness = 0
		}

		child.MutateWeights(p.rng, p.Cfg.WeightPerturbRate, p.Cfg.WeightPerturbStrength, p.Cfg.WeightResetRate)
		child.MutateAddConnection(p.rng, addConnRate)
		child.MutateAddNode(p.rng, addNodeRate)
		next = append(next, child)
	}

	return next
}

// tournamentSelect draws Cfg.TournamentSize candidates uniformly at
// random (with replacement) and returns the fittest.
func (p *Population) tournamentSelect() *neat.Genome {
	k := p.Cfg.TournamentSize
	if k < 1 {
		k = 1
	}
	best := p.Genomes[p.rng.IntN(len(p.Genomes))]
	for i := 1; i < k; i++ {
		cand := p.Genomes[p.rng.IntN(len(p.Genomes))]
		if cand.Fitness > best.Fitness {
			best = cand
		}
	}
	return best
}
