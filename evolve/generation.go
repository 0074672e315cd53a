package evolve

import (
	"math/rand/v2"
	"runtime"
	"sync"

	channerics "github.com/niceyeti/channerics/channels"
	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/neat-arena/config"
	"github.com/lixenwraith/neat-arena/genetic/fitness"
	"github.com/lixenwraith/neat-arena/match"
	"github.com/lixenwraith/neat-arena/naive"
	"github.com/lixenwraith/neat-arena/neat"
)

// Report summarizes one completed generation for the snapshot sink and CLI
// output; cmd/arena's train loop builds the snapshot metadata envelope
// from it.
type Report struct {
	Generation      int
	BestFitness     float64
	AverageFitness  float64
	AverageNaive    float64
	Champion        *neat.Genome
	HallOfFame      []*neat.Genome
	Stagnant        bool
	DifficultyLevel int
	ScanMaxDist     float64
}

// fitnessCredit is one genome index's fitness contribution from a single
// match, fanned in from a worker channel by runTeamGeneration.
type fitnessCredit struct {
	index   int
	fitness float64
}

// numWorkers bounds parallel match evaluation to the available cores
// minus one, floored at 1.
func numWorkers() int {
	n := runtime.GOMAXPROCS(0) - 1
	if n < 1 {
		n = 1
	}
	return n
}

// RunGeneration advances the population by exactly one generation:
// evaluate fitness in parallel, record the best fitness for stagnation
// tracking, sort, rebuild the hall of fame and reproduce, then apply the
// difficulty schedule. It
// returns a Report describing the generation just completed; the caller
// (cmd/arena's train loop) is responsible for snapshotting it and
// checking wall-clock/generation-cap termination between calls, never
// mid-generation.
func (p *Population) RunGeneration() Report {
	for _, g := range p.Genomes {
		g.Fitness = 0
		g.FitnessNaive = 0
	}

	snapshot := make([]*neat.Genome, len(p.Genomes))
	copy(snapshot, p.Genomes)

	fitnessFn := match.ResolveFitness(p.Cfg.FitnessFn, p.Cfg.WHealth, p.Cfg.WDamage, p.Cfg.WKills, p.Cfg.TimeBonusWeight, p.Cfg.MaxTicks)
	matchCfg := p.matchConfig()

	var avgNaive float64
	if p.Cfg.AgentsPerTeam > 1 {
		credits := p.runTeamGeneration(snapshot, fitnessFn, matchCfg)
		for idx, f := range credits {
			p.Genomes[idx].Fitness = f
		}
	} else {
		fit, fitNaive := p.runOneVOneGeneration(snapshot, fitnessFn, matchCfg)
		sumNaive := 0.0
		for idx, f := range fit {
			p.Genomes[idx].Fitness = f
		}
		for idx, f := range fitNaive {
			p.Genomes[idx].FitnessNaive = f
			sumNaive += f
		}
		if len(fitNaive) > 0 {
			avgNaive = sumNaive / float64(len(fitNaive))
		}
	}

	bestFitness, avgFitness, champion := p.summarize()
	stagnant := p.recordBest(bestFitness)

	p.Genomes = p.reproduce(stagnant)
	p.applyDifficultySchedule(avgNaive)
	p.Generation++

	return Report{
		Generation:      p.Generation - 1,
		BestFitness:     bestFitness,
		AverageFitness:  avgFitness,
		AverageNaive:    avgNaive,
		Champion:        champion,
		HallOfFame:      p.HallOfFame,
		Stagnant:        stagnant,
		DifficultyLevel: p.DifficultyLevel,
		ScanMaxDist:     p.ScanMaxDist,
	}
}

func (p *Population) summarize() (best, avg float64, champion *neat.Genome) {
	sum := 0.0
	for _, g := range p.Genomes {
		sum += g.Fitness
		if champion == nil || g.Fitness > best {
			best = g.Fitness
			champion = g
		}
	}
	if len(p.Genomes) > 0 {
		avg = sum / float64(len(p.Genomes))
	}
	return best, avg, champion
}

// runTeamGeneration evaluates team-mode fitness: pop_size*tournament_k matches
// run in parallel, each sampling team_size*num_teams distinct genomes,
// forming num_teams teams and rotating every team through the subject
// role once. Workers push their per-match credits onto their own channel;
// channerics.Merge fans them into a single reducer goroutine so fitness
// accumulation never needs a lock.
func (p *Population) runTeamGeneration(snapshot []*neat.Genome, fitnessFn fitness.Function, matchCfg config.EvoConfig) map[int]float64 {
	teamSize := p.Cfg.AgentsPerTeam
	numTeams := p.Cfg.TeamCount
	hof := p.HallOfFame
	totalMatches := p.Cfg.PopulationSize * p.Cfg.TournamentSize
	numSamples := totalMatches / numTeams
	if numSamples < 1 {
		numSamples = 1
	}

	workers := numWorkers()
	if workers > numSamples {
		workers = numSamples
	}
	share := numSamples / workers
	remainder := numSamples % workers

	done := make(chan struct{})
	defer close(done)

	channels := make([]<-chan []fitnessCredit, 0, workers)
	for w := 0; w < workers; w++ {
		n := share
		if w < remainder {
			n++
		}
		workerRNG := p.workerRNG()
		ch := make(chan []fitnessCredit)
		go func(rng *rand.Rand, n int, out chan<- []fitnessCredit) {
			defer close(out)
			for i := 0; i < n; i++ {
				credits := runTeamSample(rng, matchCfg, teamSize, numTeams, snapshot, hof, fitnessFn)
				select {
				case out <- credits:
				case <-done:
					return
				}
			}
		}(workerRNG, n, ch)
		channels = append(channels, ch)
	}

	sums := make(map[int]float64)
	counts := make(map[int]int)
	for credits := range channerics.Merge(done, channels...) {
		for _, c := range credits {
			sums[c.index] += c.fitness
			counts[c.index]++
		}
	}

	result := make(map[int]float64, len(sums))
	for idx, sum := range sums {
		if n := counts[idx]; n > 0 {
			result[idx] = sum / float64(n)
		}
	}
	return result
}

// runTeamSample plays one sample's worth of matches: every team takes one
// turn as the subject team (each sampled lineup is scored once per team,
// with that team rotated into the subject role), crediting
// fitness/team_size to each subject-team member for that play. With
// probability cfg.HofMatchRate the last opposing team is drawn from the
// hall of fame instead of the population, keeping selection pressure
// anchored against past champions.
func runTeamSample(rng *rand.Rand, cfg config.EvoConfig, teamSize, numTeams int, snapshot, hof []*neat.Genome, fitnessFn fitness.Function) []fitnessCredit {
	sampled := sampleDistinct(rng, len(snapshot), teamSize*numTeams)
	teams := make([][]int, numTeams)
	for t := 0; t < numTeams; t++ {
		teams[t] = sampled[t*teamSize : (t+1)*teamSize]
	}

	credits := make([]fitnessCredit, 0, numTeams*teamSize)
	for subject := 0; subject < numTeams; subject++ {
		order := make([]int, 0, numTeams)
		order = append(order, subject)
		for t := 0; t < numTeams; t++ {
			if t != subject {
				order = append(order, t)
			}
		}

		hofTeam := -1
		if len(hof) > 0 && rng.Float64() < cfg.HofMatchRate {
			hofTeam = order[len(order)-1]
		}

		participants := make([]match.Participant, 0, teamSize*numTeams)
		teamPerSlot := make([]int, 0, teamSize*numTeams)
		for _, t := range order {
			for _, idx := range teams[t] {
				genome := snapshot[idx]
				if t == hofTeam {
					genome = hof[rng.IntN(len(hof))]
				}
				participants = append(participants, match.Participant{
					Controller: neat.NewController(genome, cfg.Sim),
					Team:       t,
				})
				teamPerSlot = append(teamPerSlot, t)
			}
		}

		positions := buildTeamPositions(rng, cfg, teamPerSlot)
		stats := match.Run(cfg, participants, positions, cfg.EarlyExit)
		score := match.Score(fitnessFn, stats) / float64(teamSize)

		for _, idx := range teams[subject] {
			credits = append(credits, fitnessCredit{index: idx, fitness: score})
		}
	}
	return credits
}

// runOneVOneGeneration evaluates duel-mode fitness: every genome plays every
// other genome once (credited fitness normalized by pop_size-1) plus one
// match against the naive controller (credited separately as
// fitness_naive). Bounded-concurrency via errgroup, one outer goroutine
// per subject genome.
func (p *Population) runOneVOneGeneration(snapshot []*neat.Genome, fitnessFn fitness.Function, matchCfg config.EvoConfig) (fit, fitNaive map[int]float64) {
	n := len(snapshot)
	fit = make(map[int]float64, n)
	fitNaive = make(map[int]float64, n)
	if n < 2 {
		return fit, fitNaive
	}

	rngs := make([]*rand.Rand, n)
	for i := range rngs {
		rngs[i] = p.workerRNG()
	}

	var mu sync.Mutex
	var g errgroup.Group
	g.SetLimit(numWorkers())

	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error {
			rng := rngs[i]
			sum := 0.0
			for j := 0; j < n; j++ {
				if j == i {
					continue
				}
				participants := []match.Participant{
					{Controller: neat.NewController(snapshot[i], matchCfg.Sim), Team: 0},
					{Controller: neat.NewController(snapshot[j], matchCfg.Sim), Team: 1},
				}
				positions := buildTeamPositions(rng, matchCfg, []int{0, 1})
				stats := match.Run(matchCfg, participants, positions, matchCfg.EarlyExit)
				sum += match.Score(fitnessFn, stats)
			}
			avg := sum / float64(n-1)

			naiveParticipants := []match.Participant{
				{Controller: neat.NewController(snapshot[i], matchCfg.Sim), Team: 0},
				{Controller: naive.New(matchCfg.Sim), Team: 1},
			}
			positions := buildTeamPositions(rng, matchCfg, []int{0, 1})
			stats := match.Run(matchCfg, naiveParticipants, positions, matchCfg.EarlyExit)
			naiveFitness := match.Score(fitnessFn, stats)

			mu.Lock()
			fit[i] = avg
			fitNaive[i] = naiveFitness
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()
	return fit, fitNaive
}
