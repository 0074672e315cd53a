// Package elo ranks trained champions (and optionally the naive
// controller) by playing every unordered pair once and applying standard
// Elo updates to the outcomes.
package elo

import (
	"fmt"
	"math"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/neat-arena/config"
	"github.com/lixenwraith/neat-arena/match"
	"github.com/lixenwraith/neat-arena/naive"
	"github.com/lixenwraith/neat-arena/neat"
	"github.com/lixenwraith/neat-arena/simcontrol"
	"github.com/lixenwraith/neat-arena/simerr"
)

// Participant is one tournament entrant. A nil Genome enters the naive
// rule-based controller instead of a trained one.
type Participant struct {
	Name   string
	Genome *neat.Genome
}

// Rating is a participant's final standing.
type Rating struct {
	Name   string  `json:"path"`
	Rating float64 `json:"elo"`
	Wins   int     `json:"wins"`
	Losses int     `json:"losses"`
}

// outcome is one finished pairing: participant i beat (or lost to) j.
type outcome struct {
	i, j int
	winI bool
}

// Run plays all unordered pairs (i, j) with i < j, one duel each, in
// parallel across at most workers goroutines, then applies the Elo
// updates sequentially in pair order. Winning means the subject team
// still has living health when the match ends. Returns ratings sorted
// descending.
func Run(evoCfg config.EvoConfig, eloCfg config.EloConfig, participants []Participant, workers int) ([]Rating, error) {
	if len(participants) < 2 {
		return nil, fmt.Errorf("%w: got %d", simerr.ErrNoParticipants, len(participants))
	}

	// Tournaments are always 1v1 duels regardless of the training
	// scenario's team layout.
	cfg := evoCfg
	cfg.TeamCount = 2
	cfg.AgentsPerTeam = 1

	var pairs []outcome
	for i := 0; i < len(participants); i++ {
		for j := i + 1; j < len(participants); j++ {
			pairs = append(pairs, outcome{i: i, j: j})
		}
	}

	if workers < 1 {
		workers = 1
	}
	var g errgroup.Group
	g.SetLimit(workers)
	for p := range pairs {
		p := p
		g.Go(func() error {
			pair := &pairs[p]
			stats := match.Run(cfg, []match.Participant{
				{Controller: controllerFor(participants[pair.i], cfg.Sim), Team: 0},
				{Controller: controllerFor(participants[pair.j], cfg.Sim), Team: 1},
			}, nil, cfg.EarlyExit)
			pair.winI = stats.SubjectTeamHealth > 0
			return nil
		})
	}
	_ = g.Wait()

	ratings := make([]Rating, len(participants))
	for i, p := range participants {
		ratings[i] = Rating{Name: p.Name, Rating: eloCfg.InitialRating}
	}
	for _, o := range pairs {
		applyUpdate(&ratings[o.i], &ratings[o.j], o.winI, eloCfg)
	}

	sort.SliceStable(ratings, func(a, b int) bool {
		return ratings[a].Rating > ratings[b].Rating
	})
	return ratings, nil
}

func controllerFor(p Participant, sim config.SimConfig) simcontrol.Controller {
	if p.Genome == nil {
		return naive.New(sim)
	}
	return neat.NewController(p.Genome.Clone(), sim)
}

// applyUpdate performs one pairwise Elo update with the configured
// K-factor: R_i += K*(S_i - E_i) where E_i = 1/(1+10^((R_j-R_i)/D)).
func applyUpdate(ri, rj *Rating, winI bool, cfg config.EloConfig) {
	expectedI := 1.0 / (1.0 + math.Pow(10, (rj.Rating-ri.Rating)/cfg.Denominator))
	expectedJ := 1.0 / (1.0 + math.Pow(10, (ri.Rating-rj.Rating)/cfg.Denominator))

	scoreI, scoreJ := 0.0, 1.0
	if winI {
		scoreI, scoreJ = 1.0, 0.0
		ri.Wins++
		rj.Losses++
	} else {
		rj.Wins++
		ri.Losses++
	}

	ri.Rating += cfg.K * (scoreI - expectedI)
	rj.Rating += cfg.K * (scoreJ - expectedJ)
}
