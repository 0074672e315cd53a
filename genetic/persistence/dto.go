package persistence

import "github.com/lixenwraith/neat-arena/genetic"

// PopulationDTO is the serializable form of a genetic.Pool. It is generic
// over the solution type S so the same checkpoint shape serves both a
// flat numeric genotype and a graph-structured one (for example
// *neat.Genome) without persistence knowing anything about either.
type PopulationDTO[S genetic.Solution] struct {
	Generation int               `yaml:"generation"`
	Candidates []CandidateDTO[S] `yaml:"candidates"`
}

// CandidateDTO is a serializable candidate. Score is always stored as
// float64 regardless of the pool's fitness type; Numeric types convert to
// it losslessly for any size the trainer cares about.
type CandidateDTO[S genetic.Solution] struct {
	Data  S       `yaml:"data"`
	Score float64 `yaml:"score"`
}

// FromPool converts an engine pool to its DTO form for serialization.
func FromPool[S genetic.Solution, F genetic.Numeric](pool *genetic.Pool[S, F]) PopulationDTO[S] {
	if pool == nil {
		return PopulationDTO[S]{}
	}

	dto := PopulationDTO[S]{
		Generation: pool.Generation,
		Candidates: make([]CandidateDTO[S], len(pool.Members)),
	}

	for i, m := range pool.Members {
		dto.Candidates[i] = CandidateDTO[S]{
			Data:  m.Data,
			Score: float64(m.Score),
		}
	}

	return dto
}

// ToPool converts a DTO back to candidates for injection into a fresh
// pool. F is not recoverable from the DTO (scores are always stored as
// float64) so callers instantiate it explicitly, e.g.
// persistence.ToPool[*neat.Genome, float64](dto).
func ToPool[S genetic.Solution, F genetic.Numeric](dto PopulationDTO[S]) []genetic.Candidate[S, F] {
	candidates := make([]genetic.Candidate[S, F], len(dto.Candidates))

	for i, c := range dto.Candidates {
		candidates[i] = genetic.Candidate[S, F]{
			Data:     c.Data,
			Score:    F(c.Score),
			Metadata: make(map[string]any),
		}
	}

	return candidates
}
