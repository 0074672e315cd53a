// Package genetic holds the generic population vocabulary shared by the
// trainer's support packages: a scored candidate, a pool of candidates,
// and the numeric constraint on scores. The NEAT-specific operators live
// in the neat and evolve packages; this layer exists so persistence and
// reporting can handle populations without importing either.
package genetic

// Solution is any type usable as a candidate's encoded data.
type Solution any

// Numeric constrains score types to numeric values.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Candidate pairs an encoded solution with its evaluated quality score.
type Candidate[S Solution, F Numeric] struct {
	Data S
	// Score is the candidate's fitness; higher is better.
	Score F
	// Metadata carries optional annotations (source generation, match ids).
	Metadata map[string]any
}

// Pool is one generation's working set of candidates.
type Pool[S Solution, F Numeric] struct {
	Members    []Candidate[S, F]
	Generation int
	Stats      PoolStats[F]
}

// PoolStats summarizes a pool's score distribution.
type PoolStats[F Numeric] struct {
	BestScore    F
	WorstScore   F
	AverageScore F
}

// ComputeStats refreshes Stats from the current members.
func (p *Pool[S, F]) ComputeStats() {
	if len(p.Members) == 0 {
		p.Stats = PoolStats[F]{}
		return
	}
	best, worst := p.Members[0].Score, p.Members[0].Score
	var sum float64
	for _, m := range p.Members {
		if m.Score > best {
			best = m.Score
		}
		if m.Score < worst {
			worst = m.Score
		}
		sum += float64(m.Score)
	}
	p.Stats = PoolStats[F]{
		BestScore:    best,
		WorstScore:   worst,
		AverageScore: F(sum / float64(len(p.Members))),
	}
}
