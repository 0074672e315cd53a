package evolve

// applyDifficultySchedule advances the opponent-difficulty ramp: every
// Cfg.DifficultyInterval generations, if the population's average
// fitness_naive clears Cfg.DifficultyThreshold, the difficulty level
// increments and ScanMaxDist shrinks multiplicatively (a lower scan
// range gives evolved controllers less warning of approaching
// opponents).
func (p *Population) applyDifficultySchedule(avgFitnessNaive float64) {
	if p.Cfg.DifficultyInterval <= 0 {
		return
	}
	// Generation has not yet been incremented for the just-completed
	// generation when this runs, so +1 counts the generation finishing now.
	if (p.Generation+1)%p.Cfg.DifficultyInterval != 0 {
		return
	}
	if avgFitnessNaive <= p.Cfg.DifficultyThreshold {
		return
	}

	p.DifficultyLevel++
	shrinkPerLevel := 1.0
	if p.Cfg.DifficultyRampGenerations > 0 {
		shrinkPerLevel = 1.0 - 1.0/float64(p.Cfg.DifficultyRampGenerations)
	}
	p.ScanMaxDist *= shrinkPerLevel
}
