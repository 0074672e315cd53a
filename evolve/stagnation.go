package evolve

// recordBest tracks the best-ever fitness across generations and reports
// whether the population has gone Cfg.StagnationWindow consecutive
// generations without improving it. Purely sequential bookkeeping
// between generations, never evaluated mid-match.
func (p *Population) recordBest(best float64) bool {
	improved := p.Generation == 0 || best > p.bestFitnessEver
	if improved {
		p.bestFitnessEver = best
		p.stagnantSince = 0
		return false
	}
	p.stagnantSince++
	return p.Cfg.StagnationWindow > 0 && p.stagnantSince >= p.Cfg.StagnationWindow
}
