package tracking

// MatchCollector accumulates the subject team's health and living-agent
// count across one match's ticks. It tracks exactly what the rollup
// reports: running sum and extrema of health, peak and final alive
// counts. The zero value is ready to use; Reset makes an instance
// reusable across matches.
type MatchCollector struct {
	ticks      int
	healthSum  float64
	healthMin  float64
	healthMax  float64
	peakAlive  int
	finalAlive int
}

// Observe records one tick's subject-team health and living-agent count.
func (c *MatchCollector) Observe(health float64, alive int) {
	if c.ticks == 0 || health < c.healthMin {
		c.healthMin = health
	}
	if health > c.healthMax {
		c.healthMax = health
	}
	c.healthSum += health
	c.ticks++

	c.finalAlive = alive
	if alive > c.peakAlive {
		c.peakAlive = alive
	}
}

// Rollup summarizes the observed ticks plus the match's final kill count.
// The survival ratio compares the team's final headcount against its peak,
// so a team that never lost a ship scores 1 regardless of size.
func (c *MatchCollector) Rollup(kills int) MetricBundle {
	b := MetricBundle{
		MetricTicks:      float64(c.ticks),
		MetricKills:      float64(kills),
		MetricPeakAlive:  float64(c.peakAlive),
		MetricFinalAlive: float64(c.finalAlive),
	}
	if c.ticks > 0 {
		b[MetricAvgHealth] = c.healthSum / float64(c.ticks)
		b[MetricMinHealth] = c.healthMin
		b[MetricMaxHealth] = c.healthMax
	}
	if c.peakAlive > 0 {
		b[MetricSurvivalRatio] = float64(c.finalAlive) / float64(c.peakAlive)
	}
	return b
}

// Reset clears the collector for reuse.
func (c *MatchCollector) Reset() {
	*c = MatchCollector{}
}
