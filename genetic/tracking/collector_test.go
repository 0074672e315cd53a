package tracking

import "testing"

func TestMatchCollector_Rollup(t *testing.T) {
	var c MatchCollector

	c.Observe(100, 4)
	c.Observe(80, 4)
	c.Observe(60, 2)

	b := c.Rollup(3)

	if b[MetricTicks] != 3 {
		t.Errorf("ticks = %v, want 3", b[MetricTicks])
	}
	if b[MetricAvgHealth] != 80 {
		t.Errorf("avg health = %v, want 80", b[MetricAvgHealth])
	}
	if b[MetricMinHealth] != 60 || b[MetricMaxHealth] != 100 {
		t.Errorf("health extrema = %v/%v, want 60/100", b[MetricMinHealth], b[MetricMaxHealth])
	}
	if b[MetricPeakAlive] != 4 || b[MetricFinalAlive] != 2 {
		t.Errorf("alive = peak %v final %v, want 4/2", b[MetricPeakAlive], b[MetricFinalAlive])
	}
	if b[MetricSurvivalRatio] != 0.5 {
		t.Errorf("survival ratio = %v, want 0.5", b[MetricSurvivalRatio])
	}
	if b[MetricKills] != 3 {
		t.Errorf("kills = %v, want 3", b[MetricKills])
	}
}

func TestMatchCollector_MinSeededByFirstObservation(t *testing.T) {
	var c MatchCollector

	// First observation seeds the minimum even when later values rise.
	c.Observe(10, 1)
	c.Observe(50, 1)

	b := c.Rollup(0)
	if b[MetricMinHealth] != 10 {
		t.Errorf("min health = %v, want 10", b[MetricMinHealth])
	}
	if b[MetricMaxHealth] != 50 {
		t.Errorf("max health = %v, want 50", b[MetricMaxHealth])
	}
}

func TestMatchCollector_EmptyRollup(t *testing.T) {
	var c MatchCollector

	b := c.Rollup(0)
	if b[MetricTicks] != 0 {
		t.Errorf("ticks = %v, want 0", b[MetricTicks])
	}
	if _, ok := b[MetricAvgHealth]; ok {
		t.Error("expected no average health for a zero-tick match")
	}
	if _, ok := b[MetricSurvivalRatio]; ok {
		t.Error("expected no survival ratio when nothing was observed")
	}
}

func TestMatchCollector_Reset(t *testing.T) {
	var c MatchCollector

	c.Observe(100, 2)
	c.Reset()
	c.Observe(40, 1)

	b := c.Rollup(0)
	if b[MetricTicks] != 1 {
		t.Errorf("ticks after reset = %v, want 1", b[MetricTicks])
	}
	if b[MetricAvgHealth] != 40 {
		t.Errorf("avg health after reset = %v, want 40", b[MetricAvgHealth])
	}
	if b[MetricPeakAlive] != 1 {
		t.Errorf("peak alive after reset = %v, want 1", b[MetricPeakAlive])
	}
}
