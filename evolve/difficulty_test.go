package evolve

import "testing"

func TestApplyDifficultySchedule_AdvancesOnThresholdClear(t *testing.T) {
	cfg := testEvoConfig()
	cfg.DifficultyInterval = 1
	cfg.DifficultyThreshold = 50
	cfg.DifficultyRampGenerations = 4
	p := NewPopulation(cfg, 1, 1)
	baseline := p.ScanMaxDist

	p.applyDifficultySchedule(51)

	if p.DifficultyLevel != 1 {
		t.Errorf("expected difficulty level 1, got %d", p.DifficultyLevel)
	}
	if p.ScanMaxDist >= baseline {
		t.Errorf("expected ScanMaxDist to shrink below %v, got %v", baseline, p.ScanMaxDist)
	}
}

func TestApplyDifficultySchedule_NoAdvanceBelowThreshold(t *testing.T) {
	cfg := testEvoConfig()
	cfg.DifficultyInterval = 1
	cfg.DifficultyThreshold = 50
	p := NewPopulation(cfg, 1, 1)
	baseline := p.ScanMaxDist

	p.applyDifficultySchedule(10)

	if p.DifficultyLevel != 0 {
		t.Errorf("expected difficulty level to stay 0, got %d", p.DifficultyLevel)
	}
	if p.ScanMaxDist != baseline {
		t.Errorf("expected ScanMaxDist unchanged, got %v want %v", p.ScanMaxDist, baseline)
	}
}

func TestApplyDifficultySchedule_OnlyChecksOnIntervalBoundary(t *testing.T) {
	cfg := testEvoConfig()
	cfg.DifficultyInterval = 5
	cfg.DifficultyThreshold = 0
	p := NewPopulation(cfg, 1, 1)
	p.Generation = 1 // Generation+1 == 2, not a multiple of 5

	p.applyDifficultySchedule(1000)

	if p.DifficultyLevel != 0 {
		t.Errorf("expected no advance off the interval boundary, got level %d", p.DifficultyLevel)
	}
}

func TestApplyDifficultySchedule_DisabledWhenIntervalZero(t *testing.T) {
	cfg := testEvoConfig()
	cfg.DifficultyInterval = 0
	p := NewPopulation(cfg, 1, 1)

	p.applyDifficultySchedule(1e9)

	if p.DifficultyLevel != 0 {
		t.Errorf("expected difficulty schedule disabled when interval is 0")
	}
}
