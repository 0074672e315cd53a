package evolve

import "testing"

func TestRecordBest_FirstGenerationNeverStagnant(t *testing.T) {
	p := NewPopulation(testEvoConfig(), 1, 1)
	if stagnant := p.recordBest(10); stagnant {
		t.Errorf("expected the first generation's recordBest to never report stagnation")
	}
}

func TestRecordBest_TripsAfterWindow(t *testing.T) {
	cfg := testEvoConfig()
	cfg.StagnationWindow = 3
	p := NewPopulation(cfg, 1, 1)

	p.Generation = 1
	p.recordBest(10) // establishes a baseline of 10, not stagnant
	if p.recordBest(5) {
		t.Errorf("expected no stagnation after 1 non-improving generation")
	}
	if p.recordBest(5) {
		t.Errorf("expected no stagnation after 2 non-improving generations")
	}
	if !p.recordBest(5) {
		t.Errorf("expected stagnation after reaching the stagnation window")
	}
}

func TestRecordBest_ImprovementResetsCounter(t *testing.T) {
	cfg := testEvoConfig()
	cfg.StagnationWindow = 2
	p := NewPopulation(cfg, 1, 1)

	p.Generation = 1
	p.recordBest(10)
	p.recordBest(5) // one non-improving generation
	if p.recordBest(15) {
		t.Errorf("expected an improving generation to never itself report stagnation")
	}
	if p.recordBest(5) {
		t.Errorf("expected the stagnation counter to have reset after the improvement")
	}
}

func TestRecordBest_DisabledWhenWindowZero(t *testing.T) {
	cfg := testEvoConfig()
	cfg.StagnationWindow = 0
	p := NewPopulation(cfg, 1, 1)

	p.Generation = 1
	p.recordBest(10)
	for i := 0; i < 10; i++ {
		if p.recordBest(5) {
			t.Fatalf("expected stagnation to never trigger when StagnationWindow is 0")
		}
	}
}
