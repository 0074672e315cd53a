package neat

import (
	"math/rand/v2"
	"testing"
)

func TestEvaluatePureFunction(t *testing.T) {
	g := New(3, 2)
	rng := rand.New(rand.NewPCG(1, 2))
	g.RandomizeWeights(rng)

	in := []float64{0.5, -0.25, 0.1}
	out1, err := g.Evaluate(in)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	out2, err := g.Evaluate(in)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	for i := range out1 {
		if out1[i] != out2[i] {
			t.Errorf("Evaluate not pure: out1[%d]=%v out2[%d]=%v", i, out1[i], i, out2[i])
		}
	}
}

func TestEvaluateShapeMismatch(t *testing.T) {
	g := New(3, 2)
	_, err := g.Evaluate([]float64{1, 2})
	if err == nil {
		t.Fatal("expected ShapeMismatch error for wrong input length")
	}
}

func TestEvaluateBoundedByTanh(t *testing.T) {
	g := New(2, 2)
	rng := rand.New(rand.NewPCG(7, 7))
	g.RandomizeWeights(rng)
	out, err := g.Evaluate([]float64{10, -10})
	if err != nil {
		t.Fatal(err)
	}
	for _, v := range out {
		if v < -1 || v > 1 {
			t.Errorf("output %v outside tanh range", v)
		}
	}
}

func TestAddNodeSplitsConnectionAndRemainsEvaluable(t *testing.T) {
	g := New(2, 1)
	rng := rand.New(rand.NewPCG(3, 4))
	before := len(g.Conns)

	g.MutateAddNode(rng, 1.0) // force the mutation to fire

	if len(g.Conns) != before+2 {
		t.Fatalf("expected 2 new connections after add-node, got %d new (total %d)", len(g.Conns)-before, len(g.Conns))
	}
	disabledCount := 0
	for _, c := range g.Conns {
		if !c.Enabled {
			disabledCount++
		}
	}
	if disabledCount != 1 {
		t.Errorf("expected exactly 1 disabled connection, got %d", disabledCount)
	}

	if _, err := g.Evaluate([]float64{1, 1}); err != nil {
		t.Errorf("genome not evaluable after add-node: %v", err)
	}
}

func TestReachesDetectsExistingPath(t *testing.T) {
	g := New(1, 1)
	rng := rand.New(rand.NewPCG(5, 6))
	g.MutateAddNode(rng, 1.0) // input(0) -> hidden(h) -> output(1)

	var hiddenID int
	for _, nd := range g.Nodes {
		if nd.Kind == Hidden {
			hiddenID = nd.ID
		}
	}

	if !g.reaches(hiddenID, 1) {
		t.Error("expected hidden node to reach output via the split connection")
	}
	// an edge output(1) -> hidden would close a cycle through hidden -> output
	if !g.reaches(hiddenID, 1) {
		t.Fatal("precondition failed: hidden must reach output")
	}
}

func TestCrossoverChildHasNoForeignInnovation(t *testing.T) {
	rng := rand.New(rand.NewPCG(9, 10))
	p1 := New(2, 1)
	p2 := New(2, 1)
	p1.Fitness = 5
	p2.Fitness = 2
	p1.MutateAddNode(rand.New(rand.NewPCG(1, 1)), 1.0)

	child := Crossover(rng, p1, p2, 0.5)

	p1Innov := map[int]bool{}
	for _, c := range p1.Conns {
		p1Innov[c.Innovation] = true
	}
	p2Innov := map[int]bool{}
	for _, c := range p2.Conns {
		p2Innov[c.Innovation] = true
	}
	for _, c := range child.Conns {
		if !p1Innov[c.Innovation] && !p2Innov[c.Innovation] {
			t.Errorf("child connection innovation %d absent from both parents", c.Innovation)
		}
	}
}

func TestCrossoverPreservesFitterNodes(t *testing.T) {
	rng := rand.New(rand.NewPCG(11, 12))
	p1 := New(2, 1)
	p2 := New(2, 1)
	p1.MutateAddNode(rand.New(rand.NewPCG(2, 2)), 1.0)
	p1.Fitness = 10
	p2.Fitness = 1

	child := Crossover(rng, p1, p2, 0.5)
	if len(child.Nodes) != len(p1.Nodes) {
		t.Errorf("expected child to inherit fitter parent's node set (%d nodes), got %d", len(p1.Nodes), len(child.Nodes))
	}
}
