package neat

import (
	"fmt"
	"math"
	"sort"

	"github.com/lixenwraith/neat-arena/simerr"
)

// Evaluate runs one feed-forward pass: inputs are assigned to the genome's
// Input nodes in ascending ID order (the sensor vector must match that
// count exactly, or ErrShapeMismatch is returned). Hidden and output node
// values are tanh of the weighted sum over enabled incoming connections,
// with no bias term. Evaluation order is a topological sort over enabled
// connections rather than a literal ascending-ID pass: the derived
// ordering stays correct even after an add-node split inserts a high-ID
// hidden node between two low-ID ones, which an ID-ordered pass would not
// handle. Output values are returned in ascending output-node-ID order.
func (g *Genome) Evaluate(inputs []float64) ([]float64, error) {
	inputIDs := g.sortedInputIDs()
	if len(inputs) != len(inputIDs) {
		return nil, fmt.Errorf("%w: got %d inputs, genome declares %d", simerr.ErrShapeMismatch, len(inputs), len(inputIDs))
	}

	values := make(map[int]float64, len(g.Nodes))
	for i, id := range inputIDs {
		values[id] = inputs[i]
	}

	order, incoming := g.topologicalNonInputs()
	for _, id := range order {
		sum := 0.0
		for _, c := range incoming[id] {
			if !c.Enabled {
				continue
			}
			sum += c.Weight * values[c.In]
		}
		values[id] = math.Tanh(sum)
	}

	outIDs := g.OutputIDs()
	out := make([]float64, len(outIDs))
	for i, id := range outIDs {
		out[i] = values[id]
	}
	return out, nil
}

func (g *Genome) sortedInputIDs() []int {
	var ids []int
	for _, nd := range g.Nodes {
		if nd.Kind == Input {
			ids = append(ids, nd.ID)
		}
	}
	sort.Ints(ids)
	return ids
}

// topologicalNonInputs returns a valid evaluation order for every Hidden
// and Output node (Kahn's algorithm over enabled connections), along with
// each node's incoming connection list. Input nodes are excluded since
// they have no incoming edges to resolve (input nodes have no
// incoming enabled edge).
func (g *Genome) topologicalNonInputs() (order []int, incoming map[int][]Conn) {
	incoming = make(map[int][]Conn)
	indegree := make(map[int]int)
	nonInput := make(map[int]bool)

	for _, nd := range g.Nodes {
		if nd.Kind != Input {
			nonInput[nd.ID] = true
			indegree[nd.ID] = 0
		}
	}
	for _, c := range g.Conns {
		if !c.Enabled {
			continue
		}
		incoming[c.Out] = append(incoming[c.Out], c)
		if nonInput[c.Out] {
			indegree[c.Out]++
		}
	}

	// Only count edges whose source is itself a non-input node pending
	// evaluation; input-sourced edges are always ready.
	ready := make([]int, 0, len(nonInput))
	pendingDeps := make(map[int]int, len(nonInput))
	for id := range nonInput {
		deps := 0
		for _, c := range incoming[id] {
			if nonInput[c.In] {
				deps++
			}
		}
		pendingDeps[id] = deps
		if deps == 0 {
			ready = append(ready, id)
		}
	}
	sort.Ints(ready)

	resolved := make(map[int]bool, len(nonInput))
	for len(ready) > 0 {
		sort.Ints(ready)
		id := ready[0]
		ready = ready[1:]
		if resolved[id] {
			continue
		}
		resolved[id] = true
		order = append(order, id)

		for other := range nonInput {
			if resolved[other] {
				continue
			}
			dependsOnID := false
			for _, c := range incoming[other] {
				if c.In == id {
					dependsOnID = true
					break
				}
			}
			if !dependsOnID {
				continue
			}
			pendingDeps[other]--
			if pendingDeps[other] == 0 {
				ready = append(ready, other)
			}
		}
	}

	return order, incoming
}
