package neat

import "math/rand/v2"

// Crossover combines two parent genomes into a child:
//   - the fitter parent wins ties (P1 wins a fitness tie)
//   - nodes are unioned; the fitter parent's node wins an id conflict
//   - connections are aligned by (in, out) endpoint identity
//     rather than raw innovation number, since each genome keeps its own
//     local innovation counter (see Genome.addConn) and two independently
//     mutated genomes' counters do not refer to the same structural
//     change. Endpoint identity recovers the alignment a shared global
//     innovation counter would have given "for free", without inventing
//     one.
//   - matching connections are copied from the weaker parent with
//     probability mixProb (keeping the fitter parent's innovation number),
//     otherwise from the fitter; connections unique
//     to the fitter parent are copied; connections unique to the weaker
//     parent are discarded
//   - the child's fitness starts at 0
func Crossover(rng *rand.Rand, p1, p2 *Genome, mixProb float64) *Genome {
	fitter, weaker := p1, p2
	if p2.Fitness > p1.Fitness {
		fitter, weaker = p2, p1
	}

	child := &Genome{}

	nodeByID := make(map[int]Node)
	for _, nd := range weaker.Nodes {
		nodeByID[nd.ID] = nd
	}
	for _, nd := range fitter.Nodes {
		nodeByID[nd.ID] = nd // fitter wins id conflicts
	}
	for id := range nodeByID {
		child.Nodes = append(child.Nodes, nodeByID[id])
	}
	sortNodesByID(child.Nodes)

	weakerByEndpoint := make(map[[2]int]Conn, len(weaker.Conns))
	for _, c := range weaker.Conns {
		weakerByEndpoint[[2]int{c.In, c.Out}] = c
	}

	maxInnovation := -1
	for _, fc := range fitter.Conns {
		key := [2]int{fc.In, fc.Out}
		chosen := fc
		if wc, ok := weakerByEndpoint[key]; ok && rng.Float64() < mixProb {
			chosen = wc
			chosen.Innovation = fc.Innovation
		}
		child.Conns = append(child.Conns, chosen)
		if chosen.Innovation > maxInnovation {
			maxInnovation = chosen.Innovation
		}
	}

	child.nextInnovation = maxInnovation + 1
	child.Fitness = 0
	return child
}

func sortNodesByID(nodes []Node) {
	for i := 1; i < len(nodes); i++ {
		for j := i; j > 0 && nodes[j].ID < nodes[j-1].ID; j-- {
			nodes[j], nodes[j-1] = nodes[j-1], nodes[j]
		}
	}
}
