package neat

import "math/rand/v2"

// maxAddConnectionAttempts bounds the random-pair search for add-connection,
// trying up to 100 random node pairs before giving up.
const maxAddConnectionAttempts = 100

// MutateAddConnection attempts, with probability rate, to insert one new
// connection gene between a random non-Output source and non-Input
// destination that are not already connected. A reachability check from
// the destination back to the source rejects any pair that would close a
// cycle (reject edges that would require a backward
// path), which also keeps the topology layerable for Evaluate.
func (g *Genome) MutateAddConnection(rng *rand.Rand, rate float64) {
	if rng.Float64() >= rate {
		return
	}
	for attempt := 0; attempt < maxAddConnectionAttempts; attempt++ {
		a := g.Nodes[rng.IntN(len(g.Nodes))]
		b := g.Nodes[rng.IntN(len(g.Nodes))]
		if a.Kind == Output || b.Kind == Input || a.ID == b.ID {
			continue
		}
		if g.hasConn(a.ID, b.ID) {
			continue
		}
		if g.reaches(b.ID, a.ID) {
			continue // would close a cycle
		}
		weight := rng.Float64()*2 - 1
		g.addConn(a.ID, b.ID, weight)
		return
	}
}

// reaches reports whether from can reach to by following enabled
// connections forward.
func (g *Genome) reaches(from, to int) bool {
	if from == to {
		return true
	}
	visited := map[int]bool{from: true}
	stack := []int{from}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, c := range g.Conns {
			if !c.Enabled || c.In != cur || visited[c.Out] {
				continue
			}
			if c.Out == to {
				return true
			}
			visited[c.Out] = true
			stack = append(stack, c.Out)
		}
	}
	return false
}

// MutateAddNode attempts, with probability rate, to split one random
// enabled connection a->b (weight w) into a->h->b through a fresh Hidden
// node h: the original connection is disabled, a->h is added with weight
// 1.0, and h->b is added with weight w, each with a fresh innovation
// number.
func (g *Genome) MutateAddNode(rng *rand.Rand, rate float64) {
	if rng.Float64() >= rate {
		return
	}
	enabled := make([]int, 0, len(g.Conns))
	for i, c := range g.Conns {
		if c.Enabled {
			enabled = append(enabled, i)
		}
	}
	if len(enabled) == 0 {
		return
	}
	idx := enabled[rng.IntN(len(enabled))]
	c := g.Conns[idx]
	g.Conns[idx].Enabled = false

	h := g.nextNodeID()
	g.Nodes = append(g.Nodes, Node{ID: h, Kind: Hidden})
	g.addConn(c.In, h, 1.0)
	g.addConn(h, c.Out, c.Weight)
}

// MutateWeights walks every connection, enabled or not: with probability
// perturbRate it nudges the weight by a uniform value in
// [-strength, strength]; then with probability resetRate it draws a
// fresh weight in [-1, 1]. The two rolls are independent per connection,
// matching a standard NEAT weight-mutation pass.
func (g *Genome) MutateWeights(rng *rand.Rand, perturbRate, strength, resetRate float64) {
	for i := range g.Conns {
		if rng.Float64() < perturbRate {
			delta := (rng.Float64()*2 - 1) * strength
			g.Conns[i].Weight += delta
		}
		if rng.Float64() < resetRate {
			g.Conns[i].Weight = rng.Float64()*2 - 1
		}
	}
}

// RandomizeWeights assigns every connection a fresh weight in [-1, 1],
// used when initializing a new minimal genome.
func (g *Genome) RandomizeWeights(rng *rand.Rand) {
	for i := range g.Conns {
		g.Conns[i].Weight = rng.Float64()*2 - 1
	}
}
