/*
	Copyright (C) 2023 flxj(https://github.com/flxj)

	Licensed under the Apache License, Version 2.0 (the "License");
	you may not use this file except in compliance with the License.
	You may obtain a copy of the License at

		http://www.apache.org/licenses/LICENSE-2.0

	Unless required by applicable law or agreed to in writing, software
	distributed under the License is distributed on an "AS IS" BASIS,
	WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
	See the License for the specific language governing permissions and
	limitations under the License.
*/

package geninstance

import (
	"math/rand"

	"github.com/flxj/mstdc/graph"
)

// DigraphKind selects how a dependency digraph is shaped.
type DigraphKind int

const (
	// DigraphArborescence grows a random out-tree rooted at vertex 0.
	DigraphArborescence DigraphKind = iota
	// DigraphDAG keeps every arc u -> v with u < v independently with
	// a given probability, which is acyclic by construction.
	DigraphDAG
)

// DigraphStructure describes how GenerateInstance shapes the
// dependency digraph D.
type DigraphStructure struct {
	Kind            DigraphKind
	BranchingFactor int
	Density         float64
}

// Arborescence returns a DigraphStructure that grows a random
// out-tree with the given branching factor.
func Arborescence(branchingFactor int) DigraphStructure {
	return DigraphStructure{Kind: DigraphArborescence, BranchingFactor: branchingFactor}
}

// DAG returns a DigraphStructure that keeps each forward arc
// independently with the given density.
func DAG(density float64) DigraphStructure {
	return DigraphStructure{Kind: DigraphDAG, Density: density}
}

func (s DigraphStructure) build(rng *rand.Rand, n int) *graph.Digraph {
	switch s.Kind {
	case DigraphDAG:
		return RandomDAG(rng, n, s.Density)
	default:
		return RandomArborescence(rng, n, s.BranchingFactor)
	}
}

// RandomArborescence grows a random out-tree on n vertices rooted at
// vertex 0: vertices 1..n-1 are shuffled into an arrival order, and
// each vertex popped from a growth queue claims up to branchingFactor
// of the next unclaimed vertices as children.
func RandomArborescence(rng *rand.Rand, n, branchingFactor int) *graph.Digraph {
	d := graph.NewDigraph(n)
	if n <= 1 {
		return d
	}

	order := make([]int, n-1)
	for i := range order {
		order[i] = i + 1
	}
	rng.Shuffle(len(order), func(i, j int) { order[i], order[j] = order[j], order[i] })

	queue := []int{0}
	i := 0
	for len(queue) > 0 && i < n-1 {
		u := queue[0]
		queue = queue[1:]
		for k := 0; k < branchingFactor && i < n-1; k++ {
			v := order[i]
			i++
			_ = d.AddEdge(u, v)
			queue = append(queue, v)
		}
	}
	return d
}

// RandomDAG keeps every forward arc u -> v (u < v) independently with
// probability density. The result is acyclic because every arc
// respects the vertex order.
func RandomDAG(rng *rand.Rand, n int, density float64) *graph.Digraph {
	d := graph.NewDigraph(n)
	for u := 0; u < n; u++ {
		for v := u + 1; v < n; v++ {
			if rng.Float64() < density {
				_ = d.AddEdge(u, v)
			}
		}
	}
	return d
}
