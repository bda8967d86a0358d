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
	"testing"

	"github.com/flxj/mstdc/graph"
)

func TestRandomArborescenceIsAConnectedOutTree(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	d := RandomArborescence(rng, 10, 3)

	if d.NumEdges() != 9 {
		t.Fatalf("NumEdges() = %d, want 9 for a 10-vertex tree", d.NumEdges())
	}

	indegree := make([]int, 10)
	for _, e := range d.Edges() {
		indegree[e.V]++
	}
	for v := 1; v < 10; v++ {
		if indegree[v] != 1 {
			t.Fatalf("vertex %d has in-degree %d, want exactly 1", v, indegree[v])
		}
	}
	if indegree[0] != 0 {
		t.Fatalf("root has in-degree %d, want 0", indegree[0])
	}
}

func TestRandomArborescenceSingleVertex(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	d := RandomArborescence(rng, 1, 2)
	if d.NumEdges() != 0 {
		t.Fatalf("NumEdges() = %d, want 0 for a single vertex", d.NumEdges())
	}
}

func TestRandomDAGArcsRespectVertexOrder(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	d := RandomDAG(rng, 20, 0.5)
	for _, e := range d.Edges() {
		if e.U >= e.V {
			t.Fatalf("arc %v does not respect the vertex order", e)
		}
	}
}

func TestRandomWeightedGraphRespectsBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	g := RandomWeightedGraph(rng, GraphParams{NumVerts: 15, Density: 0.6}, Uniform(10, 20))
	for _, e := range g.Edges() {
		w, ok := g.GetEdgeWeight(e.U, e.V)
		if !ok {
			t.Fatalf("edge %v reports no weight", e)
		}
		if w < 10 || w >= 20 {
			t.Fatalf("weight %d out of range [10, 20)", w)
		}
	}
}

func TestConstantBoundsAreUniform(t *testing.T) {
	g := graph.NewWeighted(4)
	g.AddEdge(0, 1)
	g.AddEdge(1, 2)
	lb, ub := ConstantBounds(g, 2, 5)
	for _, e := range g.Edges() {
		if lb[e] != 2 || ub[e] != 5 {
			t.Fatalf("bounds for %v = (%d, %d), want (2, 5)", e, lb[e], ub[e])
		}
	}
}

func TestCustomBoundsStrongMatchesDependencyCount(t *testing.T) {
	g := graph.NewWeighted(3)
	g.AddEdge(0, 1)
	g.AddEdge(1, 2)
	g.AddEdge(0, 2)
	d := graph.NewDigraph(g.NumEdges())
	// edge index 0 = (0,1); give it two dependencies
	d.AddEdge(1, 0)
	d.AddEdge(2, 0)

	rng := rand.New(rand.NewSource(4))
	lb, ub := CustomBounds(rng, g, d,
		LowerBoundSpec{Kind: LowerStrong},
		UpperBoundSpec{Kind: UpperWeak},
	)

	target := graph.NewEdge(0, 1)
	if lb[target] != 2 || ub[target] != 2 {
		t.Fatalf("bounds for %v = (%d, %d), want (2, 2)", target, lb[target], ub[target])
	}
}

func TestGenerateInstanceProducesAValidInstance(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	ins, err := GenerateInstance(
		rng,
		GraphParams{NumVerts: 12, Density: 0.5},
		Arborescence(2),
		Uniform(0, 50),
		Constant(0, 0),
	)
	if err != nil {
		t.Fatalf("GenerateInstance: %v", err)
	}
	if ins.NumVerts() != 12 {
		t.Fatalf("NumVerts() = %d, want 12", ins.NumVerts())
	}
	if ins.Dependencies().NumVerts() != ins.Graph().NumEdges() {
		t.Fatalf("dependency digraph vertex count must equal the edge count")
	}
}

func TestGenerateInstanceWithDAGAndCustomBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(6))
	ins, err := GenerateInstance(
		rng,
		GraphParams{NumVerts: 10, Density: 0.7},
		DAG(0.3),
		Biased(0, 50, 0.8, 15, 35),
		Custom(LowerBoundSpec{Kind: LowerNearlyStrong}, UpperBoundSpec{Kind: UpperWeak}),
	)
	if err != nil {
		t.Fatalf("GenerateInstance: %v", err)
	}
	for _, e := range ins.Graph().Edges() {
		if ins.LowerBound(e) > ins.UpperBound(e) {
			t.Fatalf("edge %v has l=%d > u=%d", e, ins.LowerBound(e), ins.UpperBound(e))
		}
	}
}
