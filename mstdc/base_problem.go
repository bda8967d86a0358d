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

// Package mstdc instantiates the branch-and-bound engine in package
// bb for the minimum spanning tree with dependency constraints:
// given a weighted graph, a dependency digraph over its edges and
// per-edge dependency bounds, find a minimum-cost spanning tree whose
// every edge satisfies its dependency count bounds.
package mstdc

import (
	"github.com/flxj/mstdc/graph"
	"github.com/flxj/mstdc/instance"
)

// BaseProblem is the root of a solve: it references an Instance and
// fixes a dense bijection between G's edges and the dependency
// digraph's vertices. It is created once and shared, read-only, by
// every Subproblem descending from it.
type BaseProblem struct {
	ins       *instance.Instance
	indexOf   map[graph.Edge]int
	edgeOf    []graph.Edge
}

// NewBaseProblem builds the edge<->index bijection from ins's graph
// edge order.
func NewBaseProblem(ins *instance.Instance) *BaseProblem {
	edges := ins.Graph().Edges()
	indexOf := make(map[graph.Edge]int, len(edges))
	for i, e := range edges {
		indexOf[e] = i
	}
	return &BaseProblem{ins: ins, indexOf: indexOf, edgeOf: edges}
}

// Instance returns the underlying MSTDC instance.
func (b *BaseProblem) Instance() *instance.Instance { return b.ins }

// IndexOf returns e's dense index, used as a vertex of the dependency
// digraph.
func (b *BaseProblem) IndexOf(e graph.Edge) (int, bool) {
	i, ok := b.indexOf[e]
	return i, ok
}

// EdgeAt returns the edge bound to dependency-digraph vertex i.
func (b *BaseProblem) EdgeAt(i int) graph.Edge { return b.edgeOf[i] }

// NumVerts is the number of vertices of the instance graph.
func (b *BaseProblem) NumVerts() int { return b.ins.NumVerts() }

func (b *BaseProblem) base() *BaseProblem   { return b }
func (b *BaseProblem) forced() []graph.Edge { return nil }
func (b *BaseProblem) forbidden() []graph.Edge { return nil }
func (b *BaseProblem) isFixed(graph.Edge) bool { return false }
