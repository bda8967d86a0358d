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

// Package instance ties a weighted graph, a dependency digraph and
// per-edge dependency bounds together into a single immutable MSTDC
// instance, with text file I/O.
package instance

import (
	"errors"

	"github.com/flxj/mstdc/graph"
)

var (
	errBoundsMissing  = errors.New("instance: missing dependency bounds for an edge")
	errInvalidBounds  = errors.New("instance: lower bound exceeds upper bound")
	errDigraphMismatch = errors.New("instance: dependency digraph vertex count must equal the graph's edge count")
)

// Bounds maps an edge to its dependency lower and upper bound.
type Bounds map[graph.Edge]int

// Instance is (G, D, l, u): a weighted graph G, a dependency digraph
// D whose vertices are G's edges (indexed in G.Edges() order), and
// per-edge lower/upper dependency bounds l and u. It is immutable
// once constructed.
type Instance struct {
	g    *graph.WeightedGraph
	d    *graph.Digraph
	lb   Bounds
	ub   Bounds
}

// New validates and assembles an Instance. d's vertex count must
// equal len(g.Edges()); every edge of g must have both a lower and an
// upper bound, with lower <= upper.
func New(g *graph.WeightedGraph, d *graph.Digraph, lb, ub Bounds) (*Instance, error) {
	edges := g.Edges()
	if d.NumVerts() != len(edges) {
		return nil, errDigraphMismatch
	}
	for _, e := range edges {
		l, okL := lb[e]
		u, okU := ub[e]
		if !okL || !okU {
			return nil, errBoundsMissing
		}
		if l > u {
			return nil, errInvalidBounds
		}
	}
	return &Instance{g: g, d: d, lb: lb, ub: ub}, nil
}

// Graph returns the underlying weighted graph G.
func (ins *Instance) Graph() *graph.WeightedGraph { return ins.g }

// Dependencies returns the dependency digraph D over G's edge indices.
func (ins *Instance) Dependencies() *graph.Digraph { return ins.d }

// LowerBound returns e's dependency lower bound l(e).
func (ins *Instance) LowerBound(e graph.Edge) int { return ins.lb[graph.NewEdge(e.U, e.V)] }

// UpperBound returns e's dependency upper bound u(e).
func (ins *Instance) UpperBound(e graph.Edge) int { return ins.ub[graph.NewEdge(e.U, e.V)] }

// NumVerts is the number of vertices of G.
func (ins *Instance) NumVerts() int { return ins.g.NumVerts() }
