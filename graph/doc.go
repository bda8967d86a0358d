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

// Package graph implements undirected graphs, digraphs, weighted graphs
// and a copy-on-write subgraph overlay, all addressed by dense integer
// vertex indices. Graph is backed by the packed upper-triangular matrix
// of package matrix and Digraph by its full square matrix.
package graph

// Edge is an unordered pair of vertices, always stored with U <= V.
type Edge struct {
	U int
	V int
}

// NewEdge returns the canonical representation of the edge between u and
// v, swapping endpoints so that U <= V.
func NewEdge(u, v int) Edge {
	if u > v {
		u, v = v, u
	}
	return Edge{U: u, V: v}
}

func edgeLess(a, b Edge) bool {
	if a.U != b.U {
		return a.U < b.U
	}
	return a.V < b.V
}

// EdgeSet is the read-only contract shared by Graph, WeightedGraph and
// Subgraph: anything that can report its vertices and edges.
type EdgeSet interface {
	NumVerts() int
	NumEdges() int
	HasEdge(u, v int) bool
	Edges() []Edge
}
