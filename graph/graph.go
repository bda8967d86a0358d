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

package graph

import "github.com/flxj/mstdc/matrix"

// Graph is an undirected simple graph on a dense set of integer vertices,
// backed by a packed upper-triangular bit matrix.
type Graph struct {
	data     *matrix.UpperTriangularMatrix[bool]
	numVerts int
	numEdges int
}

// New returns a Graph with numVerts vertices and no edges.
func New(numVerts int) *Graph {
	return &Graph{
		data:     matrix.NewTriangular[bool](numVerts),
		numVerts: numVerts,
	}
}

// Complete returns the complete graph on numVerts vertices.
func Complete(numVerts int) *Graph {
	g := New(numVerts)
	for u := 0; u < numVerts; u++ {
		for v := u + 1; v < numVerts; v++ {
			_ = g.AddEdge(u, v)
		}
	}
	return g
}

// NumVerts returns the number of vertices.
func (g *Graph) NumVerts() int {
	return g.numVerts
}

// NumEdges returns the number of edges currently present.
func (g *Graph) NumEdges() int {
	return g.numEdges
}

// HasEdge reports whether the edge between u and v is present.
func (g *Graph) HasEdge(u, v int) bool {
	e := NewEdge(u, v)
	return g.data.At(e.U, e.V)
}

// AddEdge inserts the edge between u and v. It fails if the edge already
// exists.
func (g *Graph) AddEdge(u, v int) error {
	e := NewEdge(u, v)
	if g.data.At(e.U, e.V) {
		return errEdgeExists
	}
	g.data.Set(e.U, e.V, true)
	g.numEdges++
	return nil
}

// RemoveEdge deletes the edge between u and v. It fails if the edge does
// not exist.
func (g *Graph) RemoveEdge(u, v int) error {
	e := NewEdge(u, v)
	if !g.data.At(e.U, e.V) {
		return errEdgeNotExists
	}
	g.data.Set(e.U, e.V, false)
	g.numEdges--
	return nil
}

// Edges returns every edge in lexicographically increasing (u, v) order,
// with u <= v.
func (g *Graph) Edges() []Edge {
	edges := make([]Edge, 0, g.numEdges)
	for i := 0; i < g.numVerts; i++ {
		for j := i + 1; j < g.numVerts; j++ {
			if g.data.At(i, j) {
				edges = append(edges, Edge{U: i, V: j})
			}
		}
	}
	return edges
}
