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

// Digraph is a directed graph on a dense set of integer vertices.
// Its vertices are the edges of some accompanying Graph when used as
// the dependency digraph of an MSTDC instance.
type Digraph struct {
	data     *matrix.Matrix[bool]
	numVerts int
	numEdges int
}

// NewDigraph returns a Digraph with numVerts vertices and no arcs.
func NewDigraph(numVerts int) *Digraph {
	return &Digraph{
		data:     matrix.Square[bool](numVerts),
		numVerts: numVerts,
	}
}

// NumVerts returns the number of vertices.
func (d *Digraph) NumVerts() int {
	return d.numVerts
}

// NumEdges returns the number of arcs currently present.
func (d *Digraph) NumEdges() int {
	return d.numEdges
}

// HasEdge reports whether the arc i -> j is present.
func (d *Digraph) HasEdge(i, j int) bool {
	return d.data.At(i, j)
}

// AddEdge inserts the arc i -> j. It fails if the arc already exists.
func (d *Digraph) AddEdge(i, j int) error {
	if d.data.At(i, j) {
		return errEdgeExists
	}
	d.data.Set(i, j, true)
	d.numEdges++
	return nil
}

// RemoveEdge deletes the arc i -> j. It fails if the arc does not exist.
func (d *Digraph) RemoveEdge(i, j int) error {
	if !d.data.At(i, j) {
		return errEdgeNotExists
	}
	d.data.Set(i, j, false)
	d.numEdges--
	return nil
}

// Edges returns every arc in lexicographically increasing (i, j) order.
func (d *Digraph) Edges() []Edge {
	edges := make([]Edge, 0, d.numEdges)
	for i := 0; i < d.numVerts; i++ {
		for j := 0; j < d.numVerts; j++ {
			if d.data.At(i, j) {
				edges = append(edges, Edge{U: i, V: j})
			}
		}
	}
	return edges
}
