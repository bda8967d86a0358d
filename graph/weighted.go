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

// WeightedGraph combines a Graph with a mapping from edges to integer
// weights. A freshly inserted edge defaults to weight zero.
type WeightedGraph struct {
	graph   *Graph
	weights map[Edge]int
}

// NewWeighted returns a WeightedGraph with numVerts vertices and no
// edges.
func NewWeighted(numVerts int) *WeightedGraph {
	return &WeightedGraph{
		graph:   New(numVerts),
		weights: make(map[Edge]int),
	}
}

// NumVerts returns the number of vertices.
func (w *WeightedGraph) NumVerts() int {
	return w.graph.NumVerts()
}

// NumEdges returns the number of edges currently present.
func (w *WeightedGraph) NumEdges() int {
	return w.graph.NumEdges()
}

// HasEdge reports whether the edge between u and v is present.
func (w *WeightedGraph) HasEdge(u, v int) bool {
	return w.graph.HasEdge(u, v)
}

// Edges returns every edge in lexicographically increasing (u, v) order.
func (w *WeightedGraph) Edges() []Edge {
	return w.graph.Edges()
}

// AddEdge inserts the edge between u and v with weight zero. It fails if
// the edge already exists.
func (w *WeightedGraph) AddEdge(u, v int) error {
	if err := w.graph.AddEdge(u, v); err != nil {
		return err
	}
	w.weights[NewEdge(u, v)] = 0
	return nil
}

// RemoveEdge deletes the edge between u and v and its weight. It fails if
// the edge does not exist.
func (w *WeightedGraph) RemoveEdge(u, v int) error {
	if err := w.graph.RemoveEdge(u, v); err != nil {
		return err
	}
	delete(w.weights, NewEdge(u, v))
	return nil
}

// GetEdgeWeight returns the weight of the edge between u and v. The
// second return value is false when the edge does not exist.
func (w *WeightedGraph) GetEdgeWeight(u, v int) (int, bool) {
	weight, ok := w.weights[NewEdge(u, v)]
	return weight, ok
}

// SetEdgeWeight sets the weight of the edge between u and v, returning
// the previous weight. It is a no-op returning (0, false) when the edge
// does not exist.
func (w *WeightedGraph) SetEdgeWeight(u, v, weight int) (int, bool) {
	e := NewEdge(u, v)
	if !w.graph.HasEdge(u, v) {
		return 0, false
	}
	old := w.weights[e]
	w.weights[e] = weight
	return old, true
}
