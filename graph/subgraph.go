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

import "sort"

// Subgraph is a copy-on-write overlay over a parent EdgeSet: it adds
// (inc) and removes (rem) edges without mutating the parent. Effective
// edges are (parent's edges UNION inc) MINUS rem. inc and rem are always
// kept disjoint, as is inc from the parent's own edges and rem from
// anything outside of the parent's edges.
type Subgraph struct {
	parent EdgeSet
	inc    map[Edge]struct{}
	rem    map[Edge]struct{}
}

// FromGraph returns a Subgraph with no overlay over parent.
func FromGraph(parent EdgeSet) *Subgraph {
	return &Subgraph{
		parent: parent,
		inc:    make(map[Edge]struct{}),
		rem:    make(map[Edge]struct{}),
	}
}

// FromSubgraph returns an independent copy of sg, sharing its parent.
func FromSubgraph(sg *Subgraph) *Subgraph {
	inc := make(map[Edge]struct{}, len(sg.inc))
	for e := range sg.inc {
		inc[e] = struct{}{}
	}
	rem := make(map[Edge]struct{}, len(sg.rem))
	for e := range sg.rem {
		rem[e] = struct{}{}
	}
	return &Subgraph{parent: sg.parent, inc: inc, rem: rem}
}

// NumVerts returns the parent's vertex count.
func (sg *Subgraph) NumVerts() int {
	return sg.parent.NumVerts()
}

// NumEdges returns the effective edge count.
func (sg *Subgraph) NumEdges() int {
	return sg.parent.NumEdges() + len(sg.inc) - len(sg.rem)
}

// HasEdge reports whether the edge between u and v is present in the
// overlay.
func (sg *Subgraph) HasEdge(u, v int) bool {
	e := NewEdge(u, v)
	if _, ok := sg.inc[e]; ok {
		return true
	}
	if _, ok := sg.rem[e]; ok {
		return false
	}
	return sg.parent.HasEdge(u, v)
}

// AddEdge adds the edge between u and v to the overlay. It fails if the
// edge is already present.
func (sg *Subgraph) AddEdge(u, v int) error {
	e := NewEdge(u, v)
	if _, ok := sg.rem[e]; ok {
		delete(sg.rem, e)
		return nil
	}
	if sg.parent.HasEdge(u, v) {
		return errEdgeExists
	}
	if _, ok := sg.inc[e]; ok {
		return errEdgeExists
	}
	sg.inc[e] = struct{}{}
	return nil
}

// RemoveEdge removes the edge between u and v from the overlay. It fails
// if the edge is not present.
func (sg *Subgraph) RemoveEdge(u, v int) error {
	e := NewEdge(u, v)
	if _, ok := sg.inc[e]; ok {
		delete(sg.inc, e)
		return nil
	}
	if !sg.parent.HasEdge(u, v) {
		return errEdgeNotExists
	}
	if _, ok := sg.rem[e]; ok {
		return errEdgeNotExists
	}
	sg.rem[e] = struct{}{}
	return nil
}

// Edges returns the effective edges, inc first (in canonical order),
// then the parent's edges (in the parent's own order) that are not in
// rem.
func (sg *Subgraph) Edges() []Edge {
	edges := make([]Edge, 0, sg.NumEdges())

	inc := make([]Edge, 0, len(sg.inc))
	for e := range sg.inc {
		inc = append(inc, e)
	}
	sort.Slice(inc, func(i, j int) bool { return edgeLess(inc[i], inc[j]) })
	edges = append(edges, inc...)

	for _, e := range sg.parent.Edges() {
		if _, removed := sg.rem[e]; !removed {
			edges = append(edges, e)
		}
	}

	return edges
}
