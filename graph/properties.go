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

import "github.com/flxj/mstdc/disjointset"

// IsAcyclic reports whether g contains no cycle.
func IsAcyclic(g EdgeSet) bool {
	components := disjointset.New(g.NumVerts())

	for _, e := range g.Edges() {
		ru, _ := components.Representative(e.U)
		rv, _ := components.Representative(e.V)
		if ru == rv {
			return false
		}
		_ = components.Join(e.U, e.V)
	}

	return true
}

// NumComponents returns the number of connected components of g.
func NumComponents(g EdgeSet) int {
	components := disjointset.New(g.NumVerts())

	for _, e := range g.Edges() {
		_ = components.Join(e.U, e.V)
	}

	return components.NumSets()
}

// IsConnected reports whether g has exactly one connected component.
// The empty graph (0 vertices) is not connected.
func IsConnected(g EdgeSet) bool {
	if g.NumVerts() == 0 {
		return false
	}
	return NumComponents(g) == 1
}

// IsSpanningTree reports whether g is connected, acyclic, and has
// exactly NumVerts()-1 edges. A graph with zero vertices has no spanning
// tree; a single-vertex graph with no edges is trivially one.
func IsSpanningTree(g EdgeSet) bool {
	if g.NumVerts() == 0 {
		return false
	}
	return g.NumEdges() == g.NumVerts()-1 && IsConnected(g) && IsAcyclic(g)
}
