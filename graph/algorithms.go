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

import (
	"sort"

	"github.com/flxj/mstdc/disjointset"
)

// CustomKruskal runs Kruskal's algorithm with forced and forbidden
// edges: edges in forced are taken first, in ascending weight order
// (ties broken by canonical edge order), whenever they do not close a
// cycle; edges in forbidden are never taken. It then extends the
// resulting forest with the remaining, non-forbidden edges of wg using
// the same rule.
//
// The result is a forest containing every edge of forced that does not
// create a cycle within forced, extended to span as much of wg as
// possible without using any forbidden edge. When wg minus forbidden is
// connected and forced is acyclic, the result is a minimum spanning
// tree subject to those constraints; otherwise it is a spanning forest
// with fewer than NumVerts()-1 edges.
func CustomKruskal(wg *WeightedGraph, forced, forbidden []Edge) []Edge {
	components := disjointset.New(wg.NumVerts())
	result := make([]Edge, 0, wg.NumVerts())

	take := func(candidates []Edge) {
		sorted := append([]Edge(nil), candidates...)
		sort.SliceStable(sorted, func(i, j int) bool {
			wi, _ := wg.GetEdgeWeight(sorted[i].U, sorted[i].V)
			wj, _ := wg.GetEdgeWeight(sorted[j].U, sorted[j].V)
			if wi != wj {
				return wi < wj
			}
			return edgeLess(sorted[i], sorted[j])
		})

		for _, e := range sorted {
			ru, _ := components.Representative(e.U)
			rv, _ := components.Representative(e.V)
			if ru != rv {
				result = append(result, e)
				_ = components.Join(e.U, e.V)
			}
		}
	}

	take(forced)

	excluded := make(map[Edge]struct{}, len(forced)+len(forbidden))
	for _, e := range forced {
		excluded[NewEdge(e.U, e.V)] = struct{}{}
	}
	for _, e := range forbidden {
		excluded[NewEdge(e.U, e.V)] = struct{}{}
	}

	remaining := make([]Edge, 0, wg.NumEdges())
	for _, e := range wg.Edges() {
		if _, skip := excluded[e]; !skip {
			remaining = append(remaining, e)
		}
	}
	take(remaining)

	return result
}

// Kruskal runs the unconstrained Kruskal minimum spanning tree/forest
// algorithm over wg.
func Kruskal(wg *WeightedGraph) []Edge {
	return CustomKruskal(wg, nil, nil)
}
