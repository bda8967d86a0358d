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

// InNeighbors returns the in-neighbors of vertex v in d: every u such
// that the arc u -> v is present.
func InNeighbors(d *Digraph, v int) []int {
	var in []int
	for u := 0; u < d.NumVerts(); u++ {
		if d.HasEdge(u, v) {
			in = append(in, u)
		}
	}
	return in
}

// OutNeighbors returns the out-neighbors of vertex u in d: every v such
// that the arc u -> v is present.
func OutNeighbors(d *Digraph, u int) []int {
	var out []int
	for v := 0; v < d.NumVerts(); v++ {
		if d.HasEdge(u, v) {
			out = append(out, v)
		}
	}
	return out
}
