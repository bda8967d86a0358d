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

package geninstance

import (
	"math/rand"

	"github.com/flxj/mstdc/graph"
	"github.com/flxj/mstdc/instance"
)

// ConstantBounds assigns every edge the same lower bound l and upper
// bound u.
func ConstantBounds(g *graph.WeightedGraph, l, u int) (instance.Bounds, instance.Bounds) {
	lb, ub := instance.Bounds{}, instance.Bounds{}
	for _, e := range g.Edges() {
		lb[e] = l
		ub[e] = u
	}
	return lb, ub
}

// IntervalBounds draws, for every edge, a lower bound uniformly from
// [lo, hi) and then an upper bound uniformly from [l, hi).
func IntervalBounds(rng *rand.Rand, g *graph.WeightedGraph, lo, hi int) (instance.Bounds, instance.Bounds) {
	lb, ub := instance.Bounds{}, instance.Bounds{}
	for _, e := range g.Edges() {
		l := lo + rng.Intn(hi-lo)
		u := l + rng.Intn(hi-l)
		lb[e] = l
		ub[e] = u
	}
	return lb, ub
}

// LowerBoundKind selects how CustomBounds derives a lower bound from
// an edge's dependency count.
type LowerBoundKind int

const (
	// LowerStrong sets l(e) to the full dependency count.
	LowerStrong LowerBoundKind = iota
	// LowerNearlyStrong draws l(e) uniformly from [0, numDeps), or 0
	// when numDeps is zero.
	LowerNearlyStrong
	// LowerInterval draws l(e) uniformly from [Min, Max), ignoring
	// the dependency count.
	LowerInterval
)

// UpperBoundKind selects how CustomBounds derives an upper bound from
// an edge's dependency count and already-chosen lower bound.
type UpperBoundKind int

const (
	// UpperWeak sets u(e) to the full dependency count.
	UpperWeak UpperBoundKind = iota
	// UpperNearlyWeak draws u(e) uniformly from [l(e), numDeps), or
	// l(e) when l(e) already meets or exceeds numDeps.
	UpperNearlyWeak
	// UpperInterval draws u(e) uniformly from [max(l(e), Min), Max).
	UpperInterval
)

// LowerBoundSpec configures CustomBounds' lower-bound strategy.
type LowerBoundSpec struct {
	Kind     LowerBoundKind
	Min, Max int
}

// UpperBoundSpec configures CustomBounds' upper-bound strategy.
type UpperBoundSpec struct {
	Kind     UpperBoundKind
	Min, Max int
}

// CustomBounds derives each edge's dependency bounds from its number
// of present dependencies in d (the count of arcs pointing at its
// index), following lowerSpec and upperSpec.
func CustomBounds(rng *rand.Rand, g *graph.WeightedGraph, d *graph.Digraph, lowerSpec LowerBoundSpec, upperSpec UpperBoundSpec) (instance.Bounds, instance.Bounds) {
	lb, ub := instance.Bounds{}, instance.Bounds{}
	for idx, e := range g.Edges() {
		numDeps := len(graph.InNeighbors(d, idx))

		var l int
		switch lowerSpec.Kind {
		case LowerInterval:
			l = lowerSpec.Min + rng.Intn(lowerSpec.Max-lowerSpec.Min)
		case LowerNearlyStrong:
			if numDeps <= 0 {
				l = 0
			} else {
				l = rng.Intn(numDeps)
			}
		default: // LowerStrong
			l = numDeps
		}

		var u int
		switch upperSpec.Kind {
		case UpperInterval:
			min := upperSpec.Min
			if l > min {
				min = l
			}
			u = min + rng.Intn(upperSpec.Max-min)
		case UpperNearlyWeak:
			if l >= numDeps {
				u = l
			} else {
				u = l + rng.Intn(numDeps-l)
			}
		default: // UpperWeak
			u = numDeps
		}

		lb[e] = l
		ub[e] = u
	}
	return lb, ub
}
