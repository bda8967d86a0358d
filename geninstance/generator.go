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

	"github.com/flxj/mstdc/instance"
)

// BoundsKind selects which of the three dependency bound strategies
// GenerateInstance applies.
type BoundsKind int

const (
	BoundsConstant BoundsKind = iota
	BoundsIntervalRandom
	BoundsCustom
)

// BoundsSpec configures GenerateInstance's dependency bound strategy.
// Only the fields relevant to Kind are read.
type BoundsSpec struct {
	Kind BoundsKind

	ConstantLower, ConstantUpper int

	IntervalLow, IntervalHigh int

	CustomLower LowerBoundSpec
	CustomUpper UpperBoundSpec
}

// Constant returns a BoundsSpec assigning every edge the constant
// bounds (l, u).
func Constant(l, u int) BoundsSpec {
	return BoundsSpec{Kind: BoundsConstant, ConstantLower: l, ConstantUpper: u}
}

// IntervalRandom returns a BoundsSpec drawing each edge's bounds
// independently from [lo, hi).
func IntervalRandom(lo, hi int) BoundsSpec {
	return BoundsSpec{Kind: BoundsIntervalRandom, IntervalLow: lo, IntervalHigh: hi}
}

// Custom returns a BoundsSpec deriving each edge's bounds from its
// dependency count, per lowerSpec and upperSpec.
func Custom(lowerSpec LowerBoundSpec, upperSpec UpperBoundSpec) BoundsSpec {
	return BoundsSpec{Kind: BoundsCustom, CustomLower: lowerSpec, CustomUpper: upperSpec}
}

// GenerateInstance assembles a random MSTDC instance: a weighted
// graph per graphParams and weighting, a dependency digraph per
// digraphStructure, and dependency bounds per boundsSpec.
func GenerateInstance(rng *rand.Rand, graphParams GraphParams, digraphStructure DigraphStructure, weighting WeightDistribution, boundsSpec BoundsSpec) (*instance.Instance, error) {
	g := RandomWeightedGraph(rng, graphParams, weighting)
	d := digraphStructure.build(rng, g.NumEdges())

	var lb, ub instance.Bounds
	switch boundsSpec.Kind {
	case BoundsConstant:
		lb, ub = ConstantBounds(g, boundsSpec.ConstantLower, boundsSpec.ConstantUpper)
	case BoundsIntervalRandom:
		lb, ub = IntervalBounds(rng, g, boundsSpec.IntervalLow, boundsSpec.IntervalHigh)
	default: // BoundsCustom
		lb, ub = CustomBounds(rng, g, d, boundsSpec.CustomLower, boundsSpec.CustomUpper)
	}

	return instance.New(g, d, lb, ub)
}
