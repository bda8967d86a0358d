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
)

// GraphParams controls the size and density of a random weighted
// graph: numVerts vertices, each of the n*(n-1)/2 possible edges kept
// independently with probability density.
type GraphParams struct {
	NumVerts int
	Density  float64
}

// WeightKind selects how edge weights are drawn.
type WeightKind int

const (
	// WeightUniform draws weights uniformly from [Min, Max).
	WeightUniform WeightKind = iota
	// WeightBiased draws weights uniformly from [Min, Max), except
	// with probability BiasProb the draw is narrowed to
	// [BiasMin, BiasMax) instead.
	WeightBiased
)

// WeightDistribution describes how RandomWeightedGraph assigns edge
// weights.
type WeightDistribution struct {
	Kind             WeightKind
	Min, Max         int
	BiasProb         float64
	BiasMin, BiasMax int
}

// Uniform returns a WeightDistribution drawing weights uniformly from
// [min, max).
func Uniform(min, max int) WeightDistribution {
	return WeightDistribution{Kind: WeightUniform, Min: min, Max: max}
}

// Biased returns a WeightDistribution that, with probability
// biasProb, narrows its draw to [biasMin, biasMax) instead of the
// full [min, max) range.
func Biased(min, max int, biasProb float64, biasMin, biasMax int) WeightDistribution {
	return WeightDistribution{
		Kind: WeightBiased, Min: min, Max: max,
		BiasProb: biasProb, BiasMin: biasMin, BiasMax: biasMax,
	}
}

func (d WeightDistribution) draw(rng *rand.Rand) int {
	switch d.Kind {
	case WeightBiased:
		if rng.Float64() < d.BiasProb {
			return d.BiasMin + rng.Intn(d.BiasMax-d.BiasMin)
		}
		return d.Min + rng.Intn(d.Max-d.Min)
	default:
		return d.Min + rng.Intn(d.Max-d.Min)
	}
}

// RandomWeightedGraph builds a weighted graph on params.NumVerts
// vertices, keeping each possible edge independently with probability
// params.Density and drawing its weight from dist.
func RandomWeightedGraph(rng *rand.Rand, params GraphParams, dist WeightDistribution) *graph.WeightedGraph {
	wg := graph.NewWeighted(params.NumVerts)
	for u := 0; u < params.NumVerts; u++ {
		for v := u + 1; v < params.NumVerts; v++ {
			if rng.Float64() >= params.Density {
				continue
			}
			_ = wg.AddEdge(u, v)
			wg.SetEdgeWeight(u, v, dist.draw(rng))
		}
	}
	return wg
}
