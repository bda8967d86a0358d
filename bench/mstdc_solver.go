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

package bench

import (
	"fmt"

	"github.com/flxj/mstdc/bb"
	"github.com/flxj/mstdc/instance"
	"github.com/flxj/mstdc/mstdc"
)

// mstdcSolvingInfo is the result of solving a single MSTDC instance: either
// "feasible <cost>" or "infeasible -".
type mstdcSolvingInfo struct {
	feasible bool
	cost     int
}

func (i mstdcSolvingInfo) Header() string { return "status solution_cost" }

func (i mstdcSolvingInfo) String() string {
	if !i.feasible {
		return "infeasible -"
	}
	return fmt.Sprintf("feasible %d", i.cost)
}

// InstanceSolver solves a single Instance, using the parallel driver
// when NumWorkers > 1 and the serial driver otherwise. When Publisher
// is set and the parallel driver runs, it receives live status
// snapshots over the course of the search.
type InstanceSolver struct {
	Instance   *instance.Instance
	NumWorkers int
	Publisher  bb.StatusPublisher[int]
}

// Solve satisfies Solver[mstdcSolvingInfo].
func (s InstanceSolver) Solve() mstdcSolvingInfo {
	var sol mstdc.Solution
	var ok bool
	if s.NumWorkers > 1 {
		var opts []bb.ParallelOption[mstdc.Solution, int]
		if s.Publisher != nil {
			opts = append(opts, bb.WithStatusPublisher[mstdc.Solution, int](s.Publisher))
		}
		sol, ok = mstdc.SolveParallel(s.Instance, s.NumWorkers, opts...)
	} else {
		sol, ok = mstdc.SolveSerial(s.Instance)
	}
	if !ok {
		return mstdcSolvingInfo{}
	}
	return mstdcSolvingInfo{feasible: true, cost: sol.Cost()}
}
