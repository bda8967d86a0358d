package mstdc

import (
	"github.com/flxj/mstdc/bb"
	"github.com/flxj/mstdc/instance"
)

// SolveSerial finds the minimum-cost spanning tree of ins satisfying
// every edge's dependency bounds, using the single-threaded reference
// driver. It reports false if no feasible spanning tree exists.
func SolveSerial(ins *instance.Instance) (Solution, bool) {
	root := NewBaseProblem(ins)
	return bb.Serial[Solution, int](root)
}

// SolveParallel finds the minimum-cost spanning tree of ins satisfying
// every edge's dependency bounds, using numWorkers worker goroutines.
// It reports false if no feasible spanning tree exists. Any options
// are forwarded to bb.Parallel, e.g. to publish live search status.
func SolveParallel(ins *instance.Instance, numWorkers int, opts ...bb.ParallelOption[Solution, int]) (Solution, bool) {
	root := NewBaseProblem(ins)
	return bb.Parallel[Solution, int](root, numWorkers, opts...)
}
