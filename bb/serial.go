package bb

import "cmp"

type openProblem[S Solution[C], C cmp.Ordered] struct {
	problem Problem[S, C]
	relaxed S
}

// Serial runs a single-threaded branch-and-bound search over
// problem, returning the optimal solution, if one exists.
//
// It is the reference driver: simpler and easier to trust than
// Parallel, used to validate the parallel driver's results.
func Serial[S Solution[C], C cmp.Ordered](problem Problem[S, C]) (S, bool) {
	status := NewSolvingStatus[S, C]()
	lb := NewLowerBoundMultiset[C]()

	rootRelaxed := problem.SolveRelaxation()
	pool := []openProblem[S, C]{{problem: problem, relaxed: rootRelaxed}}
	lb.Register(rootRelaxed.Cost())

	for !status.Finished() && len(pool) > 0 {
		top := pool[len(pool)-1]
		pool = pool[:len(pool)-1]
		lb.Discard(top.relaxed.Cost())

		if top.relaxed.IsFeasible() {
			_ = status.SetBestSolution(top.relaxed)
		} else {
			for _, child := range top.problem.Subproblems(top.relaxed) {
				childRelaxed := child.SolveRelaxation()
				if best, ok := status.BestSolution(); !ok || childRelaxed.Cost() < best.Cost() {
					pool = append(pool, openProblem[S, C]{problem: child, relaxed: childRelaxed})
					lb.Register(childRelaxed.Cost())
				}
			}
		}

		if min, ok := lb.Min(); ok {
			_ = status.SetLowerBound(min)
		}
	}

	return status.ExtractBestSolution()
}
