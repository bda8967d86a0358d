package mstdc

import (
	"github.com/flxj/mstdc/bb"
	"github.com/flxj/mstdc/graph"
)

// SubproblemIterator yields the children of a non-feasible relaxed
// solution: an exclusion child that forbids the chosen infeasible
// edge, plus one derivation child per non-fixed dependency relevant
// to that edge's infeasibility. It is only ever constructed over a
// non-feasible parent solution.
type SubproblemIterator struct {
	children []bb.Problem[Solution, int]
	pos      int
}

func newSubproblemIterator(parent problemNode, relaxed Solution) *SubproblemIterator {
	eStar, ok := relaxed.firstInfeasibleEdge(parent)
	if !ok {
		if relaxed.IsFeasible() {
			panic("mstdc: SubproblemIterator invoked over a feasible solution")
		}
		if relaxed.hasInfeasibleEdge() {
			// Every infeasible edge is already fixed by parent, so
			// there is no branch left to take on them, yet the
			// relaxation is still not feasible. A fixed edge's
			// dependency status can never change, so this subproblem
			// should never have been generated in the first place.
			panic("mstdc: SubproblemIterator instantiated for a subproblem whose infeasible edges are all fixed")
		}
		// No edge actually present violates its dependency bounds,
		// yet the relaxation failed to span every vertex (some
		// connecting edge was forbidden out of existence). There is
		// no dependency-driven branch left to take: this subproblem
		// is a dead end.
		return &SubproblemIterator{}
	}

	children := make([]bb.Problem[Solution, int], 0, 4)
	children = append(children, deriveWithAddedRemoved(parent, nil, []graph.Edge{eStar}))

	status := relaxed.StatusOf(eStar)
	for _, d := range relaxed.DependenciesPresent(eStar) {
		if parent.isFixed(d) {
			continue
		}
		switch status {
		case TooFewDeps:
			children = append(children, deriveWithAdded(parent, eStar, d))
		case TooManyDeps:
			children = append(children, deriveWithAddedRemoved(parent, []graph.Edge{eStar}, []graph.Edge{d}))
		case Feasible:
			panic("mstdc: a feasible edge cannot have been chosen as the infeasible branching edge")
		}
	}

	return &SubproblemIterator{children: children}
}

// Next returns the next child problem, if any.
func (it *SubproblemIterator) Next() (bb.Problem[Solution, int], bool) {
	if it.pos >= len(it.children) {
		return nil, false
	}
	p := it.children[it.pos]
	it.pos++
	return p, true
}

// drain consumes and returns every remaining child.
func (it *SubproblemIterator) drain() []bb.Problem[Solution, int] {
	rest := it.children[it.pos:]
	it.pos = len(it.children)
	return rest
}

func deriveWithAdded(parent problemNode, edges ...graph.Edge) *Subproblem {
	return deriveWithAddedRemoved(parent, edges, nil)
}

func deriveWithAddedRemoved(parent problemNode, added, removed []graph.Edge) *Subproblem {
	switch p := parent.(type) {
	case *BaseProblem:
		sp, err := NewSubproblem(p, added, removed)
		if err != nil {
			panic(err)
		}
		return sp
	case *Subproblem:
		sp := p
		for _, e := range added {
			sp = sp.withAdded(e)
		}
		for _, e := range removed {
			sp = sp.withRemoved(e)
		}
		return sp
	default:
		panic("mstdc: unknown problem variant")
	}
}
