package mstdc

import (
	"github.com/flxj/mstdc/bb"
	"github.com/flxj/mstdc/graph"
)

// problemNode is satisfied by both *BaseProblem and *Subproblem; it
// lets relaxation and branching share a single implementation across
// the Base/Derived variants described by the Problem sum type.
type problemNode interface {
	base() *BaseProblem
	forced() []graph.Edge
	forbidden() []graph.Edge
	isFixed(graph.Edge) bool
}

func relax(p problemNode) Solution {
	wg := p.base().Instance().Graph()
	edges := graph.CustomKruskal(wg, p.forced(), p.forbidden())
	return newSolution(p.base(), edges)
}

// SolveRelaxation runs unconstrained Kruskal on the instance graph.
func (b *BaseProblem) SolveRelaxation() Solution { return relax(b) }

// Subproblems branches a non-feasible root relaxation per the rules
// in SubproblemIterator.
func (b *BaseProblem) Subproblems(relaxed Solution) []bb.Problem[Solution, int] {
	return newSubproblemIterator(b, relaxed).drain()
}

// SolveRelaxation runs Kruskal constrained by s's added/removed sets.
func (s *Subproblem) SolveRelaxation() Solution { return relax(s) }

// Subproblems branches a non-feasible derived relaxation per the
// rules in SubproblemIterator.
func (s *Subproblem) Subproblems(relaxed Solution) []bb.Problem[Solution, int] {
	return newSubproblemIterator(s, relaxed).drain()
}
