package bb

import "cmp"

// Solution is a candidate answer to a relaxation of a Problem.
type Solution[C cmp.Ordered] interface {
	IsFeasible() bool
	Cost() C
}

// Problem is a single node of the search tree. SolveRelaxation
// computes a (possibly infeasible) lower-bounding solution;
// Subproblems expands the node into its children given that
// relaxation, and is only ever called when the relaxation is
// infeasible.
type Problem[S Solution[C], C cmp.Ordered] interface {
	SolveRelaxation() S
	Subproblems(relaxed S) []Problem[S, C]
}
