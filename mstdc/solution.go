package mstdc

import "github.com/flxj/mstdc/graph"

// Solution is a candidate spanning tree for a BaseProblem or
// Subproblem relaxation: a chosen edge set, its tree-view graph, and
// a back-reference to the base problem for dependency lookups.
type Solution struct {
	edges   []graph.Edge
	tree    *graph.Graph
	base    *BaseProblem
	edgeSet map[graph.Edge]struct{}
}

func newSolution(base *BaseProblem, edges []graph.Edge) Solution {
	tree := graph.New(base.NumVerts())
	set := make(map[graph.Edge]struct{}, len(edges))
	for _, e := range edges {
		_ = tree.AddEdge(e.U, e.V)
		set[e] = struct{}{}
	}
	return Solution{edges: edges, tree: tree, base: base, edgeSet: set}
}

// Edges returns the solution's chosen edges.
func (s Solution) Edges() []graph.Edge { return s.edges }

// TreeView returns the undirected graph on the instance's vertices
// containing exactly the chosen edges.
func (s Solution) TreeView() *graph.Graph { return s.tree }

// Base returns the base problem this solution was relaxed from.
func (s Solution) Base() *BaseProblem { return s.base }

// DependenciesPresent returns the in-neighbours of e in the
// dependency digraph that are present among s's chosen edges.
func (s Solution) DependenciesPresent(e graph.Edge) []graph.Edge {
	idx, ok := s.base.IndexOf(e)
	if !ok {
		return nil
	}
	var present []graph.Edge
	for _, n := range graph.InNeighbors(s.base.Instance().Dependencies(), idx) {
		f := s.base.EdgeAt(n)
		if _, ok := s.edgeSet[f]; ok {
			present = append(present, f)
		}
	}
	return present
}

// StatusOf classifies e against its dependency count bounds within s.
func (s Solution) StatusOf(e graph.Edge) EdgeStatus {
	count := len(s.DependenciesPresent(e))
	l := s.base.Instance().LowerBound(e)
	u := s.base.Instance().UpperBound(e)
	switch {
	case count < l:
		return TooFewDeps
	case count > u:
		return TooManyDeps
	default:
		return Feasible
	}
}

// IsFeasible reports whether s's tree-view is a spanning tree and
// every chosen edge's dependency status is Feasible.
func (s Solution) IsFeasible() bool {
	if !graph.IsSpanningTree(s.tree) {
		return false
	}
	for _, e := range s.edges {
		if s.StatusOf(e) != Feasible {
			return false
		}
	}
	return true
}

// Cost is the sum of the weights of s's chosen edges.
func (s Solution) Cost() int {
	total := 0
	for _, e := range s.edges {
		w, _ := s.base.Instance().Graph().GetEdgeWeight(e.U, e.V)
		total += w
	}
	return total
}

// firstInfeasibleEdge returns the first edge of s with a non-Feasible
// status that is not already fixed by parent, in s.Edges() order.
func (s Solution) firstInfeasibleEdge(parent problemNode) (graph.Edge, bool) {
	for _, e := range s.edges {
		if parent.isFixed(e) {
			continue
		}
		if s.StatusOf(e) != Feasible {
			return e, true
		}
	}
	return graph.Edge{}, false
}

// hasInfeasibleEdge reports whether any chosen edge of s has a
// non-Feasible status, ignoring whether parent has fixed it.
func (s Solution) hasInfeasibleEdge() bool {
	for _, e := range s.edges {
		if s.StatusOf(e) != Feasible {
			return true
		}
	}
	return false
}
