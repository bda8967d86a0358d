package mstdc

import (
	"errors"

	"github.com/flxj/mstdc/graph"
)

var (
	errFixedEdgeConflict = errors.New("mstdc: edge cannot be both added and removed in a subproblem")
	errFixedEdgeUnknown  = errors.New("mstdc: fixed edge does not belong to the base problem's graph")
)

// Subproblem narrows a BaseProblem by forcing a set of edges into
// every candidate tree (added) and forbidding another, disjoint set
// (removed). Every edge in added or removed must belong to base's
// graph and is called a fixed edge of the subproblem.
type Subproblem struct {
	baseProblem *BaseProblem
	added       map[graph.Edge]struct{}
	removed     map[graph.Edge]struct{}
}

// NewSubproblem validates and builds a Subproblem over base.
func NewSubproblem(base *BaseProblem, added, removed []graph.Edge) (*Subproblem, error) {
	addedSet := make(map[graph.Edge]struct{}, len(added))
	for _, e := range added {
		if _, ok := base.IndexOf(e); !ok {
			return nil, errFixedEdgeUnknown
		}
		addedSet[e] = struct{}{}
	}
	removedSet := make(map[graph.Edge]struct{}, len(removed))
	for _, e := range removed {
		if _, ok := base.IndexOf(e); !ok {
			return nil, errFixedEdgeUnknown
		}
		if _, conflict := addedSet[e]; conflict {
			return nil, errFixedEdgeConflict
		}
		removedSet[e] = struct{}{}
	}
	return &Subproblem{baseProblem: base, added: addedSet, removed: removedSet}, nil
}

// Added returns the edges forced into every candidate tree.
func (s *Subproblem) Added() []graph.Edge { return edgeSlice(s.added) }

// Removed returns the edges forbidden from every candidate tree.
func (s *Subproblem) Removed() []graph.Edge { return edgeSlice(s.removed) }

func edgeSlice(set map[graph.Edge]struct{}) []graph.Edge {
	out := make([]graph.Edge, 0, len(set))
	for e := range set {
		out = append(out, e)
	}
	return out
}

func (s *Subproblem) base() *BaseProblem      { return s.baseProblem }
func (s *Subproblem) forced() []graph.Edge    { return edgeSlice(s.added) }
func (s *Subproblem) forbidden() []graph.Edge { return edgeSlice(s.removed) }

func (s *Subproblem) isFixed(e graph.Edge) bool {
	if _, ok := s.added[e]; ok {
		return true
	}
	_, ok := s.removed[e]
	return ok
}

// withAdded returns a copy of s with e additionally forced in.
func (s *Subproblem) withAdded(e graph.Edge) *Subproblem {
	added := copyEdgeSet(s.added)
	added[e] = struct{}{}
	return &Subproblem{baseProblem: s.baseProblem, added: added, removed: copyEdgeSet(s.removed)}
}

// withRemoved returns a copy of s with e additionally forbidden.
func (s *Subproblem) withRemoved(e graph.Edge) *Subproblem {
	removed := copyEdgeSet(s.removed)
	removed[e] = struct{}{}
	return &Subproblem{baseProblem: s.baseProblem, added: copyEdgeSet(s.added), removed: removed}
}

func copyEdgeSet(set map[graph.Edge]struct{}) map[graph.Edge]struct{} {
	out := make(map[graph.Edge]struct{}, len(set))
	for e := range set {
		out[e] = struct{}{}
	}
	return out
}
