package bb

import "cmp"

// SolvingStatus tracks the dual bound of a branch-and-bound search:
// the best lower bound seen so far and the best feasible solution
// found so far. It is owned exclusively by the thread running a
// driver loop; it is not safe for concurrent use.
type SolvingStatus[S Solution[C], C cmp.Ordered] struct {
	lowerBound   *C
	bestSolution *S
}

// NewSolvingStatus returns a status with neither bound set.
func NewSolvingStatus[S Solution[C], C cmp.Ordered]() *SolvingStatus[S, C] {
	return &SolvingStatus[S, C]{}
}

// Finished reports whether the lower bound and the best solution's
// cost coincide, which certifies optimality.
func (s *SolvingStatus[S, C]) Finished() bool {
	if s.lowerBound == nil || s.bestSolution == nil {
		return false
	}
	return *s.lowerBound == (*s.bestSolution).Cost()
}

// LowerBound returns the current lower bound, if any.
func (s *SolvingStatus[S, C]) LowerBound() (C, bool) {
	if s.lowerBound == nil {
		var zero C
		return zero, false
	}
	return *s.lowerBound, true
}

// BestSolution returns the current best feasible solution, if any.
func (s *SolvingStatus[S, C]) BestSolution() (S, bool) {
	if s.bestSolution == nil {
		var zero S
		return zero, false
	}
	return *s.bestSolution, true
}

// SetLowerBound overwrites the lower bound. It fails if a best
// solution is already known and lb exceeds its cost.
func (s *SolvingStatus[S, C]) SetLowerBound(lb C) error {
	if s.bestSolution != nil && lb > (*s.bestSolution).Cost() {
		return errLowerBoundExceedsBest
	}
	s.lowerBound = &lb
	return nil
}

// SetBestSolution replaces the best solution, but only if sol
// strictly improves on the current one (or none is known yet).
func (s *SolvingStatus[S, C]) SetBestSolution(sol S) error {
	if s.bestSolution != nil && !(sol.Cost() < (*s.bestSolution).Cost()) {
		return errNotAnImprovement
	}
	s.bestSolution = &sol
	return nil
}

// ExtractBestSolution returns the best solution found, if any.
func (s *SolvingStatus[S, C]) ExtractBestSolution() (S, bool) {
	return s.BestSolution()
}
