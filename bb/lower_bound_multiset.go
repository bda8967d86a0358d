package bb

import "cmp"

// LowerBoundMultiset tracks the relaxed-solution cost of every
// currently open subproblem. Its minimum is the search's global
// lower bound.
type LowerBoundMultiset[C cmp.Ordered] struct {
	counts map[C]int
}

// NewLowerBoundMultiset returns an empty multiset.
func NewLowerBoundMultiset[C cmp.Ordered]() *LowerBoundMultiset[C] {
	return &LowerBoundMultiset[C]{counts: make(map[C]int)}
}

// Register records one more occurrence of cost c.
func (m *LowerBoundMultiset[C]) Register(c C) {
	m.counts[c]++
}

// Discard removes one occurrence of cost c, if present.
func (m *LowerBoundMultiset[C]) Discard(c C) {
	n, ok := m.counts[c]
	if !ok {
		return
	}
	if n <= 1 {
		delete(m.counts, c)
		return
	}
	m.counts[c] = n - 1
}

// Min returns the smallest registered cost, if the multiset is
// non-empty.
func (m *LowerBoundMultiset[C]) Min() (C, bool) {
	var (
		min   C
		found bool
	)
	for c := range m.counts {
		if !found || c < min {
			min = c
			found = true
		}
	}
	return min, found
}

// Len returns the number of distinct registered costs.
func (m *LowerBoundMultiset[C]) Len() int {
	return len(m.counts)
}
