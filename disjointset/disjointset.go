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

// Package disjointset implements a union-find structure with union by
// rank and path compression, used to track connected components while
// building a spanning forest.
package disjointset

import "errors"

var errOutOfRange = errors.New("disjointset: element index out of range")

// DisjointSet tracks a partition of [0,n) into disjoint sets.
type DisjointSet struct {
	parent []int
	rank   []int
	sets   int
}

// New returns a DisjointSet with n singleton sets {0}, {1}, ..., {n-1}.
func New(n int) *DisjointSet {
	parent := make([]int, n)
	for i := range parent {
		parent[i] = i
	}
	return &DisjointSet{
		parent: parent,
		rank:   make([]int, n),
		sets:   n,
	}
}

func (d *DisjointSet) valid(e int) bool {
	return e >= 0 && e < len(d.parent)
}

// Representative returns the root of the set containing element, applying
// path compression along the way. It returns false when element is out of
// range.
func (d *DisjointSet) Representative(element int) (int, bool) {
	if !d.valid(element) {
		return 0, false
	}
	return d.find(element), true
}

func (d *DisjointSet) find(element int) int {
	if d.parent[element] != element {
		d.parent[element] = d.find(d.parent[element])
	}
	return d.parent[element]
}

// Join merges the sets containing a and b using union by rank. It fails
// when either argument is out of range.
func (d *DisjointSet) Join(a, b int) error {
	if !d.valid(a) || !d.valid(b) {
		return errOutOfRange
	}
	repA := d.find(a)
	repB := d.find(b)
	if repA == repB {
		return nil
	}

	switch {
	case d.rank[repA] < d.rank[repB]:
		d.parent[repA] = repB
	case d.rank[repA] > d.rank[repB]:
		d.parent[repB] = repA
	default:
		d.parent[repA] = repB
		d.rank[repB]++
	}
	d.sets--

	return nil
}

// NumSets returns the number of disjoint sets currently tracked.
func (d *DisjointSet) NumSets() int {
	return d.sets
}

// Len returns the number of elements the DisjointSet was built over.
func (d *DisjointSet) Len() int {
	return len(d.parent)
}
