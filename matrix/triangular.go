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

package matrix

// UpperTriangularMatrix is a logical n x n symmetric matrix stored
// packed: internally a rectangular matrix with ceil(n/2) rows and n+1
// columns, which halves the memory needed for symmetric adjacency data
// compared to a full n x n matrix.
type UpperTriangularMatrix[T any] struct {
	dimension int
	numRows   int
	data      *Matrix[T]
}

// NewTriangular returns an UpperTriangularMatrix of the given dimension,
// every logical entry set to the zero value of T.
func NewTriangular[T any](dimension int) *UpperTriangularMatrix[T] {
	numRows := dimension/2 + dimension%2

	return &UpperTriangularMatrix[T]{
		dimension: dimension,
		numRows:   numRows,
		data:      New[T](numRows, dimension+1),
	}
}

// NumRows returns the logical dimension (same as NumCols, the matrix is
// square).
func (m *UpperTriangularMatrix[T]) NumRows() int {
	return m.dimension
}

// NumCols returns the logical dimension.
func (m *UpperTriangularMatrix[T]) NumCols() int {
	return m.dimension
}

// pack maps a logical (i, j) position with i <= j to its position in the
// backing Matrix.
func (m *UpperTriangularMatrix[T]) pack(i, j int) (int, int) {
	n := m.dimension
	if i < m.numRows {
		return i, 1 + j
	}
	return n - 1 - i, n - 1 - j
}

// At returns the element at logical position (i, j). Positions in the
// lower triangle (i > j) read the mirrored upper-triangle entry (j, i),
// so the matrix reads as symmetric.
func (m *UpperTriangularMatrix[T]) At(i, j int) T {
	if i > j {
		i, j = j, i
	}
	row, col := m.pack(i, j)
	return m.data.At(row, col)
}

// Set stores v at logical position (i, j). Writes to the lower triangle
// (i > j) are silently dropped.
func (m *UpperTriangularMatrix[T]) Set(i, j int, v T) {
	if i > j {
		return
	}
	row, col := m.pack(i, j)
	m.data.Set(row, col, v)
}
