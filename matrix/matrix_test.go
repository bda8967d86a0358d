package matrix

import "testing"

func TestMatrixBasic(t *testing.T) {
	m := New[int](10, 20)

	if m.NumRows() != 10 || m.NumCols() != 20 {
		t.Fatalf("unexpected dimensions %d x %d", m.NumRows(), m.NumCols())
	}
	if got := m.At(0, 0); got != 0 {
		t.Fatalf("At(0,0) = %d, want 0", got)
	}

	m.Set(2, 3, 4)
	if got := m.At(2, 3); got != 4 {
		t.Fatalf("At(2,3) = %d, want 4", got)
	}
}

func TestSquareMatrix(t *testing.T) {
	m := Square[bool](3)

	if m.NumRows() != 3 || m.NumCols() != 3 {
		t.Fatalf("unexpected dimensions")
	}

	m.Set(2, 2, true)
	m.Set(1, 1, false)

	if !m.At(2, 2) {
		t.Fatalf("At(2,2) should be true")
	}
	if m.At(1, 1) {
		t.Fatalf("At(1,1) should be false")
	}
}

func TestTriangularSymmetry(t *testing.T) {
	for _, n := range []int{1, 2, 3, 4, 5, 8, 9} {
		tm := NewTriangular[bool](n)
		for i := 0; i < n; i++ {
			for j := i; j < n; j++ {
				tm.Set(i, j, true)
				if !tm.At(i, j) {
					t.Fatalf("n=%d: At(%d,%d) should read back true", n, i, j)
				}
				if !tm.At(j, i) {
					t.Fatalf("n=%d: At(%d,%d) should mirror At(%d,%d)", n, j, i, i, j)
				}
				tm.Set(i, j, false)
			}
		}
	}
}

func TestTriangularLowerWritesDropped(t *testing.T) {
	tm := NewTriangular[int](6)

	tm.Set(4, 2, 99) // lower triangle write, should be a no-op
	if got := tm.At(4, 2); got != 0 {
		t.Fatalf("At(4,2) = %d, want 0 (lower triangle write must be dropped)", got)
	}
	if got := tm.At(2, 4); got != 0 {
		t.Fatalf("At(2,4) = %d, want 0 (write to lower mirror must not leak)", got)
	}
}
