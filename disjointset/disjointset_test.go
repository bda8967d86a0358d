package disjointset

import "testing"

func TestDisjointSetSingletons(t *testing.T) {
	n := 10
	ds := New(n)

	for e := 0; e < n; e++ {
		rep, ok := ds.Representative(e)
		if !ok || rep != e {
			t.Fatalf("Representative(%d) = (%d, %v), want (%d, true)", e, rep, ok, e)
		}
	}

	if _, ok := ds.Representative(n); ok {
		t.Fatalf("Representative(%d) should be out of range", n)
	}
}

func TestDisjointSetJoin(t *testing.T) {
	ds := New(10)

	if err := ds.Join(0, 1); err != nil {
		t.Fatalf("Join(0,1): %v", err)
	}
	r0, _ := ds.Representative(0)
	r1, _ := ds.Representative(1)
	if r0 != r1 {
		t.Fatalf("0 and 1 should share a representative after Join")
	}

	if err := ds.Join(1, 2); err != nil {
		t.Fatalf("Join(1,2): %v", err)
	}
	r0, _ = ds.Representative(0)
	r2, _ := ds.Representative(2)
	if r0 != r2 {
		t.Fatalf("0 and 2 should share a representative transitively")
	}

	if err := ds.Join(0, 4); err != nil {
		t.Fatalf("Join(0,4): %v", err)
	}
	r1, _ = ds.Representative(1)
	r4, _ := ds.Representative(4)
	if r1 != r4 {
		t.Fatalf("1 and 4 should share a representative")
	}

	r1, _ = ds.Representative(1)
	r3, _ := ds.Representative(3)
	if r1 == r3 {
		t.Fatalf("1 and 3 should not share a representative")
	}

	if ds.NumSets() != 7 {
		t.Fatalf("NumSets() = %d, want 7", ds.NumSets())
	}
}

func TestDisjointSetJoinOutOfRange(t *testing.T) {
	ds := New(3)

	if err := ds.Join(0, 3); err == nil {
		t.Fatalf("Join with out-of-range element should fail")
	}
	if err := ds.Join(-1, 0); err == nil {
		t.Fatalf("Join with negative element should fail")
	}
}

func TestDisjointSetIdempotentRepresentative(t *testing.T) {
	ds := New(5)
	ds.Join(0, 1)
	ds.Join(2, 3)
	ds.Join(1, 3)

	for i := 0; i < 5; i++ {
		r1, _ := ds.Representative(i)
		r2, _ := ds.Representative(i)
		if r1 != r2 {
			t.Fatalf("Representative(%d) not idempotent: %d vs %d", i, r1, r2)
		}
	}
}
