package graph

import "testing"

func TestGraphBasic(t *testing.T) {
	g := New(8)

	if g.NumVerts() != 8 || g.NumEdges() != 0 {
		t.Fatalf("unexpected initial state: verts=%d edges=%d", g.NumVerts(), g.NumEdges())
	}

	if g.HasEdge(3, 5) {
		t.Fatalf("HasEdge(3,5) should be false initially")
	}
	if err := g.AddEdge(3, 5); err != nil {
		t.Fatalf("AddEdge(3,5): %v", err)
	}
	if !g.HasEdge(3, 5) || !g.HasEdge(5, 3) {
		t.Fatalf("HasEdge should be symmetric")
	}
	if g.NumEdges() != 1 {
		t.Fatalf("NumEdges() = %d, want 1", g.NumEdges())
	}
	if err := g.AddEdge(5, 3); !IsAlreadyExists(err) {
		t.Fatalf("AddEdge of an existing edge should fail with IsAlreadyExists, got %v", err)
	}

	if err := g.AddEdge(1, 2); err != nil {
		t.Fatalf("AddEdge(1,2): %v", err)
	}
	if err := g.RemoveEdge(5, 3); err != nil {
		t.Fatalf("RemoveEdge(5,3): %v", err)
	}
	if g.HasEdge(3, 5) {
		t.Fatalf("edge should be gone after RemoveEdge")
	}
	if err := g.RemoveEdge(5, 3); !IsNotExists(err) {
		t.Fatalf("RemoveEdge of a missing edge should fail with IsNotExists, got %v", err)
	}

	g.AddEdge(2, 3)
	g.AddEdge(1, 0)

	want := []Edge{{0, 1}, {1, 2}, {2, 3}}
	got := g.Edges()
	if len(got) != len(want) {
		t.Fatalf("Edges() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Edges()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestDigraphBasic(t *testing.T) {
	d := NewDigraph(6)

	if d.NumVerts() != 6 || d.NumEdges() != 0 {
		t.Fatalf("unexpected initial state")
	}

	if d.HasEdge(3, 5) {
		t.Fatalf("HasEdge(3,5) should be false")
	}
	d.AddEdge(3, 5)
	if !d.HasEdge(3, 5) {
		t.Fatalf("HasEdge(3,5) should be true")
	}
	if d.NumEdges() != 1 {
		t.Fatalf("NumEdges() = %d, want 1", d.NumEdges())
	}

	if d.HasEdge(5, 3) {
		t.Fatalf("arc direction should matter")
	}
	d.AddEdge(5, 3)
	if d.NumEdges() != 2 {
		t.Fatalf("NumEdges() = %d, want 2", d.NumEdges())
	}

	d.AddEdge(1, 2)
	if d.NumEdges() != 3 {
		t.Fatalf("NumEdges() = %d, want 3", d.NumEdges())
	}

	d.RemoveEdge(5, 3)
	if d.NumEdges() != 2 {
		t.Fatalf("NumEdges() = %d, want 2", d.NumEdges())
	}
	if d.HasEdge(5, 3) {
		t.Fatalf("arc should be gone")
	}
	if err := d.RemoveEdge(5, 3); err == nil {
		t.Fatalf("RemoveEdge of a missing arc should fail")
	}

	edges := d.Edges()
	want := []Edge{{1, 2}, {3, 5}}
	if len(edges) != len(want) {
		t.Fatalf("Edges() = %v, want %v", edges, want)
	}
	for i := range want {
		if edges[i] != want[i] {
			t.Fatalf("Edges()[%d] = %v, want %v", i, edges[i], want[i])
		}
	}
}

func TestSubgraphOverlay(t *testing.T) {
	g := Complete(5)

	if g.NumVerts() != 5 || g.NumEdges() != 10 {
		t.Fatalf("complete graph should have 10 edges, got %d", g.NumEdges())
	}

	sg := FromGraph(g)
	if sg.NumVerts() != 5 || sg.NumEdges() != 10 {
		t.Fatalf("fresh subgraph should mirror parent")
	}

	if !sg.HasEdge(1, 2) {
		t.Fatalf("sg should have edge (1,2)")
	}
	if err := sg.RemoveEdge(1, 2); err != nil {
		t.Fatalf("RemoveEdge(1,2): %v", err)
	}
	if g.HasEdge(1, 2) != true {
		t.Fatalf("parent graph must not be mutated")
	}
	if sg.HasEdge(1, 2) {
		t.Fatalf("sg should no longer have edge (1,2)")
	}
	if err := sg.RemoveEdge(1, 2); err == nil {
		t.Fatalf("removing an already-removed edge should fail")
	}

	if err := sg.AddEdge(1, 2); err != nil {
		t.Fatalf("AddEdge(1,2): %v", err)
	}
	if !sg.HasEdge(1, 2) {
		t.Fatalf("sg should have edge (1,2) again")
	}
	if err := sg.AddEdge(1, 2); err == nil {
		t.Fatalf("adding an already-present edge should fail")
	}
}

func TestSubgraphOfEmptyGraph(t *testing.T) {
	g := New(10)
	sg := FromGraph(g)

	if sg.NumVerts() != 10 || sg.NumEdges() != 0 {
		t.Fatalf("fresh subgraph of empty graph should be empty")
	}
	if sg.HasEdge(1, 2) {
		t.Fatalf("no edges expected")
	}

	if err := sg.AddEdge(1, 2); err != nil {
		t.Fatalf("AddEdge(1,2): %v", err)
	}
	if g.HasEdge(1, 2) {
		t.Fatalf("parent graph must not be mutated")
	}
	if !sg.HasEdge(1, 2) {
		t.Fatalf("overlay should report the added edge")
	}

	if err := sg.RemoveEdge(1, 2); err != nil {
		t.Fatalf("RemoveEdge(1,2): %v", err)
	}
	if sg.HasEdge(1, 2) {
		t.Fatalf("edge should be gone")
	}

	sg2 := FromSubgraph(sg)
	if err := sg2.RemoveEdge(1, 2); err == nil {
		t.Fatalf("removing a never-added edge should fail")
	}
	if err := sg2.AddEdge(1, 2); err != nil {
		t.Fatalf("AddEdge(1,2) on sg2: %v", err)
	}
	if sg.HasEdge(1, 2) {
		t.Fatalf("sg2 must not affect sg")
	}
	if !sg2.HasEdge(1, 2) {
		t.Fatalf("sg2 should have edge (1,2)")
	}
}

func TestWeightedGraph(t *testing.T) {
	wg := NewWeighted(4)
	wg.AddEdge(0, 1)

	weight, ok := wg.GetEdgeWeight(0, 1)
	if !ok || weight != 0 {
		t.Fatalf("default weight should be 0, got %d, ok=%v", weight, ok)
	}

	old, ok := wg.SetEdgeWeight(0, 1, 7)
	if !ok || old != 0 {
		t.Fatalf("SetEdgeWeight should return previous weight 0, got %d, ok=%v", old, ok)
	}
	weight, _ = wg.GetEdgeWeight(0, 1)
	if weight != 7 {
		t.Fatalf("GetEdgeWeight after Set = %d, want 7", weight)
	}

	if _, ok := wg.SetEdgeWeight(2, 3, 5); ok {
		t.Fatalf("SetEdgeWeight on a missing edge should fail")
	}

	wg.RemoveEdge(0, 1)
	if _, ok := wg.GetEdgeWeight(0, 1); ok {
		t.Fatalf("weight should be gone after RemoveEdge")
	}
}
