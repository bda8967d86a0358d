package instance

import (
	"path/filepath"
	"testing"

	"github.com/flxj/mstdc/graph"
)

func buildSample(t *testing.T) *Instance {
	t.Helper()

	g := graph.NewWeighted(4)
	g.AddEdge(0, 1)
	g.SetEdgeWeight(0, 1, 1)
	g.AddEdge(1, 2)
	g.SetEdgeWeight(1, 2, 2)
	g.AddEdge(2, 3)
	g.SetEdgeWeight(2, 3, 3)

	d := graph.NewDigraph(g.NumEdges())
	d.AddEdge(0, 1)

	lb := Bounds{}
	ub := Bounds{}
	for _, e := range g.Edges() {
		lb[e] = 0
		ub[e] = 4
	}

	ins, err := New(g, d, lb, ub)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return ins
}

func TestNewRejectsMissingBounds(t *testing.T) {
	g := graph.NewWeighted(2)
	g.AddEdge(0, 1)
	d := graph.NewDigraph(g.NumEdges())

	if _, err := New(g, d, Bounds{}, Bounds{}); err == nil {
		t.Fatalf("expected an error for missing bounds")
	}
}

func TestNewRejectsInvertedBounds(t *testing.T) {
	g := graph.NewWeighted(2)
	g.AddEdge(0, 1)
	d := graph.NewDigraph(g.NumEdges())

	e := g.Edges()[0]
	lb := Bounds{e: 5}
	ub := Bounds{e: 1}

	if _, err := New(g, d, lb, ub); err == nil {
		t.Fatalf("expected an error when lower bound exceeds upper bound")
	}
}

func TestNewRejectsDigraphMismatch(t *testing.T) {
	g := graph.NewWeighted(3)
	g.AddEdge(0, 1)
	g.AddEdge(1, 2)
	d := graph.NewDigraph(1) // should have 2 vertices, one per edge

	lb, ub := Bounds{}, Bounds{}
	for _, e := range g.Edges() {
		lb[e] = 0
		ub[e] = 1
	}

	if _, err := New(g, d, lb, ub); err == nil {
		t.Fatalf("expected an error when the dependency digraph's vertex count does not match the edge count")
	}
}

func TestInstanceFileRoundTrip(t *testing.T) {
	ins := buildSample(t)

	dir := t.TempDir()
	gFile := filepath.Join(dir, "g.txt")
	dFile := filepath.Join(dir, "d.txt")
	bFile := filepath.Join(dir, "b.txt")

	if err := ins.ToFiles(gFile, dFile, bFile); err != nil {
		t.Fatalf("ToFiles: %v", err)
	}

	got, err := FromFiles(gFile, dFile, bFile)
	if err != nil {
		t.Fatalf("FromFiles: %v", err)
	}

	if got.NumVerts() != ins.NumVerts() {
		t.Fatalf("NumVerts() = %d, want %d", got.NumVerts(), ins.NumVerts())
	}
	for _, e := range ins.Graph().Edges() {
		wantW, _ := ins.Graph().GetEdgeWeight(e.U, e.V)
		gotW, ok := got.Graph().GetEdgeWeight(e.U, e.V)
		if !ok || gotW != wantW {
			t.Fatalf("weight(%v) = %d, ok=%v, want %d", e, gotW, ok, wantW)
		}
		if got.LowerBound(e) != ins.LowerBound(e) || got.UpperBound(e) != ins.UpperBound(e) {
			t.Fatalf("bounds(%v) = [%d,%d], want [%d,%d]", e, got.LowerBound(e), got.UpperBound(e), ins.LowerBound(e), ins.UpperBound(e))
		}
	}
	for _, a := range ins.Dependencies().Edges() {
		if !got.Dependencies().HasEdge(a.U, a.V) {
			t.Fatalf("round trip missing dependency arc %v", a)
		}
	}
}
