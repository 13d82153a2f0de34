package arcline

import (
	"testing"
)

func square() []Edge {
	return []Edge{
		Seg(Pt(0, 0), Pt(1, 0)),
		Seg(Pt(1, 0), Pt(1, 1)),
		Seg(Pt(1, 1), Pt(0, 1)),
		Seg(Pt(0, 1), Pt(0, 0)),
	}
}

func TestNewGraph_Consistency(t *testing.T) {
	g := NewGraph(square())

	if g.VertexCount() != 4 {
		t.Errorf("VertexCount = %d, want 4", g.VertexCount())
	}
	if g.EdgeCount() != 4 {
		t.Errorf("EdgeCount = %d, want 4", g.EdgeCount())
	}

	// Every edge's endpoints match their claimed vertices within VertexTol.
	for e := 0; e < g.EdgeCount(); e++ {
		u, v := g.Ends(e)
		geo := g.Edge(e)
		if geo.A.Distance(g.Vertex(u)) > VertexTol {
			t.Errorf("edge %d: A=%v far from vertex %v", e, geo.A, g.Vertex(u))
		}
		if geo.B.Distance(g.Vertex(v)) > VertexTol {
			t.Errorf("edge %d: B=%v far from vertex %v", e, geo.B, g.Vertex(v))
		}
	}

	// Degree sum equals 2|E|.
	degree := 0
	for v := 0; v < g.VertexCount(); v++ {
		degree += len(g.Neighbors(v))
	}
	if degree != 2*g.EdgeCount() {
		t.Errorf("degree sum = %d, want %d", degree, 2*g.EdgeCount())
	}
}

func TestNewGraph_VertexMergeWithinTolerance(t *testing.T) {
	edges := []Edge{
		Seg(Pt(0, 0), Pt(1, 0)),
		Seg(Pt(1, 1e-9), Pt(2, 0)),
	}
	g := NewGraph(edges)
	if g.VertexCount() != 3 {
		t.Errorf("VertexCount = %d, want 3 (jittered endpoints identified)", g.VertexCount())
	}
}

func TestGraph_Loop(t *testing.T) {
	// An edge whose endpoints collapse to the same vertex appears twice in
	// the adjacency of that vertex.
	edges := []Edge{
		Seg(Pt(0, 0), Pt(1e-9, 0)),
	}
	g := NewGraph(edges)
	if g.VertexCount() != 1 {
		t.Fatalf("VertexCount = %d, want 1", g.VertexCount())
	}
	if n := len(g.Neighbors(0)); n != 2 {
		t.Errorf("loop adjacency count = %d, want 2", n)
	}
	if g.OtherEnd(0, 0) != 0 {
		t.Errorf("OtherEnd of a loop = %d, want 0", g.OtherEnd(0, 0))
	}
}

func TestFindCycles_Square(t *testing.T) {
	g := NewGraph(square())
	cycles := g.FindCycles()

	if len(cycles) != 1 {
		t.Fatalf("got %d cycles, want 1", len(cycles))
	}
	if len(cycles[0]) != 4 {
		t.Errorf("cycle has %d edges, want 4", len(cycles[0]))
	}
}

func TestFindCycles_DanglingEdgeIgnored(t *testing.T) {
	edges := append(square(), Seg(Pt(1, 1), Pt(2, 2)))
	g := NewGraph(edges)
	cycles := g.FindCycles()

	if len(cycles) != 1 {
		t.Fatalf("got %d cycles, want 1", len(cycles))
	}
	for _, e := range cycles[0] {
		if e.B == Pt(2, 2) || e.A == Pt(2, 2) {
			t.Error("dangling edge appeared in a cycle")
		}
	}
}

func TestFindCycles_ParallelEdges(t *testing.T) {
	// Two arcs between the same two vertices on different circles form a
	// two-edge cycle; neither edge is used twice.
	lower := NewEdge(Pt(-1, 0), Pt(1, 0), Pt(0, 0), 1)
	upper := NewEdge(Pt(1, 0), Pt(-1, 0), Pt(0, 0), 1)
	g := NewGraph([]Edge{lower, upper})

	if g.VertexCount() != 2 {
		t.Fatalf("VertexCount = %d, want 2", g.VertexCount())
	}
	cycles := g.FindCycles()
	if len(cycles) != 1 {
		t.Fatalf("got %d cycles, want 1", len(cycles))
	}
	if len(cycles[0]) != 2 {
		t.Errorf("cycle has %d edges, want 2", len(cycles[0]))
	}
}

func TestFindCycles_TwoComponents(t *testing.T) {
	edges := append(square(),
		Seg(Pt(3, 0), Pt(4, 0)),
		Seg(Pt(4, 0), Pt(3.5, 1)),
		Seg(Pt(3.5, 1), Pt(3, 0)),
	)
	g := NewGraph(edges)
	cycles := g.FindCycles()

	if len(cycles) != 2 {
		t.Fatalf("got %d cycles, want 2", len(cycles))
	}
	if len(cycles[0]) != 4 || len(cycles[1]) != 3 {
		t.Errorf("cycle sizes = %d, %d, want 4, 3", len(cycles[0]), len(cycles[1]))
	}
}

func TestFindCycles_GlobalEdgeDisjointness(t *testing.T) {
	// Figure eight: two lobes sharing the origin. Every edge belongs to at
	// most one cycle.
	edges := []Edge{
		Seg(Pt(-1, 0), Pt(0, 0)),
		Seg(Pt(0, 0), Pt(1, 0)),
		Seg(Pt(1, 0), Pt(1, 1)),
		Seg(Pt(1, 1), Pt(0, 0)),
		Seg(Pt(0, 0), Pt(-1, -1)),
		Seg(Pt(-1, -1), Pt(-1, 0)),
	}
	g := NewGraph(edges)
	cycles := g.FindCycles()

	seen := map[Edge]bool{}
	for _, cycle := range cycles {
		for _, e := range cycle {
			if seen[e] {
				t.Errorf("edge %v appears in more than one cycle", e)
			}
			seen[e] = true
		}
	}
	for _, cycle := range cycles {
		local := map[Edge]bool{}
		for _, e := range cycle {
			if local[e] {
				t.Errorf("edge %v repeated within one cycle", e)
			}
			local[e] = true
		}
	}
}
