package arcline

import (
	"math"
	"reflect"
	"testing"
)

// sharesEndpoint reports whether two edges have endpoints within tol.
func sharesEndpoint(e0, e1 Edge, tol float64) bool {
	return e0.A.Distance(e1.A) <= tol || e0.A.Distance(e1.B) <= tol ||
		e0.B.Distance(e1.A) <= tol || e0.B.Distance(e1.B) <= tol
}

// assertCycleClosed fails unless consecutive edges (and last-to-first)
// share an endpoint within ConnectTol.
func assertCycleClosed(t *testing.T, cycle []Edge) {
	t.Helper()
	for i := range cycle {
		next := cycle[(i+1)%len(cycle)]
		if !sharesEndpoint(cycle[i], next, ConnectTol) {
			t.Errorf("cycle breaks between edge %d and %d: %+v / %+v", i, (i+1)%len(cycle), cycle[i], next)
		}
	}
}

// cycleArea returns the unsigned area enclosed by a cycle: the shoelace
// sum over chords plus the circular-segment areas of traversed arcs.
func cycleArea(cycle []Edge) float64 {
	if len(cycle) == 0 {
		return 0
	}
	pos := cycle[0].A
	area := 0.0
	for _, e := range cycle {
		forward := e.A.Distance(pos) <= e.B.Distance(pos)
		a, b := e.A, e.B
		if !forward {
			a, b = b, a
		}
		area += 0.5 * a.Cross(b)
		if e.IsArc() {
			a0 := math.Atan2(e.A.Y-e.C.Y, e.A.X-e.C.X)
			a1 := math.Atan2(e.B.Y-e.C.Y, e.B.X-e.C.X)
			if a1 <= a0 {
				a1 += 2 * math.Pi
			}
			segment := 0.5 * e.R * e.R * ((a1 - a0) - math.Sin(a1-a0))
			if forward {
				area += segment
			} else {
				area -= segment
			}
		}
		pos = b
	}
	return math.Abs(area)
}

func TestReconcile_EmptyInput(t *testing.T) {
	if got := Reconcile(nil); got != nil {
		t.Errorf("Reconcile(nil) = %v, want nil", got)
	}
	if got := Reconcile([]Edge{}); got != nil {
		t.Errorf("Reconcile(empty) = %v, want nil", got)
	}
}

func TestReconcile_JitteredUnitSquare(t *testing.T) {
	edges := []Edge{
		Seg(Pt(0, 0), Pt(1, 0)),
		Seg(Pt(1+1e-9, 1e-9), Pt(1, 1)),
		Seg(Pt(1, 1), Pt(0, 1)),
		Seg(Pt(-1e-9, 1), Pt(0, 0)),
	}
	cycles := Reconcile(edges)

	if len(cycles) != 1 {
		t.Fatalf("got %d cycles, want 1", len(cycles))
	}
	if len(cycles[0]) != 4 {
		t.Fatalf("cycle has %d edges, want 4", len(cycles[0]))
	}
	assertCycleClosed(t, cycles[0])
	// Touching endpoints coincide exactly after the merge.
	for i, e := range cycles[0] {
		next := cycles[0][(i+1)%4]
		if e.A.Distance(next.A) > 1e-10 && e.A.Distance(next.B) > 1e-10 &&
			e.B.Distance(next.A) > 1e-10 && e.B.Distance(next.B) > 1e-10 {
			t.Errorf("edges %d and %d not snapped together", i, (i+1)%4)
		}
	}
}

func TestReconcile_TwoDisjointTriangles(t *testing.T) {
	edges := []Edge{
		Seg(Pt(0, 0), Pt(1, 0)),
		Seg(Pt(1, 0), Pt(0.5, 1)),
		Seg(Pt(0.5, 1), Pt(0, 0)),
		Seg(Pt(3, 0), Pt(4, 0)),
		Seg(Pt(4, 0), Pt(3.5, 1)),
		Seg(Pt(3.5, 1), Pt(3, 0)),
	}
	cycles := Reconcile(edges)

	if len(cycles) != 2 {
		t.Fatalf("got %d cycles, want 2", len(cycles))
	}
	for i, cycle := range cycles {
		if len(cycle) != 3 {
			t.Errorf("cycle %d has %d edges, want 3", i, len(cycle))
		}
		assertCycleClosed(t, cycle)
	}
}

func TestReconcile_FigureEight(t *testing.T) {
	// Four spokes meeting at the origin plus four closing diagonals. The
	// rightmost-turn rule must separate the crossing into cycles that do
	// not cross themselves, never a single self-crossing loop.
	edges := []Edge{
		Seg(Pt(-1, 0), Pt(0, 0)),
		Seg(Pt(0, 0), Pt(1, 0)),
		Seg(Pt(0, -1), Pt(0, 0)),
		Seg(Pt(0, 0), Pt(0, 1)),
		Seg(Pt(1, 0), Pt(0, 1)),
		Seg(Pt(0, 1), Pt(-1, 0)),
		Seg(Pt(-1, 0), Pt(0, -1)),
		Seg(Pt(0, -1), Pt(1, 0)),
	}
	cycles := Reconcile(edges)

	if len(cycles) != 2 {
		t.Fatalf("got %d cycles, want 2", len(cycles))
	}
	for i, cycle := range cycles {
		assertCycleClosed(t, cycle)
		assertNoTransverse(t, cycle)
		if len(cycle) == len(edges) {
			t.Errorf("cycle %d swallowed the whole figure eight", i)
		}
	}
}

func TestReconcile_ArcSegmentBox(t *testing.T) {
	edges := []Edge{
		Seg(Pt(0, 0), Pt(2, 0)),
		NewEdge(Pt(2, 0), Pt(2, 2), Pt(2, 1), 1),
		Seg(Pt(2, 2), Pt(0, 2)),
		Seg(Pt(0, 2), Pt(0, 0)),
	}
	cycles := Reconcile(edges)

	if len(cycles) != 1 {
		t.Fatalf("got %d cycles, want 1", len(cycles))
	}
	if len(cycles[0]) != 4 {
		t.Fatalf("cycle has %d edges, want 4", len(cycles[0]))
	}
	assertCycleClosed(t, cycles[0])

	want := 4 + math.Pi/2
	if got := cycleArea(cycles[0]); math.Abs(got-want) > 1e-8 {
		t.Errorf("area = %v, want %v", got, want)
	}
}

func TestReconcile_CrossingSquareDiagonals(t *testing.T) {
	// A square with both diagonals: the splitter cuts the diagonals at the
	// center, and extraction yields non-crossing cycles only.
	edges := append(square(),
		Seg(Pt(0, 0), Pt(1, 1)),
		Seg(Pt(1, 0), Pt(0, 1)),
	)
	cycles := Reconcile(edges)

	if len(cycles) == 0 {
		t.Fatal("no cycles extracted")
	}
	for _, cycle := range cycles {
		assertCycleClosed(t, cycle)
		assertNoTransverse(t, cycle)
	}
}

func TestReconcile_Deterministic(t *testing.T) {
	edges := append(square(),
		Seg(Pt(0, 0), Pt(1, 1)),
		Seg(Pt(1, 0), Pt(0, 1)),
		NewEdge(Pt(1, 0.5), Pt(0, 0.5), Pt(0.5, 0.5), 0.5),
	)
	a := Reconcile(append([]Edge(nil), edges...))
	b := Reconcile(append([]Edge(nil), edges...))

	if !reflect.DeepEqual(a, b) {
		t.Error("identical inputs produced different outputs")
	}
}

func TestReconcile_Idempotent(t *testing.T) {
	edges := append(square(),
		Seg(Pt(0, 0), Pt(1, 1)),
		Seg(Pt(1, 0), Pt(0, 1)),
	)
	first := Reconcile(edges)

	var flat []Edge
	total := 0
	for _, cycle := range first {
		flat = append(flat, cycle...)
		total += len(cycle)
	}
	second := Reconcile(flat)

	if len(second) != len(first) {
		t.Fatalf("cycle count changed: %d -> %d", len(first), len(second))
	}
	again := 0
	for _, cycle := range second {
		again += len(cycle)
	}
	if again != total {
		t.Errorf("edge count changed: %d -> %d", total, again)
	}
}

func TestOffsetPolyline_Triangle(t *testing.T) {
	pline := Polyline{
		PV(Pt(0, 0), 0),
		PV(Pt(100, 100), 0.5),
		PV(Pt(200, 0), 1.3),
	}
	cycles := OffsetPolyline(pline.Reverse(), 15)

	if len(cycles) == 0 {
		t.Fatal("no offset cycles produced")
	}
	for _, cycle := range cycles {
		if len(cycle) < 2 {
			t.Errorf("cycle shorter than 2 edges: %v", cycle)
		}
		assertCycleClosed(t, cycle)
	}
}

func TestOffsetPolyline_Pline01(t *testing.T) {
	if testing.Short() {
		t.Skip("stress fixture")
	}
	pline := Pline01()
	cycles := OffsetPolyline(pline, 16)

	if len(cycles) == 0 {
		t.Fatal("no offset cycles produced")
	}
	seen := map[Edge]bool{}
	for _, cycle := range cycles {
		assertCycleClosed(t, cycle)
		for _, e := range cycle {
			if seen[e] {
				t.Errorf("edge reused across cycles: %+v", e)
			}
			seen[e] = true
		}
	}

	again := OffsetPolyline(Pline01(), 16)
	if !reflect.DeepEqual(cycles, again) {
		t.Error("offset pipeline is not deterministic")
	}
}

func TestOffsetPolyline_EmptyInput(t *testing.T) {
	if got := OffsetPolyline(nil, 10); got != nil {
		t.Errorf("OffsetPolyline(nil) = %v, want nil", got)
	}
	if got := OffsetPolyline(Polyline{PV(Pt(0, 0), 0)}, 10); got != nil {
		t.Errorf("single vertex: got %v, want nil", got)
	}
}
