package arcline

import (
	"github.com/gogpu/arcline/spatial"
)

// splitSweepSlack pads the sweep cap so small inputs still get a few full
// passes.
const splitSweepSlack = 100

// flatIndexThreshold is the edge count below which the linear broad-phase
// beats the grid.
const flatIndexThreshold = 32

// SplitAll cuts every pair of intersecting edges at each of their mutual
// intersection points, so that no two returned edges cross transversely in
// their interiors; they may share endpoints. Edges that fail [Edge.Check]
// are dropped up front.
//
// The splitter runs full sweeps until one completes without a split. Each
// sweep rebuilds the broad-phase index over the current working set: split
// outputs are fresh edges with fresh ids, which sidesteps the fragile
// bookkeeping of patching an index across subdivisions. A sweep cap bounds
// pathological inputs whose intersection tests flip between iterations; on
// hitting the cap the current best state is returned.
func SplitAll(edges []Edge) []Edge {
	parts := make([]Edge, 0, len(edges))
	for _, e := range edges {
		if e.Check() {
			parts = append(parts, e)
		}
	}
	if len(parts) < 2 {
		return parts
	}

	maxSweeps := 10*len(parts) + splitSweepSlack
	for sweep := 0; sweep < maxSweeps; sweep++ {
		next, changed := splitSweep(parts)
		parts = next
		if !changed {
			return parts
		}
	}
	Logger().Debug("splitter sweep cap reached", "edges", len(parts), "cap", maxSweeps)
	return parts
}

// splitSweep runs one pass over parts. Each edge is paired against its
// broad-phase candidates with larger index; the first pair that splits
// consumes both edges and emits their pieces in place. Edges already
// consumed this sweep are left for the next pass.
func splitSweep(parts []Edge) ([]Edge, bool) {
	index := newEdgeIndex(parts)
	consumed := make([]bool, len(parts))
	next := make([]Edge, 0, len(parts)+4)
	changed := false

	for i := range parts {
		if consumed[i] {
			continue
		}
		matched := false
		for _, j := range index.Query(parts[i].Bounds()) {
			if j <= i || consumed[j] {
				continue
			}
			pieces, ok := splitPair(parts[i], parts[j])
			if !ok {
				continue
			}
			consumed[i], consumed[j] = true, true
			next = append(next, pieces...)
			changed = true
			matched = true
			break
		}
		if !matched {
			next = append(next, parts[i])
		}
	}
	return next, changed
}

// newEdgeIndex builds a broad-phase over the current working set, keyed by
// slice index. Small sets use the flat backend; larger ones a grid with a
// cell on the order of the mean box extent.
func newEdgeIndex(parts []Edge) spatial.Index {
	if len(parts) < flatIndexThreshold {
		index := spatial.NewFlat()
		for i, e := range parts {
			index.Add(i, e.Bounds())
		}
		return index
	}
	var extent float64
	boxes := make([]spatial.AABB, len(parts))
	for i, e := range parts {
		boxes[i] = e.Bounds()
		extent += max(boxes[i].Width(), boxes[i].Height())
	}
	cell := extent / float64(len(parts))
	if cell <= 0 {
		cell = 1
	}
	index := spatial.NewGrid(cell)
	for i, box := range boxes {
		index.Add(i, box)
	}
	return index
}

// splitPair cuts e0 and e1 at their mutual intersections. It reports false
// when the pair does not intersect, only touches at endpoints, or every
// intersection point coincides with an endpoint of both edges (splitting
// there would only manufacture zero-length pieces).
func splitPair(e0, e1 Edge) ([]Edge, bool) {
	switch {
	case e0.IsSeg() && e1.IsSeg():
		res := intersectSegSeg(e0.A, e0.B, e1.A, e1.B)
		switch res.kind {
		case segSegPoint:
			return splitAtPoints(e0, e1, []Point{res.p})
		case segSegOverlap:
			return splitOverlap(res.q)
		}
		return nil, false
	case e0.IsSeg():
		res := intersectSegArc(e0.A, e0.B, e1)
		return splitAtPoints(e0, e1, res.points())
	case e1.IsSeg():
		res := intersectSegArc(e1.A, e1.B, e0)
		return splitAtPoints(e0, e1, res.points())
	default:
		res := intersectArcArc(e0, e1)
		if res.kind == arcArcCocircular {
			pieces := subdivideAt(e0, res.splits0)
			pieces = append(pieces, subdivideAt(e1, res.splits1)...)
			return pieces, len(pieces) > 2
		}
		switch res.kind {
		case arcArcOnePoint, arcArcOnePointTouch:
			return splitAtPoints(e0, e1, []Point{res.p0})
		case arcArcTwoPoints, arcArcTwoPointsTouch:
			return splitAtPoints(e0, e1, []Point{res.p0, res.p1})
		}
		return nil, false
	}
}

// splitAtPoints subdivides both edges at the given intersection points.
// Progress requires that at least one edge actually split into two pieces.
func splitAtPoints(e0, e1 Edge, pts []Point) ([]Edge, bool) {
	if len(pts) == 0 {
		return nil, false
	}
	pieces := subdivideAt(e0, pts)
	pieces = append(pieces, subdivideAt(e1, pts)...)
	return pieces, len(pieces) > 2
}

// splitOverlap turns the four sorted endpoints of a collinear overlap into
// up to three segments, one per span, dropping collapsed spans. The
// decomposition covers both input segments; shared spans are emitted once.
func splitOverlap(q [4]Point) ([]Edge, bool) {
	var pieces []Edge
	for i := 0; i < 3; i++ {
		if CollapsedEnds(q[i], q[i+1]) {
			continue
		}
		pieces = append(pieces, Seg(q[i], q[i+1]))
	}
	return pieces, len(pieces) > 0
}

// subdivideAt cuts one edge at the subset of pts interior to it. Points
// within the collapse threshold of an endpoint are skipped, so no
// zero-length piece is ever produced; if no point survives the filter the
// edge is returned whole.
func subdivideAt(e Edge, pts []Point) []Edge {
	var interior []Point
	for _, p := range pts {
		if p.CloseEnough(e.A, epsCollapsed) || p.CloseEnough(e.B, epsCollapsed) {
			continue
		}
		interior = append(interior, p)
	}
	switch len(interior) {
	case 0:
		return []Edge{e}
	case 1:
		return appendChecked(nil, e.cut(e.A, interior[0]), e.cut(interior[0], e.B))
	default:
		p0, p1 := interior[0], interior[1]
		if e.IsSeg() {
			dir := e.B.Sub(e.A)
			if dir.Dot(p0) > dir.Dot(p1) {
				p0, p1 = p1, p0
			}
		} else {
			p0, p1 = e.orderCCWFrom(p0, p1)
		}
		return appendChecked(nil, e.cut(e.A, p0), e.cut(p0, p1), e.cut(p1, e.B))
	}
}

// cut returns the sub-edge of e between two points on it.
func (e Edge) cut(a, b Point) Edge {
	if e.IsSeg() {
		return Seg(a, b)
	}
	return NewEdge(a, b, e.C, e.R)
}

func appendChecked(dst []Edge, pieces ...Edge) []Edge {
	for _, p := range pieces {
		if p.Check() {
			dst = append(dst, p)
		}
	}
	return dst
}
