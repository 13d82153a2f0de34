package arcline

import "math"

// Distance kernels used by offset pruning. All distances are unsigned;
// intersecting or touching pairs have distance zero.

// distPointSeg returns the closest point on segment a-b to p and the
// distance to it.
func distPointSeg(p, a, b Point) (Point, float64) {
	dir := b.Sub(a)
	var closest Point
	if t := dir.Dot(p.Sub(b)); t >= 0 {
		closest = b
	} else if t := dir.Dot(p.Sub(a)); t <= 0 {
		closest = a
	} else {
		sqrLen := dir.Dot(dir)
		if sqrLen > 0 {
			closest = a.Add(dir.Mul(t / sqrLen))
		} else {
			closest = a
		}
	}
	return closest, p.Sub(closest).Length()
}

// distPointCircle returns the closest point on the circle to p and the
// distance to it. For p at the center every circle point is equidistant and
// the flag is set.
func distPointCircle(p, c Point, r float64) (Point, float64, bool) {
	diff := p.Sub(c)
	length := diff.Length()
	if length > 0 {
		closest := c.Add(diff.Div(length).Mul(r))
		return closest, math.Abs(length - r), false
	}
	return c.Add(Pt(r, 0)), r, true
}

// distPointArc returns the distance from p to the arc: the circle distance
// when the circle's closest point lies on the sweep, otherwise the nearer
// endpoint.
func distPointArc(p Point, arc Edge) float64 {
	closest, dist, equidistant := distPointCircle(p, arc.C, arc.R)
	if equidistant {
		return arc.R
	}
	if arc.Contains(closest) {
		return dist
	}
	return min(arc.A.Sub(p).Length(), arc.B.Sub(p).Length())
}

// distSegSeg returns the distance between two segments.
func distSegSeg(a0, a1, b0, b1 Point) float64 {
	if intersectSegSeg(a0, a1, b0, b1).kind != segSegNone {
		return 0
	}
	_, d0 := distPointSeg(a0, b0, b1)
	_, d1 := distPointSeg(a1, b0, b1)
	_, d2 := distPointSeg(b0, a0, a1)
	_, d3 := distPointSeg(b1, a0, a1)
	return min(min(d0, d1), min(d2, d3))
}

// distSegArc returns the distance between a segment and an arc.
func distSegArc(a, b Point, arc Edge) float64 {
	if intersectSegArc(a, b, arc).kind != segArcNone {
		return 0
	}
	_, d0 := distPointSeg(arc.A, a, b)
	_, d1 := distPointSeg(arc.B, a, b)
	d2 := distPointArc(a, arc)
	d3 := distPointArc(b, arc)
	dist := min(min(d0, d1), min(d2, d3))

	// Interior pair: the foot of the center on the segment against the
	// circle point below it, valid when that circle point is on the sweep.
	foot, _ := distPointSeg(arc.C, a, b)
	if closest, _, equidistant := distPointCircle(foot, arc.C, arc.R); !equidistant && arc.Contains(closest) {
		dist = min(dist, foot.Sub(closest).Length())
	}
	return dist
}

// distArcArc returns the distance between two arcs.
func distArcArc(e0, e1 Edge) float64 {
	if intersectArcArc(e0, e1).kind != arcArcNone {
		return 0
	}
	dist := min(
		min(distPointArc(e0.A, e1), distPointArc(e0.B, e1)),
		min(distPointArc(e1.A, e0), distPointArc(e1.B, e0)),
	)

	// Interior pair along the line of centers, when it crosses both
	// sweeps.
	dir, n := e1.C.Sub(e0.C).Normalize()
	if n > 0 {
		if p0, ok := arcPointOnCenterLine(e0, dir); ok {
			if p1, ok := arcPointOnCenterLine(e1, dir); ok {
				dist = min(dist, p0.Sub(p1).Length())
			}
		}
	}
	return dist
}

// arcPointOnCenterLine returns the point of the arc hit by the line through
// its center with direction dir, if any.
func arcPointOnCenterLine(arc Edge, dir Point) (Point, bool) {
	for _, p := range []Point{arc.C.Add(dir.Mul(arc.R)), arc.C.Sub(dir.Mul(arc.R))} {
		if arc.Contains(p) {
			return p, true
		}
	}
	return Point{}, false
}

// distEdgeEdge dispatches on the edge kinds.
func distEdgeEdge(e0, e1 Edge) float64 {
	switch {
	case e0.IsSeg() && e1.IsSeg():
		return distSegSeg(e0.A, e0.B, e1.A, e1.B)
	case e0.IsSeg():
		return distSegArc(e0.A, e0.B, e1)
	case e1.IsSeg():
		return distSegArc(e1.A, e1.B, e0)
	default:
		return distArcArc(e0, e1)
	}
}
