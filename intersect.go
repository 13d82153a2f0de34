package arcline

import "sort"

// Intersection kernels for the edge type pairs the splitter dispatches on.
// The segment kernels follow the GeometricTools centered-form queries:
// a segment has center c, unit direction d and extent e, and a segment
// point is c + t*d with |t| <= e.

type lineLineKind int

const (
	lineLineParallelDistinct lineLineKind = iota
	lineLineSame
	lineLinePoint
)

// intersectLineLine intersects two parameterized lines given by origin and
// (not necessarily unit) direction. For lineLinePoint, s0 and s1 are the
// parameters of the intersection on each line.
func intersectLineLine(o0, d0, o1, d1 Point) (kind lineLineKind, p Point, s0, s1 float64) {
	q := o1.Sub(o0)
	denom := d0.Cross(d1)
	if denom != 0 {
		s0 = q.Cross(d1) / denom
		s1 = q.Cross(d0) / denom
		return lineLinePoint, o0.Add(d0.Mul(s0)), s0, s1
	}
	if q.Cross(d1) != 0 {
		return lineLineParallelDistinct, Point{}, 0, 0
	}
	return lineLineSame, Point{}, 0, 0
}

type intervalKind int

const (
	intervalNone intervalKind = iota
	intervalTouch
	intervalOverlap
)

// intersectIntervals classifies the overlap of [a0, a1] and [b0, b1].
func intersectIntervals(a0, a1, b0, b1 float64) (intervalKind, float64, float64) {
	lo := max(a0, b0)
	hi := min(a1, b1)
	switch {
	case lo < hi:
		return intervalOverlap, lo, hi
	case lo == hi:
		return intervalTouch, lo, hi
	default:
		return intervalNone, 0, 0
	}
}

type segSegKind int

const (
	segSegNone segSegKind = iota
	segSegPoint
	segSegOverlap
)

type segSegResult struct {
	kind segSegKind
	p    Point // segSegPoint
	q    [4]Point
}

// intersectSegSeg intersects two segments. A transverse crossing yields
// segSegPoint. Collinear overlapping segments yield segSegOverlap with all
// four endpoints sorted along the common line; collinear segments touching
// at a single endpoint yield segSegNone, as do disjoint pairs.
func intersectSegSeg(a0, a1, b0, b1 Point) segSegResult {
	c0, d0, e0 := centeredForm(a0, a1)
	c1, d1, e1 := centeredForm(b0, b1)
	kind, p, s0, s1 := intersectLineLine(c0, d0, c1, d1)
	switch kind {
	case lineLineParallelDistinct:
		return segSegResult{kind: segSegNone}
	case lineLinePoint:
		if abs(s0) <= e0 && abs(s1) <= e1 {
			return segSegResult{kind: segSegPoint, p: p}
		}
		return segSegResult{kind: segSegNone}
	}
	// Same supporting line: overlap test on the parameter intervals.
	t := d0.Dot(c1.Sub(c0))
	ik, _, _ := intersectIntervals(-e0, e0, t-e1, t+e1)
	if ik != intervalOverlap {
		return segSegResult{kind: segSegNone}
	}
	return segSegResult{kind: segSegOverlap, q: sortAlongLine(d0, a0, a1, b0, b1)}
}

// centeredForm returns the center, unit direction and extent of a segment.
func centeredForm(p0, p1 Point) (Point, Point, float64) {
	center := p0.Add(p1).Mul(0.5)
	dir, length := p1.Sub(p0).Normalize()
	return center, dir, 0.5 * length
}

// sortAlongLine orders four collinear points by their projection on dir.
func sortAlongLine(dir Point, pts ...Point) [4]Point {
	sort.SliceStable(pts, func(i, j int) bool {
		return dir.Dot(pts[i]) < dir.Dot(pts[j])
	})
	var out [4]Point
	copy(out[:], pts)
	return out
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// Intersect returns the 0, 1 or 2 points where two edges cross. Collinear
// or cocircular overlaps report the endpoints of the shared portion.
func Intersect(e0, e1 Edge) []Point {
	switch {
	case e0.IsSeg() && e1.IsSeg():
		res := intersectSegSeg(e0.A, e0.B, e1.A, e1.B)
		switch res.kind {
		case segSegPoint:
			return []Point{res.p}
		case segSegOverlap:
			return []Point{res.q[1], res.q[2]}
		}
		return nil
	case e0.IsSeg():
		res := intersectSegArc(e0.A, e0.B, e1)
		return res.points()
	case e1.IsSeg():
		res := intersectSegArc(e1.A, e1.B, e0)
		return res.points()
	default:
		res := intersectArcArc(e0, e1)
		switch res.kind {
		case arcArcOnePoint, arcArcOnePointTouch:
			return []Point{res.p0}
		case arcArcTwoPoints, arcArcTwoPointsTouch:
			return []Point{res.p0, res.p1}
		case arcArcCocircular:
			pts := append([]Point{}, res.splits0...)
			return append(pts, res.splits1...)
		}
		return nil
	}
}
