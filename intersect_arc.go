package arcline

// Arc intersection kernels: a segment or arc against an arc, with the
// touching refinements the splitter needs to avoid zero-length pieces.

type segArcKind int

const (
	segArcNone segArcKind = iota
	segArcOnePoint
	segArcOnePointTouch
	segArcTwoPoints
	segArcTwoPointsTouch
)

type segArcResult struct {
	kind   segArcKind
	p0, p1 Point
}

func (r segArcResult) points() []Point {
	switch r.kind {
	case segArcOnePoint, segArcOnePointTouch:
		return []Point{r.p0}
	case segArcTwoPoints, segArcTwoPointsTouch:
		return []Point{r.p0, r.p1}
	}
	return nil
}

// intersectSegArc intersects segment a-b with an arc: the circle query
// filtered by the arc's sweep. Intersections that coincide with endpoints
// of both inputs are reported as touching.
func intersectSegArc(a, b Point, arc Edge) segArcResult {
	kind, p0, p1 := intersectSegCircle(a, b, arc.C, arc.R)
	switch kind {
	case segCircleNone:
		return segArcResult{kind: segArcNone}
	case segCircleOnePoint:
		if !arc.Contains(p0) {
			return segArcResult{kind: segArcNone}
		}
		if endsTouchSegArc(a, b, arc) {
			return segArcResult{kind: segArcOnePointTouch, p0: p0}
		}
		return segArcResult{kind: segArcOnePoint, p0: p0}
	default:
		b0 := arc.Contains(p0)
		b1 := arc.Contains(p1)
		switch {
		case b0 && b1:
			return segArcResult{kind: segArcTwoPoints, p0: p0, p1: p1}
		case b0:
			return segArcResult{kind: segArcOnePoint, p0: p0}
		case b1:
			return segArcResult{kind: segArcOnePoint, p0: p1}
		}
		return segArcResult{kind: segArcNone}
	}
}

func endsTouchSegArc(a, b Point, arc Edge) bool {
	return a == arc.A || a == arc.B || b == arc.A || b == arc.B
}

type arcArcKind int

const (
	arcArcNone arcArcKind = iota
	arcArcOnePoint
	arcArcOnePointTouch
	arcArcTwoPoints
	arcArcTwoPointsTouch
	arcArcCocircular
)

type arcArcResult struct {
	kind   arcArcKind
	p0, p1 Point
	// Cocircular overlap: endpoints of each arc lying strictly inside the
	// other, i.e. the points at which the overlap must be subdivided.
	splits0, splits1 []Point
}

// intersectArcArc intersects two arcs. Non-cocircular pairs go through the
// circle-circle query filtered by both sweeps; intersections that are
// endpoints of both arcs are reported as touching. Cocircular pairs report
// the split points of their shared portion (empty when the sweeps are
// disjoint or touch only at endpoints).
func intersectArcArc(e0, e1 Edge) arcArcResult {
	kind, p0, p1 := intersectCircleCircle(e0.C, e0.R, e1.C, e1.R)
	switch kind {
	case circleCircleNone:
		return arcArcResult{kind: arcArcNone}
	case circleCircleSame:
		return cocircularOverlap(e0, e1)
	case circleCircleOnePoint:
		if e0.Contains(p0) && e1.Contains(p0) {
			if endsTouchArcArc(e0, e1) {
				return arcArcResult{kind: arcArcOnePointTouch, p0: p0}
			}
			return arcArcResult{kind: arcArcOnePoint, p0: p0}
		}
		return arcArcResult{kind: arcArcNone}
	default:
		b0 := e0.Contains(p0) && e1.Contains(p0)
		b1 := e0.Contains(p1) && e1.Contains(p1)
		switch {
		case b0 && b1:
			if bothEndsTouchArcArc(e0, e1) {
				return arcArcResult{kind: arcArcTwoPointsTouch, p0: p0, p1: p1}
			}
			return arcArcResult{kind: arcArcTwoPoints, p0: p0, p1: p1}
		case b0:
			if endsTouchArcArc(e0, e1) {
				return arcArcResult{kind: arcArcOnePointTouch, p0: p0}
			}
			return arcArcResult{kind: arcArcOnePoint, p0: p0}
		case b1:
			if endsTouchArcArc(e0, e1) {
				return arcArcResult{kind: arcArcOnePointTouch, p0: p1}
			}
			return arcArcResult{kind: arcArcOnePoint, p0: p1}
		}
		return arcArcResult{kind: arcArcNone}
	}
}

func endsTouchArcArc(e0, e1 Edge) bool {
	return e0.A == e1.A || e0.A == e1.B || e0.B == e1.A || e0.B == e1.B
}

func bothEndsTouchArcArc(e0, e1 Edge) bool {
	return (e0.A == e1.A && e0.B == e1.B) || (e0.B == e1.A && e0.A == e1.B)
}

// cocircularOverlap collects, for two arcs on the same circle, the
// endpoints of each arc that fall strictly inside the other. Subdividing
// both arcs at these points reduces the overlap to shared sub-arcs without
// asserting uniqueness of the decomposition.
func cocircularOverlap(e0, e1 Edge) arcArcResult {
	interior := func(host Edge, p Point) bool {
		return p != host.A && p != host.B && host.Contains(p)
	}
	var res arcArcResult
	if interior(e0, e1.A) {
		res.splits0 = append(res.splits0, e1.A)
	}
	if interior(e0, e1.B) {
		res.splits0 = append(res.splits0, e1.B)
	}
	if interior(e1, e0.A) {
		res.splits1 = append(res.splits1, e0.A)
	}
	if interior(e1, e0.B) {
		res.splits1 = append(res.splits1, e0.B)
	}
	if len(res.splits0) == 0 && len(res.splits1) == 0 {
		res.kind = arcArcNone
		return res
	}
	res.kind = arcArcCocircular
	return res
}
