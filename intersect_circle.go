package arcline

import "math"

// Circle intersection kernels shared by the segment/arc and arc/arc
// queries.

type circleCircleKind int

const (
	circleCircleNone circleCircleKind = iota
	circleCircleOnePoint
	circleCircleTwoPoints
	circleCircleSame
)

// intersectCircleCircle intersects two full circles. Cocircular pairs
// report circleCircleSame; tangent pairs report a single point.
func intersectCircleCircle(c0 Point, r0 float64, c1 Point, r1 float64) (circleCircleKind, Point, Point) {
	u := c1.Sub(c0)
	uu := u.Dot(u)
	rd := r0 - r1

	if uu == 0 && rd == 0 {
		return circleCircleSame, Point{}, Point{}
	}
	if uu < rd*rd {
		return circleCircleNone, Point{}, Point{}
	}
	rs := r0 + r1
	if uu > rs*rs {
		return circleCircleNone, Point{}, Point{}
	}
	if uu < rs*rs {
		if rd*rd < uu {
			s := 0.5 * (diffOfProd(r0, r0, r1, r1)/uu + 1)
			discr := diffOfProd(r0/uu, r0, s, s)
			if discr < 0 {
				discr = 0
			}
			t := math.Sqrt(discr)
			v := Pt(u.Y, -u.X)
			mid := c0.Add(u.Mul(s))
			if t > 0 {
				return circleCircleTwoPoints, mid.Sub(v.Mul(t)), mid.Add(v.Mul(t))
			}
			return circleCircleOnePoint, mid, Point{}
		}
		// Internally tangent.
		return circleCircleOnePoint, c0.Add(u.Mul(r0 / rd)), Point{}
	}
	// Externally tangent.
	return circleCircleOnePoint, c0.Add(u.Mul(r0 / rs)), Point{}
}

type lineCircleKind int

const (
	lineCircleNone lineCircleKind = iota
	lineCircleOnePoint
	lineCircleTwoPoints
)

// intersectLineCircle intersects a line (origin + unit direction) with a
// circle. Parameters are signed distances along the direction.
func intersectLineCircle(origin, dir Point, c Point, r float64) (kind lineCircleKind, p0, p1 Point, t0, t1 float64) {
	diff := origin.Sub(c)
	a0 := diff.Dot(diff) - r*r
	a1 := dir.Dot(diff)
	discr := math.FMA(a1, a1, -a0)
	if discr > 0 {
		root := math.Sqrt(discr)
		t0, t1 = -a1-root, -a1+root
		return lineCircleTwoPoints, origin.Add(dir.Mul(t0)), origin.Add(dir.Mul(t1)), t0, t1
	}
	if discr < 0 {
		return lineCircleNone, Point{}, Point{}, 0, 0
	}
	t0 = -a1
	return lineCircleOnePoint, origin.Add(dir.Mul(t0)), Point{}, t0, 0
}

type segCircleKind int

const (
	segCircleNone segCircleKind = iota
	segCircleOnePoint
	segCircleTwoPoints
)

// intersectSegCircle intersects a segment with a circle: the line query
// filtered to the segment's extent interval.
func intersectSegCircle(a, b Point, c Point, r float64) (kind segCircleKind, p0, p1 Point) {
	center, dir, extent := centeredForm(a, b)
	lk, q0, q1, t0, t1 := intersectLineCircle(center, dir, c, r)
	switch lk {
	case lineCircleNone:
		return segCircleNone, Point{}, Point{}
	case lineCircleOnePoint:
		if abs(t0) <= extent {
			return segCircleOnePoint, q0, Point{}
		}
		return segCircleNone, Point{}, Point{}
	default:
		b0 := abs(t0) <= extent
		b1 := abs(t1) <= extent
		switch {
		case b0 && b1:
			return segCircleTwoPoints, q0, q1
		case b0:
			return segCircleOnePoint, q0, Point{}
		case b1:
			return segCircleOnePoint, q1, Point{}
		}
		return segCircleNone, Point{}, Point{}
	}
}
