package arcline

import "math"

// epsCollapsed is the threshold below which an edge's chord or radius is
// considered collapsed.
const epsCollapsed = 1e-10

// Edge is a single 2D circular arc, possibly of infinite radius (a straight
// line segment). Traversal runs from A to B; for finite radii the sweep is
// always the counter-clockwise one from A to B on the supporting circle
// centered at C. For segments (R == +Inf) the center is meaningless.
type Edge struct {
	A, B Point
	C    Point
	R    float64
}

// Seg creates a straight segment from a to b.
func Seg(a, b Point) Edge {
	return Edge{A: a, B: b, C: Pt(math.Inf(1), math.Inf(1)), R: math.Inf(1)}
}

// NewEdge creates an arc from a to b sweeping counter-clockwise on the
// circle with center c and radius r.
func NewEdge(a, b, c Point, r float64) Edge {
	return Edge{A: a, B: b, C: c, R: r}
}

// IsSeg reports whether the edge is a straight segment.
func (e Edge) IsSeg() bool {
	return math.IsInf(e.R, 1)
}

// IsArc reports whether the edge is a true arc of finite radius.
func (e Edge) IsArc() bool {
	return !math.IsInf(e.R, 1)
}

// Reverse returns the edge traversed from B to A. For arcs this flips the
// sweep to the complementary side, so it is only meaningful for segments
// and for callers that re-derive the sweep themselves.
func (e Edge) Reverse() Edge {
	e.A, e.B = e.B, e.A
	return e
}

// EdgeFromBulge creates the edge from a to b with bulge g.
//
// The bulge is the tangent of a quarter of the swept angle: g = 0 yields a
// segment, g = 1 a counter-clockwise half circle, g < 0 the clockwise
// counterpart (represented here by swapping the endpoints so the stored
// sweep stays counter-clockwise).
func EdgeFromBulge(a, b Point, g float64) Edge {
	if g < 0 {
		a, b = b, a
		g = -g
	}
	if g == 0 {
		return Seg(a, b)
	}
	chord := b.Sub(a).Length()
	dt := (1 + g) * (1 - g) / (4 * g)
	cx := 0.5*a.X + 0.5*b.X + dt*(a.Y-b.Y)
	cy := 0.5*a.Y + 0.5*b.Y + dt*(b.X-a.X)
	r := 0.25 * chord * math.Abs(1/g+g)
	return NewEdge(a, b, Pt(cx, cy), r)
}

// BulgeFromPoints recovers the bulge of the counter-clockwise arc from a to
// b on the circle with center c and radius r. Returns 0 when the chord has
// collapsed.
func BulgeFromPoints(a, b, c Point, r float64) float64 {
	chord := b.Sub(a).Length()
	if chord < epsCollapsed {
		return 0
	}
	perp := c.Sub(a).Cross(b.Sub(a))
	d := 4*r*r - chord*chord
	if d < 0 {
		d = 0
	}
	if perp <= 0 {
		sagitta := r - 0.5*math.Sqrt(d)
		return 2 * sagitta / chord
	}
	sagitta := r + 0.5*math.Sqrt(d)
	return 2 * sagitta / chord
}

// Contains reports whether a point on the supporting circle lies on the
// counter-clockwise sweep from A to B. The test is the chord-side sign; the
// caller is responsible for p being on the circle.
func (e Edge) Contains(p Point) bool {
	return p.Sub(e.A).Cross(e.B.Sub(e.A)) >= 0
}

// ContainsEps reports whether p lies on the arc: on the supporting circle
// within eps, and on the counter-clockwise sweep from A to B.
func (e Edge) ContainsEps(p Point, eps float64) bool {
	if math.Abs(p.Sub(e.C).Length()-e.R) > eps {
		return false
	}
	return e.Contains(p)
}

// CollapsedRadius reports whether r is below the collapse threshold.
func CollapsedRadius(r float64) bool {
	return math.Abs(r) < epsCollapsed
}

// CollapsedEnds reports whether a and b coincide within the collapse
// threshold.
func CollapsedEnds(a, b Point) bool {
	return a.CloseEnough(b, epsCollapsed)
}

// Check reports whether the edge is usable by the pipeline: finite
// endpoint coordinates, a non-collapsed chord, and for arcs a positive,
// non-collapsed radius.
func (e Edge) Check() bool {
	if !isFinite(e.A) || !isFinite(e.B) {
		return false
	}
	if CollapsedEnds(e.A, e.B) {
		return false
	}
	if e.IsSeg() {
		return true
	}
	return !CollapsedRadius(e.R) && e.R > 0 && isFinite(e.C)
}

func isFinite(p Point) bool {
	return !math.IsInf(p.X, 0) && !math.IsNaN(p.X) &&
		!math.IsInf(p.Y, 0) && !math.IsNaN(p.Y)
}

// MakeConsistent nudges the center and radius of an arc so that
// |C-A| == |C-B| == R holds: the center is projected onto the perpendicular
// bisector of the chord and the radius re-averaged. Segments are returned
// unchanged.
func (e Edge) MakeConsistent() Edge {
	if e.IsSeg() {
		return e
	}
	mid := e.A.Add(e.B).Mul(0.5)
	dir, n := e.B.Sub(e.A).Normalize()
	if n == 0 {
		return e
	}
	bisector := dir.Perp()
	e.C = mid.Add(bisector.Mul(e.C.Sub(mid).Dot(bisector)))
	e.R = 0.5 * (e.C.Sub(e.A).Length() + e.C.Sub(e.B).Length())
	return e
}

// EdgeEnd selects one of an edge's two endpoints.
type EdgeEnd int

const (
	// AtA selects the start endpoint A.
	AtA EdgeEnd = iota
	// AtB selects the end endpoint B.
	AtB
)

// TangentAt returns the unit tangent at the selected endpoint pointing away
// from that endpoint along the edge. For a segment that is the direction
// towards the other end. For an arc it is the counter-clockwise tangent at
// A, and the reversed counter-clockwise tangent at B, both perpendicular to
// the radius at the endpoint.
func (e Edge) TangentAt(end EdgeEnd) Point {
	if e.IsSeg() {
		if end == AtA {
			t, _ := e.B.Sub(e.A).Normalize()
			return t
		}
		t, _ := e.A.Sub(e.B).Normalize()
		return t
	}
	p := e.A
	if end == AtB {
		p = e.B
	}
	t, _ := p.Sub(e.C).Perp().Normalize()
	if end == AtB {
		t = t.Neg()
	}
	return t
}

// orderCCWFrom orders two points on e's supporting circle along the
// counter-clockwise sweep starting at e.A.
func (e Edge) orderCCWFrom(p0, p1 Point) (Point, Point) {
	if orient2D(e.A, p0, p1) < 0 {
		return p1, p0
	}
	return p0, p1
}
