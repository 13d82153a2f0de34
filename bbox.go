package arcline

import (
	"math"

	"github.com/gogpu/arcline/spatial"
)

// Bounds returns a tight axis-aligned bounding box for the edge. A
// segment's box is the endpoint min/max. An arc's box is the endpoint box
// extended by every compass-point extremum (0°, 90°, 180°, 270° on the
// supporting circle) the counter-clockwise sweep traverses, which encloses
// exactly the visited portion of the circle.
func (e Edge) Bounds() spatial.AABB {
	box := spatial.NewAABB(
		math.Min(e.A.X, e.B.X), math.Max(e.A.X, e.B.X),
		math.Min(e.A.Y, e.B.Y), math.Max(e.A.Y, e.B.Y),
	)
	if e.IsSeg() {
		return box
	}

	a0 := math.Atan2(e.A.Y-e.C.Y, e.A.X-e.C.X)
	a1 := math.Atan2(e.B.Y-e.C.Y, e.B.X-e.C.X)
	if a1 <= a0 {
		a1 += 2 * math.Pi
	}
	// Compass extrema at multiples of π/2; scan the first that is >= a0 and
	// every quarter turn after it until the sweep ends.
	for q := math.Ceil(a0 / (math.Pi / 2)); q*(math.Pi/2) <= a1; q++ {
		angle := q * (math.Pi / 2)
		ext := Pt(e.C.X+e.R*math.Cos(angle), e.C.Y+e.R*math.Sin(angle))
		box = box.Merge(spatial.NewAABB(ext.X, ext.X, ext.Y, ext.Y))
	}
	return box
}
