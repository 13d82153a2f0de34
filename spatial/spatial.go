// Package spatial provides 2D axis-aligned bounding boxes and broad-phase
// indexes used to prune candidate pairs before precise geometry tests.
//
// A broad-phase query never produces false negatives: every stored id whose
// box overlaps the query box is returned. False positives are expected and
// acceptable; callers always follow up with an exact intersection test.
package spatial

// AABB is an axis-aligned bounding box. Min and max are inclusive.
type AABB struct {
	MinX, MaxX float64
	MinY, MaxY float64
}

// NewAABB creates a bounding box from coordinates. min must be <= max on
// both axes.
func NewAABB(minX, maxX, minY, maxY float64) AABB {
	return AABB{MinX: minX, MaxX: maxX, MinY: minY, MaxY: maxY}
}

// Overlaps reports whether the two boxes intersect, boundaries included.
func (b AABB) Overlaps(other AABB) bool {
	return !(b.MaxX < other.MinX || b.MinX > other.MaxX ||
		b.MaxY < other.MinY || b.MinY > other.MaxY)
}

// ContainsPoint reports whether (x, y) lies inside the box, boundaries
// included.
func (b AABB) ContainsPoint(x, y float64) bool {
	return x >= b.MinX && x <= b.MaxX && y >= b.MinY && y <= b.MaxY
}

// Merge returns the smallest box containing both b and other.
func (b AABB) Merge(other AABB) AABB {
	return AABB{
		MinX: min(b.MinX, other.MinX),
		MaxX: max(b.MaxX, other.MaxX),
		MinY: min(b.MinY, other.MinY),
		MaxY: max(b.MaxY, other.MaxY),
	}
}

// Expand returns the box grown by eps on all four sides.
func (b AABB) Expand(eps float64) AABB {
	return AABB{
		MinX: b.MinX - eps,
		MaxX: b.MaxX + eps,
		MinY: b.MinY - eps,
		MaxY: b.MaxY + eps,
	}
}

// Width returns the extent of the box along the x axis.
func (b AABB) Width() float64 { return b.MaxX - b.MinX }

// Height returns the extent of the box along the y axis.
func (b AABB) Height() float64 { return b.MaxY - b.MinY }

// Stats accumulates broad-phase query counters. The counters are diagnostic
// only; they are not part of any behavioural contract.
type Stats struct {
	BoxTests    int
	BoxOverlaps int
}

// Index is the broad-phase contract shared by the flat and grid backends.
// Ids need not be contiguous but must be unique within one index.
type Index interface {
	// Add inserts an id with its bounding box.
	Add(id int, box AABB)
	// Query returns every stored id whose box overlaps the query box.
	// The result is sorted ascending. The query does not exclude any id;
	// callers filter out their own.
	Query(box AABB) []int
	// Len returns the number of stored entries.
	Len() int
	// Clear removes all entries.
	Clear()
	// Stats returns the accumulated query counters.
	Stats() Stats
}
