package arcline

import (
	"github.com/gogpu/arcline/spatial"
)

// MergeTol is the default endpoint clustering radius used by the
// reconciliation pipeline.
const MergeTol = 1e-8

// endpointRef identifies one end of one edge in the working list.
type endpointRef struct {
	edge  int
	end   EdgeEnd
	point Point
}

// endpointGroup is a cluster of endpoints within the merge tolerance: the
// participating (edge, end) references and the centroid they snap to.
type endpointGroup struct {
	refs     []endpointRef
	centroid Point
}

// MergeCloseEndpoints clusters endpoints that lie within tolerance of each
// other (single linkage: a point joins a group when it is within tolerance
// of any member), snaps every endpoint of a group to the group's centroid,
// removes edges that are degenerate after snapping, and restores arc
// consistency on the survivors. The slice is mutated in place.
//
// After the merge, any two endpoint coordinates on surviving edges are
// either bit-for-bit equal or farther apart than the tolerance.
func MergeCloseEndpoints(edges *[]Edge, tolerance float64) {
	if len(*edges) == 0 {
		return
	}
	groups := findEndpointGroups(*edges, tolerance)
	snapToCentroids(*edges, groups)
	eliminateDegenerate(edges, tolerance)
	for i, e := range *edges {
		(*edges)[i] = e.MakeConsistent()
	}
}

// findEndpointGroups forms the transitive closure of the "within
// tolerance" relation over all 2·|E| endpoints. A grid broad-phase over
// the endpoint positions accelerates the neighbour search; correctness
// does not depend on it since every candidate is verified by distance.
func findEndpointGroups(edges []Edge, tolerance float64) []endpointGroup {
	refs := make([]endpointRef, 0, 2*len(edges))
	for i, e := range edges {
		refs = append(refs, endpointRef{edge: i, end: AtA, point: e.A})
		refs = append(refs, endpointRef{edge: i, end: AtB, point: e.B})
	}

	index := spatial.NewGrid(4 * tolerance)
	for i, r := range refs {
		index.Add(i, spatial.NewAABB(r.point.X, r.point.X, r.point.Y, r.point.Y))
	}

	used := make([]bool, len(refs))
	var groups []endpointGroup
	for i := range refs {
		if used[i] {
			continue
		}
		used[i] = true
		group := endpointGroup{refs: []endpointRef{refs[i]}}

		queue := []Point{refs[i].point}
		for len(queue) > 0 {
			cur := queue[len(queue)-1]
			queue = queue[:len(queue)-1]
			box := spatial.NewAABB(cur.X, cur.X, cur.Y, cur.Y).Expand(tolerance)
			for _, j := range index.Query(box) {
				if used[j] {
					continue
				}
				if refs[j].point.Sub(cur).Length() > tolerance {
					continue
				}
				used[j] = true
				group.refs = append(group.refs, refs[j])
				queue = append(queue, refs[j].point)
			}
		}

		if len(group.refs) < 2 {
			continue
		}
		group.centroid = centroid(group.refs)
		groups = append(groups, group)
	}
	return groups
}

func centroid(refs []endpointRef) Point {
	var sum Point
	for _, r := range refs {
		sum = sum.Add(r.point)
	}
	return sum.Div(float64(len(refs)))
}

// snapToCentroids overwrites every clustered endpoint with its group's
// centroid. Assigning the identical value to all members is what makes
// coincident endpoints bit-exactly equal downstream.
func snapToCentroids(edges []Edge, groups []endpointGroup) {
	for _, g := range groups {
		for _, r := range g.refs {
			if r.end == AtA {
				edges[r.edge].A = g.centroid
			} else {
				edges[r.edge].B = g.centroid
			}
		}
	}
}

// eliminateDegenerate removes edges whose chord has collapsed below the
// tolerance: segments when |A-B| <= tol, arcs when additionally the radius
// is below the tolerance (which also discards tiny complete-arc
// fragments).
func eliminateDegenerate(edges *[]Edge, tolerance float64) {
	kept := (*edges)[:0]
	for _, e := range *edges {
		if isDegenerate(e, tolerance) {
			continue
		}
		kept = append(kept, e)
	}
	*edges = kept
}

func isDegenerate(e Edge, tolerance float64) bool {
	chord := e.B.Sub(e.A).Length()
	if e.IsSeg() {
		return chord <= tolerance
	}
	return chord <= tolerance && abs(e.R) <= tolerance
}
