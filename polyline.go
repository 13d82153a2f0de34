package arcline

// PVertex is one vertex of a polyline: a position and the bulge of the
// edge leaving it towards the next vertex. A bulge of 0 is a straight
// segment; positive bulges arc counter-clockwise, negative ones clockwise
// (see [EdgeFromBulge]).
type PVertex struct {
	P Point
	G float64
}

// PV is a convenience function to create a PVertex.
func PV(p Point, g float64) PVertex {
	return PVertex{P: p, G: g}
}

// Polyline is a closed sequence of vertices; the last vertex connects back
// to the first.
type Polyline []PVertex

// Reverse returns the polyline traversed in the opposite direction. Bulges
// move to the new leaving vertex and flip sign so the geometry is
// unchanged.
func (pl Polyline) Reverse() Polyline {
	if len(pl) == 0 {
		return nil
	}
	last := pl[len(pl)-1]
	rev := make(Polyline, len(pl))
	for i, v := range pl {
		rev[len(pl)-1-i] = v
	}
	res := make(Polyline, 0, len(pl))
	for i := 0; i < len(rev)-1; i++ {
		res = append(res, PV(rev[i].P, -rev[i+1].G))
	}
	res = append(res, PV(rev[len(rev)-1].P, -last.G))
	return res
}

// Scale returns the polyline with every vertex scaled by s.
func (pl Polyline) Scale(s float64) Polyline {
	res := make(Polyline, len(pl))
	for i, v := range pl {
		res[i] = PV(v.P.Mul(s), v.G)
	}
	return res
}

// Translate returns the polyline with every vertex shifted by t.
func (pl Polyline) Translate(t Point) Polyline {
	res := make(Polyline, len(pl))
	for i, v := range pl {
		res[i] = PV(v.P.Add(t), v.G)
	}
	return res
}

// Edges expands the polyline into its edge list, including the closing
// edge. Edges that fail [Edge.Check] (zero-length spans and the like) are
// skipped.
func (pl Polyline) Edges() []Edge {
	if len(pl) < 2 {
		return nil
	}
	edges := make([]Edge, 0, len(pl))
	for i := range pl {
		next := pl[(i+1)%len(pl)]
		e := EdgeFromBulge(pl[i].P, next.P, pl[i].G)
		if e.Check() {
			edges = append(edges, e)
		}
	}
	return edges
}
