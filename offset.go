package arcline

import "math"

// pruneEps is the slack applied when testing offset candidates against the
// source polyline.
const pruneEps = 1e-8

// OffsetRaw is one candidate offset edge before reconciliation: the offset
// geometry, the source point connector arcs pivot around, and the bulge of
// the source edge.
type OffsetRaw struct {
	Edge Edge
	Orig Point
	G    float64
}

// PolylineToRaws expands a closed polyline into the raw edge list the
// offset stages consume. Degenerate spans are skipped.
func PolylineToRaws(pline Polyline) []OffsetRaw {
	if len(pline) < 2 {
		return nil
	}
	raws := make([]OffsetRaw, 0, len(pline))
	for i := range pline {
		next := pline[(i+1)%len(pline)]
		g := pline[i].G
		seg := EdgeFromBulge(pline[i].P, next.P, g)
		if !seg.Check() {
			continue
		}
		orig := seg.B
		if g < 0 {
			orig = seg.A
		}
		raws = append(raws, OffsetRaw{Edge: seg, Orig: orig, G: g})
	}
	return raws
}

// OffsetRaws offsets every raw edge perpendicular by off: segments
// translate along their right-hand normal, arcs move both endpoints
// radially and grow or shrink the radius by off (the sign follows the
// bulge, so clockwise source arcs shrink where counter-clockwise ones
// grow). An arc whose radius or endpoints collapse degrades to a reversed
// segment.
func OffsetRaws(raws []OffsetRaw, off float64) []OffsetRaw {
	res := make([]OffsetRaw, 0, len(raws))
	for _, raw := range raws {
		if raw.Edge.IsSeg() {
			res = append(res, segOffset(raw, off))
		} else {
			res = append(res, arcOffset(raw, off))
		}
	}
	return res
}

func segOffset(raw OffsetRaw, off float64) OffsetRaw {
	seg := raw.Edge
	normal, _ := Pt(seg.B.Y-seg.A.Y, seg.A.X-seg.B.X).Normalize()
	shift := normal.Mul(off)
	return OffsetRaw{
		Edge: Seg(seg.A.Add(shift), seg.B.Add(shift)),
		Orig: raw.Orig,
	}
}

func arcOffset(raw OffsetRaw, off float64) OffsetRaw {
	arc := raw.Edge
	toA, _ := arc.A.Sub(arc.C).Normalize()
	toB, _ := arc.B.Sub(arc.C).Normalize()

	d := off
	if raw.G < 0 {
		d = -off
	}
	r := arc.R + d
	a := arc.A.Add(toA.Mul(d))
	b := arc.B.Add(toB.Mul(d))
	if CollapsedRadius(r) || CollapsedEnds(a, b) {
		return OffsetRaw{Edge: Seg(b, a), Orig: raw.Orig}
	}
	return OffsetRaw{Edge: NewEdge(a, b, arc.C, r), Orig: raw.Orig, G: raw.G}
}

// ConnectRaws builds the connector arcs that join consecutive raw offsets,
// one per source vertex including the closing one. Each connector pivots
// around the source point with radius |off|; its sweep direction follows
// the source bulge sign.
func ConnectRaws(raws []OffsetRaw, off float64) []OffsetRaw {
	if len(raws) < 2 {
		return nil
	}
	r := math.Abs(off)
	res := make([]OffsetRaw, 0, len(raws))
	for i := range raws {
		cur := raws[i]
		next := raws[(i+1)%len(raws)]
		var edge Edge
		g := 0.5
		if cur.G >= 0 {
			edge = NewEdge(cur.Edge.B, next.Edge.A, cur.Orig, r)
		} else {
			edge = NewEdge(next.Edge.A, cur.Edge.B, cur.Orig, r)
			g = -0.5
		}
		res = append(res, OffsetRaw{Edge: edge, Orig: cur.Orig, G: g})
	}
	return res
}

// PruneInvalid removes candidate edges that come closer than |off| (minus a
// small slack) to any source edge: those lie inside the forbidden band
// around the input and cannot be part of a valid offset.
func PruneInvalid(source []Edge, candidates []Edge, off float64) []Edge {
	limit := math.Abs(off) - pruneEps
	valid := make([]Edge, 0, len(candidates))
	for _, cand := range candidates {
		keep := true
		for _, src := range source {
			if distEdgeEdge(src, cand) < limit {
				keep = false
				break
			}
		}
		if keep {
			valid = append(valid, cand)
		}
	}
	return valid
}

// OffsetPolyline offsets a closed polyline by off and returns the
// reconciled offset cycles. The offset side follows the polyline
// orientation; reverse the polyline to offset the other way.
//
// Pipeline: raw per-edge offsets and connector arcs, pairwise splitting,
// pruning of candidates that invade the band around the source, endpoint
// merging, and cycle extraction.
func OffsetPolyline(pline Polyline, off float64) [][]Edge {
	raws := PolylineToRaws(pline)
	if len(raws) == 0 {
		return nil
	}
	source := make([]Edge, 0, len(raws))
	for _, raw := range raws {
		source = append(source, raw.Edge)
	}

	offs := OffsetRaws(raws, off)
	conns := ConnectRaws(offs, off)
	candidates := make([]Edge, 0, len(offs)+len(conns))
	for _, raw := range offs {
		if raw.Edge.Check() {
			candidates = append(candidates, raw.Edge)
		}
	}
	for _, raw := range conns {
		if raw.Edge.Check() {
			candidates = append(candidates, raw.Edge)
		}
	}

	split := SplitAll(candidates)
	valid := PruneInvalid(source, split, off)
	MergeCloseEndpoints(&valid, MergeTol)
	if len(valid) == 0 {
		return nil
	}
	g := NewGraph(valid)
	var cycles [][]Edge
	for _, cycle := range g.FindCycles() {
		if len(cycle) < 2 {
			continue
		}
		cycles = append(cycles, cycle)
	}
	return cycles
}
