// Package arcline provides 2D offsetting for planar arc-and-segment polylines.
//
// # Overview
//
// arcline computes offsets of closed polygons whose edges are straight line
// segments or circular arcs. Offsetting such a polygon produces a messy soup
// of candidate edges: neighbouring offsets overshoot and cross each other,
// connector arcs graze the candidates they join, and floating-point noise
// leaves endpoints that almost, but not quite, coincide. The heart of the
// library is the reconciliation pipeline that turns that soup into clean,
// non-self-intersecting closed cycles:
//
//  1. Pairwise splitting of candidate edges at their mutual intersections,
//     accelerated by a broad-phase spatial index (package spatial).
//  2. Endpoint merging that clusters near-coincident endpoints, snaps them
//     to shared vertices and drops degenerate micro-edges.
//  3. Cycle extraction over a planar multigraph using a rightmost-turn rule
//     on edge tangents, so extracted cycles never cross themselves.
//
// # Quick Start
//
//	import "github.com/gogpu/arcline"
//
//	pline := arcline.Polyline{
//		arcline.PV(arcline.Pt(0, 0), 0),
//		arcline.PV(arcline.Pt(100, 100), 0.5),
//		arcline.PV(arcline.Pt(200, 0), 1.3),
//	}
//	cycles := arcline.OffsetPolyline(pline, 15)
//	for _, cycle := range cycles {
//		// cycle is a closed, head-to-tail connected sequence of edges
//	}
//
// Callers that already have a candidate edge set can run the reconciliation
// pipeline directly with [Reconcile], or only the endpoint cleanup with
// [MergeCloseEndpoints].
//
// # Edges
//
// An [Edge] is a single circular arc; straight segments are arcs of infinite
// radius. Arcs always sweep counter-clockwise from A to B on their supporting
// circle, so an edge's geometry is fully determined by its endpoints, center
// and radius. See [Seg], [NewEdge] and [EdgeFromBulge].
//
// # Coordinate System
//
//   - X increases right, Y increases up
//   - Angles in radians, 0 is right, increases counter-clockwise
//
// # Determinism
//
// All pipeline stages are sequential and deterministic: identical inputs
// produce identical outputs, edge by edge and cycle by cycle.
package arcline
