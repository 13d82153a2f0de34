package arcline

import "math"

const (
	// VertexTol is the distance within which edge endpoints are identified
	// with an existing graph vertex.
	VertexTol = 1e-8
	// ConnectTol is the acceptance tolerance for adjacent-edge
	// reconnection inside extracted cycles.
	ConnectTol = 1e-7
	// turnTieTol is the angular slack below which two exit candidates are
	// considered tied; ties go to the smaller edge id for determinism.
	turnTieTol = 1e-12
)

// graphEdge is an edge of the planar multigraph: the underlying geometry
// plus its two endpoint vertex ids.
type graphEdge struct {
	geo  Edge
	u, v int
}

// Graph is an undirected planar multigraph whose edges carry 2D geometry.
// Vertices and edges are arena-indexed: adjacency is a list of edge ids per
// vertex id, with no pointers between the structures. Parallel edges are
// permitted (two edges between the same vertices with different supporting
// geometry stay distinct), and a loop appears twice in its vertex's
// adjacency list.
type Graph struct {
	vertices []Point
	edges    []graphEdge
	adj      [][]int
}

// NewGraph builds the multigraph from a list of edges. Each endpoint is
// identified with an existing vertex within [VertexTol] or allocates a new
// one.
func NewGraph(edges []Edge) *Graph {
	g := &Graph{}
	for _, e := range edges {
		u := g.addVertex(e.A)
		v := g.addVertex(e.B)
		id := len(g.edges)
		g.edges = append(g.edges, graphEdge{geo: e, u: u, v: v})
		g.adj[u] = append(g.adj[u], id)
		g.adj[v] = append(g.adj[v], id)
	}
	return g
}

// addVertex returns the id of the vertex within VertexTol of p, allocating
// a new vertex when none exists.
func (g *Graph) addVertex(p Point) int {
	for i, q := range g.vertices {
		if p.Sub(q).Length() < VertexTol {
			return i
		}
	}
	g.vertices = append(g.vertices, p)
	g.adj = append(g.adj, nil)
	return len(g.vertices) - 1
}

// VertexCount returns the number of distinct vertices.
func (g *Graph) VertexCount() int { return len(g.vertices) }

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Vertex returns the position of a vertex.
func (g *Graph) Vertex(v int) Point { return g.vertices[v] }

// Edge returns the geometry of an edge.
func (g *Graph) Edge(e int) Edge { return g.edges[e].geo }

// Ends returns the two endpoint vertex ids of an edge.
func (g *Graph) Ends(e int) (int, int) { return g.edges[e].u, g.edges[e].v }

// Neighbors returns the edge ids incident to a vertex. A loop appears
// twice.
func (g *Graph) Neighbors(v int) []int { return g.adj[v] }

// OtherEnd returns the vertex at the far side of edge e from v. For a loop
// it returns v again.
func (g *Graph) OtherEnd(e, v int) int {
	ge := g.edges[e]
	if ge.u == v {
		return ge.v
	}
	return ge.u
}

// endAt returns which geometric end of edge e sits at vertex v. For loops
// both ends match and A is reported.
func (g *Graph) endAt(e, v int) EdgeEnd {
	if g.edges[e].u == v {
		return AtA
	}
	return AtB
}

// FindCycles decomposes the graph into geometrically non-crossing closed
// cycles. The graph is assumed to come from a pairwise-split,
// endpoint-merged arrangement, so edges meet only at vertices.
//
// From each unused edge a walk starts at the edge's A vertex and repeatedly
// exits through the candidate making the rightmost turn relative to the
// arrival direction (the largest signed turn angle in (-π, π]). Tracing the
// face immediately to the right of the incoming direction keeps the cycle
// from crossing itself. A walk that closes back on its start vertex emits a
// cycle; a walk that dead-ends is discarded without consuming its edges.
// An edge borders up to two faces, and marking it used on entry instead of
// on closure would hide the second face from later walks.
func (g *Graph) FindCycles() [][]Edge {
	used := make([]bool, len(g.edges))
	var cycles [][]Edge

	for start := range g.edges {
		if used[start] {
			continue
		}
		order, ok := g.traceCycle(start, used)
		if !ok {
			continue
		}
		cycle := make([]Edge, len(order))
		for i, id := range order {
			cycle[i] = g.edges[id].geo
			used[id] = true
		}
		cycles = append(cycles, cycle)
	}
	return cycles
}

// traceCycle walks from start until it returns to start's A vertex or dead
// ends. It returns the edge ids in traversal order.
func (g *Graph) traceCycle(start int, used []bool) ([]int, bool) {
	vStart := g.edges[start].u
	vCur := g.edges[start].v
	cur := start
	order := []int{start}
	localSeen := map[int]bool{start: true}

	for vCur != vStart {
		next, ok := g.nextEdge(vCur, cur, used, localSeen)
		if !ok {
			Logger().Debug("cycle walk dead end", "start", start, "length", len(order))
			return nil, false
		}
		vCur = g.OtherEnd(next, vCur)
		cur = next
		order = append(order, next)
		localSeen[next] = true
	}
	return order, true
}

// nextEdge picks the exit edge at vertex v, arriving along edge cur.
// Globally used edges, edges already on the current walk, and the arrival
// edge itself are not candidates. With a single candidate left the choice
// is forced; otherwise the rightmost-turn rule applies.
func (g *Graph) nextEdge(v, cur int, used []bool, localSeen map[int]bool) (int, bool) {
	var candidates []int
	for _, e := range g.adj[v] {
		if e == cur || used[e] || localSeen[e] {
			continue
		}
		if len(candidates) > 0 && candidates[len(candidates)-1] == e {
			continue // loop listed twice
		}
		candidates = append(candidates, e)
	}
	switch len(candidates) {
	case 0:
		return 0, false
	case 1:
		return candidates[0], true
	}

	// Arrival direction: the tangent of cur at v pointing into v.
	tIn := g.edges[cur].geo.TangentAt(g.endAt(cur, v)).Neg()

	best := -1
	bestTurn := 0.0
	for _, e := range candidates {
		tOut := g.edges[e].geo.TangentAt(g.endAt(e, v))
		turn := math.Atan2(tIn.Cross(tOut), tIn.Dot(tOut))
		if best == -1 || turn > bestTurn+turnTieTol {
			best = e
			bestTurn = turn
		}
	}
	return best, true
}
