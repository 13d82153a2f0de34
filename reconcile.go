package arcline

// Reconcile turns a soup of candidate offset edges into clean,
// non-crossing closed cycles:
//
//  1. Split every pair of intersecting edges at their mutual intersection
//     points ([SplitAll]).
//  2. Merge near-coincident endpoints and drop degenerate micro-edges
//     ([MergeCloseEndpoints] with [MergeTol]).
//  3. Build the planar multigraph and extract cycles with the
//     rightmost-turn rule ([Graph.FindCycles]).
//
// Cycles shorter than two edges are discarded. Empty input yields empty
// output. The operation is total: it never fails, and it is deterministic
// for identical inputs.
func Reconcile(edges []Edge) [][]Edge {
	if len(edges) == 0 {
		return nil
	}
	parts := SplitAll(edges)
	MergeCloseEndpoints(&parts, MergeTol)
	if len(parts) == 0 {
		return nil
	}
	g := NewGraph(parts)
	var cycles [][]Edge
	for _, cycle := range g.FindCycles() {
		if len(cycle) < 2 {
			continue
		}
		cycles = append(cycles, cycle)
	}
	return cycles
}
