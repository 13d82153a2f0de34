package spatial

import (
	"math"
	"sort"
)

// Grid is a uniform-grid broad-phase backend. An entry is inserted into
// every cell its box touches; queries visit the cells covered by the query
// box and deduplicate the candidates. The grid makes no assumption about
// the coordinate origin: cell indices are signed integers obtained by
// flooring coordinate / cell size.
//
// Memory grows with the number of (entry, cell) incidences, so the cell
// size should be on the order of a typical box extent.
type Grid struct {
	cellSize float64
	cells    map[cellKey][]flatItem
	count    int
	stats    Stats
}

type cellKey struct {
	x, y int64
}

// NewGrid creates a grid broad-phase index with the given cell edge length.
// cellSize must be positive.
func NewGrid(cellSize float64) *Grid {
	if cellSize <= 0 {
		panic("spatial: cell size must be positive")
	}
	return &Grid{
		cellSize: cellSize,
		cells:    make(map[cellKey][]flatItem),
	}
}

func (g *Grid) cellCoord(v float64) int64 {
	return int64(math.Floor(v / g.cellSize))
}

// cellRange returns the inclusive cell index range covered by box.
func (g *Grid) cellRange(box AABB) (x0, x1, y0, y1 int64) {
	return g.cellCoord(box.MinX), g.cellCoord(box.MaxX),
		g.cellCoord(box.MinY), g.cellCoord(box.MaxY)
}

// Add inserts an id with its bounding box into every cell the box touches.
func (g *Grid) Add(id int, box AABB) {
	x0, x1, y0, y1 := g.cellRange(box)
	for x := x0; x <= x1; x++ {
		for y := y0; y <= y1; y++ {
			key := cellKey{x: x, y: y}
			g.cells[key] = append(g.cells[key], flatItem{id: id, box: box})
		}
	}
	g.count++
}

// Query returns all ids whose box overlaps the query box, deduplicated and
// sorted ascending.
func (g *Grid) Query(box AABB) []int {
	x0, x1, y0, y1 := g.cellRange(box)
	seen := make(map[int]struct{})
	var ids []int
	for x := x0; x <= x1; x++ {
		for y := y0; y <= y1; y++ {
			for _, it := range g.cells[cellKey{x: x, y: y}] {
				g.stats.BoxTests++
				if !it.box.Overlaps(box) {
					continue
				}
				g.stats.BoxOverlaps++
				if _, dup := seen[it.id]; dup {
					continue
				}
				seen[it.id] = struct{}{}
				ids = append(ids, it.id)
			}
		}
	}
	sort.Ints(ids)
	return ids
}

// Len returns the number of entries added (not cell incidences).
func (g *Grid) Len() int {
	return g.count
}

// Clear removes all entries and resets the stats.
func (g *Grid) Clear() {
	g.cells = make(map[cellKey][]flatItem)
	g.count = 0
	g.stats = Stats{}
}

// Stats returns the accumulated query counters.
func (g *Grid) Stats() Stats {
	return g.stats
}
