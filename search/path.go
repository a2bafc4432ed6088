package search

import "github.com/katalvlaran/pathviz/grid"

// Reconstruct walks parent links from `from` until the sentinel, painting
// every cell Path. A parent chain that revisits a cell ends the walk, so the
// result never holds a duplicate coordinate.
//
// Forward searches pass the goal with reverse set, which yields start→goal.
// The backward pass stores parents pointing toward the goal and starts the
// walk from the start cell with reverse unset.
// Complexity: O(path length).
func Reconstruct(g *grid.Grid, t *Table, from grid.Point, reverse bool) []grid.Point {
	seen := make(map[grid.Point]struct{})
	var path []grid.Point
	for p := from; !p.IsNone(); p = t.Parent(p) {
		if _, dup := seen[p]; dup {
			break
		}
		seen[p] = struct{}{}
		path = append(path, p)
		g.Paint(p, grid.Path)
	}
	if reverse {
		for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
			path[i], path[j] = path[j], path[i]
		}
	}

	return path
}

// PathCost sums the Euclidean step distances along path.
func PathCost(path []grid.Point) float64 {
	var c float64
	for i := 1; i < len(path); i++ {
		c += grid.Distance(path[i-1], path[i])
	}
	return c
}
