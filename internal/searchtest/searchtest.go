// Package searchtest holds fixtures and assertions shared by the strategy
// test suites.
package searchtest

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathviz/grid"
	"github.com/katalvlaran/pathviz/search"
)

// Open5 is a 5×5 board with no obstacles, start (0,0) and goal (4,4).
func Open5() *grid.Grid {
	return grid.MustParse(
		"S....",
		".....",
		".....",
		".....",
		"....G",
	)
}

// Wall5 is Open5 with a wall at x=2 on every row except y=4.
func Wall5() *grid.Grid {
	return grid.MustParse(
		"S.#..",
		"..#..",
		"..#..",
		"..#..",
		"....G",
	)
}

// GoalBlocked is Open5 with the goal cell replaced by an obstacle.
func GoalBlocked() *grid.Grid {
	g := Open5()
	g.SetCellRole(4, 4, grid.Obstacle)
	return g
}

// Sealed is a board whose goal is walled off.
func Sealed() *grid.Grid {
	return grid.MustParse(
		"S..#.",
		"...#.",
		"####.",
		".....",
		"....G",
	)
}

// Random returns a w×h board with the given obstacle density, start at the
// top-left and goal at the bottom-right corner.
func Random(w, h int, density float64, seed int64) *grid.Grid {
	g, err := grid.New(w, h)
	if err != nil {
		panic(err)
	}
	g.SetStart(0, 0)
	g.SetGoal(w-1, h-1)
	g.RandomObstacles(density, seed)
	return g
}

// RequireValidPath checks the structural properties of a successful result:
// endpoints, unit or diagonal steps, walkable cells, no repeats, and a cost
// equal to the summed Euclidean step lengths.
func RequireValidPath(t *testing.T, g *grid.Grid, r search.Result) {
	t.Helper()
	require.True(t, r.Success, "%s: expected success", r.Algorithm)
	require.NotEmpty(t, r.Path)
	assert.Equal(t, g.Start(), r.Path[0], "path starts at start")
	assert.Equal(t, g.Goal(), r.Path[len(r.Path)-1], "path ends at goal")
	RequireWellFormed(t, g, r.Path)
	assert.InDelta(t, search.PathCost(r.Path), r.Cost, 1e-9, "cost equals summed step lengths")
}

// RequireWellFormed checks that path has no duplicates, never crosses an
// obstacle and only moves between neighboring cells.
func RequireWellFormed(t *testing.T, g *grid.Grid, path []grid.Point) {
	t.Helper()
	seen := make(map[grid.Point]bool, len(path))
	for i, p := range path {
		require.False(t, seen[p], "duplicate %s", p)
		seen[p] = true
		require.True(t, g.IsWalkable(p.X, p.Y), "%s is not walkable", p)
		if i > 0 {
			d := grid.Distance(path[i-1], p)
			require.True(t, d == 1 || math.Abs(d-math.Sqrt2) < 1e-12, "jump %s→%s", path[i-1], p)
		}
	}
}

// Recorder is a search.StepFunc sink that keeps copies of the last traces.
type Recorder struct {
	Calls    int
	Visited  []grid.Point
	Frontier []grid.Point
}

// Step implements search.StepFunc.
func (r *Recorder) Step(_ *grid.Grid, visited, frontier []grid.Point) {
	r.Calls++
	r.Visited = append(r.Visited[:0], visited...)
	r.Frontier = append(r.Frontier[:0], frontier...)
}
