package search_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathviz/grid"
	"github.com/katalvlaran/pathviz/search"
)

func TestQueue_OrdersByKey(t *testing.T) {
	q := search.NewQueue(4)
	q.Push(grid.Pt(0, 0), search.Key{Primary: 3}, 3)
	q.Push(grid.Pt(1, 0), search.Key{Primary: 1}, 1)
	q.Push(grid.Pt(2, 0), search.Key{Primary: 2, Secondary: 5}, 2)
	q.Push(grid.Pt(3, 0), search.Key{Primary: 2, Secondary: 1}, 2)
	require.Equal(t, 4, q.Len())

	var got []grid.Point
	for q.Len() > 0 {
		got = append(got, q.Pop().Point)
	}
	assert.Equal(t, []grid.Point{grid.Pt(1, 0), grid.Pt(3, 0), grid.Pt(2, 0), grid.Pt(0, 0)}, got)
}

func TestQueue_LazyDuplicates(t *testing.T) {
	q := search.NewQueue(0)
	p := grid.Pt(1, 1)
	q.Push(p, search.Key{Primary: 9}, 9)
	q.Push(p, search.Key{Primary: 4}, 4)
	assert.Equal(t, 2, q.Len(), "stale entries stay queued")

	first := q.Pop()
	assert.Equal(t, 4.0, first.Cost)
	second := q.Pop()
	assert.Equal(t, 9.0, second.Cost, "stale entry keeps its push-time cost")
}

func TestKey_Less(t *testing.T) {
	assert.True(t, search.Key{Primary: 1, Secondary: 9}.Less(search.Key{Primary: 2}))
	assert.True(t, search.Key{Primary: 1, Secondary: 1}.Less(search.Key{Primary: 1, Secondary: 2}))
	assert.False(t, search.Key{Primary: 1}.Less(search.Key{Primary: 1}))
}

func TestTable_Defaults(t *testing.T) {
	g, err := grid.New(3, 2)
	require.NoError(t, err)

	tbl := search.NewTable(g, search.Inf)
	n := tbl.At(grid.Pt(2, 1))
	assert.Equal(t, search.Inf, n.G)
	assert.Equal(t, grid.None, n.Parent)
	assert.False(t, tbl.Closed(grid.Pt(2, 1)))

	n.Parent = grid.Pt(1, 1)
	assert.Equal(t, grid.Pt(1, 1), tbl.Parent(grid.Pt(2, 1)))
	assert.Equal(t, grid.None, tbl.Parent(grid.Pt(9, 9)))
}

func TestReconstruct_ReversesAndPaints(t *testing.T) {
	g := grid.MustParse("S..G")
	tbl := search.NewTable(g, 0)
	tbl.At(grid.Pt(1, 0)).Parent = grid.Pt(0, 0)
	tbl.At(grid.Pt(2, 0)).Parent = grid.Pt(1, 0)
	tbl.At(grid.Pt(3, 0)).Parent = grid.Pt(2, 0)

	path := search.Reconstruct(g, tbl, grid.Pt(3, 0), true)
	assert.Equal(t, []grid.Point{grid.Pt(0, 0), grid.Pt(1, 0), grid.Pt(2, 0), grid.Pt(3, 0)}, path)
	assert.Equal(t, []string{"S**G"}, g.Rows())
	assert.Equal(t, 3.0, search.PathCost(path))
}

func TestReconstruct_CycleGuard(t *testing.T) {
	g := grid.MustParse("S.G")
	tbl := search.NewTable(g, 0)
	tbl.At(grid.Pt(0, 0)).Parent = grid.Pt(1, 0)
	tbl.At(grid.Pt(1, 0)).Parent = grid.Pt(0, 0)

	path := search.Reconstruct(g, tbl, grid.Pt(0, 0), false)
	assert.Equal(t, []grid.Point{grid.Pt(0, 0), grid.Pt(1, 0)}, path)
}

func TestTracer_FrontierSkipsVisited(t *testing.T) {
	g := grid.MustParse("S.G")
	g.Paint(grid.Pt(1, 0), grid.Path)

	var calls int
	var lastFrontier []grid.Point
	tr := search.NewTracer(g, func(_ *grid.Grid, visited, frontier []grid.Point) {
		calls++
		lastFrontier = frontier
		// appending must not leak into the tracer
		_ = append(frontier, grid.Pt(9, 9))
	})
	assert.Equal(t, []string{"S.G"}, g.Rows(), "tracer resets marks")

	tbl := search.NewTable(g, 0)
	tr.Expand(grid.Pt(0, 0), tbl.At(grid.Pt(0, 0)))
	assert.True(t, tbl.Closed(grid.Pt(0, 0)))

	tr.Relaxed(grid.Pt(1, 0))
	tr.Expand(grid.Pt(1, 0), tbl.At(grid.Pt(1, 0)))
	tr.Relaxed(grid.Pt(1, 0))

	assert.Equal(t, 2, calls, "hook fires on every relaxation")
	assert.Equal(t, []grid.Point{grid.Pt(1, 0)}, lastFrontier)
	assert.Equal(t, grid.Visited, g.Type(1, 0))

	r := tr.Result("X", nil, 5, false)
	assert.False(t, r.Success)
	assert.Zero(t, r.Cost)
	assert.Equal(t, 2, r.Expanded)
	assert.Equal(t, []grid.Point{grid.Pt(1, 0)}, r.Frontier)
}

func TestSummary(t *testing.T) {
	r := search.Result{
		Algorithm: "A*",
		Path:      make([]grid.Point, 9),
		Visited:   make([]grid.Point, 12),
		Frontier:  make([]grid.Point, 6),
		Cost:      8,
		Elapsed:   1500 * time.Microsecond,
		Expanded:  12,
		Success:   true,
	}
	s := r.Summary()
	assert.Equal(t, int64(1500), s.ElapsedMicros)
	assert.Equal(t, 9, s.PathLength)
	assert.Equal(t, 18, s.Generated)
	assert.InDelta(t, 12.0/9.0, s.BranchingFactor, 1e-9)
	assert.InDelta(t, 75.0, s.Efficiency, 1e-9)
	assert.Equal(t, search.RatingExcellent, s.Rating)

	empty := search.Unset("BMSSP").Summary()
	assert.False(t, empty.Success)
	assert.Equal(t, "BMSSP", empty.Algorithm)
	assert.Equal(t, search.RatingLow, empty.Rating)
}
