package astar

import (
	"github.com/katalvlaran/pathviz/grid"
	"github.com/katalvlaran/pathviz/search"
)

// Name is the display name reported in search.Result.Algorithm.
const Name = "A*"

// AStar is the A* strategy. It has no configuration.
type AStar struct{}

// New returns the A* strategy.
func New() AStar { return AStar{} }

// Name returns "A*".
func (AStar) Name() string { return Name }

// Search runs A* with default settings.
func (AStar) Search(g *grid.Grid, allowDiagonal bool, step search.StepFunc) search.Result {
	return Search(g, allowDiagonal, step)
}

// Search runs A* from g.Start() to g.Goal(). An unset endpoint yields an
// unsuccessful, empty Result.
func Search(g *grid.Grid, allowDiagonal bool, step search.StepFunc) search.Result {
	if !g.HasEndpoints() {
		return search.Unset(Name)
	}

	start, goal := g.Start(), g.Goal()
	table := search.NewTable(g, 0)
	pq := search.NewQueue(g.Size())
	tr := search.NewTracer(g, step)

	h := grid.Heuristic(start, goal)
	sn := table.At(start)
	sn.G, sn.F = 0, h
	pq.Push(start, search.Key{Primary: h}, 0)

	for pq.Len() > 0 {
		cur := pq.Pop()
		u := cur.Point
		n := table.At(u)
		if n.Visited {
			continue
		}

		tr.Expand(u, n)
		if u == goal {
			path := search.Reconstruct(g, table, u, true)
			return tr.Result(Name, path, cur.Cost, true)
		}

		for _, v := range g.Neighbors(u.X, u.Y, allowDiagonal) {
			if !g.IsWalkable(v.X, v.Y) || table.Closed(v) {
				continue
			}
			tentative := cur.Cost + grid.Distance(u, v)
			nv := table.At(v)
			if !improves(tentative, nv.G) {
				continue
			}
			nv.Parent = u
			nv.G = tentative
			nv.F = tentative + grid.Heuristic(v, goal)
			pq.Push(v, search.Key{Primary: nv.F}, tentative)
			tr.Relaxed(v)
		}
	}

	return tr.Result(Name, nil, 0, false)
}

// improves is the relaxation test. A current cost of exactly 0 is read as
// "never assigned", so any tentative cost wins against it.
func improves(tentative, current float64) bool {
	return tentative < current || current == 0
}
