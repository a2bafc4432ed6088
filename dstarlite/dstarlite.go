package dstarlite

import (
	"math"

	"github.com/katalvlaran/pathviz/grid"
	"github.com/katalvlaran/pathviz/search"
)

// Name is the display name reported in search.Result.Algorithm.
const Name = "D* Lite"

// DStarLite is the single-pass backward strategy. It has no configuration.
type DStarLite struct{}

// New returns the strategy.
func New() DStarLite { return DStarLite{} }

// Name returns "D* Lite".
func (DStarLite) Name() string { return Name }

// Search runs one backward pass; see the package documentation.
func (DStarLite) Search(g *grid.Grid, allowDiagonal bool, step search.StepFunc) search.Result {
	return Search(g, allowDiagonal, step)
}

// Search runs one backward relaxation wave from g.Goal() to g.Start().
func Search(g *grid.Grid, allowDiagonal bool, step search.StepFunc) search.Result {
	if !g.HasEndpoints() {
		return search.Unset(Name)
	}

	w := &wave{
		g:        g,
		diagonal: allowDiagonal,
		start:    g.Start(),
		table:    search.NewTable(g, search.Inf),
		pq:       search.NewQueue(g.Size()),
		tr:       search.NewTracer(g, step),
	}
	goal := g.Goal()
	w.table.At(goal).F = 0
	w.push(goal)
	w.run()

	sn := w.table.At(w.start)
	if math.IsInf(sn.G, 1) {
		return w.tr.Result(Name, nil, 0, false)
	}
	path := search.Reconstruct(g, w.table, w.start, false)

	return w.tr.Result(Name, path, sn.G, true)
}

// wave holds the mutable state of one backward pass. Node.F carries rhs.
type wave struct {
	g        *grid.Grid
	diagonal bool
	start    grid.Point
	table    *search.Table
	pq       *search.Queue
	tr       *search.Tracer
}

// key returns (min(G,rhs) + Heuristic(p, start), min(G,rhs)).
func (w *wave) key(p grid.Point) search.Key {
	n := w.table.At(p)
	m := math.Min(n.G, n.F)
	return search.Key{Primary: m + grid.Heuristic(p, w.start), Secondary: m}
}

func (w *wave) push(p grid.Point) {
	w.pq.Push(p, w.key(p), w.table.At(p).F)
}

func (w *wave) run() {
	for w.pq.Len() > 0 {
		u := w.pq.Pop().Point
		n := w.table.At(u)
		w.tr.Expand(u, n)

		if u == w.start && n.G == n.F {
			return
		}

		if n.G > n.F {
			n.G = n.F
		} else {
			n.G, n.F = search.Inf, search.Inf
		}

		for _, v := range w.g.Neighbors(u.X, u.Y, w.diagonal) {
			if !w.g.IsWalkable(v.X, v.Y) {
				continue
			}
			rhs := n.G + grid.Distance(u, v)
			nv := w.table.At(v)
			if rhs >= nv.F {
				continue
			}
			nv.F = rhs
			nv.Parent = u
			w.push(v)
			w.tr.Relaxed(v)
		}
	}
}
