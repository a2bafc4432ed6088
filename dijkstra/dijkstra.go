package dijkstra

import (
	"github.com/katalvlaran/pathviz/grid"
	"github.com/katalvlaran/pathviz/search"
)

// Dijkstra is a configured uniform-cost strategy. The zero value is not
// usable; construct with New.
type Dijkstra struct {
	options Options
}

// New returns a Dijkstra strategy with the given options applied on top of
// DefaultOptions.
func New(opts ...Option) *Dijkstra {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Dijkstra{options: cfg}
}

// Name returns "Dijkstra".
func (d *Dijkstra) Name() string { return Name }

// Search runs uniform-cost search from g.Start() to g.Goal().
//
// Returns an unsuccessful, empty Result when either endpoint is unset.
// The transient marks of g are reset before running and repainted as the
// search progresses; step, if non-nil, is invoked after every successful
// relaxation.
func (d *Dijkstra) Search(g *grid.Grid, allowDiagonal bool, step search.StepFunc) search.Result {
	// 1) Unset endpoints are a normal, unsuccessful outcome.
	if !g.HasEndpoints() {
		return search.Unset(Name)
	}

	// 2) Fresh per-search state: +Inf everywhere, start at 0.
	r := &runner{
		g:        g,
		options:  d.options,
		diagonal: allowDiagonal,
		goal:     g.Goal(),
		table:    search.NewTable(g, search.Inf),
		pq:       search.NewQueue(g.Size()),
		tr:       search.NewTracer(g, step),
	}
	r.init(g.Start())

	// 3) Main loop.
	return r.process()
}

// Search runs Dijkstra with default options.
func Search(g *grid.Grid, allowDiagonal bool, step search.StepFunc) search.Result {
	return New().Search(g, allowDiagonal, step)
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g        *grid.Grid     // Board being searched; marks are painted on it.
	options  Options        // Configuration (MaxDistance).
	diagonal bool           // Whether 8-connected moves are allowed.
	goal     grid.Point     // Target cell.
	table    *search.Table  // Cost, parent and closed flag per cell.
	pq       *search.Queue  // Lazy min-heap keyed by accumulated cost.
	tr       *search.Tracer // Trace and overlay bookkeeping.
}

// init sets the start cost to zero and pushes it.
func (r *runner) init(start grid.Point) {
	r.table.At(start).G = 0
	r.pq.Push(start, search.Key{Primary: 0}, 0)
}

// process repeatedly extracts the cheapest frontier entry and relaxes its
// neighbors until the goal is popped or the frontier is exhausted.
func (r *runner) process() search.Result {
	for r.pq.Len() > 0 {
		// 1) Pop the smallest-cost entry.
		item := r.pq.Pop()
		u := item.Point
		n := r.table.At(u)

		// 2) Skip stale entries of already-closed cells.
		if n.Visited {
			continue
		}

		// 3) Past the distance cap nothing cheaper remains; stop.
		if item.Cost > r.options.MaxDistance {
			break
		}

		// 4) Expand and close before the goal test.
		r.tr.Expand(u, n)
		if u == r.goal {
			path := search.Reconstruct(r.g, r.table, u, true)
			return r.tr.Result(Name, path, item.Cost, true)
		}

		// 5) Relax neighbors.
		r.relax(u, item.Cost)
	}

	return r.tr.Result(Name, nil, 0, false)
}

// relax examines each neighbor of u and records a strictly shorter path.
func (r *runner) relax(u grid.Point, cost float64) {
	for _, v := range r.g.Neighbors(u.X, u.Y, r.diagonal) {
		if !r.g.IsWalkable(v.X, v.Y) || r.table.Closed(v) {
			continue
		}
		newDist := cost + grid.Distance(u, v)
		nv := r.table.At(v)
		// Strict "<" avoids pushing duplicates at equal cost.
		if newDist >= nv.G {
			continue
		}
		nv.G = newDist
		nv.Parent = u
		r.pq.Push(v, search.Key{Primary: newDist}, newDist)
		r.tr.Relaxed(v)
	}
}
