package bmssp

import (
	"errors"

	"github.com/katalvlaran/pathviz/grid"
	"github.com/katalvlaran/pathviz/search"
)

// Name is the display name reported in search.Result.Algorithm.
const Name = "BMSSP"

// DefaultFactor scales Heuristic(start, goal) into the search radius.
const DefaultFactor = 2.0

// ErrBadFactor indicates a non-positive radius factor.
var ErrBadFactor = errors.New("bmssp: Factor must be positive")

// Options configures the bounded search.
//
// Factor – multiplier applied to Heuristic(start, goal) to obtain the radius.
// Must be > 0. Default DefaultFactor.
type Options struct {
	Factor float64
}

// Option represents a functional option for configuring the bounded search.
type Option func(*Options)

// WithFactor sets the radius multiplier. Non-positive values panic with
// ErrBadFactor.
func WithFactor(f float64) Option {
	return func(o *Options) {
		if f <= 0 {
			panic(ErrBadFactor.Error())
		}
		o.Factor = f
	}
}

// DefaultOptions returns Options with Factor = DefaultFactor.
func DefaultOptions() Options {
	return Options{Factor: DefaultFactor}
}

// Bounded is a configured bounded best-first strategy.
type Bounded struct {
	options Options
}

// New returns a Bounded strategy with opts applied over DefaultOptions.
func New(opts ...Option) *Bounded {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Bounded{options: cfg}
}

// Name returns "BMSSP".
func (b *Bounded) Name() string { return Name }

// Limit returns the cost radius used for g, or 0 when an endpoint is unset.
func (b *Bounded) Limit(g *grid.Grid) float64 {
	if !g.HasEndpoints() {
		return 0
	}
	return b.options.Factor * grid.Heuristic(g.Start(), g.Goal())
}

// Search runs the bounded search from g.Start() to g.Goal().
func (b *Bounded) Search(g *grid.Grid, allowDiagonal bool, step search.StepFunc) search.Result {
	if !g.HasEndpoints() {
		return search.Unset(Name)
	}

	start, goal := g.Start(), g.Goal()
	table := search.NewTable(g, search.Inf)
	pq := search.NewQueue(g.Size())
	tr := search.NewTracer(g, step)

	h := grid.Heuristic(start, goal)
	limit := b.options.Factor * h
	table.At(start).G = 0
	pq.Push(start, search.Key{Primary: h}, 0)

	for pq.Len() > 0 {
		cur := pq.Pop()
		u := cur.Point
		n := table.At(u)
		if n.Visited {
			continue
		}
		if cur.Cost > limit {
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
			cost := cur.Cost + grid.Distance(u, v)
			nv := table.At(v)
			if cost >= nv.G || cost > limit {
				continue
			}
			nv.G = cost
			nv.Parent = u
			pq.Push(v, search.Key{Primary: cost + grid.Heuristic(v, goal)}, cost)
			tr.Relaxed(v)
		}
	}

	return tr.Result(Name, nil, 0, false)
}

// Search runs the bounded search with the default radius.
func Search(g *grid.Grid, allowDiagonal bool, step search.StepFunc) search.Result {
	return New().Search(g, allowDiagonal, step)
}
