package engine

import (
	"log/slog"

	"github.com/katalvlaran/pathviz/grid"
	"github.com/katalvlaran/pathviz/search"
)

// Engine runs named strategies. It is safe for concurrent use as long as
// concurrent calls operate on different boards.
type Engine struct {
	log      *slog.Logger
	registry *Registry
	metrics  *Metrics
}

// New returns an Engine with opts applied over DefaultOptions.
func New(opts ...Option) *Engine {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Engine{
		log:      cfg.Logger,
		registry: cfg.Registry,
		metrics:  cfg.Metrics,
	}
}

// Registry returns the engine's strategy registry.
func (e *Engine) Registry() *Registry { return e.registry }

// Algorithms returns the display names of the registered strategies.
func (e *Engine) Algorithms() []string { return e.registry.Names() }

// Run executes the strategy called name on g. An unknown name or a nil
// board performs no search and returns the zero Result; neither is an error.
func (e *Engine) Run(g *grid.Grid, name string, allowDiagonal bool, step search.StepFunc) search.Result {
	s, ok := e.registry.Lookup(name)
	if !ok {
		e.log.Warn("unknown algorithm", slog.String("algorithm", name))
		return search.Result{}
	}
	if g == nil {
		e.log.Warn("run without grid", slog.String("algorithm", s.Name()))
		return search.Result{}
	}

	res := s.Search(g, allowDiagonal, step)
	e.metrics.observe(res)
	e.log.Debug("search finished",
		slog.String("algorithm", res.Algorithm),
		slog.Bool("success", res.Success),
		slog.Float64("cost", res.Cost),
		slog.Int("expanded", res.Expanded),
		slog.Int("path", len(res.Path)),
		slog.Duration("elapsed", res.Elapsed),
	)

	return res
}

// Compare runs each named strategy on its own clone of g, leaving g
// untouched. An empty names list runs every registered strategy. Unknown
// names keep their slot with a zero Result.
func (e *Engine) Compare(g *grid.Grid, names []string, allowDiagonal bool) []search.Result {
	if len(names) == 0 {
		names = e.registry.Names()
	}
	out := make([]search.Result, len(names))
	if g == nil {
		return out
	}
	for i, name := range names {
		out[i] = e.Run(g.Clone(), name, allowDiagonal, nil)
	}

	return out
}

// Fastest returns the successful result with the lowest Elapsed.
func Fastest(results []search.Result) (search.Result, bool) {
	return best(results, func(a, b search.Result) bool { return a.Elapsed < b.Elapsed })
}

// FewestExpanded returns the successful result with the fewest expansions.
func FewestExpanded(results []search.Result) (search.Result, bool) {
	return best(results, func(a, b search.Result) bool { return a.Expanded < b.Expanded })
}

// Cheapest returns the successful result with the lowest cost.
func Cheapest(results []search.Result) (search.Result, bool) {
	return best(results, func(a, b search.Result) bool { return a.Cost < b.Cost })
}

func best(results []search.Result, less func(a, b search.Result) bool) (search.Result, bool) {
	var (
		out   search.Result
		found bool
	)
	for _, r := range results {
		if !r.Success {
			continue
		}
		if !found || less(r, out) {
			out, found = r, true
		}
	}

	return out, found
}

var defaultEngine = New()

// Run executes name on g with the default engine.
func Run(g *grid.Grid, name string, allowDiagonal bool, step search.StepFunc) search.Result {
	return defaultEngine.Run(g, name, allowDiagonal, step)
}
