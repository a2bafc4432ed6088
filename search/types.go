package search

import (
	"time"

	"github.com/katalvlaran/pathviz/grid"
)

// StepFunc observes a search after every successful relaxation. visited and
// frontier are the traces accumulated so far; they are capacity-capped views
// and must not be retained past the call if the caller needs a stable copy.
//
// The hook runs synchronously on the search goroutine, so any delay it
// introduces slows the search by the same amount.
type StepFunc func(g *grid.Grid, visited, frontier []grid.Point)

// Strategy is a grid search algorithm.
type Strategy interface {
	// Name is the display name, e.g. "A*".
	Name() string
	// Search runs the strategy on g. step may be nil.
	Search(g *grid.Grid, allowDiagonal bool, step StepFunc) Result
}

// Func adapts a plain search function into a Strategy.
type Func struct {
	Label string
	Run   func(g *grid.Grid, allowDiagonal bool, step StepFunc) Result
}

// Name returns f.Label.
func (f Func) Name() string { return f.Label }

// Search calls f.Run.
func (f Func) Search(g *grid.Grid, allowDiagonal bool, step StepFunc) Result {
	return f.Run(g, allowDiagonal, step)
}

// Result is the immutable outcome of one search invocation.
//
//   - Path: start→goal inclusive, empty when Success is false. The backward
//     D* Lite pass follows its parent chain from start and stops at the
//     first repeated cell, so under diagonal moves its Path may end short of
//     the goal while Success and Cost still hold.
//   - Visited: expansion order.
//   - Frontier: frontier-addition order.
//   - Cost: path cost, 0 on failure.
//   - Elapsed: wall-clock duration of the search loop.
//   - Expanded: number of pops that were expanded.
type Result struct {
	Algorithm string
	Path      []grid.Point
	Visited   []grid.Point
	Frontier  []grid.Point
	Cost      float64
	Elapsed   time.Duration
	Expanded  int
	Success   bool
}

// PathLength returns the number of cells on the path.
func (r Result) PathLength() int { return len(r.Path) }
