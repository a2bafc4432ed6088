package search

import (
	"time"

	"github.com/katalvlaran/pathviz/grid"
)

// Tracer records the visited and frontier traces of one search, paints the
// display overlay and forwards each relaxation to the step hook.
type Tracer struct {
	g        *grid.Grid
	step     StepFunc
	visited  []grid.Point
	frontier []grid.Point
	expanded int
	started  time.Time
}

// NewTracer resets the transient marks of g and starts the clock.
func NewTracer(g *grid.Grid, step StepFunc) *Tracer {
	g.ResetTransient()

	return &Tracer{
		g:        g,
		step:     step,
		visited:  make([]grid.Point, 0, g.Size()),
		frontier: make([]grid.Point, 0, g.Size()),
		started:  time.Now(),
	}
}

// Expand records the pop of p: colors it Visited, appends it to the visited
// trace, counts the expansion and closes n.
func (t *Tracer) Expand(p grid.Point, n *Node) {
	t.g.Paint(p, grid.Visited)
	t.visited = append(t.visited, p)
	t.expanded++
	n.Visited = true
}

// Relaxed records a successful relaxation of p. Cells already Visited keep
// their color and are not re-added to the frontier trace. The step hook is
// invoked in every case.
func (t *Tracer) Relaxed(p grid.Point) {
	if t.g.MarkAt(p) != grid.Visited {
		t.g.Paint(p, grid.Frontier)
		t.frontier = append(t.frontier, p)
	}
	if t.step != nil {
		t.step(t.g, t.visited[:len(t.visited):len(t.visited)], t.frontier[:len(t.frontier):len(t.frontier)])
	}
}

// Expanded returns the number of expansions so far.
func (t *Tracer) Expanded() int { return t.expanded }

// Result assembles the final record. path is nil on failure, in which case
// cost is reported as zero.
func (t *Tracer) Result(name string, path []grid.Point, cost float64, success bool) Result {
	r := Result{
		Algorithm: name,
		Visited:   t.visited,
		Frontier:  t.frontier,
		Elapsed:   time.Since(t.started),
		Expanded:  t.expanded,
		Success:   success,
	}
	if success {
		r.Path = path
		r.Cost = cost
	}

	return r
}

// Unset is the Result for a grid whose start or goal is missing.
func Unset(name string) Result {
	return Result{Algorithm: name}
}
