package engine

import (
	"context"

	"github.com/katalvlaran/pathviz/grid"
	"github.com/katalvlaran/pathviz/search"
)

// Step is one relaxation as seen by StepChannel. Visited and Frontier are
// the traces at that moment; their elements are never modified afterwards.
type Step struct {
	Visited  []grid.Point
	Frontier []grid.Point
	Grid     grid.Snapshot
}

// StepChannel returns a hook that sends one Step per relaxation on ch.
// Sends block, so a slow reader slows the search. Once ctx is done the hook
// stops sending and returns immediately.
func StepChannel(ctx context.Context, ch chan<- Step) search.StepFunc {
	return func(g *grid.Grid, visited, frontier []grid.Point) {
		if ctx.Err() != nil {
			return
		}
		s := Step{Visited: visited, Frontier: frontier, Grid: g.Snapshot()}
		select {
		case ch <- s:
		case <-ctx.Done():
		}
	}
}
