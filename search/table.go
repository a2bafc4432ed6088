package search

import (
	"math"

	"github.com/katalvlaran/pathviz/grid"
)

// Inf is the cost of a node that has not been reached.
var Inf = math.Inf(1)

// Node is the per-cell search state.
//
//   - G:       best known cost (from start, or to goal for backward passes).
//   - F:       estimated total cost; RHS for the backward pass.
//   - Parent:  predecessor used by path reconstruction, grid.None if unset.
//   - Visited: set once the node has been expanded.
type Node struct {
	G       float64
	F       float64
	Parent  grid.Point
	Visited bool
}

// Table is an arena of Node records, one per cell, indexed row-major.
// A Table belongs to a single search and is discarded afterwards.
type Table struct {
	g     *grid.Grid
	nodes []Node
}

// NewTable allocates a table for g with every G and F set to g0 and every
// parent unset.
// Complexity: O(W×H).
func NewTable(g *grid.Grid, g0 float64) *Table {
	nodes := make([]Node, g.Size())
	for i := range nodes {
		nodes[i] = Node{G: g0, F: g0, Parent: grid.None}
	}

	return &Table{g: g, nodes: nodes}
}

// At returns the node of p. p must be in bounds.
func (t *Table) At(p grid.Point) *Node {
	return &t.nodes[t.g.Index(p)]
}

// Parent returns the predecessor of p, grid.None when unset or out of range.
func (t *Table) Parent(p grid.Point) grid.Point {
	if !t.g.Contains(p) {
		return grid.None
	}
	return t.nodes[t.g.Index(p)].Parent
}

// Closed reports whether p has been expanded.
func (t *Table) Closed(p grid.Point) bool {
	return t.nodes[t.g.Index(p)].Visited
}
