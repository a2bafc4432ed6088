// Package dstarlite runs one backward relaxation wave from goal to start in
// the style of D* Lite, shown under the label "D* Lite".
//
// This is a single static pass, not an incremental replanner: no state is
// kept between calls, and an obstacle edit requires a fresh Search.
//
// State per cell (search.Node):
//
//   - G:   established cost to goal.
//   - F:   rhs, the one-step lookahead cost to goal.
//   - Both start at +Inf except rhs(goal) = 0.
//
// Queue key is (min(G,rhs) + Heuristic(cell, start), min(G,rhs)), ordered
// lexicographically. On every pop (no closed-set skip; every pop counts as
// an expansion):
//
//   - If the cell is start and G == rhs, stop.
//   - If G > rhs, set G = rhs. Otherwise set both to +Inf.
//   - For every walkable neighbor v, if G + Distance(cell, v) < rhs(v),
//     lower rhs(v), point v's parent at the cell and push v.
//
// The search succeeds when G(start) is finite. Parents point toward the goal,
// so the path is read from start onward without reversal. A parent chain
// can loop after a cell was reset to +Inf and re-parented, so the walk ends
// at the first repeated cell and the path may then stop short of the goal.
// The reported cost is always G(start).
package dstarlite
