// Package astar implements heuristic-guided best-first search on a grid.Grid.
//
// Overview:
//
//   - Frontier key is G + Heuristic(node, goal), where Heuristic is the
//     Manhattan distance for both 4- and 8-connected moves. Under diagonal
//     movement it overestimates, so results are not guaranteed optimal.
//   - Ties fall back to heap order; there is no secondary key.
//   - Costs start at 0, and a neighbor whose G is still exactly 0 always
//     counts as improved. The start cell is closed before its neighbors are
//     relaxed, so it is never re-parented.
//   - The cost reported on success is the G the goal was pushed with.
//
// Complexity:
//
//   - Time:  O(N log N) worst case for N = W×H cells.
//   - Space: O(N).
package astar
