// Package dijkstra implements uniform-cost search on a grid.Grid.
//
// Overview:
//
//   - Frontier key is the accumulated Euclidean cost from start.
//   - Every G starts at +Inf; the start cell is 0.
//   - A popped node already in the closed set is a stale heap entry and is
//     skipped (lazy decrease-key); otherwise it is expanded and closed
//     before the goal test.
//   - A neighbor is relaxed when it is walkable, not closed, and the new
//     cost is strictly lower than its current G.
//   - Success when the goal is popped; failure when the frontier empties.
//
// Options:
//
//   - MaxDistance: stop exploring once the cheapest frontier entry costs
//     more than this value. Default +Inf (no cap).
//
// Complexity:
//
//   - Time:  O(N log N) for N = W×H cells (each cell expanded once, each
//     relaxation pushes one heap entry, at most 8 per cell).
//   - Space: O(N) for the table plus O(N) heap entries.
//
// Example:
//
//	g := grid.MustParse("S..", ".#.", "..G")
//	res := dijkstra.Search(g, false, nil)
//	fmt.Println(res.Success, res.Cost) // true 4
package dijkstra
