// Package bmssp implements a heuristic-bounded best-first search, shown
// under the label "BMSSP".
//
// Despite the label this is not the batched bounded multi-source
// shortest-path algorithm. It is a Dijkstra-style search with two changes:
//
//   - A fixed cost radius, limit = Factor × Heuristic(start, goal), with
//     Factor = 2 by default. Entries costing more than limit are dropped
//     when popped, and a neighbor is only admitted when its new cost is
//     ≤ limit.
//   - The frontier key is cost + Heuristic(neighbor, goal), computed at
//     push time and never revisited for entries already queued.
//
// A goal whose shortest path costs more than limit is never found, even if
// it is reachable. Expansion stays bounded in exchange.
//
// Complexity:
//
//   - Time:  O(M log M) where M is the number of cells within the radius.
//   - Space: O(W×H) for the table.
package bmssp
