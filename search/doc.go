// Package search holds the scaffolding shared by every grid strategy:
// the Result record, the step hook, the per-search cost/parent table,
// the lazy priority queue, trace bookkeeping and path reconstruction.
//
// Contract (every strategy):
//
//   - Signature: Search(g, allowDiagonal, step) Result.
//   - Missing start or goal returns an unsuccessful, empty Result.
//   - The grid's transient marks are reset before running.
//   - Popping a node colors it Visited, appends it to the visited trace,
//     counts an expansion and closes it, before the termination test.
//   - Each successful relaxation updates parent and cost, colors the node
//     Frontier and appends it to the frontier trace unless it is already
//     Visited, re-inserts it into the queue and then invokes step.
//
// State layout:
//
//   - Table is an arena of Node records indexed by row-major cell index,
//     created fresh for each search and owned by it. The Grid keeps only
//     persistent roles and display marks.
//   - Queue uses the lazy-decrease-key pattern: a coordinate may be pushed
//     several times and stale entries are skipped on pop.
//
// Complexity:
//
//   - Queue Push/Pop: O(log N) with N ≤ pushes.
//   - Table construction: O(W×H).
//   - Path reconstruction: O(path length).
package search
