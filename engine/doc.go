// Package engine is the entry point used by request layers: it resolves a
// strategy by display name, runs it on a board, compares strategies and
// runs searches asynchronously.
//
// Surfaces:
//
//   - Run(g, name, diagonal, step): one synchronous search. An unknown name
//     performs no search and returns the zero search.Result.
//   - Compare(g, names, diagonal): every named strategy on its own clone.
//   - StepChannel(ctx, ch): a step hook that forwards each relaxation to a
//     channel, for callers that want to decouple presentation from compute.
//   - Runner: runs one search at a time on a worker goroutine, paces each
//     step by a fixed delay and publishes frames to subscribers.
//
// Searches themselves cannot be interrupted. Runner.Stop cancels pacing and
// step frames, then waits for the search to finish.
//
// Names and aliases (case-insensitive):
//
//	A*        astar, a-star
//	Dijkstra  dijkstra
//	D* Lite   dstarlite, dstar, d*lite
//	BMSSP     bmssp, bounded
package engine
