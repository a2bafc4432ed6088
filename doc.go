// Package pathviz is a grid pathfinding engine built for step-by-step
// visualization.
//
// A board (package grid) holds obstacles, a start and a goal. Four
// interchangeable strategies search it and report a search.Result with the
// path, the expansion order and the frontier-addition order:
//
//   - dijkstra:  uniform-cost search.
//   - astar:     heuristic-guided search with a Manhattan heuristic.
//   - bmssp:     best-first search bounded to twice the heuristic distance.
//   - dstarlite: one backward g/rhs relaxation wave from goal to start.
//
// Every strategy paints the board as it goes (visited, frontier, path) and
// calls an optional step hook after each relaxation, so a caller can render
// the search as it unfolds.
//
// Package engine selects strategies by name, compares them and runs them
// asynchronously. Package render draws a painted board as a PNG or as
// colored terminal text. cmd/pathviz serves the board over HTTP and a
// websocket stream, prints a comparison table for a YAML layout, and keeps
// a BadgerDB log of finished runs.
//
// Quick start:
//
//	g := grid.MustParse(
//		"S.#.",
//		"..#.",
//		"...G",
//	)
//	res := engine.Run(g, "A*", false, nil)
//	fmt.Println(res.Success, res.Cost, res.Path)
package pathviz
