// Package grid models a fixed width × height board of cells, each holding a
// persistent role (empty, obstacle, start, goal) and a transient display mark
// (visited, frontier, path) painted by a search.
//
// What:
//
//   - Grid owns roles, marks, and at most one start and one goal coordinate.
//   - Neighbors enumerates 4- or 8-connected in-bounds cells.
//   - Distance is Euclidean; Heuristic is Manhattan (L1) regardless of
//     connectivity, so it is inadmissible under diagonal movement.
//   - Snapshot serializes the board into the row-major wire form the
//     request layer renders.
//   - ParseLayout / Parse build boards from YAML documents or ASCII rows.
//   - Components, Connected and OpenPath answer reachability questions and
//     can carve a route through a random board.
//
// Roles vs marks:
//
//   - Roles persist across searches until explicitly edited.
//   - Marks are cleared by ResetTransient before every search.
//   - Type(x, y) reports the role when it is not Empty, otherwise the mark,
//     so painting a path never erases the start or goal marker.
//
// Robustness:
//
//   - Every mutation ignores out-of-range coordinates silently.
//   - Start and goal always refer to walkable cells; setting a new one
//     clears the previous marker.
//
// Diagonal neighbors do not check for corner cutting between two orthogonal
// obstacles.
//
// Complexity:
//
//   - Neighbors, InBounds, IsWalkable, Distance, Heuristic: O(1).
//   - ResetTransient, Clear, Snapshot, Clone, RandomObstacles: O(W×H).
//   - Components, Connected, OpenPath: O(W×H×d), d = 4 or 8.
package grid
