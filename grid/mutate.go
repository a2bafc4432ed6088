package grid

// ResetTransient clears every display mark, leaving obstacles, start and
// goal intact. Searches call it before running.
// Complexity: O(W×H).
func (g *Grid) ResetTransient() {
	for i := range g.marks {
		g.marks[i] = Empty
	}
}

// ClearPath is the request-layer name for ResetTransient.
func (g *Grid) ClearPath() { g.ResetTransient() }

// Clear resets the entire board: obstacles, marks, start and goal.
func (g *Grid) Clear() {
	for i := range g.roles {
		g.roles[i] = Empty
		g.marks[i] = Empty
	}
	g.start, g.goal = None, None
}

// SetStart moves the start role to (x,y). Out-of-range or obstacle cells
// are ignored. Placing the start on the goal cell unsets the goal.
func (g *Grid) SetStart(x, y int) {
	if !g.IsWalkable(x, y) {
		return
	}
	p := Point{X: x, Y: y}
	if p == g.goal {
		g.goal = None
	}
	if !g.start.IsNone() {
		g.roles[g.Index(g.start)] = Empty
	}
	g.start = p
	g.roles[g.index(x, y)] = Start
}

// SetGoal moves the goal role to (x,y). Out-of-range or obstacle cells are
// ignored. Placing the goal on the start cell unsets the start.
func (g *Grid) SetGoal(x, y int) {
	if !g.IsWalkable(x, y) {
		return
	}
	p := Point{X: x, Y: y}
	if p == g.start {
		g.start = None
	}
	if !g.goal.IsNone() {
		g.roles[g.Index(g.goal)] = Empty
	}
	g.goal = p
	g.roles[g.index(x, y)] = Goal
}

// UnsetStart removes the start role, if any.
func (g *Grid) UnsetStart() {
	if g.start.IsNone() {
		return
	}
	g.roles[g.Index(g.start)] = Empty
	g.start = None
}

// UnsetGoal removes the goal role, if any.
func (g *Grid) UnsetGoal() {
	if g.goal.IsNone() {
		return
	}
	g.roles[g.Index(g.goal)] = Empty
	g.goal = None
}

// SetCellRole assigns a persistent role to (x,y).
//
//   - Start and Goal move the single endpoint (see SetStart, SetGoal).
//   - Obstacle on an endpoint replaces it; the endpoint becomes unset.
//   - Empty on an endpoint unsets it.
//
// Display types and out-of-range coordinates are ignored.
func (g *Grid) SetCellRole(x, y int, role CellType) {
	if !g.InBounds(x, y) {
		return
	}
	switch role {
	case Start:
		g.SetStart(x, y)
	case Goal:
		g.SetGoal(x, y)
	case Obstacle, Empty:
		g.dropEndpointAt(Point{X: x, Y: y})
		g.roles[g.index(x, y)] = role
	}
}

// ToggleObstacle flips (x,y) between Empty and Obstacle. It is a no-op on
// the current start or goal cell and on out-of-range coordinates.
func (g *Grid) ToggleObstacle(x, y int) {
	if !g.InBounds(x, y) {
		return
	}
	p := Point{X: x, Y: y}
	if p == g.start || p == g.goal {
		return
	}
	i := g.index(x, y)
	if g.roles[i] == Obstacle {
		g.roles[i] = Empty
	} else {
		g.roles[i] = Obstacle
	}
}

// Paint sets the display mark of p. Non-mark types and out-of-range points
// are ignored.
func (g *Grid) Paint(p Point, mark CellType) {
	if !mark.IsMark() || !g.Contains(p) {
		return
	}
	g.marks[g.Index(p)] = mark
}

// MarkAt returns the display mark of p, Empty when unpainted or out of range.
func (g *Grid) MarkAt(p Point) CellType {
	if !g.Contains(p) {
		return Empty
	}
	return g.marks[g.Index(p)]
}

// AdoptMarks copies the display overlay of other into g. Boards of a
// different size are ignored.
func (g *Grid) AdoptMarks(other *Grid) {
	if other == nil || other.Width != g.Width || other.Height != g.Height {
		return
	}
	copy(g.marks, other.marks)
}

func (g *Grid) dropEndpointAt(p Point) {
	if p == g.start {
		g.start = None
	}
	if p == g.goal {
		g.goal = None
	}
}
