package grid

import (
	"math"
)

// Grid is a rectangular board of cells. Roles persist until edited; marks
// are transient and painted by searches.
//
// A Grid is not safe for concurrent mutation. Callers that edit a board
// while a search runs should search a Clone instead.
type Grid struct {
	Width, Height int
	roles         []CellType // row-major, persistent roles
	marks         []CellType // row-major, display overlay
	start, goal   Point
}

// New constructs an empty width × height board with start and goal unset.
// Returns ErrEmptyGrid if either dimension is not positive.
// Complexity: O(W×H) time and memory.
func New(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrEmptyGrid
	}
	n := width * height
	g := &Grid{
		Width:  width,
		Height: height,
		roles:  make([]CellType, n),
		marks:  make([]CellType, n),
		start:  None,
		goal:   None,
	}

	return g, nil
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// Contains reports whether p lies within the grid boundaries.
func (g *Grid) Contains(p Point) bool { return g.InBounds(p.X, p.Y) }

// IsWalkable reports whether (x,y) is in bounds and not an obstacle.
// Complexity: O(1).
func (g *Grid) IsWalkable(x, y int) bool {
	if !g.InBounds(x, y) {
		return false
	}
	return g.roles[g.index(x, y)] != Obstacle
}

// index maps (x,y) to a row-major index: y*Width + x.
// Complexity: O(1).
func (g *Grid) index(x, y int) int {
	return y*g.Width + x
}

// Index maps p to its row-major index. p must be in bounds.
func (g *Grid) Index(p Point) int { return g.index(p.X, p.Y) }

// Coordinate converts a row-major index back to a Point.
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) Point {
	return Point{X: idx % g.Width, Y: idx / g.Width}
}

// Size returns the number of cells, Width×Height.
func (g *Grid) Size() int { return g.Width * g.Height }

// Start returns the start coordinate, or None when unset.
func (g *Grid) Start() Point { return g.start }

// Goal returns the goal coordinate, or None when unset.
func (g *Grid) Goal() Point { return g.goal }

// HasEndpoints reports whether both start and goal are set.
func (g *Grid) HasEndpoints() bool { return !g.start.IsNone() && !g.goal.IsNone() }

// Cell returns a view of (x,y). Out-of-range coordinates report an Obstacle
// role, matching IsWalkable.
func (g *Grid) Cell(x, y int) Cell {
	if !g.InBounds(x, y) {
		return Cell{X: x, Y: y, Role: Obstacle}
	}
	i := g.index(x, y)
	return Cell{X: x, Y: y, Role: g.roles[i], Mark: g.marks[i]}
}

// Type returns the display type of (x,y): the role when set, otherwise the mark.
func (g *Grid) Type(x, y int) CellType {
	return g.Cell(x, y).Type()
}

// Neighbors returns the in-bounds axis-aligned neighbors of (x,y) in W, E,
// N, S order, followed by the four diagonals when allowDiagonal is set.
// Walkability is left to the caller, and diagonal moves may cut between
// two orthogonal obstacles.
// Complexity: O(1).
func (g *Grid) Neighbors(x, y int, allowDiagonal bool) []Point {
	out := make([]Point, 0, 8)
	for _, d := range orthogonalOffsets {
		nx, ny := x+d[0], y+d[1]
		if g.InBounds(nx, ny) {
			out = append(out, Point{X: nx, Y: ny})
		}
	}
	if !allowDiagonal {
		return out
	}
	for _, d := range diagonalOffsets {
		nx, ny := x+d[0], y+d[1]
		if g.InBounds(nx, ny) {
			out = append(out, Point{X: nx, Y: ny})
		}
	}

	return out
}

// Distance returns the Euclidean distance between a and b.
func Distance(a, b Point) float64 {
	return math.Hypot(float64(b.X-a.X), float64(b.Y-a.Y))
}

// Heuristic returns the Manhattan (L1) distance between a and b. It is used
// for every connectivity and therefore overestimates under diagonal moves.
func Heuristic(a, b Point) float64 {
	return math.Abs(float64(b.X-a.X)) + math.Abs(float64(b.Y-a.Y))
}

// Distance returns the Euclidean distance between two cells of g.
func (g *Grid) Distance(a, b Point) float64 { return Distance(a, b) }

// Heuristic returns the Manhattan distance between two cells of g.
func (g *Grid) Heuristic(a, b Point) float64 { return Heuristic(a, b) }

// Clone returns a deep copy of g, roles, marks and endpoints included.
// Complexity: O(W×H).
func (g *Grid) Clone() *Grid {
	c := &Grid{
		Width:  g.Width,
		Height: g.Height,
		roles:  make([]CellType, len(g.roles)),
		marks:  make([]CellType, len(g.marks)),
		start:  g.start,
		goal:   g.goal,
	}
	copy(c.roles, g.roles)
	copy(c.marks, g.marks)

	return c
}
