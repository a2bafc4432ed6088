// Package grid defines core types, connectivity offsets, and sentinel errors
// for the grid subpackage of github.com/katalvlaran/pathviz.
package grid

import (
	"fmt"
	"strconv"
)

// CellType tags a cell both for walkability decisions and for display.
// The numeric values are the wire codes used by Snapshot.
type CellType int

const (
	// Empty is a walkable cell with no role and no mark.
	Empty CellType = iota
	// Obstacle is never walkable and never holds a start or goal role.
	Obstacle
	// Start marks the single start cell.
	Start
	// Goal marks the single goal cell.
	Goal
	// Visited marks a cell expanded by the last search.
	Visited
	// Path marks a cell on the last reconstructed path.
	Path
	// Frontier marks a cell discovered but not yet expanded.
	Frontier
)

var cellTypeNames = [...]string{"empty", "obstacle", "start", "goal", "visited", "path", "frontier"}

// String returns the lower-case name of the type.
func (t CellType) String() string {
	if t < Empty || int(t) >= len(cellTypeNames) {
		return "CellType(" + strconv.Itoa(int(t)) + ")"
	}
	return cellTypeNames[t]
}

// IsRole reports whether t is a persistent role rather than a display mark.
func (t CellType) IsRole() bool {
	return t == Empty || t == Obstacle || t == Start || t == Goal
}

// IsMark reports whether t is a transient display mark.
func (t CellType) IsMark() bool {
	return t == Visited || t == Path || t == Frontier
}

// Point is a cell coordinate.
type Point struct {
	X, Y int
}

// None is the "unset" sentinel used for missing endpoints and parent links.
var None = Point{X: -1, Y: -1}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point { return Point{X: x, Y: y} }

// IsNone reports whether p is the unset sentinel.
func (p Point) IsNone() bool { return p == None }

// String formats p as "(x,y)".
func (p Point) String() string { return fmt.Sprintf("(%d,%d)", p.X, p.Y) }

// Cell is a read-only view of one board position.
type Cell struct {
	X, Y int      // Coordinates within the grid
	Role CellType // Persistent role: Empty, Obstacle, Start or Goal
	Mark CellType // Transient display mark, Empty when unpainted
}

// Type returns the display type: the role when set, otherwise the mark.
func (c Cell) Type() CellType {
	if c.Role != Empty {
		return c.Role
	}
	return c.Mark
}

// orthogonalOffsets lists W, E, N, S moves in the order neighbors are emitted.
var orthogonalOffsets = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// diagonalOffsets lists NW, SW, NE, SE moves, appended after the orthogonal ones.
var diagonalOffsets = [4][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
