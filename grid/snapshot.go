package grid

import "encoding/json"

// Snapshot is the wire form of a board: dimensions, endpoints ([-1,-1] when
// unset) and a row-major matrix of display type codes, Cells[y][x].
type Snapshot struct {
	Width  int          `json:"width"`
	Height int          `json:"height"`
	Start  [2]int       `json:"start"`
	Goal   [2]int       `json:"goal"`
	Cells  [][]CellType `json:"grid"`
}

// Snapshot captures the current display state of g.
// Complexity: O(W×H).
func (g *Grid) Snapshot() Snapshot {
	cells := make([][]CellType, g.Height)
	for y := 0; y < g.Height; y++ {
		row := make([]CellType, g.Width)
		for x := 0; x < g.Width; x++ {
			row[x] = g.Type(x, y)
		}
		cells[y] = row
	}

	return Snapshot{
		Width:  g.Width,
		Height: g.Height,
		Start:  [2]int{g.start.X, g.start.Y},
		Goal:   [2]int{g.goal.X, g.goal.Y},
		Cells:  cells,
	}
}

// MarshalJSON encodes the board as its Snapshot.
func (g *Grid) MarshalJSON() ([]byte, error) {
	return json.Marshal(g.Snapshot())
}
