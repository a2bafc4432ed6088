package grid

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// ASCII symbols understood by Parse and produced by Rows.
const (
	SymbolEmpty    = '.'
	SymbolObstacle = '#'
	SymbolStart    = 'S'
	SymbolGoal     = 'G'
	SymbolVisited  = 'o'
	SymbolPath     = '*'
	SymbolFrontier = '+'
)

var typeSymbols = [...]byte{
	Empty:    SymbolEmpty,
	Obstacle: SymbolObstacle,
	Start:    SymbolStart,
	Goal:     SymbolGoal,
	Visited:  SymbolVisited,
	Path:     SymbolPath,
	Frontier: SymbolFrontier,
}

// Layout is the YAML document form of a board. Either Rows (ASCII art) or
// Width/Height must be given; Start, Goal and Obstacles are applied on top.
//
//	rows:
//	  - "S.#.."
//	  - "..#.G"
//
// or
//
//	width: 5
//	height: 5
//	start: [0, 0]
//	goal: [4, 4]
//	obstacles: [[2, 0], [2, 1]]
type Layout struct {
	Width     int      `yaml:"width,omitempty"`
	Height    int      `yaml:"height,omitempty"`
	Rows      []string `yaml:"rows,omitempty"`
	Start     []int    `yaml:"start,omitempty"`
	Goal      []int    `yaml:"goal,omitempty"`
	Obstacles [][]int  `yaml:"obstacles,omitempty"`
}

// Parse builds a board from ASCII rows ('.' or ' ' empty, '#' obstacle,
// 'S' start, 'G' goal). Row y of the input is row y of the board.
// Returns ErrEmptyGrid, ErrNonRectangular, ErrBadSymbol or ErrDuplicateEndpoint.
func Parse(rows ...string) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	w, h := len(rows[0]), len(rows)
	for _, row := range rows {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	g, err := New(w, h)
	if err != nil {
		return nil, err
	}
	for y, row := range rows {
		for x := 0; x < w; x++ {
			switch row[x] {
			case SymbolEmpty, ' ':
			case SymbolObstacle:
				g.roles[g.index(x, y)] = Obstacle
			case SymbolStart:
				if !g.start.IsNone() {
					return nil, fmt.Errorf("%w: second start at (%d,%d)", ErrDuplicateEndpoint, x, y)
				}
				g.SetStart(x, y)
			case SymbolGoal:
				if !g.goal.IsNone() {
					return nil, fmt.Errorf("%w: second goal at (%d,%d)", ErrDuplicateEndpoint, x, y)
				}
				g.SetGoal(x, y)
			default:
				return nil, fmt.Errorf("%w: %q at (%d,%d)", ErrBadSymbol, row[x], x, y)
			}
		}
	}

	return g, nil
}

// MustParse is like Parse but panics on error. Intended for tests and examples.
func MustParse(rows ...string) *Grid {
	g, err := Parse(rows...)
	if err != nil {
		panic(err)
	}
	return g
}

// ParseLayout decodes a YAML Layout document and builds its board.
func ParseLayout(data []byte) (*Grid, error) {
	var l Layout
	if err := yaml.Unmarshal(data, &l); err != nil {
		return nil, fmt.Errorf("grid: decode layout: %w", err)
	}
	return l.Build()
}

// LoadLayout reads and parses a YAML layout file.
func LoadLayout(path string) (*Grid, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("grid: read layout %q: %w", path, err)
	}
	return ParseLayout(data)
}

// Build validates l and constructs its board.
func (l Layout) Build() (*Grid, error) {
	var (
		g   *Grid
		err error
	)
	if len(l.Rows) > 0 {
		g, err = Parse(l.Rows...)
	} else {
		g, err = New(l.Width, l.Height)
	}
	if err != nil {
		return nil, err
	}

	for _, o := range l.Obstacles {
		p, err := layoutPoint(g, o)
		if err != nil {
			return nil, fmt.Errorf("obstacle: %w", err)
		}
		g.SetCellRole(p.X, p.Y, Obstacle)
	}
	if l.Start != nil {
		p, err := layoutPoint(g, l.Start)
		if err != nil {
			return nil, fmt.Errorf("start: %w", err)
		}
		if !g.IsWalkable(p.X, p.Y) {
			return nil, fmt.Errorf("%w: start %s", ErrEndpointBlocked, p)
		}
		g.SetStart(p.X, p.Y)
	}
	if l.Goal != nil {
		p, err := layoutPoint(g, l.Goal)
		if err != nil {
			return nil, fmt.Errorf("goal: %w", err)
		}
		if !g.IsWalkable(p.X, p.Y) {
			return nil, fmt.Errorf("%w: goal %s", ErrEndpointBlocked, p)
		}
		g.SetGoal(p.X, p.Y)
	}

	return g, nil
}

func layoutPoint(g *Grid, xy []int) (Point, error) {
	if len(xy) != 2 {
		return None, fmt.Errorf("%w: want [x, y], got %v", ErrOutOfBounds, xy)
	}
	p := Point{X: xy[0], Y: xy[1]}
	if !g.Contains(p) {
		return None, fmt.Errorf("%w: %s on %dx%d board", ErrOutOfBounds, p, g.Width, g.Height)
	}
	return p, nil
}

// Layout exports the persistent roles of g as an ASCII Layout.
func (g *Grid) Layout() Layout {
	rows := make([]string, g.Height)
	var b strings.Builder
	for y := 0; y < g.Height; y++ {
		b.Reset()
		for x := 0; x < g.Width; x++ {
			b.WriteByte(typeSymbols[g.roles[g.index(x, y)]])
		}
		rows[y] = b.String()
	}
	return Layout{Rows: rows}
}

// MarshalLayout encodes the persistent roles of g as a YAML document.
func (g *Grid) MarshalLayout() ([]byte, error) {
	return yaml.Marshal(g.Layout())
}

// Rows renders the display state of g as ASCII, marks included.
func (g *Grid) Rows() []string {
	rows := make([]string, g.Height)
	var b strings.Builder
	for y := 0; y < g.Height; y++ {
		b.Reset()
		for x := 0; x < g.Width; x++ {
			b.WriteByte(typeSymbols[g.Type(x, y)])
		}
		rows[y] = b.String()
	}
	return rows
}

// String renders the display state of g as newline-separated ASCII rows.
func (g *Grid) String() string {
	return strings.Join(g.Rows(), "\n")
}
