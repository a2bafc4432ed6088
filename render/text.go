package render

import (
	"strings"

	"github.com/vyevs/ansi"

	"github.com/katalvlaran/pathviz/grid"
)

// colorNames maps display types to ansi color names.
var colorNames = map[grid.CellType]string{
	grid.Empty:    "light gray",
	grid.Obstacle: "purple",
	grid.Start:    "green",
	grid.Goal:     "red",
	grid.Visited:  "cyan",
	grid.Path:     "yellow",
	grid.Frontier: "orange",
}

// Text renders g as the ASCII rows of grid.Grid.Rows, coloring each symbol
// by its display type. The output ends with an ANSI reset.
func Text(g *grid.Grid) string {
	rows := g.Rows()
	var b strings.Builder
	b.Grow(len(rows) * (g.Width*8 + 1))

	for y, row := range rows {
		prev := grid.CellType(-1)
		for x := 0; x < len(row); x++ {
			t := g.Type(x, y)
			if t != prev {
				b.WriteString(ansi.FGColorName(colorNames[t]))
				prev = t
			}
			b.WriteByte(row[x])
		}
		b.WriteByte('\n')
	}
	b.WriteString(ansi.Clear)

	return b.String()
}
