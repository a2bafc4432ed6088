package render

import (
	"errors"
	"image/color"
	"io"

	"github.com/fogleman/gg"

	"github.com/katalvlaran/pathviz/grid"
)

// DefaultScale is the edge length of one cell in pixels.
const DefaultScale = 16

// ErrBadScale indicates a non-positive cell size.
var ErrBadScale = errors.New("render: scale must be positive")

// Palette maps display types to fill colors.
type Palette map[grid.CellType]color.Color

// DefaultPalette follows the usual visualizer colors: dark obstacles, green
// start, red goal, pale visited, amber frontier and yellow path.
var DefaultPalette = Palette{
	grid.Empty:    color.RGBA{R: 255, G: 255, B: 255, A: 255},
	grid.Obstacle: color.RGBA{R: 52, G: 73, B: 94, A: 255},
	grid.Start:    color.RGBA{R: 46, G: 204, B: 113, A: 255},
	grid.Goal:     color.RGBA{R: 231, G: 76, B: 60, A: 255},
	grid.Visited:  color.RGBA{R: 174, G: 214, B: 241, A: 255},
	grid.Path:     color.RGBA{R: 241, G: 196, B: 15, A: 255},
	grid.Frontier: color.RGBA{R: 245, G: 176, B: 65, A: 255},
}

var gridLine = color.RGBA{R: 220, G: 220, B: 220, A: 255}

// Image draws g at scale pixels per cell. path, if non-empty, is stroked
// on top of the cells.
func Image(g *grid.Grid, scale int, path []grid.Point) (*gg.Context, error) {
	if scale <= 0 {
		return nil, ErrBadScale
	}
	dc := gg.NewContext(g.Width*scale, g.Height*scale)
	dc.SetColor(DefaultPalette[grid.Empty])
	dc.Clear()

	s := float64(scale)
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			dc.SetColor(DefaultPalette.color(g.Type(x, y)))
			dc.DrawRectangle(float64(x)*s, float64(y)*s, s, s)
			dc.Fill()
		}
	}

	if scale >= 4 {
		dc.SetColor(gridLine)
		dc.SetLineWidth(1)
		for x := 0; x <= g.Width; x++ {
			dc.DrawLine(float64(x)*s, 0, float64(x)*s, float64(g.Height)*s)
		}
		for y := 0; y <= g.Height; y++ {
			dc.DrawLine(0, float64(y)*s, float64(g.Width)*s, float64(y)*s)
		}
		dc.Stroke()
	}

	if len(path) > 1 {
		dc.SetColor(color.Black)
		dc.SetLineWidth(s / 4)
		dc.MoveTo(center(path[0], s))
		for _, p := range path[1:] {
			dc.LineTo(center(p, s))
		}
		dc.Stroke()
	}

	return dc, nil
}

// PNG encodes g as a PNG image to w.
func PNG(w io.Writer, g *grid.Grid, scale int, path []grid.Point) error {
	dc, err := Image(g, scale, path)
	if err != nil {
		return err
	}
	return dc.EncodePNG(w)
}

// SavePNG writes g as a PNG file.
func SavePNG(filename string, g *grid.Grid, scale int, path []grid.Point) error {
	dc, err := Image(g, scale, path)
	if err != nil {
		return err
	}
	return dc.SavePNG(filename)
}

func (p Palette) color(t grid.CellType) color.Color {
	if c, ok := p[t]; ok {
		return c
	}
	return p[grid.Empty]
}

func center(p grid.Point, s float64) (float64, float64) {
	return float64(p.X)*s + s/2, float64(p.Y)*s + s/2
}
