// Package render draws a grid.Grid for humans: PNG images through
// github.com/fogleman/gg and ANSI-colored terminal text through
// github.com/vyevs/ansi.
//
// Both renderers read only the display type of each cell, so they show
// whatever the last search painted. PNG output additionally strokes the
// path of a search.Result, when given, from cell center to cell center.
package render
