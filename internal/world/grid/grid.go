// Package grid turns a tile map of sight-blocking cells into wall segments.
// Tile (x, y) covers world X in [x*size, (x+1)*size] and world Z in
// [y*size, (y+1)*size].
package grid

import (
	"fmt"
	"strings"

	"chosenoffset.com/sightcone/internal/core/geom"
)

// Coord represents a tile coordinate
type Coord struct {
	X, Y int
}

// EdgeType names which side of a tile a segment came from
type EdgeType string

const (
	EdgeTop    EdgeType = "top"
	EdgeRight  EdgeType = "right"
	EdgeBottom EdgeType = "bottom"
	EdgeLeft   EdgeType = "left"
)

// Segment represents an exposed wall edge
type Segment struct {
	A, B         geom.Vec3
	EdgeType     EdgeType
	TilesCovered []Coord // All tiles this segment covers (more than one once merged)
}

// Grid is a rectangular map of cells that either block sight or don't
type Grid struct {
	Width, Height int
	TileSize      float64
	Origin        geom.Vec3 // World position of tile (0,0)'s corner
	cells         []bool
}

// New creates an empty grid
func New(width, height int, tileSize float64) *Grid {
	return &Grid{
		Width:    width,
		Height:   height,
		TileSize: tileSize,
		cells:    make([]bool, width*height),
	}
}

// Parse builds a grid from rows of text where '#' blocks sight.
// All rows must have the same width.
func Parse(rows []string, tileSize float64) (*Grid, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("grid has no rows")
	}
	if tileSize <= 0 {
		return nil, fmt.Errorf("grid tile size must be positive, got %v", tileSize)
	}

	width := len(rows[0])
	g := New(width, len(rows), tileSize)
	for y, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("grid row %d width (%d) doesn't match width (%d)", y, len(row), width)
		}
		for x, c := range row {
			g.Set(x, y, c == '#')
		}
	}
	return g, nil
}

// Set marks a cell as blocking or clear. Out-of-range cells are ignored.
func (g *Grid) Set(x, y int, blocks bool) {
	if !g.inBounds(x, y) {
		return
	}
	g.cells[y*g.Width+x] = blocks
}

// BlocksSight reports whether a cell blocks sight. Cells outside the grid don't.
func (g *Grid) BlocksSight(x, y int) bool {
	if !g.inBounds(x, y) {
		return false
	}
	return g.cells[y*g.Width+x]
}

func (g *Grid) inBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// TileCenter returns the world position at the middle of a tile
func (g *Grid) TileCenter(x, y int) geom.Vec3 {
	return g.Origin.Add(geom.V((float64(x)+0.5)*g.TileSize, (float64(y)+0.5)*g.TileSize))
}

// String renders the grid back into rows
func (g *Grid) String() string {
	var sb strings.Builder
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if g.BlocksSight(x, y) {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
