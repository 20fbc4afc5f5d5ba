package world

import (
	"errors"
	"fmt"
)

// Grid is an immutable rectangular tile map.
type Grid struct {
	Width  int
	Height int
	rows   [][]rune
	legend Legend
	startX int
	startY int
}

// Point is an integer tile coordinate.
type Point struct {
	X, Y int
}

// NewGrid builds a grid from rows of tile symbols. A nil legend uses DefaultLegend.
// The rows must be rectangular and contain exactly one start tile.
func NewGrid(rows []string, legend Legend) (*Grid, error) {
	if len(rows) == 0 {
		return nil, errors.New("grid has no rows")
	}
	if legend == nil {
		legend = DefaultLegend()
	}

	g := &Grid{
		Height: len(rows),
		rows:   make([][]rune, len(rows)),
		legend: legend,
	}

	starts := 0
	for y, row := range rows {
		runes := []rune(row)
		if y == 0 {
			g.Width = len(runes)
			if g.Width == 0 {
				return nil, errors.New("grid has empty rows")
			}
		} else if len(runes) != g.Width {
			return nil, fmt.Errorf("grid row %d has width %d, want %d", y, len(runes), g.Width)
		}
		for x, r := range runes {
			if legend.Lookup(r) == TypeStart {
				starts++
				g.startX, g.startY = x, y
			}
		}
		g.rows[y] = runes
	}

	if starts != 1 {
		return nil, fmt.Errorf("grid has %d start tiles, want exactly 1", starts)
	}

	return g, nil
}

// MustNewGrid builds a grid, panicking on error.
func MustNewGrid(rows []string, legend Legend) *Grid {
	g, err := NewGrid(rows, legend)
	if err != nil {
		panic(err)
	}
	return g
}

// InBounds reports whether the tile coordinate lies on the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// Symbol returns the raw symbol at the given tile. Off-grid tiles read as wall.
func (g *Grid) Symbol(x, y int) rune {
	if !g.InBounds(x, y) {
		return SymbolWall
	}
	return g.rows[y][x]
}

// Type returns the classification of the given tile.
func (g *Grid) Type(x, y int) TileType {
	if !g.InBounds(x, y) {
		return TypeWall
	}
	return g.legend.Lookup(g.rows[y][x])
}

// IsWall reports whether the tile blocks movement and sight.
func (g *Grid) IsWall(x, y int) bool {
	return !g.Type(x, y).IsPassable()
}

// Start returns the start tile coordinate.
func (g *Grid) Start() (int, int) {
	return g.startX, g.startY
}

// Find returns every tile of the given type in row-major order.
func (g *Grid) Find(t TileType) []Point {
	var points []Point
	for y, row := range g.rows {
		for x, r := range row {
			if g.legend.Lookup(r) == t {
				points = append(points, Point{X: x, Y: y})
			}
		}
	}
	return points
}

