package grid

import (
	"fmt"
	"strings"
)

// New constructs a Grid from a non-empty, rectangular 2D slice of costs,
// indexed values[y][x]. The input is copied, so later mutation of values
// does not affect the Grid.
//
// Returns ErrEmptyGrid if values has no rows or no columns,
// ErrNonRectangular if any row length differs, and ErrNegativeCost
// (wrapped with the offending coordinate) for a negative cell.
// Complexity: O(W×H) time and memory.
func New(values [][]int) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}

	g := &Grid{
		width:  w,
		height: h,
		cells:  make([]int, 0, w*h),
	}
	g.minCost, g.maxCost = values[0][0], values[0][0]
	for y, row := range values {
		for x, c := range row {
			if c < 0 {
				return nil, fmt.Errorf("%w: cell (%d,%d) = %d", ErrNegativeCost, x, y, c)
			}
			g.minCost = min(g.minCost, c)
			g.maxCost = max(g.maxCost, c)
			g.cells = append(g.cells, c)
		}
	}

	return g, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Cost returns the cost of entering (x,y). The boolean is false when the
// coordinate is out of bounds, in which case the cell is impassable.
// Complexity: O(1).
func (g *Grid) Cost(x, y int) (int, bool) {
	if !g.InBounds(x, y) {
		return 0, false
	}
	return g.cells[y*g.width+x], true
}

// CostAt is Cost for a Point.
func (g *Grid) CostAt(p Point) (int, bool) {
	return g.Cost(p.X, p.Y)
}

// Index returns the row-major index of (x,y). The result is meaningful only
// for in-bounds coordinates.
func (g *Grid) Index(x, y int) int {
	return y*g.width + x
}

// Coordinate converts a row-major index back to a Point.
func (g *Grid) Coordinate(idx int) Point {
	return Point{X: idx % g.width, Y: idx / g.width}
}

// MinCost returns the smallest cell cost in the grid.
func (g *Grid) MinCost() int { return g.minCost }

// MaxCost returns the largest cell cost in the grid.
func (g *Grid) MaxCost() int { return g.maxCost }

// Start returns the conventional entry point, the top-left corner.
func (g *Grid) Start() Point { return Point{} }

// Exit returns the conventional exit point, the bottom-right corner.
func (g *Grid) Exit() Point { return Point{X: g.width - 1, Y: g.height - 1} }

// String renders the grid back into digit rows. Costs above 9 are written
// in full, so the output only round-trips through Parse for digit grids.
func (g *Grid) String() string {
	var sb strings.Builder
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			fmt.Fprint(&sb, g.cells[y*g.width+x])
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
