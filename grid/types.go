// Package grid defines the coordinate and cost-map types used by the
// crucible search packages.
package grid

import "fmt"

// Point is an integer cell coordinate. X grows to the east, Y to the south.
type Point struct {
	X, Y int
}

// Add returns p displaced by (dx, dy).
func (p Point) Add(dx, dy int) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Manhattan returns |p.X-q.X| + |p.Y-q.Y|.
func (p Point) Manhattan(q Point) int {
	return abs(p.X-q.X) + abs(p.Y-q.Y)
}

// String formats the point as "(x,y)".
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Grid is an immutable rectangular cost map. Every in-bounds coordinate has
// exactly one cost entry; coordinates outside [0,Width)×[0,Height) have none.
//
// cells is stored row-major so that Index(x, y) addresses it directly.
type Grid struct {
	width, height int
	cells         []int
	minCost       int
	maxCost       int
}
