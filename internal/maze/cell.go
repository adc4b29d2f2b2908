package maze

import "math/bits"

// Walls is a bit set of present walls, one bit per Direction.
type Walls uint8

// AllWalls has every wall present.
const AllWalls Walls = 1<<North | 1<<South | 1<<East | 1<<West

// Has reports whether the wall in direction d is present.
func (w Walls) Has(d Direction) bool {
	return w&(1<<d) != 0
}

// Count returns the number of walls present.
func (w Walls) Count() int {
	return bits.OnesCount8(uint8(w & AllWalls))
}

// Cell is a single maze cell.
// Cells are owned by their Grid and only changed by generation or decoding.
type Cell struct {
	visited bool
	walls   Walls
}

func newCell() Cell {
	return Cell{walls: AllWalls}
}

// Visited reports whether generation has reached this cell.
func (c *Cell) Visited() bool {
	return c.visited
}

// HasWall reports whether the wall in direction d is still standing.
func (c *Cell) HasWall(d Direction) bool {
	return c.walls.Has(d)
}

// Walls returns the set of walls still standing.
func (c *Cell) Walls() Walls {
	return c.walls
}

// Openings returns the number of cleared walls.
func (c *Cell) Openings() int {
	return 4 - c.walls.Count()
}

func (c *Cell) visit() {
	c.visited = true
}

func (c *Cell) clear(d Direction) {
	c.walls &^= 1 << d
}
