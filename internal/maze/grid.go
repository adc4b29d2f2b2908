// Package maze generates perfect mazes over a rectangular grid of cells
// using randomized recursive backtracking.
//
// The package holds no rendering state. A Grid exposes a visited flag and
// four wall flags per cell; callers decide how to display them.
package maze

import (
	"fmt"
	"iter"
)

// MaxDimension caps width and depth to keep allocations bounded.
const MaxDimension = 4096

// Grid is a W x D rectangle of cells addressed by (x, z).
// Cells are stored in row-major order: index = z*W + x.
type Grid struct {
	width int
	depth int
	cells []Cell
}

// New creates a grid with every wall closed and no cell visited.
func New(width, depth int) (*Grid, error) {
	if width <= 0 || depth <= 0 || width > MaxDimension || depth > MaxDimension {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimension, width, depth)
	}

	cells := make([]Cell, width*depth)
	for i := range cells {
		cells[i] = newCell()
	}

	return &Grid{
		width: width,
		depth: depth,
		cells: cells,
	}, nil
}

// Width returns the number of columns (x extent).
func (g *Grid) Width() int {
	return g.width
}

// Depth returns the number of rows (z extent).
func (g *Grid) Depth() int {
	return g.depth
}

// Size returns the total number of cells.
func (g *Grid) Size() int {
	return len(g.cells)
}

// InBounds reports whether (x, z) lies inside the grid.
func (g *Grid) InBounds(x, z int) bool {
	return x >= 0 && x < g.width && z >= 0 && z < g.depth
}

func (g *Grid) index(c Coord) int {
	return c.Z*g.width + c.X
}

// cell returns the cell at c without bounds checking.
func (g *Grid) cell(c Coord) *Cell {
	return &g.cells[g.index(c)]
}

// CellAt returns the cell at (x, z).
func (g *Grid) CellAt(x, z int) (*Cell, error) {
	if !g.InBounds(x, z) {
		return nil, fmt.Errorf("%w: (%d,%d) outside %dx%d", ErrOutOfBounds, x, z, g.width, g.depth)
	}
	return g.cell(C(x, z)), nil
}

// NeighborsOf yields the in-bounds orthogonal neighbors of (x, z) in the
// order east, west, north, south. The sequence is recomputed on every range.
func (g *Grid) NeighborsOf(x, z int) iter.Seq[Coord] {
	return func(yield func(Coord) bool) {
		from := C(x, z)
		for _, d := range Directions {
			n := from.Step(d)
			if !g.InBounds(n.X, n.Z) {
				continue
			}
			if !yield(n) {
				return
			}
		}
	}
}

// unvisitedNeighbors appends the unvisited neighbors of c to buf.
func (g *Grid) unvisitedNeighbors(c Coord, buf []Coord) []Coord {
	for n := range g.NeighborsOf(c.X, c.Z) {
		if !g.cell(n).visited {
			buf = append(buf, n)
		}
	}
	return buf
}

// clearWalls removes the wall pair shared by prev and cur and returns the
// direction leading from prev to cur. Both sides change together.
func (g *Grid) clearWalls(prev, cur Coord) (Direction, error) {
	if !g.InBounds(prev.X, prev.Z) || !g.InBounds(cur.X, cur.Z) {
		return 0, fmt.Errorf("%w: clearing %v -> %v", ErrOutOfBounds, prev, cur)
	}

	d, err := DirectionBetween(prev, cur)
	if err != nil {
		return 0, err
	}

	g.cell(prev).clear(d)
	g.cell(cur).clear(d.Opposite())
	return d, nil
}

// Coords yields every coordinate, row by row starting at z = 0.
func (g *Grid) Coords() iter.Seq[Coord] {
	return func(yield func(Coord) bool) {
		for z := 0; z < g.depth; z++ {
			for x := 0; x < g.width; x++ {
				if !yield(C(x, z)) {
					return
				}
			}
		}
	}
}

// VisitedCount returns how many cells have been visited.
func (g *Grid) VisitedCount() int {
	count := 0
	for i := range g.cells {
		if g.cells[i].visited {
			count++
		}
	}
	return count
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([]Cell, len(g.cells))
	copy(cells, g.cells)
	return &Grid{
		width: g.width,
		depth: g.depth,
		cells: cells,
	}
}

// Equal returns true if two grids have the same dimensions and cell state.
func (g *Grid) Equal(other *Grid) bool {
	if g.width != other.width || g.depth != other.depth {
		return false
	}
	for i, cell := range g.cells {
		if cell != other.cells[i] {
			return false
		}
	}
	return true
}
