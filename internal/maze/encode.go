package maze

import (
	"encoding/hex"
	"fmt"
)

// visitedBit marks a visited cell in the encoded byte; bits 0-3 hold walls.
const visitedBit = 1 << 4

// Encode packs the grid into a hex string, one byte per cell in row-major
// order. The dimensions are not included.
func (g *Grid) Encode() string {
	buf := make([]byte, len(g.cells))
	for i, cell := range g.cells {
		b := byte(cell.walls)
		if cell.visited {
			b |= visitedBit
		}
		buf[i] = b
	}
	return hex.EncodeToString(buf)
}

// Decode restores a grid produced by Encode.
func Decode(width, depth int, s string) (*Grid, error) {
	g, err := New(width, depth)
	if err != nil {
		return nil, err
	}

	buf, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptEncoding, err)
	}
	if len(buf) != g.Size() {
		return nil, fmt.Errorf("%w: %d cells encoded, want %d", ErrCorruptEncoding, len(buf), g.Size())
	}

	for i, b := range buf {
		if b&^(visitedBit|byte(AllWalls)) != 0 {
			return nil, fmt.Errorf("%w: cell %d has unknown bits %#x", ErrCorruptEncoding, i, b)
		}
		g.cells[i] = Cell{
			visited: b&visitedBit != 0,
			walls:   Walls(b) & AllWalls,
		}
	}
	return g, nil
}

// Snapshot is a structured, serializable view of a grid.
type Snapshot struct {
	Width int            `json:"width" yaml:"width"`
	Depth int            `json:"depth" yaml:"depth"`
	Cells []CellSnapshot `json:"cells" yaml:"cells"`
}

// CellSnapshot holds the state of a single cell. Wall fields are true when
// the wall is present.
type CellSnapshot struct {
	X       int  `json:"x" yaml:"x"`
	Z       int  `json:"z" yaml:"z"`
	Visited bool `json:"visited" yaml:"visited"`
	North   bool `json:"north" yaml:"north"`
	South   bool `json:"south" yaml:"south"`
	East    bool `json:"east" yaml:"east"`
	West    bool `json:"west" yaml:"west"`
}

// Snapshot returns the grid state in row-major order.
func (g *Grid) Snapshot() Snapshot {
	snap := Snapshot{
		Width: g.width,
		Depth: g.depth,
		Cells: make([]CellSnapshot, 0, len(g.cells)),
	}
	for c := range g.Coords() {
		cell := g.cell(c)
		snap.Cells = append(snap.Cells, CellSnapshot{
			X:       c.X,
			Z:       c.Z,
			Visited: cell.visited,
			North:   cell.HasWall(North),
			South:   cell.HasWall(South),
			East:    cell.HasWall(East),
			West:    cell.HasWall(West),
		})
	}
	return snap
}
