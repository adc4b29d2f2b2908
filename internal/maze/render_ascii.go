package maze

import "strings"

// String returns a plain-text picture of the walls, used for debugging and
// text output. North is up, so rows are written from z = D-1 down to 0.
//
// Format:
//
//	+---+---+
//	|       |
//	+   +---+
//	|   |   |
//	+---+---+
func (g *Grid) String() string {
	var sb strings.Builder

	// Top boundary from the north walls of the last row
	sb.WriteByte('+')
	for x := 0; x < g.width; x++ {
		if g.cell(C(x, g.depth-1)).HasWall(North) {
			sb.WriteString("---+")
		} else {
			sb.WriteString("   +")
		}
	}
	sb.WriteByte('\n')

	for z := g.depth - 1; z >= 0; z-- {
		// Cell row
		if g.cell(C(0, z)).HasWall(West) {
			sb.WriteByte('|')
		} else {
			sb.WriteByte(' ')
		}
		for x := 0; x < g.width; x++ {
			sb.WriteString("   ")
			if g.cell(C(x, z)).HasWall(East) {
				sb.WriteByte('|')
			} else {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')

		// Wall row below it
		sb.WriteByte('+')
		for x := 0; x < g.width; x++ {
			if g.cell(C(x, z)).HasWall(South) {
				sb.WriteString("---+")
			} else {
				sb.WriteString("   +")
			}
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

// TextWidth returns the number of columns String uses per line.
func (g *Grid) TextWidth() int {
	return 4*g.width + 1
}
