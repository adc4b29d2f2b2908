package maze

import "fmt"

// Coord is a logical grid coordinate.
// X grows to the east, Z grows to the north (front).
type Coord struct {
	X int
	Z int
}

// C is a convenience constructor for Coord.
func C(x, z int) Coord {
	return Coord{X: x, Z: z}
}

// String returns a string representation of the coordinate.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Z)
}

// Step returns the coordinate one cell away in the given direction.
func (c Coord) Step(d Direction) Coord {
	dx, dz := d.Delta()
	return Coord{X: c.X + dx, Z: c.Z + dz}
}

// Direction names one of the four walls of a cell.
type Direction uint8

const (
	North Direction = iota // front, +z
	South                  // back, -z
	East                   // right, +x
	West                   // left, -x
)

// Directions lists the directions in neighbor discovery order.
// The order is fixed; random selection happens downstream.
var Directions = [4]Direction{East, West, North, South}

// Delta returns the coordinate offset for one step in this direction.
func (d Direction) Delta() (dx, dz int) {
	switch d {
	case North:
		return 0, 1
	case South:
		return 0, -1
	case East:
		return 1, 0
	case West:
		return -1, 0
	}
	return 0, 0
}

// Opposite returns the direction facing back.
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	default:
		return East
	}
}

// String returns the lower-case direction name.
func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case South:
		return "south"
	case East:
		return "east"
	case West:
		return "west"
	}
	return fmt.Sprintf("direction(%d)", uint8(d))
}

// DirectionBetween returns the direction leading from one cell to an
// orthogonally adjacent one.
func DirectionBetween(from, to Coord) (Direction, error) {
	dx := to.X - from.X
	dz := to.Z - from.Z

	switch {
	case dx == 1 && dz == 0:
		return East, nil
	case dx == -1 && dz == 0:
		return West, nil
	case dx == 0 && dz == 1:
		return North, nil
	case dx == 0 && dz == -1:
		return South, nil
	}
	return 0, fmt.Errorf("%w: %v -> %v", ErrInvalidAdjacency, from, to)
}
