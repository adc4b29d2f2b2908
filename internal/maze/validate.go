package maze

import (
	"fmt"

	"github.com/spakin/disjoint"
	"github.com/zyedidia/generic/mapset"
)

// Edge is an undirected passage between two adjacent cells.
// A is always the south-west end so each passage has one Edge value.
type Edge struct {
	A Coord
	B Coord
}

func newEdge(a, b Coord) Edge {
	if b.Z < a.Z || (b.Z == a.Z && b.X < a.X) {
		a, b = b, a
	}
	return Edge{A: a, B: b}
}

// ValidationError contains details about a validation failure.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap lets errors.Is match ErrNotPerfect.
func (e ValidationError) Unwrap() error {
	return ErrNotPerfect
}

// Validate checks that g is a perfect maze:
//   - every cell is visited
//   - every opening is shared by both cells and none faces outside the grid
//   - the passages form a spanning tree (W*D-1 edges, no cycle)
func Validate(g *Grid) error {
	// Check 1: coverage
	if n := g.VisitedCount(); n != g.Size() {
		return ValidationError{
			Code:    "UNVISITED_CELL",
			Message: fmt.Sprintf("%d of %d cells visited", n, g.Size()),
		}
	}

	// Check 2: symmetric openings
	edges, err := clearedEdges(g)
	if err != nil {
		return err
	}

	// Check 3: spanning tree
	return validateTree(g, edges)
}

// ClearedEdges returns the set of passages in g.
// Openings that are not mirrored by the neighbor are left out.
func ClearedEdges(g *Grid) mapset.Set[Edge] {
	edges, _ := collectEdges(g)
	return edges
}

func clearedEdges(g *Grid) (mapset.Set[Edge], error) {
	edges, problem := collectEdges(g)
	if problem != nil {
		return edges, *problem
	}
	return edges, nil
}

// collectEdges pairs up openings from both sides of each wall. An edge is
// kept once both cells report it open.
func collectEdges(g *Grid) (mapset.Set[Edge], *ValidationError) {
	edges := mapset.New[Edge]()
	oneSided := mapset.New[Edge]()
	var problem *ValidationError

	for c := range g.Coords() {
		cell := g.cell(c)
		for _, d := range Directions {
			if cell.HasWall(d) {
				continue
			}
			n := c.Step(d)
			if !g.InBounds(n.X, n.Z) {
				if problem == nil {
					problem = &ValidationError{
						Code:    "OPEN_BOUNDARY",
						Message: fmt.Sprintf("cell %v is open to the %s edge of the grid", c, d),
					}
				}
				continue
			}

			e := newEdge(c, n)
			if oneSided.Has(e) {
				oneSided.Remove(e)
				edges.Put(e)
			} else {
				oneSided.Put(e)
			}
		}
	}

	if problem == nil && oneSided.Size() > 0 {
		var sample Edge
		oneSided.Each(func(e Edge) {
			sample = e
		})
		problem = &ValidationError{
			Code:    "ASYMMETRIC_WALL",
			Message: fmt.Sprintf("%d one-sided openings, e.g. %v <-> %v", oneSided.Size(), sample.A, sample.B),
		}
	}

	return edges, problem
}

// validateTree unions every passage and fails on the first one that joins
// cells already connected.
func validateTree(g *Grid, edges mapset.Set[Edge]) error {
	elems := make([]*disjoint.Element, g.Size())
	for i := range elems {
		elems[i] = disjoint.NewElement()
	}

	components := g.Size()
	var cycle *Edge
	edges.Each(func(e Edge) {
		if cycle != nil {
			return
		}
		a := elems[g.index(e.A)]
		b := elems[g.index(e.B)]
		if a.Find() == b.Find() {
			cycle = &e
			return
		}
		disjoint.Union(a, b)
		components--
	})

	if cycle != nil {
		return ValidationError{
			Code:    "CYCLE",
			Message: fmt.Sprintf("passage %v <-> %v closes a loop", cycle.A, cycle.B),
		}
	}
	if components != 1 {
		return ValidationError{
			Code:    "DISCONNECTED",
			Message: fmt.Sprintf("%d components, %d passages for %d cells", components, edges.Size(), g.Size()),
		}
	}
	return nil
}
