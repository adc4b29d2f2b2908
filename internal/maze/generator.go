package maze

import (
	"fmt"
	"io"
	"iter"
	"math/rand/v2"

	"github.com/charmbracelet/log"
)

// Step describes one cell visitation during generation.
type Step struct {
	Cell    Coord     // Cell just visited
	From    Coord     // Predecessor; zero value when HasFrom is false
	HasFrom bool      // False only for the start cell
	Opened  Direction // Wall cleared on From, facing Cell
	Depth   int       // Distance from the start along the traversal path
	Visited int       // Cells visited so far, including this one
}

// Generator carves perfect mazes with randomized recursive backtracking.
// A Generator is not safe for concurrent use.
type Generator struct {
	rng    *rand.Rand
	start  Coord
	logger *log.Logger
}

// Option configures a Generator.
type Option func(*Generator)

// WithSeed makes generation reproducible: the same seed, grid size and start
// always produce the same walls.
func WithSeed(seed uint64) Option {
	return func(gen *Generator) {
		gen.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	}
}

// WithSource draws neighbor choices from src.
func WithSource(src rand.Source) Option {
	return func(gen *Generator) {
		gen.rng = rand.New(src)
	}
}

// WithStart sets the first cell visited. Defaults to (0,0).
func WithStart(start Coord) Option {
	return func(gen *Generator) {
		gen.start = start
	}
}

// WithLogger sets the logger used for traversal diagnostics.
func WithLogger(logger *log.Logger) Option {
	return func(gen *Generator) {
		if logger != nil {
			gen.logger = logger
		}
	}
}

// NewGenerator creates a generator. Without WithSeed or WithSource it draws
// from an unseeded source.
func NewGenerator(opts ...Option) *Generator {
	gen := &Generator{
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(gen)
	}
	if gen.rng == nil {
		gen.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return gen
}

// Generate carves g in place and returns once every cell is visited.
func (gen *Generator) Generate(g *Grid) error {
	for _, err := range gen.Steps(g) {
		if err != nil {
			return err
		}
	}
	return nil
}

// Steps returns a sequence that carves g one cell per iteration.
// Breaking out of the range stops generation and leaves g partially carved.
// A failure is yielded once as a non-nil error and ends the sequence.
func (gen *Generator) Steps(g *Grid) iter.Seq2[Step, error] {
	return func(yield func(Step, error) bool) {
		if err := gen.check(g); err != nil {
			yield(Step{}, err)
			return
		}

		g.cell(gen.start).visit()
		visited := 1
		gen.logger.Debug("visit", "x", gen.start.X, "z", gen.start.Z, "depth", 0)
		if !yield(Step{Cell: gen.start, Visited: visited}, nil) {
			return
		}

		// The stack holds the current traversal path. Its top is the cell
		// whose loop is running; popping it is the backtrack.
		stack := make([]Coord, 1, g.Size())
		stack[0] = gen.start
		candidates := make([]Coord, 0, len(Directions))

		for len(stack) > 0 {
			current := stack[len(stack)-1]

			// Re-query on every pass: branches explored since the last pass
			// may have visited neighbors that were open before.
			candidates = g.unvisitedNeighbors(current, candidates[:0])
			if len(candidates) == 0 {
				stack = stack[:len(stack)-1]
				continue
			}

			next := candidates[gen.rng.IntN(len(candidates))]
			g.cell(next).visit()
			opened, err := g.clearWalls(current, next)
			if err != nil {
				yield(Step{}, fmt.Errorf("carving %v -> %v: %w", current, next, err))
				return
			}

			stack = append(stack, next)
			visited++

			step := Step{
				Cell:    next,
				From:    current,
				HasFrom: true,
				Opened:  opened,
				Depth:   len(stack) - 1,
				Visited: visited,
			}
			gen.logger.Debug("visit", "x", next.X, "z", next.Z, "depth", step.Depth, "opened", opened)
			if !yield(step, nil) {
				return
			}
		}

		gen.logger.Info("maze generated", "width", g.width, "depth", g.depth, "cells", visited)
	}
}

// check verifies that g can be generated from the configured start.
func (gen *Generator) check(g *Grid) error {
	if g == nil {
		return fmt.Errorf("%w: nil grid", ErrInvalidDimension)
	}
	if !g.InBounds(gen.start.X, gen.start.Z) {
		return fmt.Errorf("%w: start %v outside %dx%d", ErrOutOfBounds, gen.start, g.width, g.depth)
	}
	if n := g.VisitedCount(); n > 0 {
		return fmt.Errorf("%w: %d cells already visited", ErrGridNotFresh, n)
	}
	return nil
}

// Generate builds and carves a new width x depth maze.
func Generate(width, depth int, opts ...Option) (*Grid, error) {
	g, err := New(width, depth)
	if err != nil {
		return nil, err
	}
	if err := NewGenerator(opts...).Generate(g); err != nil {
		return nil, err
	}
	return g, nil
}
