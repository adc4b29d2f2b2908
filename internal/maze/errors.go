package maze

import "errors"

var (
	// ErrInvalidDimension is returned when a grid is requested with a
	// non-positive (or oversized) width or depth.
	ErrInvalidDimension = errors.New("maze: invalid dimension")

	// ErrOutOfBounds is returned for coordinates outside the grid.
	ErrOutOfBounds = errors.New("maze: coordinate out of bounds")

	// ErrInvalidAdjacency signals that two cells passed to wall clearing are
	// not orthogonal neighbors. The traversal never produces such a pair, so
	// seeing it means the traversal itself is broken.
	ErrInvalidAdjacency = errors.New("maze: cells are not orthogonally adjacent")

	// ErrGridNotFresh is returned when generation starts on a grid that
	// already has visited cells.
	ErrGridNotFresh = errors.New("maze: grid has already been generated")

	// ErrNotPerfect is wrapped by every ValidationError.
	ErrNotPerfect = errors.New("maze: not a perfect maze")

	// ErrCorruptEncoding is returned by Decode for malformed input.
	ErrCorruptEncoding = errors.New("maze: corrupt encoding")
)
