package maze

import "errors"

var (
	// ErrEmptyMaze indicates the wall matrices describe no cells.
	ErrEmptyMaze = errors.New("maze: maze must have at least one row and one column")
	// ErrNonRectangular indicates a wall matrix with rows of differing lengths.
	ErrNonRectangular = errors.New("maze: all rows of a wall matrix must have the same length")
	// ErrDimensionMismatch indicates the two wall matrices disagree on the maze size.
	ErrDimensionMismatch = errors.New("maze: horizontal and vertical walls disagree on dimensions")
	// ErrEndpointOutOfRange indicates a source or destination outside the maze.
	ErrEndpointOutOfRange = errors.New("maze: endpoint out of range")
	// ErrUnknownSample indicates a bundled maze name that does not exist.
	ErrUnknownSample = errors.New("maze: unknown sample")
)
