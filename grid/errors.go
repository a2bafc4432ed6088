package grid

import "errors"

// Sentinel errors for grid construction and layout parsing. Mutation
// operations never return errors; invalid coordinates are ignored.
var (
	// ErrEmptyGrid indicates a board with no rows or no columns.
	ErrEmptyGrid = errors.New("grid: board must have at least one row and one column")
	// ErrNonRectangular indicates layout rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrOutOfBounds indicates a layout coordinate outside the board.
	ErrOutOfBounds = errors.New("grid: coordinate out of bounds")
	// ErrEndpointBlocked indicates a start or goal placed on an obstacle.
	ErrEndpointBlocked = errors.New("grid: start or goal placed on an obstacle")
	// ErrBadSymbol indicates an unknown character in an ASCII layout.
	ErrBadSymbol = errors.New("grid: unknown layout symbol")
	// ErrDuplicateEndpoint indicates more than one start or goal in a layout.
	ErrDuplicateEndpoint = errors.New("grid: layout declares more than one start or goal")
)
