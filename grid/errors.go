package grid

import "errors"

var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrNegativeCost indicates a cell with a cost below zero.
	ErrNegativeCost = errors.New("grid: cell cost must be non-negative")
	// ErrInvalidCell indicates a character that is not a decimal digit.
	ErrInvalidCell = errors.New("grid: cell is not a decimal digit")
)
