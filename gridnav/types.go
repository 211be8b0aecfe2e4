package gridnav

import "errors"

var (
	// ErrEmptyGrid indicates the input grid had no rows or no columns.
	ErrEmptyGrid = errors.New("gridnav: grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridnav: all rows must have the same length")
)
