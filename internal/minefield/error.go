package minefield

import "errors"

var (
	// mine count does not fit the grid, or a dimension is not positive
	ErrInvalidConfiguration = errors.New("invalid minefield configuration")
	// coordinate outside the grid
	ErrIndexOutOfBounds = errors.New("cell index out of bounds")
)
