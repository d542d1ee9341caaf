package config

import "fmt"

const defaultMaxBoardCells = 1 << 16

// Limits bounds what clients may ask the server to allocate.
type Limits struct {
	MaxCells int
}

func NewLimits() (*Limits, error) {
	maxCells, err := lookupInt("MAX_BOARD_CELLS", defaultMaxBoardCells)
	if err != nil {
		return nil, err
	}
	if maxCells <= 0 {
		return nil, fmt.Errorf("MAX_BOARD_CELLS must be positive, got %d", maxCells)
	}
	return &Limits{MaxCells: maxCells}, nil
}
