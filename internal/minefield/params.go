package minefield

import (
	"fmt"
	"math"
	"strings"
)

type Params struct {
	Width     int `json:"width"`
	Height    int `json:"height"`
	MineCount int `json:"mine_count"`
}

func (p Params) Unpack() (w int, h int, mc int) {
	return p.Width, p.Height, p.MineCount
}

func (p Params) Area() int {
	return p.Width * p.Height
}

func (p Params) Validate() error {
	if p.Width <= 0 || p.Height <= 0 {
		return fmt.Errorf(
			"%w: dimensions must be positive (width = %d, height = %d)",
			ErrInvalidConfiguration, p.Width, p.Height,
		)
	}
	if p.Width > math.MaxInt/p.Height {
		return fmt.Errorf(
			"%w: board of %d x %d cells overflows",
			ErrInvalidConfiguration, p.Width, p.Height,
		)
	}
	if p.MineCount < 0 || p.MineCount >= p.Area() {
		return fmt.Errorf(
			"%w: mine count %d must be in [0, %d)",
			ErrInvalidConfiguration, p.MineCount, p.Area(),
		)
	}
	return nil
}

// ValidateArea is Validate with an upper bound on the number of cells.
func (p Params) ValidateArea(maxCells int) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if p.Area() > maxCells {
		return fmt.Errorf(
			"%w: board of %d cells exceeds the limit of %d",
			ErrInvalidConfiguration, p.Area(), maxCells,
		)
	}
	return nil
}

// Seed renders params as "W:H:M".
func (p Params) Seed() string {
	return fmt.Sprintf("%d:%d:%d", p.Width, p.Height, p.MineCount)
}

func ParseSeed(seed string) (*Params, error) {
	p := &Params{}
	sseed := strings.ReplaceAll(seed, ":", " ")
	n, err := fmt.Sscanf(sseed, "%d %d %d", &p.Width, &p.Height, &p.MineCount)
	if n != 3 || err != nil {
		return nil, fmt.Errorf(
			`invalid params seed (sseed = "%s", n = %d, err = %w)`,
			sseed, n, err,
		)
	}
	return p, nil
}

func (p Params) InBounds(row, col int) bool {
	return 0 <= row && row < p.Height && 0 <= col && col < p.Width
}
