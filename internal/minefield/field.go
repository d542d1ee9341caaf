package minefield

import (
	"fmt"
	"strings"
)

// Minefield owns the grid of one session. It is not safe for concurrent
// use; callers serialize access.
type Minefield struct {
	params Params
	cells  []cell
}

func newMinefield(p Params) *Minefield {
	cells := make([]cell, p.Area())
	for i := range cells {
		cells[i].Hidden = true
	}
	return &Minefield{params: p, cells: cells}
}

func (m *Minefield) index(row, col int) int {
	return row*m.params.Width + col
}

func (m *Minefield) at(row, col int) (*cell, error) {
	if !m.params.InBounds(row, col) {
		return nil, fmt.Errorf(
			"%w: (%d,%d) on %dx%d grid",
			ErrIndexOutOfBounds, row, col, m.params.Width, m.params.Height,
		)
	}
	return &m.cells[m.index(row, col)], nil
}

func (m *Minefield) Params() Params { return m.params }
func (m *Minefield) Width() int     { return m.params.Width }
func (m *Minefield) Height() int    { return m.params.Height }
func (m *Minefield) MineCount() int { return m.params.MineCount }

// RemainingMines is the counter readout. It is the configured mine count
// and does not change as flags are placed.
func (m *Minefield) RemainingMines() int {
	return m.params.MineCount
}

func (m *Minefield) Content(row, col int) (CellContent, error) {
	c, err := m.at(row, col)
	if err != nil {
		return 0, err
	}
	return c.Content, nil
}

func (m *Minefield) Hidden(row, col int) (bool, error) {
	c, err := m.at(row, col)
	if err != nil {
		return false, err
	}
	return c.Hidden, nil
}

func (m *Minefield) Flagged(row, col int) (bool, error) {
	c, err := m.at(row, col)
	if err != nil {
		return false, err
	}
	return c.Flagged, nil
}

// Reveal uncovers a single cell. Flags and mines do not block it and
// neighbours are left alone.
func (m *Minefield) Reveal(row, col int) error {
	c, err := m.at(row, col)
	if err != nil {
		return err
	}
	c.Hidden = false
	return nil
}

func (m *Minefield) ToggleFlag(row, col int) error {
	c, err := m.at(row, col)
	if err != nil {
		return err
	}
	c.Flagged = !c.Flagged
	return nil
}

// DisplayState resolves a cell for drawing: a flag wins over everything,
// then a hidden cell, then the content itself.
func (m *Minefield) DisplayState(row, col int) (DisplayState, error) {
	c, err := m.at(row, col)
	if err != nil {
		return DisplayState{}, err
	}
	return c.display(), nil
}

func (c cell) display() DisplayState {
	switch {
	case c.Flagged:
		return FlagState
	case c.Hidden:
		return HiddenState
	default:
		return Shown(c.Content)
	}
}

// Each visits every cell in row-major order.
func (m *Minefield) Each(fn func(row, col int, s DisplayState)) {
	for i, c := range m.cells {
		fn(i/m.params.Width, i%m.params.Width, c.display())
	}
}

// Mines lists mine coordinates in row-major order.
func (m *Minefield) Mines() []Coord {
	res := make([]Coord, 0, m.params.MineCount)
	for i, c := range m.cells {
		if c.Content == Mine {
			res = append(res, Coord{Row: i / m.params.Width, Col: i % m.params.Width})
		}
	}
	return res
}

func (m *Minefield) FlagCount() (n int) {
	for _, c := range m.cells {
		if c.Flagged {
			n++
		}
	}
	return
}

func (m *Minefield) HiddenCount() (n int) {
	for _, c := range m.cells {
		if c.Hidden {
			n++
		}
	}
	return
}

// String renders what a player sees.
func (m *Minefield) String() string {
	return m.render(func(c cell) string { return c.display().String() })
}

// Dump renders the contents of every cell regardless of hidden or flag
// state.
func (m *Minefield) Dump() string {
	return m.render(func(c cell) string { return Shown(c.Content).String() })
}

func (m *Minefield) render(glyph func(c cell) string) string {
	var b strings.Builder
	for row := range m.params.Height {
		for col := range m.params.Width {
			if col > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(glyph(m.cells[m.index(row, col)]))
		}
		b.WriteByte('\n')
	}
	return b.String()
}
