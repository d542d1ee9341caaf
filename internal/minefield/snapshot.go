package minefield

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"math"
)

type snapshot struct {
	Params   Params
	Contents []CellContent
	Hidden   []bool
	Flagged  []bool
}

func (m *Minefield) Bytes() ([]byte, error) {
	s := snapshot{
		Params:   m.params,
		Contents: make([]CellContent, len(m.cells)),
		Hidden:   make([]bool, len(m.cells)),
		Flagged:  make([]bool, len(m.cells)),
	}
	for i, c := range m.cells {
		s.Contents[i], s.Hidden[i], s.Flagged[i] = c.Content, c.Hidden, c.Flagged
	}
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(s); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decode restores a minefield written by [Minefield.Bytes]. The mine
// count and neighbour counts are checked against the stored contents.
func Decode(buf []byte) (*Minefield, error) {
	return DecodeLimited(buf, math.MaxInt)
}

// DecodeLimited is Decode for snapshots of at most maxCells cells.
func DecodeLimited(buf []byte, maxCells int) (*Minefield, error) {
	var s snapshot
	if err := gob.NewDecoder(bytes.NewBuffer(buf)).Decode(&s); err != nil {
		return nil, err
	}
	if err := s.Params.ValidateArea(maxCells); err != nil {
		return nil, err
	}
	n := s.Params.Area()
	if len(s.Contents) != n || len(s.Hidden) != n || len(s.Flagged) != n {
		return nil, fmt.Errorf("%w: snapshot holds %d cells, want %d",
			ErrInvalidConfiguration, len(s.Contents), n)
	}

	m := newMinefield(s.Params)
	mines := 0
	for i := range m.cells {
		m.cells[i] = cell{Content: s.Contents[i], Hidden: s.Hidden[i], Flagged: s.Flagged[i]}
		if s.Contents[i] == Mine {
			mines++
		}
	}
	if mines != s.Params.MineCount {
		return nil, fmt.Errorf("%w: snapshot holds %d mines, want %d",
			ErrInvalidConfiguration, mines, s.Params.MineCount)
	}
	for i, c := range m.cells {
		if c.Content == Mine {
			continue
		}
		row, col := i/s.Params.Width, i%s.Params.Width
		if want := m.countNeighbourMines(row, col); c.Content.Count() != want {
			return nil, fmt.Errorf("%w: cell (%d,%d) counts %d mines, want %d",
				ErrInvalidConfiguration, row, col, c.Content.Count(), want)
		}
	}
	return m, nil
}
