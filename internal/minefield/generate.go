package minefield

import (
	"math/rand/v2"

	"github.com/sirupsen/logrus"
	"github.com/zyedidia/generic/mapset"
)

var Log = logrus.New()

// Source draws uniform integers in [0, n). *rand.Rand satisfies it.
type Source interface {
	IntN(n int) int
}

func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

// Generate places p.MineCount mines uniformly at random and fills in
// neighbour counts. Every cell starts hidden and unflagged.
func Generate(p Params, r Source) (*Minefield, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	width, height, mineCount := p.Unpack()

	mines := mapset.New[Coord]()
	draws := 0
	for mines.Size() < mineCount {
		col := r.IntN(width)
		row := r.IntN(height)
		mines.Put(Coord{Row: row, Col: col})
		draws++
	}

	m := newMinefield(p)
	mines.Each(func(c Coord) {
		m.cells[m.index(c.Row, c.Col)].Content = Mine
	})

	for row := range height {
		for col := range width {
			i := m.index(row, col)
			if m.cells[i].Content == Mine {
				continue
			}
			m.cells[i].Content = Count(m.countNeighbourMines(row, col))
		}
	}

	Log.WithFields(logrus.Fields{
		"params": p.Seed(),
		"draws":  draws,
	}).Debug("generated minefield")

	return m, nil
}

func GenerateSeeded(p Params, seed uint64) (*Minefield, error) {
	return Generate(p, NewRand(seed))
}

func (m *Minefield) countNeighbourMines(row, col int) (n int) {
	m.eachNeighbour(row, col, func(rr, cc int) {
		if m.cells[m.index(rr, cc)].Content == Mine {
			n++
		}
	})
	return
}

// eachNeighbour visits the Moore neighbourhood of (row, col) clipped to
// the grid.
func (m *Minefield) eachNeighbour(row, col int, fn func(row, col int)) {
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			rr, cc := row+dy, col+dx
			if m.params.InBounds(rr, cc) {
				fn(rr, cc)
			}
		}
	}
}
