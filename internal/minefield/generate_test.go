package minefield

import (
	"math"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	// Log.SetLevel(logrus.DebugLevel)
	Log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
	m.Run()
}

// script replays fixed draws in order.
type script struct {
	values []int
	pos    int
}

func (s *script) IntN(n int) int {
	if s.pos >= len(s.values) {
		panic("script exhausted")
	}
	v := s.values[s.pos]
	s.pos++
	if v >= n {
		panic("scripted value out of range")
	}
	return v
}

func contents(t *testing.T, m *Minefield) [][]int {
	t.Helper()
	res := make([][]int, m.Height())
	for row := range m.Height() {
		res[row] = make([]int, m.Width())
		for col := range m.Width() {
			c, err := m.Content(row, col)
			require.NoError(t, err)
			res[row][col] = c.Count()
		}
	}
	return res
}

func TestGenerateRecordedBoard(t *testing.T) {
	// col, row pairs; (3,3) is drawn twice and must not count twice
	r := &script{values: []int{
		0, 0, 7, 0, 2, 1, 5, 2, 3, 3, 3, 3,
		0, 4, 6, 5, 1, 6, 4, 7, 7, 7,
	}}
	m, err := Generate(Params{Width: 8, Height: 8, MineCount: 10}, r)
	require.NoError(t, err)
	assert.Equal(t, 22, r.pos)

	assert.Equal(t, []Coord{
		{0, 0}, {0, 7}, {1, 2}, {2, 5}, {3, 3},
		{4, 0}, {5, 6}, {6, 1}, {7, 4}, {7, 7},
	}, m.Mines())

	const x = -1
	assert.Equal(t, [][]int{
		{x, 2, 1, 1, 0, 0, 1, x},
		{1, 2, x, 1, 1, 1, 2, 1},
		{0, 1, 2, 2, 2, x, 1, 0},
		{1, 1, 1, x, 2, 1, 1, 0},
		{x, 1, 1, 1, 1, 1, 1, 1},
		{2, 2, 1, 0, 0, 1, x, 1},
		{1, x, 1, 1, 1, 2, 2, 2},
		{1, 1, 1, 1, x, 1, 1, x},
	}, contents(t, m))

	assert.Equal(t, 64, m.HiddenCount())
	assert.Equal(t, 0, m.FlagCount())
}

func TestGenerateSeededIsDeterministic(t *testing.T) {
	p := Params{Width: 8, Height: 8, MineCount: 10}
	a, err := GenerateSeeded(p, 42)
	require.NoError(t, err)
	b, err := GenerateSeeded(p, 42)
	require.NoError(t, err)
	assert.Equal(t, a.Mines(), b.Mines())
	assert.Equal(t, a.Dump(), b.Dump())

	// seeds handed out by the server must keep producing the same board
	assert.Equal(t, []Coord{
		{0, 2}, {1, 0}, {1, 3}, {1, 7}, {2, 6},
		{3, 0}, {3, 6}, {6, 1}, {7, 2}, {7, 7},
	}, a.Mines())
}

func naiveNeighbourMines(mines map[Coord]bool, row, col int) (n int) {
	for _, d := range [][2]int{
		{0, 1}, {0, -1}, {1, 0}, {-1, 0},
		{1, 1}, {1, -1}, {-1, 1}, {-1, -1},
	} {
		if mines[Coord{row + d[0], col + d[1]}] {
			n++
		}
	}
	return
}

func TestGenerateInvariants(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		params Params
	}{
		{name: "8x8(10)", params: Params{Width: 8, Height: 8, MineCount: 10}},
		{name: "10x10(10)", params: Params{Width: 10, Height: 10, MineCount: 10}},
		{name: "16x16(40)", params: Params{Width: 16, Height: 16, MineCount: 40}},
		{name: "30x16(99)", params: Params{Width: 30, Height: 16, MineCount: 99}},
		{name: "3x1(2)", params: Params{Width: 3, Height: 1, MineCount: 2}},
		{name: "5x5(24)", params: Params{Width: 5, Height: 5, MineCount: 24}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			r := NewRand(1)
			for range 20 {
				m, err := Generate(test.params, r)
				require.NoError(t, err)

				mines := make(map[Coord]bool)
				for _, c := range m.Mines() {
					mines[c] = true
				}
				require.Len(t, mines, test.params.MineCount)

				for row := range m.Height() {
					for col := range m.Width() {
						c, err := m.Content(row, col)
						require.NoError(t, err)
						assert.Equal(t, mines[Coord{row, col}], c.IsMine())
						if !c.IsMine() {
							assert.Equal(t, naiveNeighbourMines(mines, row, col), c.Count(),
								"count at (%d,%d)", row, col)
						}
						hidden, _ := m.Hidden(row, col)
						flagged, _ := m.Flagged(row, col)
						assert.True(t, hidden)
						assert.False(t, flagged)
					}
				}
			}
		})
	}
}

func TestGenerateNoMines(t *testing.T) {
	m, err := GenerateSeeded(Params{Width: 2, Height: 2, MineCount: 0}, 7)
	require.NoError(t, err)
	assert.Empty(t, m.Mines())
	assert.Equal(t, [][]int{{0, 0}, {0, 0}}, contents(t, m))
	assert.Equal(t, ". .\n. .\n", m.Dump())
}

func TestGenerateInvalidConfiguration(t *testing.T) {
	tests := []Params{
		{Width: 2, Height: 2, MineCount: 4},
		{Width: 2, Height: 2, MineCount: 5},
		{Width: 2, Height: 2, MineCount: -1},
		{Width: 0, Height: 2, MineCount: 0},
		{Width: 3, Height: -1, MineCount: 0},
		// width*height wraps around to 4
		{Width: math.MaxInt/2 + 2, Height: 4, MineCount: 0},
		{Width: math.MaxInt, Height: math.MaxInt, MineCount: 1},
	}
	for _, p := range tests {
		t.Run(p.Seed(), func(t *testing.T) {
			m, err := GenerateSeeded(p, 1)
			assert.Nil(t, m)
			assert.ErrorIs(t, err, ErrInvalidConfiguration)
		})
	}
}

func TestValidateArea(t *testing.T) {
	p := Params{Width: 30, Height: 16, MineCount: 99}
	assert.NoError(t, p.ValidateArea(480))
	assert.ErrorIs(t, p.ValidateArea(479), ErrInvalidConfiguration)
	assert.ErrorIs(t, Params{Width: 0, Height: 1}.ValidateArea(480), ErrInvalidConfiguration)
}
