// Package sprites maps minefield state onto sprite sheet indices.
package sprites

import (
	"fmt"

	"github.com/vancomm/minefield/internal/minefield"
)

type MinefieldIndex int

const (
	Num        MinefieldIndex = 0 // Num+n draws count n
	Hidden     MinefieldIndex = 9
	Flag       MinefieldIndex = 10
	Mine       MinefieldIndex = 11
	MineHit    MinefieldIndex = 12
	MineMissed MinefieldIndex = 13
)

// MinefieldSheet is the cell sheet layout in columns x rows of 16px tiles.
var MinefieldSheet = struct{ Cols, Rows int }{5, 3}

type FaceIndex int

const (
	FaceIdle FaceIndex = iota
	FacePressed
	FaceLose
	FaceWin
)

// Index picks the cell sprite for a display state.
func Index(s minefield.DisplayState) MinefieldIndex {
	switch s.Kind {
	case minefield.ShowFlag:
		return Flag
	case minefield.ShowHidden:
		return Hidden
	case minefield.ShowContent:
		if s.Content.IsMine() {
			return Mine
		}
		return Num + MinefieldIndex(s.Content.Count())
	default:
		panic(fmt.Sprintf("unknown display kind %d", s.Kind))
	}
}

// Frame returns the sprite index of every cell, row by row.
func Frame(m *minefield.Minefield) [][]MinefieldIndex {
	frame := make([][]MinefieldIndex, m.Height())
	for row := range frame {
		frame[row] = make([]MinefieldIndex, m.Width())
	}
	m.Each(func(row, col int, s minefield.DisplayState) {
		frame[row][col] = Index(s)
	})
	return frame
}

// CounterDigits splits a counter value into three score sheet digits,
// zero padded and clamped to [0, 999].
func CounterDigits(n int) [3]int {
	n = max(0, min(n, 999))
	return [3]int{n / 100, n / 10 % 10, n % 10}
}
