package minefield

import (
	"fmt"
	"strconv"
)

type Coord struct {
	Row, Col int
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// CellContent is either a neighbour mine count in [0, 8] or a mine.
type CellContent int8

const Mine CellContent = -1

func Count(n int) CellContent {
	if n < 0 || n > 8 {
		panic(fmt.Sprintf("neighbour count %d out of range", n))
	}
	return CellContent(n)
}

func (c CellContent) IsMine() bool {
	return c == Mine
}

// Count returns the neighbour mine count, or -1 for a mine.
func (c CellContent) Count() int {
	return int(c)
}

func (c CellContent) String() string {
	if c == Mine {
		return "*"
	}
	return strconv.Itoa(int(c))
}

type DisplayKind int8

const (
	ShowContent DisplayKind = iota
	ShowHidden
	ShowFlag
)

// DisplayState is what the presentation layer draws for a cell.
// Content is meaningful only when Kind is ShowContent.
type DisplayState struct {
	Kind    DisplayKind
	Content CellContent
}

var (
	FlagState   = DisplayState{Kind: ShowFlag}
	HiddenState = DisplayState{Kind: ShowHidden}
)

func Shown(c CellContent) DisplayState {
	return DisplayState{Kind: ShowContent, Content: c}
}

func (s DisplayState) String() string {
	switch s.Kind {
	case ShowFlag:
		return "F"
	case ShowHidden:
		return "#"
	default:
		if s.Content == 0 {
			return "."
		}
		return s.Content.String()
	}
}

// [DisplayState] implements [encoding.TextMarshaler]
func (s DisplayState) MarshalText() ([]byte, error) {
	switch s.Kind {
	case ShowFlag:
		return []byte("flag"), nil
	case ShowHidden:
		return []byte("hidden"), nil
	default:
		if s.Content.IsMine() {
			return []byte("mine"), nil
		}
		return []byte(strconv.Itoa(s.Content.Count())), nil
	}
}

func (s *DisplayState) UnmarshalText(text []byte) error {
	switch string(text) {
	case "flag":
		*s = FlagState
	case "hidden":
		*s = HiddenState
	case "mine":
		*s = Shown(Mine)
	default:
		n, err := strconv.Atoi(string(text))
		if err != nil || n < 0 || n > 8 {
			return fmt.Errorf("invalid display state %q", text)
		}
		*s = Shown(Count(n))
	}
	return nil
}

type cell struct {
	Content CellContent
	Hidden  bool
	Flagged bool
}
