// Package input turns pointer clicks into minefield mutations: the
// primary button reveals a cell, the secondary button toggles its flag.
package input

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vancomm/minefield/internal/geometry"
	"github.com/vancomm/minefield/internal/minefield"
)

var ErrUnknownButton = errors.New("unknown button")

type Button int8

const (
	Primary Button = iota
	Secondary
)

func (b Button) String() string {
	switch b {
	case Primary:
		return "primary"
	case Secondary:
		return "secondary"
	default:
		return fmt.Sprintf("button(%d)", int8(b))
	}
}

func ParseButton(s string) (Button, error) {
	switch strings.ToLower(s) {
	case "primary", "left", "0":
		return Primary, nil
	case "secondary", "right", "2":
		return Secondary, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownButton, s)
	}
}

type Click struct {
	Pos    geometry.Vec
	Button Button
}

type Result struct {
	Inside   bool
	Row, Col int
}

// Resolve maps a click to the cell it lands on without touching any field.
func Resolve(l geometry.Layout, c Click) (Result, error) {
	if c.Button != Primary && c.Button != Secondary {
		return Result{}, fmt.Errorf("%w: %s", ErrUnknownButton, c.Button)
	}
	row, col, ok := l.PixelToCell(c.Pos)
	if !ok {
		return Result{}, nil
	}
	return Result{Inside: true, Row: row, Col: col}, nil
}

// Handle applies a click. Clicks outside the grid change nothing.
func Handle(m *minefield.Minefield, l geometry.Layout, c Click) (Result, error) {
	res, err := Resolve(l, c)
	if err != nil || !res.Inside {
		return res, err
	}
	if c.Button == Primary {
		err = m.Reveal(res.Row, res.Col)
	} else {
		err = m.ToggleFlag(res.Row, res.Col)
	}
	return res, err
}
