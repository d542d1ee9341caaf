package handlers

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vancomm/minefield/internal/geometry"
	"github.com/vancomm/minefield/internal/input"
	"github.com/vancomm/minefield/internal/minefield"
)

type wsCommand string

const (
	wsNoop   wsCommand = "g"
	wsReveal wsCommand = "o"
	wsFlag   wsCommand = "f"
	wsClick  wsCommand = "c"
)

// Maps known commands to number of arguments
var commandNargs = map[wsCommand]int{
	wsNoop:   0,
	wsReveal: 2,
	wsFlag:   2,
	wsClick:  3,
}

// command is a parsed line, already checked against the field's bounds.
type command struct {
	op       wsCommand
	row, col int
}

func (c command) apply(m *minefield.Minefield) error {
	switch c.op {
	case wsReveal:
		return m.Reveal(c.row, c.col)
	case wsFlag:
		return m.ToggleFlag(c.row, c.col)
	}
	return nil
}

func parseRowCol(args []string) (row int, col int, err error) {
	if row, err = strconv.Atoi(args[0]); err != nil {
		return 0, 0, fmt.Errorf("%w: row must be an int", errBadRequest)
	}
	if col, err = strconv.Atoi(args[1]); err != nil {
		return 0, 0, fmt.Errorf("%w: col must be an int", errBadRequest)
	}
	return
}

func parseClick(args []string) (pos geometry.Vec, button input.Button, err error) {
	if pos.X, err = strconv.ParseFloat(args[0], 64); err != nil {
		return pos, 0, fmt.Errorf("%w: x must be a number", errBadRequest)
	}
	if pos.Y, err = strconv.ParseFloat(args[1], 64); err != nil {
		return pos, 0, fmt.Errorf("%w: y must be a number", errBadRequest)
	}
	button, err = input.ParseButton(args[2])
	return
}

// parseCommand reads one line such as "o 3 4". Clicks resolve to the cell
// they land on, or to a no-op outside the grid.
func parseCommand(m *minefield.Minefield, line string) (command, error) {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return command{}, fmt.Errorf("%w: empty command", errBadRequest)
	}
	cmd := wsCommand(parts[0])
	nargs, ok := commandNargs[cmd]
	if !ok {
		return command{}, fmt.Errorf("%w: unknown command %q", errBadRequest, parts[0])
	}
	args := parts[1:]
	if nargs != len(args) {
		return command{}, fmt.Errorf("%w: %s takes %d arguments", errBadRequest, cmd, nargs)
	}

	switch cmd {
	case wsNoop:
		return command{op: wsNoop}, nil
	case wsReveal, wsFlag:
		row, col, err := parseRowCol(args)
		if err != nil {
			return command{}, err
		}
		if !m.Params().InBounds(row, col) {
			return command{}, fmt.Errorf("%w: (%d, %d)", minefield.ErrIndexOutOfBounds, row, col)
		}
		return command{op: cmd, row: row, col: col}, nil
	case wsClick:
		pos, button, err := parseClick(args)
		if err != nil {
			return command{}, err
		}
		layout := geometry.NewBoard(m.Height(), m.Width()).Grid
		res, err := input.Resolve(layout, input.Click{Pos: pos, Button: button})
		if err != nil {
			return command{}, err
		}
		if !res.Inside {
			return command{op: wsNoop}, nil
		}
		op := wsReveal
		if button == input.Secondary {
			op = wsFlag
		}
		return command{op: op, row: res.Row, col: res.Col}, nil
	}
	return command{}, fmt.Errorf("%w: invalid command", errBadRequest)
}

// executeFrame runs newline separated commands. Every line is parsed
// before any is applied, so a rejected frame leaves the field untouched.
func executeFrame(m *minefield.Minefield, frame string) error {
	lines := strings.Split(frame, "\n")
	cmds := make([]command, 0, len(lines))
	for _, line := range lines {
		c, err := parseCommand(m, strings.TrimSpace(line))
		if err != nil {
			return err
		}
		cmds = append(cmds, c)
	}
	for _, c := range cmds {
		if err := c.apply(m); err != nil {
			return err
		}
	}
	return nil
}
