package handlers

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/gorilla/schema"
	"github.com/vancomm/minefield/internal/config"
	"github.com/vancomm/minefield/internal/minefield"
	"github.com/vancomm/minefield/internal/session"
	"github.com/vancomm/minefield/internal/sprites"
)

var errBadRequest = errors.New("bad request")

var dec = newDecoder()

func newDecoder() *schema.Decoder {
	d := schema.NewDecoder()
	d.IgnoreUnknownKeys(true)
	return d
}

func decode(dst any, src map[string][]string) error {
	if err := dec.Decode(dst, src); err != nil {
		return fmt.Errorf("%w: %w", errBadRequest, err)
	}
	return nil
}

type NewGameDTO struct {
	Difficulty string `schema:"difficulty"`
	Width      int    `schema:"width"`
	Height     int    `schema:"height"`
	MineCount  int    `schema:"mine_count"`
	Seed       string `schema:"seed"`
}

func ParseNewGameDTO(src map[string][]string) (NewGameDTO, error) {
	var dto NewGameDTO
	err := decode(&dto, src)
	return dto, err
}

// Params resolves a difficulty name or explicit dimensions and checks the
// result against maxCells. With neither, the fallback preset is used.
func (dto NewGameDTO) Params(fallback config.Difficulty, maxCells int) (minefield.Params, error) {
	p, err := dto.resolve(fallback)
	if err != nil {
		return minefield.Params{}, err
	}
	if err := p.ValidateArea(maxCells); err != nil {
		return minefield.Params{}, err
	}
	return p, nil
}

func (dto NewGameDTO) resolve(fallback config.Difficulty) (minefield.Params, error) {
	explicit := dto.Width != 0 || dto.Height != 0 || dto.MineCount != 0
	switch {
	case dto.Difficulty != "" && explicit:
		return minefield.Params{}, fmt.Errorf("%w: difficulty and dimensions are exclusive", errBadRequest)
	case dto.Difficulty != "":
		d, err := config.LookupDifficulty(dto.Difficulty)
		if err != nil {
			return minefield.Params{}, fmt.Errorf("%w: %w", errBadRequest, err)
		}
		return d.Params, nil
	case explicit:
		return minefield.Params{Width: dto.Width, Height: dto.Height, MineCount: dto.MineCount}, nil
	default:
		return fallback.Params, nil
	}
}

func (dto NewGameDTO) ParseSeed() (seed uint64, ok bool, err error) {
	if dto.Seed == "" {
		return 0, false, nil
	}
	seed, err = strconv.ParseUint(dto.Seed, 10, 64)
	if err != nil {
		return 0, false, fmt.Errorf("%w: seed: %w", errBadRequest, err)
	}
	return seed, true, nil
}

type CellDTO struct {
	Row int `schema:"row,required"`
	Col int `schema:"col,required"`
}

type ClickDTO struct {
	X      float64 `schema:"x,required"`
	Y      float64 `schema:"y,required"`
	Button string  `schema:"button,required"`
}

type GameView struct {
	GameSessionId  string                     `json:"game_session_id"`
	Token          string                     `json:"token,omitempty"`
	Seed           string                     `json:"seed"`
	Width          int                        `json:"width"`
	Height         int                        `json:"height"`
	MineCount      int                        `json:"mine_count"`
	RemainingMines int                        `json:"remaining_mines"`
	Counter        [3]int                     `json:"counter"`
	HiddenCount    int                        `json:"hidden_count"`
	FlagCount      int                        `json:"flag_count"`
	Cells          [][]minefield.DisplayState `json:"cells"`
	Sprites        [][]sprites.MinefieldIndex `json:"sprites"`
	StartedAt      int64                      `json:"started_at"`
}

// NewGameView must be called while holding the session, from inside Do.
func NewGameView(s *session.Session, m *minefield.Minefield) *GameView {
	cells := make([][]minefield.DisplayState, m.Height())
	for row := range cells {
		cells[row] = make([]minefield.DisplayState, m.Width())
	}
	m.Each(func(row, col int, st minefield.DisplayState) {
		cells[row][col] = st
	})
	return &GameView{
		GameSessionId:  s.ID.String(),
		Seed:           strconv.FormatUint(s.Seed, 10),
		Width:          m.Width(),
		Height:         m.Height(),
		MineCount:      m.MineCount(),
		RemainingMines: m.RemainingMines(),
		Counter:        sprites.CounterDigits(m.RemainingMines()),
		HiddenCount:    m.HiddenCount(),
		FlagCount:      m.FlagCount(),
		Cells:          cells,
		Sprites:        sprites.Frame(m),
		StartedAt:      s.StartedAt.UnixMilli(),
	}
}

func view(s *session.Session) (v *GameView) {
	s.Do(func(m *minefield.Minefield) error {
		v = NewGameView(s, m)
		return nil
	})
	return
}
