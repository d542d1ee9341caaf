package handlers

import (
	"fmt"
	"io"
	"math/rand/v2"
	"net/http"
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/vancomm/minefield/internal/config"
	"github.com/vancomm/minefield/internal/geometry"
	"github.com/vancomm/minefield/internal/input"
	"github.com/vancomm/minefield/internal/minefield"
	"github.com/vancomm/minefield/internal/session"
)

// snapshot bytes allowed per board cell, plus a fixed allowance for the
// gob type header
const (
	snapshotBytesPerCell = 8
	snapshotHeaderBytes  = 4 << 10
)

type GameHandler struct {
	log        logrus.FieldLogger
	store      *session.Store
	ws         *config.WebSocket
	difficulty config.Difficulty
	limits     config.Limits

	rndMu sync.Mutex
	rnd   *rand.Rand
}

func NewGameHandler(
	log logrus.FieldLogger,
	store *session.Store,
	ws *config.WebSocket,
	difficulty config.Difficulty,
	limits config.Limits,
	rnd *rand.Rand,
) *GameHandler {
	return &GameHandler{
		log:        log,
		store:      store,
		ws:         ws,
		difficulty: difficulty,
		limits:     limits,
		rnd:        rnd,
	}
}

func (h *GameHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /difficulties", h.Difficulties)
	mux.HandleFunc("POST /game", h.NewGame)
	mux.HandleFunc("POST /game/import", h.Import)
	mux.HandleFunc("GET /game/{id}", h.Fetch)
	mux.HandleFunc("DELETE /game/{id}", h.End)
	mux.HandleFunc("POST /game/{id}/reveal", h.Reveal)
	mux.HandleFunc("POST /game/{id}/flag", h.Flag)
	mux.HandleFunc("POST /game/{id}/click", h.Click)
	mux.HandleFunc("GET /game/{id}/export", h.Export)
	mux.HandleFunc("GET /game/{id}/connect", h.ConnectWS)
}

func (h *GameHandler) nextSeed() uint64 {
	h.rndMu.Lock()
	defer h.rndMu.Unlock()
	return h.rnd.Uint64()
}

func parseID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: invalid session id", errBadRequest)
	}
	return id, nil
}

// authorized resolves the session in the path and checks the caller owns it.
func (h *GameHandler) authorized(r *http.Request) (*session.Session, error) {
	id, err := parseID(r)
	if err != nil {
		return nil, err
	}
	return h.store.Authorize(id, bearerToken(r))
}

func (h *GameHandler) Difficulties(w http.ResponseWriter, r *http.Request) {
	sendJSONOrLog(w, h.log, config.Difficulties)
}

func (h *GameHandler) NewGame(w http.ResponseWriter, r *http.Request) {
	dto, err := ParseNewGameDTO(r.URL.Query())
	if err != nil {
		sendError(w, h.log, err)
		return
	}
	params, err := dto.Params(h.difficulty, h.limits.MaxCells)
	if err != nil {
		sendError(w, h.log, err)
		return
	}
	seed, ok, err := dto.ParseSeed()
	if err != nil {
		sendError(w, h.log, err)
		return
	}
	if !ok {
		seed = h.nextSeed()
	}

	s, token, err := h.store.Create(params, seed)
	if err != nil {
		sendError(w, h.log, err)
		return
	}

	h.log.WithFields(logrus.Fields{
		"session": s.ID,
		"params":  params.Seed(),
		"seed":    seed,
	}).Info("session created")

	v := view(s)
	v.Token = token
	sendJSONStatus(w, h.log, http.StatusCreated, v)
}

func (h *GameHandler) Import(w http.ResponseWriter, r *http.Request) {
	limit := int64(h.limits.MaxCells)*snapshotBytesPerCell + snapshotHeaderBytes
	buf, err := io.ReadAll(http.MaxBytesReader(w, r.Body, limit))
	if err != nil {
		sendError(w, h.log, fmt.Errorf("%w: %w", errBadRequest, err))
		return
	}
	field, err := minefield.DecodeLimited(buf, h.limits.MaxCells)
	if err != nil {
		sendError(w, h.log, fmt.Errorf("%w: %w", errBadRequest, err))
		return
	}
	s, token, err := h.store.Import(field)
	if err != nil {
		sendError(w, h.log, err)
		return
	}

	h.log.WithFields(logrus.Fields{
		"session": s.ID,
		"params":  field.Params().Seed(),
	}).Info("session imported")

	v := view(s)
	v.Token = token
	sendJSONStatus(w, h.log, http.StatusCreated, v)
}

func (h *GameHandler) Fetch(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		sendError(w, h.log, err)
		return
	}
	s, err := h.store.Get(id)
	if err != nil {
		sendError(w, h.log, err)
		return
	}
	sendJSONOrLog(w, h.log, view(s))
}

func (h *GameHandler) End(w http.ResponseWriter, r *http.Request) {
	s, err := h.authorized(r)
	if err != nil {
		sendError(w, h.log, err)
		return
	}
	if err := h.store.Delete(s.ID); err != nil {
		sendError(w, h.log, err)
		return
	}
	h.log.WithField("session", s.ID).Info("session ended")
	w.WriteHeader(http.StatusNoContent)
}

// mutate runs fn on the caller's session and replies with the new view.
func (h *GameHandler) mutate(
	w http.ResponseWriter, r *http.Request,
	fn func(m *minefield.Minefield) error,
) {
	s, err := h.authorized(r)
	if err != nil {
		sendError(w, h.log, err)
		return
	}
	var v *GameView
	err = s.Do(func(m *minefield.Minefield) error {
		if err := fn(m); err != nil {
			return err
		}
		v = NewGameView(s, m)
		return nil
	})
	if err != nil {
		sendError(w, h.log, err)
		return
	}
	sendJSONOrLog(w, h.log, v)
}

func (h *GameHandler) Reveal(w http.ResponseWriter, r *http.Request) {
	var dto CellDTO
	if err := decode(&dto, r.URL.Query()); err != nil {
		sendError(w, h.log, err)
		return
	}
	h.mutate(w, r, func(m *minefield.Minefield) error {
		return m.Reveal(dto.Row, dto.Col)
	})
}

func (h *GameHandler) Flag(w http.ResponseWriter, r *http.Request) {
	var dto CellDTO
	if err := decode(&dto, r.URL.Query()); err != nil {
		sendError(w, h.log, err)
		return
	}
	h.mutate(w, r, func(m *minefield.Minefield) error {
		return m.ToggleFlag(dto.Row, dto.Col)
	})
}

func (h *GameHandler) Click(w http.ResponseWriter, r *http.Request) {
	var dto ClickDTO
	if err := decode(&dto, r.URL.Query()); err != nil {
		sendError(w, h.log, err)
		return
	}
	button, err := input.ParseButton(dto.Button)
	if err != nil {
		sendError(w, h.log, err)
		return
	}
	h.mutate(w, r, func(m *minefield.Minefield) error {
		return click(m, geometry.Vec{X: dto.X, Y: dto.Y}, button)
	})
}

func click(m *minefield.Minefield, pos geometry.Vec, button input.Button) error {
	layout := geometry.NewBoard(m.Height(), m.Width()).Grid
	_, err := input.Handle(m, layout, input.Click{Pos: pos, Button: button})
	return err
}

func (h *GameHandler) Export(w http.ResponseWriter, r *http.Request) {
	s, err := h.authorized(r)
	if err != nil {
		sendError(w, h.log, err)
		return
	}
	var buf []byte
	err = s.Do(func(m *minefield.Minefield) (err error) {
		buf, err = m.Bytes()
		return
	})
	if err != nil {
		sendError(w, h.log, err)
		return
	}
	w.Header().Set("Content-Type", "application/octet-stream")
	if _, err := w.Write(buf); err != nil {
		h.log.WithError(err).Error("unable to send snapshot")
	}
}
