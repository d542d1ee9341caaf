package handlers

import (
	"net/http"
	"strings"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
	"github.com/vancomm/minefield/internal/minefield"
	"github.com/vancomm/minefield/internal/session"
)

func (h *GameHandler) ConnectWS(w http.ResponseWriter, r *http.Request) {
	s, err := h.authorized(r)
	if err != nil {
		sendError(w, h.log, err)
		return
	}

	conn, err := h.ws.Upgrader.Upgrade(w, r, nil) // headers sent here
	if err != nil {
		h.log.WithError(err).Error("unable to upgrade")
		return
	}
	defer conn.Close()

	log := h.log.WithField("session", s.ID)
	log.Debug("ws connected")

	if err := runGameLoop(conn, h.store, s, log); err != nil {
		if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
			log.WithError(err).Warn("ws closed")
		}
	}
}

// runGameLoop reads frames of newline separated commands and answers each
// frame with the resulting view. A frame with a bad command is rejected as
// a whole and reported to the client; the connection stays open unless
// the failure is a server side one. The loop ends once the session is
// deleted or swept.
func runGameLoop(
	conn *websocket.Conn, store *session.Store, s *session.Session,
	log logrus.FieldLogger,
) error {
	for {
		mt, buf, err := conn.ReadMessage()
		if err != nil {
			return err
		}
		if mt != websocket.TextMessage {
			return nil
		}
		if !store.Live(s) {
			log.Debug("ws session gone")
			msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, session.ErrNotFound.Error())
			return conn.WriteMessage(websocket.CloseMessage, msg)
		}

		message := strings.TrimSpace(string(buf))
		log.Debug("\t> ", message)

		var v *GameView
		err = s.Do(func(m *minefield.Minefield) error {
			if err := executeFrame(m, message); err != nil {
				return err
			}
			v = NewGameView(s, m)
			return nil
		})
		if err != nil {
			if statusOf(err) == http.StatusInternalServerError {
				return err
			}
			if err := conn.WriteJSON(wrapError(err)); err != nil {
				return err
			}
			continue
		}

		if err := conn.WriteJSON(v); err != nil {
			return err
		}
	}
}
