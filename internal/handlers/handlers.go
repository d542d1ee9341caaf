package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vancomm/minefield/internal/input"
	"github.com/vancomm/minefield/internal/minefield"
	"github.com/vancomm/minefield/internal/session"
)

func sendJSONOrLog(w http.ResponseWriter, log logrus.FieldLogger, v any) {
	sendJSONStatus(w, log, http.StatusOK, v)
}

func sendJSONStatus(w http.ResponseWriter, log logrus.FieldLogger, code int, v any) {
	payload, err := json.Marshal(v)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		log.WithError(err).Error("unable to marshal response")
		return
	}
	w.Header().Add("Content-Type", "application/json")
	w.WriteHeader(code)
	if _, err := w.Write(payload); err != nil {
		log.WithError(err).Error("unable to send response")
	}
}

func wrapError(err error) map[string]string {
	return map[string]string{
		"error": err.Error(),
	}
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, minefield.ErrInvalidConfiguration),
		errors.Is(err, minefield.ErrIndexOutOfBounds),
		errors.Is(err, input.ErrUnknownButton),
		errors.Is(err, errBadRequest):
		return http.StatusBadRequest
	case errors.Is(err, session.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, session.ErrForbidden):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// sendError replies with the status matching err. Server side failures are
// logged and their details withheld.
func sendError(w http.ResponseWriter, log logrus.FieldLogger, err error) {
	code := statusOf(err)
	if code == http.StatusInternalServerError {
		log.WithError(err).Error("internal error")
		err = errors.New("internal error")
	} else {
		log.WithError(err).Debug("request rejected")
	}
	w.Header().Add("Content-Type", "application/json")
	w.WriteHeader(code)
	payload, _ := json.Marshal(wrapError(err))
	w.Write(payload)
}

func bearerToken(r *http.Request) string {
	if h := r.Header.Get("Authorization"); h != "" {
		token, ok := strings.CutPrefix(h, "Bearer ")
		if ok {
			return strings.TrimSpace(token)
		}
	}
	return r.URL.Query().Get("token")
}
