package config

import (
	"net/http"
	"os"
	"strings"

	"github.com/gorilla/websocket"
)

// Origins lists the browser origins allowed to reach the API. An empty list
// allows every origin.
type Origins []string

// NewOrigins reads the comma separated ALLOWED_ORIGINS variable.
func NewOrigins() Origins {
	var origins Origins
	for _, o := range strings.Split(os.Getenv("ALLOWED_ORIGINS"), ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, strings.TrimSuffix(o, "/"))
		}
	}
	return origins
}

func (o Origins) Allow(origin string) bool {
	if len(o) == 0 {
		return true
	}
	origin = strings.TrimSuffix(origin, "/")
	for _, allowed := range o {
		if allowed == "*" || strings.EqualFold(allowed, origin) {
			return true
		}
	}
	return false
}

type WebSocket struct {
	Upgrader websocket.Upgrader
}

func NewWebSocket(origins Origins) *WebSocket {
	upgrader := websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 4096,
		// non-browser clients send no Origin header
		CheckOrigin: func(r *http.Request) bool {
			origin := r.Header.Get("Origin")
			return origin == "" || origins.Allow(origin)
		},
	}
	return &WebSocket{Upgrader: upgrader}
}
