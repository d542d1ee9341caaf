package middleware

import (
	"net/http"

	"github.com/rs/cors"
)

// Cors answers preflight requests for the game API. allowOrigin decides
// which origins get the CORS headers.
func Cors(allowOrigin func(origin string) bool) Middleware {
	c := cors.New(cors.Options{
		AllowOriginFunc: allowOrigin,
		AllowedMethods: []string{
			http.MethodHead,
			http.MethodGet,
			http.MethodPost,
			http.MethodDelete,
		},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
		MaxAge:         600,
	})
	return c.Handler
}
