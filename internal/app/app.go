package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vancomm/minefield/internal/config"
	"github.com/vancomm/minefield/internal/middleware"
	"github.com/vancomm/minefield/internal/session"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 15 * time.Second

type Config struct {
	Session    *config.Session
	Difficulty config.Difficulty
	Origins    config.Origins
	Limits     config.Limits
}

type App struct {
	log        *logrus.Logger
	router     *http.ServeMux
	store      *session.Store
	ws         *config.WebSocket
	difficulty config.Difficulty
	ttl        time.Duration
	origins    config.Origins
	limits     config.Limits
}

func New(log *logrus.Logger, cfg Config) *App {
	a := &App{
		log:        log,
		router:     http.NewServeMux(),
		store:      session.NewStore(session.NewTokens(cfg.Session.Secret, cfg.Session.TTL)),
		ws:         config.NewWebSocket(cfg.Origins),
		difficulty: cfg.Difficulty,
		ttl:        cfg.Session.TTL,
		origins:    cfg.Origins,
		limits:     cfg.Limits,
	}
	a.loadRoutes()
	return a
}

func (a *App) Handler() http.Handler {
	return middleware.Wrap(
		a.router,
		middleware.Logging(a.log),
		middleware.Cors(a.origins.Allow),
	)
}

func (a *App) sweep(ctx context.Context) error {
	interval := max(a.ttl/4, time.Minute)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case now := <-ticker.C:
			if n := a.store.Sweep(now.UTC(), a.ttl); n > 0 {
				a.log.WithFields(logrus.Fields{
					"swept": n,
					"live":  a.store.Len(),
				}).Info("expired sessions dropped")
			}
		}
	}
}

// Start serves on addr until ctx is cancelled.
func (a *App) Start(ctx context.Context, addr string) error {
	server := &http.Server{
		Addr:    addr,
		Handler: a.Handler(),
		BaseContext: func(l net.Listener) context.Context {
			return ctx
		},
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		a.log.Infof("ready to serve @ %s", addr)
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("failed to listen and serve: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gCtx.Done()
		sCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return server.Shutdown(sCtx)
	})
	g.Go(func() error {
		return a.sweep(gCtx)
	})

	return g.Wait()
}
