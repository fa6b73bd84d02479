// Package httpapi serves the ruler catalog as a read-only JSON API.
package httpapi

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/ersonp/regnal/internal/application/handlers"
	"github.com/ersonp/regnal/internal/domain/entities"
	"github.com/ersonp/regnal/internal/infrastructure/config"
)

const (
	readHeaderTimeout = 5 * time.Second
	writeTimeout      = 15 * time.Second
	idleTimeout       = 60 * time.Second
	shutdownTimeout   = 10 * time.Second
)

// Handlers are the application handlers behind the API.
type Handlers struct {
	View     *handlers.ViewHandler
	Timeline *handlers.TimelineHandler
	Detail   *handlers.DetailHandler
	Stats    *handlers.StatsHandler

	// DefaultView fills view parameters the request leaves out.
	DefaultView entities.ViewParams
}

// Server is the HTTP API server.
type Server struct {
	httpServer *http.Server
	router     chi.Router
	log        *slog.Logger
}

// NewServer builds the router and middleware chain.
func NewServer(cfg config.ServerConfig, log *slog.Logger, h Handlers) *Server {
	r := chi.NewRouter()

	r.Use(RequestID)
	r.Use(Logger(log))
	r.Use(chimw.Recoverer)
	r.Use(RateLimit(cfg.RateLimit, cfg.Burst))
	r.Use(chimw.CleanPath)

	a := &api{h: h, log: log}
	r.Get("/health", a.health)
	r.Route("/api/v1", func(v1 chi.Router) {
		v1.Get("/rulers", a.listRulers)
		v1.Get("/rulers/{id}", a.getRuler)
		v1.Get("/dynasties", a.listDynasties)
		v1.Get("/timeline", a.timeline)
		v1.Get("/stats", a.stats)
	})
	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		Error(w, http.StatusNotFound, CodeNotFound, "route not found")
	})

	return &Server{
		router: r,
		log:    log,
		httpServer: &http.Server{
			Addr:              cfg.Addr,
			Handler:           r,
			ReadHeaderTimeout: readHeaderTimeout,
			WriteTimeout:      writeTimeout,
			IdleTimeout:       idleTimeout,
		},
	}
}

// Handler returns the root handler, for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves until ctx is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.log.Info("server starting", slog.String("addr", s.httpServer.Addr))
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.log.Info("shutting down server", slog.Duration("timeout", shutdownTimeout))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}
