// Package server provides the HTTP dashboard for the job market dataset.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/otel"
	"go.uber.org/zap"

	"github.com/jonathan/ai-job-dashboard/internal/config"
	"github.com/jonathan/ai-job-dashboard/internal/dataset"
	"github.com/jonathan/ai-job-dashboard/internal/server/ratelimit"
	"github.com/jonathan/ai-job-dashboard/internal/views"
)

var tracer = otel.Tracer("github.com/jonathan/ai-job-dashboard/internal/server")

// Server represents the HTTP server
type Server struct {
	cfg         *config.Config
	data        *dataset.Dataset
	logger      *zap.Logger
	views       *views.Renderer
	rateLimiter *ratelimit.Limiter
	router      chi.Router
	httpServer  *http.Server
}

// New creates a new server over an already loaded dataset. In debug mode
// templates are re-read from cfg.Server.TemplatesDir on every request.
func New(cfg *config.Config, data *dataset.Dataset, logger *zap.Logger) (*Server, error) {
	if data == nil {
		return nil, errors.New("dataset is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	reloadDir := ""
	if cfg.Debug {
		reloadDir = cfg.Server.TemplatesDir
	}
	renderer, err := views.New(reloadDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load templates: %w", err)
	}

	s := &Server{
		cfg:         cfg,
		data:        data,
		logger:      logger,
		views:       renderer,
		rateLimiter: ratelimit.NewLimiter(ratelimit.NewConfig(cfg.RateLimit)),
	}
	s.router = s.routes()

	s.httpServer = &http.Server{
		Addr:         cfg.Addr(),
		Handler:      s.router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  60 * time.Second,
		ErrorLog:     zap.NewStdLog(logger),
	}

	return s, nil
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	if s.cfg.Server.TrustProxy {
		r.Use(middleware.RealIP)
	}
	r.Use(middleware.GetHead)
	r.Use(s.withRequestID)
	r.Use(s.withLogging)
	r.Use(middleware.Recoverer)
	r.Use(s.withRateLimit)

	r.Get("/", s.handleHome)
	r.Get("/industry", s.handleIndustry)
	r.Get("/skills", s.handleSkills)
	r.Get("/experience", s.handleExperience)
	r.Get(ratelimit.HealthPath, s.handleHealth)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		s.fail(w, r, &ErrNotFound{Path: r.URL.Path})
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		s.fail(w, r, &ErrMethodNotAllowed{Method: r.Method, Path: r.URL.Path})
	})
	return r
}

// Handler exposes the router, for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start listens until ctx is cancelled, then shuts down gracefully within
// the configured shutdown timeout.
func (s *Server) Start(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.httpServer.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve is Start on an existing listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	defer s.rateLimiter.Stop()

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server starting",
			zap.String("addr", ln.Addr().String()),
			zap.Int("jobs", s.data.Len()),
			zap.Bool("debug", s.cfg.Debug),
		)
		errCh <- s.httpServer.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}

	s.logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	s.logger.Info("server stopped")
	return nil
}
