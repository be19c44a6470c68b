// Package server exposes the calculators over HTTP. It provides a JSON API
// for single values, sequences, and factorials, plus health, version, and
// Prometheus metrics endpoints, with graceful shutdown on context
// cancellation.
package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/agbru/numcalc/internal/config"
	apperrors "github.com/agbru/numcalc/internal/errors"
	"github.com/agbru/numcalc/internal/fibonacci"
	"github.com/agbru/numcalc/internal/logging"
)

// Timeouts groups the HTTP server timeout settings.
type Timeouts struct {
	// ReadTimeout bounds reading the request, including the body.
	ReadTimeout time.Duration
	// WriteTimeout bounds writing the response.
	WriteTimeout time.Duration
	// IdleTimeout bounds how long an idle keep-alive connection is kept open.
	IdleTimeout time.Duration
	// RequestTimeout bounds a single computation.
	RequestTimeout time.Duration
	// ShutdownTimeout bounds the graceful shutdown drain.
	ShutdownTimeout time.Duration
}

// DefaultServerTimeouts returns the production timeout settings.
func DefaultServerTimeouts() Timeouts {
	return Timeouts{
		ReadTimeout:     10 * time.Second,
		WriteTimeout:    30 * time.Second,
		IdleTimeout:     60 * time.Second,
		RequestTimeout:  25 * time.Second,
		ShutdownTimeout: 10 * time.Second,
	}
}

// MaxIndex is the largest index the API accepts. The limit keeps a single
// request from tying up the worker with an arbitrarily large computation.
const MaxIndex = 10_000_000

// VersionInfo is the payload served by /version. It is injected by the
// caller so this package does not depend on the app package's build-time
// variables.
type VersionInfo struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	BuildDate string `json:"build_date"`
	GoVersion string `json:"go_version"`
	OS        string `json:"os"`
	Arch      string `json:"arch"`
}

// Server wraps the HTTP server for the calculator API.
type Server struct {
	cfg        config.AppConfig
	gen        *fibonacci.Generator
	logger     logging.Logger
	httpServer *http.Server
	timeouts   Timeouts
	version    VersionInfo
}

// Option customizes a Server during construction.
type Option func(*Server)

// WithLogger sets a custom logger.
func WithLogger(l logging.Logger) Option {
	return func(s *Server) { s.logger = l }
}

// WithVersion sets the version payload served by /version.
func WithVersion(v VersionInfo) Option {
	return func(s *Server) { s.version = v }
}

// WithTimeouts overrides the default timeout settings.
func WithTimeouts(t Timeouts) Option {
	return func(s *Server) { s.timeouts = t }
}

// NewServer creates a new Server instance with the given configuration.
// It sets up the router, the middleware chain, and the underlying
// http.Server with production timeouts.
//
// Parameters:
//   - cfg: The application configuration (port, method default).
//   - opts: Optional functional options (e.g., WithLogger).
//
// Returns:
//   - *Server: A pointer to the initialized Server.
func NewServer(cfg config.AppConfig, opts ...Option) *Server {
	s := &Server{
		cfg:      cfg,
		gen:      fibonacci.NewGenerator(),
		logger:   logging.NewLogger(os.Stderr, "server"),
		timeouts: DefaultServerTimeouts(),
	}
	for _, opt := range opts {
		opt(s)
	}

	r := chi.NewRouter()
	r.Use(requestIDMiddleware)
	r.Use(s.loggingMiddleware)
	r.Use(chimiddleware.Recoverer)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/fibonacci/{n}", s.handleFibonacci)
		r.Get("/fibonacci/sequence", s.handleSequence)
		r.Get("/factorial/{n}", s.handleFactorial)
		r.Get("/methods", s.handleMethods)
	})
	r.Get("/healthz", s.handleHealth)
	r.Get("/version", s.handleVersion)
	r.Handle("/metrics", promhttp.Handler())

	s.httpServer = &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  s.timeouts.ReadTimeout,
		WriteTimeout: s.timeouts.WriteTimeout,
		IdleTimeout:  s.timeouts.IdleTimeout,
	}
	return s
}

// Handler exposes the configured router, primarily for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start runs the HTTP server until the context is canceled, then drains
// in-flight requests within the shutdown timeout.
//
// Parameters:
//   - ctx: The context whose cancellation triggers graceful shutdown.
//
// Returns:
//   - error: A listen error, or a shutdown error if draining failed.
func (s *Server) Start(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		s.logger.Info("starting server",
			logging.String("addr", s.httpServer.Addr),
			logging.String("default_method", s.cfg.Method))
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutdown signal received, draining connections")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.timeouts.ShutdownTimeout)
	defer cancel()
	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return err
	}
	s.logger.Info("server stopped")
	return nil
}

// Run constructs and starts a server, translating the result to a process
// exit code. This is the entry point the application dispatcher calls.
//
// Parameters:
//   - ctx: The context whose cancellation stops the server.
//   - cfg: The application configuration.
//   - ver: The version payload for the /version endpoint.
//   - errOut: The writer for fatal startup errors.
//
// Returns:
//   - int: The process exit code.
func Run(ctx context.Context, cfg config.AppConfig, ver VersionInfo, errOut io.Writer) int {
	s := NewServer(cfg, WithVersion(ver))
	if err := s.Start(ctx); err != nil {
		s.logger.Error("server failed", err)
		fmt.Fprintf(errOut, "Server error: %v\n", err)
		return apperrors.ExitErrorGeneric
	}
	return apperrors.ExitSuccess
}
