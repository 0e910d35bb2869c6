// Package inspect serves a small JSON API for a running frame loop.
package inspect

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/comalice/tickerx"
	"github.com/comalice/tickerx/internal/logging"
	"github.com/comalice/tickerx/realtime"
)

// DefaultTimeout bounds how long a request waits for the loop to answer.
const DefaultTimeout = 2 * time.Second

// Server exposes scheduler stats and pause control over HTTP.
type Server struct {
	router    chi.Router
	loop      *realtime.FrameLoop
	logger    *slog.Logger
	timeout   time.Duration
	startTime time.Time
}

// Option configures a Server.
type Option func(*Server)

// WithTimeout overrides DefaultTimeout.
func WithTimeout(d time.Duration) Option {
	return func(s *Server) {
		if d > 0 {
			s.timeout = d
		}
	}
}

// New creates an inspector for loop with all routes registered.
func New(loop *realtime.FrameLoop, logger *slog.Logger, opts ...Option) *Server {
	if logger == nil {
		logger = logging.Discard()
	}
	s := &Server{
		router:    chi.NewRouter(),
		loop:      loop,
		logger:    logger.With("component", "inspect"),
		timeout:   DefaultTimeout,
		startTime: time.Now(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	r := s.router

	r.Use(middleware.Recoverer)
	r.Use(requestIDMiddleware)
	r.Use(loggingMiddleware(s.logger))

	r.Get("/healthz", s.handleHealth)
	r.Get("/stats", s.handleStats)
	r.Post("/pause", s.handlePause)
	r.Post("/resume", s.handleResume)
}

// call runs fn on the loop goroutine and maps loop errors to HTTP statuses.
func (s *Server) call(w http.ResponseWriter, r *http.Request, fn func(*tickerx.Scheduler)) bool {
	reqID := RequestIDFromContext(r.Context())

	ctx, cancel := context.WithTimeout(r.Context(), s.timeout)
	defer cancel()

	err := s.loop.Call(ctx, fn)
	switch {
	case err == nil:
		return true
	case errors.Is(err, realtime.ErrNotRunning):
		respondError(w, reqID, http.StatusServiceUnavailable, codeNotRunning, err.Error())
	case errors.Is(err, realtime.ErrPostQueueFull):
		respondError(w, reqID, http.StatusServiceUnavailable, codeBusy, err.Error())
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		respondError(w, reqID, http.StatusGatewayTimeout, codeTimeout, "frame loop did not answer in time")
	default:
		respondError(w, reqID, http.StatusInternalServerError, codeInternal, err.Error())
	}
	s.logger.Warn("loop call failed", "error", err, "request_id", reqID)
	return false
}
