// Package server wires the HTTP router and runs the website.
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
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/emergentai/formdocs/internal/assets"
	"github.com/emergentai/formdocs/internal/config"
	"github.com/emergentai/formdocs/internal/handlers"
	"github.com/emergentai/formdocs/internal/logger"
	"github.com/emergentai/formdocs/internal/metrics"
)

var Module = fx.Module("server",
	fx.Provide(NewRouter, NewFromConfig),
	fx.Invoke(Register),
)

// NewRouter builds the site router.
func NewRouter(pages *handlers.Pages, m *metrics.Metrics, log *zap.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(RequestLogger(log))
	r.Use(middleware.Recoverer)

	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(assets.FS()))))

	r.Get("/", pages.LandingPage)
	r.Get("/api/features", pages.Features)
	r.Get("/health", handlers.Health)
	if m != nil {
		r.Method(http.MethodGet, "/metrics", m.Handler())
	}
	r.NotFound(handlers.NotFound)

	return r
}

// RequestLogger logs one line per request with zap.
func RequestLogger(log *zap.Logger) func(http.Handler) http.Handler {
	log = log.With(logger.Scope("http"))
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			defer func() {
				log.Info("request",
					zap.String("method", r.Method),
					zap.String("path", r.URL.Path),
					zap.Int("status", ww.Status()),
					zap.Int("bytes", ww.BytesWritten()),
					zap.Duration("duration", time.Since(start)),
					zap.String("request_id", middleware.GetReqID(r.Context())),
				)
			}()
			next.ServeHTTP(ww, r)
		})
	}
}

// Server wraps an http.Server with listen, serve and bounded shutdown.
type Server struct {
	httpServer      *http.Server
	shutdownTimeout time.Duration
	log             *zap.Logger

	ln    net.Listener
	errCh chan error
}

func New(addr string, handler http.Handler, shutdownTimeout time.Duration, log *zap.Logger) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              addr,
			Handler:           handler,
			ReadHeaderTimeout: 5 * time.Second,
		},
		shutdownTimeout: shutdownTimeout,
		log:             log.With(logger.Scope("server")),
	}
}

// NewFromConfig builds a Server listening on the configured address.
func NewFromConfig(handler http.Handler, cfg *config.Config, log *zap.Logger) *Server {
	return New(cfg.Addr(), handler, cfg.ShutdownTimeout, log)
}

// Register ties the server to the fx lifecycle.
func Register(lc fx.Lifecycle, s *Server) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return s.Start()
		},
		OnStop: func(ctx context.Context) error {
			return s.Shutdown(ctx)
		},
	})
}

// Addr returns the bound address once started, the configured one before.
func (s *Server) Addr() string {
	if s.ln != nil {
		return s.ln.Addr().String()
	}
	return s.httpServer.Addr
}

// Start binds the configured address and serves in the background.
func (s *Server) Start() error {
	ln, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.httpServer.Addr, err)
	}
	s.start(ln)
	return nil
}

func (s *Server) start(ln net.Listener) {
	s.ln = ln
	s.errCh = make(chan error, 1)
	s.log.Info("server starting", zap.String("addr", ln.Addr().String()))
	go func() {
		s.errCh <- s.httpServer.Serve(ln)
	}()
}

// Shutdown stops accepting connections and waits for in-flight requests,
// bounded by the shutdown timeout.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.errCh == nil {
		return nil
	}
	s.log.Info("server shutting down")

	shutdownCtx, cancel := context.WithTimeout(ctx, s.shutdownTimeout)
	defer cancel()
	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	if err := <-s.errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

// Serve serves on ln until ctx is done, then shuts down.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	s.start(ln)

	select {
	case err := <-s.errCh:
		s.errCh = nil
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}
	return s.Shutdown(context.Background())
}
