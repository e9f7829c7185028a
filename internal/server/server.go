// Package server exposes the billionaire table and the comparison calculator over HTTP and
// serves the browser page.
package server

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/elonulator/wealth-calculator/internal/dataset"
)

// Server routes API, metrics and static asset requests.
type Server struct {
	data     *dataset.Dataset
	assets   fs.FS
	logger   *slog.Logger
	registry *prometheus.Registry
	metrics  *metrics
	handler  http.Handler
}

// Option customizes a Server.
type Option func(*Server)

// WithAssets serves static files from fsys instead of returning 404 for non-API paths.
func WithAssets(fsys fs.FS) Option {
	return func(s *Server) { s.assets = fsys }
}

// WithLogger sets the request logger. The default is slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(s *Server) { s.logger = l }
}

// New builds a server around a loaded dataset.
func New(data *dataset.Dataset, opts ...Option) *Server {
	s := &Server{
		data:     data,
		logger:   slog.Default(),
		registry: prometheus.NewRegistry(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.metrics = newMetrics(s.registry)

	mux := http.NewServeMux()
	mux.HandleFunc("/api/", s.handleAPI)
	mux.Handle("/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))
	if s.assets != nil {
		mux.Handle("/", http.FileServer(http.FS(s.assets)))
	} else {
		mux.Handle("/", http.NotFoundHandler())
	}

	s.handler = requestIDMiddleware(s.instrument(mux))
	return s
}

// Handler returns the fully wrapped HTTP handler.
func (s *Server) Handler() http.Handler { return s.handler }

// Run listens on addr until ctx is cancelled, then shuts down gracefully within
// shutdownTimeout. HTTP/2 is accepted without TLS.
func (s *Server) Run(ctx context.Context, addr string, shutdownTimeout time.Duration) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln, shutdownTimeout)
}

// Serve is Run on an existing listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener, shutdownTimeout time.Duration) error {
	srv := &http.Server{
		Handler:           h2c.NewHandler(s.handler, &http2.Server{}),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Serve(ln) }()
	s.logger.Info("Server starting", "address", ln.Addr().String())

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.logger.Info("Shutting down", "timeout", shutdownTimeout)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return nil
}
