package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/katalvlaran/cityroute/citygraph"
	"github.com/katalvlaran/cityroute/metrics"
)

// HeaderQueryID carries the per-request identifier.
const HeaderQueryID = "X-Query-ID"

// ErrNilGraph is returned by New for a nil graph.
var ErrNilGraph = errors.New("server: graph is nil")

// Defaults applied by New.
const (
	DefaultReadTimeout     = 5 * time.Second
	DefaultShutdownTimeout = 10 * time.Second
)

// Server serves one immutable graph.
type Server struct {
	g               *citygraph.Graph
	log             *slog.Logger
	reg             *prometheus.Registry
	metrics         *metrics.Metrics
	readTimeout     time.Duration
	shutdownTimeout time.Duration
	handler         http.Handler
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the request logger. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.log = l
		}
	}
}

// WithRegistry registers the server's collectors with reg and serves reg
// on /metrics. Without it the server uses a private registry.
func WithRegistry(reg *prometheus.Registry) Option {
	return func(s *Server) {
		if reg != nil {
			s.reg = reg
		}
	}
}

// WithTimeouts sets the read timeout and the graceful-shutdown budget.
// Non-positive values keep the defaults.
func WithTimeouts(read, shutdown time.Duration) Option {
	return func(s *Server) {
		if read > 0 {
			s.readTimeout = read
		}
		if shutdown > 0 {
			s.shutdownTimeout = shutdown
		}
	}
}

// New builds a Server for g.
func New(g *citygraph.Graph, opts ...Option) (*Server, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	s := &Server{
		g:               g,
		log:             slog.Default(),
		readTimeout:     DefaultReadTimeout,
		shutdownTimeout: DefaultShutdownTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.reg == nil {
		s.reg = prometheus.NewRegistry()
	}
	s.metrics = metrics.New(s.reg)
	s.metrics.SetGraph(g)

	mux := http.NewServeMux()
	s.setupRoutes(mux)
	s.handler = s.withQueryID(mux)

	return s, nil
}

// setupRoutes configures all HTTP routes.
func (s *Server) setupRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /route", s.handleRoute)
	mux.HandleFunc("GET /nodes", s.handleNodes)
	mux.HandleFunc("GET /edges", s.handleEdges)
	mux.HandleFunc("GET /locate", s.handleLocate)
	mux.HandleFunc("GET /stats", s.handleStats)
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, map[string]string{"status": "ok"}, http.StatusOK)
	})
	mux.Handle("GET /metrics", promhttp.HandlerFor(s.reg, promhttp.HandlerOpts{}))
}

// Handler returns the root handler, for tests and embedding.
func (s *Server) Handler() http.Handler { return s.handler }

// Metrics returns the server's collectors.
func (s *Server) Metrics() *metrics.Metrics { return s.metrics }

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully. A clean shutdown returns nil.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.handler,
		ReadTimeout:       s.readTimeout,
		ReadHeaderTimeout: s.readTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("server: listening", "addr", addr, "nodes", s.g.NodeCount(), "edges", s.g.EdgeCount())
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server: listen %s: %w", addr, err)
	case <-ctx.Done():
	}

	s.log.Info("server: shutting down", "timeout", s.shutdownTimeout)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server: shutdown: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server: listen %s: %w", addr, err)
	}

	return nil
}

type ctxKey struct{}

// withQueryID tags each request with a fresh UUID and logs it on completion.
func (s *Server) withQueryID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		id := uuid.NewString()
		w.Header().Set(HeaderQueryID, id)

		wrapped := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(wrapped, r.WithContext(context.WithValue(r.Context(), ctxKey{}, id)))

		s.log.Info("server: request",
			"query_id", id,
			"method", r.Method,
			"path", r.URL.Path,
			"status", wrapped.statusCode,
			"duration", time.Since(start),
		)
	})
}

// queryID returns the identifier withQueryID attached to r.
func queryID(r *http.Request) string {
	id, _ := r.Context().Value(ctxKey{}).(string)

	return id
}

// responseWriter captures the status code for logging.
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func writeJSON(w http.ResponseWriter, data any, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(data)
}

// errorResponse is the body of every non-2xx answer.
type errorResponse struct {
	Error  string `json:"error"`
	Status int    `json:"status"`
}

func writeError(w http.ResponseWriter, message string, statusCode int) {
	writeJSON(w, errorResponse{Error: message, Status: statusCode}, statusCode)
}
