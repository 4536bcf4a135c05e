package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/katalvlaran/gridstar/astar"
	"github.com/katalvlaran/gridstar/internal/config"
	"github.com/katalvlaran/gridstar/internal/metrics"
)

const shutdownTimeout = 5 * time.Second

// Server serves the search API.
type Server struct {
	cfg      config.Config
	logger   *slog.Logger
	registry *prometheus.Registry
	metrics  *metrics.Search
	sessions *sessionStore
	router   *mux.Router
}

// Route binds a name, method and path pattern to a handler.
type Route struct {
	Name        string
	Method      string
	Pattern     string
	HandlerFunc http.HandlerFunc
}

// New builds a Server. cfg supplies the defaults for new searches and the
// session limit; logger may be nil.
func New(cfg config.Config, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())

	s := &Server{
		cfg:      cfg,
		logger:   logger,
		registry: reg,
		metrics:  metrics.New(reg),
		sessions: newSessionStore(cfg.Server.MaxSessions),
	}
	s.router = s.newRouter()

	return s
}

// Routes lists every endpoint of the API.
func (s *Server) Routes() []Route {
	return []Route{
		{"CreateSearch", http.MethodPost, "/searches", s.createSearch},
		{"GetSearch", http.MethodGet, "/searches/{id}", s.getSearch},
		{"StepSearch", http.MethodPost, "/searches/{id}/step", s.stepSearch},
		{"DeleteSearch", http.MethodDelete, "/searches/{id}", s.deleteSearch},
		{"Healthz", http.MethodGet, "/healthz", s.healthz},
	}
}

func (s *Server) newRouter() *mux.Router {
	r := mux.NewRouter().StrictSlash(true)
	for _, route := range s.Routes() {
		r.Methods(route.Method).
			Path(route.Pattern).
			Name(route.Name).
			Handler(route.HandlerFunc)
	}
	r.Methods(http.MethodGet).Path("/metrics").Name("Metrics").
		Handler(promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))
	r.Use(s.logRequests)

	return r
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler { return s.router }

// Registry returns the registry backing /metrics.
func (s *Server) Registry() *prometheus.Registry { return s.registry }

// ListenAndServe serves on the configured address until ctx ends, then
// shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Server.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", slog.String("addr", srv.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server: listen: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server: shutdown: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server: listen: %w", err)
	}

	return nil
}

func (s *Server) createSearch(w http.ResponseWriter, r *http.Request) {
	req := CreateRequest{Grid: s.cfg.Grid, Search: s.cfg.Search}
	d := json.NewDecoder(r.Body)
	d.DisallowUnknownFields()
	if err := d.Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		s.writeError(w, fmt.Errorf("%w: %v", ErrBadRequest, err))
		return
	}

	cfg := s.cfg
	cfg.Grid = req.Grid
	cfg.Search = req.Search
	if err := cfg.Validate(); err != nil {
		s.writeError(w, err)
		return
	}

	id := newID()
	opts := append(s.metrics.Options(), astar.WithLogger(s.logger.With(slog.String("session", id))))
	e, err := cfg.NewEngine(opts...)
	if err != nil {
		s.writeError(w, err)
		return
	}
	if _, err := s.sessions.add(e, id); err != nil {
		s.writeError(w, err)
		return
	}
	s.metrics.ActiveSessions.Inc()
	s.logger.Info("search created",
		slog.String("session", id),
		slog.String("start", e.Start().String()),
		slog.String("goal", e.Goal().String()))

	writeJSON(w, http.StatusCreated, CreateResponse{ID: id})
}

func (s *Server) getSearch(w http.ResponseWriter, r *http.Request) {
	sess, err := s.sessions.get(mux.Vars(r)["id"])
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sess.snapshot())
}

func (s *Server) stepSearch(w http.ResponseWriter, r *http.Request) {
	sess, err := s.sessions.get(mux.Vars(r)["id"])
	if err != nil {
		s.writeError(w, err)
		return
	}

	n := 1
	if raw := r.URL.Query().Get("n"); raw != "" {
		n, err = strconv.Atoi(raw)
		if err != nil || n < 1 || n > maxStepsPerRequest {
			s.writeError(w, fmt.Errorf("%w: n must be in [1,%d], got %q", ErrBadRequest, maxStepsPerRequest, raw))
			return
		}
	}

	sess.step(n)
	writeJSON(w, http.StatusOK, sess.snapshot())
}

func (s *Server) deleteSearch(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := s.sessions.remove(id); err != nil {
		s.writeError(w, err)
		return
	}
	s.metrics.ActiveSessions.Dec()
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) healthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"status": "ok", "sessions": s.sessions.len()})
}

// writeError maps sentinel errors to status codes.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, ErrSessionNotFound):
		status = http.StatusNotFound
	case errors.Is(err, ErrTooManySessions):
		status = http.StatusTooManyRequests
	case errors.Is(err, ErrBadRequest),
		errors.Is(err, config.ErrInvalidConfig),
		errors.Is(err, astar.ErrInvalidState):
		status = http.StatusBadRequest
	}
	if status == http.StatusInternalServerError {
		s.logger.Error("request failed", slog.Any("err", err))
	}
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=UTF-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// statusRecorder captures the status code for request logging.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		route := ""
		if cur := mux.CurrentRoute(r); cur != nil {
			route = cur.GetName()
		}
		s.logger.Debug("request",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("route", route),
			slog.Int("status", rec.status),
			slog.Duration("elapsed", time.Since(start)))
	})
}
