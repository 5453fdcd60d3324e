// Package server implements the local preview server.
//
// The server renders through the same pipeline Runner as the CLI, so a
// chart previewed in the browser is byte-identical to the artifact the
// batch writes to disk, and both share one cache.
package server

import (
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/jefffranzen/capviz/pkg/chart"
	"github.com/jefffranzen/capviz/pkg/errors"
	"github.com/jefffranzen/capviz/pkg/pipeline"
)

// Config configures a preview server.
type Config struct {
	Runner            *pipeline.Runner
	Specs             []chart.Spec
	DashboardTitle    string
	DashboardSubtitle string
	Scale             int
	Logger            *log.Logger
}

// Server serves interactive previews of a chart set.
type Server struct {
	runner   *pipeline.Runner
	specs    []chart.Spec
	byID     map[string]chart.Spec
	title    string
	subtitle string
	scale    int
	logger   *log.Logger
}

// New creates a preview server for the given chart set.
func New(cfg Config) (*Server, error) {
	if len(cfg.Specs) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidSpec, "preview server requires at least one chart")
	}
	if cfg.Runner == nil {
		cfg.Runner = pipeline.NewRunner(nil, nil, cfg.Logger)
	}
	if cfg.Scale <= 0 {
		cfg.Scale = chart.RenderScale
	}
	if cfg.Logger == nil {
		cfg.Logger = log.Default()
	}

	byID := make(map[string]chart.Spec, len(cfg.Specs))
	for _, spec := range cfg.Specs {
		if _, dup := byID[spec.ID]; dup {
			return nil, errors.New(errors.ErrCodeInvalidSpec, "duplicate chart id: %q", spec.ID)
		}
		byID[spec.ID] = spec
	}
	return &Server{
		runner:   cfg.Runner,
		specs:    cfg.Specs,
		byID:     byID,
		title:    cfg.DashboardTitle,
		subtitle: cfg.DashboardSubtitle,
		scale:    cfg.Scale,
		logger:   cfg.Logger,
	}, nil
}

// Router builds the HTTP routes.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.requestLogger)

	r.Get("/healthz", s.handleHealth)
	r.Get("/", s.handleDashboard)
	r.Get("/charts/{id}.png", s.handleChartPNG)
	r.Get("/charts/{id}", s.handleChart)
	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	opts := s.batchOptions()
	data, _, err := s.runner.RenderDashboardArtifact(r.Context(), pipeline.FormatHTML, opts)
	if err != nil {
		s.renderError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(data)
}

func (s *Server) handleChart(w http.ResponseWriter, r *http.Request) {
	spec, ok := s.byID[chi.URLParam(r, "id")]
	if !ok {
		s.renderError(w, errors.New(errors.ErrCodeChartNotFound, "unknown chart: %q", chi.URLParam(r, "id")))
		return
	}
	data, _, err := s.runner.RenderArtifact(r.Context(), spec, pipeline.FormatHTML, s.batchOptions())
	if err != nil {
		s.renderError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(data)
}

func (s *Server) handleChartPNG(w http.ResponseWriter, r *http.Request) {
	spec, ok := s.byID[chi.URLParam(r, "id")]
	if !ok {
		s.renderError(w, errors.New(errors.ErrCodeChartNotFound, "unknown chart: %q", chi.URLParam(r, "id")))
		return
	}
	data, _, err := s.runner.RenderArtifact(r.Context(), spec, pipeline.FormatPNG, s.batchOptions())
	if err != nil {
		s.renderError(w, err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	_, _ = w.Write(data)
}

func (s *Server) batchOptions() pipeline.Options {
	return pipeline.Options{
		Specs:             s.specs,
		Formats:           []string{pipeline.FormatHTML, pipeline.FormatPNG},
		DashboardTitle:    s.title,
		DashboardSubtitle: s.subtitle,
		Scale:             s.scale,
		Logger:            s.logger,
	}
}

// renderError maps domain error codes to HTTP statuses.
func (s *Server) renderError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch errors.GetCode(err) {
	case errors.ErrCodeChartNotFound, errors.ErrCodeNotFound:
		status = http.StatusNotFound
	case errors.ErrCodeInvalidSpec, errors.ErrCodeInvalidKind, errors.ErrCodeInvalidFormat:
		status = http.StatusBadRequest
	}
	http.Error(w, errors.UserMessage(err), status)
}

// requestLogger logs each request with method, path, status, and timing.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start))
	})
}
