package main

import (
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/Simplici0/ammonia-co2/internal/emissions"
)

//go:embed templates/*.html
var templateFS embed.FS

var pages = []string{"home.html"}

type server struct {
	calc      *emissions.Calculator
	logger    *slog.Logger
	templates map[string]*template.Template
}

func newServer(calc *emissions.Calculator, logger *slog.Logger) (*server, error) {
	templates := make(map[string]*template.Template, len(pages))
	for _, page := range pages {
		t, err := template.ParseFS(templateFS, "templates/layout.html", "templates/"+page)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", page, err)
		}
		templates[page] = t
	}
	return &server{calc: calc, logger: logger, templates: templates}, nil
}

func (s *server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.requestLogger)
	r.Get("/", s.handleHome)
	r.Get("/chart.svg", s.handleChart)
	r.Get("/export.csv", s.handleExport)
	r.Get("/api/compute", s.handleAPICompute)
	r.Get("/healthz", s.handleHealthz)
	return r
}

func (s *server) renderTemplate(w http.ResponseWriter, page string, status int, data any) {
	t, ok := s.templates[page]
	if !ok {
		http.Error(w, "unknown template", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := t.ExecuteTemplate(w, "layout.html", data); err != nil {
		s.logger.Error("render template", "page", page, "error", err)
	}
}

func (s *server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start),
		)
	})
}
