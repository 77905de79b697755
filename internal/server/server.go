package server

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/nameforge/pkg/httpserver"
	"github.com/dmitrymomot/nameforge/pkg/namegen"
	"github.com/dmitrymomot/nameforge/pkg/theme"
)

// Server holds the HTTP surface of the generation engine. Generators are
// built per theme on first use and cached; a theme whose files fall back
// to defaults still gets its own cache entry under the requested name.
type Server struct {
	log      *slog.Logger
	themeDir string

	mu   sync.Mutex
	gens map[string]*namegen.Generator
}

// ServerOption configures a Server.
type ServerOption func(*Server)

// WithLogger sets the request and engine logger.
func WithLogger(log *slog.Logger) ServerOption {
	return func(s *Server) {
		if log != nil {
			s.log = log
		}
	}
}

// WithThemeDir points theme loading at an on-disk directory that takes
// precedence over the embedded theme data.
func WithThemeDir(dir string) ServerOption {
	return func(s *Server) { s.themeDir = dir }
}

// New returns a Server ready to build its router.
func New(opts ...ServerOption) *Server {
	s := &Server{
		log:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		gens: make(map[string]*namegen.Generator),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Router assembles the chi router with middleware and all routes.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(requestLogger(s.log))
	r.Use(chimw.Recoverer)

	r.Get("/healthz", httpserver.HealthCheckHandler(context.Background(), s.log))
	r.Route("/api", func(r chi.Router) {
		r.Post("/names", s.handleGenerate)
		r.Get("/presets", s.handlePresetList)
		r.Get("/presets/{id}", s.handlePreset)
	})
	return r
}

// generator returns the cached generator for the theme, loading the theme
// catalog on first use.
func (s *Server) generator(themeName string) (*namegen.Generator, error) {
	if themeName == "" {
		themeName = theme.DefaultTheme
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if g, ok := s.gens[themeName]; ok {
		return g, nil
	}

	loadOpts := []theme.Option{theme.WithLogger(s.log)}
	if s.themeDir != "" {
		loadOpts = append(loadOpts, theme.WithDir(s.themeDir))
	}
	cat, err := theme.Load(themeName, loadOpts...)
	if err != nil {
		return nil, err
	}
	g := namegen.New(cat, namegen.WithLogger(s.log))
	s.gens[themeName] = g
	return g, nil
}
