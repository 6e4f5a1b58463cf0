// Package server exposes the topology content and evaluator over HTTP.
package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"topologia/internal/catalog"
	"topologia/internal/diagram"
	"topologia/internal/quiz"
	"topologia/internal/storage"
	"topologia/src/logger"
	"topologia/src/model"
)

const defaultMaxBodyBytes = 1 << 20

// Server wires the catalog, diagram renderer and quiz service to routes
type Server struct {
	cfg      model.ServerConfig
	catalog  *catalog.Catalog
	diagrams *diagram.Renderer
	quiz     *quiz.Service
	store    storage.AttemptStore
	router   chi.Router
}

// New builds a server and its routes
func New(cfg model.ServerConfig, cat *catalog.Catalog, diagrams *diagram.Renderer, store storage.AttemptStore) *Server {
	if cfg.MaxBodyBytes <= 0 {
		cfg.MaxBodyBytes = defaultMaxBodyBytes
	}

	s := &Server{
		cfg:      cfg,
		catalog:  cat,
		diagrams: diagrams,
		quiz:     quiz.NewService(cat.Quiz(), store),
		store:    store,
	}
	s.router = s.routes()

	return s
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(requestLogger)
	r.Use(recoverer)

	r.Get("/healthz", s.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Get("/space-info/{space}", s.handleSpaceInfo)
		r.Post("/analyze-subset", s.handleAnalyzeSubset)
		r.Post("/set-operation", s.handleSetOperation)
		r.Post("/space-properties", s.handleSpaceProperties)
		r.Post("/generate-visualization", s.handleGenerateVisualization)
		r.Get("/visualization/{space}", s.handleVisualization)
		r.Get("/quiz-questions", s.handleQuizQuestions)
		r.Get("/glossary-terms", s.handleGlossaryTerms)
		r.Get("/concepts", s.handleConcepts)

		r.Post("/finite-analysis", s.handleFiniteAnalysis)
		r.Post("/subspace", s.handleSubspace)
		r.Post("/continuity", s.handleContinuity)

		r.Post("/quiz/submit", s.handleQuizSubmit)
		r.Get("/quiz/stats", s.handleQuizStats)
	})

	return r
}

// Handler returns the root HTTP handler
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.cfg.Addr,
		Handler:      s.router,
		ReadTimeout:  s.cfg.ReadTimeout,
		WriteTimeout: s.cfg.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", s.cfg.Addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info().Dur("timeout", s.cfg.ShutdownTimeout).Msg("Shutting down HTTP server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}
