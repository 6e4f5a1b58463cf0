package server

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"topologia/internal/analysis"
	"topologia/internal/evaluate"
	"topologia/pkg"
	"topologia/src/logger"
)

const spaceNotFound = "Espacio no encontrado"

// ----------------------------------------------------
// ================ Content ================

func (s *Server) handleSpaceInfo(w http.ResponseWriter, r *http.Request) {
	sp, err := s.catalog.Space(chi.URLParam(r, "space"))
	if err != nil {
		writeError(w, http.StatusNotFound, spaceNotFound)
		return
	}

	writeJSON(w, http.StatusOK, sp.Info)
}

func (s *Server) handleAnalyzeSubset(w http.ResponseWriter, r *http.Request) {
	var req pkg.AnalyzeSubsetRequest
	if err := s.decode(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	sp, err := s.catalog.Space(req.SpaceType)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if req.Subset == nil {
		writeJSON(w, http.StatusOK, analysis.MissingSubset(req.SpaceType, sp.Info.Name))
		return
	}

	writeJSON(w, http.StatusOK, analysis.Subset(req.SpaceType, sp.Info.Name, *req.Subset))
}

func (s *Server) handleSetOperation(w http.ResponseWriter, r *http.Request) {
	var req pkg.SetOperationRequest
	if err := s.decode(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, pkg.SetOperationResponse{
		Operation: req.Operation,
		SetA:      req.SetA,
		SetB:      req.SetB,
		Result:    analysis.SetOperation(req.Operation, req.SetA, req.SetB),
	})
}

func (s *Server) handleSpaceProperties(w http.ResponseWriter, r *http.Request) {
	var req pkg.SpaceRequest
	if err := s.decode(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	sp, err := s.catalog.Space(req.SpaceType)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, analysis.Properties(sp.Info.Name, sp.Properties))
}

func (s *Server) handleGenerateVisualization(w http.ResponseWriter, r *http.Request) {
	var req pkg.SpaceRequest
	if err := s.decode(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	sp, err := s.catalog.Space(req.SpaceType)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	s.diagrams.Render(sp.Key)

	writeJSON(w, http.StatusOK, pkg.VisualizationResponse{
		Success: true,
		Message: "Visualización de " + sp.Info.Name + " generada",
	})
}

func (s *Server) handleVisualization(w http.ResponseWriter, r *http.Request) {
	sp, err := s.catalog.Space(chi.URLParam(r, "space"))
	if err != nil {
		writeError(w, http.StatusNotFound, spaceNotFound)
		return
	}

	w.Header().Set("Content-Type", "image/svg+xml")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(s.diagrams.Render(sp.Key))
}

func (s *Server) handleQuizQuestions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.catalog.Quiz())
}

func (s *Server) handleGlossaryTerms(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.catalog.Glossary())
}

func (s *Server) handleConcepts(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.catalog.Concepts())
}

// ----------------------------------------------------
// ================ Finite evaluator ================

func (s *Server) handleFiniteAnalysis(w http.ResponseWriter, r *http.Request) {
	var req pkg.FiniteSpaceRequest
	if err := s.decode(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	sp, err := evaluate.Resolve(s.catalog, req)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	res, err := evaluate.Analyze(sp, req.Subset)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if res.AxiomError != "" {
		logger.Warn().Str("axiom_error", res.AxiomError).Msg("Finite analysis over an invalid family")
	}

	writeJSON(w, http.StatusOK, res)
}

func (s *Server) handleSubspace(w http.ResponseWriter, r *http.Request) {
	var req pkg.FiniteSpaceRequest
	if err := s.decode(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	sp, err := evaluate.Resolve(s.catalog, req)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	res, err := evaluate.Subspace(sp, req.Subset)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, res)
}

func (s *Server) handleContinuity(w http.ResponseWriter, r *http.Request) {
	var req pkg.ContinuityRequest
	if err := s.decode(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	from, err := evaluate.Resolve(s.catalog, req.From)
	if err != nil {
		writeError(w, http.StatusBadRequest, "from: "+err.Error())
		return
	}
	to, err := evaluate.Resolve(s.catalog, req.To)
	if err != nil {
		writeError(w, http.StatusBadRequest, "to: "+err.Error())
		return
	}
	res, err := evaluate.Continuity(from, to, req.Mapping)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, res)
}

// ----------------------------------------------------
// ================ Quiz ================

func (s *Server) handleQuizSubmit(w http.ResponseWriter, r *http.Request) {
	var sub pkg.QuizSubmission
	if err := s.decode(w, r, &sub); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	res, err := s.quiz.Submit(r.Context(), sub)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, res)
}

func (s *Server) handleQuizStats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.quiz.Stats(r.Context(), r.URL.Query().Get("session_id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, stats)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := s.store.Ping(ctx); err != nil {
		logger.Error().Err(err).Msg("Attempt store ping failed")
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
