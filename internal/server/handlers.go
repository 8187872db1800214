package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jonathan/cv-match/internal/store"
	"github.com/jonathan/cv-match/internal/types"
)

// handleAnalyze runs the full analysis for a CV/posting pair.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req types.AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	req.CV.Normalize()
	req.Posting.Normalize()

	result := s.engine.Analyze(r.Context(), req.CV, req.Posting)

	if s.store != nil {
		runID, err := s.store.SaveRun(r.Context(), req.Posting.Title, req.Posting.Company, req.Posting.URL, result.Score, result)
		if err != nil {
			// Persistence is best-effort; the analysis already succeeded.
			s.log.Warn("failed to save analysis run", zap.Error(err))
		} else {
			w.Header().Set("X-Run-ID", runID.String())
		}
	}

	s.jsonResponse(w, http.StatusOK, result)
}

// handleScore returns only the weighted scoring breakdown.
func (s *Server) handleScore(w http.ResponseWriter, r *http.Request) {
	var req types.AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	req.CV.Normalize()
	req.Posting.Normalize()

	result := s.engine.Analyze(r.Context(), req.CV, req.Posting)
	s.jsonResponse(w, http.StatusOK, result.Scoring)
}

// handleLogin issues a bearer token for the shared API password.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	if s.jwtService == nil {
		s.errorResponse(w, http.StatusNotFound, "authentication is not enabled")
		return
	}

	var req types.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	if !s.jwtService.config.VerifyPassword(req.Password) {
		s.errorResponse(w, http.StatusUnauthorized, "invalid password")
		return
	}

	token, err := s.jwtService.GenerateToken()
	if err != nil {
		s.log.Error("failed to generate token", zap.Error(err))
		s.errorResponse(w, http.StatusInternalServerError, "failed to generate token")
		return
	}
	s.jsonResponse(w, http.StatusOK, types.LoginResponse{Token: token})
}

// handleListRuns lists persisted analysis runs.
func (s *Server) handleListRuns(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		s.errorResponse(w, http.StatusNotFound, "run persistence is not enabled")
		return
	}

	filters := store.RunFilters{
		Company: r.URL.Query().Get("company"),
	}
	if v := r.URL.Query().Get("min_score"); v != "" {
		minScore, err := strconv.ParseFloat(v, 64)
		if err != nil {
			s.errorResponse(w, http.StatusBadRequest, "invalid min_score")
			return
		}
		filters.MinScore = minScore
	}
	if v := r.URL.Query().Get("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil {
			s.errorResponse(w, http.StatusBadRequest, "invalid limit")
			return
		}
		filters.Limit = limit
	}

	runs, err := s.store.ListRuns(r.Context(), filters)
	if err != nil {
		s.log.Error("failed to list runs", zap.Error(err))
		s.errorResponse(w, http.StatusInternalServerError, "failed to list runs")
		return
	}
	if runs == nil {
		runs = []store.Run{}
	}
	s.jsonResponse(w, http.StatusOK, runs)
}

// handleGetRun returns one persisted analysis run.
func (s *Server) handleGetRun(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		s.errorResponse(w, http.StatusNotFound, "run persistence is not enabled")
		return
	}

	runID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid run ID")
		return
	}

	run, err := s.store.GetRun(r.Context(), runID)
	if err != nil {
		s.log.Error("failed to get run", zap.Error(err))
		s.errorResponse(w, http.StatusInternalServerError, "failed to get run")
		return
	}
	if run == nil {
		s.errorResponse(w, http.StatusNotFound, "run not found")
		return
	}
	s.jsonResponse(w, http.StatusOK, run)
}

// handleDeleteRun soft-deletes a persisted analysis run.
func (s *Server) handleDeleteRun(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		s.errorResponse(w, http.StatusNotFound, "run persistence is not enabled")
		return
	}

	runID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid run ID")
		return
	}

	if err := s.store.DeleteRun(r.Context(), runID); err != nil {
		s.errorResponse(w, http.StatusNotFound, err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
