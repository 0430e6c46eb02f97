package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/jonathan/cv-header-classifier/internal/pipeline"
	"github.com/jonathan/cv-header-classifier/internal/types"
)

// ClassifyResponse is the body returned by POST /classify. An empty
// header list means no publication section was identified, which is a
// normal outcome, not an error.
type ClassifyResponse struct {
	Headers []types.Header `json:"headers"`
	Count   int            `json:"count"`
}

// handleClassify classifies a document's lines and returns the filtered headers.
func (s *Server) handleClassify(w http.ResponseWriter, r *http.Request) {
	var req types.ClassifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	var lines []types.Line
	if len(req.Lines) > 0 {
		lines = pipeline.SegmentLines(req.Lines)
	} else {
		lines = pipeline.SegmentText(req.Text)
	}

	headers, err := pipeline.ClassifyLines(s.clf, lines)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	if headers == nil {
		headers = []types.Header{}
	}
	s.jsonResponse(w, http.StatusOK, ClassifyResponse{Headers: headers, Count: len(headers)})
}

// handleEvaluate runs a full audit over the posted labeled examples and
// appends the resulting snapshot to history.
func (s *Server) handleEvaluate(w http.ResponseWriter, r *http.Request) {
	var req types.EvaluateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	result, err := pipeline.Audit(r.Context(), s.clf, req.Examples, s.history, pipeline.AuditOptions{
		ModelVersion: req.ModelVersion,
		Thresholds:   s.thresholds,
	})
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, result)
}

// handleHistory returns recent evaluation snapshots, oldest first.
func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	limit := 10
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			s.errorResponse(w, http.StatusBadRequest, "Invalid limit parameter")
			return
		}
		limit = parsed
	}

	snapshots, err := s.history.Recent(limit)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	if snapshots == nil {
		snapshots = []types.MetricsSnapshot{}
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"snapshots": snapshots,
		"count":     len(snapshots),
	})
}

// handleListModels lists registered models, newest first.
func (s *Server) handleListModels(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "model registry not configured")
		return
	}

	limit := 50
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			s.errorResponse(w, http.StatusBadRequest, "Invalid limit parameter")
			return
		}
		limit = parsed
	}

	records, err := s.db.ListModels(r.Context(), limit)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"models": records, "count": len(records)})
}

// handleGetModel returns one registry entry including its state.
func (s *Server) handleGetModel(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "model registry not configured")
		return
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid model id format")
		return
	}

	record, err := s.db.GetModel(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	if record == nil {
		s.errorResponse(w, http.StatusNotFound, "model not found")
		return
	}
	s.jsonResponse(w, http.StatusOK, record)
}
