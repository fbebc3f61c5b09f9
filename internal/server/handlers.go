package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/alexchen/internlens/internal/engine"
	"github.com/alexchen/internlens/internal/normalize"
	"github.com/alexchen/internlens/internal/types"
)

// Job description length bounds guard against empty and abusive payloads
const (
	minJobTextLen = 50
	maxJobTextLen = 50_000
)

// analyzeRequest is the payload for raw-text analysis
type analyzeRequest struct {
	ResumeText    string               `json:"resume_text"`
	JobText       string               `json:"job_text"`
	ModelFeedback []types.FeedbackItem `json:"model_feedback,omitempty"`
}

// analyzeParsedRequest is the payload for already-extracted fields
type analyzeParsedRequest struct {
	Resume        *types.RawResume         `json:"resume"`
	Job           *types.RawJobDescription `json:"job"`
	JobText       string                   `json:"job_text,omitempty"`
	ModelFeedback []types.FeedbackItem     `json:"model_feedback,omitempty"`
}

// handleAnalyze runs the full pipeline over raw resume and job posting text
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	if s.extractor == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "text analysis is not available: no extractor configured")
		return
	}

	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}

	if req.ResumeText == "" {
		s.errorResponse(w, http.StatusBadRequest, "resume_text is required")
		return
	}
	if err := validateJobText(req.JobText); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := s.engine.AnalyzeText(r.Context(), s.extractor, req.ResumeText, req.JobText, req.ModelFeedback)
	if err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("analysis failed")
		s.errorResponse(w, http.StatusBadGateway, "analysis failed")
		return
	}

	s.jsonResponse(w, http.StatusOK, result)
}

// handleAnalyzeParsed runs the pure pipeline over already-extracted fields
func (s *Server) handleAnalyzeParsed(w http.ResponseWriter, r *http.Request) {
	var req analyzeParsedRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}

	if req.Resume == nil || req.Job == nil {
		s.errorResponse(w, http.StatusBadRequest, "resume and job are required")
		return
	}

	result, err := s.engine.Analyze(engine.Input{
		Resume:        normalize.Resume(req.Resume),
		Job:           normalize.JobDescription(req.Job),
		JobText:       req.JobText,
		ModelFeedback: req.ModelFeedback,
	})
	if err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("analysis failed")
		s.errorResponse(w, http.StatusInternalServerError, "analysis failed")
		return
	}

	s.jsonResponse(w, http.StatusOK, result)
}

// validateJobText enforces the job description length bounds
func validateJobText(jobText string) error {
	if len(jobText) < minJobTextLen {
		return fmt.Errorf("job_text must be at least %d characters", minJobTextLen)
	}
	if len(jobText) > maxJobTextLen {
		return fmt.Errorf("job_text must be at most %d characters", maxJobTextLen)
	}
	return nil
}
