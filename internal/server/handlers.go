package server

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/jordan/resume-studio/internal/server/middleware"
	"github.com/jordan/resume-studio/internal/types"
)

// aiRequest is the common request envelope of the AI routes. resumeData is
// kept raw so a missing field can be told apart from an empty document. Job
// search filters arrive as top-level fields; a nested filters object is also
// accepted.
type aiRequest struct {
	ResumeData     json.RawMessage  `json:"resumeData"`
	JobDescription string           `json:"jobDescription"`
	SearchQuery    string           `json:"searchQuery"`
	Location       string           `json:"location"`
	JobType        string           `json:"jobType"`
	Filters        types.JobFilters `json:"filters"`
}

// jobFilters merges the two accepted filter shapes; top-level fields win.
func (r *aiRequest) jobFilters() types.JobFilters {
	f := r.Filters
	if r.SearchQuery != "" {
		f.SearchQuery = r.SearchQuery
	}
	if r.Location != "" {
		f.Location = r.Location
	}
	if r.JobType != "" {
		f.JobType = r.JobType
	}
	return f
}

// decodeResumeData parses the request body and unmarshals the resumeData
// field into a document. A missing or null resumeData is a validation error;
// the provider must never be invoked for such requests.
func (s *Server) decodeResumeData(w http.ResponseWriter, r *http.Request) (*aiRequest, *types.ResumeDocument, bool) {
	var req aiRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return nil, nil, false
	}
	if isMissing(req.ResumeData) {
		s.errorResponse(w, http.StatusBadRequest, "Resume data is required")
		return nil, nil, false
	}

	doc := types.NewResumeDocument()
	if err := json.Unmarshal(req.ResumeData, doc); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid resume data")
		return nil, nil, false
	}
	return &req, doc, true
}

func isMissing(raw json.RawMessage) bool {
	return len(raw) == 0 || string(raw) == "null"
}

// debitCredit enforces the credit gate for authenticated callers. Anonymous
// requests pass through un-gated. Returns false after writing the response
// when the request must not proceed.
func (s *Server) debitCredit(w http.ResponseWriter, r *http.Request) bool {
	email, ok := middleware.EmailFromContext(r)
	if !ok {
		return true
	}

	if err := s.store.ConsumeCredit(r.Context(), email); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return false
	}
	return true
}

// handleAnalyze scores a resume against a job description. Failures here are
// hard: a malformed provider response is a 500, not a degraded success.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	req, doc, ok := s.decodeResumeData(w, r)
	if !ok {
		return
	}
	if !s.debitCredit(w, r) {
		return
	}

	result, err := s.ai.Analyze(r.Context(), doc, req.JobDescription)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, result)
}

// handleGenerateSummary produces a career summary from the resume data. The
// personalInfo block is mandatory for this route.
func (s *Server) handleGenerateSummary(w http.ResponseWriter, r *http.Request) {
	var req aiRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if isMissing(req.ResumeData) {
		s.errorResponse(w, http.StatusBadRequest, "Resume data is required")
		return
	}

	var probe struct {
		PersonalInfo *types.PersonalInfo `json:"personalInfo"`
	}
	if err := json.Unmarshal(req.ResumeData, &probe); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid resume data")
		return
	}
	if probe.PersonalInfo == nil {
		s.errorResponse(w, http.StatusBadRequest, "Resume data must include personalInfo")
		return
	}

	doc := types.NewResumeDocument()
	if err := json.Unmarshal(req.ResumeData, doc); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid resume data")
		return
	}

	if !s.debitCredit(w, r) {
		return
	}

	summary, err := s.ai.GenerateSummary(r.Context(), doc)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{"summary": summary})
}

// handleEnhance rewrites a text snippet with per-kind formatting rules.
func (s *Server) handleEnhance(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Text string `json:"text"`
		Type string `json:"type"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		s.errorResponse(w, http.StatusBadRequest, "Text is required")
		return
	}
	kind := types.EnhanceKind(req.Type)
	if !kind.IsValid() {
		s.errorResponse(w, http.StatusBadRequest, "Type must be experience, summary, or project")
		return
	}

	if !s.debitCredit(w, r) {
		return
	}

	enhanced, err := s.ai.EnhanceText(r.Context(), req.Text, kind)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{"improved": enhanced})
}

// handleJobs returns matched job listings. This route never hard-fails on
// the provider: any upstream or parse problem degrades to an empty list.
func (s *Server) handleJobs(w http.ResponseWriter, r *http.Request) {
	req, doc, ok := s.decodeResumeData(w, r)
	if !ok {
		return
	}
	if !s.debitCredit(w, r) {
		return
	}

	jobs := s.ai.MatchJobs(r.Context(), doc, req.jobFilters())
	s.jsonResponse(w, http.StatusOK, map[string]any{"jobs": jobs})
}

// handleSuggestSkills returns complementary skill suggestions. Malformed
// provider output degrades to the fixed fallback list inside the gateway;
// configuration and upstream failures still surface as 500.
func (s *Server) handleSuggestSkills(w http.ResponseWriter, r *http.Request) {
	_, doc, ok := s.decodeResumeData(w, r)
	if !ok {
		return
	}
	if !s.debitCredit(w, r) {
		return
	}

	skills, err := s.ai.SuggestSkills(r.Context(), doc)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"skills": skills})
}

// handleHealth reports liveness and whether the AI provider is configured.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"status":           "ok",
		"geminiConfigured": s.ai.Configured(),
		"timestamp":        time.Now().UTC().Format(time.RFC3339),
		"message":          "Resume studio backend is running",
	})
}
