package server

import (
	"encoding/json"
	"net/http"

	"github.com/jordan/resume-studio/internal/render"
	"github.com/jordan/resume-studio/internal/server/middleware"
	"github.com/jordan/resume-studio/internal/types"
)

// handleGetResume returns the account's saved resume snapshot. Accounts that
// have never saved get a fresh empty document with default settings.
func (s *Server) handleGetResume(w http.ResponseWriter, r *http.Request) {
	email, err := middleware.GetEmail(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	doc, err := s.store.LoadResume(r.Context(), email)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, doc)
}

// handleSaveResume replaces the account's resume snapshot as a whole.
func (s *Server) handleSaveResume(w http.ResponseWriter, r *http.Request) {
	email, err := middleware.GetEmail(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	doc := types.NewResumeDocument()
	if err := json.NewDecoder(r.Body).Decode(doc); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid resume data")
		return
	}
	if doc.TemplateSettings.Template != "" && !doc.TemplateSettings.Template.IsValid() {
		s.errorResponse(w, http.StatusBadRequest, "Unknown template")
		return
	}

	if err := s.store.SaveResume(r.Context(), email, doc); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, doc)
}

// handleRender renders the saved snapshot as HTML. The template query
// parameter overrides the document's own setting.
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	email, err := middleware.GetEmail(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	doc, err := s.store.LoadResume(r.Context(), email)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	variant := types.Template(r.URL.Query().Get("template"))
	if variant != "" && !variant.IsValid() {
		s.errorResponse(w, http.StatusBadRequest, "Unknown template")
		return
	}

	html, err := render.Render(doc, variant)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(html)); err != nil {
		// Response already sent
		return
	}
}
