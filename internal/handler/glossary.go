// Copyright (c) 2025-2026 Ammar Ahmed
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"database/sql"
	"net/http"

	"github.com/Ammar-Ma-Eid/QAIU-Website/internal/model"
	"github.com/Ammar-Ma-Eid/QAIU-Website/internal/render"
	"github.com/Ammar-Ma-Eid/QAIU-Website/internal/service"
	"github.com/Ammar-Ma-Eid/QAIU-Website/internal/store"
)

// GlossaryHandler manages glossary terms in the admin area.
type GlossaryHandler struct {
	queries  *store.Queries
	content  *service.ContentService
	renderer *render.Renderer
}

// NewGlossaryHandler creates a new GlossaryHandler.
func NewGlossaryHandler(db *sql.DB, content *service.ContentService, renderer *render.Renderer) *GlossaryHandler {
	return &GlossaryHandler{
		queries:  store.New(db),
		content:  content,
		renderer: renderer,
	}
}

// List renders the glossary admin list grouped by category.
func (h *GlossaryHandler) List(w http.ResponseWriter, r *http.Request) {
	terms, err := h.queries.ListGlossaryTerms(r.Context())
	if err != nil {
		logAndInternalError(w, "failed to list glossary terms", "error", err)
		return
	}
	if err := h.renderer.Render(w, r, "admin/glossary", render.TemplateData{
		Title:   "Glossary",
		Data:    terms,
		IsAdmin: true,
	}); err != nil {
		logAndInternalError(w, "failed to render glossary list", "error", err)
	}
}

// NewForm renders the empty glossary term form.
func (h *GlossaryHandler) NewForm(w http.ResponseWriter, r *http.Request) {
	if err := h.renderer.Render(w, r, "admin/glossary_form", render.TemplateData{
		Title:   "New Glossary Term",
		Data:    model.GlossaryTerm{Category: "General"},
		IsAdmin: true,
	}); err != nil {
		logAndInternalError(w, "failed to render glossary form", "error", err)
	}
}

// EditForm renders the glossary term form pre-filled with an existing term.
func (h *GlossaryHandler) EditForm(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, h.renderer, redirectAdminGlossary)
	if !ok {
		return
	}
	term, err := h.queries.GetGlossaryTermByID(r.Context(), id)
	if err != nil {
		flashError(w, r, h.renderer, redirectAdminGlossary, "Glossary term not found")
		return
	}
	if err := h.renderer.Render(w, r, "admin/glossary_form", render.TemplateData{
		Title:   "Edit Glossary Term",
		Data:    term,
		IsAdmin: true,
	}); err != nil {
		logAndInternalError(w, "failed to render glossary form", "error", err)
	}
}

// Create handles the glossary term creation form submission.
func (h *GlossaryHandler) Create(w http.ResponseWriter, r *http.Request) {
	if !parseFormOrRedirect(w, r, h.renderer, redirectAdminGlossaryNew) {
		return
	}
	res := h.content.CreateGlossaryTerm(r.Context(), glossaryParamsFromForm(r))
	flashResult(w, r, h.renderer, redirectAdminGlossary, res)
}

// Update handles the glossary term edit form submission.
func (h *GlossaryHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, h.renderer, redirectAdminGlossary)
	if !ok {
		return
	}
	if !parseFormOrRedirect(w, r, h.renderer, redirectAdminGlossary) {
		return
	}
	res := h.content.UpdateGlossaryTerm(r.Context(), id, glossaryParamsFromForm(r))
	flashResult(w, r, h.renderer, redirectAdminGlossary, res)
}

// Delete removes a glossary term.
func (h *GlossaryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, h.renderer, redirectAdminGlossary)
	if !ok {
		return
	}
	res := h.content.DeleteGlossaryTerm(r.Context(), id)
	flashResult(w, r, h.renderer, redirectAdminGlossary, res)
}

// glossaryParamsFromForm maps the posted form onto glossary term params.
func glossaryParamsFromForm(r *http.Request) store.GlossaryTermParams {
	arg := store.GlossaryTermParams{
		Term:       r.FormValue("term"),
		Definition: r.FormValue("definition"),
		Category:   r.FormValue("category"),
		Featured:   r.FormValue("featured") == "on" || r.FormValue("featured") == "true",
		Icon:       r.FormValue("icon"),
	}
	if arg.Category == "" {
		arg.Category = "General"
	}
	return arg
}
