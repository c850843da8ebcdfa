// Copyright (c) 2025-2026 Ammar Ahmed
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"database/sql"
	"net/http"

	"github.com/Ammar-Ma-Eid/QAIU-Website/internal/render"
	"github.com/Ammar-Ma-Eid/QAIU-Website/internal/service"
	"github.com/Ammar-Ma-Eid/QAIU-Website/internal/store"
)

// ContactHandler serves the admin contact message inbox.
type ContactHandler struct {
	queries  *store.Queries
	content  *service.ContentService
	renderer *render.Renderer
}

// NewContactHandler creates a new ContactHandler.
func NewContactHandler(db *sql.DB, content *service.ContentService, renderer *render.Renderer) *ContactHandler {
	return &ContactHandler{
		queries:  store.New(db),
		content:  content,
		renderer: renderer,
	}
}

// List renders the contact message inbox, newest first.
func (h *ContactHandler) List(w http.ResponseWriter, r *http.Request) {
	messages, err := h.queries.ListContactMessages(r.Context())
	if err != nil {
		logAndInternalError(w, "failed to list contact messages", "error", err)
		return
	}
	if err := h.renderer.Render(w, r, "admin/messages", render.TemplateData{
		Title:   "Messages",
		Data:    messages,
		IsAdmin: true,
	}); err != nil {
		logAndInternalError(w, "failed to render messages list", "error", err)
	}
}

// Delete removes a contact message from the inbox.
func (h *ContactHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, h.renderer, redirectAdminMessages)
	if !ok {
		return
	}
	res := h.content.DeleteContactMessage(r.Context(), id)
	flashResult(w, r, h.renderer, redirectAdminMessages, res)
}
