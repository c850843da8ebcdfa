// Copyright (c) 2025-2026 Ammar Ahmed
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"database/sql"
	"net/http"

	"github.com/Ammar-Ma-Eid/QAIU-Website/internal/activity"
	"github.com/Ammar-Ma-Eid/QAIU-Website/internal/middleware"
	"github.com/Ammar-Ma-Eid/QAIU-Website/internal/model"
	"github.com/Ammar-Ma-Eid/QAIU-Website/internal/render"
	"github.com/Ammar-Ma-Eid/QAIU-Website/internal/store"
)

// AdminHandler serves the dashboard and the activity log endpoints.
type AdminHandler struct {
	queries  *store.Queries
	recorder *activity.Recorder
	renderer *render.Renderer
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(db *sql.DB, recorder *activity.Recorder, renderer *render.Renderer) *AdminHandler {
	return &AdminHandler{
		queries:  store.New(db),
		recorder: recorder,
		renderer: renderer,
	}
}

// dashboardData is what the dashboard template receives.
type dashboardData struct {
	MemberCount   int64
	EventCount    int64
	PostCount     int64
	GlossaryCount int64
	MessageCount  int64
	Activities    []model.Activity
}

// Dashboard renders the admin dashboard with content counts and the recent
// activity feed.
func (h *AdminHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var data dashboardData
	var err error

	if data.MemberCount, err = h.queries.CountMembers(ctx); err != nil {
		logAndInternalError(w, "failed to count members", "error", err)
		return
	}
	if data.EventCount, err = h.queries.CountEvents(ctx); err != nil {
		logAndInternalError(w, "failed to count events", "error", err)
		return
	}
	if data.PostCount, err = h.queries.CountPosts(ctx); err != nil {
		logAndInternalError(w, "failed to count posts", "error", err)
		return
	}
	if data.GlossaryCount, err = h.queries.CountGlossaryTerms(ctx); err != nil {
		logAndInternalError(w, "failed to count glossary terms", "error", err)
		return
	}
	if data.MessageCount, err = h.queries.CountContactMessages(ctx); err != nil {
		logAndInternalError(w, "failed to count messages", "error", err)
		return
	}
	if data.Activities, err = h.recorder.Recent(ctx); err != nil {
		logAndInternalError(w, "failed to load recent activities", "error", err)
		return
	}

	td := render.TemplateData{Title: "Dashboard", Data: data}
	if user := middleware.GetUser(r); user != nil {
		td.IsAdmin = true
		td.UserName = user.Name
	}
	if err := h.renderer.Render(w, r, "admin/dashboard", td); err != nil {
		logAndInternalError(w, "failed to render dashboard", "error", err)
	}
}

// ActivitiesJSON serves the recent activity feed as JSON, newest first,
// capped at the retention limit.
func (h *AdminHandler) ActivitiesJSON(w http.ResponseWriter, r *http.Request) {
	activities, err := h.recorder.Recent(r.Context())
	if err != nil {
		writeJSONError(w, http.StatusInternalServerError, "Failed to load activities")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success":    true,
		"activities": activities,
	})
}

// ClearActivities empties the activity log.
func (h *AdminHandler) ClearActivities(w http.ResponseWriter, r *http.Request) {
	if err := h.recorder.Clear(r.Context()); err != nil {
		flashError(w, r, h.renderer, redirectAdmin, "Failed to clear activity log")
		return
	}
	flashSuccess(w, r, h.renderer, redirectAdmin, "Activity log cleared")
}
