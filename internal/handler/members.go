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

// MemberHandler manages club members in the admin area.
type MemberHandler struct {
	queries  *store.Queries
	content  *service.ContentService
	renderer *render.Renderer
}

// NewMemberHandler creates a new MemberHandler.
func NewMemberHandler(db *sql.DB, content *service.ContentService, renderer *render.Renderer) *MemberHandler {
	return &MemberHandler{
		queries:  store.New(db),
		content:  content,
		renderer: renderer,
	}
}

// List renders the members admin list, leaders first.
func (h *MemberHandler) List(w http.ResponseWriter, r *http.Request) {
	members, err := h.queries.ListMembers(r.Context())
	if err != nil {
		logAndInternalError(w, "failed to list members", "error", err)
		return
	}
	if err := h.renderer.Render(w, r, "admin/members", render.TemplateData{
		Title:   "Members",
		Data:    members,
		IsAdmin: true,
	}); err != nil {
		logAndInternalError(w, "failed to render members list", "error", err)
	}
}

// NewForm renders the empty member form.
func (h *MemberHandler) NewForm(w http.ResponseWriter, r *http.Request) {
	if err := h.renderer.Render(w, r, "admin/member_form", render.TemplateData{
		Title:   "New Member",
		Data:    model.Member{Category: model.MemberCategoryBoard},
		IsAdmin: true,
	}); err != nil {
		logAndInternalError(w, "failed to render member form", "error", err)
	}
}

// EditForm renders the member form pre-filled with an existing member.
func (h *MemberHandler) EditForm(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, h.renderer, redirectAdminMembers)
	if !ok {
		return
	}
	member, err := h.queries.GetMemberByID(r.Context(), id)
	if err != nil {
		flashError(w, r, h.renderer, redirectAdminMembers, "Member not found")
		return
	}
	if err := h.renderer.Render(w, r, "admin/member_form", render.TemplateData{
		Title:   "Edit Member",
		Data:    member,
		IsAdmin: true,
	}); err != nil {
		logAndInternalError(w, "failed to render member form", "error", err)
	}
}

// Create handles the member creation form submission.
func (h *MemberHandler) Create(w http.ResponseWriter, r *http.Request) {
	if !parseFormOrRedirect(w, r, h.renderer, redirectAdminMembersNew) {
		return
	}
	res := h.content.CreateMember(r.Context(), memberParamsFromForm(r))
	flashResult(w, r, h.renderer, redirectAdminMembers, res)
}

// Update handles the member edit form submission.
func (h *MemberHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, h.renderer, redirectAdminMembers)
	if !ok {
		return
	}
	if !parseFormOrRedirect(w, r, h.renderer, redirectAdminMembers) {
		return
	}
	res := h.content.UpdateMember(r.Context(), id, memberParamsFromForm(r))
	flashResult(w, r, h.renderer, redirectAdminMembers, res)
}

// Delete removes a member.
func (h *MemberHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, h.renderer, redirectAdminMembers)
	if !ok {
		return
	}
	res := h.content.DeleteMember(r.Context(), id)
	flashResult(w, r, h.renderer, redirectAdminMembers, res)
}

// memberParamsFromForm maps the posted form onto member params. Category
// falls back to board and the image to the club logo, matching the column
// defaults.
func memberParamsFromForm(r *http.Request) store.MemberParams {
	arg := store.MemberParams{
		Name:        r.FormValue("name"),
		Role:        r.FormValue("role"),
		Category:    r.FormValue("category"),
		ImageURL:    r.FormValue("image_url"),
		Email:       r.FormValue("email"),
		LinkedinURL: r.FormValue("linkedin_url"),
	}
	if arg.Category != model.MemberCategoryLeader {
		arg.Category = model.MemberCategoryBoard
	}
	if arg.ImageURL == "" {
		arg.ImageURL = "/static/logo.png"
	}
	return arg
}
