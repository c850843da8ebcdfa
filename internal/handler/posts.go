// Copyright (c) 2025-2026 Ammar Ahmed
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/Ammar-Ma-Eid/QAIU-Website/internal/model"
	"github.com/Ammar-Ma-Eid/QAIU-Website/internal/render"
	"github.com/Ammar-Ma-Eid/QAIU-Website/internal/service"
	"github.com/Ammar-Ma-Eid/QAIU-Website/internal/store"
	"github.com/Ammar-Ma-Eid/QAIU-Website/internal/util"
)

// PostHandler manages blog posts in the admin area.
type PostHandler struct {
	queries  *store.Queries
	content  *service.ContentService
	renderer *render.Renderer
}

// NewPostHandler creates a new PostHandler.
func NewPostHandler(db *sql.DB, content *service.ContentService, renderer *render.Renderer) *PostHandler {
	return &PostHandler{
		queries:  store.New(db),
		content:  content,
		renderer: renderer,
	}
}

// List renders the blog posts admin list, newest first.
func (h *PostHandler) List(w http.ResponseWriter, r *http.Request) {
	posts, err := h.queries.ListPosts(r.Context())
	if err != nil {
		logAndInternalError(w, "failed to list posts", "error", err)
		return
	}
	if err := h.renderer.Render(w, r, "admin/posts", render.TemplateData{
		Title:   "Blog Posts",
		Data:    posts,
		IsAdmin: true,
	}); err != nil {
		logAndInternalError(w, "failed to render posts list", "error", err)
	}
}

// NewForm renders the empty post form.
func (h *PostHandler) NewForm(w http.ResponseWriter, r *http.Request) {
	if err := h.renderer.Render(w, r, "admin/post_form", render.TemplateData{
		Title:   "New Blog Post",
		Data:    model.BlogPost{Date: time.Now()},
		IsAdmin: true,
	}); err != nil {
		logAndInternalError(w, "failed to render post form", "error", err)
	}
}

// EditForm renders the post form pre-filled with an existing post.
func (h *PostHandler) EditForm(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, h.renderer, redirectAdminPosts)
	if !ok {
		return
	}
	post, err := h.queries.GetPostByID(r.Context(), id)
	if err != nil {
		flashError(w, r, h.renderer, redirectAdminPosts, "Blog post not found")
		return
	}
	if err := h.renderer.Render(w, r, "admin/post_form", render.TemplateData{
		Title:   "Edit Blog Post",
		Data:    post,
		IsAdmin: true,
	}); err != nil {
		logAndInternalError(w, "failed to render post form", "error", err)
	}
}

// Create handles the post creation form submission.
func (h *PostHandler) Create(w http.ResponseWriter, r *http.Request) {
	if !parseFormOrRedirect(w, r, h.renderer, redirectAdminPostsNew) {
		return
	}
	arg, ok := postParamsFromForm(w, r, h.renderer, redirectAdminPostsNew)
	if !ok {
		return
	}
	res := h.content.CreatePost(r.Context(), arg)
	flashResult(w, r, h.renderer, redirectAdminPosts, res)
}

// Update handles the post edit form submission.
func (h *PostHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, h.renderer, redirectAdminPosts)
	if !ok {
		return
	}
	if !parseFormOrRedirect(w, r, h.renderer, redirectAdminPosts) {
		return
	}
	arg, ok := postParamsFromForm(w, r, h.renderer, redirectAdminPosts)
	if !ok {
		return
	}
	res := h.content.UpdatePost(r.Context(), id, arg)
	flashResult(w, r, h.renderer, redirectAdminPosts, res)
}

// Delete removes a blog post.
func (h *PostHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, h.renderer, redirectAdminPosts)
	if !ok {
		return
	}
	res := h.content.DeletePost(r.Context(), id)
	flashResult(w, r, h.renderer, redirectAdminPosts, res)
}

// postParamsFromForm maps the posted form onto post params. An empty slug is
// derived from the title; a provided slug must be URL-safe.
func postParamsFromForm(w http.ResponseWriter, r *http.Request, renderer *render.Renderer, redirectURL string) (store.PostParams, bool) {
	date, err := time.Parse(eventDateLayout, r.FormValue("date"))
	if err != nil {
		date = time.Now().UTC()
	}

	slug := r.FormValue("slug")
	if slug == "" {
		slug = util.Slugify(r.FormValue("title"))
	}
	if !util.IsValidSlug(slug) {
		flashError(w, r, renderer, redirectURL, "Slug may only contain lowercase letters, digits and hyphens")
		return store.PostParams{}, false
	}

	return store.PostParams{
		Title:    r.FormValue("title"),
		Slug:     slug,
		Author:   r.FormValue("author"),
		Date:     date,
		Excerpt:  r.FormValue("excerpt"),
		Content:  r.FormValue("content"),
		ImageURL: r.FormValue("image_url"),
	}, true
}
