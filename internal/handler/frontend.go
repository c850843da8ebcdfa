// Copyright (c) 2025-2026 Ammar Ahmed
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"bytes"
	"database/sql"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/Ammar-Ma-Eid/QAIU-Website/internal/cache"
	"github.com/Ammar-Ma-Eid/QAIU-Website/internal/model"
	"github.com/Ammar-Ma-Eid/QAIU-Website/internal/render"
	"github.com/Ammar-Ma-Eid/QAIU-Website/internal/service"
	"github.com/Ammar-Ma-Eid/QAIU-Website/internal/store"
)

// FrontendHandler serves the public site.
type FrontendHandler struct {
	queries  *store.Queries
	content  *service.ContentService
	renderer *render.Renderer
	cache    cache.Cache
	cacheTTL time.Duration
}

// NewFrontendHandler creates a new FrontendHandler. c may be nil to disable
// page caching.
func NewFrontendHandler(db *sql.DB, content *service.ContentService, renderer *render.Renderer, c cache.Cache, cacheTTL time.Duration) *FrontendHandler {
	return &FrontendHandler{
		queries:  store.New(db),
		content:  content,
		renderer: renderer,
		cache:    c,
		cacheTTL: cacheTTL,
	}
}

// homeData is what the home template receives.
type homeData struct {
	UpcomingEvents []model.Event
	RecentPosts    []model.BlogPost
	FeaturedTerms  []model.GlossaryTerm
}

// Home renders the landing page with upcoming events, recent posts and
// featured glossary terms.
func (h *FrontendHandler) Home(w http.ResponseWriter, r *http.Request) {
	h.cached(w, r, cache.KeyPrefixHome, func(w http.ResponseWriter) error {
		ctx := r.Context()
		var data homeData
		var err error

		if data.UpcomingEvents, err = h.queries.ListUpcomingEvents(ctx, time.Now().UTC()); err != nil {
			return err
		}
		if data.RecentPosts, err = h.queries.ListPosts(ctx); err != nil {
			return err
		}
		if len(data.RecentPosts) > 3 {
			data.RecentPosts = data.RecentPosts[:3]
		}
		if data.FeaturedTerms, err = h.queries.ListFeaturedGlossaryTerms(ctx); err != nil {
			return err
		}

		return h.renderer.Render(w, r, "public/home", render.TemplateData{
			Title: "QAIU - Quantum AIU Club",
			Data:  data,
		})
	})
}

// aboutData is what the about template receives.
type aboutData struct {
	Leaders []model.Member
	Board   []model.Member
}

// About renders the about page with the club team, leaders first.
func (h *FrontendHandler) About(w http.ResponseWriter, r *http.Request) {
	h.cached(w, r, cache.KeyPrefixMembers, func(w http.ResponseWriter) error {
		members, err := h.queries.ListMembers(r.Context())
		if err != nil {
			return err
		}

		var data aboutData
		for _, m := range members {
			if m.IsLeader() {
				data.Leaders = append(data.Leaders, m)
			} else {
				data.Board = append(data.Board, m)
			}
		}

		return h.renderer.Render(w, r, "public/about", render.TemplateData{
			Title: "About Us",
			Data:  data,
		})
	})
}

// eventsData is what the events template receives.
type eventsData struct {
	Upcoming []model.Event
	Past     []model.Event
}

// Events renders the events page split into upcoming and past.
func (h *FrontendHandler) Events(w http.ResponseWriter, r *http.Request) {
	h.cached(w, r, cache.KeyPrefixEvents, func(w http.ResponseWriter) error {
		ctx := r.Context()
		now := time.Now().UTC()

		var data eventsData
		var err error
		if data.Upcoming, err = h.queries.ListUpcomingEvents(ctx, now); err != nil {
			return err
		}
		if data.Past, err = h.queries.ListPastEvents(ctx, now); err != nil {
			return err
		}

		return h.renderer.Render(w, r, "public/events", render.TemplateData{
			Title: "Events",
			Data:  data,
		})
	})
}

// Event renders a single event page with its description and gallery.
func (h *FrontendHandler) Event(w http.ResponseWriter, r *http.Request) {
	h.cached(w, r, cache.KeyPrefixEvents, func(w http.ResponseWriter) error {
		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil || id <= 0 {
			http.NotFound(w, r)
			return nil
		}
		event, err := h.queries.GetEventByID(r.Context(), id)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				http.NotFound(w, r)
				return nil
			}
			return err
		}
		return h.renderer.Render(w, r, "public/event", render.TemplateData{
			Title: event.Title,
			Data:  event,
		})
	})
}

// Blog renders the blog index, newest first.
func (h *FrontendHandler) Blog(w http.ResponseWriter, r *http.Request) {
	h.cached(w, r, cache.KeyPrefixPosts, func(w http.ResponseWriter) error {
		posts, err := h.queries.ListPosts(r.Context())
		if err != nil {
			return err
		}
		return h.renderer.Render(w, r, "public/blog", render.TemplateData{
			Title: "Blog",
			Data:  posts,
		})
	})
}

// BlogPost renders a single blog post looked up by slug.
func (h *FrontendHandler) BlogPost(w http.ResponseWriter, r *http.Request) {
	h.cached(w, r, cache.KeyPrefixPosts, func(w http.ResponseWriter) error {
		slug := slugParam(r)
		post, err := h.queries.GetPostBySlug(r.Context(), slug)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				http.NotFound(w, r)
				return nil
			}
			return err
		}
		return h.renderer.Render(w, r, "public/post", render.TemplateData{
			Title: post.Title,
			Data:  post,
		})
	})
}

// Glossary renders the glossary grouped by category.
func (h *FrontendHandler) Glossary(w http.ResponseWriter, r *http.Request) {
	h.cached(w, r, cache.KeyPrefixGlossary, func(w http.ResponseWriter) error {
		terms, err := h.queries.ListGlossaryTerms(r.Context())
		if err != nil {
			return err
		}
		return h.renderer.Render(w, r, "public/glossary", render.TemplateData{
			Title: "Glossary",
			Data:  model.GroupTermsByCategory(terms),
		})
	})
}

// ContactForm renders the contact page. Never cached: the page carries the
// post-submit flash message.
func (h *FrontendHandler) ContactForm(w http.ResponseWriter, r *http.Request) {
	if err := h.renderer.Render(w, r, "public/contact", render.TemplateData{
		Title: "Contact Us",
	}); err != nil {
		logAndInternalError(w, "failed to render contact page", "error", err)
	}
}

// Contact handles the public contact form submission.
func (h *FrontendHandler) Contact(w http.ResponseWriter, r *http.Request) {
	if !parseFormOrRedirect(w, r, h.renderer, RouteContact) {
		return
	}
	res := h.content.SubmitContactMessage(r.Context(), store.ContactMessageParams{
		Name:    r.FormValue("name"),
		Email:   r.FormValue("email"),
		Phone:   r.FormValue("phone"),
		Message: r.FormValue("message"),
	})
	flashResult(w, r, h.renderer, RouteContact, res)
}

// cached serves a page from the rendered-page cache when possible, otherwise
// renders it and stores the result. Only successful GET responses are cached;
// anything else falls through to a plain render.
func (h *FrontendHandler) cached(w http.ResponseWriter, r *http.Request, prefix string, renderPage func(http.ResponseWriter) error) {
	if h.cache == nil || r.Method != http.MethodGet {
		if err := renderPage(w); err != nil {
			logAndInternalError(w, "failed to render page", "path", r.URL.Path, "error", err)
		}
		return
	}

	key := prefix + r.URL.Path
	if body, err := h.cache.Get(r.Context(), key); err == nil {
		w.Header().Set(HeaderContentType, "text/html; charset=utf-8")
		_, _ = w.Write(body)
		return
	}

	cw := &captureWriter{ResponseWriter: w, status: http.StatusOK}
	if err := renderPage(cw); err != nil {
		logAndInternalError(w, "failed to render page", "path", r.URL.Path, "error", err)
		return
	}
	if cw.status == http.StatusOK && cw.body.Len() > 0 {
		_ = h.cache.Set(r.Context(), key, cw.body.Bytes(), h.cacheTTL)
	}
}

// captureWriter tees the response body so it can be stored in the page cache.
type captureWriter struct {
	http.ResponseWriter
	body   bytes.Buffer
	status int
}

func (cw *captureWriter) WriteHeader(status int) {
	cw.status = status
	cw.ResponseWriter.WriteHeader(status)
}

func (cw *captureWriter) Write(b []byte) (int, error) {
	cw.body.Write(b)
	return cw.ResponseWriter.Write(b)
}
