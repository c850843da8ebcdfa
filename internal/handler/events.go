// Copyright (c) 2025-2026 Ammar Ahmed
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"database/sql"
	"net/http"
	"strings"
	"time"

	"github.com/Ammar-Ma-Eid/QAIU-Website/internal/model"
	"github.com/Ammar-Ma-Eid/QAIU-Website/internal/render"
	"github.com/Ammar-Ma-Eid/QAIU-Website/internal/service"
	"github.com/Ammar-Ma-Eid/QAIU-Website/internal/store"
)

// eventDateLayout is the format the date input submits.
const eventDateLayout = "2006-01-02"

// EventHandler manages events in the admin area.
type EventHandler struct {
	queries  *store.Queries
	content  *service.ContentService
	renderer *render.Renderer
}

// NewEventHandler creates a new EventHandler.
func NewEventHandler(db *sql.DB, content *service.ContentService, renderer *render.Renderer) *EventHandler {
	return &EventHandler{
		queries:  store.New(db),
		content:  content,
		renderer: renderer,
	}
}

// List renders the events admin list.
func (h *EventHandler) List(w http.ResponseWriter, r *http.Request) {
	events, err := h.queries.ListEvents(r.Context())
	if err != nil {
		logAndInternalError(w, "failed to list events", "error", err)
		return
	}
	if err := h.renderer.Render(w, r, "admin/events", render.TemplateData{
		Title:   "Events",
		Data:    events,
		IsAdmin: true,
	}); err != nil {
		logAndInternalError(w, "failed to render events list", "error", err)
	}
}

// NewForm renders the empty event form.
func (h *EventHandler) NewForm(w http.ResponseWriter, r *http.Request) {
	if err := h.renderer.Render(w, r, "admin/event_form", render.TemplateData{
		Title:   "New Event",
		Data:    model.Event{Date: time.Now()},
		IsAdmin: true,
	}); err != nil {
		logAndInternalError(w, "failed to render event form", "error", err)
	}
}

// EditForm renders the event form pre-filled with an existing event.
func (h *EventHandler) EditForm(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, h.renderer, redirectAdminEvents)
	if !ok {
		return
	}
	event, err := h.queries.GetEventByID(r.Context(), id)
	if err != nil {
		flashError(w, r, h.renderer, redirectAdminEvents, "Event not found")
		return
	}
	if err := h.renderer.Render(w, r, "admin/event_form", render.TemplateData{
		Title:   "Edit Event",
		Data:    event,
		IsAdmin: true,
	}); err != nil {
		logAndInternalError(w, "failed to render event form", "error", err)
	}
}

// Create handles the event creation form submission.
func (h *EventHandler) Create(w http.ResponseWriter, r *http.Request) {
	if !parseFormOrRedirect(w, r, h.renderer, redirectAdminEventsNew) {
		return
	}
	arg, ok := eventParamsFromForm(w, r, h.renderer, redirectAdminEventsNew)
	if !ok {
		return
	}
	res := h.content.CreateEvent(r.Context(), arg)
	flashResult(w, r, h.renderer, redirectAdminEvents, res)
}

// Update handles the event edit form submission.
func (h *EventHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, h.renderer, redirectAdminEvents)
	if !ok {
		return
	}
	if !parseFormOrRedirect(w, r, h.renderer, redirectAdminEvents) {
		return
	}
	arg, ok := eventParamsFromForm(w, r, h.renderer, redirectAdminEvents)
	if !ok {
		return
	}
	res := h.content.UpdateEvent(r.Context(), id, arg)
	flashResult(w, r, h.renderer, redirectAdminEvents, res)
}

// Delete removes an event.
func (h *EventHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, h.renderer, redirectAdminEvents)
	if !ok {
		return
	}
	res := h.content.DeleteEvent(r.Context(), id)
	flashResult(w, r, h.renderer, redirectAdminEvents, res)
}

// eventParamsFromForm maps the posted form onto event params. The gallery
// arrives as one image URL per line and is stored as JSON. A bad date flashes
// an error and redirects; the second return value reports success.
func eventParamsFromForm(w http.ResponseWriter, r *http.Request, renderer *render.Renderer, redirectURL string) (store.EventParams, bool) {
	date, err := time.Parse(eventDateLayout, r.FormValue("date"))
	if err != nil {
		flashError(w, r, renderer, redirectURL, "Please enter a valid event date")
		return store.EventParams{}, false
	}

	title := r.FormValue("title")
	var images []model.GalleryImage
	for _, line := range strings.Split(r.FormValue("gallery"), "\n") {
		if src := strings.TrimSpace(line); src != "" {
			images = append(images, model.GalleryImage{Src: src, Alt: title})
		}
	}

	return store.EventParams{
		Title:       title,
		Date:        date,
		Description: r.FormValue("description"),
		ImageURL:    r.FormValue("image_url"),
		Location:    r.FormValue("location"),
		Gallery:     model.EncodeGallery(images),
	}, true
}
