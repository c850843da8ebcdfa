// Copyright (c) 2025-2026 Ammar Ahmed
// SPDX-License-Identifier: GPL-3.0-or-later

// Package service wraps content mutations behind a uniform result type.
// Every wrapper authorizes the caller from the request context, persists the
// change, records an activity entry and invalidates the affected page cache
// prefix. Errors are translated into failed results rather than returned, so
// handlers always get something presentable.
package service

import (
	"context"
	"fmt"
	"log/slog"
	"net/mail"
	"strings"

	"github.com/Ammar-Ma-Eid/QAIU-Website/internal/activity"
	"github.com/Ammar-Ma-Eid/QAIU-Website/internal/auth"
	"github.com/Ammar-Ma-Eid/QAIU-Website/internal/cache"
	"github.com/Ammar-Ma-Eid/QAIU-Website/internal/model"
	"github.com/Ammar-Ma-Eid/QAIU-Website/internal/store"
)

// Result is the outcome of a content mutation: whether it took effect and a
// message fit for display.
type Result struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

const msgNotAuthorized = "You are not authorized to perform this action"

// ContentService performs authorized content mutations.
type ContentService struct {
	queries  *store.Queries
	recorder *activity.Recorder
	cache    cache.Cache
	log      *slog.Logger
}

// NewContentService wires a ContentService. cache may be nil when page
// caching is disabled.
func NewContentService(queries *store.Queries, recorder *activity.Recorder, c cache.Cache, log *slog.Logger) *ContentService {
	if log == nil {
		log = slog.Default()
	}
	return &ContentService{queries: queries, recorder: recorder, cache: c, log: log}
}

func (s *ContentService) authorized(ctx context.Context) bool {
	return auth.FromContext(ctx).Admin
}

func (s *ContentService) invalidate(ctx context.Context, prefixes ...string) {
	if s.cache == nil {
		return
	}
	for _, p := range prefixes {
		if err := s.cache.DeleteByPrefix(ctx, p); err != nil {
			s.log.Warn("cache invalidation failed", "prefix", p, "error", err)
		}
	}
}

func (s *ContentService) fail(op string, err error) Result {
	s.log.Error("content mutation failed", "op", op, "error", err)
	return Result{Success: false, Message: fmt.Sprintf("Failed to %s", op)}
}

// --- members ---

// CreateMember adds a club member.
func (s *ContentService) CreateMember(ctx context.Context, arg store.MemberParams) Result {
	if !s.authorized(ctx) {
		return Result{Success: false, Message: msgNotAuthorized}
	}
	m, err := s.queries.CreateMember(ctx, arg)
	if err != nil {
		return s.fail("create member", err)
	}
	s.recorder.Add(ctx, model.ActivityActionCreated, model.ActivityEntityMember, m.Name,
		fmt.Sprintf("Added new %s member with role: %s", m.Category, m.Role))
	s.invalidate(ctx, cache.KeyPrefixMembers, cache.KeyPrefixHome)
	return Result{Success: true, Message: "Member created successfully"}
}

// UpdateMember overwrites a club member's details.
func (s *ContentService) UpdateMember(ctx context.Context, id int64, arg store.MemberParams) Result {
	if !s.authorized(ctx) {
		return Result{Success: false, Message: msgNotAuthorized}
	}
	m, err := s.queries.UpdateMember(ctx, id, arg)
	if err != nil {
		return s.fail("update member", err)
	}
	s.recorder.Add(ctx, model.ActivityActionUpdated, model.ActivityEntityMember, m.Name,
		fmt.Sprintf("Updated %s member with role: %s", m.Category, m.Role))
	s.invalidate(ctx, cache.KeyPrefixMembers, cache.KeyPrefixHome)
	return Result{Success: true, Message: "Member updated successfully"}
}

// DeleteMember removes a club member.
func (s *ContentService) DeleteMember(ctx context.Context, id int64) Result {
	if !s.authorized(ctx) {
		return Result{Success: false, Message: msgNotAuthorized}
	}
	m, err := s.queries.GetMemberByID(ctx, id)
	if err != nil {
		return s.fail("delete member", err)
	}
	if err := s.queries.DeleteMember(ctx, id); err != nil {
		return s.fail("delete member", err)
	}
	s.recorder.Add(ctx, model.ActivityActionDeleted, model.ActivityEntityMember, m.Name, "")
	s.invalidate(ctx, cache.KeyPrefixMembers, cache.KeyPrefixHome)
	return Result{Success: true, Message: "Member deleted successfully"}
}

// --- events ---

// CreateEvent adds an event.
func (s *ContentService) CreateEvent(ctx context.Context, arg store.EventParams) Result {
	if !s.authorized(ctx) {
		return Result{Success: false, Message: msgNotAuthorized}
	}
	e, err := s.queries.CreateEvent(ctx, arg)
	if err != nil {
		return s.fail("create event", err)
	}
	s.recorder.Add(ctx, model.ActivityActionCreated, model.ActivityEntityEvent, e.Title,
		fmt.Sprintf("Created new event for %s", e.Date.Format("January 2, 2006")))
	s.invalidate(ctx, cache.KeyPrefixEvents, cache.KeyPrefixHome)
	return Result{Success: true, Message: "Event created successfully"}
}

// UpdateEvent overwrites an event's details.
func (s *ContentService) UpdateEvent(ctx context.Context, id int64, arg store.EventParams) Result {
	if !s.authorized(ctx) {
		return Result{Success: false, Message: msgNotAuthorized}
	}
	e, err := s.queries.UpdateEvent(ctx, id, arg)
	if err != nil {
		return s.fail("update event", err)
	}
	s.recorder.Add(ctx, model.ActivityActionUpdated, model.ActivityEntityEvent, e.Title,
		fmt.Sprintf("Updated event scheduled for %s", e.Date.Format("January 2, 2006")))
	s.invalidate(ctx, cache.KeyPrefixEvents, cache.KeyPrefixHome)
	return Result{Success: true, Message: "Event updated successfully"}
}

// DeleteEvent removes an event.
func (s *ContentService) DeleteEvent(ctx context.Context, id int64) Result {
	if !s.authorized(ctx) {
		return Result{Success: false, Message: msgNotAuthorized}
	}
	e, err := s.queries.GetEventByID(ctx, id)
	if err != nil {
		return s.fail("delete event", err)
	}
	if err := s.queries.DeleteEvent(ctx, id); err != nil {
		return s.fail("delete event", err)
	}
	s.recorder.Add(ctx, model.ActivityActionDeleted, model.ActivityEntityEvent, e.Title, "")
	s.invalidate(ctx, cache.KeyPrefixEvents, cache.KeyPrefixHome)
	return Result{Success: true, Message: "Event deleted successfully"}
}

// --- blog posts ---

// CreatePost publishes a blog post.
func (s *ContentService) CreatePost(ctx context.Context, arg store.PostParams) Result {
	if !s.authorized(ctx) {
		return Result{Success: false, Message: msgNotAuthorized}
	}
	p, err := s.queries.CreatePost(ctx, arg)
	if err != nil {
		return s.fail("create blog post", err)
	}
	s.recorder.Add(ctx, model.ActivityActionCreated, model.ActivityEntityBlog, p.Title,
		fmt.Sprintf("Published new blog post by %s", p.Author))
	s.invalidate(ctx, cache.KeyPrefixPosts, cache.KeyPrefixHome)
	return Result{Success: true, Message: "Blog post created successfully"}
}

// UpdatePost overwrites a blog post.
func (s *ContentService) UpdatePost(ctx context.Context, id int64, arg store.PostParams) Result {
	if !s.authorized(ctx) {
		return Result{Success: false, Message: msgNotAuthorized}
	}
	p, err := s.queries.UpdatePost(ctx, id, arg)
	if err != nil {
		return s.fail("update blog post", err)
	}
	s.recorder.Add(ctx, model.ActivityActionUpdated, model.ActivityEntityBlog, p.Title,
		fmt.Sprintf("Updated blog post by %s", p.Author))
	s.invalidate(ctx, cache.KeyPrefixPosts, cache.KeyPrefixHome)
	return Result{Success: true, Message: "Blog post updated successfully"}
}

// DeletePost removes a blog post.
func (s *ContentService) DeletePost(ctx context.Context, id int64) Result {
	if !s.authorized(ctx) {
		return Result{Success: false, Message: msgNotAuthorized}
	}
	p, err := s.queries.GetPostByID(ctx, id)
	if err != nil {
		return s.fail("delete blog post", err)
	}
	if err := s.queries.DeletePost(ctx, id); err != nil {
		return s.fail("delete blog post", err)
	}
	s.recorder.Add(ctx, model.ActivityActionDeleted, model.ActivityEntityBlog, p.Title, "")
	s.invalidate(ctx, cache.KeyPrefixPosts, cache.KeyPrefixHome)
	return Result{Success: true, Message: "Blog post deleted successfully"}
}

// --- glossary ---

// CreateGlossaryTerm adds a glossary term.
func (s *ContentService) CreateGlossaryTerm(ctx context.Context, arg store.GlossaryTermParams) Result {
	if !s.authorized(ctx) {
		return Result{Success: false, Message: msgNotAuthorized}
	}
	g, err := s.queries.CreateGlossaryTerm(ctx, arg)
	if err != nil {
		return s.fail("create glossary term", err)
	}
	s.recorder.Add(ctx, model.ActivityActionCreated, model.ActivityEntityGlossary, g.Term,
		fmt.Sprintf("Added new term in %s category", g.Category))
	s.invalidate(ctx, cache.KeyPrefixGlossary, cache.KeyPrefixHome)
	return Result{Success: true, Message: "Glossary term created successfully"}
}

// UpdateGlossaryTerm overwrites a glossary term.
func (s *ContentService) UpdateGlossaryTerm(ctx context.Context, id int64, arg store.GlossaryTermParams) Result {
	if !s.authorized(ctx) {
		return Result{Success: false, Message: msgNotAuthorized}
	}
	g, err := s.queries.UpdateGlossaryTerm(ctx, id, arg)
	if err != nil {
		return s.fail("update glossary term", err)
	}
	s.recorder.Add(ctx, model.ActivityActionUpdated, model.ActivityEntityGlossary, g.Term,
		fmt.Sprintf("Updated term in %s category", g.Category))
	s.invalidate(ctx, cache.KeyPrefixGlossary, cache.KeyPrefixHome)
	return Result{Success: true, Message: "Glossary term updated successfully"}
}

// DeleteGlossaryTerm removes a glossary term.
func (s *ContentService) DeleteGlossaryTerm(ctx context.Context, id int64) Result {
	if !s.authorized(ctx) {
		return Result{Success: false, Message: msgNotAuthorized}
	}
	g, err := s.queries.GetGlossaryTermByID(ctx, id)
	if err != nil {
		return s.fail("delete glossary term", err)
	}
	if err := s.queries.DeleteGlossaryTerm(ctx, id); err != nil {
		return s.fail("delete glossary term", err)
	}
	s.recorder.Add(ctx, model.ActivityActionDeleted, model.ActivityEntityGlossary, g.Term, "")
	s.invalidate(ctx, cache.KeyPrefixGlossary, cache.KeyPrefixHome)
	return Result{Success: true, Message: "Glossary term deleted successfully"}
}

// --- contact form ---

// Contact form validation limits.
const (
	MinContactNameLen    = 2
	MinContactMessageLen = 10
)

// ValidateContactMessage checks a contact submission and returns a
// user-facing problem description, or "" when the submission is acceptable.
func ValidateContactMessage(arg store.ContactMessageParams) string {
	if len(strings.TrimSpace(arg.Name)) < MinContactNameLen {
		return "Please enter your name"
	}
	if _, err := mail.ParseAddress(arg.Email); err != nil {
		return "Please enter a valid email address"
	}
	if len(strings.TrimSpace(arg.Message)) < MinContactMessageLen {
		return "Your message must be at least 10 characters long"
	}
	return ""
}

// SubmitContactMessage validates and stores a public contact form
// submission. It requires no authorization and records no activity entry.
func (s *ContentService) SubmitContactMessage(ctx context.Context, arg store.ContactMessageParams) Result {
	if problem := ValidateContactMessage(arg); problem != "" {
		return Result{Success: false, Message: problem}
	}
	if _, err := s.queries.CreateContactMessage(ctx, arg); err != nil {
		return s.fail("send message", err)
	}
	return Result{Success: true, Message: "Thank you for your message! We will get back to you soon."}
}

// DeleteContactMessage removes a contact message from the admin inbox.
func (s *ContentService) DeleteContactMessage(ctx context.Context, id int64) Result {
	if !s.authorized(ctx) {
		return Result{Success: false, Message: msgNotAuthorized}
	}
	c, err := s.queries.GetContactMessageByID(ctx, id)
	if err != nil {
		return s.fail("delete message", err)
	}
	if err := s.queries.DeleteContactMessage(ctx, id); err != nil {
		return s.fail("delete message", err)
	}
	s.recorder.Add(ctx, model.ActivityActionDeleted, model.ActivityEntityContact, c.Name, "")
	return Result{Success: true, Message: "Message deleted successfully"}
}
