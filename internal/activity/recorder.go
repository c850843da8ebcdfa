// Copyright (c) 2025-2026 Ammar Ahmed
// SPDX-License-Identifier: GPL-3.0-or-later

// Package activity records admin dashboard activity entries. All writes go
// through a single database-backed recorder so the log has exactly one
// source of truth and one retention rule.
package activity

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/Ammar-Ma-Eid/QAIU-Website/internal/model"
	"github.com/Ammar-Ma-Eid/QAIU-Website/internal/store"
)

// RecentLimit is the maximum number of activity entries kept and served.
const RecentLimit = 50

// Recorder persists and serves the admin activity log.
type Recorder struct {
	queries *store.Queries
	log     *slog.Logger
}

// NewRecorder returns a Recorder backed by the given query layer.
func NewRecorder(queries *store.Queries, log *slog.Logger) *Recorder {
	if log == nil {
		log = slog.Default()
	}
	return &Recorder{queries: queries, log: log}
}

// Add records one activity entry. The recorder assigns the ID and the
// timestamp; callers never supply either. Recording is best-effort: a
// storage failure is logged and the entry is still returned so the caller's
// mutation result is unaffected.
func (r *Recorder) Add(ctx context.Context, action, entity, entityName, details string) model.Activity {
	entry := model.Activity{
		ID:         uuid.NewString(),
		Action:     action,
		Entity:     entity,
		EntityName: entityName,
		Details:    details,
		CreatedAt:  time.Now().UTC(),
	}
	if err := r.queries.InsertActivity(ctx, entry); err != nil {
		r.log.Error("failed to record activity",
			"action", action, "entity", entity, "error", err)
	}
	return entry
}

// Recent returns up to RecentLimit entries, newest first. The slice is never
// nil so JSON encoding yields [] rather than null.
func (r *Recorder) Recent(ctx context.Context) ([]model.Activity, error) {
	entries, err := r.queries.ListRecentActivities(ctx, RecentLimit)
	if err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []model.Activity{}
	}
	return entries, nil
}

// Clear empties the activity log.
func (r *Recorder) Clear(ctx context.Context) error {
	return r.queries.DeleteAllActivities(ctx)
}

// Prune deletes every entry outside the newest RecentLimit. The scheduler
// calls this periodically so the table never grows past the cap for long.
func (r *Recorder) Prune(ctx context.Context) error {
	deleted, err := r.queries.PruneActivities(ctx, RecentLimit)
	if err != nil {
		return err
	}
	if deleted > 0 {
		r.log.Debug("pruned activity log", "deleted", deleted)
	}
	return nil
}
