// Copyright (c) 2025-2026 Ammar Ahmed
// SPDX-License-Identifier: GPL-3.0-or-later

package activity

import (
	"context"
	"database/sql"
	"fmt"
	"testing"

	"github.com/Ammar-Ma-Eid/QAIU-Website/internal/model"
	"github.com/Ammar-Ma-Eid/QAIU-Website/internal/store"
)

func testRecorder(t *testing.T) (*Recorder, *store.Queries) {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	if err := store.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	q := store.New(db)
	return NewRecorder(q, nil), q
}

func TestAddAssignsIdentityAndTimestamp(t *testing.T) {
	r, _ := testRecorder(t)
	ctx := context.Background()

	entry := r.Add(ctx, model.ActivityActionCreated, model.ActivityEntityMember,
		"Ammar Ahmed", "Added new leader member with role: President")

	if entry.ID == "" {
		t.Error("expected generated ID")
	}
	if entry.CreatedAt.IsZero() {
		t.Error("expected server-assigned timestamp")
	}

	recent, err := r.Recent(ctx)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(recent) != 1 {
		t.Fatalf("len = %d, want 1", len(recent))
	}
	if recent[0].ID != entry.ID {
		t.Errorf("ID = %q, want %q", recent[0].ID, entry.ID)
	}
	if recent[0].Details != entry.Details {
		t.Errorf("Details = %q, want %q", recent[0].Details, entry.Details)
	}
}

func TestRecentCapsAtLimitNewestFirst(t *testing.T) {
	r, q := testRecorder(t)
	ctx := context.Background()

	for i := 0; i < RecentLimit+1; i++ {
		r.Add(ctx, model.ActivityActionUpdated, model.ActivityEntityEvent,
			fmt.Sprintf("Event %d", i), "")
	}

	recent, err := r.Recent(ctx)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(recent) != RecentLimit {
		t.Fatalf("len = %d, want %d", len(recent), RecentLimit)
	}
	// the newest entry is served, the oldest fell off the end
	if recent[0].EntityName != fmt.Sprintf("Event %d", RecentLimit) {
		t.Errorf("first entry = %q, want newest", recent[0].EntityName)
	}
	for _, e := range recent {
		if e.EntityName == "Event 0" {
			t.Error("oldest entry should not be served once over the cap")
		}
	}

	// the table itself still holds every row until pruned
	n, err := q.CountActivities(ctx)
	if err != nil {
		t.Fatalf("CountActivities: %v", err)
	}
	if n != RecentLimit+1 {
		t.Errorf("stored rows = %d, want %d", n, RecentLimit+1)
	}
}

func TestPruneEnforcesRetention(t *testing.T) {
	r, q := testRecorder(t)
	ctx := context.Background()

	for i := 0; i < RecentLimit+10; i++ {
		r.Add(ctx, model.ActivityActionDeleted, model.ActivityEntityGlossary,
			fmt.Sprintf("Term %d", i), "")
	}

	if err := r.Prune(ctx); err != nil {
		t.Fatalf("Prune: %v", err)
	}
	n, err := q.CountActivities(ctx)
	if err != nil {
		t.Fatalf("CountActivities: %v", err)
	}
	if n != RecentLimit {
		t.Errorf("stored rows after prune = %d, want %d", n, RecentLimit)
	}

	// pruning an already-trimmed table is a no-op
	if err := r.Prune(ctx); err != nil {
		t.Fatalf("Prune (second run): %v", err)
	}
}

func TestClearEmptiesLog(t *testing.T) {
	r, _ := testRecorder(t)
	ctx := context.Background()

	r.Add(ctx, model.ActivityActionCreated, model.ActivityEntityBlog, "Post", "")
	if err := r.Clear(ctx); err != nil {
		t.Fatalf("Clear: %v", err)
	}

	recent, err := r.Recent(ctx)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(recent) != 0 {
		t.Errorf("len = %d, want 0", len(recent))
	}
	if recent == nil {
		t.Error("Recent should return an empty slice, not nil")
	}
}

func TestAddStorageFailureDoesNotPropagate(t *testing.T) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	db.SetMaxOpenConns(1)
	// no migration: the activities table does not exist
	r := NewRecorder(store.New(db), nil)
	_ = db.Close()

	entry := r.Add(context.Background(), model.ActivityActionCreated,
		model.ActivityEntityMember, "Someone", "")
	if entry.ID == "" {
		t.Error("entry should still carry an ID when storage fails")
	}
}
