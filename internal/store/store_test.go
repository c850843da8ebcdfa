// Copyright (c) 2025-2026 Ammar Ahmed
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/Ammar-Ma-Eid/QAIU-Website/internal/model"
	"github.com/google/uuid"
)

// testDB opens an in-memory database with the full schema applied.
func testDB(t *testing.T) *Queries {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	// one connection so every query sees the same in-memory database
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	if err := Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return New(db)
}

func TestMemberCRUD(t *testing.T) {
	q := testDB(t)
	ctx := context.Background()

	m, err := q.CreateMember(ctx, MemberParams{
		Name:     "Ammar Ahmed",
		Role:     "President",
		Category: model.MemberCategoryLeader,
	})
	if err != nil {
		t.Fatalf("CreateMember: %v", err)
	}
	if m.ID == 0 {
		t.Error("expected non-zero ID")
	}
	if !m.IsLeader() {
		t.Error("expected leader category")
	}

	m2, err := q.UpdateMember(ctx, m.ID, MemberParams{
		Name:     "Ammar Ahmed",
		Role:     "Founder",
		Category: model.MemberCategoryLeader,
	})
	if err != nil {
		t.Fatalf("UpdateMember: %v", err)
	}
	if m2.Role != "Founder" {
		t.Errorf("Role = %q, want %q", m2.Role, "Founder")
	}

	got, err := q.GetMemberByID(ctx, m.ID)
	if err != nil {
		t.Fatalf("GetMemberByID: %v", err)
	}
	if got.Role != "Founder" {
		t.Errorf("Role = %q, want %q", got.Role, "Founder")
	}

	if err := q.DeleteMember(ctx, m.ID); err != nil {
		t.Fatalf("DeleteMember: %v", err)
	}
	if _, err := q.GetMemberByID(ctx, m.ID); err != sql.ErrNoRows {
		t.Errorf("GetMemberByID after delete: err = %v, want sql.ErrNoRows", err)
	}
}

func TestListMembersLeadersFirst(t *testing.T) {
	q := testDB(t)
	ctx := context.Background()

	for _, m := range []MemberParams{
		{Name: "Aya", Role: "Member", Category: model.MemberCategoryBoard},
		{Name: "Ziad", Role: "President", Category: model.MemberCategoryLeader},
		{Name: "Basel", Role: "Member", Category: model.MemberCategoryBoard},
	} {
		if _, err := q.CreateMember(ctx, m); err != nil {
			t.Fatalf("CreateMember: %v", err)
		}
	}

	members, err := q.ListMembers(ctx)
	if err != nil {
		t.Fatalf("ListMembers: %v", err)
	}
	if len(members) != 3 {
		t.Fatalf("len = %d, want 3", len(members))
	}
	if members[0].Name != "Ziad" {
		t.Errorf("first member = %q, want leader Ziad", members[0].Name)
	}
	if members[1].Name != "Aya" || members[2].Name != "Basel" {
		t.Errorf("board members not ordered by name: %q, %q", members[1].Name, members[2].Name)
	}
}

func TestEventUpcomingPastSplit(t *testing.T) {
	q := testDB(t)
	ctx := context.Background()
	now := time.Now().UTC()

	if _, err := q.CreateEvent(ctx, EventParams{Title: "Past", Date: now.AddDate(0, 0, -7), Gallery: "[]"}); err != nil {
		t.Fatalf("CreateEvent: %v", err)
	}
	if _, err := q.CreateEvent(ctx, EventParams{Title: "Soon", Date: now.AddDate(0, 0, 7), Gallery: "[]"}); err != nil {
		t.Fatalf("CreateEvent: %v", err)
	}
	if _, err := q.CreateEvent(ctx, EventParams{Title: "Later", Date: now.AddDate(0, 1, 0), Gallery: "[]"}); err != nil {
		t.Fatalf("CreateEvent: %v", err)
	}

	upcoming, err := q.ListUpcomingEvents(ctx, now)
	if err != nil {
		t.Fatalf("ListUpcomingEvents: %v", err)
	}
	if len(upcoming) != 2 || upcoming[0].Title != "Soon" {
		t.Errorf("upcoming = %+v, want [Soon Later]", upcoming)
	}

	past, err := q.ListPastEvents(ctx, now)
	if err != nil {
		t.Fatalf("ListPastEvents: %v", err)
	}
	if len(past) != 1 || past[0].Title != "Past" {
		t.Errorf("past = %+v, want [Past]", past)
	}
}

func TestPostSlugLookup(t *testing.T) {
	q := testDB(t)
	ctx := context.Background()

	p, err := q.CreatePost(ctx, PostParams{
		Title:  "Quantum Winter School Recap",
		Slug:   "quantum-winter-school-recap",
		Author: "Sara Mostafa",
		Date:   time.Now().UTC(),
	})
	if err != nil {
		t.Fatalf("CreatePost: %v", err)
	}

	got, err := q.GetPostBySlug(ctx, "quantum-winter-school-recap")
	if err != nil {
		t.Fatalf("GetPostBySlug: %v", err)
	}
	if got.ID != p.ID {
		t.Errorf("ID = %d, want %d", got.ID, p.ID)
	}

	// the slug column is unique
	if _, err := q.CreatePost(ctx, PostParams{
		Title: "Duplicate",
		Slug:  "quantum-winter-school-recap",
		Date:  time.Now().UTC(),
	}); err == nil {
		t.Error("expected unique constraint error for duplicate slug")
	}
}

func TestGlossaryFeaturedFilter(t *testing.T) {
	q := testDB(t)
	ctx := context.Background()

	for _, g := range []GlossaryTermParams{
		{Term: "Qubit", Definition: "Basic unit of quantum information.", Category: "Fundamentals", Featured: true},
		{Term: "Entanglement", Definition: "Non-classical correlation.", Category: "Fundamentals", Featured: false},
	} {
		if _, err := q.CreateGlossaryTerm(ctx, g); err != nil {
			t.Fatalf("CreateGlossaryTerm: %v", err)
		}
	}

	featured, err := q.ListFeaturedGlossaryTerms(ctx)
	if err != nil {
		t.Fatalf("ListFeaturedGlossaryTerms: %v", err)
	}
	if len(featured) != 1 || featured[0].Term != "Qubit" {
		t.Errorf("featured = %+v, want [Qubit]", featured)
	}
}

func TestContactMessageStoreAndList(t *testing.T) {
	q := testDB(t)
	ctx := context.Background()

	c, err := q.CreateContactMessage(ctx, ContactMessageParams{
		Name:    "Visitor",
		Email:   "visitor@example.com",
		Message: "How do I become a member of the club?",
	})
	if err != nil {
		t.Fatalf("CreateContactMessage: %v", err)
	}

	msgs, err := q.ListContactMessages(ctx)
	if err != nil {
		t.Fatalf("ListContactMessages: %v", err)
	}
	if len(msgs) != 1 || msgs[0].ID != c.ID {
		t.Fatalf("msgs = %+v, want the stored message", msgs)
	}

	if err := q.DeleteContactMessage(ctx, c.ID); err != nil {
		t.Fatalf("DeleteContactMessage: %v", err)
	}
	if n, err := q.CountContactMessages(ctx); err != nil || n != 0 {
		t.Errorf("count = %d (err %v), want 0", n, err)
	}
}

func TestActivityRecentOrderAndLimit(t *testing.T) {
	q := testDB(t)
	ctx := context.Background()
	base := time.Now().UTC().Add(-time.Hour)

	for i := 0; i < 5; i++ {
		a := model.Activity{
			ID:         uuid.NewString(),
			Action:     model.ActivityActionCreated,
			Entity:     model.ActivityEntityMember,
			EntityName: "Member",
			CreatedAt:  base.Add(time.Duration(i) * time.Minute),
		}
		if err := q.InsertActivity(ctx, a); err != nil {
			t.Fatalf("InsertActivity: %v", err)
		}
	}

	recent, err := q.ListRecentActivities(ctx, 3)
	if err != nil {
		t.Fatalf("ListRecentActivities: %v", err)
	}
	if len(recent) != 3 {
		t.Fatalf("len = %d, want 3", len(recent))
	}
	for i := 1; i < len(recent); i++ {
		if recent[i].CreatedAt.After(recent[i-1].CreatedAt) {
			t.Errorf("entries not newest-first at index %d", i)
		}
	}
}

func TestPruneActivitiesKeepsNewest(t *testing.T) {
	q := testDB(t)
	ctx := context.Background()
	base := time.Now().UTC().Add(-time.Hour)

	var newestID string
	for i := 0; i < 10; i++ {
		a := model.Activity{
			ID:        uuid.NewString(),
			Action:    model.ActivityActionUpdated,
			Entity:    model.ActivityEntityEvent,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}
		newestID = a.ID
		if err := q.InsertActivity(ctx, a); err != nil {
			t.Fatalf("InsertActivity: %v", err)
		}
	}

	deleted, err := q.PruneActivities(ctx, 4)
	if err != nil {
		t.Fatalf("PruneActivities: %v", err)
	}
	if deleted != 6 {
		t.Errorf("deleted = %d, want 6", deleted)
	}

	recent, err := q.ListRecentActivities(ctx, 50)
	if err != nil {
		t.Fatalf("ListRecentActivities: %v", err)
	}
	if len(recent) != 4 {
		t.Fatalf("len = %d, want 4", len(recent))
	}
	if recent[0].ID != newestID {
		t.Error("newest entry did not survive prune")
	}
}

func TestSeedBootstrapAdminIdempotent(t *testing.T) {
	q := testDB(t)
	ctx := context.Background()

	arg := SeedParams{
		AdminEmail:    "ammar.ahmed.2024@aiu.edu.eg",
		AdminPassword: "correct horse battery staple",
	}
	if err := q.Seed(ctx, arg); err != nil {
		t.Fatalf("Seed: %v", err)
	}
	if err := q.Seed(ctx, arg); err != nil {
		t.Fatalf("Seed (second run): %v", err)
	}

	n, err := q.CountUsers(ctx)
	if err != nil {
		t.Fatalf("CountUsers: %v", err)
	}
	if n != 1 {
		t.Errorf("users = %d, want 1", n)
	}

	u, err := q.GetUserByEmail(ctx, arg.AdminEmail)
	if err != nil {
		t.Fatalf("GetUserByEmail: %v", err)
	}
	if !u.IsAdmin() {
		t.Error("bootstrap user should be an admin")
	}
}
