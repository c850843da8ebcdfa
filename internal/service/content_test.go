// Copyright (c) 2025-2026 Ammar Ahmed
// SPDX-License-Identifier: GPL-3.0-or-later

package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ammar-Ma-Eid/QAIU-Website/internal/activity"
	"github.com/Ammar-Ma-Eid/QAIU-Website/internal/auth"
	"github.com/Ammar-Ma-Eid/QAIU-Website/internal/cache"
	"github.com/Ammar-Ma-Eid/QAIU-Website/internal/model"
	"github.com/Ammar-Ma-Eid/QAIU-Website/internal/store"
)

func testService(t *testing.T) (*ContentService, *activity.Recorder, cache.Cache) {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, store.Migrate(db))

	q := store.New(db)
	rec := activity.NewRecorder(q, nil)
	c := cache.NewMemoryCache(time.Minute)
	t.Cleanup(func() { _ = c.Close() })
	return NewContentService(q, rec, c, nil), rec, c
}

func adminCtx() context.Context {
	return auth.WithAccess(context.Background(), auth.Access{
		Email: "ammar.ahmed.2024@aiu.edu.eg",
		Admin: true,
	})
}

func TestMutationRequiresAdminAccess(t *testing.T) {
	svc, rec, _ := testService(t)

	// plain context carries no privilege
	res := svc.CreateMember(context.Background(), store.MemberParams{
		Name: "Intruder", Role: "President", Category: model.MemberCategoryLeader,
	})
	assert.False(t, res.Success)
	assert.Equal(t, msgNotAuthorized, res.Message)

	// a signed-in non-admin is rejected the same way
	ctx := auth.WithAccess(context.Background(), auth.Access{Email: "someone@aiu.edu.eg"})
	res = svc.DeleteMember(ctx, 1)
	assert.False(t, res.Success)

	entries, err := rec.Recent(context.Background())
	require.NoError(t, err)
	assert.Empty(t, entries, "rejected mutations must not be recorded")
}

func TestCreateMemberRecordsActivity(t *testing.T) {
	svc, rec, _ := testService(t)
	ctx := adminCtx()

	res := svc.CreateMember(ctx, store.MemberParams{
		Name: "Ammar Ahmed", Role: "President", Category: model.MemberCategoryLeader,
	})
	require.True(t, res.Success, res.Message)

	entries, err := rec.Recent(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, model.ActivityActionCreated, entries[0].Action)
	assert.Equal(t, model.ActivityEntityMember, entries[0].Entity)
	assert.Equal(t, "Ammar Ahmed", entries[0].EntityName)
	assert.Equal(t, "Added new leader member with role: President", entries[0].Details)
}

func TestCreateEventActivityWording(t *testing.T) {
	svc, rec, _ := testService(t)
	ctx := adminCtx()

	date := time.Date(2026, time.March, 14, 18, 0, 0, 0, time.UTC)
	res := svc.CreateEvent(ctx, store.EventParams{Title: "Pi Day Lecture", Date: date, Gallery: "[]"})
	require.True(t, res.Success, res.Message)

	entries, err := rec.Recent(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Created new event for March 14, 2026", entries[0].Details)
}

func TestCreatePostActivityWording(t *testing.T) {
	svc, rec, _ := testService(t)
	ctx := adminCtx()

	res := svc.CreatePost(ctx, store.PostParams{
		Title: "Shor in Practice", Slug: "shor-in-practice",
		Author: "Sara Mostafa", Date: time.Now().UTC(),
	})
	require.True(t, res.Success, res.Message)

	entries, err := rec.Recent(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Published new blog post by Sara Mostafa", entries[0].Details)
}

func TestDeleteCapturesNameBeforeRemoval(t *testing.T) {
	svc, rec, _ := testService(t)
	ctx := adminCtx()

	require.True(t, svc.CreateGlossaryTerm(ctx, store.GlossaryTermParams{
		Term: "Qubit", Definition: "Basic unit.", Category: "Fundamentals",
	}).Success)

	res := svc.DeleteGlossaryTerm(ctx, 1)
	require.True(t, res.Success, res.Message)

	entries, err := rec.Recent(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, model.ActivityActionDeleted, entries[0].Action)
	assert.Equal(t, "Qubit", entries[0].EntityName)
}

func TestDeleteMissingRowFails(t *testing.T) {
	svc, rec, _ := testService(t)
	ctx := adminCtx()

	res := svc.DeleteEvent(ctx, 9999)
	assert.False(t, res.Success)
	assert.Equal(t, "Failed to delete event", res.Message)

	entries, err := rec.Recent(ctx)
	require.NoError(t, err)
	assert.Empty(t, entries, "failed mutations must not be recorded")
}

func TestDuplicateSlugYieldsFailedResult(t *testing.T) {
	svc, _, _ := testService(t)
	ctx := adminCtx()

	arg := store.PostParams{Title: "One", Slug: "same-slug", Author: "A", Date: time.Now().UTC()}
	require.True(t, svc.CreatePost(ctx, arg).Success)

	res := svc.CreatePost(ctx, arg)
	assert.False(t, res.Success)
	assert.Equal(t, "Failed to create blog post", res.Message)
}

func TestMutationInvalidatesPageCache(t *testing.T) {
	svc, _, c := testService(t)
	ctx := adminCtx()

	require.NoError(t, c.Set(ctx, cache.KeyPrefixMembers+"list", []byte("stale"), 0))
	require.NoError(t, c.Set(ctx, cache.KeyPrefixHome+"/", []byte("stale"), 0))
	require.NoError(t, c.Set(ctx, cache.KeyPrefixPosts+"list", []byte("fresh"), 0))

	require.True(t, svc.CreateMember(ctx, store.MemberParams{
		Name: "Nour Hassan", Role: "Coordinator", Category: model.MemberCategoryBoard,
	}).Success)

	_, err := c.Get(ctx, cache.KeyPrefixMembers+"list")
	assert.Equal(t, cache.ErrCacheMiss, err)
	_, err = c.Get(ctx, cache.KeyPrefixHome+"/")
	assert.Equal(t, cache.ErrCacheMiss, err)
	_, err = c.Get(ctx, cache.KeyPrefixPosts+"list")
	assert.NoError(t, err, "unrelated prefixes must survive")
}

func TestValidateContactMessage(t *testing.T) {
	valid := store.ContactMessageParams{
		Name:    "Visitor",
		Email:   "visitor@example.com",
		Message: "I would like to join the club.",
	}

	tests := []struct {
		name    string
		mutate  func(*store.ContactMessageParams)
		problem bool
	}{
		{"valid", func(*store.ContactMessageParams) {}, false},
		{"short name", func(a *store.ContactMessageParams) { a.Name = "V" }, true},
		{"blank name", func(a *store.ContactMessageParams) { a.Name = "   " }, true},
		{"bad email", func(a *store.ContactMessageParams) { a.Email = "not-an-email" }, true},
		{"short message", func(a *store.ContactMessageParams) { a.Message = "hi" }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			arg := valid
			tt.mutate(&arg)
			got := ValidateContactMessage(arg)
			if tt.problem {
				assert.NotEmpty(t, got)
			} else {
				assert.Empty(t, got)
			}
		})
	}
}

func TestSubmitContactMessageNeedsNoAuth(t *testing.T) {
	svc, rec, _ := testService(t)

	res := svc.SubmitContactMessage(context.Background(), store.ContactMessageParams{
		Name:    "Visitor",
		Email:   "visitor@example.com",
		Message: "I would like to join the club.",
	})
	require.True(t, res.Success, res.Message)

	entries, err := rec.Recent(context.Background())
	require.NoError(t, err)
	assert.Empty(t, entries, "contact submissions are not admin activity")
}
