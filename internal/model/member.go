// Copyright (c) 2025-2026 Ammar Ahmed
// SPDX-License-Identifier: GPL-3.0-or-later

// Package model defines domain models and types used throughout the
// application including Member, Event, BlogPost, GlossaryTerm, Activity
// and User structures.
package model

import "time"

// Member categories.
const (
	MemberCategoryLeader = "leader"
	MemberCategoryBoard  = "board"
)

// Member represents a club team member shown on the about page.
type Member struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Role        string    `json:"role"`
	Category    string    `json:"category"` // leader or board
	ImageURL    string    `json:"image_url"`
	Email       string    `json:"email"`
	LinkedinURL string    `json:"linkedin_url"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// IsLeader returns true if the member belongs to the leadership team.
func (m *Member) IsLeader() bool {
	return m.Category == MemberCategoryLeader
}
