// Copyright (c) 2025-2026 Ammar Ahmed
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import "time"

// Activity actions.
const (
	ActivityActionCreated = "created"
	ActivityActionUpdated = "updated"
	ActivityActionDeleted = "deleted"
)

// Activity entities.
const (
	ActivityEntityMember   = "member"
	ActivityEntityEvent    = "event"
	ActivityEntityBlog     = "blog"
	ActivityEntityGlossary = "glossary"
	ActivityEntityContact  = "contact message"
)

// Activity represents one recorded content mutation shown in the admin
// dashboard's audit trail. Activities are immutable once created and only
// leave the log by being pruned past the retention cap.
type Activity struct {
	ID         string    `json:"id"`
	Action     string    `json:"action"`
	Entity     string    `json:"entity"`
	EntityName string    `json:"entityName"`
	Details    string    `json:"details,omitempty"`
	CreatedAt  time.Time `json:"timestamp"`
}
