// Copyright (c) 2025-2026 Ammar Ahmed
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import "time"

// GlossaryTerm represents one entry in the club's quantum-computing glossary.
type GlossaryTerm struct {
	ID         int64     `json:"id"`
	Term       string    `json:"term"`
	Definition string    `json:"definition"`
	Category   string    `json:"category"`
	Featured   bool      `json:"featured"`
	Icon       string    `json:"icon"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// GroupTermsByCategory groups terms into a category-keyed map, preserving
// the input order within each category.
func GroupTermsByCategory(terms []GlossaryTerm) map[string][]GlossaryTerm {
	grouped := make(map[string][]GlossaryTerm)
	for _, t := range terms {
		grouped[t.Category] = append(grouped[t.Category], t)
	}
	return grouped
}
