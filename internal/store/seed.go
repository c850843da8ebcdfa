// Copyright (c) 2025-2026 Ammar Ahmed
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Ammar-Ma-Eid/QAIU-Website/internal/auth"
	"github.com/Ammar-Ma-Eid/QAIU-Website/internal/model"
)

// SeedParams controls first-run seeding.
type SeedParams struct {
	AdminEmail    string
	AdminPassword string
	AdminName     string
	Demo          bool // also insert demo content for an empty site
}

// Seed provisions the bootstrap admin account on an empty users table and,
// when requested, fills an empty database with demo content. It is a no-op
// for anything that already exists.
func (q *Queries) Seed(ctx context.Context, arg SeedParams) error {
	n, err := q.CountUsers(ctx)
	if err != nil {
		return fmt.Errorf("seed: count users: %w", err)
	}
	if n == 0 && arg.AdminEmail != "" && arg.AdminPassword != "" {
		hash, err := auth.HashPassword(arg.AdminPassword)
		if err != nil {
			return fmt.Errorf("seed: hash admin password: %w", err)
		}
		name := arg.AdminName
		if name == "" {
			name = "Administrator"
		}
		if _, err := q.CreateUser(ctx, CreateUserParams{
			Email:        arg.AdminEmail,
			PasswordHash: hash,
			Role:         model.RoleAdmin,
			Name:         name,
		}); err != nil {
			return fmt.Errorf("seed: create admin: %w", err)
		}
		slog.Info("seeded bootstrap admin", "email", arg.AdminEmail)
	}

	if !arg.Demo {
		return nil
	}
	return q.seedDemoContent(ctx)
}

func (q *Queries) seedDemoContent(ctx context.Context) error {
	if n, err := q.CountMembers(ctx); err != nil {
		return fmt.Errorf("seed: count members: %w", err)
	} else if n > 0 {
		return nil
	}

	const defaultImage = "/static/logo.png"
	members := []MemberParams{
		{Name: "Ammar Ahmed", Role: "President", Category: model.MemberCategoryLeader, ImageURL: defaultImage},
		{Name: "Sara Mostafa", Role: "Vice President", Category: model.MemberCategoryLeader, ImageURL: defaultImage},
		{Name: "Omar Khaled", Role: "Technical Lead", Category: model.MemberCategoryBoard, ImageURL: defaultImage},
		{Name: "Nour Hassan", Role: "Events Coordinator", Category: model.MemberCategoryBoard, ImageURL: defaultImage},
	}
	for _, m := range members {
		if _, err := q.CreateMember(ctx, m); err != nil {
			return fmt.Errorf("seed: create member: %w", err)
		}
	}

	now := time.Now().UTC()
	events := []EventParams{
		{
			Title:       "Intro to Quantum Computing",
			Date:        now.AddDate(0, 0, 14),
			Description: "A beginner-friendly walkthrough of qubits, superposition and entanglement.",
			Location:    "AIU Main Auditorium",
			Gallery:     "[]",
		},
		{
			Title:       "Qiskit Workshop",
			Date:        now.AddDate(0, -1, 0),
			Description: "Hands-on session building and running circuits on real quantum hardware.",
			Location:    "Lab B2",
			Gallery:     "[]",
		},
	}
	for _, e := range events {
		if _, err := q.CreateEvent(ctx, e); err != nil {
			return fmt.Errorf("seed: create event: %w", err)
		}
	}

	terms := []GlossaryTermParams{
		{Term: "Qubit", Definition: "The basic unit of quantum information, able to hold a superposition of 0 and 1.", Category: "Fundamentals", Featured: true, Icon: "atom"},
		{Term: "Superposition", Definition: "A quantum state that is a combination of multiple basis states at once.", Category: "Fundamentals", Featured: true, Icon: "layers"},
		{Term: "Entanglement", Definition: "A correlation between qubits that has no classical counterpart.", Category: "Fundamentals", Featured: false, Icon: "link"},
	}
	for _, t := range terms {
		if _, err := q.CreateGlossaryTerm(ctx, t); err != nil {
			return fmt.Errorf("seed: create glossary term: %w", err)
		}
	}

	slog.Info("seeded demo content",
		"members", len(members), "events", len(events), "glossary_terms", len(terms))
	return nil
}
