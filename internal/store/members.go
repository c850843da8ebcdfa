// Copyright (c) 2025-2026 Ammar Ahmed
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"time"

	"github.com/Ammar-Ma-Eid/QAIU-Website/internal/model"
)

const memberColumns = "id, name, role, category, image_url, email, linkedin_url, created_at, updated_at"

func scanMember(row interface{ Scan(...any) error }) (model.Member, error) {
	var m model.Member
	err := row.Scan(&m.ID, &m.Name, &m.Role, &m.Category, &m.ImageURL, &m.Email, &m.LinkedinURL, &m.CreatedAt, &m.UpdatedAt)
	return m, err
}

// MemberParams holds the writable fields of a member.
type MemberParams struct {
	Name        string
	Role        string
	Category    string
	ImageURL    string
	Email       string
	LinkedinURL string
}

// CreateMember inserts a new member and returns the stored row.
func (q *Queries) CreateMember(ctx context.Context, arg MemberParams) (model.Member, error) {
	now := time.Now().UTC()
	row := q.db.QueryRowContext(ctx, `
		INSERT INTO members (name, role, category, image_url, email, linkedin_url, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING `+memberColumns,
		arg.Name, arg.Role, arg.Category, arg.ImageURL, arg.Email, arg.LinkedinURL, now, now)
	return scanMember(row)
}

// UpdateMember overwrites a member's fields and returns the stored row.
func (q *Queries) UpdateMember(ctx context.Context, id int64, arg MemberParams) (model.Member, error) {
	row := q.db.QueryRowContext(ctx, `
		UPDATE members
		SET name = ?, role = ?, category = ?, image_url = ?, email = ?, linkedin_url = ?, updated_at = ?
		WHERE id = ?
		RETURNING `+memberColumns,
		arg.Name, arg.Role, arg.Category, arg.ImageURL, arg.Email, arg.LinkedinURL, time.Now().UTC(), id)
	return scanMember(row)
}

// DeleteMember removes a member by primary key.
func (q *Queries) DeleteMember(ctx context.Context, id int64) error {
	_, err := q.db.ExecContext(ctx, `DELETE FROM members WHERE id = ?`, id)
	return err
}

// GetMemberByID fetches a member by primary key.
func (q *Queries) GetMemberByID(ctx context.Context, id int64) (model.Member, error) {
	row := q.db.QueryRowContext(ctx, `SELECT `+memberColumns+` FROM members WHERE id = ?`, id)
	return scanMember(row)
}

// ListMembers returns all members, leadership first, then by name.
func (q *Queries) ListMembers(ctx context.Context) ([]model.Member, error) {
	rows, err := q.db.QueryContext(ctx, `
		SELECT `+memberColumns+` FROM members
		ORDER BY CASE category WHEN 'leader' THEN 0 ELSE 1 END, name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var members []model.Member
	for rows.Next() {
		m, err := scanMember(rows)
		if err != nil {
			return nil, err
		}
		members = append(members, m)
	}
	return members, rows.Err()
}

// CountMembers returns the total number of members.
func (q *Queries) CountMembers(ctx context.Context) (int64, error) {
	var n int64
	err := q.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM members`).Scan(&n)
	return n, err
}
