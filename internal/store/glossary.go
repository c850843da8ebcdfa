// Copyright (c) 2025-2026 Ammar Ahmed
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"time"

	"github.com/Ammar-Ma-Eid/QAIU-Website/internal/model"
)

const glossaryColumns = "id, term, definition, category, featured, icon, created_at, updated_at"

func scanGlossaryTerm(row interface{ Scan(...any) error }) (model.GlossaryTerm, error) {
	var g model.GlossaryTerm
	err := row.Scan(&g.ID, &g.Term, &g.Definition, &g.Category, &g.Featured, &g.Icon, &g.CreatedAt, &g.UpdatedAt)
	return g, err
}

// GlossaryTermParams holds the writable fields of a glossary term.
type GlossaryTermParams struct {
	Term       string
	Definition string
	Category   string
	Featured   bool
	Icon       string
}

// CreateGlossaryTerm inserts a new glossary term and returns the stored row.
func (q *Queries) CreateGlossaryTerm(ctx context.Context, arg GlossaryTermParams) (model.GlossaryTerm, error) {
	now := time.Now().UTC()
	row := q.db.QueryRowContext(ctx, `
		INSERT INTO glossary_terms (term, definition, category, featured, icon, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		RETURNING `+glossaryColumns,
		arg.Term, arg.Definition, arg.Category, arg.Featured, arg.Icon, now, now)
	return scanGlossaryTerm(row)
}

// UpdateGlossaryTerm overwrites a glossary term's fields and returns the stored row.
func (q *Queries) UpdateGlossaryTerm(ctx context.Context, id int64, arg GlossaryTermParams) (model.GlossaryTerm, error) {
	row := q.db.QueryRowContext(ctx, `
		UPDATE glossary_terms
		SET term = ?, definition = ?, category = ?, featured = ?, icon = ?, updated_at = ?
		WHERE id = ?
		RETURNING `+glossaryColumns,
		arg.Term, arg.Definition, arg.Category, arg.Featured, arg.Icon, time.Now().UTC(), id)
	return scanGlossaryTerm(row)
}

// DeleteGlossaryTerm removes a glossary term by primary key.
func (q *Queries) DeleteGlossaryTerm(ctx context.Context, id int64) error {
	_, err := q.db.ExecContext(ctx, `DELETE FROM glossary_terms WHERE id = ?`, id)
	return err
}

// GetGlossaryTermByID fetches a glossary term by primary key.
func (q *Queries) GetGlossaryTermByID(ctx context.Context, id int64) (model.GlossaryTerm, error) {
	row := q.db.QueryRowContext(ctx, `SELECT `+glossaryColumns+` FROM glossary_terms WHERE id = ?`, id)
	return scanGlossaryTerm(row)
}

func (q *Queries) listGlossaryTerms(ctx context.Context, query string, args ...any) ([]model.GlossaryTerm, error) {
	rows, err := q.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var terms []model.GlossaryTerm
	for rows.Next() {
		g, err := scanGlossaryTerm(rows)
		if err != nil {
			return nil, err
		}
		terms = append(terms, g)
	}
	return terms, rows.Err()
}

// ListGlossaryTerms returns all terms ordered by category then term.
func (q *Queries) ListGlossaryTerms(ctx context.Context) ([]model.GlossaryTerm, error) {
	return q.listGlossaryTerms(ctx, `SELECT `+glossaryColumns+` FROM glossary_terms ORDER BY category, term`)
}

// ListFeaturedGlossaryTerms returns featured terms ordered by term.
func (q *Queries) ListFeaturedGlossaryTerms(ctx context.Context) ([]model.GlossaryTerm, error) {
	return q.listGlossaryTerms(ctx, `SELECT `+glossaryColumns+` FROM glossary_terms WHERE featured = 1 ORDER BY term`)
}

// CountGlossaryTerms returns the total number of glossary terms.
func (q *Queries) CountGlossaryTerms(ctx context.Context) (int64, error) {
	var n int64
	err := q.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM glossary_terms`).Scan(&n)
	return n, err
}
