// Copyright (c) 2025-2026 Ammar Ahmed
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"

	"github.com/Ammar-Ma-Eid/QAIU-Website/internal/model"
)

const activityColumns = "id, action, entity, entity_name, details, created_at"

func scanActivity(row interface{ Scan(...any) error }) (model.Activity, error) {
	var a model.Activity
	err := row.Scan(&a.ID, &a.Action, &a.Entity, &a.EntityName, &a.Details, &a.CreatedAt)
	return a, err
}

// InsertActivity stores one activity entry. The caller supplies the ID and
// timestamp so the recorder controls both.
func (q *Queries) InsertActivity(ctx context.Context, a model.Activity) error {
	_, err := q.db.ExecContext(ctx, `
		INSERT INTO activities (id, action, entity, entity_name, details, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		a.ID, a.Action, a.Entity, a.EntityName, a.Details, a.CreatedAt)
	return err
}

// ListRecentActivities returns up to limit entries, newest first. Entries
// sharing a timestamp are broken by insertion order, latest insert first.
func (q *Queries) ListRecentActivities(ctx context.Context, limit int) ([]model.Activity, error) {
	rows, err := q.db.QueryContext(ctx, `
		SELECT `+activityColumns+` FROM activities
		ORDER BY created_at DESC, rowid DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var activities []model.Activity
	for rows.Next() {
		a, err := scanActivity(rows)
		if err != nil {
			return nil, err
		}
		activities = append(activities, a)
	}
	return activities, rows.Err()
}

// PruneActivities deletes every entry outside the newest keep rows.
func (q *Queries) PruneActivities(ctx context.Context, keep int) (int64, error) {
	res, err := q.db.ExecContext(ctx, `
		DELETE FROM activities WHERE id NOT IN (
			SELECT id FROM activities ORDER BY created_at DESC, rowid DESC LIMIT ?
		)`, keep)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// DeleteAllActivities empties the activity log.
func (q *Queries) DeleteAllActivities(ctx context.Context) error {
	_, err := q.db.ExecContext(ctx, `DELETE FROM activities`)
	return err
}

// CountActivities returns the number of stored activity entries.
func (q *Queries) CountActivities(ctx context.Context) (int64, error) {
	var n int64
	err := q.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM activities`).Scan(&n)
	return n, err
}
