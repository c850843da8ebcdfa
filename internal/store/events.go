// Copyright (c) 2025-2026 Ammar Ahmed
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"time"

	"github.com/Ammar-Ma-Eid/QAIU-Website/internal/model"
)

const eventColumns = "id, title, date, description, image_url, location, gallery, created_at, updated_at"

func scanEvent(row interface{ Scan(...any) error }) (model.Event, error) {
	var e model.Event
	err := row.Scan(&e.ID, &e.Title, &e.Date, &e.Description, &e.ImageURL, &e.Location, &e.Gallery, &e.CreatedAt, &e.UpdatedAt)
	return e, err
}

// EventParams holds the writable fields of an event.
type EventParams struct {
	Title       string
	Date        time.Time
	Description string
	ImageURL    string
	Location    string
	Gallery     string // JSON array of model.GalleryImage
}

// CreateEvent inserts a new event and returns the stored row.
func (q *Queries) CreateEvent(ctx context.Context, arg EventParams) (model.Event, error) {
	now := time.Now().UTC()
	row := q.db.QueryRowContext(ctx, `
		INSERT INTO events (title, date, description, image_url, location, gallery, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING `+eventColumns,
		arg.Title, arg.Date, arg.Description, arg.ImageURL, arg.Location, arg.Gallery, now, now)
	return scanEvent(row)
}

// UpdateEvent overwrites an event's fields and returns the stored row.
func (q *Queries) UpdateEvent(ctx context.Context, id int64, arg EventParams) (model.Event, error) {
	row := q.db.QueryRowContext(ctx, `
		UPDATE events
		SET title = ?, date = ?, description = ?, image_url = ?, location = ?, gallery = ?, updated_at = ?
		WHERE id = ?
		RETURNING `+eventColumns,
		arg.Title, arg.Date, arg.Description, arg.ImageURL, arg.Location, arg.Gallery, time.Now().UTC(), id)
	return scanEvent(row)
}

// DeleteEvent removes an event by primary key.
func (q *Queries) DeleteEvent(ctx context.Context, id int64) error {
	_, err := q.db.ExecContext(ctx, `DELETE FROM events WHERE id = ?`, id)
	return err
}

// GetEventByID fetches an event by primary key.
func (q *Queries) GetEventByID(ctx context.Context, id int64) (model.Event, error) {
	row := q.db.QueryRowContext(ctx, `SELECT `+eventColumns+` FROM events WHERE id = ?`, id)
	return scanEvent(row)
}

func (q *Queries) listEvents(ctx context.Context, query string, args ...any) ([]model.Event, error) {
	rows, err := q.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []model.Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

// ListEvents returns all events, newest first.
func (q *Queries) ListEvents(ctx context.Context) ([]model.Event, error) {
	return q.listEvents(ctx, `SELECT `+eventColumns+` FROM events ORDER BY date DESC`)
}

// ListUpcomingEvents returns events after the given instant, soonest first.
func (q *Queries) ListUpcomingEvents(ctx context.Context, now time.Time) ([]model.Event, error) {
	return q.listEvents(ctx, `SELECT `+eventColumns+` FROM events WHERE date > ? ORDER BY date ASC`, now)
}

// ListPastEvents returns events at or before the given instant, latest first.
func (q *Queries) ListPastEvents(ctx context.Context, now time.Time) ([]model.Event, error) {
	return q.listEvents(ctx, `SELECT `+eventColumns+` FROM events WHERE date <= ? ORDER BY date DESC`, now)
}

// CountEvents returns the total number of events.
func (q *Queries) CountEvents(ctx context.Context) (int64, error) {
	var n int64
	err := q.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM events`).Scan(&n)
	return n, err
}
