// Copyright (c) 2025-2026 Ammar Ahmed
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"time"

	"github.com/Ammar-Ma-Eid/QAIU-Website/internal/model"
)

const contactColumns = "id, name, email, phone, message, created_at"

func scanContactMessage(row interface{ Scan(...any) error }) (model.ContactMessage, error) {
	var c model.ContactMessage
	err := row.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.Message, &c.CreatedAt)
	return c, err
}

// ContactMessageParams holds the fields submitted through the contact form.
type ContactMessageParams struct {
	Name    string
	Email   string
	Phone   string
	Message string
}

// CreateContactMessage stores a contact form submission and returns the stored row.
func (q *Queries) CreateContactMessage(ctx context.Context, arg ContactMessageParams) (model.ContactMessage, error) {
	row := q.db.QueryRowContext(ctx, `
		INSERT INTO contact_messages (name, email, phone, message, created_at)
		VALUES (?, ?, ?, ?, ?)
		RETURNING `+contactColumns,
		arg.Name, arg.Email, arg.Phone, arg.Message, time.Now().UTC())
	return scanContactMessage(row)
}

// GetContactMessageByID fetches a contact message by primary key.
func (q *Queries) GetContactMessageByID(ctx context.Context, id int64) (model.ContactMessage, error) {
	row := q.db.QueryRowContext(ctx, `SELECT `+contactColumns+` FROM contact_messages WHERE id = ?`, id)
	return scanContactMessage(row)
}

// DeleteContactMessage removes a contact message by primary key.
func (q *Queries) DeleteContactMessage(ctx context.Context, id int64) error {
	_, err := q.db.ExecContext(ctx, `DELETE FROM contact_messages WHERE id = ?`, id)
	return err
}

// ListContactMessages returns all contact messages, newest first.
func (q *Queries) ListContactMessages(ctx context.Context) ([]model.ContactMessage, error) {
	rows, err := q.db.QueryContext(ctx, `SELECT `+contactColumns+` FROM contact_messages ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var msgs []model.ContactMessage
	for rows.Next() {
		c, err := scanContactMessage(rows)
		if err != nil {
			return nil, err
		}
		msgs = append(msgs, c)
	}
	return msgs, rows.Err()
}

// CountContactMessages returns the total number of contact messages.
func (q *Queries) CountContactMessages(ctx context.Context) (int64, error) {
	var n int64
	err := q.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM contact_messages`).Scan(&n)
	return n, err
}
