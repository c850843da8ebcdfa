// Copyright (c) 2025-2026 Ammar Ahmed
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"time"

	"github.com/Ammar-Ma-Eid/QAIU-Website/internal/model"
)

const postColumns = "id, title, slug, author, date, excerpt, content, image_url, created_at, updated_at"

func scanPost(row interface{ Scan(...any) error }) (model.BlogPost, error) {
	var p model.BlogPost
	err := row.Scan(&p.ID, &p.Title, &p.Slug, &p.Author, &p.Date, &p.Excerpt, &p.Content, &p.ImageURL, &p.CreatedAt, &p.UpdatedAt)
	return p, err
}

// PostParams holds the writable fields of a blog post.
type PostParams struct {
	Title    string
	Slug     string
	Author   string
	Date     time.Time
	Excerpt  string
	Content  string
	ImageURL string
}

// CreatePost inserts a new blog post and returns the stored row.
func (q *Queries) CreatePost(ctx context.Context, arg PostParams) (model.BlogPost, error) {
	now := time.Now().UTC()
	row := q.db.QueryRowContext(ctx, `
		INSERT INTO posts (title, slug, author, date, excerpt, content, image_url, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING `+postColumns,
		arg.Title, arg.Slug, arg.Author, arg.Date, arg.Excerpt, arg.Content, arg.ImageURL, now, now)
	return scanPost(row)
}

// UpdatePost overwrites a blog post's fields and returns the stored row.
func (q *Queries) UpdatePost(ctx context.Context, id int64, arg PostParams) (model.BlogPost, error) {
	row := q.db.QueryRowContext(ctx, `
		UPDATE posts
		SET title = ?, slug = ?, author = ?, date = ?, excerpt = ?, content = ?, image_url = ?, updated_at = ?
		WHERE id = ?
		RETURNING `+postColumns,
		arg.Title, arg.Slug, arg.Author, arg.Date, arg.Excerpt, arg.Content, arg.ImageURL, time.Now().UTC(), id)
	return scanPost(row)
}

// DeletePost removes a blog post by primary key.
func (q *Queries) DeletePost(ctx context.Context, id int64) error {
	_, err := q.db.ExecContext(ctx, `DELETE FROM posts WHERE id = ?`, id)
	return err
}

// GetPostByID fetches a blog post by primary key.
func (q *Queries) GetPostByID(ctx context.Context, id int64) (model.BlogPost, error) {
	row := q.db.QueryRowContext(ctx, `SELECT `+postColumns+` FROM posts WHERE id = ?`, id)
	return scanPost(row)
}

// GetPostBySlug fetches a blog post by its URL slug.
func (q *Queries) GetPostBySlug(ctx context.Context, slug string) (model.BlogPost, error) {
	row := q.db.QueryRowContext(ctx, `SELECT `+postColumns+` FROM posts WHERE slug = ?`, slug)
	return scanPost(row)
}

// ListPosts returns all blog posts, newest first.
func (q *Queries) ListPosts(ctx context.Context) ([]model.BlogPost, error) {
	rows, err := q.db.QueryContext(ctx, `SELECT `+postColumns+` FROM posts ORDER BY date DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []model.BlogPost
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}
	return posts, rows.Err()
}

// CountPosts returns the total number of blog posts.
func (q *Queries) CountPosts(ctx context.Context) (int64, error) {
	var n int64
	err := q.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM posts`).Scan(&n)
	return n, err
}
