// Copyright (c) 2025-2026 Ammar Ahmed
// SPDX-License-Identifier: GPL-3.0-or-later

// Package cache provides the rendered-page cache used by the public site.
// Two implementations exist: an in-process memory cache and a Redis cache
// for multi-instance deployments. Both store []byte values.
package cache

import (
	"context"
	"time"
)

// Cache is the interface both implementations satisfy. All implementations
// are safe for concurrent use.
type Cache interface {
	// Get returns the value for key, or ErrCacheMiss when absent or expired.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key. A zero ttl uses the cache's default.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes a key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// DeleteByPrefix removes every key starting with prefix.
	DeleteByPrefix(ctx context.Context, prefix string) error

	// Clear removes all entries.
	Clear(ctx context.Context) error

	// Close releases any resources held by the cache.
	Close() error
}

// Error is the error type for cache operations.
type Error string

func (e Error) Error() string { return string(e) }

const (
	// ErrCacheMiss indicates the key was not found or has expired.
	ErrCacheMiss Error = "cache miss"

	// ErrCacheClosed indicates the cache has been closed.
	ErrCacheClosed Error = "cache closed"
)

// Page cache key prefixes, one per public content area. Invalidation after
// an admin mutation deletes by prefix so list and detail pages go together.
const (
	KeyPrefixMembers  = "page:members:"
	KeyPrefixEvents   = "page:events:"
	KeyPrefixPosts    = "page:posts:"
	KeyPrefixGlossary = "page:glossary:"
	KeyPrefixHome     = "page:home:"
)
