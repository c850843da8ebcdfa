// Copyright (c) 2025-2026 Ammar Ahmed
// SPDX-License-Identifier: GPL-3.0-or-later

package auth

import "context"

// Access describes the authorization of the caller behind one request.
// It is threaded through context.Context by the auth middleware rather than
// held in process-wide state, so concurrent requests cannot leak privilege
// into each other.
type Access struct {
	Email string
	Admin bool
}

type accessKey struct{}

// WithAccess returns a context carrying the given access value.
func WithAccess(ctx context.Context, a Access) context.Context {
	return context.WithValue(ctx, accessKey{}, a)
}

// FromContext returns the access value carried by ctx.
// A context without an access value yields the zero Access (no privilege).
func FromContext(ctx context.Context) Access {
	a, _ := ctx.Value(accessKey{}).(Access)
	return a
}

// ShouldElevate reports whether data access for this request may bypass
// row-level restrictions: either the request context carries admin access,
// or the supplied email is on the admin allowlist. An empty email with no
// admin context yields false.
func ShouldElevate(ctx context.Context, email string) bool {
	if FromContext(ctx).Admin {
		return true
	}
	if email == "" {
		return false
	}
	return IsAdminUser(email)
}
