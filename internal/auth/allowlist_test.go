// Copyright (c) 2025-2026 Ammar Ahmed
// SPDX-License-Identifier: GPL-3.0-or-later

package auth

import (
	"context"
	"testing"
)

func TestIsAdminUser(t *testing.T) {
	tests := []struct {
		name  string
		email string
		want  bool
	}{
		{"allowlisted", "ammar.ahmed.2024@aiu.edu.eg", true},
		{"second entry", "ammar.ahmed.2025@aiu.edu.eg", true},
		{"unknown", "admin@example.org", false},
		{"empty", "", false},
		{"case variant rejected", "Ammar.Ahmed.2024@aiu.edu.eg", false},
		{"leading space rejected", " ammar.ahmed.2024@aiu.edu.eg", false},
		{"prefix only", "ammar.ahmed.2024@aiu.edu", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsAdminUser(tt.email); got != tt.want {
				t.Errorf("IsAdminUser(%q) = %v, want %v", tt.email, got, tt.want)
			}
		})
	}
}

func TestShouldElevate(t *testing.T) {
	background := context.Background()
	adminCtx := WithAccess(background, Access{Email: "someone@example.org", Admin: true})
	plainCtx := WithAccess(background, Access{Email: "someone@example.org"})

	tests := []struct {
		name  string
		ctx   context.Context
		email string
		want  bool
	}{
		{"no access no email", background, "", false},
		{"no access unknown email", background, "nobody@example.org", false},
		{"no access allowlisted email", background, "ammar.ahmed.2024@aiu.edu.eg", true},
		{"admin access no email", adminCtx, "", true},
		{"admin access unknown email", adminCtx, "nobody@example.org", true},
		{"plain access no email", plainCtx, "", false},
		{"plain access allowlisted email", plainCtx, "ammar.ahmed.2025@aiu.edu.eg", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ShouldElevate(tt.ctx, tt.email); got != tt.want {
				t.Errorf("ShouldElevate() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFromContext_Zero(t *testing.T) {
	a := FromContext(context.Background())
	if a.Admin || a.Email != "" {
		t.Errorf("FromContext on empty context = %+v, want zero Access", a)
	}
}

func TestFromContext_RoundTrip(t *testing.T) {
	want := Access{Email: "ammar.ahmed.2024@aiu.edu.eg", Admin: true}
	ctx := WithAccess(context.Background(), want)

	if got := FromContext(ctx); got != want {
		t.Errorf("FromContext() = %+v, want %+v", got, want)
	}
}
