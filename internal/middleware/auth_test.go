// Copyright (c) 2025-2026 Ammar Ahmed
// SPDX-License-Identifier: GPL-3.0-or-later

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Ammar-Ma-Eid/QAIU-Website/internal/auth"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestRequireAdmin(t *testing.T) {
	handler := RequireAdmin()(okHandler())

	tests := []struct {
		name       string
		access     *auth.Access
		wantStatus int
	}{
		{"anonymous redirects to login", nil, http.StatusSeeOther},
		{"signed-in non-admin forbidden", &auth.Access{Email: "student@aiu.edu.eg"}, http.StatusForbidden},
		{"admin passes", &auth.Access{Email: "ammar.ahmed.2024@aiu.edu.eg", Admin: true}, http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/admin", nil)
			if tt.access != nil {
				req = req.WithContext(auth.WithAccess(req.Context(), *tt.access))
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if tt.wantStatus == http.StatusSeeOther && rec.Header().Get("Location") != "/login" {
				t.Errorf("Location = %q, want /login", rec.Header().Get("Location"))
			}
		})
	}
}

func TestAccessIsPerRequest(t *testing.T) {
	handler := RequireAdmin()(okHandler())

	adminReq := httptest.NewRequest(http.MethodGet, "/admin", nil)
	adminReq = adminReq.WithContext(auth.WithAccess(adminReq.Context(),
		auth.Access{Email: "ammar.ahmed.2024@aiu.edu.eg", Admin: true}))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, adminReq)
	if rec.Code != http.StatusOK {
		t.Fatalf("admin request: status = %d, want 200", rec.Code)
	}

	// a following request without access must not inherit the elevation
	plainReq := httptest.NewRequest(http.MethodGet, "/admin", nil)
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, plainReq)
	if rec.Code != http.StatusSeeOther {
		t.Errorf("plain request: status = %d, want 303", rec.Code)
	}
}

func TestSecurityHeaders(t *testing.T) {
	handler := SecurityHeaders(DefaultSecurityHeadersConfig(false))(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	for header, want := range map[string]string{
		"X-Content-Type-Options": "nosniff",
		"X-Frame-Options":        "SAMEORIGIN",
		"Referrer-Policy":        "strict-origin-when-cross-origin",
	} {
		if got := rec.Header().Get(header); got != want {
			t.Errorf("%s = %q, want %q", header, got, want)
		}
	}
	if rec.Header().Get("Content-Security-Policy") == "" {
		t.Error("Content-Security-Policy missing")
	}
	if rec.Header().Get("Strict-Transport-Security") == "" {
		t.Error("HSTS missing in production mode")
	}
}

func TestSecurityHeadersDevSkipsHSTS(t *testing.T) {
	handler := SecurityHeaders(DefaultSecurityHeadersConfig(true))(okHandler())

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Header().Get("Strict-Transport-Security") != "" {
		t.Error("HSTS should be disabled in development")
	}
}
