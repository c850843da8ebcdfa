// Copyright (c) 2025-2026 Ammar Ahmed
// SPDX-License-Identifier: GPL-3.0-or-later

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestAccountLockoutAfterMaxFailures(t *testing.T) {
	lp := NewLoginProtection(LoginProtectionConfig{
		MaxFailedAttempts: 3,
		LockoutDuration:   time.Minute,
		AttemptWindow:     time.Minute,
	})
	email := "ammar.ahmed.2024@aiu.edu.eg"

	if locked, _ := lp.RecordFailedAttempt(email); locked {
		t.Fatal("locked after 1 failure")
	}
	if locked, _ := lp.RecordFailedAttempt(email); locked {
		t.Fatal("locked after 2 failures")
	}
	locked, d := lp.RecordFailedAttempt(email)
	if !locked {
		t.Fatal("not locked after 3 failures")
	}
	if d != time.Minute {
		t.Errorf("lock duration = %v, want 1m", d)
	}

	if locked, _ := lp.IsAccountLocked(email); !locked {
		t.Error("IsAccountLocked should report locked")
	}
}

func TestSuccessfulLoginClearsAttempts(t *testing.T) {
	lp := NewLoginProtection(LoginProtectionConfig{
		MaxFailedAttempts: 2,
		LockoutDuration:   time.Minute,
		AttemptWindow:     time.Minute,
	})
	email := "user@aiu.edu.eg"

	lp.RecordFailedAttempt(email)
	lp.RecordSuccessfulLogin(email)

	// counting starts over
	if locked, _ := lp.RecordFailedAttempt(email); locked {
		t.Error("attempts were not cleared by a successful login")
	}
}

func TestLoginRateLimitByIP(t *testing.T) {
	lp := NewLoginProtection(LoginProtectionConfig{
		IPRateLimit: 0.001, // effectively only the burst passes
		IPBurst:     2,
	})
	handler := lp.Middleware()(okHandler())

	post := func() int {
		req := httptest.NewRequest(http.MethodPost, "/login", nil)
		req.Header.Set("X-Real-IP", "203.0.113.9")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec.Code
	}

	if post() != http.StatusOK || post() != http.StatusOK {
		t.Fatal("burst requests should pass")
	}
	if post() != http.StatusTooManyRequests {
		t.Error("request over burst should be rate limited")
	}

	// GETs to the login page are never limited
	req := httptest.NewRequest(http.MethodGet, "/login", nil)
	req.Header.Set("X-Real-IP", "203.0.113.9")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("GET status = %d, want 200", rec.Code)
	}
}
