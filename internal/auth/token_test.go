// Copyright (c) 2025-2026 Ammar Ahmed
// SPDX-License-Identifier: GPL-3.0-or-later

package auth

import "testing"

var tokenSecret = []byte("test-secret-key-32-bytes-long!!!")

func TestIssueAndVerifyToken(t *testing.T) {
	token, err := IssueToken(tokenSecret, "ammar.ahmed.2024@aiu.edu.eg", "Ammar", true)
	if err != nil {
		t.Fatalf("IssueToken() error: %v", err)
	}

	claims, err := VerifyToken(tokenSecret, token)
	if err != nil {
		t.Fatalf("VerifyToken() error: %v", err)
	}

	if claims.Email != "ammar.ahmed.2024@aiu.edu.eg" {
		t.Errorf("Email = %q, want allowlisted address", claims.Email)
	}
	if claims.Name != "Ammar" {
		t.Errorf("Name = %q, want %q", claims.Name, "Ammar")
	}
	if !claims.Admin {
		t.Error("Admin = false, want true")
	}
}

func TestVerifyToken_WrongSecret(t *testing.T) {
	token, err := IssueToken(tokenSecret, "user@example.org", "", false)
	if err != nil {
		t.Fatalf("IssueToken() error: %v", err)
	}

	if _, err := VerifyToken([]byte("a-different-32-byte-secret-key!!"), token); err == nil {
		t.Error("VerifyToken() should fail with wrong secret")
	}
}

func TestVerifyToken_Garbage(t *testing.T) {
	if _, err := VerifyToken(tokenSecret, "not.a.token"); err == nil {
		t.Error("VerifyToken() should fail on malformed input")
	}
}
