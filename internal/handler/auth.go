// Copyright (c) 2025-2026 Ammar Ahmed
// SPDX-License-Identifier: GPL-3.0-or-later

// Package handler contains the HTTP handlers for the public site, the admin
// dashboard and the JSON API.
package handler

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/alexedwards/scs/v2"

	"github.com/Ammar-Ma-Eid/QAIU-Website/internal/auth"
	"github.com/Ammar-Ma-Eid/QAIU-Website/internal/middleware"
	"github.com/Ammar-Ma-Eid/QAIU-Website/internal/model"
	"github.com/Ammar-Ma-Eid/QAIU-Website/internal/render"
	"github.com/Ammar-Ma-Eid/QAIU-Website/internal/store"
)

// SessionKeyUserID is the session key for storing the authenticated user ID.
const SessionKeyUserID = middleware.SessionKeyUserID

// AuthHandler handles login, logout and the token-based API auth endpoints.
type AuthHandler struct {
	queries         *store.Queries
	renderer        *render.Renderer
	sessionManager  *scs.SessionManager
	loginProtection *middleware.LoginProtection
	tokenSecret     []byte
}

// NewAuthHandler creates a new AuthHandler. The session secret doubles as
// the token signing secret.
func NewAuthHandler(db *sql.DB, renderer *render.Renderer, sm *scs.SessionManager, lp *middleware.LoginProtection, tokenSecret []byte) *AuthHandler {
	return &AuthHandler{
		queries:         store.New(db),
		renderer:        renderer,
		sessionManager:  sm,
		loginProtection: lp,
		tokenSecret:     tokenSecret,
	}
}

// LoginForm renders the login page. Already-authenticated users go straight
// to the dashboard.
func (h *AuthHandler) LoginForm(w http.ResponseWriter, r *http.Request) {
	if h.sessionManager.GetInt64(r.Context(), SessionKeyUserID) > 0 {
		http.Redirect(w, r, redirectAdmin, http.StatusSeeOther)
		return
	}

	if err := h.renderer.Render(w, r, "auth/login", render.TemplateData{Title: "Sign In"}); err != nil {
		logAndInternalError(w, "failed to render login page", "error", err)
	}
}

// Login handles the login form submission.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if !parseFormOrRedirect(w, r, h.renderer, redirectLogin) {
		return
	}

	email := r.FormValue("email")
	password := r.FormValue("password")
	if email == "" || password == "" {
		flashError(w, r, h.renderer, redirectLogin, "Email and password are required")
		return
	}

	if locked, remaining := h.loginProtection.IsAccountLocked(email); locked {
		flashError(w, r, h.renderer, redirectLogin,
			fmt.Sprintf("Account locked. Try again in %s", formatDuration(remaining)))
		return
	}

	user, ok := h.verifyCredentials(r, email, password)
	if !ok {
		if locked, lockDuration := h.loginProtection.RecordFailedAttempt(email); locked {
			flashError(w, r, h.renderer, redirectLogin,
				fmt.Sprintf("Too many failed attempts. Account locked for %s", formatDuration(lockDuration)))
			return
		}
		flashError(w, r, h.renderer, redirectLogin, "Invalid email or password")
		return
	}

	h.loginProtection.RecordSuccessfulLogin(email)

	// Renew the session token on privilege change
	if err := h.sessionManager.RenewToken(r.Context()); err != nil {
		logAndInternalError(w, "session renewal error", "error", err)
		return
	}
	h.sessionManager.Put(r.Context(), SessionKeyUserID, user.ID)

	if err := h.queries.UpdateUserLastLogin(r.Context(), user.ID, time.Now().UTC()); err != nil {
		slog.Warn("failed to stamp last login", "user_id", user.ID, "error", err)
	}

	slog.Info("user logged in", "user_id", user.ID, "email", user.Email)
	http.Redirect(w, r, redirectAdmin, http.StatusSeeOther)
}

// Logout destroys the session and returns to the public site.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.sessionManager.Destroy(r.Context()); err != nil {
		logAndInternalError(w, "session destroy error", "error", err)
		return
	}
	http.Redirect(w, r, RouteRoot, http.StatusSeeOther)
}

// apiLoginRequest is the JSON body for POST /api/auth/login.
type apiLoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// APILogin exchanges credentials for a bearer token.
func (h *AuthHandler) APILogin(w http.ResponseWriter, r *http.Request) {
	var req apiLoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Email == "" || req.Password == "" {
		writeJSONError(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	if locked, _ := h.loginProtection.IsAccountLocked(req.Email); locked {
		writeJSONError(w, http.StatusTooManyRequests, "Account temporarily locked")
		return
	}

	user, ok := h.verifyCredentials(r, req.Email, req.Password)
	if !ok {
		h.loginProtection.RecordFailedAttempt(req.Email)
		writeJSONError(w, http.StatusUnauthorized, "Invalid email or password")
		return
	}
	h.loginProtection.RecordSuccessfulLogin(req.Email)

	admin := user.IsAdmin() || auth.IsAdminUser(user.Email)
	token, err := auth.IssueToken(h.tokenSecret, user.Email, user.Name, admin)
	if err != nil {
		logAndInternalError(w, "failed to issue token", "error", err)
		return
	}

	writeJSONSuccess(w, map[string]any{"token": token})
}

// AuthCheck reports the caller's authentication state. A bearer token takes
// precedence; otherwise the session is consulted. Unauthenticated callers
// get 401 with authenticated=false rather than an opaque error.
func (h *AuthHandler) AuthCheck(w http.ResponseWriter, r *http.Request) {
	if claims, ok := h.bearerClaims(r); ok {
		writeJSON(w, http.StatusOK, map[string]any{
			"authenticated": true,
			"user": map[string]any{
				"email": claims.Email,
				"name":  claims.Name,
			},
			"isAdmin": claims.Admin,
		})
		return
	}

	userID := h.sessionManager.GetInt64(r.Context(), SessionKeyUserID)
	if userID == 0 {
		writeJSON(w, http.StatusUnauthorized, map[string]any{"authenticated": false})
		return
	}

	user, err := h.queries.GetUserByID(r.Context(), userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			writeJSON(w, http.StatusUnauthorized, map[string]any{"authenticated": false})
			return
		}
		logAndInternalError(w, "failed to load session user", "user_id", userID, "error", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"authenticated": true,
		"user": map[string]any{
			"email": user.Email,
			"name":  user.Name,
		},
		"isAdmin": user.IsAdmin() || auth.IsAdminUser(user.Email),
	})
}

// verifyCredentials looks up the user and checks the password. It reports
// failure identically for unknown users and wrong passwords.
func (h *AuthHandler) verifyCredentials(r *http.Request, email, password string) (model.User, bool) {
	u, err := h.queries.GetUserByEmail(r.Context(), email)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			slog.Error("failed to look up user", "error", err)
		}
		return model.User{}, false
	}

	match, err := auth.CheckPassword(password, u.PasswordHash)
	if err != nil || !match {
		return model.User{}, false
	}
	return u, true
}

// bearerClaims extracts and verifies a bearer token from the Authorization
// header.
func (h *AuthHandler) bearerClaims(r *http.Request) (*auth.TokenClaims, bool) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return nil, false
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || parts[1] == "" {
		return nil, false
	}
	claims, err := auth.VerifyToken(h.tokenSecret, parts[1])
	if err != nil {
		return nil, false
	}
	return claims, true
}

// formatDuration renders a lockout duration for display, rounded up to
// whole minutes.
func formatDuration(d time.Duration) string {
	minutes := int((d + time.Minute - 1) / time.Minute)
	if minutes <= 1 {
		return "1 minute"
	}
	return fmt.Sprintf("%d minutes", minutes)
}
