package handlers

import (
	"net/http"
	"testing"

	"github.com/username/fintrack/src/config"
	"github.com/username/fintrack/src/model"
)

func login(t *testing.T, s *testServer) string {
	t.Helper()
	rec := s.do(http.MethodPost, "/api/auth/login", map[string]string{"username": "demo", "password": testPassword})
	expectStatus(t, rec, http.StatusOK)
	var body loginResponse
	decodeBody(t, rec, &body)
	if body.AccessToken == "" || body.TokenType != "Bearer" {
		t.Fatalf("login response = %+v", body)
	}
	return body.AccessToken
}

func TestLoginAndMe(t *testing.T) {
	s := newTestServer(t)
	token := login(t, s)

	rec := s.do(http.MethodGet, "/api/auth/me", nil, "Authorization", "Bearer "+token)
	expectStatus(t, rec, http.StatusOK)
	var user model.User
	decodeBody(t, rec, &user)
	if user.Username != "demo" || user.Email != "demo@example.com" {
		t.Errorf("me = %+v", user)
	}
	if user.Password != "" {
		t.Error("password hash leaked in /me response")
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	s := newTestServer(t)
	expectStatus(t, s.do(http.MethodPost, "/api/auth/login", map[string]string{"username": "demo", "password": "nope"}), http.StatusUnauthorized)
	expectStatus(t, s.do(http.MethodPost, "/api/auth/login", map[string]string{"username": "ghost", "password": "nope"}), http.StatusUnauthorized)
	expectStatus(t, s.do(http.MethodPost, "/api/auth/login", map[string]string{"username": "demo"}), http.StatusBadRequest)
}

func TestAuthMiddlewareModes(t *testing.T) {
	s := newTestServer(t)
	expectStatus(t, s.do(http.MethodGet, "/api/stocks", nil), http.StatusOK)
	expectStatus(t, s.do(http.MethodGet, "/api/stocks", nil, "Authorization", "Bearer garbage"), http.StatusUnauthorized)

	enforced := newTestServer(t, func(c *config.AppConfig) { c.AuthEnforced = true })
	expectStatus(t, enforced.do(http.MethodGet, "/api/stocks", nil), http.StatusUnauthorized)
	token := login(t, enforced)
	expectStatus(t, enforced.do(http.MethodGet, "/api/stocks", nil, "Authorization", "Bearer "+token), http.StatusOK)
}

func TestPreferences(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(http.MethodGet, "/api/auth/preferences", nil)
	expectStatus(t, rec, http.StatusOK)
	var prefs model.Preferences
	decodeBody(t, rec, &prefs)
	if prefs.Currency != "USD" || prefs.Theme != "light" || prefs.DateFormat != "YYYY-MM-DD" {
		t.Errorf("defaults = %+v", prefs)
	}

	rec = s.do(http.MethodPut, "/api/auth/preferences", map[string]string{"theme": "dark", "currency": "eur"})
	expectStatus(t, rec, http.StatusOK)
	decodeBody(t, rec, &prefs)
	if prefs.Theme != "dark" || prefs.Currency != "EUR" || prefs.DateFormat != "YYYY-MM-DD" {
		t.Errorf("updated = %+v", prefs)
	}

	expectStatus(t, s.do(http.MethodPut, "/api/auth/preferences", map[string]string{"theme": "neon"}), http.StatusBadRequest)
	expectStatus(t, s.do(http.MethodPut, "/api/auth/preferences", map[string]string{"currency": "EURO"}), http.StatusBadRequest)
	expectStatus(t, s.do(http.MethodPut, "/api/auth/preferences", map[string]string{}), http.StatusBadRequest)
}
