package handlers

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/username/fintrack/src/config"
	"github.com/username/fintrack/src/database"
	"github.com/username/fintrack/src/model"
	"github.com/username/fintrack/src/security"
	"github.com/username/fintrack/src/web"
)

const testPassword = "correct-horse"

func testConfig() *config.AppConfig {
	return &config.AppConfig{
		JWTSecret:           "test-secret-that-is-at-least-32-bytes-long",
		AccessTokenExpiry:   time.Hour,
		DefaultUserID:       1,
		DefaultUsername:     "demo",
		DefaultUserEmail:    "demo@example.com",
		DefaultUserPassword: testPassword,
		AllowedOrigins:      []string{"http://localhost:3000"},
		RateLimitRequests:   1000,
		RateLimitWindow:     time.Minute,
		MaxBodyBytes:        1 << 16,
		DisplayCurrency:     "USD",
	}
}

type testServer struct {
	t       *testing.T
	db      *sql.DB
	cfg     *config.AppConfig
	handler http.Handler
}

func newTestServer(t *testing.T, mutate ...func(*config.AppConfig)) *testServer {
	t.Helper()
	cfg := testConfig()
	for _, m := range mutate {
		m(cfg)
	}

	db, err := database.Open(":memory:")
	if err != nil {
		t.Fatalf("database.Open() error = %v", err)
	}
	t.Cleanup(func() { db.Close() })

	auth := security.NewAuthService(cfg.JWTSecret, cfg.AccessTokenExpiry)
	if _, err := model.EnsureUser(context.Background(), db, cfg.DefaultUserID, cfg.DefaultUsername,
		cfg.DefaultUserEmail, cfg.DefaultUserPassword, auth.HashPassword); err != nil {
		t.Fatalf("EnsureUser() error = %v", err)
	}

	templates, err := web.Templates()
	if err != nil {
		t.Fatalf("web.Templates() error = %v", err)
	}
	return &testServer{t: t, db: db, cfg: cfg, handler: NewRouter(db, cfg, templates)}
}

// do sends body (marshalled unless it is already a string) and returns the recorder.
func (s *testServer) do(method, path string, body interface{}, headers ...string) *httptest.ResponseRecorder {
	s.t.Helper()
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		if err != nil {
			s.t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, dst interface{}) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), dst); err != nil {
		t.Fatalf("decode %q: %v", rec.Body.String(), err)
	}
}

func expectStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Fatalf("status = %d, want %d; body = %s", rec.Code, want, rec.Body.String())
	}
}
