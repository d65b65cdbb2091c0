package utils

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSendJSONWithETag(t *testing.T) {
	data := map[string]int{"a": 1}

	rec := httptest.NewRecorder()
	SendJSONWithETag(rec, httptest.NewRequest(http.MethodGet, "/", nil), data)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	etag := rec.Header().Get("ETag")
	if etag == "" {
		t.Fatal("missing ETag")
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("If-None-Match", `"other", `+etag)
	rec = httptest.NewRecorder()
	SendJSONWithETag(rec, req, data)
	if rec.Code != http.StatusNotModified {
		t.Errorf("status = %d, want 304", rec.Code)
	}
}

func TestSendServerErrorHidesDetail(t *testing.T) {
	tests := []struct {
		expose     bool
		wantDetail bool
	}{
		{false, false},
		{true, true},
	}
	for _, tt := range tests {
		ExposeErrorDetails = tt.expose
		rec := httptest.NewRecorder()
		SendServerError(rec, httptest.NewRequest(http.MethodGet, "/x", nil), "Failed", errors.New("disk on fire"))

		var body map[string]string
		if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if rec.Code != http.StatusInternalServerError || body["error"] != "Internal server error" {
			t.Errorf("unexpected response %d %v", rec.Code, body)
		}
		if _, ok := body["detail"]; ok != tt.wantDetail {
			t.Errorf("expose=%v: detail present = %v", tt.expose, ok)
		}
	}
	ExposeErrorDetails = false
}

func TestDateHelpers(t *testing.T) {
	if !IsValidDate("2024-02-29") || IsValidDate("2023-02-29") || IsValidDate("2024-1-5") {
		t.Error("IsValidDate gave wrong answers")
	}
	if got := ClampInt(500, 1, 365); got != 365 {
		t.Errorf("ClampInt = %d", got)
	}
	if v, err := ParseIntDefault("", 30); err != nil || v != 30 {
		t.Errorf("ParseIntDefault(\"\") = %d, %v", v, err)
	}
	if _, err := ParseIntDefault("x", 30); err == nil {
		t.Error("ParseIntDefault(\"x\") should fail")
	}
}
