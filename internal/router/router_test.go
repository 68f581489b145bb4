// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package router tests verify the HTTP routing configuration, middleware
// chains, and the health endpoint.
package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"biominimal/internal/editor"
	"biominimal/internal/handlers"
	"biominimal/internal/middleware"
	"biominimal/internal/models"
)

func TestHealthHandler(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest("GET", "/health", nil)

	healthHandler(w, r)

	resp := w.Result()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status: got %d, want 200", resp.StatusCode)
	}

	ct := resp.Header.Get("Content-Type")
	if ct != "application/json" {
		t.Errorf("content-type: got %q, want %q", ct, "application/json")
	}

	var body map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("status field: got %q, want %q", body["status"], "ok")
	}
}

func TestHealthHandlerMethods(t *testing.T) {
	// Health endpoint only accepts GET.
	w := httptest.NewRecorder()
	r := httptest.NewRequest("GET", "/health", nil)

	healthHandler(w, r)

	if w.Code != http.StatusOK {
		t.Errorf("GET /health: got %d, want 200", w.Code)
	}
}

func testRouter(t *testing.T, limiter *middleware.RateLimiter) http.Handler {
	t.Helper()
	s, err := editor.NewSession(models.DefaultProfile())
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	return New(handlers.NewEditor(s, nil, handlers.Options{PublicURL: "https://alex.example.com"}), limiter)
}

func TestRoutes(t *testing.T) {
	h := testRouter(t, nil)

	tests := []struct {
		method string
		path   string
		body   string
		want   int
	}{
		{http.MethodGet, "/health", "", http.StatusOK},
		{http.MethodGet, "/", "", http.StatusFound},
		{http.MethodGet, "/preview", "", http.StatusOK},
		{http.MethodGet, "/qr.png", "", http.StatusOK},
		{http.MethodGet, "/api/profile", "", http.StatusOK},
		{http.MethodPatch, "/api/profile/name", `{"value":"Sam"}`, http.StatusOK},
		{http.MethodDelete, "/api/profile/customCss", "", http.StatusOK},
		{http.MethodGet, "/api/themes", "", http.StatusOK},
		{http.MethodGet, "/api/icons", "", http.StatusOK},
		{http.MethodPost, "/api/links", "", http.StatusCreated},
		{http.MethodPatch, "/api/links/1/title", `{"value":"x"}`, http.StatusOK},
		{http.MethodPost, "/api/links/1/toggle", "", http.StatusOK},
		{http.MethodPost, "/api/links/1/move", `{"to":1}`, http.StatusOK},
		{http.MethodDelete, "/api/links/2", "", http.StatusOK},
		{http.MethodPost, "/api/socials", `{"platform":"github","url":"https://github.com/alex"}`, http.StatusCreated},
		{http.MethodPost, "/api/socials/s1/move", `{"to":2}`, http.StatusOK},
		{http.MethodPatch, "/api/socials/s1/platform", `{"value":"youtube"}`, http.StatusOK},
		{http.MethodDelete, "/api/socials/s3", "", http.StatusOK},
		{http.MethodGet, "/export", "", http.StatusOK},
		{http.MethodPost, "/export/publish", "", http.StatusServiceUnavailable},
		{http.MethodGet, "/nope", "", http.StatusNotFound},
		{http.MethodPost, "/health", "", http.StatusMethodNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			rr := httptest.NewRecorder()
			h.ServeHTTP(rr, req)
			if rr.Code != tt.want {
				t.Errorf("status = %d, want %d: %s", rr.Code, tt.want, rr.Body.String())
			}
		})
	}
}

func TestMiddlewareApplied(t *testing.T) {
	rr := httptest.NewRecorder()
	testRouter(t, nil).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rr.Header().Get(middleware.RequestIDHeader) == "" {
		t.Error("Logger should set a request id")
	}
	if rr.Header().Get("Content-Security-Policy") == "" {
		t.Error("SecureHeaders should set a CSP")
	}
}

func TestExportRateLimited(t *testing.T) {
	limiter := middleware.NewRateLimiter(2, time.Minute)
	defer limiter.Stop()
	h := testRouter(t, limiter)

	serve := func(path string) int {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		req.RemoteAddr = "10.0.0.9:5000"
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, req)
		return rr.Code
	}

	for i := 0; i < 2; i++ {
		if code := serve("/export"); code != http.StatusOK {
			t.Fatalf("export %d: status = %d", i+1, code)
		}
	}
	if code := serve("/export"); code != http.StatusTooManyRequests {
		t.Errorf("third export: status = %d, want 429", code)
	}
	// The editing API is not limited.
	if code := serve("/api/profile"); code != http.StatusOK {
		t.Errorf("api after limit: status = %d, want 200", code)
	}
}
