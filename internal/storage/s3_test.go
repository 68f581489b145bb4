// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package storage

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"biominimal/internal/export"
	"biominimal/internal/models"
)

func TestNewUnconfigured(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"empty", Config{}},
		{"no bucket", Config{Endpoint: "http://s3.test", AccessKey: "a", SecretKey: "b"}},
		{"no secret", Config{Endpoint: "http://s3.test", AccessKey: "a", Bucket: "pages"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := New(tt.cfg)
			if err != nil || p != nil {
				t.Errorf("New = %v, %v; want nil, nil", p, err)
			}
		})
	}
}

func TestKeyAndFileURL(t *testing.T) {
	p, err := New(Config{
		Endpoint: "https://s3.test/", Region: "fsn1", AccessKey: "a", SecretKey: "b",
		Bucket: "pages", Prefix: "/alex/",
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := p.Key("index.html"); got != "alex/index.html" {
		t.Errorf("Key = %q", got)
	}
	if got := p.FileURL("alex/index.html"); got != "https://s3.test/pages/alex/index.html" {
		t.Errorf("FileURL = %q", got)
	}

	p.publicURL = "https://cdn.test"
	if got := p.FileURL("alex/index.html"); got != "https://cdn.test/alex/index.html" {
		t.Errorf("FileURL with public URL = %q", got)
	}
}

// TestPublishExport uploads a real export to a fake S3 endpoint.
func TestPublishExport(t *testing.T) {
	var (
		method, path, contentType, acl string
		body                           []byte
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		method, path = r.Method, r.URL.Path
		contentType = r.Header.Get("Content-Type")
		acl = r.Header.Get("X-Amz-Acl")
		body, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	p, err := New(Config{
		Endpoint: srv.URL, Region: "us-east-1", AccessKey: "key", SecretKey: "secret", Bucket: "pages",
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	res, err := export.Export(context.Background(), models.DefaultProfile(), p)
	if err != nil {
		t.Fatalf("Export: %v", err)
	}

	if method != http.MethodPut || path != "/pages/index.html" {
		t.Errorf("request = %s %s", method, path)
	}
	if contentType != export.ContentType {
		t.Errorf("Content-Type = %q", contentType)
	}
	if acl != "public-read" {
		t.Errorf("acl = %q", acl)
	}
	if !strings.Contains(string(body), "bio-links") {
		t.Error("uploaded body is not the exported document")
	}
	if res.Location != srv.URL+"/pages/index.html" {
		t.Errorf("location = %q", res.Location)
	}
}

func TestPublishFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	p, _ := New(Config{Endpoint: srv.URL, Region: "us-east-1", AccessKey: "k", SecretKey: "s", Bucket: "pages"})
	if _, err := p.Save(context.Background(), "index.html", export.ContentType, []byte("x")); err == nil {
		t.Fatal("expected upload error")
	}
}
