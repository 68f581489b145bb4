// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package export

import (
	"bytes"
	"context"
	"errors"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/gkampitakis/go-snaps/snaps"

	"biominimal/internal/models"
)

func TestMain(m *testing.M) {
	v := m.Run()
	snaps.Clean(m)
	os.Exit(v)
}

func parse(t *testing.T, data []byte) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("parse export: %v", err)
	}
	return doc
}

func mustDocument(t *testing.T, p models.Profile) []byte {
	t.Helper()
	data, err := Document(p)
	if err != nil {
		t.Fatalf("Document: %v", err)
	}
	return data
}

func TestDocumentShell(t *testing.T) {
	data := mustDocument(t, models.DefaultProfile())

	if !bytes.HasPrefix(data, []byte("<!DOCTYPE html>")) {
		t.Errorf("missing doctype: %.40s", data)
	}
	doc := parse(t, data)

	if cs, _ := doc.Find(`head meta[charset]`).Attr("charset"); cs != "UTF-8" {
		t.Errorf("charset = %q", cs)
	}
	if src, _ := doc.Find("head script[src]").Attr("src"); src != "https://cdn.tailwindcss.com" {
		t.Errorf("tailwind src = %q", src)
	}
	if doc.Find(`head link[rel="stylesheet"]`).Length() != 1 {
		t.Error("font stylesheet missing")
	}
	if !strings.Contains(doc.Find("head script:not([src])").Text(), "tailwind.config") {
		t.Error("tailwind config script missing")
	}
	if doc.Find("head style").Length() != 1 {
		t.Error("custom style block missing")
	}

	body := doc.Find("body")
	for _, c := range []string{"bg-[#F3F4F6]", "text-gray-900", "font-sans", "min-h-screen"} {
		if !body.HasClass(c) {
			t.Errorf("body lacks class %q", c)
		}
	}
	for _, sel := range []string{".bio-avatar", ".bio-name", ".bio-description", ".bio-socials", ".bio-links", ".bio-footer"} {
		if doc.Find(sel).Length() != 1 {
			t.Errorf("%s count = %d, want 1", sel, doc.Find(sel).Length())
		}
	}
}

// TestDocumentEscapesName verifies a hostile name is exported as text and
// never as an executable tag.
func TestDocumentEscapesName(t *testing.T) {
	p := models.DefaultProfile()
	p.Name = "<script>alert(1)</script>"
	p.MetaTitle = nil

	data := mustDocument(t, p)
	if bytes.Contains(data, []byte("<script>alert(1)")) {
		t.Fatal("name emitted as raw script")
	}

	doc := parse(t, data)
	doc.Find("script").Each(func(_ int, s *goquery.Selection) {
		if strings.Contains(s.Text(), "alert") {
			t.Error("executable script contains the name")
		}
	})
	if got := doc.Find("h1.bio-name").Text(); got != p.Name {
		t.Errorf("h1 = %q, want %q", got, p.Name)
	}
	if got := doc.Find("title").Text(); got != p.Name {
		t.Errorf("title = %q, want %q", got, p.Name)
	}
	if alt, _ := doc.Find(".bio-avatar img").Attr("alt"); alt != p.Name {
		t.Errorf("alt = %q", alt)
	}
}

func TestDocumentMetaFallbacks(t *testing.T) {
	tests := []struct {
		name      string
		title     *string
		desc      *string
		wantTitle string
		wantDesc  string
	}{
		{"absent", nil, nil, "Name", "Bio"},
		{"empty", models.String(""), models.String(""), "Name", "Bio"},
		{"set", models.String("Meta T"), models.String("Meta D"), "Meta T", "Meta D"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := models.Profile{Name: "Name", Bio: "Bio", MetaTitle: tt.title, MetaDescription: tt.desc}
			doc := parse(t, mustDocument(t, p))

			if got := doc.Find("head title").Text(); got != tt.wantTitle {
				t.Errorf("title = %q, want %q", got, tt.wantTitle)
			}
			if got, _ := doc.Find(`meta[name="description"]`).Attr("content"); got != tt.wantDesc {
				t.Errorf("description = %q, want %q", got, tt.wantDesc)
			}
			if got, _ := doc.Find(`meta[property="og:title"]`).Attr("content"); got != tt.wantTitle {
				t.Errorf("og:title = %q, want %q", got, tt.wantTitle)
			}
		})
	}
}

func TestDocumentSocialImage(t *testing.T) {
	p := models.DefaultProfile()
	p.SocialImage = models.String("https://img.test/card.png")
	doc := parse(t, mustDocument(t, p))

	if got, _ := doc.Find(`meta[property="og:image"]`).Attr("content"); got != "https://img.test/card.png" {
		t.Errorf("og:image = %q", got)
	}

	p.SocialImage = nil
	doc = parse(t, mustDocument(t, p))
	if doc.Find(`meta[property="og:image"]`).Length() != 0 {
		t.Error("og:image emitted without a social image")
	}
}

func TestCustomCSSVerbatim(t *testing.T) {
	css := "body { background: red; }\n.bio-name > span::after { content: \"a & b\"; }"
	p := models.DefaultProfile()
	p.CustomCSS = models.String(css)

	data := mustDocument(t, p)
	if !bytes.Contains(data, []byte(css)) {
		t.Error("custom CSS was altered")
	}
	if got := parse(t, data).Find("head style").Text(); got != css {
		t.Errorf("style = %q, want %q", got, css)
	}
}

// TestCustomCSSCannotCloseStyle checks that a stylesheet containing a
// closing tag keeps the document well formed.
func TestCustomCSSCannotCloseStyle(t *testing.T) {
	p := models.DefaultProfile()
	p.CustomCSS = models.String("a{}</StYlE><script>evil()</script><style>")

	doc := parse(t, mustDocument(t, p))
	if n := doc.Find("style").Length(); n != 1 {
		t.Errorf("style elements = %d, want 1", n)
	}
	doc.Find("script").Each(func(_ int, s *goquery.Selection) {
		if strings.Contains(s.Text(), "evil") {
			t.Error("user CSS escaped into a script element")
		}
	})
	if doc.Find("body .bio-name").Length() != 1 {
		t.Error("body structure damaged")
	}
}

func TestNoInactiveLinksExported(t *testing.T) {
	p := models.DefaultProfile()
	p.Links = append(p.Links, models.Link{
		ID: "hidden", Title: "SECRET-TITLE", URL: "https://secret.test", Icon: "star", IsActive: false,
	})

	data := mustDocument(t, p)
	if bytes.Contains(data, []byte("SECRET-TITLE")) || bytes.Contains(data, []byte("secret.test")) {
		t.Error("inactive link leaked into export")
	}
	if n := parse(t, data).Find("a.bio-link-item").Length(); n != 3 {
		t.Errorf("links = %d, want 3", n)
	}
}

func TestDocumentBackgroundImage(t *testing.T) {
	p := models.DefaultProfile()
	p.ThemeID = "hyper-blue"
	p.BgImage = models.String("data:image/png;base64,AAAA")
	body := parse(t, mustDocument(t, p)).Find("body")

	if body.HasClass("bg-blue-600") {
		t.Error("theme background emitted alongside an image")
	}
	style, _ := body.Attr("style")
	if !strings.Contains(style, "background-image: url('data:image/png;base64,AAAA')") {
		t.Errorf("body style = %q", style)
	}
	if !strings.Contains(style, "background-size: cover") {
		t.Errorf("body style = %q", style)
	}
}

func TestDocumentDeterministic(t *testing.T) {
	a := mustDocument(t, models.DefaultProfile())
	b := mustDocument(t, models.DefaultProfile())
	if !bytes.Equal(a, b) {
		t.Error("exporting the same profile twice differs")
	}
}

func TestDocumentSnapshot(t *testing.T) {
	p := models.DefaultProfile()
	p.Links[1].BgColor = models.String("#ff0000")
	p.Links[1].TextColor = models.String("#ffffff")
	p.Links[2].IsActive = false
	p.CustomCSS = models.String(".bio-name { letter-spacing: 0.1em; }")

	snaps.WithConfig(snaps.Ext(".html")).MatchSnapshot(t, string(mustDocument(t, p)))
}

type memCache struct {
	data map[string][]byte
	sets int
}

func (m *memCache) Get(_ context.Context, key string) ([]byte, bool) {
	v, ok := m.data[key]
	return v, ok
}

func (m *memCache) Set(_ context.Context, key string, data []byte) {
	m.data[key] = data
	m.sets++
}

type saverFunc func(ctx context.Context, name, contentType string, data []byte) (string, error)

func (f saverFunc) Save(ctx context.Context, name, contentType string, data []byte) (string, error) {
	return f(ctx, name, contentType, data)
}

func TestExporterCache(t *testing.T) {
	cache := &memCache{data: map[string][]byte{}}
	e := NewExporter(cache)
	ctx := context.Background()
	p := models.DefaultProfile()

	first, cached, err := e.Render(ctx, p)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if cached {
		t.Error("first render should miss")
	}
	second, cached, err := e.Render(ctx, p)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !cached {
		t.Error("second render should hit")
	}
	if !bytes.Equal(first, second) {
		t.Error("cached document differs")
	}
	if cache.sets != 1 {
		t.Errorf("sets = %d, want 1", cache.sets)
	}

	p.Name = "Someone Else"
	if _, cached, _ := e.Render(ctx, p); cached {
		t.Error("edited profile served from cache")
	}
}

func TestCacheKey(t *testing.T) {
	a, err := CacheKey(models.DefaultProfile())
	if err != nil {
		t.Fatalf("CacheKey: %v", err)
	}
	b, _ := CacheKey(models.DefaultProfile())
	if a != b {
		t.Error("equal profiles produced different keys")
	}
	p := models.DefaultProfile()
	p.Links[0].IsActive = false
	c, _ := CacheKey(p)
	if a == c {
		t.Error("different profiles produced the same key")
	}
	if len(a) != 64 {
		t.Errorf("key length = %d, want 64", len(a))
	}
}

func TestExportSaves(t *testing.T) {
	var got []byte
	s := saverFunc(func(_ context.Context, name, contentType string, data []byte) (string, error) {
		if name != Filename || contentType != ContentType {
			t.Errorf("Save(%q, %q)", name, contentType)
		}
		got = data
		return "mem://index.html", nil
	})

	res, err := Export(context.Background(), models.DefaultProfile(), s)
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if res.Location != "mem://index.html" || res.Bytes != len(got) || res.Filename != Filename {
		t.Errorf("result = %+v", res)
	}
}

func TestExportSaveFailure(t *testing.T) {
	boom := errors.New("disk full")
	calls := 0
	s := saverFunc(func(context.Context, string, string, []byte) (string, error) {
		calls++
		return "", boom
	})

	_, err := Export(context.Background(), models.DefaultProfile(), s)
	if !errors.Is(err, boom) {
		t.Fatalf("error = %v, want wrapping %v", err, boom)
	}
	if calls != 1 {
		t.Errorf("save attempts = %d, want 1", calls)
	}
}

func TestFileSaver(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "dist")
	loc, err := FileSaver{Dir: dir}.Save(context.Background(), Filename, ContentType, []byte("<html></html>"))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if loc != filepath.Join(dir, Filename) {
		t.Errorf("location = %q", loc)
	}
	data, err := os.ReadFile(loc)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(data) != "<html></html>" {
		t.Errorf("content = %q", data)
	}
}

func TestHTTPSaver(t *testing.T) {
	rec := httptest.NewRecorder()
	if _, err := (HTTPSaver{W: rec}).Save(context.Background(), Filename, ContentType, []byte("doc")); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if got := rec.Header().Get("Content-Disposition"); got != `attachment; filename="index.html"` {
		t.Errorf("Content-Disposition = %q", got)
	}
	if got := rec.Header().Get("Content-Type"); got != ContentType {
		t.Errorf("Content-Type = %q", got)
	}
	if rec.Body.String() != "doc" {
		t.Errorf("body = %q", rec.Body.String())
	}
}

func TestHTTPSaverCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	rec := httptest.NewRecorder()
	if _, err := (HTTPSaver{W: rec}).Save(ctx, Filename, ContentType, []byte("doc")); err == nil {
		t.Error("expected error for cancelled context")
	}
	if rec.Body.Len() != 0 {
		t.Error("cancelled save wrote a body")
	}
}
