// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package markup

import (
	"bytes"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"

	"biominimal/internal/compiler"
	"biominimal/internal/models"
)

func TestRenderEscapesText(t *testing.T) {
	p := models.Profile{
		Name: `<script>alert("x")</script>`,
		Bio:  "Tom & Jerry",
	}
	doc := compiler.CompileProfile(p)

	out, err := RenderString(doc.Header)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.Contains(out, "<script>") {
		t.Errorf("raw script tag in output: %s", out)
	}
	if !strings.Contains(out, "&lt;script&gt;") {
		t.Errorf("escaped name missing: %s", out)
	}
	if !strings.Contains(out, "Tom &amp; Jerry") {
		t.Errorf("escaped bio missing: %s", out)
	}

	q, err := goquery.NewDocumentFromReader(strings.NewReader(out))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got := q.Find(".bio-name").Text(); got != p.Name {
		t.Errorf("parsed name = %q, want %q", got, p.Name)
	}
	if q.Find("script").Length() != 0 {
		t.Error("output contains a script element")
	}
}

func TestRenderEscapesAttributes(t *testing.T) {
	p := models.Profile{Links: []models.Link{
		{ID: "1", Title: "x", URL: `https://x.test/?a=1&b="><img src=x>`, IsActive: true},
	}}
	doc := compiler.CompileProfile(p)

	out, err := RenderString(doc.Links)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	q, err := goquery.NewDocumentFromReader(strings.NewReader(out))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if q.Find("img").Length() != 0 {
		t.Error("attribute value broke out into markup")
	}
	href, _ := q.Find("a.bio-link-item").Attr("href")
	if href != p.Links[0].URL {
		t.Errorf("href = %q, want %q", href, p.Links[0].URL)
	}
}

func TestRenderLinkStructure(t *testing.T) {
	p := models.Profile{Links: []models.Link{
		{ID: "1", Title: "Shop", URL: "https://shop.test", Icon: "shopping-bag", IsActive: true, BgColor: models.String("#ff0000")},
	}}
	doc := compiler.CompileProfile(p)

	var buf bytes.Buffer
	if err := RenderNode(&buf, doc.Links); err != nil {
		t.Fatalf("render: %v", err)
	}
	q, err := goquery.NewDocumentFromReader(&buf)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	a := q.Find("div.bio-links > a.bio-link-item")
	if a.Length() != 1 {
		t.Fatalf("links = %d, want 1", a.Length())
	}
	if style, _ := a.Attr("style"); style != "background-color: #ff0000; border-color: #ff0000" {
		t.Errorf("style = %q", style)
	}
	if target, _ := a.Attr("target"); target != "_blank" {
		t.Errorf("target = %q", target)
	}
	if a.Find("span.bio-link-text").Text() != "Shop" {
		t.Errorf("title = %q", a.Find("span.bio-link-text").Text())
	}
	svg := a.Find("span.bio-link-icon svg")
	if svg.Length() != 1 {
		t.Fatal("link glyph missing")
	}
	if cls, _ := svg.Attr("class"); cls != "lucide lucide-shopping-bag w-5 h-5" {
		t.Errorf("svg class = %q", cls)
	}
	if svg.Children().Length() == 0 {
		t.Error("glyph has no primitives")
	}
}

func TestRenderDeterministic(t *testing.T) {
	doc := compiler.CompileProfile(models.DefaultProfile())
	a, err := RenderString(doc.Content)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	b, err := RenderString(compiler.CompileProfile(models.DefaultProfile()).Content)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if a != b {
		t.Error("rendering the same profile twice differs")
	}
}

func TestStyleText(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{".bio-name { color: red; }", ".bio-name { color: red; }"},
		{"</style><script>x</script>", `<\/style><script>x</script>`},
		{"a{}</STYLE >", `a{}<\/STYLE >`},
		{"content: '</'", "content: '</'"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := StyleText(tt.in); got != tt.want {
				t.Errorf("StyleText(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

// TestStyleCannotEscape verifies hostile CSS stays inside its element.
func TestStyleCannotEscape(t *testing.T) {
	body := Element("body")
	Append(body,
		Style("</style><script>alert(1)</script><style>"),
		Element("div", Attr("id", "after")),
	)

	var buf bytes.Buffer
	if err := Render(&buf, body); err != nil {
		t.Fatalf("render: %v", err)
	}
	q, err := goquery.NewDocumentFromReader(&buf)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if n := q.Find("style").Length(); n != 1 {
		t.Errorf("style elements = %d, want 1", n)
	}
	if n := q.Find("script").Length(); n != 0 {
		t.Errorf("script elements = %d, want 0", n)
	}
	if q.Find("#after").Length() != 1 {
		t.Error("element after style lost")
	}
}
