// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package export produces the standalone HTML document for a profile and
// hands it to a Saver (local file, browser download, object storage).
// The document references its fonts and utility CSS by URL and has no
// dependency on the editor.
package export

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"

	"biominimal/internal/compiler"
	"biominimal/internal/markup"
	"biominimal/internal/models"
)

const (
	// Filename is the default name of the exported document.
	Filename = "index.html"

	// ContentType is the media type of the exported document.
	ContentType = "text/html; charset=utf-8"
)

// bodyLayout is appended to the compiled surface classes on <body>.
var bodyLayout = []string{"min-h-screen", "flex", "flex-col"}

// Title returns the document title: metaTitle, or the profile name.
func Title(p models.Profile) string {
	if t := models.Deref(p.MetaTitle); t != "" {
		return t
	}
	return p.Name
}

// Description returns the meta description: metaDescription, or the bio.
func Description(p models.Profile) string {
	if d := models.Deref(p.MetaDescription); d != "" {
		return d
	}
	return p.Bio
}

// Document compiles p with its resolved theme and returns the full HTML
// document.
func Document(p models.Profile) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, p); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Write renders the document for p to w.
func Write(w io.Writer, p models.Profile) error {
	doc := compiler.CompileProfile(p)
	if err := markup.Render(w, Tree(p, doc)); err != nil {
		return fmt.Errorf("render export: %w", err)
	}
	return nil
}

// Tree assembles the html.Node tree of the exported page around a
// compiled document.
func Tree(p models.Profile, doc *compiler.Document) *html.Node {
	root := &html.Node{Type: html.DocumentNode}
	root.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})

	page := markup.Element("html", markup.Attr("lang", "en"))
	page.AppendChild(head(p))
	page.AppendChild(body(doc))
	root.AppendChild(page)
	return root
}

func head(p models.Profile) *html.Node {
	h := markup.Element("head")
	markup.Append(h,
		markup.Element("meta", markup.Attr("charset", "UTF-8")),
		markup.Element("meta", markup.Attr("name", "viewport"), markup.Attr("content", "width=device-width, initial-scale=1.0")),
		markup.Append(markup.Element("title"), markup.Text(Title(p))),
		meta("name", "description", Description(p)),
	)

	markup.Append(h,
		meta("property", "og:type", "website"),
		meta("property", "og:title", Title(p)),
		meta("property", "og:description", Description(p)),
	)
	if img := strings.TrimSpace(models.Deref(p.SocialImage)); img != "" {
		markup.Append(h,
			meta("property", "og:image", img),
			meta("name", "twitter:card", "summary_large_image"),
			meta("name", "twitter:image", img),
		)
	}

	markup.Append(h, markup.HeadAssets()...)
	markup.Append(h,
		markup.Style(models.Deref(p.CustomCSS)),
		markup.ConfigScript(),
	)
	return h
}

func meta(attr, name, content string) *html.Node {
	return markup.Element("meta", markup.Attr(attr, name), markup.Attr("content", content))
}

func body(doc *compiler.Document) *html.Node {
	classes := append(append([]string{}, doc.Surface.Classes...), bodyLayout...)
	attrs := []html.Attribute{markup.Attr("class", strings.Join(classes, " "))}
	if len(doc.Surface.Style) > 0 {
		attrs = append(attrs, markup.Attr("style", compiler.StyleString(doc.Surface.Style)))
	}

	b := markup.Element("body", attrs...)
	b.AppendChild(markup.Convert(doc.Content))
	return b
}
