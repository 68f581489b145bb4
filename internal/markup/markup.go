// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package markup serialises compiled documents to HTML. Both the live
// preview and the static exporter go through this package, so the body
// markup they emit is byte-identical. Text and attribute values are
// escaped by golang.org/x/net/html.
package markup

import (
	"bytes"
	"fmt"
	"io"
	"regexp"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"biominimal/internal/compiler"
	"biominimal/internal/icons"
)

// Convert builds an html.Node tree from a compiled node.
func Convert(n *compiler.Node) *html.Node {
	switch n.Kind {
	case compiler.TextNode:
		return Text(n.Text)
	case compiler.GlyphNode:
		return glyph(n.Glyph, n.GlyphClass)
	}

	attrs := make([]html.Attribute, 0, len(n.Attrs)+2)
	if len(n.Classes) > 0 {
		attrs = append(attrs, html.Attribute{Key: "class", Val: n.ClassAttr()})
	}
	for _, a := range n.Attrs {
		attrs = append(attrs, html.Attribute{Key: a.Key, Val: a.Val})
	}
	if len(n.Style) > 0 {
		attrs = append(attrs, html.Attribute{Key: "style", Val: n.StyleAttr()})
	}

	el := Element(n.Tag, attrs...)
	for _, c := range n.Children {
		el.AppendChild(Convert(c))
	}
	return el
}

func glyph(g icons.Glyph, class string) *html.Node {
	svgAttrs := icons.SVGAttrs(g, class)
	attrs := make([]html.Attribute, 0, len(svgAttrs)+1)
	for _, a := range svgAttrs {
		attrs = append(attrs, html.Attribute{Key: a.Key, Val: a.Val})
	}
	attrs = append(attrs, html.Attribute{Key: "aria-hidden", Val: "true"})

	svg := Element("svg", attrs...)
	for _, e := range g.Elements {
		ea := make([]html.Attribute, 0, len(e.Attrs))
		for _, a := range e.Attrs {
			ea = append(ea, html.Attribute{Key: a.Key, Val: a.Val})
		}
		svg.AppendChild(Element(e.Name, ea...))
	}
	return svg
}

// Element returns an element node with the given attributes.
func Element(tag string, attrs ...html.Attribute) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
		Attr:     attrs,
	}
}

// Text returns a text node. Its content is escaped on render except
// inside raw text elements such as <style> and <script>.
func Text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}

// Attr is shorthand for building an html.Attribute.
func Attr(key, val string) html.Attribute {
	return html.Attribute{Key: key, Val: val}
}

// Append adds children to parent and returns parent.
func Append(parent *html.Node, children ...*html.Node) *html.Node {
	for _, c := range children {
		parent.AppendChild(c)
	}
	return parent
}

var styleClose = regexp.MustCompile(`(?i)</(style)`)

// StyleText returns css safe to place inside a <style> element. The
// stylesheet is kept verbatim except for closing-tag sequences, which are
// rewritten so the content cannot end its container early.
func StyleText(css string) string {
	return styleClose.ReplaceAllString(css, `<\/$1`)
}

// Style returns a <style> element holding css.
func Style(css string, attrs ...html.Attribute) *html.Node {
	return Append(Element("style", attrs...), Text(StyleText(css)))
}

// Render writes an html.Node tree.
func Render(w io.Writer, n *html.Node) error {
	if err := html.Render(w, n); err != nil {
		return fmt.Errorf("render html: %w", err)
	}
	return nil
}

// RenderNode serialises a compiled node.
func RenderNode(w io.Writer, n *compiler.Node) error {
	return Render(w, Convert(n))
}

// RenderString serialises a compiled node to a string.
func RenderString(n *compiler.Node) (string, error) {
	var buf bytes.Buffer
	if err := RenderNode(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
