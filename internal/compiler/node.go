// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package compiler

import (
	"strings"

	"biominimal/internal/icons"
)

// Kind distinguishes the node types of a compiled document.
type Kind int

const (
	ElementNode Kind = iota
	TextNode
	GlyphNode
)

// Attr is an ordered HTML attribute.
type Attr struct {
	Key string
	Val string
}

// Decl is one inline CSS declaration.
type Decl struct {
	Property string
	Value    string
}

// Node is a renderer-agnostic element of the compiled document.
type Node struct {
	Kind    Kind
	Tag     string
	Classes []string
	Attrs   []Attr
	Style   []Decl
	Text    string

	// Glyph and GlyphClass are set for GlyphNode.
	Glyph      icons.Glyph
	GlyphClass string

	Children []*Node
}

func element(tag string, classes ...string) *Node {
	return &Node{Kind: ElementNode, Tag: tag, Classes: classes}
}

func text(s string) *Node {
	return &Node{Kind: TextNode, Text: s}
}

func glyph(key, class string) *Node {
	return &Node{Kind: GlyphNode, Glyph: icons.Resolve(key), GlyphClass: class}
}

func (n *Node) attr(key, val string) *Node {
	n.Attrs = append(n.Attrs, Attr{Key: key, Val: val})
	return n
}

func (n *Node) append(children ...*Node) *Node {
	n.Children = append(n.Children, children...)
	return n
}

// HasClass reports whether the node carries class c.
func (n *Node) HasClass(c string) bool {
	for _, cls := range n.Classes {
		if cls == c {
			return true
		}
	}
	return false
}

// ClassAttr returns the space-joined class list.
func (n *Node) ClassAttr() string {
	return strings.Join(n.Classes, " ")
}

// StyleAttr returns the inline style serialised as "prop: value; ...".
func (n *Node) StyleAttr() string {
	return StyleString(n.Style)
}

// StyleValue returns the value of an inline style property, or "".
func (n *Node) StyleValue(property string) string {
	for _, d := range n.Style {
		if d.Property == property {
			return d.Value
		}
	}
	return ""
}

// Attr returns the value of attribute key and whether it is set.
func (n *Node) Attr(key string) (string, bool) {
	for _, a := range n.Attrs {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// Find returns every node in the subtree rooted at n carrying class c,
// in document order.
func (n *Node) Find(c string) []*Node {
	var out []*Node
	n.walk(func(x *Node) {
		if x.HasClass(c) {
			out = append(out, x)
		}
	})
	return out
}

// TextContent concatenates the text of all descendant text nodes.
func (n *Node) TextContent() string {
	var b strings.Builder
	n.walk(func(x *Node) {
		if x.Kind == TextNode {
			b.WriteString(x.Text)
		}
	})
	return b.String()
}

func (n *Node) walk(fn func(*Node)) {
	if n == nil {
		return
	}
	fn(n)
	for _, c := range n.Children {
		c.walk(fn)
	}
}

// StyleString serialises declarations in order.
func StyleString(decls []Decl) string {
	parts := make([]string, 0, len(decls))
	for _, d := range decls {
		parts = append(parts, d.Property+": "+d.Value)
	}
	return strings.Join(parts, "; ")
}
