// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package compiler turns a profile and a theme into a renderer-agnostic
// document tree. Compile is pure and deterministic; the live preview and
// the static exporter both serialise its output, so any presentation rule
// lives here and nowhere else.
package compiler

import (
	"strings"

	"biominimal/internal/models"
	"biominimal/internal/theme"
)

// Semantic class names. Users author custom CSS against these, so they
// are a public contract and must never be renamed.
const (
	ClassAvatar      = "bio-avatar"
	ClassName        = "bio-name"
	ClassDescription = "bio-description"
	ClassSocials     = "bio-socials"
	ClassLinks       = "bio-links"
	ClassLinkItem    = "bio-link-item"
	ClassLinkIcon    = "bio-link-icon"
	ClassLinkText    = "bio-link-text"
	ClassFooter      = "bio-footer"
)

// Glyph size utilities for the two icon rows.
const (
	LinkGlyphClass   = "w-5 h-5"
	SocialGlyphClass = "w-6 h-6"
)

// customHoverClass replaces the theme hover effect on links that carry
// their own background colour.
const customHoverClass = "hover:brightness-105"

// Fill is a resolved colour: either an explicit CSS colour from a per-link
// override, or the theme class bundle it inherits.
type Fill struct {
	Color string
	Class string
}

// Custom reports whether the fill comes from a per-link override.
func (f Fill) Custom() bool {
	return f.Color != ""
}

// Background describes how the page surface is painted.
type Background struct {
	Image   string   // non-empty when a background image wins
	Class   string   // theme background class, empty when Image is set
	Overlay []string // classes of the blur overlay on the content column
}

// Surface is the presentation of the page root element (the <body> of an
// export, the preview root in the editor). Layout utilities are added by
// each adapter.
type Surface struct {
	Classes []string
	Style   []Decl
}

// LinkItem is a compiled link with its resolved presentation.
type LinkItem struct {
	ID         string
	Title      string
	URL        string
	Icon       string
	Background Fill
	Text       Fill
	Hover      []string
	Node       *Node
}

// Document is the compiled page.
type Document struct {
	Theme      theme.Theme
	FontClass  string
	Background Background
	Surface    Surface

	// Content is the column container holding every section in order.
	Content *Node

	Avatar  *Node
	Header  *Node
	Socials *Node // nil when the profile has no socials
	Links   *Node
	Footer  *Node // nil when there is no footer text

	LinkItems []LinkItem
}

// Resolve returns the theme a profile renders with. Unknown ids fall back
// to the first catalog entry.
func Resolve(p models.Profile) theme.Theme {
	return theme.Resolve(p.ThemeID)
}

// CompileProfile compiles p with its own resolved theme.
func CompileProfile(p models.Profile) *Document {
	return Compile(p, Resolve(p))
}

// Compile builds the document tree for p rendered with t.
func Compile(p models.Profile, t theme.Theme) *Document {
	doc := &Document{
		Theme:     t,
		FontClass: t.FontClass(),
	}

	doc.Background, doc.Surface = compileBackground(p, t, doc.FontClass)
	doc.Avatar = compileAvatar(p, t)
	doc.Header = compileHeader(p)
	doc.Socials = compileSocials(p)
	doc.Links, doc.LinkItems = compileLinks(p, t)
	doc.Footer = compileFooter(p)

	content := element("div",
		"max-w-md", "mx-auto", "w-full", "px-6", "py-12",
		"flex", "flex-col", "items-center", "flex-1",
	)
	content.Classes = append(content.Classes, doc.Background.Overlay...)
	content.append(doc.Avatar, doc.Header)
	if doc.Socials != nil {
		content.append(doc.Socials)
	}
	content.append(doc.Links)
	if doc.Footer != nil {
		content.append(doc.Footer)
	}
	doc.Content = content

	return doc
}

func compileBackground(p models.Profile, t theme.Theme, fontClass string) (Background, Surface) {
	img := strings.TrimSpace(models.Deref(p.BgImage))
	if img != "" {
		bg := Background{
			Image:   img,
			Overlay: []string{"backdrop-blur-sm", "bg-black/10"},
		}
		s := Surface{
			Classes: []string{"bg-no-repeat", t.TextClass, fontClass},
			Style: []Decl{
				{"background-image", cssURL(img)},
				{"background-size", "cover"},
				{"background-position", "center"},
			},
		}
		return bg, s
	}

	bg := Background{Class: t.BgClass}
	s := Surface{Classes: append(strings.Fields(t.BgClass), t.TextClass, fontClass)}
	return bg, s
}

func compileAvatar(p models.Profile, t theme.Theme) *Node {
	ring := "ring-black"
	if t.LightOnDark() {
		ring = "ring-white"
	}

	img := element("img", "w-full", "h-full", "object-cover").
		attr("src", p.AvatarURL).
		attr("alt", p.Name)

	frame := element("div",
		"w-24", "h-24", "rounded-full", "overflow-hidden", "ring-4", "ring-opacity-20", ring,
	).append(img)

	return element("div", "mb-6", "relative", "group", ClassAvatar).append(frame)
}

func compileHeader(p models.Profile) *Node {
	name := element("h1", "text-2xl", "font-bold", "tracking-tight", "mb-2", ClassName).
		append(text(p.Name))
	bio := element("p", "text-sm", "opacity-80", "leading-relaxed", "max-w-[250px]", "mx-auto", ClassDescription).
		append(text(p.Bio))
	return element("div", "text-center", "mb-6").append(name, bio)
}

func compileSocials(p models.Profile) *Node {
	if len(p.Socials) == 0 {
		return nil
	}

	row := element("div", "flex", "gap-4", "justify-center", "mb-8", "flex-wrap", ClassSocials)
	for _, s := range p.Socials {
		a := element("a",
			"opacity-70", "hover:opacity-100", "transition-opacity", "transform", "hover:scale-110", "duration-200",
		).
			attr("href", s.URL).
			attr("target", "_blank").
			attr("rel", "noreferrer").
			attr("aria-label", socialLabel(s.Platform)).
			append(glyph(s.Platform, SocialGlyphClass))
		row.append(a)
	}
	return row
}

func compileLinks(p models.Profile, t theme.Theme) (*Node, []LinkItem) {
	list := element("div", "w-full", "space-y-3", "flex-1", ClassLinks)
	var items []LinkItem

	for _, l := range p.Links {
		if !l.IsActive {
			continue
		}
		item := compileLink(l, t)
		list.append(item.Node)
		items = append(items, item)
	}
	return list, items
}

func compileLink(l models.Link, t theme.Theme) LinkItem {
	bgColor := cssValue(models.Deref(l.BgColor))
	textColor := cssValue(models.Deref(l.TextColor))

	item := LinkItem{
		ID:         l.ID,
		Title:      l.Title,
		URL:        l.URL,
		Icon:       l.Icon,
		Background: Fill{Class: t.CardBgClass},
		Text:       Fill{Class: t.TextClass},
		Hover:      strings.Fields(t.CardHoverClass),
	}

	var style []Decl
	if bgColor != "" {
		item.Background = Fill{Color: bgColor}
		item.Hover = []string{customHoverClass}
		style = append(style, Decl{"background-color", bgColor}, Decl{"border-color", bgColor})
	}
	if textColor != "" {
		item.Text = Fill{Color: textColor}
		style = append(style, Decl{"color", textColor})
	}

	iconClasses := []string{"transition-opacity", ClassLinkIcon}
	if textColor == "" {
		iconClasses = append(iconClasses, "opacity-70", "group-hover:opacity-100")
	}

	a := element("a",
		"block", "w-full", "px-4", "py-3.5", "rounded-xl", "transition-all", "duration-200",
		"flex", "items-center", "justify-between", "group", ClassLinkItem,
	)
	a.Classes = append(a.Classes, strings.Fields(t.CardBgClass)...)
	a.Classes = append(a.Classes, item.Hover...)
	a.Style = style
	a.attr("href", l.URL).attr("target", "_blank").attr("rel", "noreferrer")

	a.append(
		element("div", "flex", "items-center", "gap-3").append(
			element("span", iconClasses...).append(glyph(l.Icon, LinkGlyphClass)),
			element("span", "font-medium", "text-sm", ClassLinkText).append(text(l.Title)),
		),
	)

	item.Node = a
	return item
}

func compileFooter(p models.Profile) *Node {
	footer := models.Deref(p.CustomFooterText)
	if footer == "" {
		return nil
	}
	return element("div",
		"mt-8", "pt-4", "opacity-40", "text-[10px]", "uppercase", "tracking-widest", "font-semibold", ClassFooter,
	).append(text(footer))
}
