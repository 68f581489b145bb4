// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package models defines the link-in-bio profile data model. Optional
// fields are pointers so that "absent" and "empty string" survive a
// JSON or YAML round trip as distinct values.
package models

import (
	"fmt"
)

// Link is one visible action button on the page.
type Link struct {
	ID        string  `json:"id" yaml:"id"`
	Title     string  `json:"title" yaml:"title"`
	URL       string  `json:"url" yaml:"url"`
	Icon      string  `json:"icon" yaml:"icon"`
	IsActive  bool    `json:"isActive" yaml:"isActive"`
	BgColor   *string `json:"bgColor,omitempty" yaml:"bgColor,omitempty"`
	TextColor *string `json:"textColor,omitempty" yaml:"textColor,omitempty"`
}

// Social is an icon-only external link. Socials are always rendered.
type Social struct {
	ID       string `json:"id" yaml:"id"`
	Platform string `json:"platform" yaml:"platform"`
	URL      string `json:"url" yaml:"url"`
}

// Profile is the complete user-authored description of one page.
type Profile struct {
	Name      string   `json:"name" yaml:"name"`
	Bio       string   `json:"bio" yaml:"bio"`
	AvatarURL string   `json:"avatarUrl" yaml:"avatarUrl"`
	ThemeID   string   `json:"themeId" yaml:"themeId"`
	Links     []Link   `json:"links" yaml:"links"`
	Socials   []Social `json:"socials" yaml:"socials"`

	// Static site settings.
	BgImage          *string `json:"bgImage,omitempty" yaml:"bgImage,omitempty"`
	SocialImage      *string `json:"socialImage,omitempty" yaml:"socialImage,omitempty"`
	MetaTitle        *string `json:"metaTitle,omitempty" yaml:"metaTitle,omitempty"`
	MetaDescription  *string `json:"metaDescription,omitempty" yaml:"metaDescription,omitempty"`
	CustomFooterText *string `json:"customFooterText,omitempty" yaml:"customFooterText,omitempty"`
	CustomCSS        *string `json:"customCss,omitempty" yaml:"customCss,omitempty"`
}

// Link defaults for newly added links.
const (
	DefaultLinkTitle = "New Link"
	DefaultLinkURL   = "https://"
	DefaultLinkIcon  = "globe"
)

// NewLink returns a link with the editor defaults and the given id.
func NewLink(id string) Link {
	return Link{
		ID:       id,
		Title:    DefaultLinkTitle,
		URL:      DefaultLinkURL,
		Icon:     DefaultLinkIcon,
		IsActive: true,
	}
}

// NewSocial returns a social entry for platform with the given id.
func NewSocial(id, platform, url string) Social {
	return Social{ID: id, Platform: platform, URL: url}
}

// String returns a pointer to s. Used to set optional fields.
func String(s string) *string {
	return &s
}

// Deref returns the value of an optional field, or "" when absent.
func Deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// ActiveLinks returns the links with IsActive set, in sequence order.
func (p *Profile) ActiveLinks() []Link {
	out := make([]Link, 0, len(p.Links))
	for _, l := range p.Links {
		if l.IsActive {
			out = append(out, l)
		}
	}
	return out
}

// Validate checks the structural invariants of a profile: link ids and
// social ids must be non-empty and unique within their sequences.
func (p *Profile) Validate() error {
	seen := make(map[string]bool, len(p.Links))
	for _, l := range p.Links {
		if l.ID == "" {
			return fmt.Errorf("link %q has an empty id", l.Title)
		}
		if seen[l.ID] {
			return fmt.Errorf("duplicate link id %q", l.ID)
		}
		seen[l.ID] = true
	}

	seen = make(map[string]bool, len(p.Socials))
	for _, s := range p.Socials {
		if s.ID == "" {
			return fmt.Errorf("social %q has an empty id", s.Platform)
		}
		if seen[s.ID] {
			return fmt.Errorf("duplicate social id %q", s.ID)
		}
		seen[s.ID] = true
	}
	return nil
}

// Clone returns a deep copy of the profile so the copy can be edited
// without affecting the original.
func (p Profile) Clone() Profile {
	out := p
	out.BgImage = clonePtr(p.BgImage)
	out.SocialImage = clonePtr(p.SocialImage)
	out.MetaTitle = clonePtr(p.MetaTitle)
	out.MetaDescription = clonePtr(p.MetaDescription)
	out.CustomFooterText = clonePtr(p.CustomFooterText)
	out.CustomCSS = clonePtr(p.CustomCSS)

	if p.Links != nil {
		out.Links = make([]Link, len(p.Links))
		for i, l := range p.Links {
			l.BgColor = clonePtr(l.BgColor)
			l.TextColor = clonePtr(l.TextColor)
			out.Links[i] = l
		}
	}
	if p.Socials != nil {
		out.Socials = make([]Social, len(p.Socials))
		copy(out.Socials, p.Socials)
	}
	return out
}

func clonePtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

// DefaultProfile returns the starter profile shown when a new editing
// session begins.
func DefaultProfile() Profile {
	return Profile{
		Name:      "Alex Creator",
		Bio:       "Digital minimalist. Building things for the web. Exploring the intersection of design and code.",
		AvatarURL: "https://picsum.photos/200/200",
		ThemeID:   "minimal-light",
		Links: []Link{
			{ID: "1", Title: "Latest Project", URL: "#", Icon: "globe", IsActive: true},
			{ID: "2", Title: "My Portfolio", URL: "#", Icon: "briefcase", IsActive: true},
			{ID: "3", Title: "Newsletter", URL: "#", Icon: "mail", IsActive: true},
		},
		Socials: []Social{
			{ID: "s1", Platform: "twitter", URL: "https://twitter.com"},
			{ID: "s2", Platform: "instagram", URL: "https://instagram.com"},
			{ID: "s3", Platform: "github", URL: "https://github.com"},
		},
		MetaTitle:        String("Alex Creator | Links"),
		MetaDescription:  String("Welcome to my personal page. Check out my latest projects and social links."),
		CustomFooterText: String("Made with BioMinimal"),
		BgImage:          String(""),
		CustomCSS:        String(""),
	}
}
