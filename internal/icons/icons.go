// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package icons maps stable icon keys to vector glyphs drawn on a 24x24
// stroke grid. The registry is total: unknown keys resolve to the globe
// glyph, so callers never handle a missing icon.
package icons

// DefaultKey is the icon used for unknown or empty keys.
const DefaultKey = "globe"

// Attr is a single ordered SVG attribute.
type Attr struct {
	Key string
	Val string
}

// Element is one vector primitive of a glyph (path, circle, rect, ...).
type Element struct {
	Name  string
	Attrs []Attr
}

// Glyph is a renderable icon. Elements are shared read-only data; callers
// must not modify them.
type Glyph struct {
	Key      string
	Elements []Element
}

// Option describes a selectable icon for pickers.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// SVGAttrs returns the attributes of the <svg> wrapper for a glyph. The
// class carries the size utilities, which is the only thing that differs
// between the link and social rows.
func SVGAttrs(g Glyph, class string) []Attr {
	cls := "lucide lucide-" + g.Key
	if class != "" {
		cls += " " + class
	}
	return []Attr{
		{"xmlns", "http://www.w3.org/2000/svg"},
		{"width", "24"},
		{"height", "24"},
		{"viewBox", "0 0 24 24"},
		{"fill", "none"},
		{"stroke", "currentColor"},
		{"stroke-width", "2"},
		{"stroke-linecap", "round"},
		{"stroke-linejoin", "round"},
		{"class", cls},
	}
}

// Resolve returns the glyph for key, or the globe glyph when key is unknown.
func Resolve(key string) Glyph {
	if g, ok := registry[key]; ok {
		return g
	}
	return registry[DefaultKey]
}

// Known reports whether key has its own glyph.
func Known(key string) bool {
	_, ok := registry[key]
	return ok
}

// Options returns the selectable icons in display order.
func Options() []Option {
	out := make([]Option, len(table))
	for i, e := range table {
		out[i] = Option{Value: e.key, Label: e.label}
	}
	return out
}

// Label returns the human label for key, falling back to the key itself.
func Label(key string) string {
	for _, e := range table {
		if e.key == key {
			return e.label
		}
	}
	return key
}

type entry struct {
	key      string
	label    string
	elements []Element
}

func path(d string) Element {
	return Element{Name: "path", Attrs: []Attr{{"d", d}}}
}

func circle(cx, cy, r string) Element {
	return Element{Name: "circle", Attrs: []Attr{{"cx", cx}, {"cy", cy}, {"r", r}}}
}

func rect(x, y, w, h, rx string) Element {
	attrs := []Attr{{"width", w}, {"height", h}, {"x", x}, {"y", y}}
	if rx != "" {
		attrs = append(attrs, Attr{"rx", rx}, Attr{"ry", rx})
	}
	return Element{Name: "rect", Attrs: attrs}
}

func line(x1, y1, x2, y2 string) Element {
	return Element{Name: "line", Attrs: []Attr{{"x1", x1}, {"x2", x2}, {"y1", y1}, {"y2", y2}}}
}

func polyline(points string) Element {
	return Element{Name: "polyline", Attrs: []Attr{{"points", points}}}
}

func polygon(points string) Element {
	return Element{Name: "polygon", Attrs: []Attr{{"points", points}}}
}

// table is ordered as shown in the icon picker.
var table = []entry{
	{"globe", "Website", []Element{
		circle("12", "12", "10"),
		path("M12 2a14.5 14.5 0 0 0 0 20 14.5 14.5 0 0 0 0-20"),
		path("M2 12h20"),
	}},
	{"twitter", "Twitter", []Element{
		path("M22 4s-.7 2.1-2 3.4c1.6 10-9.4 17.3-18 11.6 2.2.1 4.4-.6 6-2C3 15.5.5 9.6 3 5c2.2 2.6 5.6 4.1 9 4-.9-4.2 4-6.6 7-3.8 1.1 0 3-1.2 3-1.2z"),
	}},
	{"instagram", "Instagram", []Element{
		rect("2", "2", "20", "20", "5"),
		path("M16 11.37A4 4 0 1 1 12.63 8 4 4 0 0 1 16 11.37z"),
		line("17.5", "6.5", "17.51", "6.5"),
	}},
	{"github", "GitHub", []Element{
		path("M15 22v-4a4.8 4.8 0 0 0-1-3.5c3 0 6-2 6-5.5.08-1.25-.27-2.48-1-3.5.28-1.15.28-2.35 0-3.5 0 0-1 0-3 1.5-2.64-.5-5.36-.5-8 0C6 2 5 2 5 2c-.3 1.15-.3 2.35 0 3.5A5.403 5.403 0 0 0 4 9c0 3.5 3 5.5 6 5.5-.39.49-.68 1.05-.85 1.65-.17.6-.22 1.23-.15 1.85v4"),
		path("M9 18c-4.51 2-5-2-7-2"),
	}},
	{"linkedin", "LinkedIn", []Element{
		path("M16 8a6 6 0 0 1 6 6v7h-4v-7a2 2 0 0 0-2-2 2 2 0 0 0-2 2v7h-4v-7a6 6 0 0 1 6-6z"),
		rect("2", "9", "4", "12", ""),
		circle("4", "4", "2"),
	}},
	{"youtube", "YouTube", []Element{
		path("M2.5 17a24.12 24.12 0 0 1 0-10 2 2 0 0 1 1.4-1.4 49.56 49.56 0 0 1 16.2 0A2 2 0 0 1 21.5 7a24.12 24.12 0 0 1 0 10 2 2 0 0 1-1.4 1.4 49.55 49.55 0 0 1-16.2 0A2 2 0 0 1 2.5 17"),
		path("m10 15 5-3-5-3z"),
	}},
	{"mail", "Email", []Element{
		rect("2", "4", "20", "16", "2"),
		path("m22 7-8.97 5.7a1.94 1.94 0 0 1-2.06 0L2 7"),
	}},
	{"facebook", "Facebook", []Element{
		path("M18 2h-3a5 5 0 0 0-5 5v3H7v4h3v8h4v-8h3l1-4h-4V7a1 1 0 0 1 1-1h3z"),
	}},
	{"twitch", "Twitch", []Element{
		path("M21 2H3v16h5v4l4-4h5l4-4V2zm-10 9V7m5 4V7"),
	}},
	{"music", "Music", []Element{
		path("M9 18V5l12-2v13"),
		circle("6", "18", "3"),
		circle("18", "16", "3"),
	}},
	{"video", "Video", []Element{
		path("m16 13 5.223 3.482a.5.5 0 0 0 .777-.416V7.87a.5.5 0 0 0-.752-.432L16 10.5"),
		rect("2", "6", "14", "12", "2"),
	}},
	{"shopping-bag", "Shop", []Element{
		path("M6 2 3 6v14a2 2 0 0 0 2 2h14a2 2 0 0 0 2-2V6l-3-4Z"),
		path("M3 6h18"),
		path("M16 10a4 4 0 0 1-8 0"),
	}},
	{"dollar-sign", "Money/Tip", []Element{
		line("12", "2", "12", "22"),
		path("M17 5H9.5a3.5 3.5 0 0 0 0 7h5a3.5 3.5 0 0 1 0 7H6"),
	}},
	{"calendar", "Calendar", []Element{
		rect("3", "4", "18", "18", "2"),
		line("16", "2", "16", "6"),
		line("8", "2", "8", "6"),
		line("3", "10", "21", "10"),
	}},
	{"map-pin", "Location", []Element{
		path("M20 10c0 6-8 12-8 12s-8-6-8-12a8 8 0 0 1 16 0Z"),
		circle("12", "10", "3"),
	}},
	{"smartphone", "App", []Element{
		rect("5", "2", "14", "20", "2"),
		path("M12 18h.01"),
	}},
	{"link", "Link", []Element{
		path("M10 13a5 5 0 0 0 7.54.54l3-3a5 5 0 0 0-7.07-7.07l-1.72 1.71"),
		path("M14 11a5 5 0 0 0-7.54-.54l-3 3a5 5 0 0 0 7.07 7.07l1.71-1.71"),
	}},
	{"message-circle", "Chat/Discord", []Element{
		path("M7.9 20A9 9 0 1 0 4 16.1L2 22Z"),
	}},
	{"send", "Telegram", []Element{
		path("m22 2-7 20-4-9-9-4Z"),
		path("M22 2 11 13"),
	}},
	{"coffee", "Coffee", []Element{
		path("M17 8h1a4 4 0 1 1 0 8h-1"),
		path("M3 8h14v9a4 4 0 0 1-4 4H7a4 4 0 0 1-4-4Z"),
		line("6", "2", "6", "4"),
		line("10", "2", "10", "4"),
		line("14", "2", "14", "4"),
	}},
	{"star", "Star", []Element{
		polygon("12 2 15.09 8.26 22 9.27 17 14.14 18.18 21.02 12 17.77 5.82 21.02 7 14.14 2 9.27 8.91 8.26 12 2"),
	}},
	{"heart", "Heart", []Element{
		path("M19 14c1.49-1.46 3-3.21 3-5.5A5.5 5.5 0 0 0 16.5 3c-1.76 0-3 .5-4.5 2-1.5-1.5-2.74-2-4.5-2A5.5 5.5 0 0 0 2 8.5c0 2.3 1.5 4.05 3 5.5l7 7Z"),
	}},
	{"code", "Code", []Element{
		polyline("16 18 22 12 16 6"),
		polyline("8 6 2 12 8 18"),
	}},
	{"briefcase", "Work", []Element{
		rect("2", "7", "20", "14", "2"),
		path("M16 21V5a2 2 0 0 0-2-2h-4a2 2 0 0 0-2 2v16"),
	}},
	{"user", "Personal", []Element{
		path("M19 21v-2a4 4 0 0 0-4-4H9a4 4 0 0 0-4 4v2"),
		circle("12", "7", "4"),
	}},
}

var registry = func() map[string]Glyph {
	m := make(map[string]Glyph, len(table))
	for _, e := range table {
		m[e.key] = Glyph{Key: e.key, Elements: e.elements}
	}
	return m
}()
