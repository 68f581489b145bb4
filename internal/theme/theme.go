// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package theme holds the fixed catalog of visual presets. A theme is a
// bundle of TailwindCSS utility classes rather than raw colours, so it can
// be combined with per-link colour overrides without conflicting.
package theme

// Font selects the font family class applied to the page.
type Font string

const (
	FontSans  Font = "sans"
	FontSerif Font = "serif"
)

// lightText is the text class that classifies a theme as light-on-dark.
const lightText = "text-white"

// Theme is an immutable visual preset identified by ID.
type Theme struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	BgClass        string `json:"bg_class"`
	TextClass      string `json:"text_class"`
	CardBgClass    string `json:"card_bg_class"`
	CardHoverClass string `json:"card_hover_class"`
	ButtonClass    string `json:"button_class"`
	Font           Font   `json:"font"`
}

// FontClass returns the Tailwind font family utility for the theme.
func (t Theme) FontClass() string {
	if t.Font == FontSerif {
		return "font-serif"
	}
	return "font-sans"
}

// LightOnDark reports whether the theme draws light text on a dark
// background. It is a binary classification of TextClass.
func (t Theme) LightOnDark() bool {
	return t.TextClass == lightText
}

// catalog is ordered; the first entry is the fallback default.
var catalog = []Theme{
	{
		ID:             "minimal-light",
		Name:           "Paper",
		BgClass:        "bg-[#F3F4F6]",
		TextClass:      "text-gray-900",
		CardBgClass:    "bg-white shadow-sm border border-gray-200",
		CardHoverClass: "hover:shadow-md hover:-translate-y-0.5",
		ButtonClass:    "bg-black text-white hover:bg-gray-800",
		Font:           FontSans,
	},
	{
		ID:             "minimal-dark",
		Name:           "Obsidian",
		BgClass:        "bg-[#0f0f0f]",
		TextClass:      "text-white",
		CardBgClass:    "bg-[#1a1a1a] border border-[#333]",
		CardHoverClass: "hover:bg-[#252525]",
		ButtonClass:    "bg-white text-black hover:bg-gray-200",
		Font:           FontSans,
	},
	{
		ID:             "editorial",
		Name:           "Editorial",
		BgClass:        "bg-[#e8e6e1]",
		TextClass:      "text-[#2c2b28]",
		CardBgClass:    "bg-[#f4f3f0] border border-[#dcdad5]",
		CardHoverClass: "hover:bg-[#fff]",
		ButtonClass:    "bg-[#bc4a3c] text-white",
		Font:           FontSerif,
	},
	{
		ID:             "hyper-blue",
		Name:           "Electric",
		BgClass:        "bg-blue-600",
		TextClass:      "text-white",
		CardBgClass:    "bg-blue-700/50 backdrop-blur-md border border-blue-500/50",
		CardHoverClass: "hover:bg-blue-700/80",
		ButtonClass:    "bg-white text-blue-600",
		Font:           FontSans,
	},
}

// Catalog returns a copy of the built-in themes in display order.
func Catalog() []Theme {
	out := make([]Theme, len(catalog))
	copy(out, catalog)
	return out
}

// Default returns the fallback theme (the first catalog entry).
func Default() Theme {
	return catalog[0]
}

// Resolve returns the theme with the given id, or Default when the id is
// unknown. Both render paths resolve themes through this function.
func Resolve(id string) Theme {
	if t, ok := Lookup(id); ok {
		return t
	}
	return Default()
}

// Lookup returns the theme with the given id and whether it exists.
func Lookup(id string) (Theme, bool) {
	for _, t := range catalog {
		if t.ID == id {
			return t, true
		}
	}
	return Theme{}, false
}
