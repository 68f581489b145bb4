// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package markup

import "golang.org/x/net/html"

// External resources the page depends on. The export references them by
// URL so the file renders without the editor; the preview loads the same
// ones so both paths resolve identical utility classes and fonts.
const (
	TailwindCDN = "https://cdn.tailwindcss.com"
	FontsURL    = "https://fonts.googleapis.com/css2?family=Inter:wght@300;400;500;600;700&family=Newsreader:ital,wght@0,400;0,600;1,400&display=swap"

	TailwindConfig = "tailwind.config = { theme: { extend: { fontFamily: { sans: ['Inter', 'sans-serif'], serif: ['Newsreader', 'serif'] } } } }"
)

// HeadAssets returns the utility framework, font links and font config,
// in the order they appear in <head>.
func HeadAssets() []*html.Node {
	return []*html.Node{
		Element("script", Attr("src", TailwindCDN)),
		Element("link", Attr("rel", "preconnect"), Attr("href", "https://fonts.googleapis.com")),
		Element("link", Attr("rel", "preconnect"), Attr("href", "https://fonts.gstatic.com"), Attr("crossorigin", "")),
		Element("link", Attr("href", FontsURL), Attr("rel", "stylesheet")),
	}
}

// ConfigScript returns the inline script that maps the sans and serif
// font families to the loaded web fonts.
func ConfigScript() *html.Node {
	return Append(Element("script"), Text(TailwindConfig))
}
