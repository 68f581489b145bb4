// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package preview renders the live editor preview: the compiled profile
// inside a resizable device frame, with custom CSS scoped to the preview
// root so it cannot restyle the editor around it.
package preview

import (
	"io"
	"strings"
	"unicode"

	"golang.org/x/net/html"

	"biominimal/internal/compiler"
	"biominimal/internal/markup"
	"biominimal/internal/models"
)

// RootID is the id of the element standing in for <body> in the preview.
const RootID = "preview-root"

// RootSelector is the selector custom CSS is scoped to.
const RootSelector = "#" + RootID

// DefaultHost is shown in the desktop browser chrome when no host is set.
const DefaultHost = "localhost"

// Device is a preview frame size.
type Device string

const (
	Mobile  Device = "mobile"
	Tablet  Device = "tablet"
	Desktop Device = "desktop"
)

// ParseDevice converts a query value into a Device. Unknown values map to
// Mobile.
func ParseDevice(s string) Device {
	switch Device(strings.ToLower(strings.TrimSpace(s))) {
	case Tablet:
		return Tablet
	case Desktop:
		return Desktop
	default:
		return Mobile
	}
}

// Options select the frame the preview is drawn in.
type Options struct {
	Device  Device
	Rotated bool
	Host    string // shown in the desktop address bar
}

const frameBase = "relative mx-auto transition-all duration-500 ease-in-out bg-gray-900 border-gray-900 shadow-2xl overflow-hidden flex flex-col"

// FrameClasses returns the classes of the device frame. Desktop ignores
// rotation.
func FrameClasses(o Options) string {
	var size string
	switch {
	case o.Device == Desktop:
		size = "w-full h-full border-[8px] rounded-lg max-w-[1024px] max-h-[85vh]"
	case o.Rotated && o.Device == Tablet:
		size = "w-[800px] max-w-[85vw] aspect-[4/3] h-auto border-[12px] rounded-[1.5rem]"
	case o.Rotated:
		size = "w-[640px] max-w-[85vw] aspect-[19/9] h-auto border-[14px] rounded-[2.5rem]"
	case o.Device == Tablet:
		size = "h-[800px] max-h-[85vh] aspect-[3/4] w-auto border-[12px] rounded-[1.5rem]"
	default:
		size = "h-[640px] max-h-[80vh] aspect-[9/19] w-auto border-[14px] rounded-[2.5rem]"
	}
	return frameBase + " " + size
}

// Slug is the page path shown in the desktop address bar.
func Slug(name string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return unicode.ToLower(r)
	}, name)
}

// Frame builds the device frame for p.
func Frame(p models.Profile, o Options) *html.Node {
	doc := compiler.CompileProfile(p)
	o.Device = ParseDevice(string(o.Device))

	frame := markup.Element("div",
		markup.Attr("class", FrameClasses(o)),
		markup.Attr("data-device", string(o.Device)),
	)

	if o.Device == Mobile && !o.Rotated {
		for _, c := range hardwareButtons {
			frame.AppendChild(markup.Element("div", markup.Attr("class", c)))
		}
	}
	if o.Device == Desktop {
		frame.AppendChild(browserChrome(o.Host, p.Name))
	}
	if css := ScopeCSS(models.Deref(p.CustomCSS), RootSelector); css != "" {
		frame.AppendChild(markup.Style(css))
	}

	rootClasses := append([]string{"w-full", "h-full", "overflow-y-auto", "scrollbar-hide"}, doc.Surface.Classes...)
	rootAttrs := []html.Attribute{
		markup.Attr("id", RootID),
		markup.Attr("class", strings.Join(rootClasses, " ")),
	}
	if len(doc.Surface.Style) > 0 {
		rootAttrs = append(rootAttrs, markup.Attr("style", compiler.StyleString(doc.Surface.Style)))
	}
	root := markup.Element("div", rootAttrs...)

	wrapClass := "mx-auto w-full flex flex-col min-h-full"
	if o.Device == Desktop {
		wrapClass += " max-w-md shadow-2xl my-8"
	}
	wrap := markup.Element("div", markup.Attr("class", wrapClass))
	wrap.AppendChild(markup.Convert(doc.Content))
	root.AppendChild(wrap)
	frame.AppendChild(root)

	return frame
}

var hardwareButtons = []string{
	"h-[32px] w-[3px] bg-gray-800 absolute -left-[17px] top-[72px] rounded-l-lg",
	"h-[46px] w-[3px] bg-gray-800 absolute -left-[17px] top-[124px] rounded-l-lg",
	"h-[46px] w-[3px] bg-gray-800 absolute -left-[17px] top-[178px] rounded-l-lg",
	"h-[64px] w-[3px] bg-gray-800 absolute -right-[17px] top-[142px] rounded-r-lg",
}

func browserChrome(host, name string) *html.Node {
	if host == "" {
		host = DefaultHost
	}
	dot := func(color string) *html.Node {
		return markup.Element("div", markup.Attr("class", "w-3 h-3 rounded-full "+color+" transition-colors"))
	}
	dots := markup.Append(markup.Element("div", markup.Attr("class", "flex gap-1.5")),
		dot("bg-red-400 hover:bg-red-500"),
		dot("bg-yellow-400 hover:bg-yellow-500"),
		dot("bg-green-400 hover:bg-green-500"),
	)
	address := markup.Append(
		markup.Element("div", markup.Attr("class", "ml-4 bg-white rounded-md text-[10px] text-gray-400 px-3 py-1 flex-1 text-center font-medium border border-gray-200")),
		markup.Text(host+"/"+Slug(name)),
	)
	return markup.Append(
		markup.Element("div", markup.Attr("class", "bg-gray-100 h-9 w-full flex items-center px-4 gap-2 border-b border-gray-200 shrink-0")),
		dots, address,
	)
}

// RenderFrame writes only the device frame, for partial page updates.
func RenderFrame(w io.Writer, p models.Profile, o Options) error {
	return markup.Render(w, Frame(p, o))
}
