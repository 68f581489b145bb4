// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package preview

import (
	"io"

	"golang.org/x/net/html"

	"biominimal/internal/markup"
	"biominimal/internal/models"
)

// FrameContainerID wraps the frame so partial updates can swap it.
const FrameContainerID = "preview-frame"

const pageCSS = ".scrollbar-hide::-webkit-scrollbar{display:none}.scrollbar-hide{-ms-overflow-style:none;scrollbar-width:none}"

// Render writes a standalone preview page for p: the same fonts and
// utility CSS as the export, and the device frame.
func Render(w io.Writer, p models.Profile, o Options) error {
	root := &html.Node{Type: html.DocumentNode}
	root.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})

	head := markup.Append(markup.Element("head"),
		markup.Element("meta", markup.Attr("charset", "UTF-8")),
		markup.Element("meta", markup.Attr("name", "viewport"), markup.Attr("content", "width=device-width, initial-scale=1.0")),
		markup.Append(markup.Element("title"), markup.Text("Preview - "+p.Name)),
	)
	markup.Append(head, markup.HeadAssets()...)
	markup.Append(head, markup.ConfigScript(), markup.Style(pageCSS))

	container := markup.Element("div",
		markup.Attr("id", FrameContainerID),
		markup.Attr("class", "w-full h-full flex items-center justify-center"),
	)
	container.AppendChild(Frame(p, o))

	body := markup.Element("body", markup.Attr("class", "bg-gray-100 min-h-screen flex items-center justify-center p-8"))
	body.AppendChild(container)

	page := markup.Element("html", markup.Attr("lang", "en"))
	markup.Append(page, head, body)
	root.AppendChild(page)

	return markup.Render(w, root)
}
