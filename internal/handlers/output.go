// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"bytes"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/skip2/go-qrcode"

	"biominimal/internal/export"
	"biominimal/internal/icons"
	"biominimal/internal/preview"
	"biominimal/internal/theme"
)

// qrSize is the edge length of generated QR codes in pixels.
const qrSize = 256

// Themes lists the theme catalog for the theme picker.
func (e *Editor) Themes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, theme.Catalog())
}

// Icons lists the selectable link icons.
func (e *Editor) Icons(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, icons.Options())
}

// Preview renders the live preview. htmx requests (HX-Request header)
// receive only the device frame so it can be swapped in place.
func (e *Editor) Preview(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	rotated, _ := strconv.ParseBool(q.Get("rotated"))
	opts := preview.Options{
		Device:  preview.ParseDevice(q.Get("device")),
		Rotated: rotated,
		Host:    e.previewHost,
	}

	var buf bytes.Buffer
	var err error
	if r.Header.Get("HX-Request") == "true" {
		err = preview.RenderFrame(&buf, e.session.Profile(), opts)
	} else {
		err = preview.Render(&buf, e.session.Profile(), opts)
	}
	if err != nil {
		slog.Error("render preview failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.Write(buf.Bytes())
}

// startedWriter records whether the response status line has been sent.
type startedWriter struct {
	http.ResponseWriter
	started bool
}

func (sw *startedWriter) WriteHeader(code int) {
	sw.started = true
	sw.ResponseWriter.WriteHeader(code)
}

func (sw *startedWriter) Write(b []byte) (int, error) {
	sw.started = true
	return sw.ResponseWriter.Write(b)
}

// Download sends the static document as an index.html attachment.
func (e *Editor) Download(w http.ResponseWriter, r *http.Request) {
	sw := &startedWriter{ResponseWriter: w}
	if _, err := e.exporter.Export(r.Context(), e.session.Profile(), export.HTTPSaver{W: sw}); err != nil {
		slog.Error("export download failed", "error", err)
		// A failed body write leaves a 200 on the wire; only render and
		// context errors can still be answered.
		if !sw.started {
			http.Error(w, "Export failed", http.StatusInternalServerError)
		}
	}
}

// ExportLocal writes index.html into the configured export directory.
func (e *Editor) ExportLocal(w http.ResponseWriter, r *http.Request) {
	if e.exportDir == "" {
		writeError(w, http.StatusServiceUnavailable, "local export is not configured")
		return
	}
	res, err := e.exporter.Export(r.Context(), e.session.Profile(), export.FileSaver{Dir: e.exportDir})
	if err != nil {
		slog.Error("local export failed", "error", err, "dir", e.exportDir)
		writeError(w, http.StatusInternalServerError, "export failed")
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// Publish uploads the static document to the configured bucket.
func (e *Editor) Publish(w http.ResponseWriter, r *http.Request) {
	if e.publisher == nil {
		writeError(w, http.StatusServiceUnavailable, "publishing is not configured")
		return
	}
	res, err := e.exporter.Export(r.Context(), e.session.Profile(), e.publisher)
	if err != nil {
		slog.Error("publish failed", "error", err, "bucket", e.publisher.Bucket())
		writeError(w, http.StatusBadGateway, "publish failed")
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// QRCode renders a PNG QR code of ?url=, defaulting to the public URL of
// the published page.
func (e *Editor) QRCode(w http.ResponseWriter, r *http.Request) {
	target := r.URL.Query().Get("url")
	if target == "" {
		target = e.publicURL
	}
	if msg := validateQRURL(target); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	png, err := qrcode.Encode(target, qrcode.Medium, qrSize)
	if err != nil {
		slog.Error("qr encode failed", "error", err)
		writeError(w, http.StatusInternalServerError, "qr encode failed")
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(len(png)))
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.Write(png)
}
