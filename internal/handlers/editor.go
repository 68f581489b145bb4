// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package handlers contains the HTTP handlers of the BioMinimal editor.
// They are thin I/O adapters: every edit goes through the editor session,
// every page through the compiler-backed preview and export packages.
package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"biominimal/internal/editor"
	"biominimal/internal/export"
	"biominimal/internal/models"
	"biominimal/internal/preview"
	"biominimal/internal/storage"
)

// Editor groups the editor HTTP handlers and their dependencies.
type Editor struct {
	session     *editor.Session
	exporter    *export.Exporter
	publisher   *storage.Publisher
	exportDir   string
	publicURL   string
	previewHost string
}

// Options carry the optional collaborators of the Editor.
type Options struct {
	Publisher *storage.Publisher // nil disables publishing
	ExportDir string             // target of the local file export
	PublicURL string             // where the published page lives; default QR target
}

// NewEditor creates the Editor handler group. exporter may be nil, in
// which case documents are rendered uncached.
func NewEditor(session *editor.Session, exporter *export.Exporter, opts Options) *Editor {
	if exporter == nil {
		exporter = export.NewExporter(nil)
	}
	return &Editor{
		session:     session,
		exporter:    exporter,
		publisher:   opts.Publisher,
		exportDir:   opts.ExportDir,
		publicURL:   opts.PublicURL,
		previewHost: previewHost(opts.PublicURL),
	}
}

// valueRequest is the body of every single-field update.
type valueRequest struct {
	Value string `json:"value"`
}

// GetProfile returns the current profile. ?format=yaml selects YAML.
func (e *Editor) GetProfile(w http.ResponseWriter, r *http.Request) {
	format, err := models.ParseFormat(r.URL.Query().Get("format"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if format == models.FormatYAML {
		w.Header().Set("Content-Type", "application/yaml; charset=utf-8")
	} else {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
	}
	if err := models.EncodeProfile(w, e.session.Profile(), format); err != nil {
		slog.Error("encode profile failed", "error", err)
	}
}

// PutProfile replaces the whole profile (import). The body is JSON unless
// the Content-Type names YAML.
func (e *Editor) PutProfile(w http.ResponseWriter, r *http.Request) {
	format := models.FormatJSON
	if strings.Contains(r.Header.Get("Content-Type"), "yaml") {
		format = models.FormatYAML
	}

	p, err := models.DecodeProfile(http.MaxBytesReader(w, r.Body, maxBodyBytes), format)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := e.session.Replace(p); err != nil {
		writeEditError(w, err)
		return
	}
	slog.Info("profile imported", "links", len(p.Links), "socials", len(p.Socials))
	writeJSON(w, http.StatusOK, e.session.Profile())
}

// PatchProfileField updates one profile-level field. Theme ids are
// checked against the catalog, asset fields go through the asset loader.
func (e *Editor) PatchProfileField(w http.ResponseWriter, r *http.Request) {
	field := chi.URLParam(r, "field")

	var p models.Profile
	var err error
	switch field {
	case "themeId":
		var req valueRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		p, err = e.session.SetTheme(req.Value)
	case "avatarUrl", "bgImage", "socialImage":
		p, err = e.session.LoadAsset(field, func() (string, error) {
			var req valueRequest
			if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
				var maxErr *http.MaxBytesError
				if errors.As(err, &maxErr) {
					return "", err
				}
				return "", &assetError{"invalid JSON body"}
			}
			return req.Value, validateAsset(req.Value)
		})
	default:
		var req valueRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		p, err = e.session.UpdateField(field, req.Value)
	}
	if err != nil {
		writeEditError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// ClearProfileField removes an optional profile field.
func (e *Editor) ClearProfileField(w http.ResponseWriter, r *http.Request) {
	p, err := e.session.ClearField(chi.URLParam(r, "field"))
	if err != nil {
		writeEditError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// writeEditError maps editor errors to HTTP status codes.
func writeEditError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, editor.ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, editor.ErrDuplicateID):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, editor.ErrUnknownField), errors.Is(err, editor.ErrInvalidValue):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
			return
		}
		var assetErr *assetError
		if errors.As(err, &assetErr) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		slog.Error("edit failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

// decodeJSON reads a JSON body into v, answering 400/413 itself on failure.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
			return false
		}
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return false
	}
	return true
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// previewHost derives the address bar host of the desktop preview frame.
func previewHost(publicURL string) string {
	if publicURL == "" {
		return preview.DefaultHost
	}
	host := publicURL
	if _, rest, ok := strings.Cut(host, "://"); ok {
		host = rest
	}
	host, _, _ = strings.Cut(host, "/")
	if host == "" {
		return preview.DefaultHost
	}
	return host
}
