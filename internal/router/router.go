// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package router sets up all HTTP routes and middleware chains for the
// BioMinimal editor. It groups the JSON editing API, the preview page and
// the rate-limited export endpoints.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"biominimal/internal/handlers"
	"biominimal/internal/middleware"
)

// New creates and returns the configured Chi router with all middleware
// and route groups wired up. exportLimiter may be nil to disable rate
// limiting of the export endpoints.
func New(editor *handlers.Editor, exportLimiter *middleware.RateLimiter) chi.Router {
	r := chi.NewRouter()

	// Global middleware, applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.SecureHeaders)

	r.Get("/health", healthHandler)

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/preview", http.StatusFound)
	})
	r.Get("/preview", editor.Preview)
	r.Get("/qr.png", editor.QRCode)

	// Editing API.
	r.Route("/api", func(r chi.Router) {
		r.Get("/themes", editor.Themes)
		r.Get("/icons", editor.Icons)

		r.Route("/profile", func(r chi.Router) {
			r.Get("/", editor.GetProfile)
			r.Put("/", editor.PutProfile)
			r.Patch("/{field}", editor.PatchProfileField)
			r.Delete("/{field}", editor.ClearProfileField)
		})

		r.Route("/links", func(r chi.Router) {
			r.Post("/", editor.LinkCreate)
			r.Put("/order", editor.LinksOrder)
			r.Delete("/{id}", editor.LinkDelete)
			r.Post("/{id}/move", editor.LinkMove)
			r.Post("/{id}/toggle", editor.LinkToggle)
			r.Patch("/{id}/{field}", editor.LinkUpdate)
		})

		r.Route("/socials", func(r chi.Router) {
			r.Post("/", editor.SocialCreate)
			r.Delete("/{id}", editor.SocialDelete)
			r.Post("/{id}/move", editor.SocialMove)
			r.Patch("/{id}/{field}", editor.SocialUpdate)
		})
	})

	// Export endpoints render full documents and may hit the bucket, so
	// they are rate-limited per client.
	r.Route("/export", func(r chi.Router) {
		if exportLimiter != nil {
			r.Use(exportLimiter.Middleware)
		}
		r.Get("/", editor.Download)
		r.Post("/local", editor.ExportLocal)
		r.Post("/publish", editor.Publish)
	})

	return r
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
