// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

type moveRequest struct {
	To int `json:"to"`
}

type orderRequest struct {
	IDs []string `json:"ids"`
}

type socialRequest struct {
	Platform string `json:"platform"`
	URL      string `json:"url"`
}

// --- Links ---

// LinkCreate appends a link with default values.
func (e *Editor) LinkCreate(w http.ResponseWriter, r *http.Request) {
	link, err := e.session.AddLink()
	if err != nil {
		writeEditError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, link)
}

// LinkUpdate sets one field of a link.
func (e *Editor) LinkUpdate(w http.ResponseWriter, r *http.Request) {
	var req valueRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	p, err := e.session.UpdateLink(chi.URLParam(r, "id"), chi.URLParam(r, "field"), req.Value)
	if err != nil {
		writeEditError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// LinkToggle flips the visibility of a link.
func (e *Editor) LinkToggle(w http.ResponseWriter, r *http.Request) {
	p, err := e.session.ToggleLink(chi.URLParam(r, "id"))
	if err != nil {
		writeEditError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// LinkDelete removes a link.
func (e *Editor) LinkDelete(w http.ResponseWriter, r *http.Request) {
	p, err := e.session.RemoveLink(chi.URLParam(r, "id"))
	if err != nil {
		writeEditError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// LinkMove moves a link to a new position.
func (e *Editor) LinkMove(w http.ResponseWriter, r *http.Request) {
	var req moveRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	p, err := e.session.MoveLink(chi.URLParam(r, "id"), req.To)
	if err != nil {
		writeEditError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// LinksOrder applies a complete new link order, as sent after a drag.
func (e *Editor) LinksOrder(w http.ResponseWriter, r *http.Request) {
	var req orderRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	p, err := e.session.ReorderLinks(req.IDs)
	if err != nil {
		writeEditError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// --- Socials ---

// SocialCreate appends a social entry. An empty platform becomes the
// generic globe icon.
func (e *Editor) SocialCreate(w http.ResponseWriter, r *http.Request) {
	var req socialRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	s, err := e.session.AddSocial(req.Platform, req.URL)
	if err != nil {
		writeEditError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, s)
}

// SocialUpdate sets one field of a social entry.
func (e *Editor) SocialUpdate(w http.ResponseWriter, r *http.Request) {
	var req valueRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	p, err := e.session.UpdateSocial(chi.URLParam(r, "id"), chi.URLParam(r, "field"), req.Value)
	if err != nil {
		writeEditError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// SocialDelete removes a social entry.
func (e *Editor) SocialDelete(w http.ResponseWriter, r *http.Request) {
	p, err := e.session.RemoveSocial(chi.URLParam(r, "id"))
	if err != nil {
		writeEditError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// SocialMove moves a social entry to a new position.
func (e *Editor) SocialMove(w http.ResponseWriter, r *http.Request) {
	var req moveRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	p, err := e.session.MoveSocial(chi.URLParam(r, "id"), req.To)
	if err != nil {
		writeEditError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}
