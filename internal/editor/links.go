// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package editor

import (
	"fmt"

	"biominimal/internal/models"
)

// LinkFields lists the link fields accepted by UpdateLink.
var LinkFields = []string{"title", "url", "icon", "isActive", "bgColor", "textColor"}

// AddLink appends a link with the default title, url and icon.
func (s *Session) AddLink() (models.Link, error) {
	var added models.Link
	_, err := s.update(func(p *models.Profile) error {
		added = models.NewLink(s.newID())
		p.Links = append(p.Links, added)
		return nil
	})
	return added, err
}

// UpdateLink sets one field of the link with the given id. An empty
// colour removes the override so the link inherits the theme again.
func (s *Session) UpdateLink(id, field, value string) (models.Profile, error) {
	return s.update(func(p *models.Profile) error {
		i := indexOf(p.Links, id, func(l models.Link) string { return l.ID })
		if i < 0 {
			return fmt.Errorf("link %q: %w", id, ErrNotFound)
		}
		l := &p.Links[i]
		switch field {
		case "title":
			l.Title = value
		case "url":
			l.URL = value
		case "icon":
			l.Icon = value
		case "isActive":
			b, err := parseBool(field, value)
			if err != nil {
				return err
			}
			l.IsActive = b
		case "bgColor":
			l.BgColor = optional(value)
		case "textColor":
			l.TextColor = optional(value)
		default:
			return fmt.Errorf("%w: link field %q", ErrUnknownField, field)
		}
		return nil
	})
}

// ToggleLink flips the visibility of a link without removing it.
func (s *Session) ToggleLink(id string) (models.Profile, error) {
	return s.update(func(p *models.Profile) error {
		i := indexOf(p.Links, id, func(l models.Link) string { return l.ID })
		if i < 0 {
			return fmt.Errorf("link %q: %w", id, ErrNotFound)
		}
		p.Links[i].IsActive = !p.Links[i].IsActive
		return nil
	})
}

// RemoveLink deletes the link with the given id.
func (s *Session) RemoveLink(id string) (models.Profile, error) {
	return s.update(func(p *models.Profile) error {
		out, err := remove(p.Links, id, func(l models.Link) string { return l.ID })
		if err != nil {
			return fmt.Errorf("link %q: %w", id, err)
		}
		p.Links = out
		return nil
	})
}

// MoveLink moves a link to position to, shifting the others.
func (s *Session) MoveLink(id string, to int) (models.Profile, error) {
	return s.update(func(p *models.Profile) error {
		out, err := move(p.Links, id, to, func(l models.Link) string { return l.ID })
		if err != nil {
			return fmt.Errorf("link %q: %w", id, err)
		}
		p.Links = out
		return nil
	})
}

// ReorderLinks puts the links in the order of ids, which must name every
// link exactly once.
func (s *Session) ReorderLinks(ids []string) (models.Profile, error) {
	return s.update(func(p *models.Profile) error {
		out, err := reorder(p.Links, ids, func(l models.Link) string { return l.ID })
		if err != nil {
			return fmt.Errorf("reorder links: %w", err)
		}
		p.Links = out
		return nil
	})
}

func optional(v string) *string {
	if v == "" {
		return nil
	}
	return models.String(v)
}
