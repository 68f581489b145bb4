// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package editor

import (
	"fmt"

	"biominimal/internal/icons"
	"biominimal/internal/models"
)

// SocialFields lists the social fields accepted by UpdateSocial.
var SocialFields = []string{"platform", "url"}

// AddSocial appends a social entry. An empty platform uses the default
// icon.
func (s *Session) AddSocial(platform, url string) (models.Social, error) {
	if platform == "" {
		platform = icons.DefaultKey
	}
	var added models.Social
	_, err := s.update(func(p *models.Profile) error {
		added = models.NewSocial(s.newID(), platform, url)
		p.Socials = append(p.Socials, added)
		return nil
	})
	return added, err
}

// UpdateSocial sets one field of the social entry with the given id.
func (s *Session) UpdateSocial(id, field, value string) (models.Profile, error) {
	return s.update(func(p *models.Profile) error {
		i := indexOf(p.Socials, id, func(x models.Social) string { return x.ID })
		if i < 0 {
			return fmt.Errorf("social %q: %w", id, ErrNotFound)
		}
		switch field {
		case "platform":
			p.Socials[i].Platform = value
		case "url":
			p.Socials[i].URL = value
		default:
			return fmt.Errorf("%w: social field %q", ErrUnknownField, field)
		}
		return nil
	})
}

// RemoveSocial deletes the social entry with the given id.
func (s *Session) RemoveSocial(id string) (models.Profile, error) {
	return s.update(func(p *models.Profile) error {
		out, err := remove(p.Socials, id, func(x models.Social) string { return x.ID })
		if err != nil {
			return fmt.Errorf("social %q: %w", id, err)
		}
		p.Socials = out
		return nil
	})
}

// MoveSocial moves a social entry to position to.
func (s *Session) MoveSocial(id string, to int) (models.Profile, error) {
	return s.update(func(p *models.Profile) error {
		out, err := move(p.Socials, id, to, func(x models.Social) string { return x.ID })
		if err != nil {
			return fmt.Errorf("social %q: %w", id, err)
		}
		p.Socials = out
		return nil
	})
}
