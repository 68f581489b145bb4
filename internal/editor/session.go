// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package editor owns the profile being edited. Every operation builds a
// complete new profile and swaps it in under a lock, so readers never see
// a half-applied edit and every observable profile is valid.
package editor

import (
	"errors"
	"fmt"
	"strconv"
	"sync"

	"github.com/google/uuid"

	"biominimal/internal/models"
	"biominimal/internal/theme"
)

var (
	// ErrNotFound is returned when a link or social id does not exist.
	ErrNotFound = errors.New("not found")

	// ErrUnknownField is returned for field names the model does not have.
	ErrUnknownField = errors.New("unknown field")

	// ErrInvalidValue is returned when a value cannot be applied to a field.
	ErrInvalidValue = errors.New("invalid value")

	// ErrDuplicateID is returned when a reorder or import repeats an id.
	ErrDuplicateID = errors.New("duplicate id")
)

// Session holds the single profile of an editing session.
type Session struct {
	mu      sync.RWMutex
	profile models.Profile
	newID   func() string
	version uint64

	// saveMu orders onSave calls; saved is the newest version delivered.
	saveMu sync.Mutex
	saved  uint64
	onSave func(models.Profile)
}

// Option configures a Session.
type Option func(*Session)

// WithIDs sets the id generator for new links and socials.
func WithIDs(fn func() string) Option {
	return func(s *Session) { s.newID = fn }
}

// OnChange registers a callback invoked with committed profiles. It runs
// outside the session lock but calls never overlap, and a profile older
// than one already delivered is skipped, so the last call always carries
// the current profile.
func OnChange(fn func(models.Profile)) Option {
	return func(s *Session) { s.onSave = fn }
}

// NewSession starts a session on p. p is validated and deep-copied.
func NewSession(p models.Profile, opts ...Option) (*Session, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("new session: %w", err)
	}
	s := &Session{
		profile: p.Clone(),
		newID:   uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

func (s *Session) save(v uint64, p models.Profile) {
	s.saveMu.Lock()
	defer s.saveMu.Unlock()
	if v <= s.saved {
		return
	}
	s.onSave(p)
	s.saved = v
}

// Profile returns a deep copy of the current profile.
func (s *Session) Profile() models.Profile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.profile.Clone()
}

// update applies fn to a copy of the profile and commits the result if fn
// succeeds and the result is valid.
func (s *Session) update(fn func(p *models.Profile) error) (models.Profile, error) {
	s.mu.Lock()
	next := s.profile.Clone()
	if err := fn(&next); err != nil {
		s.mu.Unlock()
		return models.Profile{}, err
	}
	if err := next.Validate(); err != nil {
		s.mu.Unlock()
		return models.Profile{}, fmt.Errorf("%w: %v", ErrInvalidValue, err)
	}
	s.profile = next
	s.version++
	v := s.version
	out := next.Clone()
	s.mu.Unlock()

	if s.onSave != nil {
		s.save(v, out.Clone())
	}
	return out, nil
}

// Replace swaps in a whole new profile, e.g. an imported file.
func (s *Session) Replace(p models.Profile) error {
	_, err := s.update(func(next *models.Profile) error {
		if err := p.Validate(); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidValue, err)
		}
		*next = p.Clone()
		return nil
	})
	return err
}

// ProfileFields lists the profile-level fields accepted by UpdateField.
var ProfileFields = []string{
	"name", "bio", "avatarUrl", "themeId",
	"bgImage", "socialImage", "metaTitle", "metaDescription", "customFooterText", "customCss",
}

// UpdateField sets a profile-level field. Unknown theme ids are stored as
// given; rendering falls back to the default theme.
func (s *Session) UpdateField(field, value string) (models.Profile, error) {
	return s.update(func(p *models.Profile) error {
		return setProfileField(p, field, value)
	})
}

// ClearField removes an optional profile field so it reads as absent.
func (s *Session) ClearField(field string) (models.Profile, error) {
	return s.update(func(p *models.Profile) error {
		ptr := optionalField(p, field)
		if ptr == nil {
			return fmt.Errorf("%w: %q is not optional", ErrUnknownField, field)
		}
		*ptr = nil
		return nil
	})
}

// SetTheme selects a theme from the catalog. Unlike UpdateField it
// rejects ids the catalog does not know.
func (s *Session) SetTheme(id string) (models.Profile, error) {
	if _, ok := theme.Lookup(id); !ok {
		return models.Profile{}, fmt.Errorf("%w: unknown theme %q", ErrInvalidValue, id)
	}
	return s.UpdateField("themeId", id)
}

// LoadAsset runs loader and stores its payload (typically a data URI) in
// field. On failure the profile is left untouched and the loader error is
// returned.
func (s *Session) LoadAsset(field string, loader func() (string, error)) (models.Profile, error) {
	switch field {
	case "avatarUrl", "bgImage", "socialImage":
	default:
		return models.Profile{}, fmt.Errorf("%w: %q does not hold an asset", ErrUnknownField, field)
	}
	payload, err := loader()
	if err != nil {
		return models.Profile{}, fmt.Errorf("load %s: %w", field, err)
	}
	return s.UpdateField(field, payload)
}

func setProfileField(p *models.Profile, field, value string) error {
	switch field {
	case "name":
		p.Name = value
	case "bio":
		p.Bio = value
	case "avatarUrl":
		p.AvatarURL = value
	case "themeId":
		p.ThemeID = value
	default:
		ptr := optionalField(p, field)
		if ptr == nil {
			return fmt.Errorf("%w: %q", ErrUnknownField, field)
		}
		*ptr = models.String(value)
	}
	return nil
}

func optionalField(p *models.Profile, field string) **string {
	switch field {
	case "bgImage":
		return &p.BgImage
	case "socialImage":
		return &p.SocialImage
	case "metaTitle":
		return &p.MetaTitle
	case "metaDescription":
		return &p.MetaDescription
	case "customFooterText":
		return &p.CustomFooterText
	case "customCss":
		return &p.CustomCSS
	}
	return nil
}

func parseBool(field, value string) (bool, error) {
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("%w: %s must be a boolean, got %q", ErrInvalidValue, field, value)
	}
	return b, nil
}
