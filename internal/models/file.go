// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// LoadProfileFile reads a profile from path, picking the format from the
// extension. A missing file yields the default profile and ok=false.
func LoadProfileFile(path string) (p Profile, ok bool, err error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return DefaultProfile(), false, nil
	}
	if err != nil {
		return Profile{}, false, fmt.Errorf("open profile: %w", err)
	}
	defer f.Close()

	p, err = DecodeProfile(f, FormatFromPath(path))
	if err != nil {
		return Profile{}, false, fmt.Errorf("read %s: %w", path, err)
	}
	return p, true, nil
}

// SaveProfileFile writes p to path through a temporary file and a rename,
// so readers never see a half-written profile.
func SaveProfileFile(path string, p Profile) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create profile dir: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".profile-*")
	if err != nil {
		return fmt.Errorf("create temp profile: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := EncodeProfile(tmp, p, FormatFromPath(path)); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp profile: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("replace profile: %w", err)
	}
	return nil
}
