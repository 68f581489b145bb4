// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"fmt"
	"net/url"
	"strings"
	"unicode/utf8"
)

// Request limits. Asset fields may carry whole data URIs, hence the
// generous body size.
const (
	maxBodyBytes = 8 << 20
	maxAssetLen  = 6 << 20
	maxQRURLLen  = 1_000
)

// assetError marks an asset value the server refuses to store.
type assetError struct {
	msg string
}

func (e *assetError) Error() string { return e.msg }

// validateAsset accepts empty values, http(s) URLs and data URIs.
func validateAsset(v string) error {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil
	}
	if len(v) > maxAssetLen {
		return &assetError{"asset is too large (max 6 MiB)"}
	}
	if strings.HasPrefix(v, "data:") {
		return nil
	}
	u, err := url.Parse(v)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return &assetError{fmt.Sprintf("asset must be an http(s) URL or a data URI, got %q", truncate(v, 40))}
	}
	return nil
}

// validateQRURL checks the target of a QR code.
func validateQRURL(v string) string {
	if v == "" {
		return "url is required (no PUBLIC_URL configured)"
	}
	if utf8.RuneCountInString(v) > maxQRURLLen {
		return "url is too long (max 1,000 characters)"
	}
	u, err := url.Parse(v)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "url must be an absolute http(s) URL"
	}
	return ""
}

// truncate shortens s to at most n runes, adding "..." when cut.
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n]) + "..."
}
