// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package compiler

import (
	"strings"

	"biominimal/internal/icons"
)

// cssValue makes a user-supplied colour safe to place in an inline style
// declaration. Characters that could end the declaration or the attribute
// are dropped.
func cssValue(s string) string {
	s = strings.Map(func(r rune) rune {
		switch r {
		case ';', '{', '}', '<', '>', '"', '\\', '\n', '\r':
			return -1
		}
		return r
	}, s)
	return strings.TrimSpace(s)
}

// cssURL wraps s in a single-quoted url() token.
func cssURL(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `'`, `\'`, "\n", "", "\r", "")
	return "url('" + r.Replace(s) + "')"
}

func socialLabel(platform string) string {
	return icons.Label(platform)
}
