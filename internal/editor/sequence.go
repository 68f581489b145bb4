// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package editor

import "fmt"

// Sequence helpers shared by links and socials. They never modify their
// input slice; the session works on a fresh clone anyway, but callers can
// rely on it.

func indexOf[T any](items []T, id string, key func(T) string) int {
	for i, it := range items {
		if key(it) == id {
			return i
		}
	}
	return -1
}

func remove[T any](items []T, id string, key func(T) string) ([]T, error) {
	i := indexOf(items, id, key)
	if i < 0 {
		return nil, ErrNotFound
	}
	out := make([]T, 0, len(items)-1)
	out = append(out, items[:i]...)
	return append(out, items[i+1:]...), nil
}

func move[T any](items []T, id string, to int, key func(T) string) ([]T, error) {
	from := indexOf(items, id, key)
	if from < 0 {
		return nil, ErrNotFound
	}
	if to < 0 || to >= len(items) {
		return nil, fmt.Errorf("%w: position %d out of range [0,%d)", ErrInvalidValue, to, len(items))
	}

	out := make([]T, 0, len(items))
	item := items[from]
	for i, it := range items {
		if i != from {
			out = append(out, it)
		}
	}
	out = append(out[:to], append([]T{item}, out[to:]...)...)
	return out, nil
}

func reorder[T any](items []T, ids []string, key func(T) string) ([]T, error) {
	if len(ids) != len(items) {
		return nil, fmt.Errorf("%w: got %d ids for %d items", ErrInvalidValue, len(ids), len(items))
	}
	seen := make(map[string]bool, len(ids))
	out := make([]T, 0, len(items))
	for _, id := range ids {
		if seen[id] {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateID, id)
		}
		seen[id] = true
		i := indexOf(items, id, key)
		if i < 0 {
			return nil, fmt.Errorf("%q: %w", id, ErrNotFound)
		}
		out = append(out, items[i])
	}
	return out, nil
}
