// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package export

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"

	"biominimal/internal/models"
)

// renderVersion is mixed into cache keys. Bump it whenever the document
// layout changes so stale cached exports are never served.
const renderVersion = "v1"

// Saver persists an exported document. Implementations return a location
// (path or URL) describing where the document ended up, or "" when that
// has no meaning (e.g. a browser download).
type Saver interface {
	Save(ctx context.Context, name, contentType string, data []byte) (string, error)
}

// Cache stores rendered documents by key. Errors are the cache's concern;
// a failed lookup is a miss.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, data []byte)
}

// Result describes a completed export.
type Result struct {
	Filename string `json:"filename"`
	Location string `json:"location,omitempty"`
	Bytes    int    `json:"bytes"`
	Cached   bool   `json:"cached"`
}

// Exporter renders documents, optionally through a cache, and hands them
// to a Saver.
type Exporter struct {
	cache Cache
}

// NewExporter creates an Exporter. cache may be nil.
func NewExporter(cache Cache) *Exporter {
	return &Exporter{cache: cache}
}

// CacheKey returns the cache key for p. Equal profiles always map to the
// same key because rendering is deterministic.
func CacheKey(p models.Profile) (string, error) {
	data, err := json.Marshal(p)
	if err != nil {
		return "", fmt.Errorf("marshal profile: %w", err)
	}
	sum := sha256.Sum256(append([]byte(renderVersion+":"), data...))
	return hex.EncodeToString(sum[:]), nil
}

// Render returns the HTML document for p and whether it came from the
// cache.
func (e *Exporter) Render(ctx context.Context, p models.Profile) ([]byte, bool, error) {
	if e.cache == nil {
		data, err := Document(p)
		return data, false, err
	}

	key, err := CacheKey(p)
	if err != nil {
		return nil, false, err
	}
	if data, ok := e.cache.Get(ctx, key); ok {
		return data, true, nil
	}

	data, err := Document(p)
	if err != nil {
		return nil, false, err
	}
	e.cache.Set(ctx, key, data)
	return data, false, nil
}

// Export renders p and saves it once through s. Save failures are
// returned to the caller and never retried.
func (e *Exporter) Export(ctx context.Context, p models.Profile, s Saver) (Result, error) {
	data, cached, err := e.Render(ctx, p)
	if err != nil {
		return Result{}, err
	}

	loc, err := s.Save(ctx, Filename, ContentType, data)
	if err != nil {
		return Result{}, fmt.Errorf("save export: %w", err)
	}

	slog.Info("export saved", "filename", Filename, "location", loc, "bytes", len(data), "cached", cached)
	return Result{Filename: Filename, Location: loc, Bytes: len(data), Cached: cached}, nil
}

// Export renders p without a cache and saves it through s.
func Export(ctx context.Context, p models.Profile, s Saver) (Result, error) {
	return NewExporter(nil).Export(ctx, p, s)
}
