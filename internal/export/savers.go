// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package export

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
)

// FileSaver writes documents into a local directory.
type FileSaver struct {
	Dir string
}

// Save writes data to Dir/name, creating Dir when needed.
func (f FileSaver) Save(_ context.Context, name, _ string, data []byte) (string, error) {
	if err := os.MkdirAll(f.Dir, 0o755); err != nil {
		return "", fmt.Errorf("create export dir: %w", err)
	}
	path := filepath.Join(f.Dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}

// HTTPSaver sends documents to a browser as a file download.
type HTTPSaver struct {
	W http.ResponseWriter
}

// Save writes the download response. Nothing is written when ctx is
// already done.
func (h HTTPSaver) Save(ctx context.Context, name, contentType string, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	hdr := h.W.Header()
	hdr.Set("Content-Type", contentType)
	hdr.Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	hdr.Set("Content-Length", strconv.Itoa(len(data)))
	h.W.WriteHeader(http.StatusOK)
	if _, err := h.W.Write(data); err != nil {
		return "", fmt.Errorf("write download: %w", err)
	}
	return "", nil
}
