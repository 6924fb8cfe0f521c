// Package storage persists composition results onto the local filesystem.
// Results are write-once blobs; retention and cleanup belong to the
// operator, not to this service.
package storage

import (
	"bytes"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// extensionByMIME maps result mime types to file extensions. Unknown types
// fall back to png, matching the disambiguator's default.
var extensionByMIME = map[string]string{
	"image/png":  "png",
	"image/jpeg": "jpg",
	"image/webp": "webp",
}

// StoredResult describes one persisted composition image.
type StoredResult struct {
	ID          string
	Ext         string
	Path        string
	ViewURL     string
	DownloadURL string
}

// ResultStore writes result images under freshly generated names. Every
// write targets a unique random filename, so concurrent saves need no
// locking and can never clobber earlier results.
type ResultStore struct {
	dir string
}

// NewResultStore initializes a ResultStore rooted at dir, creating it if
// needed.
func NewResultStore(dir string) (*ResultStore, error) {
	dir = strings.TrimSpace(dir)
	if dir == "" {
		return nil, errors.New("storage: results directory is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: ensure results directory: %w", err)
	}
	return &ResultStore{dir: dir}, nil
}

// Dir returns the configured results directory.
func (s *ResultStore) Dir() string {
	return s.dir
}

// Save persists the image bytes under a random 128-bit hex identifier with
// an extension derived from the mime type, and returns the addresses the
// result is reachable at. The payload may arrive either as raw binary or as
// base64-encoded text; Save normalizes it before writing.
func (s *ResultStore) Save(data []byte, mimeType string) (StoredResult, error) {
	if len(data) == 0 {
		return StoredResult{}, errors.New("storage: empty image payload")
	}

	raw := normalizeImageBytes(data)

	ext, ok := extensionByMIME[mimeType]
	if !ok {
		ext = "png"
	}

	u := uuid.New()
	id := hex.EncodeToString(u[:])
	name := id + "." + ext
	path := filepath.Join(s.dir, name)

	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return StoredResult{}, fmt.Errorf("storage: write result: %w", err)
	}

	return StoredResult{
		ID:          id,
		Ext:         ext,
		Path:        path,
		ViewURL:     "/static/results/" + name,
		DownloadURL: "/download/" + name,
	}, nil
}

// normalizeImageBytes returns the binary image payload. The upstream
// contract does not say whether inline data arrives raw or base64-encoded,
// so known image signatures are checked first and a strict base64 decode is
// attempted only when none match. Payloads that are neither are written
// verbatim.
func normalizeImageBytes(data []byte) []byte {
	if looksLikeImage(data) {
		return data
	}
	decoded, err := base64.StdEncoding.DecodeString(strings.TrimSpace(string(data)))
	if err != nil {
		return data
	}
	return decoded
}

var imageSignatures = [][]byte{
	{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A},
	{0xFF, 0xD8, 0xFF},
	[]byte("RIFF"),
}

func looksLikeImage(data []byte) bool {
	for _, sig := range imageSignatures {
		if bytes.HasPrefix(data, sig) {
			return true
		}
	}
	return false
}
