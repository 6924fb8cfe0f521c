// Package catalog locates images stored on disk under a numeric-id naming
// convention: each entry is a single file named {id}.{ext} inside the
// catalog's directory.
package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"tryon-server/internal/domain"
)

// extensionOrder is the fixed precedence used when an id could exist under
// more than one extension. The first hit wins.
var extensionOrder = []string{"jpg", "jpeg", "png", "webp"}

// NotFoundError reports a catalog id with no matching file. It is an
// expected outcome, not a fault; callers surface it as a 404.
type NotFoundError struct {
	ID int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("catalog: image %d not found", e.ID)
}

func (e *NotFoundError) Unwrap() error {
	return domain.ErrNotFound
}

// Resolver looks up images by numeric id in a single directory.
type Resolver struct {
	dir string
}

func NewResolver(dir string) *Resolver {
	return &Resolver{dir: dir}
}

// Dir returns the directory this resolver scans.
func (r *Resolver) Dir() string {
	return r.dir
}

// Resolve returns the path and extension of the first regular file matching
// {id}.{ext} in precedence order. It has no side effects and is idempotent.
func (r *Resolver) Resolve(id int) (string, string, error) {
	for _, ext := range extensionOrder {
		path := filepath.Join(r.dir, strconv.Itoa(id)+"."+ext)
		info, err := os.Stat(path)
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		return path, ext, nil
	}
	return "", "", &NotFoundError{ID: id}
}
