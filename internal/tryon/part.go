package tryon

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// mimeByExtension maps the allowed file extensions to their canonical MIME
// types. Membership here is the definition of an acceptable input image.
var mimeByExtension = map[string]string{
	"jpg":  "image/jpeg",
	"jpeg": "image/jpeg",
	"png":  "image/png",
	"webp": "image/webp",
}

// AllowedFilename reports whether the filename carries an allowed image
// extension. The check is case-insensitive.
func AllowedFilename(filename string) bool {
	_, ok := mimeByExtension[extensionOf(filename)]
	return ok
}

func extensionOf(filename string) string {
	ext := filepath.Ext(filename)
	if ext == "" {
		return ""
	}
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// PartFromUpload converts an uploaded image into a request part. The
// extension is validated before any bytes are read, so a rejected upload
// costs nothing. The stream is read fully into memory; the request body cap
// bounds its size.
func PartFromUpload(up Upload) (Part, error) {
	mime, ok := mimeByExtension[extensionOf(up.Filename)]
	if !ok {
		return Part{}, &ValidationError{Message: fmt.Sprintf(
			"Invalid file type: %s. Only PNG, JPG, JPEG, and WEBP are allowed.", up.Filename)}
	}
	data, err := io.ReadAll(up.Reader)
	if err != nil {
		return Part{}, fmt.Errorf("read upload %s: %w", up.Filename, err)
	}
	return Part{Data: data, MIMEType: mime}, nil
}

// PartFromFile converts a resolved catalog file into a request part. The
// extension comes from the resolver and must be a member of the allowed set.
func PartFromFile(path, ext string) (Part, error) {
	mime, ok := mimeByExtension[strings.ToLower(ext)]
	if !ok {
		return Part{}, &ValidationError{Message: fmt.Sprintf(
			"Invalid file type: %s. Only PNG, JPG, JPEG, and WEBP are allowed.", filepath.Base(path))}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Part{}, fmt.Errorf("read image %s: %w", path, err)
	}
	return Part{Data: data, MIMEType: mime}, nil
}
