package tryon

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"tryon-server/internal/domain"
)

// failReader trips the test if the encoder touches the stream.
type failReader struct{ t *testing.T }

func (r failReader) Read([]byte) (int, error) {
	r.t.Fatal("upload bytes were read before validation")
	return 0, io.EOF
}

func TestPartFromUploadAllowedTypes(t *testing.T) {
	cases := []struct {
		filename string
		mime     string
	}{
		{"photo.jpg", "image/jpeg"},
		{"photo.JPEG", "image/jpeg"},
		{"photo.png", "image/png"},
		{"photo.WebP", "image/webp"},
	}
	for _, tc := range cases {
		part, err := PartFromUpload(Upload{Filename: tc.filename, Reader: bytes.NewReader([]byte("data"))})
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", tc.filename, err)
		}
		if part.MIMEType != tc.mime {
			t.Fatalf("%s: mime = %q, want %q", tc.filename, part.MIMEType, tc.mime)
		}
		if string(part.Data) != "data" {
			t.Fatalf("%s: data mismatch", tc.filename)
		}
	}
}

func TestPartFromUploadRejectsBeforeReading(t *testing.T) {
	for _, filename := range []string{"note.txt", "archive.zip", "noextension", "trick.jpg.gif"} {
		_, err := PartFromUpload(Upload{Filename: filename, Reader: failReader{t}})
		if err == nil {
			t.Fatalf("%s: expected rejection", filename)
		}
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("%s: expected *ValidationError, got %T", filename, err)
		}
		if !errors.Is(err, domain.ErrInvalidInput) {
			t.Fatalf("%s: error should match domain.ErrInvalidInput", filename)
		}
	}
}

func TestPartFromFileReadsResolvedImage(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "12.jpeg")
	if err := os.WriteFile(path, []byte("jpeg-bytes"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	part, err := PartFromFile(path, "jpeg")
	if err != nil {
		t.Fatalf("PartFromFile: %v", err)
	}
	if part.MIMEType != "image/jpeg" {
		t.Fatalf("mime = %q, want image/jpeg", part.MIMEType)
	}
	if string(part.Data) != "jpeg-bytes" {
		t.Fatal("data mismatch")
	}
}

func TestAllowedFilenameEquivalenceClasses(t *testing.T) {
	// jpg and jpeg are the same class: both map to image/jpeg.
	a, _ := PartFromUpload(Upload{Filename: "x.jpg", Reader: bytes.NewReader(nil)})
	b, _ := PartFromUpload(Upload{Filename: "x.jpeg", Reader: bytes.NewReader(nil)})
	if a.MIMEType != b.MIMEType {
		t.Fatalf("jpg (%s) and jpeg (%s) should share a mime type", a.MIMEType, b.MIMEType)
	}
}
