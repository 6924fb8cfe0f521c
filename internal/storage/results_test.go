package storage

import (
	"bytes"
	"encoding/base64"
	"os"
	"regexp"
	"strings"
	"testing"
)

var hexID = regexp.MustCompile(`^[0-9a-f]{32}$`)

func webpBytes() []byte {
	return append([]byte("RIFF\x10\x00\x00\x00WEBP"), []byte("VP8 payload")...)
}

func TestSaveRoundTripsBytes(t *testing.T) {
	store, err := NewResultStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewResultStore: %v", err)
	}

	payload := webpBytes()
	res, err := store.Save(payload, "image/webp")
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if res.Ext != "webp" {
		t.Fatalf("Ext = %q, want webp", res.Ext)
	}
	if !hexID.MatchString(res.ID) {
		t.Fatalf("ID %q is not a 128-bit hex identifier", res.ID)
	}
	if !strings.HasSuffix(res.ViewURL, res.ID+".webp") || !strings.HasPrefix(res.ViewURL, "/static/results/") {
		t.Fatalf("ViewURL mismatch: %q", res.ViewURL)
	}
	if res.DownloadURL != "/download/"+res.ID+".webp" {
		t.Fatalf("DownloadURL mismatch: %q", res.DownloadURL)
	}

	got, err := os.ReadFile(res.Path)
	if err != nil {
		t.Fatalf("read stored file: %v", err)
	}
	if !bytes.Equal(got, payload) {
		t.Fatal("stored bytes differ from input")
	}
}

func TestSaveDecodesBase64Payload(t *testing.T) {
	store, err := NewResultStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewResultStore: %v", err)
	}

	raw := []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A, 1, 2, 3}
	encoded := []byte(base64.StdEncoding.EncodeToString(raw))

	res, err := store.Save(encoded, "image/png")
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := os.ReadFile(res.Path)
	if err != nil {
		t.Fatalf("read stored file: %v", err)
	}
	if !bytes.Equal(got, raw) {
		t.Fatal("base64 payload was not decoded before writing")
	}
}

func TestSaveDefaultsUnknownMIMEToPNG(t *testing.T) {
	store, err := NewResultStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewResultStore: %v", err)
	}

	res, err := store.Save([]byte{0xFF, 0xD8, 0xFF, 0xE0}, "application/octet-stream")
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if res.Ext != "png" {
		t.Fatalf("Ext = %q, want png fallback", res.Ext)
	}
}

func TestSaveGeneratesDistinctNames(t *testing.T) {
	store, err := NewResultStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewResultStore: %v", err)
	}

	seen := map[string]bool{}
	for i := 0; i < 8; i++ {
		res, err := store.Save(webpBytes(), "image/webp")
		if err != nil {
			t.Fatalf("Save: %v", err)
		}
		if seen[res.ID] {
			t.Fatalf("duplicate identifier %q", res.ID)
		}
		seen[res.ID] = true
	}
}

func TestSaveRejectsEmptyPayload(t *testing.T) {
	store, err := NewResultStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewResultStore: %v", err)
	}
	if _, err := store.Save(nil, "image/png"); err == nil {
		t.Fatal("expected error for empty payload")
	}
}
