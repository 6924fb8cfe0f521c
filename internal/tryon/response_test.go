package tryon

import (
	"errors"
	"testing"

	"tryon-server/internal/domain"
)

func TestDisambiguateLastPartsWin(t *testing.T) {
	resp := &ModelResponse{Parts: []ResponsePart{
		{Text: "first note"},
		{Inline: &InlineImage{Data: []byte("one"), MIMEType: "image/jpeg"}},
		{Text: "second note"},
		{Inline: &InlineImage{Data: []byte("two"), MIMEType: "image/webp"}},
	}}

	image, note, err := Disambiguate(resp)
	if err != nil {
		t.Fatalf("Disambiguate: %v", err)
	}
	if string(image.Data) != "two" || image.MIMEType != "image/webp" {
		t.Fatalf("last image should win, got %q (%s)", image.Data, image.MIMEType)
	}
	if note != "second note" {
		t.Fatalf("last text should win, got %q", note)
	}
}

func TestDisambiguateDefaultsMIME(t *testing.T) {
	resp := &ModelResponse{Parts: []ResponsePart{
		{Inline: &InlineImage{Data: []byte("img")}},
	}}

	image, _, err := Disambiguate(resp)
	if err != nil {
		t.Fatalf("Disambiguate: %v", err)
	}
	if image.MIMEType != "image/png" {
		t.Fatalf("mime = %q, want image/png default", image.MIMEType)
	}
}

func TestDisambiguateTextOnly(t *testing.T) {
	resp := &ModelResponse{Parts: []ResponsePart{
		{Text: "I cannot produce that image."},
	}}

	_, _, err := Disambiguate(resp)
	var noImage *NoImageError
	if !errors.As(err, &noImage) {
		t.Fatalf("expected *NoImageError, got %v", err)
	}
	if noImage.Note != "I cannot produce that image." {
		t.Fatalf("note = %q", noImage.Note)
	}
	if !errors.Is(err, domain.ErrNoImage) {
		t.Fatal("error should match domain.ErrNoImage")
	}
}

func TestDisambiguateEmptyResponse(t *testing.T) {
	_, note, err := Disambiguate(&ModelResponse{})
	if err == nil {
		t.Fatal("expected *NoImageError for empty response")
	}
	if note != "" {
		t.Fatalf("note = %q, want empty", note)
	}
}
