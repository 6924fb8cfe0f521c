package gemini

import (
	"testing"

	"google.golang.org/genai"
)

func TestFlattenResponsePreservesOrder(t *testing.T) {
	result := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{
				Content: &genai.Content{Parts: []*genai.Part{
					{Text: "working on it"},
					{InlineData: &genai.Blob{MIMEType: "image/webp", Data: []byte("img-1")}},
				}},
			},
			{
				Content: &genai.Content{Parts: []*genai.Part{
					{InlineData: &genai.Blob{MIMEType: "image/png", Data: []byte("img-2")}},
				}},
			},
		},
	}

	resp := flattenResponse(result)
	if len(resp.Parts) != 3 {
		t.Fatalf("parts = %d, want 3", len(resp.Parts))
	}
	if resp.Parts[0].Text != "working on it" {
		t.Fatalf("part 0 text = %q", resp.Parts[0].Text)
	}
	if resp.Parts[1].Inline == nil || resp.Parts[1].Inline.MIMEType != "image/webp" {
		t.Fatalf("part 1 inline mismatch: %+v", resp.Parts[1])
	}
	if resp.Parts[2].Inline == nil || string(resp.Parts[2].Inline.Data) != "img-2" {
		t.Fatalf("part 2 inline mismatch: %+v", resp.Parts[2])
	}
}

func TestFlattenResponseSkipsEmptyParts(t *testing.T) {
	result := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			nil,
			{Content: nil},
			{
				Content: &genai.Content{Parts: []*genai.Part{
					nil,
					{},
					{InlineData: &genai.Blob{Data: nil}},
					{Text: "only this survives"},
				}},
			},
		},
	}

	resp := flattenResponse(result)
	if len(resp.Parts) != 1 {
		t.Fatalf("parts = %d, want 1", len(resp.Parts))
	}
	if resp.Parts[0].Text != "only this survives" {
		t.Fatalf("text = %q", resp.Parts[0].Text)
	}
}

func TestFlattenResponseNil(t *testing.T) {
	resp := flattenResponse(nil)
	if resp == nil || len(resp.Parts) != 0 {
		t.Fatalf("expected empty response, got %+v", resp)
	}
}
