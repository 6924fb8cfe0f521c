// Package gemini adapts the outfit-composition payload to the Gemini
// generate-content API using the official SDK.
package gemini

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"google.golang.org/genai"

	"tryon-server/internal/tryon"
)

// Options controls how the Gemini client is configured.
type Options struct {
	APIKey string
	Model  string
	Logger zerolog.Logger
}

// Client invokes the Gemini model with mixed text/image response modalities.
// It implements tryon.Invoker.
type Client struct {
	client *genai.Client
	model  string
	logger zerolog.Logger
}

func NewClient(ctx context.Context, opts Options) (*Client, error) {
	if opts.APIKey == "" {
		return nil, fmt.Errorf("gemini: api key is required")
	}
	model := opts.Model
	if model == "" {
		model = "gemini-2.5-flash-image"
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  opts.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("gemini: create client: %w", err)
	}

	return &Client{client: client, model: model, logger: opts.Logger}, nil
}

// Model returns the configured model identifier.
func (c *Client) Model() string {
	return c.model
}

// Compose sends the ordered payload [prompt, subject, garments...] and
// declares TEXT and IMAGE response modalities. The call blocks for the full
// upstream duration; cancellation and retry policy belong to the caller.
func (c *Client) Compose(ctx context.Context, prompt string, subject tryon.Part, garments []tryon.Part) (*tryon.ModelResponse, error) {
	parts := make([]*genai.Part, 0, len(garments)+2)
	parts = append(parts, genai.NewPartFromText(prompt))
	parts = append(parts, genai.NewPartFromBytes(subject.Data, subject.MIMEType))
	for _, garment := range garments {
		parts = append(parts, genai.NewPartFromBytes(garment.Data, garment.MIMEType))
	}

	c.logger.Debug().
		Str("model", c.model).
		Int("parts", len(parts)).
		Msg("gemini: generate content")

	result, err := c.client.Models.GenerateContent(
		ctx,
		c.model,
		[]*genai.Content{{Parts: parts}},
		&genai.GenerateContentConfig{
			ResponseModalities: []string{"TEXT", "IMAGE"},
		},
	)
	if err != nil {
		return nil, err
	}

	return flattenResponse(result), nil
}

// flattenResponse converts the SDK response into the pipeline's part
// sequence, preserving array order across candidates so the last-wins
// disambiguation applies to everything the model sent.
func flattenResponse(result *genai.GenerateContentResponse) *tryon.ModelResponse {
	resp := &tryon.ModelResponse{}
	if result == nil {
		return resp
	}
	for _, candidate := range result.Candidates {
		if candidate == nil || candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if part == nil {
				continue
			}
			switch {
			case part.InlineData != nil && len(part.InlineData.Data) > 0:
				resp.Parts = append(resp.Parts, tryon.ResponsePart{Inline: &tryon.InlineImage{
					Data:     part.InlineData.Data,
					MIMEType: part.InlineData.MIMEType,
				}})
			case part.Text != "":
				resp.Parts = append(resp.Parts, tryon.ResponsePart{Text: part.Text})
			}
		}
	}
	return resp
}

var _ tryon.Invoker = (*Client)(nil)
