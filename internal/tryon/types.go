// Package tryon implements the outfit-composition pipeline: it validates
// subject and garment inputs, encodes them into model request parts, builds
// the composition instruction, invokes the generative model and extracts the
// resulting image.
package tryon

import (
	"context"
	"fmt"
	"io"

	"tryon-server/internal/domain"
	"tryon-server/internal/storage"
)

// Part is an immutable (bytes, mime-type) unit of the model request. It is
// created once per input image and never mutated.
type Part struct {
	Data     []byte
	MIMEType string
}

// Upload is a raw image received from a client, identified by its declared
// filename. The reader is consumed fully when the upload is encoded.
type Upload struct {
	Filename string
	Reader   io.Reader
}

// ResponsePart is one element of the heterogeneous model response: either
// textual commentary or inline image data. Exactly one of the fields is set.
type ResponsePart struct {
	Text   string
	Inline *InlineImage
}

// InlineImage is binary image data returned by the model.
type InlineImage struct {
	Data     []byte
	MIMEType string
}

// ModelResponse is the ordered sequence of parts returned by the model. The
// upstream contract does not guarantee a single text or image part.
type ModelResponse struct {
	Parts []ResponsePart
}

// Invoker submits a composition payload to the generative model. The call
// blocks until the upstream responds or fails; no retry happens here.
type Invoker interface {
	Compose(ctx context.Context, prompt string, subject Part, garments []Part) (*ModelResponse, error)
}

// Store persists an extracted result image and returns its addresses.
type Store interface {
	Save(data []byte, mimeType string) (storage.StoredResult, error)
}

// Result is the successful outcome of a composition request.
type Result struct {
	ImageURL    string
	DownloadURL string
	Path        string
	MIMEType    string
	Note        string
}

// ValidationError reports rejected input. It is raised before any upstream
// call is made.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return domain.ErrInvalidInput
}

// UpstreamError reports a transport, auth or model-side fault from the
// generative model. The upstream message is preserved for the caller.
type UpstreamError struct {
	Message string
	Err     error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream failure: %s", e.Message)
}

func (e *UpstreamError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return domain.ErrProviderFailure
}

func (e *UpstreamError) Is(target error) bool {
	return target == domain.ErrProviderFailure
}

// NoImageError reports a response that carried no image part. The model may
// legally refuse or reply with commentary only, so this is an expected
// outcome; Note holds any textual explanation it gave.
type NoImageError struct {
	Note string
}

func (e *NoImageError) Error() string {
	return "model returned no image"
}

func (e *NoImageError) Unwrap() error {
	return domain.ErrNoImage
}
