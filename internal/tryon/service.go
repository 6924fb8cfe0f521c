package tryon

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"tryon-server/internal/catalog"
)

// MaxGarments caps the number of garment images per request; with the
// subject that is 14 images total.
const MaxGarments = 13

// Service orchestrates one composition request end to end: validate, encode,
// prompt, invoke, disambiguate, persist. Each call is independent and
// synchronous; concurrent requests share nothing but the results directory,
// which is collision-safe because stored names are randomly generated.
type Service struct {
	invoker  Invoker
	store    Store
	subjects *catalog.Resolver
	garments *catalog.Resolver
	logger   zerolog.Logger
}

func NewService(invoker Invoker, store Store, subjects, garments *catalog.Resolver, logger zerolog.Logger) *Service {
	return &Service{
		invoker:  invoker,
		store:    store,
		subjects: subjects,
		garments: garments,
		logger:   logger,
	}
}

// ComposeFromUploads runs the pipeline on raw uploaded images. All filenames
// are validated before any upload is read, so a bad request never reaches
// the encoder or the model.
func (s *Service) ComposeFromUploads(ctx context.Context, subject Upload, garments []Upload) (*Result, error) {
	if subject.Reader == nil || subject.Filename == "" {
		return nil, &ValidationError{Message: "A person image is required."}
	}
	if len(garments) == 0 {
		return nil, &ValidationError{Message: "At least one outfit piece image is required."}
	}
	if len(garments) > MaxGarments {
		return nil, &ValidationError{Message: fmt.Sprintf(
			"You can upload up to %d outfit pieces (%d images total with your photo).", MaxGarments, MaxGarments+1)}
	}

	for _, up := range append([]Upload{subject}, garments...) {
		if !AllowedFilename(up.Filename) {
			return nil, &ValidationError{Message: fmt.Sprintf(
				"Invalid file type: %s. Only PNG, JPG, JPEG, and WEBP are allowed.", up.Filename)}
		}
	}

	subjectPart, err := PartFromUpload(subject)
	if err != nil {
		return nil, err
	}
	garmentParts := make([]Part, 0, len(garments))
	for _, up := range garments {
		part, err := PartFromUpload(up)
		if err != nil {
			return nil, err
		}
		garmentParts = append(garmentParts, part)
	}

	return s.submit(ctx, subjectPart, garmentParts)
}

// ComposeFromCatalog runs the pipeline on catalog entries addressed by
// numeric id. The subject is resolved first, then garments in request order;
// the first missing id aborts the request before the model is called.
func (s *Service) ComposeFromCatalog(ctx context.Context, subjectID int, garmentIDs []int) (*Result, error) {
	if len(garmentIDs) == 0 {
		return nil, &ValidationError{Message: "image_ids must be a non-empty list."}
	}
	if len(garmentIDs) > MaxGarments {
		return nil, &ValidationError{Message: fmt.Sprintf(
			"You can provide up to %d outfit image_ids.", MaxGarments)}
	}

	path, ext, err := s.subjects.Resolve(subjectID)
	if err != nil {
		return nil, err
	}
	subjectPart, err := PartFromFile(path, ext)
	if err != nil {
		return nil, err
	}

	garmentParts := make([]Part, 0, len(garmentIDs))
	for _, id := range garmentIDs {
		path, ext, err := s.garments.Resolve(id)
		if err != nil {
			return nil, err
		}
		part, err := PartFromFile(path, ext)
		if err != nil {
			return nil, err
		}
		garmentParts = append(garmentParts, part)
	}

	return s.submit(ctx, subjectPart, garmentParts)
}

func (s *Service) submit(ctx context.Context, subject Part, garments []Part) (*Result, error) {
	prompt := ComposePrompt(len(garments))

	s.logger.Info().
		Int("garments", len(garments)).
		Msg("tryon: submitting composition request")

	resp, err := s.invoker.Compose(ctx, prompt, subject, garments)
	if err != nil {
		s.logger.Error().Err(err).Msg("tryon: upstream call failed")
		return nil, &UpstreamError{Message: err.Error(), Err: err}
	}

	image, note, err := Disambiguate(resp)
	if err != nil {
		return nil, err
	}

	stored, err := s.store.Save(image.Data, image.MIMEType)
	if err != nil {
		return nil, fmt.Errorf("persist result: %w", err)
	}

	s.logger.Info().
		Str("result_id", stored.ID).
		Str("mime", image.MIMEType).
		Int("bytes", len(image.Data)).
		Msg("tryon: composition stored")

	return &Result{
		ImageURL:    stored.ViewURL,
		DownloadURL: stored.DownloadURL,
		Path:        stored.Path,
		MIMEType:    image.MIMEType,
		Note:        note,
	}, nil
}
