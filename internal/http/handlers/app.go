package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/rs/zerolog"

	"tryon-server/internal/catalog"
	"tryon-server/internal/infra"
	"tryon-server/internal/storage"
	"tryon-server/internal/tryon"
)

type App struct {
	Cfg      *infra.Config
	Log      zerolog.Logger
	Svc      *tryon.Service
	Results  *storage.ResultStore
	Subjects *catalog.Resolver
	Garments *catalog.Resolver
}

func NewApp(cfg *infra.Config, log zerolog.Logger, svc *tryon.Service, results *storage.ResultStore, subjects, garments *catalog.Resolver) *App {
	return &App{
		Cfg:      cfg,
		Log:      log,
		Svc:      svc,
		Results:  results,
		Subjects: subjects,
		Garments: garments,
	}
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (a *App) error(w http.ResponseWriter, code int, message string) {
	a.json(w, code, map[string]any{"error": message})
}

// composeError translates pipeline outcomes to HTTP. Validation and
// not-found are client errors, a text-only model reply is 422 with the
// model's note, upstream faults are 502 with the upstream message.
func (a *App) composeError(w http.ResponseWriter, err error) {
	var verr *tryon.ValidationError
	if errors.As(err, &verr) {
		a.error(w, http.StatusBadRequest, verr.Message)
		return
	}
	var nf *catalog.NotFoundError
	if errors.As(err, &nf) {
		a.error(w, http.StatusNotFound, fmt.Sprintf("Image %d not found.", nf.ID))
		return
	}
	var noImage *tryon.NoImageError
	if errors.As(err, &noImage) {
		a.json(w, http.StatusUnprocessableEntity, map[string]any{
			"error":      "The model did not return an image. Try a different prompt.",
			"model_text": textOrNil(noImage.Note),
		})
		return
	}
	var upstream *tryon.UpstreamError
	if errors.As(err, &upstream) {
		a.error(w, http.StatusBadGateway, upstream.Message)
		return
	}
	a.Log.Error().Err(err).Msg("handlers: composition failed")
	a.error(w, http.StatusInternalServerError, "Internal server error.")
}

func textOrNil(s string) any {
	if s == "" {
		return nil
	}
	return s
}
