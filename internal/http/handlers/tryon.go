package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"tryon-server/internal/tryon"
)

// multipartMemory is how much of a parsed form is held in memory before
// spilling to temp files; the request body cap is enforced separately.
const multipartMemory = 10 << 20

// Generate composes an outfit from a multipart upload: one person_image
// field plus one-to-thirteen outfit_images fields.
func (a *App) Generate(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, a.Cfg.MaxUploadBytes)

	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			a.error(w, http.StatusRequestEntityTooLarge, "Request body exceeds the upload limit.")
			return
		}
		a.error(w, http.StatusBadRequest, "Request must be a multipart form upload.")
		return
	}

	subjectFile, subjectHeader, err := r.FormFile("person_image")
	if err != nil {
		a.error(w, http.StatusBadRequest, "A person image is required.")
		return
	}
	defer subjectFile.Close()

	outfitHeaders := r.MultipartForm.File["outfit_images"]
	if len(outfitHeaders) == 0 {
		a.error(w, http.StatusBadRequest, "At least one outfit piece image is required.")
		return
	}

	garments := make([]tryon.Upload, 0, len(outfitHeaders))
	for _, header := range outfitHeaders {
		file, err := header.Open()
		if err != nil {
			a.error(w, http.StatusBadRequest, "Failed to read uploaded file.")
			return
		}
		defer file.Close()
		garments = append(garments, tryon.Upload{Filename: header.Filename, Reader: file})
	}

	subject := tryon.Upload{Filename: subjectHeader.Filename, Reader: subjectFile}
	res, err := a.Svc.ComposeFromUploads(r.Context(), subject, garments)
	if err != nil {
		a.composeError(w, err)
		return
	}

	a.json(w, http.StatusOK, map[string]any{
		"image_url":    res.ImageURL,
		"download_url": res.DownloadURL,
		"model_text":   textOrNil(res.Note),
	})
}

type tryOnRequest struct {
	ModelID  *int  `json:"model_id"`
	ImageIDs []int `json:"image_ids"`
}

// TryOn composes an outfit from catalog entries: a subject id and a list of
// garment ids. With ?raw=1 the stored image is streamed back directly.
func (a *App) TryOn(w http.ResponseWriter, r *http.Request) {
	var req tryOnRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "Request body must be JSON with model_id and image_ids.")
		return
	}
	if req.ModelID == nil {
		a.error(w, http.StatusBadRequest, "model_id is required.")
		return
	}

	res, err := a.Svc.ComposeFromCatalog(r.Context(), *req.ModelID, req.ImageIDs)
	if err != nil {
		a.composeError(w, err)
		return
	}

	if r.URL.Query().Get("raw") == "1" {
		w.Header().Set("Content-Type", res.MIMEType)
		http.ServeFile(w, r, res.Path)
		return
	}

	a.json(w, http.StatusOK, map[string]any{
		"image_url":    res.ImageURL,
		"download_url": res.DownloadURL,
		"model_text":   textOrNil(res.Note),
		"model_id":     *req.ModelID,
		"image_ids":    req.ImageIDs,
	})
}
