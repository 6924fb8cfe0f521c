package handlers

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"strconv"

	"github.com/go-chi/chi/v5"

	"tryon-server/internal/catalog"
)

// GarmentImage serves a garment-catalog entry by numeric id.
func (a *App) GarmentImage(w http.ResponseWriter, r *http.Request) {
	a.serveCatalog(w, r, a.Garments)
}

// SubjectImage serves a subject-catalog entry by numeric id.
func (a *App) SubjectImage(w http.ResponseWriter, r *http.Request) {
	a.serveCatalog(w, r, a.Subjects)
}

func (a *App) serveCatalog(w http.ResponseWriter, r *http.Request, resolver *catalog.Resolver) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		a.error(w, http.StatusBadRequest, "Image id must be an integer.")
		return
	}
	path, _, err := resolver.Resolve(id)
	if err != nil {
		a.error(w, http.StatusNotFound, fmt.Sprintf("Image %d not found.", id))
		return
	}
	http.ServeFile(w, r, path)
}

// Stored result names are always a 32-char hex id plus a known extension;
// anything else is rejected without touching the filesystem.
var resultName = regexp.MustCompile(`^[0-9a-f]{32}\.(png|jpg|webp)$`)

// DownloadResult serves a stored composition as an attachment.
func (a *App) DownloadResult(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "filename")
	if !resultName.MatchString(name) {
		a.error(w, http.StatusNotFound, "Result not found.")
		return
	}
	path := filepath.Join(a.Results.Dir(), name)
	if info, err := os.Stat(path); err != nil || !info.Mode().IsRegular() {
		a.error(w, http.StatusNotFound, "Result not found.")
		return
	}
	w.Header().Set("Content-Disposition", `attachment; filename="`+name+`"`)
	http.ServeFile(w, r, path)
}
