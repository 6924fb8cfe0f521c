package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"tryon-server/internal/http/handlers"
	"tryon-server/internal/middleware"
)

func NewRouter(app *handlers.App) http.Handler {
	r := chi.NewRouter()

	r.Use(
		chimw.RequestID,
		chimw.RealIP,
		chimw.Recoverer,
		middleware.Logger(app.Log),
	)
	if len(app.Cfg.CORSAllowedOrigins) > 0 {
		r.Use(middleware.CORS(app.Cfg.CORSAllowedOrigins))
	}

	r.Get("/health", app.Health)

	// Composition routes call the metered upstream model, so they get an
	// optional per-IP limiter of their own.
	r.Group(func(r chi.Router) {
		if app.Cfg.RateLimitRequests > 0 {
			r.Use(middleware.RateLimit(app.Cfg.RateLimitRequests, app.Cfg.RateLimitWindow))
		}
		r.Post("/generate", app.Generate)
		r.Post("/tryon", app.TryOn)
	})

	r.Get("/image/{id}", app.GarmentImage)
	r.Get("/model/{id}", app.SubjectImage)
	r.Get("/download/{filename}", app.DownloadResult)

	// Stored compositions are also browsable directly, mirroring the
	// view URLs that Save hands out.
	r.Handle("/static/results/*", http.StripPrefix("/static/results/",
		http.FileServer(http.Dir(app.Results.Dir()))))

	return r
}
