package httpapi

import (
	"net/http"

	"roomstyler/internal/http/handlers"
	"roomstyler/internal/infra"
	"roomstyler/internal/middleware"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

func NewRouter(app *handlers.App, logger infra.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(
		chimw.RealIP,
		chimw.Recoverer,
		middleware.RequestID,
		middleware.Logger(logger),
	)
	if app.Config != nil && len(app.Config.CORSOrigins) > 0 {
		r.Use(middleware.CORS(app.Config.CORSOrigins))
	}

	r.Get("/healthz", app.Health)

	r.Post("/upload/style", app.UploadStyle)
	r.Post("/upload/room", app.UploadRoom)
	r.Get("/styles", app.ListStyles)
	r.Post("/apply-style", app.ApplyStyle)

	return r
}
