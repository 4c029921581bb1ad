package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"listing-scraper/internal/db"
)

// NewRouter creates and configures the Chi router
func NewRouter(database *db.DB, s ListingScraper) http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(Logger)
	r.Use(CORS)

	h := NewHandlers(database, s)

	r.Route("/api", func(r chi.Router) {
		r.Post("/scrape", h.Scrape)
		r.Get("/properties", h.ListProperties)
		r.Get("/properties/{id}", h.GetProperty)
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	return r
}
