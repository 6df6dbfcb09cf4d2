package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Handlers groups every HTTP handler the API serves.
type Handlers struct {
	Health *HealthHandler
	Search *SearchHandler
	Brand  *BrandHandler
	Page   *PageHandler
}

// Mount registers the routes on r. apiMiddlewares apply to /api/v1 only.
func (h Handlers) Mount(r chi.Router, apiMiddlewares ...func(http.Handler) http.Handler) {
	r.Get("/health", h.Health.Check)
	r.Get("/", h.Page.Index)

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(apiMiddlewares...)
		r.Get("/search", h.Search.Search)
		r.Post("/search", h.Search.SearchPost)
		r.Get("/brands", h.Brand.List)
		r.Get("/brands/{brand}/models", h.Brand.Models)
	})
}
