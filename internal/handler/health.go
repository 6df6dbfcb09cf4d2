package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"vehicle-lookup-api/internal/catalog"
	"vehicle-lookup-api/internal/model"
)

// Pinger is implemented by database-backed catalog sources.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	catalog *catalog.Catalog
	source  string
	db      Pinger
}

// NewHealthHandler creates the health handler. db may be nil when the
// catalog does not come from a database.
func NewHealthHandler(c *catalog.Catalog, source string, db Pinger) *HealthHandler {
	return &HealthHandler{catalog: c, source: source, db: db}
}

func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	response := model.HealthResponse{
		Status:        "ok",
		CatalogSource: h.source,
		Brands:        h.catalog.Len(),
		Models:        h.catalog.ModelCount(),
		Timestamp:     time.Now(),
	}

	if h.db != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		response.Database = "connected"
		if err := h.db.Ping(ctx); err != nil {
			response.Database = "disconnected"
			response.Status = "degraded"
		}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}
