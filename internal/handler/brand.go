package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"vehicle-lookup-api/internal/model"
	"vehicle-lookup-api/internal/service"
)

type BrandHandler struct {
	svc *service.LookupService
}

func NewBrandHandler(svc *service.LookupService) *BrandHandler {
	return &BrandHandler{svc: svc}
}

func (h *BrandHandler) List(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(model.BrandsResponse{
		Brands: h.svc.ListBrands(),
	})
}

// Models lists the models of a brand. The brand segment may be any fragment
// the resolver accepts, e.g. "land rover" or "benz".
func (h *BrandHandler) Models(w http.ResponseWriter, r *http.Request) {
	brand := chi.URLParam(r, "brand")

	resp, err := h.svc.BrandModels(brand)
	if errors.Is(err, service.ErrBrandNotFound) {
		writeError(w, http.StatusNotFound, "not_found", "Brand not found in catalog")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", "Failed to list models")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}
