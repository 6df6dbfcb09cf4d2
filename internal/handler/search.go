package handler

import (
	"encoding/json"
	"net/http"

	"vehicle-lookup-api/internal/model"
	"vehicle-lookup-api/internal/service"
)

type SearchHandler struct {
	svc *service.LookupService
}

func NewSearchHandler(svc *service.LookupService) *SearchHandler {
	return &SearchHandler{svc: svc}
}

// Search runs the query in the q parameter
func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	resp := h.svc.Search(r.Context(), r.URL.Query().Get("q"))

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// SearchPost runs the query in a JSON body
func (h *SearchHandler) SearchPost(w http.ResponseWriter, r *http.Request) {
	var req model.SearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "Invalid JSON request body")
		return
	}

	resp := h.svc.Search(r.Context(), req.Query)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(model.ErrorResponse{
		Error:   code,
		Message: message,
	})
}
