package model

import "time"

// Search outcome statuses
const (
	StatusFound        = "found"
	StatusNotFound     = "not_found"
	StatusMissingInput = "missing_input"
)

// SearchRequest is the free-text search body
type SearchRequest struct {
	Query string `json:"query"`
}

// SearchResponse carries one of the three search outcomes
type SearchResponse struct {
	Status   string          `json:"status"` // "found", "not_found", "missing_input"
	Query    string          `json:"query,omitempty"`
	Messages []string        `json:"messages"`
	Strategy string          `json:"strategy,omitempty"`
	Results  []VehicleResult `json:"results,omitempty"`
	Total    int             `json:"total"`
	Footer   []string        `json:"footer,omitempty"`
}

// VehicleResult is a MatchRecord prepared for display
type VehicleResult struct {
	MatchRecord
	BrandDisplay string `json:"brand_display"`
	ModelDisplay string `json:"model_display"`
	YearsDisplay string `json:"years_display"`
}

// HealthResponse is the health check payload
type HealthResponse struct {
	Status        string    `json:"status"`
	CatalogSource string    `json:"catalog_source"`
	Brands        int       `json:"brands"`
	Models        int       `json:"models"`
	Database      string    `json:"database,omitempty"`
	Timestamp     time.Time `json:"timestamp"`
}

// ErrorResponse is the JSON body of every error reply
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
