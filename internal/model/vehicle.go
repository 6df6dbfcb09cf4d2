package model

// MatchRecord is one resolved catalog entry returned by a search.
type MatchRecord struct {
	Brand string `json:"brand"`
	Model string `json:"model"`
	Years []int  `json:"years"`
}

type Brand struct {
	Key         string `json:"key"`
	DisplayName string `json:"display_name"`
	ModelCount  int    `json:"model_count"`
}

type BrandsResponse struct {
	Brands []Brand `json:"brands"`
}

type VehicleModel struct {
	Name         string `json:"name"`
	Years        []int  `json:"years"`
	YearsDisplay string `json:"years_display"`
}

type BrandModelsResponse struct {
	Brand  string         `json:"brand"`
	Models []VehicleModel `json:"models"`
}
