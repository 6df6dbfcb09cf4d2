package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"vehicle-lookup-api/internal/catalog"
	"vehicle-lookup-api/internal/matching"
	"vehicle-lookup-api/internal/model"
)

var ErrBrandNotFound = errors.New("brand not found")

// User-facing messages
const (
	MsgMissingInput = "Please enter the car you want to query!"
	MsgNotFound     = "The model you entered was not found %q"
	MsgTryAgain     = "Please confirm that the input is correct and try again."
	MsgContact      = "Need help? Contact Customer Service: %s"
	MsgFound        = "Your query matches the following models %q"
	MsgTotal        = "A total of %d results were found"
	MsgCantFind     = "Can't find your model? Please confirm and try again or contact customer service."
)

type LookupService struct {
	catalog        *catalog.Catalog
	parser         *matching.Parser
	logger         *slog.Logger
	supportContact string
}

func NewLookupService(c *catalog.Catalog, logger *slog.Logger, supportContact string) *LookupService {
	return &LookupService{
		catalog:        c,
		parser:         matching.NewParser(c),
		logger:         logger,
		supportContact: supportContact,
	}
}

// Catalog returns the catalog the service searches.
func (s *LookupService) Catalog() *catalog.Catalog {
	return s.catalog
}

// Search runs a free-text query and builds one of the three outcomes:
// missing input, not found, or the itemized results.
func (s *LookupService) Search(ctx context.Context, query string) *model.SearchResponse {
	query = strings.TrimSpace(query)

	res, err := s.parser.Search(query)
	if errors.Is(err, matching.ErrEmptyInput) {
		return &model.SearchResponse{
			Status:   model.StatusMissingInput,
			Messages: []string{MsgMissingInput},
		}
	}

	s.logger.InfoContext(ctx, "vehicle search",
		"query", query,
		"strategy", res.Strategy,
		"results", len(res.Records),
	)

	if res.Empty() {
		messages := []string{fmt.Sprintf(MsgNotFound, query), MsgTryAgain}
		if s.supportContact != "" {
			messages = append(messages, fmt.Sprintf(MsgContact, s.supportContact))
		}
		return &model.SearchResponse{
			Status:   model.StatusNotFound,
			Query:    query,
			Messages: messages,
			Strategy: string(res.Strategy),
		}
	}

	results := make([]model.VehicleResult, 0, len(res.Records))
	for _, rec := range res.Records {
		results = append(results, model.VehicleResult{
			MatchRecord:  rec,
			BrandDisplay: strings.ToUpper(catalog.DisplayName(rec.Brand)),
			ModelDisplay: strings.ToUpper(rec.Model),
			YearsDisplay: matching.FormatYears(rec.Years),
		})
	}

	return &model.SearchResponse{
		Status:   model.StatusFound,
		Query:    query,
		Messages: []string{fmt.Sprintf(MsgFound, query)},
		Strategy: string(res.Strategy),
		Results:  results,
		Total:    len(results),
		Footer:   []string{fmt.Sprintf(MsgTotal, len(results)), MsgCantFind},
	}
}

// ListBrands returns every brand with its model count.
func (s *LookupService) ListBrands() []model.Brand {
	brands := make([]model.Brand, 0, s.catalog.Len())
	for _, b := range s.catalog.Brands() {
		brands = append(brands, model.Brand{
			Key:         b.Key,
			DisplayName: strings.ToUpper(b.DisplayName()),
			ModelCount:  len(b.Models),
		})
	}
	return brands
}

// BrandModels lists the models of the brand the fragment resolves to.
func (s *LookupService) BrandModels(fragment string) (*model.BrandModelsResponse, error) {
	key, ok := s.parser.Matcher().Resolver().Resolve(fragment)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrBrandNotFound, fragment)
	}
	brand, _ := s.catalog.Brand(key)

	models := make([]model.VehicleModel, 0, len(brand.Models))
	for _, m := range brand.Models {
		models = append(models, model.VehicleModel{
			Name:         m.Name,
			Years:        m.Years.Ints(),
			YearsDisplay: matching.FormatYears(m.Years),
		})
	}

	return &model.BrandModelsResponse{
		Brand:  brand.Key,
		Models: models,
	}, nil
}
