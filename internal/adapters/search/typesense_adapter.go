package search

import (
	"context"
	"fmt"

	"github.com/typesense/typesense-go/v2/typesense/api"
	"github.com/typesense/typesense-go/v2/typesense/api/pointer"

	"github.com/AlexSchroder3798/FlyFishing3/internal/domain/entities"
	"github.com/AlexSchroder3798/FlyFishing3/internal/domain/repositories"
	tsclient "github.com/AlexSchroder3798/FlyFishing3/internal/infrastructure/clients/typesense"
	apperrors "github.com/AlexSchroder3798/FlyFishing3/pkg/errors"
)

// TypesenseAdapter implements location discovery search using Typesense
type TypesenseAdapter struct {
	client *tsclient.Client
}

// Ensure TypesenseAdapter implements LocationSearchRepository
var _ repositories.LocationSearchRepository = (*TypesenseAdapter)(nil)

// NewTypesenseAdapter creates a new Typesense adapter
func NewTypesenseAdapter(client *tsclient.Client) *TypesenseAdapter {
	return &TypesenseAdapter{client: client}
}

// InitSchema ensures the locations collection exists
func (a *TypesenseAdapter) InitSchema(ctx context.Context) error {
	_, err := a.client.Client().Collection(tsclient.LocationsCollection).Retrieve(ctx)
	if err == nil {
		return nil // Collection exists
	}

	schema := &api.CollectionSchema{
		Name: tsclient.LocationsCollection,
		Fields: []api.Field{
			{Name: "id", Type: "string"},
			{Name: "name", Type: "string"},
			{Name: "type", Type: "string", Facet: pointer.True()},
			{Name: "difficulty", Type: "string", Facet: pointer.True()},
			{Name: "access", Type: "string", Facet: pointer.True()},
			{Name: "species", Type: "string[]"},
			{Name: "coordinates", Type: "geopoint"},
			{Name: "rating", Type: "float"},
			{Name: "review_count", Type: "int32"},
		},
		DefaultSortingField: pointer.String("rating"),
	}

	_, err = a.client.Client().Collections().Create(ctx, schema)
	if err != nil {
		return apperrors.NewExternalError("failed to create typesense collection", err)
	}

	return nil
}

// Index indexes a location for discovery search
func (a *TypesenseAdapter) Index(ctx context.Context, location *entities.FishingLocation) error {
	document := map[string]interface{}{
		"id":           location.ID,
		"name":         location.Name,
		"type":         string(location.Type),
		"difficulty":   string(location.Difficulty),
		"access":       string(location.Access),
		"species":      location.Species,
		"coordinates":  []float64{location.Coordinates.Latitude, location.Coordinates.Longitude},
		"rating":       location.Rating,
		"review_count": location.ReviewCount,
	}

	_, err := a.client.Client().Collection(tsclient.LocationsCollection).Documents().Upsert(ctx, document)
	if err != nil {
		return apperrors.NewExternalError("failed to index location", err)
	}

	return nil
}

// Delete removes a location from the index
func (a *TypesenseAdapter) Delete(ctx context.Context, id string) error {
	_, err := a.client.Client().Collection(tsclient.LocationsCollection).Document(id).Delete(ctx)
	if err != nil {
		return apperrors.NewExternalError("failed to delete location from index", err)
	}
	return nil
}

// Search searches locations by free text over name and species, with an
// optional geo radius filter
func (a *TypesenseAdapter) Search(ctx context.Context, params repositories.LocationSearchParams) ([]*entities.FishingLocation, error) {
	query := params.Query
	if query == "" {
		query = "*"
	}
	limit := params.Limit
	if limit <= 0 {
		limit = 20
	}

	searchParams := &api.SearchCollectionParams{
		Q:       pointer.String(query),
		QueryBy: pointer.String("name,species"),
		SortBy:  pointer.String("_text_match:desc,rating:desc"),
		Page:    pointer.Int(params.Offset/limit + 1),
		PerPage: pointer.Int(limit),
	}
	if params.RadiusKm > 0 {
		searchParams.FilterBy = pointer.String(fmt.Sprintf(
			"coordinates:(%f, %f, %f km)", params.Latitude, params.Longitude, params.RadiusKm))
	}

	result, err := a.client.Client().Collection(tsclient.LocationsCollection).Documents().Search(ctx, searchParams)
	if err != nil {
		return nil, apperrors.NewExternalError("failed to search locations", err)
	}

	locations := []*entities.FishingLocation{}
	if result.Hits == nil {
		return locations, nil
	}
	for _, hit := range *result.Hits {
		if hit.Document == nil {
			continue
		}
		locations = append(locations, documentToLocation(*hit.Document))
	}

	return locations, nil
}

// documentToLocation rebuilds a location from an index document. Hits are
// search projections; callers needing full rows fetch them from the store.
func documentToLocation(doc map[string]interface{}) *entities.FishingLocation {
	location := &entities.FishingLocation{Species: []string{}}

	if val, ok := doc["id"].(string); ok {
		location.ID = val
	}
	if val, ok := doc["name"].(string); ok {
		location.Name = val
	}
	if val, ok := doc["type"].(string); ok {
		location.Type = entities.WaterType(val)
	}
	if val, ok := doc["difficulty"].(string); ok {
		location.Difficulty = entities.Difficulty(val)
	}
	if val, ok := doc["access"].(string); ok {
		location.Access = entities.AccessType(val)
	}
	if val, ok := doc["rating"].(float64); ok {
		location.Rating = val
	}
	if val, ok := doc["review_count"].(float64); ok {
		location.ReviewCount = int(val)
	}
	if coords, ok := doc["coordinates"].([]interface{}); ok && len(coords) == 2 {
		if lat, ok := coords[0].(float64); ok {
			location.Coordinates.Latitude = lat
		}
		if lon, ok := coords[1].(float64); ok {
			location.Coordinates.Longitude = lon
		}
	}
	if species, ok := doc["species"].([]interface{}); ok {
		for _, s := range species {
			if name, ok := s.(string); ok {
				location.Species = append(location.Species, name)
			}
		}
	}

	return location
}
