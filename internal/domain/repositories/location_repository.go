package repositories

import (
	"context"

	"github.com/AlexSchroder3798/FlyFishing3/internal/domain/entities"
)

// LocationRepository defines the interface for fishing location data operations
type LocationRepository interface {
	// Create persists a new location and returns the stored row, including
	// the store-assigned id and defaulted columns
	Create(ctx context.Context, location *entities.FishingLocation) (*entities.FishingLocation, error)

	// GetByID retrieves a location by ID
	GetByID(ctx context.Context, id string) (*entities.FishingLocation, error)

	// List retrieves locations sorted by rating descending
	List(ctx context.Context, filter LocationFilter) ([]*entities.FishingLocation, error)
}

// LocationSearchRepository defines the interface for location discovery search
type LocationSearchRepository interface {
	// Index indexes a location for search
	Index(ctx context.Context, location *entities.FishingLocation) error

	// Delete removes a location from the index
	Delete(ctx context.Context, id string) error

	// Search searches locations by free text and optional geo radius
	Search(ctx context.Context, params LocationSearchParams) ([]*entities.FishingLocation, error)
}

// LocationFilter defines filters for listing locations
type LocationFilter struct {
	Type       entities.WaterType
	Difficulty entities.Difficulty
	Access     entities.AccessType
	Limit      int
	Offset     int
}

// LocationSearchParams defines parameters for location search
type LocationSearchParams struct {
	Query     string
	Latitude  float64
	Longitude float64
	RadiusKm  float64
	Limit     int
	Offset    int
}
