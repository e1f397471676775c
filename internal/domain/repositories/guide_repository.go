package repositories

import (
	"context"

	"github.com/AlexSchroder3798/FlyFishing3/internal/domain/entities"
)

// GuideRepository defines the interface for guide listing data operations
type GuideRepository interface {
	// Create persists a new guide and returns the stored row
	Create(ctx context.Context, guide *entities.Guide) (*entities.Guide, error)

	// GetByID retrieves a guide by ID
	GetByID(ctx context.Context, id string) (*entities.Guide, error)

	// List retrieves guides sorted by rating descending
	List(ctx context.Context, filter GuideFilter) ([]*entities.Guide, error)
}

// GuideFilter defines filters for listing guides
type GuideFilter struct {
	Verified *bool
	Location string
	Limit    int
	Offset   int
}
