package repositories

import (
	"context"

	"github.com/AlexSchroder3798/FlyFishing3/internal/domain/entities"
)

// HatchEventRepository defines the interface for hatch calendar data operations
type HatchEventRepository interface {
	// Create persists a new hatch event and returns the stored row
	Create(ctx context.Context, event *entities.HatchEvent) (*entities.HatchEvent, error)

	// GetByID retrieves a hatch event by ID
	GetByID(ctx context.Context, id string) (*entities.HatchEvent, error)

	// List retrieves hatch events sorted by start date ascending
	List(ctx context.Context, filter HatchEventFilter) ([]*entities.HatchEvent, error)
}

// HatchEventFilter defines filters for listing hatch events
type HatchEventFilter struct {
	Region string
	Limit  int
	Offset int
}
