package repositories

import (
	"context"

	"github.com/AlexSchroder3798/FlyFishing3/internal/domain/entities"
)

// WaterConditionRepository defines the interface for water condition data
// operations; conditions are append-only observations
type WaterConditionRepository interface {
	// Create persists a new observation and returns the stored row
	Create(ctx context.Context, condition *entities.WaterCondition) (*entities.WaterCondition, error)

	// List retrieves observations sorted by last_updated descending
	List(ctx context.Context, filter WaterConditionFilter) ([]*entities.WaterCondition, error)

	// LatestByLocation retrieves the most recent observation for a location
	LatestByLocation(ctx context.Context, locationID string) (*entities.WaterCondition, error)
}

// WaterConditionFilter defines filters for listing observations
type WaterConditionFilter struct {
	LocationID string
	Limit      int
	Offset     int
}
