package repositories

import (
	"context"

	"github.com/AlexSchroder3798/FlyFishing3/internal/domain/entities"
)

// CatchRecordRepository defines the interface for catch log data operations
type CatchRecordRepository interface {
	// Create persists a new catch record and returns the stored row
	Create(ctx context.Context, record *entities.CatchRecord) (*entities.CatchRecord, error)

	// GetByID retrieves a catch record by ID
	GetByID(ctx context.Context, id string) (*entities.CatchRecord, error)

	// List retrieves catch records sorted by timestamp descending
	List(ctx context.Context, filter CatchRecordFilter) ([]*entities.CatchRecord, error)
}

// CatchRecordFilter defines filters for listing catch records
type CatchRecordFilter struct {
	UserID     string
	LocationID string
	Limit      int
	Offset     int
}
