package repositories

import (
	"context"

	"github.com/AlexSchroder3798/FlyFishing3/internal/domain/entities"
)

// ReportRepository defines the interface for fishing report data operations.
// Listed reports carry their comments, each with the commenting user's
// username resolved at read time.
type ReportRepository interface {
	// Create persists a new report and returns the stored row with an
	// empty comment collection
	Create(ctx context.Context, report *entities.FishingReport) (*entities.FishingReport, error)

	// GetByID retrieves a report with its comments
	GetByID(ctx context.Context, id string) (*entities.FishingReport, error)

	// List retrieves reports sorted by timestamp descending, comments included
	List(ctx context.Context, filter ReportFilter) ([]*entities.FishingReport, error)

	// CreateComment persists a comment against a report and returns the
	// stored row with the username resolved
	CreateComment(ctx context.Context, comment *entities.Comment) (*entities.Comment, error)

	// AddLike increments a report's like counter
	AddLike(ctx context.Context, reportID string) error
}

// ReportFilter defines filters for listing reports
type ReportFilter struct {
	UserID     string
	LocationID string
	Limit      int
	Offset     int
}
