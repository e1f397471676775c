package repositories

import (
	"context"

	"github.com/AlexSchroder3798/FlyFishing3/internal/domain/entities"
)

// UserRepository defines the interface for angler profile data operations.
// The profile row shares its id with the identity provider's user id.
type UserRepository interface {
	// Create persists a new profile and returns the stored row
	Create(ctx context.Context, user *entities.User) (*entities.User, error)

	// GetByID retrieves a profile by the shared identity id
	GetByID(ctx context.Context, id string) (*entities.User, error)

	// Update updates mutable profile fields and returns the stored row
	Update(ctx context.Context, user *entities.User) (*entities.User, error)

	// IncrementTotalCatches bumps the denormalized catch counter
	IncrementTotalCatches(ctx context.Context, id string) error
}
