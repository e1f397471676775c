package services

import (
	"context"

	"github.com/AlexSchroder3798/FlyFishing3/internal/domain/entities"
	"github.com/AlexSchroder3798/FlyFishing3/internal/domain/repositories"
	"github.com/AlexSchroder3798/FlyFishing3/internal/infrastructure/observability"
	apperrors "github.com/AlexSchroder3798/FlyFishing3/pkg/errors"
)

// GuideService handles business logic for the guide directory
type GuideService struct {
	repo   repositories.GuideRepository
	status *FetchStatus
}

// NewGuideService creates a new guide service
func NewGuideService(repo repositories.GuideRepository, status *FetchStatus) *GuideService {
	return &GuideService{
		repo:   repo,
		status: status,
	}
}

// Create validates and persists a guide listing, returning the stored row
func (s *GuideService) Create(ctx context.Context, guide *entities.Guide) (*entities.Guide, error) {
	if err := guide.Validate(); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	return s.repo.Create(ctx, guide)
}

// GetByID retrieves a guide; an unknown id yields (nil, nil)
func (s *GuideService) GetByID(ctx context.Context, id string) (*entities.Guide, error) {
	guide, err := s.repo.GetByID(ctx, id)
	if apperrors.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return guide, nil
}

// List retrieves guides best rated first, degrading to an empty directory
// on store failure
func (s *GuideService) List(ctx context.Context, filter repositories.GuideFilter) []*entities.Guide {
	guides, err := s.repo.List(ctx, filter)
	if err != nil {
		observability.LoggerFromContext(ctx).Error().Err(err).Msg("guide list failed, serving empty directory")
		s.status.RecordFailure("guides", err)
		return []*entities.Guide{}
	}
	s.status.ClearFailure("guides")
	return guides
}
