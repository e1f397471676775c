package services

import (
	"context"
	"time"

	"github.com/AlexSchroder3798/FlyFishing3/internal/domain/entities"
	"github.com/AlexSchroder3798/FlyFishing3/internal/domain/repositories"
	"github.com/AlexSchroder3798/FlyFishing3/internal/infrastructure/observability"
	apperrors "github.com/AlexSchroder3798/FlyFishing3/pkg/errors"
)

// WaterConditionService handles business logic for water condition
// observations. Observations are append-only; the newest one per
// location is the current condition.
type WaterConditionService struct {
	repo   repositories.WaterConditionRepository
	status *FetchStatus
}

// NewWaterConditionService creates a new water condition service
func NewWaterConditionService(repo repositories.WaterConditionRepository, status *FetchStatus) *WaterConditionService {
	return &WaterConditionService{
		repo:   repo,
		status: status,
	}
}

// Record validates and persists an observation, returning the stored row
func (s *WaterConditionService) Record(ctx context.Context, condition *entities.WaterCondition) (*entities.WaterCondition, error) {
	if condition.LastUpdated.IsZero() {
		condition.LastUpdated = time.Now()
	}
	if err := condition.Validate(); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	return s.repo.Create(ctx, condition)
}

// List retrieves observations newest first, degrading to empty on store
// failure
func (s *WaterConditionService) List(ctx context.Context, filter repositories.WaterConditionFilter) []*entities.WaterCondition {
	conditions, err := s.repo.List(ctx, filter)
	if err != nil {
		observability.LoggerFromContext(ctx).Error().Err(err).Msg("water condition list failed, serving empty history")
		s.status.RecordFailure("water_conditions", err)
		return []*entities.WaterCondition{}
	}
	s.status.ClearFailure("water_conditions")
	return conditions
}

// Latest retrieves the most recent observation for a location; no
// observations yields (nil, nil)
func (s *WaterConditionService) Latest(ctx context.Context, locationID string) (*entities.WaterCondition, error) {
	condition, err := s.repo.LatestByLocation(ctx, locationID)
	if apperrors.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return condition, nil
}
