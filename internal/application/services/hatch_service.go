package services

import (
	"context"
	"time"

	"github.com/AlexSchroder3798/FlyFishing3/internal/domain/entities"
	"github.com/AlexSchroder3798/FlyFishing3/internal/domain/repositories"
	"github.com/AlexSchroder3798/FlyFishing3/internal/infrastructure/observability"
	apperrors "github.com/AlexSchroder3798/FlyFishing3/pkg/errors"
)

// HatchService handles business logic for the hatch calendar
type HatchService struct {
	repo   repositories.HatchEventRepository
	status *FetchStatus
	now    func() time.Time
}

// NewHatchService creates a new hatch service
func NewHatchService(repo repositories.HatchEventRepository, status *FetchStatus) *HatchService {
	return &HatchService{
		repo:   repo,
		status: status,
		now:    time.Now,
	}
}

// Create validates and persists a hatch event, returning the stored row
func (s *HatchService) Create(ctx context.Context, event *entities.HatchEvent) (*entities.HatchEvent, error) {
	if err := event.Validate(); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	return s.repo.Create(ctx, event)
}

// List retrieves hatch events earliest first, degrading to an empty
// calendar on store failure
func (s *HatchService) List(ctx context.Context, filter repositories.HatchEventFilter) []*entities.HatchEvent {
	events, err := s.repo.List(ctx, filter)
	if err != nil {
		observability.LoggerFromContext(ctx).Error().Err(err).Msg("hatch list failed, serving empty calendar")
		s.status.RecordFailure("hatches", err)
		return []*entities.HatchEvent{}
	}
	s.status.ClearFailure("hatches")
	return events
}

// Active retrieves the hatch events whose window covers the reference
// time; a zero reference means now
func (s *HatchService) Active(ctx context.Context, region string, at time.Time) []*entities.HatchEvent {
	if at.IsZero() {
		at = s.now()
	}

	events := s.List(ctx, repositories.HatchEventFilter{Region: region})
	active := []*entities.HatchEvent{}
	for _, event := range events {
		if event.ActiveAt(at) {
			active = append(active, event)
		}
	}
	return active
}
