package services

import (
	"context"
	"time"

	"github.com/AlexSchroder3798/FlyFishing3/internal/domain/entities"
	"github.com/AlexSchroder3798/FlyFishing3/internal/domain/repositories"
	"github.com/AlexSchroder3798/FlyFishing3/internal/infrastructure/observability"
	apperrors "github.com/AlexSchroder3798/FlyFishing3/pkg/errors"
)

// CatchService handles business logic for the catch log
type CatchService struct {
	repo     repositories.CatchRecordRepository
	userRepo repositories.UserRepository
	status   *FetchStatus
}

// NewCatchService creates a new catch service
func NewCatchService(repo repositories.CatchRecordRepository, userRepo repositories.UserRepository, status *FetchStatus) *CatchService {
	return &CatchService{
		repo:     repo,
		userRepo: userRepo,
		status:   status,
	}
}

// Log validates and persists a catch, bumps the angler's catch counter,
// and returns the stored row
func (s *CatchService) Log(ctx context.Context, record *entities.CatchRecord) (*entities.CatchRecord, error) {
	if record.Timestamp.IsZero() {
		record.Timestamp = time.Now()
	}
	if err := record.Validate(); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	created, err := s.repo.Create(ctx, record)
	if err != nil {
		return nil, err
	}

	// The counter is denormalized convenience data; a failed bump never
	// loses the catch
	if err := s.userRepo.IncrementTotalCatches(ctx, created.UserID); err != nil {
		observability.LoggerFromContext(ctx).Warn().Err(err).Str("user_id", created.UserID).Msg("failed to increment total catches")
	}

	return created, nil
}

// GetByID retrieves a catch record; an unknown id yields (nil, nil)
func (s *CatchService) GetByID(ctx context.Context, id string) (*entities.CatchRecord, error) {
	record, err := s.repo.GetByID(ctx, id)
	if apperrors.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return record, nil
}

// List retrieves catch records newest first, degrading to an empty log on
// store failure
func (s *CatchService) List(ctx context.Context, filter repositories.CatchRecordFilter) []*entities.CatchRecord {
	records, err := s.repo.List(ctx, filter)
	if err != nil {
		observability.LoggerFromContext(ctx).Error().Err(err).Msg("catch list failed, serving empty log")
		s.status.RecordFailure("catches", err)
		return []*entities.CatchRecord{}
	}
	s.status.ClearFailure("catches")
	return records
}
