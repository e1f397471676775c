package services

import (
	"context"
	"time"

	"github.com/AlexSchroder3798/FlyFishing3/internal/domain/entities"
	"github.com/AlexSchroder3798/FlyFishing3/internal/domain/repositories"
	"github.com/AlexSchroder3798/FlyFishing3/internal/infrastructure/observability"
	apperrors "github.com/AlexSchroder3798/FlyFishing3/pkg/errors"
)

// ReportService handles business logic for community fishing reports
type ReportService struct {
	repo   repositories.ReportRepository
	status *FetchStatus
}

// NewReportService creates a new report service
func NewReportService(repo repositories.ReportRepository, status *FetchStatus) *ReportService {
	return &ReportService{
		repo:   repo,
		status: status,
	}
}

// Create validates and persists a report, returning the stored row
func (s *ReportService) Create(ctx context.Context, report *entities.FishingReport) (*entities.FishingReport, error) {
	if report.Timestamp.IsZero() {
		report.Timestamp = time.Now()
	}
	if err := report.Validate(); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	return s.repo.Create(ctx, report)
}

// GetByID retrieves a report with comments; an unknown id yields (nil, nil)
func (s *ReportService) GetByID(ctx context.Context, id string) (*entities.FishingReport, error) {
	report, err := s.repo.GetByID(ctx, id)
	if apperrors.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return report, nil
}

// List retrieves reports newest first, degrading to an empty feed on
// store failure
func (s *ReportService) List(ctx context.Context, filter repositories.ReportFilter) []*entities.FishingReport {
	reports, err := s.repo.List(ctx, filter)
	if err != nil {
		observability.LoggerFromContext(ctx).Error().Err(err).Msg("report list failed, serving empty feed")
		s.status.RecordFailure("reports", err)
		return []*entities.FishingReport{}
	}
	s.status.ClearFailure("reports")
	return reports
}

// Comment validates and persists a comment against a report
func (s *ReportService) Comment(ctx context.Context, comment *entities.Comment) (*entities.Comment, error) {
	if comment.Timestamp.IsZero() {
		comment.Timestamp = time.Now()
	}
	if err := comment.Validate(); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	return s.repo.CreateComment(ctx, comment)
}

// Like increments a report's like counter
func (s *ReportService) Like(ctx context.Context, reportID string) error {
	return s.repo.AddLike(ctx, reportID)
}
