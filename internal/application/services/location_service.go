package services

import (
	"context"

	"github.com/AlexSchroder3798/FlyFishing3/internal/domain/entities"
	"github.com/AlexSchroder3798/FlyFishing3/internal/domain/providers"
	"github.com/AlexSchroder3798/FlyFishing3/internal/domain/repositories"
	"github.com/AlexSchroder3798/FlyFishing3/internal/infrastructure/observability"
	apperrors "github.com/AlexSchroder3798/FlyFishing3/pkg/errors"
)

// LocationService handles business logic for the fishing location catalog
type LocationService struct {
	repo          repositories.LocationRepository
	searchRepo    repositories.LocationSearchRepository
	conditionRepo repositories.WaterConditionRepository
	weather       providers.WeatherProvider
	streamFlow    providers.StreamFlowProvider
	status        *FetchStatus
}

// NewLocationService creates a new location service
func NewLocationService(
	repo repositories.LocationRepository,
	searchRepo repositories.LocationSearchRepository,
	conditionRepo repositories.WaterConditionRepository,
	weather providers.WeatherProvider,
	streamFlow providers.StreamFlowProvider,
	status *FetchStatus,
) *LocationService {
	return &LocationService{
		repo:          repo,
		searchRepo:    searchRepo,
		conditionRepo: conditionRepo,
		weather:       weather,
		streamFlow:    streamFlow,
		status:        status,
	}
}

// Create validates, persists, and indexes a new location, returning the
// stored row
func (s *LocationService) Create(ctx context.Context, location *entities.FishingLocation) (*entities.FishingLocation, error) {
	if err := location.Validate(); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	created, err := s.repo.Create(ctx, location)
	if err != nil {
		return nil, err
	}

	// Index in search engine; eventual consistency, never fails the write
	if s.searchRepo != nil {
		if err := s.searchRepo.Index(ctx, created); err != nil {
			observability.LoggerFromContext(ctx).Warn().Err(err).Str("location_id", created.ID).Msg("failed to index location")
		}
	}

	return created, nil
}

// GetByID retrieves a location; an unknown id yields (nil, nil)
func (s *LocationService) GetByID(ctx context.Context, id string) (*entities.FishingLocation, error) {
	location, err := s.repo.GetByID(ctx, id)
	if apperrors.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return location, nil
}

// List retrieves locations sorted by rating. A store failure degrades to
// an empty catalog and is recorded on the fetch status.
func (s *LocationService) List(ctx context.Context, filter repositories.LocationFilter) []*entities.FishingLocation {
	locations, err := s.repo.List(ctx, filter)
	if err != nil {
		observability.LoggerFromContext(ctx).Error().Err(err).Msg("location list failed, serving empty catalog")
		s.status.RecordFailure("locations", err)
		return []*entities.FishingLocation{}
	}
	s.status.ClearFailure("locations")
	return locations
}

// Search searches locations via the search engine when available, falling
// back to a catalog listing
func (s *LocationService) Search(ctx context.Context, params repositories.LocationSearchParams) ([]*entities.FishingLocation, error) {
	if s.searchRepo != nil {
		return s.searchRepo.Search(ctx, params)
	}
	return s.repo.List(ctx, repositories.LocationFilter{Limit: params.Limit, Offset: params.Offset})
}

// LocationConditions bundles everything known about fishing conditions at
// a location right now
type LocationConditions struct {
	Location   *entities.FishingLocation `json:"location"`
	Water      *entities.WaterCondition  `json:"water,omitempty"`
	Weather    *entities.WeatherSnapshot `json:"weather,omitempty"`
	StreamFlow *entities.StreamFlow      `json:"streamFlow,omitempty"`
}

// CurrentConditions assembles the latest water observation plus live
// weather and gauge data for a location. Provider failures leave their
// section nil rather than failing the bundle.
func (s *LocationService) CurrentConditions(ctx context.Context, locationID string) (*LocationConditions, error) {
	location, err := s.repo.GetByID(ctx, locationID)
	if apperrors.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	bundle := &LocationConditions{Location: location}
	logger := observability.LoggerFromContext(ctx)

	if s.conditionRepo != nil {
		water, err := s.conditionRepo.LatestByLocation(ctx, locationID)
		if err != nil && !apperrors.IsNotFound(err) {
			logger.Warn().Err(err).Str("location_id", locationID).Msg("failed to load latest water condition")
		} else if err == nil {
			bundle.Water = water
		}
	}

	if s.weather != nil {
		weather, err := s.weather.CurrentWeather(ctx, location.Coordinates)
		if err != nil {
			logger.Warn().Err(err).Str("location_id", locationID).Msg("failed to load weather")
		} else {
			bundle.Weather = weather
		}
	}

	if s.streamFlow != nil && (location.Type == entities.WaterTypeRiver || location.Type == entities.WaterTypeStream) {
		flow, err := s.streamFlow.CurrentFlow(ctx, locationID, location.Coordinates)
		if err != nil {
			logger.Warn().Err(err).Str("location_id", locationID).Msg("failed to load stream flow")
		} else {
			bundle.StreamFlow = flow
		}
	}

	return bundle, nil
}
