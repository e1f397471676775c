package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/AlexSchroder3798/FlyFishing3/internal/application/services"
	"github.com/AlexSchroder3798/FlyFishing3/internal/domain/entities"
	"github.com/AlexSchroder3798/FlyFishing3/internal/domain/repositories"
	apperrors "github.com/AlexSchroder3798/FlyFishing3/pkg/errors"
	"github.com/AlexSchroder3798/FlyFishing3/tests/mocks"
)

func validLocation() *entities.FishingLocation {
	return &entities.FishingLocation{
		Name:        "Madison River",
		Coordinates: entities.Coordinates{Latitude: 44.65, Longitude: -111.1},
		Type:        entities.WaterTypeRiver,
		Difficulty:  entities.DifficultyIntermediate,
		Species:     []string{"rainbow trout"},
		Access:      entities.AccessPublic,
	}
}

func TestLocationService_List_DegradesToEmptyOnStoreFailure(t *testing.T) {
	ctx := context.Background()
	repo := new(mocks.MockLocationRepository)
	status := services.NewFetchStatus()
	service := services.NewLocationService(repo, nil, nil, nil, nil, status)

	repo.On("List", mock.Anything, mock.Anything).
		Return(nil, apperrors.NewStoreError("connection refused", nil))

	locations := service.List(ctx, repositories.LocationFilter{})

	require.NotNil(t, locations)
	assert.Empty(t, locations)

	failure, degraded := status.LastFailure("locations")
	require.True(t, degraded)
	assert.Equal(t, "locations", failure.Resource)
}

func TestLocationService_List_ClearsDegradedMarkOnSuccess(t *testing.T) {
	ctx := context.Background()
	repo := new(mocks.MockLocationRepository)
	status := services.NewFetchStatus()
	status.RecordFailure("locations", apperrors.NewStoreError("earlier failure", nil))
	service := services.NewLocationService(repo, nil, nil, nil, nil, status)

	repo.On("List", mock.Anything, mock.Anything).
		Return([]*entities.FishingLocation{}, nil)

	service.List(ctx, repositories.LocationFilter{})

	_, degraded := status.LastFailure("locations")
	assert.False(t, degraded)
}

func TestLocationService_GetByID_UnknownIDIsNilNil(t *testing.T) {
	ctx := context.Background()
	repo := new(mocks.MockLocationRepository)
	service := services.NewLocationService(repo, nil, nil, nil, nil, services.NewFetchStatus())

	repo.On("GetByID", mock.Anything, "missing").
		Return(nil, apperrors.NewNotFoundError("location with id missing not found"))

	location, err := service.GetByID(ctx, "missing")

	require.NoError(t, err)
	assert.Nil(t, location)
}

func TestLocationService_Create_ValidatesBeforePersisting(t *testing.T) {
	ctx := context.Background()
	repo := new(mocks.MockLocationRepository)
	service := services.NewLocationService(repo, nil, nil, nil, nil, services.NewFetchStatus())

	invalid := validLocation()
	invalid.Type = "ocean"

	created, err := service.Create(ctx, invalid)

	require.Error(t, err)
	assert.Nil(t, created)
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeValidation))
	repo.AssertNotCalled(t, "Create")
}

func TestLocationService_Create_IndexFailureDoesNotFailWrite(t *testing.T) {
	ctx := context.Background()
	repo := new(mocks.MockLocationRepository)
	searchRepo := new(mocks.MockLocationSearchRepository)
	service := services.NewLocationService(repo, searchRepo, nil, nil, nil, services.NewFetchStatus())

	stored := validLocation()
	stored.ID = "loc-1"

	repo.On("Create", mock.Anything, mock.Anything).Return(stored, nil)
	searchRepo.On("Index", mock.Anything, stored).
		Return(apperrors.NewExternalError("typesense unavailable", nil))

	created, err := service.Create(ctx, validLocation())

	require.NoError(t, err)
	assert.Equal(t, "loc-1", created.ID)
	searchRepo.AssertExpectations(t)
}

func TestLocationService_CurrentConditions_ProviderFailuresLeaveSectionsNil(t *testing.T) {
	ctx := context.Background()
	repo := new(mocks.MockLocationRepository)
	conditionRepo := new(mocks.MockWaterConditionRepository)
	weather := new(mocks.MockWeatherProvider)
	flow := new(mocks.MockStreamFlowProvider)
	service := services.NewLocationService(repo, nil, conditionRepo, weather, flow, services.NewFetchStatus())

	location := validLocation()
	location.ID = "loc-1"

	repo.On("GetByID", mock.Anything, "loc-1").Return(location, nil)
	conditionRepo.On("LatestByLocation", mock.Anything, "loc-1").
		Return(&entities.WaterCondition{LocationID: "loc-1", Clarity: entities.ClarityClear}, nil)
	weather.On("CurrentWeather", mock.Anything, location.Coordinates).
		Return(nil, apperrors.NewExternalError("weather down", nil))
	flow.On("CurrentFlow", mock.Anything, "loc-1", location.Coordinates).
		Return(&entities.StreamFlow{LocationID: "loc-1", CurrentFlow: 320}, nil)

	bundle, err := service.CurrentConditions(ctx, "loc-1")

	require.NoError(t, err)
	require.NotNil(t, bundle)
	assert.Nil(t, bundle.Weather)
	require.NotNil(t, bundle.Water)
	assert.Equal(t, entities.ClarityClear, bundle.Water.Clarity)
	require.NotNil(t, bundle.StreamFlow)
	assert.Equal(t, 320.0, bundle.StreamFlow.CurrentFlow)
}

func TestLocationService_CurrentConditions_SkipsGaugeForStillWater(t *testing.T) {
	ctx := context.Background()
	repo := new(mocks.MockLocationRepository)
	flow := new(mocks.MockStreamFlowProvider)
	service := services.NewLocationService(repo, nil, nil, nil, flow, services.NewFetchStatus())

	pond := validLocation()
	pond.ID = "loc-2"
	pond.Type = entities.WaterTypePond

	repo.On("GetByID", mock.Anything, "loc-2").Return(pond, nil)

	bundle, err := service.CurrentConditions(ctx, "loc-2")

	require.NoError(t, err)
	assert.Nil(t, bundle.StreamFlow)
	flow.AssertNotCalled(t, "CurrentFlow")
}
