package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/AlexSchroder3798/FlyFishing3/internal/domain/entities"
)

// MockWeatherProvider mocks providers.WeatherProvider
type MockWeatherProvider struct {
	mock.Mock
}

func (m *MockWeatherProvider) CurrentWeather(ctx context.Context, coords entities.Coordinates) (*entities.WeatherSnapshot, error) {
	args := m.Called(ctx, coords)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.WeatherSnapshot), args.Error(1)
}

// MockStreamFlowProvider mocks providers.StreamFlowProvider
type MockStreamFlowProvider struct {
	mock.Mock
}

func (m *MockStreamFlowProvider) CurrentFlow(ctx context.Context, locationID string, coords entities.Coordinates) (*entities.StreamFlow, error) {
	args := m.Called(ctx, locationID, coords)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.StreamFlow), args.Error(1)
}
