package providers

import (
	"context"

	"github.com/AlexSchroder3798/FlyFishing3/internal/domain/entities"
)

// WeatherProvider fetches current weather for a coordinate
type WeatherProvider interface {
	// CurrentWeather returns the present conditions at the given point
	CurrentWeather(ctx context.Context, coords entities.Coordinates) (*entities.WeatherSnapshot, error)
}

// StreamFlowProvider fetches gauge readings for a location
type StreamFlowProvider interface {
	// CurrentFlow returns the latest gauge observation for a location
	CurrentFlow(ctx context.Context, locationID string, coords entities.Coordinates) (*entities.StreamFlow, error)
}
