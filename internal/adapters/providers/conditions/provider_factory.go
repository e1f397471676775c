package conditions

import (
	"context"

	"github.com/AlexSchroder3798/FlyFishing3/internal/domain/entities"
	"github.com/AlexSchroder3798/FlyFishing3/internal/domain/providers"
	"github.com/AlexSchroder3798/FlyFishing3/internal/infrastructure/observability"
	"github.com/AlexSchroder3798/FlyFishing3/pkg/config"
)

// NewProviders builds the weather and stream flow providers from config.
// Anything other than the http provider, or a dev fallback on error,
// lands on the deterministic mock.
func NewProviders(cfg *config.ConditionsConfig, allowMockFallback bool) (providers.WeatherProvider, providers.StreamFlowProvider) {
	mock := NewMockConditionsProvider()

	if cfg.Provider != "http" {
		return mock, mock
	}

	weather := NewOpenMeteoProviderWithOptions(cfg.WeatherURL, nil)
	flow := NewUSGSStreamFlowProviderWithOptions(cfg.StreamFlowURL, nil)

	if !allowMockFallback {
		return weather, flow
	}

	return &fallbackWeatherProvider{primary: weather, fallback: mock},
		&fallbackStreamFlowProvider{primary: flow, fallback: mock}
}

// fallbackWeatherProvider serves mock data when the upstream fails
type fallbackWeatherProvider struct {
	primary  providers.WeatherProvider
	fallback providers.WeatherProvider
}

func (p *fallbackWeatherProvider) CurrentWeather(ctx context.Context, coords entities.Coordinates) (*entities.WeatherSnapshot, error) {
	snapshot, err := p.primary.CurrentWeather(ctx, coords)
	if err != nil {
		observability.LoggerFromContext(ctx).Warn().Err(err).Msg("weather provider failed, serving mock data")
		return p.fallback.CurrentWeather(ctx, coords)
	}
	return snapshot, nil
}

// fallbackStreamFlowProvider serves mock data when the upstream fails
type fallbackStreamFlowProvider struct {
	primary  providers.StreamFlowProvider
	fallback providers.StreamFlowProvider
}

func (p *fallbackStreamFlowProvider) CurrentFlow(ctx context.Context, locationID string, coords entities.Coordinates) (*entities.StreamFlow, error) {
	flow, err := p.primary.CurrentFlow(ctx, locationID, coords)
	if err != nil {
		observability.LoggerFromContext(ctx).Warn().Err(err).Msg("stream flow provider failed, serving mock data")
		return p.fallback.CurrentFlow(ctx, locationID, coords)
	}
	return flow, nil
}
