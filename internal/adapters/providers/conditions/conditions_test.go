package conditions

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AlexSchroder3798/FlyFishing3/internal/domain/entities"
	apperrors "github.com/AlexSchroder3798/FlyFishing3/pkg/errors"
)

func TestOpenMeteoProvider_CurrentWeather(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "44.650000", r.URL.Query().Get("latitude"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"current":{
			"temperature_2m": 58.4,
			"relative_humidity_2m": 62,
			"surface_pressure": 1013.2,
			"wind_speed_10m": 7.5,
			"wind_direction_10m": 225,
			"cloud_cover": 80,
			"weather_code": 3
		}}`))
	}))
	defer server.Close()

	provider := NewOpenMeteoProviderWithOptions(server.URL, server.Client())

	weather, err := provider.CurrentWeather(context.Background(), entities.Coordinates{Latitude: 44.65, Longitude: -111.1})

	require.NoError(t, err)
	assert.Equal(t, 58.4, weather.Temperature)
	assert.Equal(t, "SW", weather.WindDirection)
	assert.Equal(t, "overcast", weather.Condition)
}

func TestOpenMeteoProvider_UpstreamFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	provider := NewOpenMeteoProviderWithOptions(server.URL, server.Client())

	_, err := provider.CurrentWeather(context.Background(), entities.Coordinates{})

	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeExternal))
}

func TestCompassDirection(t *testing.T) {
	assert.Equal(t, "N", compassDirection(0))
	assert.Equal(t, "E", compassDirection(90))
	assert.Equal(t, "SW", compassDirection(225))
	assert.Equal(t, "N", compassDirection(355))
}

func TestBuildStreamFlow_TrendAndStatus(t *testing.T) {
	now := time.Now()

	rising := buildStreamFlow("loc-1", []float64{100, 100, 100, 500}, now)
	assert.Equal(t, entities.TrendRising, rising.Trend)
	assert.Equal(t, entities.FlowFlood, rising.Status)
	assert.Equal(t, 500.0, rising.CurrentFlow)

	falling := buildStreamFlow("loc-1", []float64{200, 150, 80}, now)
	assert.Equal(t, entities.TrendFalling, falling.Trend)

	steady := buildStreamFlow("loc-1", []float64{100, 101, 100}, now)
	assert.Equal(t, entities.TrendSteady, steady.Trend)
	assert.Equal(t, entities.FlowNormal, steady.Status)
}

func TestUSGSProvider_NoGaugeNearby(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"value":{"timeSeries":[]}}`))
	}))
	defer server.Close()

	provider := NewUSGSStreamFlowProviderWithOptions(server.URL, server.Client())

	_, err := provider.CurrentFlow(context.Background(), "loc-1", entities.Coordinates{Latitude: 44.65, Longitude: -111.1})

	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestMockConditionsProvider_Deterministic(t *testing.T) {
	mock := NewMockConditionsProvider()
	coords := entities.Coordinates{Latitude: 44.65, Longitude: -111.1}

	first, err := mock.CurrentWeather(context.Background(), coords)
	require.NoError(t, err)
	second, err := mock.CurrentWeather(context.Background(), coords)
	require.NoError(t, err)

	assert.Equal(t, first, second)

	flow, err := mock.CurrentFlow(context.Background(), "loc-1", coords)
	require.NoError(t, err)
	assert.Equal(t, "loc-1", flow.LocationID)
	assert.Positive(t, flow.CurrentFlow)
}
