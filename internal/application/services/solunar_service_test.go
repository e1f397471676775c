package services_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AlexSchroder3798/FlyFishing3/internal/application/services"
	"github.com/AlexSchroder3798/FlyFishing3/internal/domain/entities"
)

func TestSolunarService_ForecastShape(t *testing.T) {
	service := services.NewSolunarService()
	coords := entities.Coordinates{Latitude: 44.65, Longitude: -111.1}

	forecast := service.Forecast(time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC), coords)

	require.Len(t, forecast.MajorPeriods, 2)
	require.Len(t, forecast.MinorPeriods, 2)
	for _, p := range forecast.MajorPeriods {
		assert.Equal(t, 2*time.Hour, p.End.Sub(p.Start))
	}
	for _, p := range forecast.MinorPeriods {
		assert.Equal(t, time.Hour, p.End.Sub(p.Start))
	}
	assert.GreaterOrEqual(t, forecast.DayRating, 1)
	assert.LessOrEqual(t, forecast.DayRating, 5)
	assert.GreaterOrEqual(t, forecast.MoonAge, 0.0)
	assert.Less(t, forecast.MoonAge, 29.531)
}

func TestSolunarService_NewMoonRatesBest(t *testing.T) {
	service := services.NewSolunarService()

	// 2024-04-08: new moon (the total eclipse day)
	forecast := service.Forecast(time.Date(2024, 4, 8, 0, 0, 0, 0, time.UTC), entities.Coordinates{})

	assert.Equal(t, "new_moon", forecast.MoonPhase)
	assert.Equal(t, 5, forecast.DayRating)
}

func TestSolunarService_Deterministic(t *testing.T) {
	service := services.NewSolunarService()
	coords := entities.Coordinates{Latitude: 44.65, Longitude: -111.1}
	date := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	first := service.Forecast(date, coords)
	second := service.Forecast(date, coords)

	assert.Equal(t, first, second)
}
