package conditions

import (
	"context"
	"hash/fnv"
	"time"

	"github.com/AlexSchroder3798/FlyFishing3/internal/domain/entities"
)

// MockConditionsProvider serves deterministic weather and flow data for
// development and tests. Values vary by coordinate and location id but
// stay stable across calls.
type MockConditionsProvider struct{}

// NewMockConditionsProvider creates a new mock provider
func NewMockConditionsProvider() *MockConditionsProvider {
	return &MockConditionsProvider{}
}

// CurrentWeather returns synthetic weather derived from the coordinates
func (m *MockConditionsProvider) CurrentWeather(ctx context.Context, coords entities.Coordinates) (*entities.WeatherSnapshot, error) {
	seed := hashSeed(coords.Latitude, coords.Longitude)

	conditions := []string{"clear", "partly_cloudy", "overcast", "rain"}
	directions := []string{"N", "NE", "E", "SE", "S", "SW", "W", "NW"}

	return &entities.WeatherSnapshot{
		Temperature:   45 + float64(seed%30),
		Humidity:      40 + float64(seed%50),
		Pressure:      1005 + float64(seed%20),
		WindSpeed:     float64(seed % 15),
		WindDirection: directions[seed%uint32(len(directions))],
		CloudCover:    float64(seed % 100),
		Condition:     conditions[seed%uint32(len(conditions))],
	}, nil
}

// CurrentFlow returns a synthetic gauge reading derived from the location id
func (m *MockConditionsProvider) CurrentFlow(ctx context.Context, locationID string, coords entities.Coordinates) (*entities.StreamFlow, error) {
	h := fnv.New32a()
	h.Write([]byte(locationID))
	seed := h.Sum32()

	average := 200 + float64(seed%800)
	current := average * (0.6 + float64(seed%80)/100)

	trend := entities.TrendSteady
	switch seed % 3 {
	case 1:
		trend = entities.TrendRising
	case 2:
		trend = entities.TrendFalling
	}

	status := entities.FlowNormal
	switch {
	case current > average*1.25:
		status = entities.FlowHigh
	case current < average*0.7:
		status = entities.FlowLow
	}

	return &entities.StreamFlow{
		LocationID:  locationID,
		CurrentFlow: current,
		AverageFlow: average,
		Trend:       trend,
		Status:      status,
		LastUpdated: time.Now().Truncate(time.Hour),
	}, nil
}

func hashSeed(lat, lon float64) uint32 {
	h := fnv.New32a()
	h.Write([]byte{
		byte(int(lat*100) & 0xff), byte(int(lat*100) >> 8 & 0xff),
		byte(int(lon*100) & 0xff), byte(int(lon*100) >> 8 & 0xff),
	})
	return h.Sum32()
}
