package conditions

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/AlexSchroder3798/FlyFishing3/internal/domain/entities"
	"github.com/AlexSchroder3798/FlyFishing3/internal/domain/providers"
	apperrors "github.com/AlexSchroder3798/FlyFishing3/pkg/errors"
)

const (
	openMeteoURL       = "https://api.open-meteo.com/v1/forecast"
	defaultHTTPTimeout = 8 * time.Second
)

// OpenMeteoProvider implements WeatherProvider against the Open-Meteo
// forecast API, which needs no API key
type OpenMeteoProvider struct {
	baseURL    string
	httpClient *http.Client
}

// NewOpenMeteoProvider creates a new Open-Meteo weather provider
func NewOpenMeteoProvider() providers.WeatherProvider {
	return NewOpenMeteoProviderWithOptions(openMeteoURL, nil)
}

// NewOpenMeteoProviderWithOptions allows overriding base URL and HTTP client (used for tests)
func NewOpenMeteoProviderWithOptions(baseURL string, httpClient *http.Client) providers.WeatherProvider {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = openMeteoURL
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultHTTPTimeout}
	}
	return &OpenMeteoProvider{
		baseURL:    baseURL,
		httpClient: httpClient,
	}
}

type openMeteoResponse struct {
	Current struct {
		Temperature   float64 `json:"temperature_2m"`
		Humidity      float64 `json:"relative_humidity_2m"`
		Pressure      float64 `json:"surface_pressure"`
		WindSpeed     float64 `json:"wind_speed_10m"`
		WindDirection float64 `json:"wind_direction_10m"`
		CloudCover    float64 `json:"cloud_cover"`
		WeatherCode   int     `json:"weather_code"`
	} `json:"current"`
}

// CurrentWeather returns the present conditions at the given point
func (p *OpenMeteoProvider) CurrentWeather(ctx context.Context, coords entities.Coordinates) (*entities.WeatherSnapshot, error) {
	params := url.Values{}
	params.Set("latitude", fmt.Sprintf("%f", coords.Latitude))
	params.Set("longitude", fmt.Sprintf("%f", coords.Longitude))
	params.Set("current", "temperature_2m,relative_humidity_2m,surface_pressure,wind_speed_10m,wind_direction_10m,cloud_cover,weather_code")
	params.Set("temperature_unit", "fahrenheit")
	params.Set("wind_speed_unit", "mph")

	reqURL := fmt.Sprintf("%s?%s", p.baseURL, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build weather request", err)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, apperrors.NewExternalError("weather request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, apperrors.NewExternalError(fmt.Sprintf("weather request returned status %d", resp.StatusCode), nil)
	}

	var payload openMeteoResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, apperrors.NewExternalError("failed to decode weather response", err)
	}

	return &entities.WeatherSnapshot{
		Temperature:   payload.Current.Temperature,
		Humidity:      payload.Current.Humidity,
		Pressure:      payload.Current.Pressure,
		WindSpeed:     payload.Current.WindSpeed,
		WindDirection: compassDirection(payload.Current.WindDirection),
		CloudCover:    payload.Current.CloudCover,
		Condition:     weatherCodeCondition(payload.Current.WeatherCode),
	}, nil
}

// compassDirection maps degrees to a 16-point compass label
func compassDirection(degrees float64) string {
	labels := []string{
		"N", "NNE", "NE", "ENE", "E", "ESE", "SE", "SSE",
		"S", "SSW", "SW", "WSW", "W", "WNW", "NW", "NNW",
	}
	for degrees < 0 {
		degrees += 360
	}
	idx := int((degrees+11.25)/22.5) % 16
	return labels[idx]
}

// weatherCodeCondition maps WMO weather codes to a display condition
func weatherCodeCondition(code int) string {
	switch {
	case code == 0:
		return "clear"
	case code <= 2:
		return "partly_cloudy"
	case code == 3:
		return "overcast"
	case code <= 48:
		return "fog"
	case code <= 57:
		return "drizzle"
	case code <= 67:
		return "rain"
	case code <= 77:
		return "snow"
	case code <= 82:
		return "rain_showers"
	case code <= 86:
		return "snow_showers"
	default:
		return "thunderstorm"
	}
}
