package conditions

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/AlexSchroder3798/FlyFishing3/internal/domain/entities"
	"github.com/AlexSchroder3798/FlyFishing3/internal/domain/providers"
	apperrors "github.com/AlexSchroder3798/FlyFishing3/pkg/errors"
)

const (
	usgsInstantaneousURL = "https://waterservices.usgs.gov/nwis/iv/"
	dischargeParameter   = "00060" // discharge, cubic feet per second
	gaugeSearchBoxDeg    = 0.5
)

// USGSStreamFlowProvider implements StreamFlowProvider against the USGS
// instantaneous values service. It picks the nearest gauge by bounding
// box around the location's coordinates.
type USGSStreamFlowProvider struct {
	baseURL    string
	httpClient *http.Client
}

// NewUSGSStreamFlowProvider creates a new USGS stream flow provider
func NewUSGSStreamFlowProvider() providers.StreamFlowProvider {
	return NewUSGSStreamFlowProviderWithOptions(usgsInstantaneousURL, nil)
}

// NewUSGSStreamFlowProviderWithOptions allows overriding base URL and HTTP client (used for tests)
func NewUSGSStreamFlowProviderWithOptions(baseURL string, httpClient *http.Client) providers.StreamFlowProvider {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = usgsInstantaneousURL
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultHTTPTimeout}
	}
	return &USGSStreamFlowProvider{
		baseURL:    baseURL,
		httpClient: httpClient,
	}
}

type usgsResponse struct {
	Value struct {
		TimeSeries []struct {
			Values []struct {
				Value []struct {
					Value    string    `json:"value"`
					DateTime time.Time `json:"dateTime"`
				} `json:"value"`
			} `json:"values"`
		} `json:"timeSeries"`
	} `json:"value"`
}

// CurrentFlow returns the latest gauge observation near the location
func (p *USGSStreamFlowProvider) CurrentFlow(ctx context.Context, locationID string, coords entities.Coordinates) (*entities.StreamFlow, error) {
	params := url.Values{}
	params.Set("format", "json")
	params.Set("parameterCd", dischargeParameter)
	params.Set("period", "P7D")
	params.Set("bBox", fmt.Sprintf("%.4f,%.4f,%.4f,%.4f",
		coords.Longitude-gaugeSearchBoxDeg, coords.Latitude-gaugeSearchBoxDeg,
		coords.Longitude+gaugeSearchBoxDeg, coords.Latitude+gaugeSearchBoxDeg))

	reqURL := fmt.Sprintf("%s?%s", p.baseURL, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build stream flow request", err)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, apperrors.NewExternalError("stream flow request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, apperrors.NewExternalError(fmt.Sprintf("stream flow request returned status %d", resp.StatusCode), nil)
	}

	var payload usgsResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, apperrors.NewExternalError("failed to decode stream flow response", err)
	}

	readings, lastUpdated := extractReadings(&payload)
	if len(readings) == 0 {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("no gauge readings near location %s", locationID))
	}

	return buildStreamFlow(locationID, readings, lastUpdated), nil
}

// extractReadings flattens the first gauge's time series into a slice of
// readings ordered oldest first
func extractReadings(payload *usgsResponse) ([]float64, time.Time) {
	if len(payload.Value.TimeSeries) == 0 {
		return nil, time.Time{}
	}

	var readings []float64
	var lastUpdated time.Time
	for _, values := range payload.Value.TimeSeries[0].Values {
		for _, v := range values.Value {
			reading, err := strconv.ParseFloat(v.Value, 64)
			if err != nil {
				continue
			}
			readings = append(readings, reading)
			if v.DateTime.After(lastUpdated) {
				lastUpdated = v.DateTime
			}
		}
	}

	return readings, lastUpdated
}

// buildStreamFlow derives trend and status from a week of readings
func buildStreamFlow(locationID string, readings []float64, lastUpdated time.Time) *entities.StreamFlow {
	current := readings[len(readings)-1]

	var sum float64
	for _, r := range readings {
		sum += r
	}
	average := sum / float64(len(readings))

	trend := entities.TrendSteady
	if len(readings) > 1 {
		first := readings[0]
		switch {
		case current > first*1.05:
			trend = entities.TrendRising
		case current < first*0.95:
			trend = entities.TrendFalling
		}
	}

	status := entities.FlowNormal
	switch {
	case average > 0 && current > average*2:
		status = entities.FlowFlood
	case average > 0 && current > average*1.25:
		status = entities.FlowHigh
	case average > 0 && current < average*0.5:
		status = entities.FlowLow
	}

	return &entities.StreamFlow{
		LocationID:  locationID,
		CurrentFlow: current,
		AverageFlow: average,
		Trend:       trend,
		Status:      status,
		LastUpdated: lastUpdated,
	}
}
