package handlers

import (
	"net/http"
	"time"

	"github.com/AlexSchroder3798/FlyFishing3/internal/application/services"
	"github.com/AlexSchroder3798/FlyFishing3/internal/domain/entities"
	"github.com/AlexSchroder3798/FlyFishing3/internal/domain/providers"
)

// ToolsHandler exposes the standalone angling tools: point weather, gauge
// readings, and the solunar calendar
type ToolsHandler struct {
	weather    providers.WeatherProvider
	streamFlow providers.StreamFlowProvider
	solunar    *services.SolunarService
}

// NewToolsHandler creates a new tools handler
func NewToolsHandler(weather providers.WeatherProvider, streamFlow providers.StreamFlowProvider, solunar *services.SolunarService) *ToolsHandler {
	return &ToolsHandler{
		weather:    weather,
		streamFlow: streamFlow,
		solunar:    solunar,
	}
}

// GetWeather handles GET /api/tools/weather?lat=&lon=
func (h *ToolsHandler) GetWeather(w http.ResponseWriter, r *http.Request) {
	coords, ok := coordsFromQuery(w, r)
	if !ok {
		return
	}

	snapshot, err := h.weather.CurrentWeather(r.Context(), coords)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, snapshot)
}

// GetStreamFlow handles GET /api/tools/streamflow?lat=&lon=
func (h *ToolsHandler) GetStreamFlow(w http.ResponseWriter, r *http.Request) {
	coords, ok := coordsFromQuery(w, r)
	if !ok {
		return
	}

	flow, err := h.streamFlow.CurrentFlow(r.Context(), "", coords)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, flow)
}

// GetSolunar handles GET /api/tools/solunar?date=&lat=&lon=
func (h *ToolsHandler) GetSolunar(w http.ResponseWriter, r *http.Request) {
	coords, ok := coordsFromQuery(w, r)
	if !ok {
		return
	}

	date := time.Now().UTC()
	if raw := r.URL.Query().Get("date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "date must be a YYYY-MM-DD date")
			return
		}
		date = parsed
	}

	respondWithJSON(w, http.StatusOK, h.solunar.Forecast(date, coords))
}

func coordsFromQuery(w http.ResponseWriter, r *http.Request) (entities.Coordinates, bool) {
	query := r.URL.Query()
	if query.Get("lat") == "" || query.Get("lon") == "" {
		respondWithError(w, http.StatusBadRequest, "lat and lon are required")
		return entities.Coordinates{}, false
	}

	return entities.Coordinates{
		Latitude:  parseFloatParam(query.Get("lat"), 0),
		Longitude: parseFloatParam(query.Get("lon"), 0),
	}, true
}
