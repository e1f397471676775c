package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/AlexSchroder3798/FlyFishing3/internal/application/services"
	"github.com/AlexSchroder3798/FlyFishing3/internal/domain/entities"
	"github.com/AlexSchroder3798/FlyFishing3/internal/domain/repositories"
)

// LocationHandler handles fishing-location HTTP requests
type LocationHandler struct {
	service *services.LocationService
}

// NewLocationHandler creates a new location handler
func NewLocationHandler(service *services.LocationService) *LocationHandler {
	return &LocationHandler{service: service}
}

// ListLocations handles GET /api/locations
func (h *LocationHandler) ListLocations(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := repositories.LocationFilter{
		Type:       entities.WaterType(query.Get("type")),
		Difficulty: entities.Difficulty(query.Get("difficulty")),
		Access:     entities.AccessType(query.Get("access")),
		Limit:      parseIntParam(query.Get("limit"), 30),
		Offset:     parseIntParam(query.Get("offset"), 0),
	}

	locations := h.service.List(r.Context(), filter)

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"locations": locations,
		"count":     len(locations),
	})
}

// GetLocation handles GET /api/locations/{id}
func (h *LocationHandler) GetLocation(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		respondWithError(w, http.StatusBadRequest, "location ID is required")
		return
	}

	location, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		respondWithAppError(w, err)
		return
	}
	if location == nil {
		respondWithError(w, http.StatusNotFound, "location not found")
		return
	}

	respondWithJSON(w, http.StatusOK, location)
}

// CreateLocation handles POST /api/locations
func (h *LocationHandler) CreateLocation(w http.ResponseWriter, r *http.Request) {
	var location entities.FishingLocation
	if err := json.NewDecoder(r.Body).Decode(&location); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.service.Create(r.Context(), &location)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, created)
}

// SearchLocations handles GET /api/locations/search
func (h *LocationHandler) SearchLocations(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	params := repositories.LocationSearchParams{
		Query:     query.Get("q"),
		Latitude:  parseFloatParam(query.Get("lat"), 0),
		Longitude: parseFloatParam(query.Get("lon"), 0),
		RadiusKm:  parseFloatParam(query.Get("radius_km"), 0),
		Limit:     parseIntParam(query.Get("limit"), 20),
		Offset:    parseIntParam(query.Get("offset"), 0),
	}

	locations, err := h.service.Search(r.Context(), params)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"locations": locations,
		"count":     len(locations),
	})
}

// GetCurrentConditions handles GET /api/locations/{id}/conditions
func (h *LocationHandler) GetCurrentConditions(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		respondWithError(w, http.StatusBadRequest, "location ID is required")
		return
	}

	conditions, err := h.service.CurrentConditions(r.Context(), id)
	if err != nil {
		respondWithAppError(w, err)
		return
	}
	if conditions == nil {
		respondWithError(w, http.StatusNotFound, "location not found")
		return
	}

	respondWithJSON(w, http.StatusOK, conditions)
}

func parseIntParam(raw string, fallback int) int {
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return fallback
	}
	return v
}

func parseFloatParam(raw string, fallback float64) float64 {
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fallback
	}
	return v
}
