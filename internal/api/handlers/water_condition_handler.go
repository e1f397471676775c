package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/AlexSchroder3798/FlyFishing3/internal/application/services"
	"github.com/AlexSchroder3798/FlyFishing3/internal/domain/entities"
	"github.com/AlexSchroder3798/FlyFishing3/internal/domain/repositories"
)

// WaterConditionHandler handles water-condition HTTP requests
type WaterConditionHandler struct {
	service *services.WaterConditionService
}

// NewWaterConditionHandler creates a new water condition handler
func NewWaterConditionHandler(service *services.WaterConditionService) *WaterConditionHandler {
	return &WaterConditionHandler{service: service}
}

// RecordCondition handles POST /api/water-conditions
func (h *WaterConditionHandler) RecordCondition(w http.ResponseWriter, r *http.Request) {
	var condition entities.WaterCondition
	if err := json.NewDecoder(r.Body).Decode(&condition); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.service.Record(r.Context(), &condition)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, created)
}

// ListConditions handles GET /api/water-conditions
func (h *WaterConditionHandler) ListConditions(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := repositories.WaterConditionFilter{
		LocationID: query.Get("location_id"),
		Limit:      parseIntParam(query.Get("limit"), 30),
		Offset:     parseIntParam(query.Get("offset"), 0),
	}

	conditions := h.service.List(r.Context(), filter)

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"conditions": conditions,
		"count":      len(conditions),
	})
}

// GetLatestCondition handles GET /api/locations/{id}/water-conditions/latest
func (h *WaterConditionHandler) GetLatestCondition(w http.ResponseWriter, r *http.Request) {
	locationID := r.PathValue("id")
	if locationID == "" {
		respondWithError(w, http.StatusBadRequest, "location ID is required")
		return
	}

	condition, err := h.service.Latest(r.Context(), locationID)
	if err != nil {
		respondWithAppError(w, err)
		return
	}
	if condition == nil {
		respondWithError(w, http.StatusNotFound, "no conditions recorded for location")
		return
	}

	respondWithJSON(w, http.StatusOK, condition)
}
