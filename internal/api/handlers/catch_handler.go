package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/AlexSchroder3798/FlyFishing3/internal/application/services"
	"github.com/AlexSchroder3798/FlyFishing3/internal/domain/entities"
	"github.com/AlexSchroder3798/FlyFishing3/internal/domain/repositories"
)

// CatchHandler handles catch-record HTTP requests
type CatchHandler struct {
	service *services.CatchService
}

// NewCatchHandler creates a new catch handler
func NewCatchHandler(service *services.CatchService) *CatchHandler {
	return &CatchHandler{service: service}
}

// LogCatch handles POST /api/catches
func (h *CatchHandler) LogCatch(w http.ResponseWriter, r *http.Request) {
	var record entities.CatchRecord
	if err := json.NewDecoder(r.Body).Decode(&record); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.service.Log(r.Context(), &record)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, created)
}

// GetCatch handles GET /api/catches/{id}
func (h *CatchHandler) GetCatch(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		respondWithError(w, http.StatusBadRequest, "catch ID is required")
		return
	}

	record, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		respondWithAppError(w, err)
		return
	}
	if record == nil {
		respondWithError(w, http.StatusNotFound, "catch record not found")
		return
	}

	respondWithJSON(w, http.StatusOK, record)
}

// ListCatches handles GET /api/catches
func (h *CatchHandler) ListCatches(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := repositories.CatchRecordFilter{
		UserID:     query.Get("user_id"),
		LocationID: query.Get("location_id"),
		Limit:      parseIntParam(query.Get("limit"), 30),
		Offset:     parseIntParam(query.Get("offset"), 0),
	}

	records := h.service.List(r.Context(), filter)

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"catches": records,
		"count":   len(records),
	})
}
