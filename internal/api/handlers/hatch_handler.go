package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/AlexSchroder3798/FlyFishing3/internal/application/services"
	"github.com/AlexSchroder3798/FlyFishing3/internal/domain/entities"
	"github.com/AlexSchroder3798/FlyFishing3/internal/domain/repositories"
)

// HatchHandler handles hatch-calendar HTTP requests
type HatchHandler struct {
	service *services.HatchService
}

// NewHatchHandler creates a new hatch handler
func NewHatchHandler(service *services.HatchService) *HatchHandler {
	return &HatchHandler{service: service}
}

// ListHatches handles GET /api/hatches
func (h *HatchHandler) ListHatches(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := repositories.HatchEventFilter{
		Region: query.Get("region"),
		Limit:  parseIntParam(query.Get("limit"), 50),
		Offset: parseIntParam(query.Get("offset"), 0),
	}

	events := h.service.List(r.Context(), filter)

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"hatches": events,
		"count":   len(events),
	})
}

// ListActiveHatches handles GET /api/hatches/active
func (h *HatchHandler) ListActiveHatches(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	var at time.Time
	if raw := query.Get("at"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "at must be a YYYY-MM-DD date")
			return
		}
		at = parsed
	}

	events := h.service.Active(r.Context(), query.Get("region"), at)

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"hatches": events,
		"count":   len(events),
	})
}

// CreateHatch handles POST /api/hatches
func (h *HatchHandler) CreateHatch(w http.ResponseWriter, r *http.Request) {
	var event entities.HatchEvent
	if err := json.NewDecoder(r.Body).Decode(&event); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.service.Create(r.Context(), &event)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, created)
}
