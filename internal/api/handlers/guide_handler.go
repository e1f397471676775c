package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/AlexSchroder3798/FlyFishing3/internal/application/services"
	"github.com/AlexSchroder3798/FlyFishing3/internal/domain/entities"
	"github.com/AlexSchroder3798/FlyFishing3/internal/domain/repositories"
)

// GuideHandler handles guide-directory HTTP requests
type GuideHandler struct {
	service *services.GuideService
}

// NewGuideHandler creates a new guide handler
func NewGuideHandler(service *services.GuideService) *GuideHandler {
	return &GuideHandler{service: service}
}

// ListGuides handles GET /api/guides
func (h *GuideHandler) ListGuides(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := repositories.GuideFilter{
		Location: query.Get("location"),
		Limit:    parseIntParam(query.Get("limit"), 30),
		Offset:   parseIntParam(query.Get("offset"), 0),
	}
	if raw := query.Get("verified"); raw != "" {
		verified := raw == "true"
		filter.Verified = &verified
	}

	guides := h.service.List(r.Context(), filter)

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"guides": guides,
		"count":  len(guides),
	})
}

// GetGuide handles GET /api/guides/{id}
func (h *GuideHandler) GetGuide(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		respondWithError(w, http.StatusBadRequest, "guide ID is required")
		return
	}

	guide, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		respondWithAppError(w, err)
		return
	}
	if guide == nil {
		respondWithError(w, http.StatusNotFound, "guide not found")
		return
	}

	respondWithJSON(w, http.StatusOK, guide)
}

// CreateGuide handles POST /api/guides
func (h *GuideHandler) CreateGuide(w http.ResponseWriter, r *http.Request) {
	var guide entities.Guide
	if err := json.NewDecoder(r.Body).Decode(&guide); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.service.Create(r.Context(), &guide)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, created)
}
