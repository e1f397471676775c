package handlers

import (
	"net/http"

	"github.com/AlexSchroder3798/FlyFishing3/internal/application/services"
)

// HealthHandler reports liveness plus which list fetches are currently
// degraded to empty results
type HealthHandler struct {
	status *services.FetchStatus
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(status *services.FetchStatus) *HealthHandler {
	return &HealthHandler{status: status}
}

// GetHealth handles GET /health
func (h *HealthHandler) GetHealth(w http.ResponseWriter, r *http.Request) {
	payload := map[string]interface{}{"status": "ok"}

	if h.status != nil {
		failures := h.status.Failures()
		if len(failures) > 0 {
			payload["status"] = "degraded"
			payload["degraded"] = failures
		}
	}

	respondWithJSON(w, http.StatusOK, payload)
}
