package handler

import (
	"log/slog"
	"net/http"

	"commsagent/internal/audience"
	"commsagent/internal/httputil"
)

// AudienceHandler exposes the configured audience profiles
type AudienceHandler struct {
	registry *audience.Registry
	logger   *slog.Logger
}

// NewAudienceHandler creates a new audience handler
func NewAudienceHandler(registry *audience.Registry, logger *slog.Logger) *AudienceHandler {
	return &AudienceHandler{
		registry: registry,
		logger:   logger,
	}
}

// ListAudiences returns every audience profile
// GET /api/audiences
func (h *AudienceHandler) ListAudiences(w http.ResponseWriter, r *http.Request) {
	profiles := h.registry.List()
	httputil.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"audiences": profiles,
	})
}
