package handler

import (
	"log/slog"
	"net/http"
	"time"

	"commsagent/internal/domain/services"
	"commsagent/internal/httputil"
)

// CommsHandler handles the plan/draft/send lifecycle HTTP requests
type CommsHandler struct {
	commsService   services.CommsService
	projectService services.ProjectService
	logger         *slog.Logger
}

// NewCommsHandler creates a new communications handler
func NewCommsHandler(commsService services.CommsService, projectService services.ProjectService, logger *slog.Logger) *CommsHandler {
	return &CommsHandler{
		commsService:   commsService,
		projectService: projectService,
		logger:         logger,
	}
}

// GeneratePlan regenerates a project's communications plan
// POST /api/projects/{id}/plan
func (h *CommsHandler) GeneratePlan(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		httputil.RespondError(w, http.StatusBadRequest, "project ID is required")
		return
	}

	plan, err := h.commsService.GeneratePlan(r.Context(), id)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, plan)
}

// GetPlan returns a project's stored communications plan
// GET /api/projects/{id}/plan
func (h *CommsHandler) GetPlan(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		httputil.RespondError(w, http.StatusBadRequest, "project ID is required")
		return
	}

	project, err := h.projectService.GetProject(r.Context(), id)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, project.CommsPlan)
}

// Due lists pending communications due within the next week
// GET /api/communications/due
func (h *CommsHandler) Due(w http.ResponseWriter, r *http.Request) {
	due, err := h.commsService.Due(r.Context(), time.Now())
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"due_communications": due,
		"total":              len(due),
	})
}

// GenerateDrafts drafts email text for every audience of a plan entry
// POST /api/projects/{id}/communications/{commID}/drafts
func (h *CommsHandler) GenerateDrafts(w http.ResponseWriter, r *http.Request) {
	projectID := r.PathValue("id")
	commID := r.PathValue("commID")
	if projectID == "" || commID == "" {
		httputil.RespondError(w, http.StatusBadRequest, "project ID and communication ID are required")
		return
	}

	drafts, err := h.commsService.GenerateDrafts(r.Context(), projectID, commID)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"drafts": drafts,
	})
}

// RecordSend marks a drafted communication as sent
// POST /api/communications/send
func (h *CommsHandler) RecordSend(w http.ResponseWriter, r *http.Request) {
	var req services.RecordSendRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	entry, err := h.commsService.RecordSend(r.Context(), &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, entry)
}

// AddHistoryEntry records a communication sent outside the planned lifecycle
// POST /api/projects/{id}/history
func (h *CommsHandler) AddHistoryEntry(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		httputil.RespondError(w, http.StatusBadRequest, "project ID is required")
		return
	}

	var req services.AddHistoryRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	entry, err := h.commsService.AddHistoryEntry(r.Context(), id, &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, entry)
}
