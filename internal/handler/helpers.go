package handler

import (
	"errors"
	"net/http"

	"commsagent/internal/domain"
	"commsagent/internal/httputil"
)

// handleError converts domain errors to HTTP responses
func handleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		httputil.RespondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrCollaborator):
		httputil.RespondError(w, http.StatusBadGateway, err.Error())
	default:
		httputil.RespondError(w, http.StatusInternalServerError, "internal server error")
	}
}
