package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-doc-keeper/internal/logger"
	"github.com/MKhiriev/go-doc-keeper/internal/service"
	"github.com/MKhiriev/go-doc-keeper/internal/utils"
	"github.com/MKhiriev/go-doc-keeper/models"
)

func (h *Handler) checkContent(w http.ResponseWriter, r *http.Request) {
	request, ok := h.decodeContentRequest(w, r)
	if !ok {
		return
	}

	verdict := h.services.ContentService.Check(r.Context(), request.Content)
	_, _ = utils.WriteJSON(w, verdict, http.StatusOK)
}

func (h *Handler) maskContent(w http.ResponseWriter, r *http.Request) {
	request, ok := h.decodeContentRequest(w, r)
	if !ok {
		return
	}

	masked := h.services.ContentService.Mask(r.Context(), request.Content)
	_, _ = utils.WriteJSON(w, masked, http.StatusOK)
}

// decodeContentRequest reads and validates the body of the content tools.
// On failure the error response is already written.
func (h *Handler) decodeContentRequest(w http.ResponseWriter, r *http.Request) (models.ContentRequest, bool) {
	log := logger.FromRequest(r)

	var request models.ContentRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Str("func", "*Handler.decodeContentRequest").Msg("Invalid JSON was passed")
		writeServiceError(w, ErrInvalidJSON)
		return models.ContentRequest{}, false
	}

	if err := h.validator.Validate(r.Context(), request); err != nil {
		log.Err(err).Str("func", "*Handler.decodeContentRequest").Msg("content request is invalid")
		writeServiceError(w, fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, err))
		return models.ContentRequest{}, false
	}

	return request, true
}
