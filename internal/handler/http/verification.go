package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-doc-keeper/internal/logger"
	"github.com/MKhiriev/go-doc-keeper/internal/utils"
	"github.com/MKhiriev/go-doc-keeper/models"
)

func (h *Handler) verify(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	sessionID, err := sessionFromRequest(r)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	var pinRequest models.PinRequest
	if err = json.NewDecoder(r.Body).Decode(&pinRequest); err != nil {
		log.Err(err).Str("func", "*Handler.verify").Msg("Invalid JSON was passed")
		writeServiceError(w, ErrInvalidJSON)
		return
	}

	status, err := h.services.VerificationService.Verify(r.Context(), sessionID, pinRequest.PIN)
	if err != nil {
		// the pin itself never reaches the log
		log.Err(err).Str("func", "*Handler.verify").Msg("verification failed")
		writeServiceError(w, err)
		return
	}

	log.Info().Int64("expires_at", status.ExpiresAt).Msg("session verified")
	_, _ = utils.WriteJSON(w, status, http.StatusOK)
}

func (h *Handler) verificationStatus(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	sessionID, err := sessionFromRequest(r)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	status, err := h.services.VerificationService.Status(r.Context(), sessionID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.verificationStatus").Msg("error reading verification status")
		writeServiceError(w, err)
		return
	}

	_, _ = utils.WriteJSON(w, status, http.StatusOK)
}

func (h *Handler) clearVerification(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	sessionID, err := sessionFromRequest(r)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	if err = h.services.VerificationService.Clear(r.Context(), sessionID); err != nil {
		log.Err(err).Str("func", "*Handler.clearVerification").Msg("error clearing verification")
		writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
