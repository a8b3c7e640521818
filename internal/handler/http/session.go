package http

import (
	"net/http"

	"github.com/MKhiriev/go-doc-keeper/internal/logger"
)

// openSession issues a token for a new unverified session. The token is
// returned in the "Authorization" header, the body stays empty.
func (h *Handler) openSession(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	token, err := h.services.SessionService.OpenSession(r.Context())
	if err != nil {
		log.Err(err).Str("func", "*Handler.openSession").Msg("error opening session")
		writeServiceError(w, err)
		return
	}

	w.Header().Set("Authorization", "Bearer "+token.String())
	w.WriteHeader(http.StatusCreated)
}

func (h *Handler) closeSession(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	sessionID, err := sessionFromRequest(r)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	if err = h.services.SessionService.CloseSession(r.Context(), sessionID); err != nil {
		log.Err(err).Str("func", "*Handler.closeSession").Msg("error closing session")
		writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
