package http

import (
	"net/http"

	"github.com/MKhiriev/go-doc-keeper/internal/utils"
	"github.com/MKhiriev/go-doc-keeper/models"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	serverVersion := h.services.AppInfoService.GetAppVersion(r.Context())

	_, _ = utils.WriteJSON(w, models.AppVersion{Version: serverVersion}, http.StatusOK)
}
