package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-doc-keeper/internal/logger"
	"github.com/MKhiriev/go-doc-keeper/internal/utils"
	"github.com/MKhiriev/go-doc-keeper/models"
	"github.com/go-chi/chi/v5"
)

// Query parameters accepted by the document listing.
const (
	queryParamKind  = "kind"
	queryParamQuery = "q"
)

func (h *Handler) listDocuments(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	sessionID, err := sessionFromRequest(r)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	filter := models.DocumentFilter{
		Kind:  models.DocumentKind(strings.TrimSpace(r.URL.Query().Get(queryParamKind))),
		Query: strings.TrimSpace(r.URL.Query().Get(queryParamQuery)),
	}

	summaries, err := h.services.DocumentService.ListDocuments(r.Context(), sessionID, filter)
	if err != nil {
		log.Err(err).Str("func", "*Handler.listDocuments").Msg("error listing documents")
		writeServiceError(w, err)
		return
	}

	if summaries == nil {
		summaries = []models.DocumentSummary{}
	}
	_, _ = utils.WriteJSON(w, summaries, http.StatusOK)
}

func (h *Handler) getDocument(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	sessionID, err := sessionFromRequest(r)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	view, err := h.services.DocumentService.GetDocument(r.Context(), sessionID, chi.URLParam(r, "id"))
	if err != nil {
		log.Err(err).Str("func", "*Handler.getDocument").Msg("error getting document")
		writeServiceError(w, err)
		return
	}

	_, _ = utils.WriteJSON(w, view, http.StatusOK)
}

func (h *Handler) getFormFields(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	sessionID, err := sessionFromRequest(r)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	fields, err := h.services.DocumentService.GetFormFields(r.Context(), sessionID, chi.URLParam(r, "id"))
	if err != nil {
		log.Err(err).Str("func", "*Handler.getFormFields").Msg("error getting form fields")
		writeServiceError(w, err)
		return
	}

	if fields == nil {
		fields = []models.FormFieldView{}
	}
	_, _ = utils.WriteJSON(w, fields, http.StatusOK)
}

func (h *Handler) createDocument(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var request models.DocumentCreate
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Str("func", "*Handler.createDocument").Msg("Invalid JSON was passed")
		writeServiceError(w, ErrInvalidJSON)
		return
	}

	doc, err := h.services.DocumentService.CreateDocument(r.Context(), request)
	if err != nil {
		log.Err(err).Str("func", "*Handler.createDocument").Msg("error creating document")
		writeServiceError(w, err)
		return
	}

	log.Info().Str("document_id", doc.ID).Msg("document captured")
	_, _ = utils.WriteJSON(w, doc, http.StatusCreated)
}

// updateDocumentContent saves edited content. The id in the path wins over
// any id in the body.
func (h *Handler) updateDocumentContent(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var update models.ContentUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Err(err).Str("func", "*Handler.updateDocumentContent").Msg("Invalid JSON was passed")
		writeServiceError(w, ErrInvalidJSON)
		return
	}
	update.ID = chi.URLParam(r, "id")

	if err := h.services.DocumentService.UpdateDocumentContent(r.Context(), update); err != nil {
		log.Err(err).Str("func", "*Handler.updateDocumentContent").Msg("error updating document content")
		writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
