package adapter

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/MKhiriev/go-doc-keeper/internal/config"
	"github.com/MKhiriev/go-doc-keeper/internal/logger"
	"github.com/MKhiriev/go-doc-keeper/internal/utils"
	"github.com/MKhiriev/go-doc-keeper/models"
	"github.com/go-resty/resty/v2"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates the base URL from adapterCfg.HTTPAddress and
// configures the underlying HTTP client with the resolved base URL and request
// timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout)

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter]. It stores token (whitespace-trimmed) for
// use in the Authorization header of all subsequent requests.
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter].
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// OpenSession implements [ServerAdapter]. It POSTs to /api/session and keeps
// the bearer token from the Authorization response header.
func (h *httpServerAdapter) OpenSession(ctx context.Context) error {
	resp, err := h.client.R().
		SetContext(ctx).
		Post("/api/session")
	if err != nil {
		return fmt.Errorf("open session request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return fmt.Errorf("open session parse bearer token: %w", err)
	}

	h.SetToken(token)
	h.logger.Debug().Msg("session opened")
	return nil
}

// CloseSession implements [ServerAdapter]. The token is forgotten even when
// the server rejects the request.
func (h *httpServerAdapter) CloseSession(ctx context.Context) error {
	if h.Token() == "" {
		return ErrNoSession
	}
	defer h.SetToken("")

	resp, err := h.authedRequest(ctx).Delete("/api/session")
	if err != nil {
		return fmt.Errorf("close session request: %w", err)
	}

	return mapHTTPError(resp)
}

// Verify implements [ServerAdapter].
func (h *httpServerAdapter) Verify(ctx context.Context, pin string) (models.VerificationStatus, error) {
	var status models.VerificationStatus

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.PinRequest{PIN: pin}).
		SetResult(&status).
		Post("/api/verification")
	if err != nil {
		return models.VerificationStatus{}, fmt.Errorf("verify request: %w", err)
	}
	if err = mapVerifyError(resp); err != nil {
		return models.VerificationStatus{}, err
	}

	return status, nil
}

// mapVerifyError refines the statuses of the verification endpoint: a 400
// always means a malformed pin and a 401 carrying the wrong pin message
// means the pin did not match. Other 401s are token failures.
func mapVerifyError(resp *resty.Response) error {
	err := mapHTTPError(resp)
	if err == nil {
		return nil
	}

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %w", ErrInvalidPIN, err)
	case http.StatusUnauthorized:
		if strings.HasPrefix(errorMessage(resp.Body()), ErrWrongPIN.Error()) {
			return fmt.Errorf("%w: %w", ErrWrongPIN, err)
		}
	}
	return err
}

// VerificationStatus implements [ServerAdapter].
func (h *httpServerAdapter) VerificationStatus(ctx context.Context) (models.VerificationStatus, error) {
	var status models.VerificationStatus

	resp, err := h.authedRequest(ctx).
		SetResult(&status).
		Get("/api/verification")
	if err != nil {
		return models.VerificationStatus{}, fmt.Errorf("verification status request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.VerificationStatus{}, err
	}

	return status, nil
}

// ClearVerification implements [ServerAdapter].
func (h *httpServerAdapter) ClearVerification(ctx context.Context) error {
	resp, err := h.authedRequest(ctx).Delete("/api/verification")
	if err != nil {
		return fmt.Errorf("clear verification request: %w", err)
	}

	return mapHTTPError(resp)
}

// ListDocuments implements [ServerAdapter]. Empty filter values are not sent.
func (h *httpServerAdapter) ListDocuments(ctx context.Context, filter models.DocumentFilter) ([]models.DocumentSummary, error) {
	var summaries []models.DocumentSummary

	req := h.authedRequest(ctx).SetResult(&summaries)
	if filter.Kind != "" {
		req.SetQueryParam("kind", string(filter.Kind))
	}
	if filter.Query != "" {
		req.SetQueryParam("q", filter.Query)
	}

	resp, err := req.Get("/api/documents")
	if err != nil {
		return nil, fmt.Errorf("list documents request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return summaries, nil
}

// GetDocument implements [ServerAdapter].
func (h *httpServerAdapter) GetDocument(ctx context.Context, id string) (models.DocumentView, error) {
	var view models.DocumentView

	resp, err := h.authedRequest(ctx).
		SetPathParam("id", id).
		SetResult(&view).
		Get("/api/documents/{id}")
	if err != nil {
		return models.DocumentView{}, fmt.Errorf("get document request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.DocumentView{}, err
	}

	return view, nil
}

// GetFormFields implements [ServerAdapter].
func (h *httpServerAdapter) GetFormFields(ctx context.Context, formID string) ([]models.FormFieldView, error) {
	var fields []models.FormFieldView

	resp, err := h.authedRequest(ctx).
		SetPathParam("id", formID).
		SetResult(&fields).
		Get("/api/documents/{id}/fields")
	if err != nil {
		return nil, fmt.Errorf("get form fields request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return fields, nil
}

// CreateDocument implements [ServerAdapter].
func (h *httpServerAdapter) CreateDocument(ctx context.Context, request models.DocumentCreate) (models.Document, error) {
	var doc models.Document

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(request).
		SetResult(&doc).
		Post("/api/documents")
	if err != nil {
		return models.Document{}, fmt.Errorf("create document request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Document{}, err
	}

	return doc, nil
}

// UpdateDocumentContent implements [ServerAdapter].
func (h *httpServerAdapter) UpdateDocumentContent(ctx context.Context, update models.ContentUpdate) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetPathParam("id", update.ID).
		SetBody(update).
		Put("/api/documents/{id}")
	if err != nil {
		return fmt.Errorf("update document request: %w", err)
	}

	return mapHTTPError(resp)
}

// CheckContent implements [ServerAdapter].
func (h *httpServerAdapter) CheckContent(ctx context.Context, content string) (models.ContentVerdict, error) {
	var verdict models.ContentVerdict

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.ContentRequest{Content: content}).
		SetResult(&verdict).
		Post("/api/content/check")
	if err != nil {
		return models.ContentVerdict{}, fmt.Errorf("check content request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ContentVerdict{}, err
	}

	return verdict, nil
}

// MaskContent implements [ServerAdapter].
func (h *httpServerAdapter) MaskContent(ctx context.Context, content string) (models.MaskedContent, error) {
	var masked models.MaskedContent

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.ContentRequest{Content: content}).
		SetResult(&masked).
		Post("/api/content/mask")
	if err != nil {
		return models.MaskedContent{}, fmt.Errorf("mask content request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.MaskedContent{}, err
	}

	return masked, nil
}

// GetServerVersion implements [ServerAdapter].
func (h *httpServerAdapter) GetServerVersion(ctx context.Context) (string, error) {
	var version models.AppVersion

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&version).
		Get("/api/version/")
	if err != nil {
		return "", fmt.Errorf("get server version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return version.Version, nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
