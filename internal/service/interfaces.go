package service

import (
	"context"

	"github.com/MKhiriev/go-doc-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// SessionService opens and closes API sessions and issues their tokens.
type SessionService interface {
	OpenSession(ctx context.Context) (models.Token, error)
	CloseSession(ctx context.Context, sessionID string) error

	// ParseToken validates tokenString and checks that its session is
	// still open.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// VerificationService runs the PIN gate of a session.
type VerificationService interface {
	Verify(ctx context.Context, sessionID string, pin string) (models.VerificationStatus, error)
	Status(ctx context.Context, sessionID string) (models.VerificationStatus, error)
	Clear(ctx context.Context, sessionID string) error
	IsVerified(ctx context.Context, sessionID string) (bool, error)
}

// DocumentService serves documents and forms with sensitive content masked
// for sessions that are not verified.
type DocumentService interface {
	ListDocuments(ctx context.Context, sessionID string, filter models.DocumentFilter) ([]models.DocumentSummary, error)
	GetDocument(ctx context.Context, sessionID string, id string) (models.DocumentView, error)
	GetFormFields(ctx context.Context, sessionID string, formID string) ([]models.FormFieldView, error)

	CreateDocument(ctx context.Context, request models.DocumentCreate) (models.Document, error)
	UpdateDocumentContent(ctx context.Context, update models.ContentUpdate) error
}

// ContentService checks and masks free text.
type ContentService interface {
	Check(ctx context.Context, content string) models.ContentVerdict
	Mask(ctx context.Context, content string) models.MaskedContent
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
