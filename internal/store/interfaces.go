package store

import (
	"context"

	"github.com/MKhiriev/go-doc-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// DocumentRepository persists documents, forms and form fields.
type DocumentRepository interface {
	// ListDocuments returns documents matching filter, newest first.
	ListDocuments(ctx context.Context, filter models.DocumentFilter) ([]models.Document, error)

	// GetDocument returns the document with the given id or ErrDocumentNotFound.
	GetDocument(ctx context.Context, id string) (models.Document, error)

	// CreateDocument stores doc together with its form fields in one
	// transaction. A duplicate id returns ErrDocumentAlreadyExists.
	CreateDocument(ctx context.Context, doc models.Document, fields []models.FormField) (models.Document, error)

	// UpdateDocumentContent replaces the content of an existing document.
	UpdateDocumentContent(ctx context.Context, id string, content string) error

	// GetFormFields returns the fields of a form in display order.
	GetFormFields(ctx context.Context, formID string) ([]models.FormField, error)
}

// SessionStore keeps one verification slot per open session.
// Implementations must be safe for concurrent use.
type SessionStore interface {
	// CreateSession registers an unverified session.
	CreateSession(ctx context.Context, sessionID string) error

	// SessionExists reports whether the session is open.
	SessionExists(ctx context.Context, sessionID string) bool

	// GetRecord returns the verification record of the session, or nil
	// when the session is unverified. ErrSessionNotFound is returned for
	// unknown sessions.
	GetRecord(ctx context.Context, sessionID string) (*models.VerificationRecord, error)

	// SaveRecord stores rec as the session's verification record.
	SaveRecord(ctx context.Context, sessionID string, rec models.VerificationRecord) error

	// ClearRecord drops the session's verification record.
	ClearRecord(ctx context.Context, sessionID string) error

	// DeleteSession closes the session and drops its record.
	DeleteSession(ctx context.Context, sessionID string) error

	// SweepExpired drops every record that no longer verifies at nowMillis
	// and returns how many were dropped.
	SweepExpired(ctx context.Context, nowMillis int64) int
}
