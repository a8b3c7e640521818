// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the go-doc-keeper server.
//
// The primary abstraction is [ServerAdapter], which decouples the terminal
// client from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrNotFound] for 404, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-doc-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the
// go-doc-keeper server. Implementations are responsible for serialisation,
// session token management, and mapping transport-level errors to the
// sentinel values defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all subsequent
	// requests.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no session has been opened yet.
	Token() string

	// OpenSession starts a new unverified session and stores its token.
	OpenSession(ctx context.Context) error

	// CloseSession ends the current session and forgets its token.
	CloseSession(ctx context.Context) error

	// Verify submits pin for the current session. A rejected pin returns
	// [ErrWrongPIN], a malformed one [ErrInvalidPIN].
	Verify(ctx context.Context, pin string) (models.VerificationStatus, error)

	// VerificationStatus reports whether the current session is verified.
	VerificationStatus(ctx context.Context) (models.VerificationStatus, error)

	// ClearVerification drops the verification of the current session.
	ClearVerification(ctx context.Context) error

	// ListDocuments returns document summaries matching filter.
	ListDocuments(ctx context.Context, filter models.DocumentFilter) ([]models.DocumentSummary, error)

	// GetDocument returns the gated view of a document.
	GetDocument(ctx context.Context, id string) (models.DocumentView, error)

	// GetFormFields returns the gated fields of a form.
	GetFormFields(ctx context.Context, formID string) ([]models.FormFieldView, error)

	// CreateDocument captures a new document.
	CreateDocument(ctx context.Context, request models.DocumentCreate) (models.Document, error)

	// UpdateDocumentContent saves edited content.
	UpdateDocumentContent(ctx context.Context, update models.ContentUpdate) error

	// CheckContent classifies free text on the server.
	CheckContent(ctx context.Context, content string) (models.ContentVerdict, error)

	// MaskContent masks free text on the server.
	MaskContent(ctx context.Context, content string) (models.MaskedContent, error)

	// GetServerVersion returns the version reported by the server.
	GetServerVersion(ctx context.Context) (string, error)
}
