package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-doc-keeper/internal/validators"
	"github.com/MKhiriev/go-doc-keeper/models"
)

// DocumentServiceWrapper defines middleware composition for DocumentService.
// Implementations wrap an existing DocumentService to add behavior such as
// validation.
type DocumentServiceWrapper interface {
	Wrap(DocumentService) DocumentService
}

// DocumentValidationService validates write requests before handing them to
// the wrapped DocumentService. Reads pass through unchanged.
type DocumentValidationService struct {
	inner     DocumentService
	validator validators.Validator
}

func NewDocumentValidationService() DocumentServiceWrapper {
	return &DocumentValidationService{
		validator: validators.NewDocumentValidator(),
	}
}

func (v *DocumentValidationService) ListDocuments(ctx context.Context, sessionID string, filter models.DocumentFilter) ([]models.DocumentSummary, error) {
	if filter.Kind != "" && !filter.Kind.Valid() {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataProvided, validators.ErrInvalidKind)
	}

	return v.inner.ListDocuments(ctx, sessionID, filter)
}

func (v *DocumentValidationService) GetDocument(ctx context.Context, sessionID string, id string) (models.DocumentView, error) {
	return v.inner.GetDocument(ctx, sessionID, id)
}

func (v *DocumentValidationService) GetFormFields(ctx context.Context, sessionID string, formID string) ([]models.FormFieldView, error) {
	return v.inner.GetFormFields(ctx, sessionID, formID)
}

func (v *DocumentValidationService) CreateDocument(ctx context.Context, request models.DocumentCreate) (models.Document, error) {
	if err := v.validator.Validate(ctx, request); err != nil {
		return models.Document{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.CreateDocument(ctx, request)
}

func (v *DocumentValidationService) UpdateDocumentContent(ctx context.Context, update models.ContentUpdate) error {
	if err := v.validator.Validate(ctx, update); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.UpdateDocumentContent(ctx, update)
}

func (v *DocumentValidationService) Wrap(wrapped DocumentService) DocumentService {
	v.inner = wrapped
	return v
}
