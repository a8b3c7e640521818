package validators

import (
	"context"

	"github.com/MKhiriev/go-doc-keeper/models"
)

// MaxContentSize is the largest document content accepted, in bytes.
const MaxContentSize = 64 << 10

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldID targets the document identifier.
	FieldID = "id"

	// FieldKind targets the document kind ("document" or "form").
	FieldKind = "kind"

	// FieldName targets the human readable document title.
	FieldName = "name"

	// FieldContent targets the extracted text. It must be non-empty and at
	// most MaxContentSize bytes.
	FieldContent = "content"

	// FieldContentSize only checks the size limit, empty content passes.
	FieldContentSize = "content_size"

	// FieldFormFields targets the auto-fill entries of a form.
	FieldFormFields = "form_fields"

	// FieldPIN targets a submitted PIN.
	FieldPIN = "pin"
)

// DocumentValidator validates the request models of the document API.
type DocumentValidator struct{}

// NewDocumentValidator returns a Validator for document requests.
func NewDocumentValidator() Validator {
	return &DocumentValidator{}
}

// Validate dispatches validation to the appropriate type-specific method
// based on the dynamic type of obj. Both value and pointer forms of each
// supported model are accepted.
//
// Supported types:
//   - models.DocumentCreate / *models.DocumentCreate
//   - models.ContentUpdate / *models.ContentUpdate
//   - models.ContentRequest / *models.ContentRequest
//   - models.PinRequest / *models.PinRequest
//
// Returns ErrUnsupportedType if obj does not match any known model.
func (v *DocumentValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.DocumentCreate:
		return v.validateDocumentCreate(ctx, value, fields...)
	case *models.DocumentCreate:
		return v.validateDocumentCreate(ctx, *value, fields...)

	case models.ContentUpdate:
		return v.validateContentUpdate(ctx, value, fields...)
	case *models.ContentUpdate:
		return v.validateContentUpdate(ctx, *value, fields...)

	case models.ContentRequest:
		return v.validateContentRequest(ctx, value, fields...)
	case *models.ContentRequest:
		return v.validateContentRequest(ctx, *value, fields...)

	case models.PinRequest:
		return v.validatePinRequest(ctx, value, fields...)
	case *models.PinRequest:
		return v.validatePinRequest(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// validateDocumentCreate validates a captured document.
//
// Default validated fields: Kind, Name, Content, FormFields.
// The ID is optional on create and only checked when FieldID is requested.
func (v *DocumentValidator) validateDocumentCreate(ctx context.Context, doc models.DocumentCreate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldKind, FieldName, FieldContent, FieldFormFields}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if doc.ID == "" {
				return ErrEmptyID
			}
		case FieldKind:
			if !doc.Kind.Valid() {
				return ErrInvalidKind
			}
		case FieldName:
			if doc.Name == "" {
				return ErrEmptyName
			}
		case FieldContent:
			if err := validateContent(doc.Content, true); err != nil {
				return err
			}
		case FieldContentSize:
			if err := validateContent(doc.Content, false); err != nil {
				return err
			}
		case FieldFormFields:
			if len(doc.Fields) > 0 && doc.Kind != models.KindForm {
				return ErrFieldsOnDocument
			}
			for _, field := range doc.Fields {
				if field.Label == "" {
					return ErrEmptyFieldLabel
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateContentUpdate validates an edit of an existing document.
//
// Default validated fields: ID, Content.
func (v *DocumentValidator) validateContentUpdate(ctx context.Context, update models.ContentUpdate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldContent}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if update.ID == "" {
				return ErrEmptyID
			}
		case FieldContent:
			if err := validateContent(update.Content, true); err != nil {
				return err
			}
		case FieldContentSize:
			if err := validateContent(update.Content, false); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateContentRequest validates free text sent to the content tools.
// Empty text is a valid input, only the size is limited.
func (v *DocumentValidator) validateContentRequest(ctx context.Context, request models.ContentRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldContentSize}
	}

	for _, f := range fields {
		switch f {
		case FieldContent:
			if err := validateContent(request.Content, true); err != nil {
				return err
			}
		case FieldContentSize:
			if err := validateContent(request.Content, false); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *DocumentValidator) validatePinRequest(ctx context.Context, request models.PinRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldPIN}
	}

	for _, f := range fields {
		switch f {
		case FieldPIN:
			if !IsValidPIN(request.PIN) {
				return ErrInvalidPIN
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// IsValidPIN reports whether pin consists of exactly four ASCII digits.
func IsValidPIN(pin string) bool {
	if len(pin) != 4 {
		return false
	}
	for i := 0; i < len(pin); i++ {
		if pin[i] < '0' || pin[i] > '9' {
			return false
		}
	}
	return true
}

func validateContent(content string, required bool) error {
	if required && content == "" {
		return ErrEmptyContent
	}
	if len(content) > MaxContentSize {
		return ErrContentTooLarge
	}
	return nil
}
