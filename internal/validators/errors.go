package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyID          = errors.New("id is required")
	ErrInvalidKind      = errors.New("invalid document kind")
	ErrEmptyName        = errors.New("name is required")
	ErrEmptyContent     = errors.New("content is required")
	ErrContentTooLarge  = errors.New("content is too large")
	ErrFieldsOnDocument = errors.New("only forms can have fields")
	ErrEmptyFieldLabel  = errors.New("form field label is required")
	ErrInvalidPIN       = errors.New("pin must be exactly 4 digits")
)
