package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrInvalidPIN is returned when the submitted PIN is not exactly four digits.
	ErrInvalidPIN = errors.New("pin must be exactly 4 digits")
	// ErrWrongPIN is returned when the PIN does not match the configured one.
	// The verification state of the session is left unchanged.
	ErrWrongPIN = errors.New("incorrect pin")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrSessionIsClosed         = errors.New("session is closed")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
	ErrPINIsNotConfigured    = errors.New("pin is not configured")
)

// ErrDocumentIsNotAForm is returned when form fields are requested for a
// plain document.
var ErrDocumentIsNotAForm = errors.New("document is not a form")
