package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")

	// ErrWrongPIN and ErrInvalidPIN refine the generic statuses of the
	// verification endpoint.
	ErrWrongPIN   = errors.New("incorrect pin")
	ErrInvalidPIN = errors.New("pin must be exactly 4 digits")

	ErrNoSession = errors.New("no open session")
)
