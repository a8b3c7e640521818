// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors returned by the handlers of this package before a request
// reaches the service layer. Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is present but does not carry a bearer token.
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrInvalidJSON is returned when a request body cannot be decoded.
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	// ErrInvalidGzipBody is returned when a request declares a gzip body
	// that cannot be decoded.
	ErrInvalidGzipBody = errors.New("invalid gzip request body")

	// ErrNoSessionInContext means a session-bound handler was reached
	// without the auth middleware.
	ErrNoSessionInContext = errors.New("no session in request context")
)
