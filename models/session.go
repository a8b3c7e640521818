// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

// Token wraps a session JWT.
//
// It embeds [jwt.Token] for low-level token operations and
// [jwt.RegisteredClaims] for standard claim access. The session identifier
// is carried in the "sub" claim.
type Token struct {
	// Token is the underlying JWT used for signing and claim inspection.
	*jwt.Token `json:"-"`

	// RegisteredClaims provides access to the standard JWT claim set.
	jwt.RegisteredClaims

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// SessionID is the parsed "sub" claim.
	SessionID string `json:"-"`
}

// GetSessionID returns the session identifier from the "sub" claim.
func (t *Token) GetSessionID() (string, error) {
	sessionID, err := t.GetSubject()
	if err != nil {
		return "", err
	}
	if sessionID == "" {
		return "", errors.New("empty session id in token subject")
	}

	return sessionID, nil
}

// String returns the compact JWS serialization of the token.
func (t *Token) String() string {
	return t.SignedString
}
