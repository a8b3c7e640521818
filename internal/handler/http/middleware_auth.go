package http

import (
	"context"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-doc-keeper/internal/logger"
	"github.com/MKhiriev/go-doc-keeper/internal/utils"
)

// auth is an HTTP middleware that binds a request to an open session.
//
// It extracts the bearer token from the "Authorization" header, validates it
// via [service.SessionService.ParseToken] (which also checks that the session
// is still open) and stores the session id in the request context under
// [utils.SessionIDCtxKey]. The request logger is tagged with the session id.
//
// Requests with a missing, malformed, expired or foreign token, or a token
// for a closed session, are rejected with 401 Unauthorized.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			writeServiceError(w, ErrEmptyAuthorizationHeader)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Err(err).Send()
			writeServiceError(w, fmt.Errorf("%w: %w", ErrInvalidAuthorizationHeader, err))
			return
		}

		ctx := r.Context()
		token, err := h.services.SessionService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Err(err).Msg("error occurred during parsing token")
			writeServiceError(w, err)
			return
		}

		sessionLog := log.WithSessionID(token.SessionID)
		ctx = context.WithValue(ctx, utils.SessionIDCtxKey, token.SessionID)
		ctx = sessionLog.WithContext(ctx)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// sessionFromRequest returns the session id stored by auth.
func sessionFromRequest(r *http.Request) (string, error) {
	sessionID, ok := utils.GetSessionIDFromContext(r.Context())
	if !ok {
		return "", ErrNoSessionInContext
	}
	return sessionID, nil
}
