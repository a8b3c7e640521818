package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-doc-keeper/internal/config"
	"github.com/MKhiriev/go-doc-keeper/internal/logger"
	"github.com/MKhiriev/go-doc-keeper/internal/store"
	"github.com/MKhiriev/go-doc-keeper/internal/utils"
	"github.com/MKhiriev/go-doc-keeper/models"
)

// IDGenerator produces unique identifiers for sessions and documents.
type IDGenerator interface {
	Generate() string
}

// sessionService is the concrete implementation of SessionService.
// A session is an empty verification slot in the SessionStore plus a signed
// JWT whose "sub" claim names that slot.
type sessionService struct {
	sessionStore store.SessionStore
	idGenerator  IDGenerator

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// sessionDuration controls how long a newly issued JWT remains valid.
	sessionDuration time.Duration

	logger *logger.Logger
}

// NewSessionService constructs a SessionService backed by sessionStore and
// populated with token parameters from cfg.
func NewSessionService(sessionStore store.SessionStore, idGenerator IDGenerator, cfg config.App, logger *logger.Logger) SessionService {
	return &sessionService{
		sessionStore:    sessionStore,
		idGenerator:     idGenerator,
		tokenSignKey:    cfg.TokenSignKey,
		tokenIssuer:     cfg.TokenIssuer,
		sessionDuration: cfg.SessionDuration,
		logger:          logger,
	}
}

// OpenSession registers a new unverified session and returns its token.
func (s *sessionService) OpenSession(ctx context.Context) (models.Token, error) {
	log := logger.FromContext(ctx)

	sessionID := s.idGenerator.Generate()
	if err := s.sessionStore.CreateSession(ctx, sessionID); err != nil {
		log.Err(err).Str("func", "sessionService.OpenSession").Msg("session creation failed")
		return models.Token{}, fmt.Errorf("session creation failed: %w", err)
	}

	token, err := utils.GenerateJWTToken(s.tokenIssuer, sessionID, s.sessionDuration, s.tokenSignKey)
	if err != nil {
		log.Err(err).Str("func", "sessionService.OpenSession").Msg("token creation failed")
		_ = s.sessionStore.DeleteSession(ctx, sessionID)
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	log.Info().Str("session_id", sessionID).Msg("session opened")
	return token, nil
}

// CloseSession drops the session together with its verification record.
func (s *sessionService) CloseSession(ctx context.Context, sessionID string) error {
	if err := s.sessionStore.DeleteSession(ctx, sessionID); err != nil {
		return fmt.Errorf("closing session failed: %w", err)
	}

	logger.FromContext(ctx).Info().Str("session_id", sessionID).Msg("session closed")
	return nil
}

// ParseToken validates and parses a raw JWT string.
//
// Any validation failure (expired, wrong issuer, malformed) is normalised to
// ErrTokenIsExpiredOrInvalid. A valid token of a closed session returns
// ErrSessionIsClosed.
func (s *sessionService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, s.tokenSignKey, s.tokenIssuer)
	if err != nil {
		return models.Token{}, errors.Join(ErrTokenIsExpiredOrInvalid, err)
	}

	if !s.sessionStore.SessionExists(ctx, token.SessionID) {
		return models.Token{}, ErrSessionIsClosed
	}

	return token, nil
}
