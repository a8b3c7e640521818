package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-doc-keeper/internal/config"
	"github.com/MKhiriev/go-doc-keeper/internal/crypto"
	"github.com/MKhiriev/go-doc-keeper/internal/logger"
	"github.com/MKhiriev/go-doc-keeper/internal/store"
	"github.com/MKhiriev/go-doc-keeper/internal/validators"
	"github.com/MKhiriev/go-doc-keeper/internal/verification"
	"github.com/MKhiriev/go-doc-keeper/models"
)

// verificationService checks PINs against the bcrypt hash of the configured
// PIN and keeps the resulting verification records in the SessionStore.
//
// "now" is read once per call and handed to the verification package.
type verificationService struct {
	sessionStore store.SessionStore
	pinHasher    crypto.PinHasher
	pinHash      []byte
	validator    validators.Validator
	now          func() time.Time

	logger *logger.Logger
}

// NewVerificationService hashes cfg.PIN with pinHasher and returns a service
// that verifies sessions against it. The plain PIN is not kept.
func NewVerificationService(sessionStore store.SessionStore, pinHasher crypto.PinHasher, cfg config.App, logger *logger.Logger) (VerificationService, error) {
	if cfg.PIN == "" {
		return nil, ErrPINIsNotConfigured
	}

	pinHash, err := pinHasher.Hash(cfg.PIN)
	if err != nil {
		return nil, fmt.Errorf("hashing configured pin failed: %w", err)
	}

	return &verificationService{
		sessionStore: sessionStore,
		pinHasher:    pinHasher,
		pinHash:      pinHash,
		validator:    validators.NewDocumentValidator(),
		now:          time.Now,
		logger:       logger,
	}, nil
}

// Verify checks pin and, when it matches, records a verification at "now".
//
// Returns:
//   - ErrInvalidPIN if pin is not exactly four digits.
//   - store.ErrSessionNotFound for unknown sessions.
//   - ErrWrongPIN if pin does not match. The session state is unchanged.
func (s *verificationService) Verify(ctx context.Context, sessionID string, pin string) (models.VerificationStatus, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, models.PinRequest{PIN: pin}); err != nil {
		return models.VerificationStatus{}, fmt.Errorf("%w: %w", ErrInvalidPIN, err)
	}

	if _, err := s.sessionStore.GetRecord(ctx, sessionID); err != nil {
		return models.VerificationStatus{}, fmt.Errorf("pin verification failed: %w", err)
	}

	if err := s.pinHasher.Compare(s.pinHash, pin); err != nil {
		if errors.Is(err, crypto.ErrPINMismatch) {
			log.Warn().Str("session_id", sessionID).Msg("incorrect pin submitted")
			return models.VerificationStatus{}, ErrWrongPIN
		}
		log.Err(err).Str("func", "verificationService.Verify").Msg("pin comparison failed")
		return models.VerificationStatus{}, fmt.Errorf("pin comparison failed: %w", err)
	}

	now := verification.NowMillis(s.now())
	rec := verification.Record(now)
	if err := s.sessionStore.SaveRecord(ctx, sessionID, rec); err != nil {
		return models.VerificationStatus{}, fmt.Errorf("saving verification failed: %w", err)
	}

	log.Info().Str("session_id", sessionID).Int64("expires_at", verification.ExpiresAt(&rec)).Msg("session verified")
	return verification.Status(&rec, now), nil
}

// Status reports the verification state of the session at "now".
func (s *verificationService) Status(ctx context.Context, sessionID string) (models.VerificationStatus, error) {
	rec, err := s.sessionStore.GetRecord(ctx, sessionID)
	if err != nil {
		return models.VerificationStatus{}, fmt.Errorf("reading verification failed: %w", err)
	}

	return verification.Status(rec, verification.NowMillis(s.now())), nil
}

// Clear drops the verification record of the session.
func (s *verificationService) Clear(ctx context.Context, sessionID string) error {
	if err := s.sessionStore.ClearRecord(ctx, sessionID); err != nil {
		return fmt.Errorf("clearing verification failed: %w", err)
	}

	logger.FromContext(ctx).Info().Str("session_id", sessionID).Msg("verification cleared")
	return nil
}

// IsVerified reports whether the session may see unmasked content at "now".
func (s *verificationService) IsVerified(ctx context.Context, sessionID string) (bool, error) {
	rec, err := s.sessionStore.GetRecord(ctx, sessionID)
	if err != nil {
		return false, fmt.Errorf("reading verification failed: %w", err)
	}

	return verification.IsVerified(rec, verification.NowMillis(s.now())), nil
}
