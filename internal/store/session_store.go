package store

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-doc-keeper/internal/logger"
	"github.com/MKhiriev/go-doc-keeper/internal/verification"
	"github.com/MKhiriev/go-doc-keeper/models"
)

// memorySessionStore keeps verification state in process memory.
// Sessions do not survive a restart, which forces re-verification.
type memorySessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*verification.Session
	logger   *logger.Logger
}

// NewMemorySessionStore returns an empty in-memory [SessionStore].
func NewMemorySessionStore(logger *logger.Logger) SessionStore {
	logger.Debug().Msg("creating in-memory session store")
	return &memorySessionStore{
		sessions: make(map[string]*verification.Session),
		logger:   logger,
	}
}

func (s *memorySessionStore) CreateSession(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[sessionID]; !ok {
		s.sessions[sessionID] = verification.NewSession(nil)
	}
	return nil
}

func (s *memorySessionStore) SessionExists(ctx context.Context, sessionID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.sessions[sessionID]
	return ok
}

func (s *memorySessionStore) GetRecord(ctx context.Context, sessionID string) (*models.VerificationRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}

	rec, ok := session.Record()
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

func (s *memorySessionStore) SaveRecord(ctx context.Context, sessionID string, rec models.VerificationRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[sessionID]; !ok {
		return ErrSessionNotFound
	}
	s.sessions[sessionID] = verification.NewSession(&rec)
	return nil
}

func (s *memorySessionStore) ClearRecord(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[sessionID]
	if !ok {
		return ErrSessionNotFound
	}
	session.ClearVerification()
	return nil
}

func (s *memorySessionStore) DeleteSession(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[sessionID]; !ok {
		return ErrSessionNotFound
	}
	delete(s.sessions, sessionID)
	return nil
}

// SweepExpired clears stale verification records. The sessions stay open.
func (s *memorySessionStore) SweepExpired(ctx context.Context, nowMillis int64) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	swept := 0
	for id, session := range s.sessions {
		if _, ok := session.Record(); !ok {
			continue
		}
		if !session.IsVerified(nowMillis) {
			session.ClearVerification()
			swept++
			s.logger.Debug().Str("session_id", id).Msg("verification expired")
		}
	}
	return swept
}
