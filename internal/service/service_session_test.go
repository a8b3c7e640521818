package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-doc-keeper/internal/config"
	"github.com/MKhiriev/go-doc-keeper/internal/logger"
	"github.com/MKhiriev/go-doc-keeper/internal/mock"
	"github.com/MKhiriev/go-doc-keeper/internal/store"
	"github.com/MKhiriev/go-doc-keeper/internal/utils"
)

type fixedIDGenerator string

func (g fixedIDGenerator) Generate() string { return string(g) }

var testAppConfig = config.App{
	PIN:             "1234",
	TokenSignKey:    "test-sign-key",
	TokenIssuer:     "go-doc-keeper-test",
	SessionDuration: time.Hour,
	Version:         "1.0.0",
}

func newTestSessionSvc(t *testing.T, ctrl *gomock.Controller) (SessionService, *mock.MockSessionStore) {
	t.Helper()
	sessionStore := mock.NewMockSessionStore(ctrl)
	return NewSessionService(sessionStore, fixedIDGenerator("session-1"), testAppConfig, logger.Nop()), sessionStore
}

// ── OpenSession ──────────────────────────────────────────────────────────────

func TestSessionService_OpenSession_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, sessionStore := newTestSessionSvc(t, ctrl)
	ctx := context.Background()

	sessionStore.EXPECT().CreateSession(ctx, "session-1").Return(nil)

	token, err := svc.OpenSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, "session-1", token.SessionID)
	assert.NotEmpty(t, token.SignedString)

	parsed, err := utils.ValidateAndParseJWTToken(token.SignedString, testAppConfig.TokenSignKey, testAppConfig.TokenIssuer)
	require.NoError(t, err)
	assert.Equal(t, "session-1", parsed.SessionID)
}

func TestSessionService_OpenSession_StoreError(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, sessionStore := newTestSessionSvc(t, ctrl)
	ctx := context.Background()

	storeErr := errors.New("store unavailable")
	sessionStore.EXPECT().CreateSession(ctx, "session-1").Return(storeErr)

	_, err := svc.OpenSession(ctx)
	require.ErrorIs(t, err, storeErr)
}

// ── CloseSession ─────────────────────────────────────────────────────────────

func TestSessionService_CloseSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, sessionStore := newTestSessionSvc(t, ctrl)
	ctx := context.Background()

	sessionStore.EXPECT().DeleteSession(ctx, "session-1").Return(nil)
	sessionStore.EXPECT().DeleteSession(ctx, "gone").Return(store.ErrSessionNotFound)

	require.NoError(t, svc.CloseSession(ctx, "session-1"))
	require.ErrorIs(t, svc.CloseSession(ctx, "gone"), store.ErrSessionNotFound)
}

// ── ParseToken ───────────────────────────────────────────────────────────────

func TestSessionService_ParseToken(t *testing.T) {
	ctx := context.Background()

	valid, err := utils.GenerateJWTToken(testAppConfig.TokenIssuer, "session-1", time.Hour, testAppConfig.TokenSignKey)
	require.NoError(t, err)
	foreign, err := utils.GenerateJWTToken(testAppConfig.TokenIssuer, "session-1", time.Hour, "other-key")
	require.NoError(t, err)

	t.Run("open session", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, sessionStore := newTestSessionSvc(t, ctrl)
		sessionStore.EXPECT().SessionExists(ctx, "session-1").Return(true)

		token, err := svc.ParseToken(ctx, valid.SignedString)
		require.NoError(t, err)
		assert.Equal(t, "session-1", token.SessionID)
	})

	t.Run("closed session", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, sessionStore := newTestSessionSvc(t, ctrl)
		sessionStore.EXPECT().SessionExists(ctx, "session-1").Return(false)

		_, err := svc.ParseToken(ctx, valid.SignedString)
		require.ErrorIs(t, err, ErrSessionIsClosed)
	})

	t.Run("wrong signature", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, _ := newTestSessionSvc(t, ctrl)

		_, err := svc.ParseToken(ctx, foreign.SignedString)
		require.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
	})

	t.Run("garbage", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, _ := newTestSessionSvc(t, ctrl)

		_, err := svc.ParseToken(ctx, "not-a-jwt")
		require.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
	})
}
