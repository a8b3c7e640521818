package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-doc-keeper/internal/logger"
	"github.com/MKhiriev/go-doc-keeper/internal/mock"
	"github.com/MKhiriev/go-doc-keeper/internal/service"
	"github.com/MKhiriev/go-doc-keeper/internal/store"
	"github.com/MKhiriev/go-doc-keeper/internal/utils"
	"github.com/MKhiriev/go-doc-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ---- Helpers ----

func newHandlerWithSessionService(sessionSvc service.SessionService) *Handler {
	return &Handler{
		logger: logger.Nop(),
		services: &service.Services{
			SessionService: sessionSvc,
		},
	}
}

// injectNopLogger puts a nop logger into the request context.
func injectNopLogger(r *http.Request) *http.Request {
	nop := logger.Nop()
	ctx := nop.Logger.WithContext(r.Context())
	return r.WithContext(ctx)
}

func executeAuth(h *Handler, authHeader string, next http.Handler) *httptest.ResponseRecorder {
	middleware := h.auth(next)
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req = injectNopLogger(req)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rr := httptest.NewRecorder()
	middleware.ServeHTTP(rr, req)
	return rr
}

// ---- auth middleware table test ----

func TestAuth_Middleware_TableTest(t *testing.T) {
	tests := []struct {
		name           string
		authHeader     string
		parseErr       error
		parseCalled    bool
		expectedStatus int
		nextCalled     bool
	}{
		{
			name:           "empty Authorization header → 401",
			authHeader:     "",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "invalid header format (no space) → 401",
			authHeader:     "BearerTokenWithoutSpace",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "non-Bearer scheme → 401",
			authHeader:     "Basic dXNlcjpwYXNz",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "valid token → next called",
			authHeader:     "Bearer valid-token",
			parseCalled:    true,
			expectedStatus: http.StatusOK,
			nextCalled:     true,
		},
		{
			name:           "expired token → 401",
			authHeader:     "Bearer expired-token",
			parseErr:       errors.Join(service.ErrTokenIsExpiredOrInvalid, errors.New("token is expired")),
			parseCalled:    true,
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "closed session → 401",
			authHeader:     "Bearer closed-session-token",
			parseErr:       service.ErrSessionIsClosed,
			parseCalled:    true,
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			sessionSvc := mock.NewMockSessionService(ctrl)
			if tt.parseCalled {
				sessionSvc.EXPECT().ParseToken(gomock.Any(), gomock.Any()).
					Return(models.Token{SessionID: testSessionID}, tt.parseErr)
			}

			h := newHandlerWithSessionService(sessionSvc)

			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				w.WriteHeader(http.StatusOK)
			})

			rr := executeAuth(h, tt.authHeader, next)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Equal(t, tt.nextCalled, nextCalled)
		})
	}
}

// ---- error response bodies ----

func TestAuth_ErrorResponseBodies(t *testing.T) {
	ctrl := gomock.NewController(t)
	sessionSvc := mock.NewMockSessionService(ctrl)
	sessionSvc.EXPECT().ParseToken(gomock.Any(), "closed").
		Return(models.Token{}, errors.Join(service.ErrSessionIsClosed, store.ErrSessionNotFound))

	h := newHandlerWithSessionService(sessionSvc)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	t.Run("empty header error body", func(t *testing.T) {
		rr := executeAuth(h, "", next)
		assert.Contains(t, rr.Body.String(), ErrEmptyAuthorizationHeader.Error())
	})

	t.Run("malformed header error body", func(t *testing.T) {
		rr := executeAuth(h, "Token", next)
		assert.Contains(t, rr.Body.String(), ErrInvalidAuthorizationHeader.Error())
	})

	t.Run("closed session error body", func(t *testing.T) {
		rr := executeAuth(h, "Bearer closed", next)
		assert.Contains(t, rr.Body.String(), service.ErrSessionIsClosed.Error())
	})
}

// ---- session id is stored in the context ----

func TestAuth_SessionIDInContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	sessionSvc := mock.NewMockSessionService(ctrl)
	sessionSvc.EXPECT().ParseToken(gomock.Any(), "some-token").
		Return(models.Token{SessionID: "session-99"}, nil)

	h := newHandlerWithSessionService(sessionSvc)

	var gotSessionID string
	var gotOK bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotSessionID, gotOK = utils.GetSessionIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	rr := executeAuth(h, "Bearer some-token", next)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, gotOK)
	assert.Equal(t, "session-99", gotSessionID)
}

// ---- original context is not mutated ----

func TestAuth_OriginalRequestNotMutated(t *testing.T) {
	ctrl := gomock.NewController(t)
	sessionSvc := mock.NewMockSessionService(ctrl)
	sessionSvc.EXPECT().ParseToken(gomock.Any(), gomock.Any()).
		Return(models.Token{SessionID: testSessionID}, nil)

	h := newHandlerWithSessionService(sessionSvc)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	middleware := h.auth(next)
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req = injectNopLogger(req)
	req.Header.Set("Authorization", "Bearer token")
	originalCtx := req.Context()

	rr := httptest.NewRecorder()
	middleware.ServeHTTP(rr, req)

	assert.Equal(t, originalCtx, req.Context(), "original request context must not be mutated")
}

// ---- concurrent requests ----

func TestAuth_ConcurrentRequests(t *testing.T) {
	ctrl := gomock.NewController(t)
	sessionSvc := mock.NewMockSessionService(ctrl)
	sessionSvc.EXPECT().ParseToken(gomock.Any(), "concurrent-token").
		DoAndReturn(func(_ context.Context, _ string) (models.Token, error) {
			return models.Token{SessionID: testSessionID}, nil
		}).
		AnyTimes()

	h := newHandlerWithSessionService(sessionSvc)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	middleware := h.auth(next)

	const n = 50
	done := make(chan int, n)

	for i := 0; i < n; i++ {
		go func() {
			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			req = injectNopLogger(req)
			req.Header.Set("Authorization", "Bearer concurrent-token")
			rr := httptest.NewRecorder()
			middleware.ServeHTTP(rr, req)
			done <- rr.Code
		}()
	}

	for i := 0; i < n; i++ {
		code := <-done
		assert.Equal(t, http.StatusOK, code)
	}
}

// ---- Handlers behind auth need the session id ----

func TestSessionFromRequest_Missing(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/test", nil)

	_, err := sessionFromRequest(req)

	assert.ErrorIs(t, err, ErrNoSessionInContext)
}
