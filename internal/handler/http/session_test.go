package http

import (
	"errors"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-doc-keeper/internal/service"
	"github.com/MKhiriev/go-doc-keeper/internal/store"
	"github.com/MKhiriev/go-doc-keeper/models"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestOpenSession(t *testing.T) {
	t.Run("token is returned in Authorization header", func(t *testing.T) {
		m := newMockedServices(t)
		m.session.EXPECT().OpenSession(gomock.Any()).
			Return(models.Token{SignedString: "new-token", SessionID: "s-2"}, nil)

		rec := m.do(t, http.MethodPost, "/api/session", nil, false)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, "Bearer new-token", rec.Header().Get("Authorization"))
	})

	t.Run("token creation failure hides details", func(t *testing.T) {
		m := newMockedServices(t)
		m.session.EXPECT().OpenSession(gomock.Any()).
			Return(models.Token{}, errors.Join(service.ErrTokenCreationFailed, errors.New("signing key rejected")))

		rec := m.do(t, http.MethodPost, "/api/session", nil, false)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, http.StatusText(http.StatusInternalServerError), decodeError(t, rec))
		assert.Empty(t, rec.Header().Get("Authorization"))
	})
}

func TestCloseSession(t *testing.T) {
	tests := []struct {
		name       string
		serviceErr error
		wantStatus int
	}{
		{name: "closed", wantStatus: http.StatusNoContent},
		{name: "already gone", serviceErr: store.ErrSessionNotFound, wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newMockedServices(t)
			m.expectSession()
			m.session.EXPECT().CloseSession(gomock.Any(), testSessionID).Return(tt.serviceErr)

			rec := m.do(t, http.MethodDelete, "/api/session", nil, true)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
