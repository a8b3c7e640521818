package client

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-doc-keeper/internal/adapter"
	"github.com/MKhiriev/go-doc-keeper/internal/logger"
	"github.com/MKhiriev/go-doc-keeper/internal/mock"
	"github.com/MKhiriev/go-doc-keeper/internal/tui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type stubUI struct {
	err   error
	calls int
}

func (s *stubUI) Run(context.Context) error {
	s.calls++
	return s.err
}

func TestNewApp_RequiresDependencies(t *testing.T) {
	_, err := NewApp(nil, &stubUI{}, logger.Nop())
	assert.Error(t, err)

	ctrl := gomock.NewController(t)
	_, err = NewApp(mock.NewMockServerAdapter(ctrl), nil, logger.Nop())
	assert.Error(t, err)
}

func TestApp_Run(t *testing.T) {
	uiErr := errors.New("terminal is gone")

	tests := []struct {
		name    string
		uiErr   error
		wantErr error
	}{
		{name: "normal exit"},
		{name: "ctrl+c is not an error", uiErr: tui.ErrUserQuit},
		{name: "ui failure", uiErr: uiErr, wantErr: uiErr},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			serverAdapter := mock.NewMockServerAdapter(ctrl)
			gomock.InOrder(
				serverAdapter.EXPECT().OpenSession(gomock.Any()).Return(nil),
				serverAdapter.EXPECT().CloseSession(gomock.Any()).Return(nil),
			)

			ui := &stubUI{err: tt.uiErr}
			app, err := NewApp(serverAdapter, ui, logger.Nop())
			require.NoError(t, err)

			err = app.Run(context.Background())
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, 1, ui.calls)
		})
	}
}

func TestApp_Run_OpenSessionFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	serverAdapter := mock.NewMockServerAdapter(ctrl)
	serverAdapter.EXPECT().OpenSession(gomock.Any()).Return(adapter.ErrInternalServerError)

	ui := &stubUI{}
	app, err := NewApp(serverAdapter, ui, logger.Nop())
	require.NoError(t, err)

	err = app.Run(context.Background())

	assert.ErrorIs(t, err, adapter.ErrInternalServerError)
	assert.Zero(t, ui.calls)
}

func TestApp_Run_CloseSessionErrorIsLogged(t *testing.T) {
	ctrl := gomock.NewController(t)
	serverAdapter := mock.NewMockServerAdapter(ctrl)
	serverAdapter.EXPECT().OpenSession(gomock.Any()).Return(nil)
	serverAdapter.EXPECT().CloseSession(gomock.Any()).Return(adapter.ErrUnauthorized)

	app, err := NewApp(serverAdapter, &stubUI{}, logger.Nop())
	require.NoError(t, err)

	assert.NoError(t, app.Run(context.Background()))
}
