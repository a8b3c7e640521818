package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-doc-keeper/internal/adapter"
	"github.com/MKhiriev/go-doc-keeper/internal/logger"
	"github.com/MKhiriev/go-doc-keeper/internal/tui"
)

type App struct {
	adapter adapter.ServerAdapter
	ui      UI
	logger  *logger.Logger
}

func NewApp(serverAdapter adapter.ServerAdapter, ui UI, logger *logger.Logger) (Client, error) {
	if serverAdapter == nil || ui == nil {
		return nil, errors.New("client app needs a server adapter and a ui")
	}
	return &App{adapter: serverAdapter, ui: ui, logger: logger}, nil
}

// Run opens a fresh unverified session, runs the UI and closes the session
// on the way out. Quitting with ctrl+c is not an error.
func (a *App) Run(ctx context.Context) (err error) {
	if err = a.adapter.OpenSession(ctx); err != nil {
		return fmt.Errorf("open session: %w", err)
	}
	a.logger.Info().Str("func", "*App.Run").Msg("session opened")

	defer func() {
		// the session outlives the ui context, close it on a fresh one
		if closeErr := a.adapter.CloseSession(context.WithoutCancel(ctx)); closeErr != nil {
			a.logger.Err(closeErr).Str("func", "*App.Run").Msg("error closing session")
			return
		}
		a.logger.Info().Str("func", "*App.Run").Msg("session closed")
	}()

	err = a.ui.Run(ctx)
	if errors.Is(err, tui.ErrUserQuit) {
		return nil
	}
	return err
}
