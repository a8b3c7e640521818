package tui

import (
	"errors"

	"github.com/MKhiriev/go-doc-keeper/internal/adapter"
)

// errorOverlayModel covers the current screen until the user dismisses it.
type errorOverlayModel struct {
	message string
	// sessionLost means no request can succeed until the client restarts,
	// so dismissing the overlay quits.
	sessionLost bool
}

func newErrorOverlay(err error) *errorOverlayModel {
	return &errorOverlayModel{
		message:     humanizeError(err),
		sessionLost: errors.Is(err, adapter.ErrUnauthorized),
	}
}

func (m errorOverlayModel) View() string {
	hint := "enter / esc: close"
	if m.sessionLost {
		hint = "enter / esc: quit"
	}
	content := errorStyle.Render("Error") + "\n\n" + m.message + "\n\n" + helpStyle.Render(hint)
	return overlayBoxStyle.Render(content)
}
