package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-doc-keeper/internal/adapter"
	"github.com/MKhiriev/go-doc-keeper/internal/app"
	"github.com/MKhiriev/go-doc-keeper/internal/validators"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m appModel) updatePIN(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.pinSubmitting {
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.esc):
		m.pinInput.Blur()
		m.screen = m.pinReturn
		return m, nil
	case key.Matches(msg, keys.enter):
		pin := m.pinInput.Value()
		if !validators.IsValidPIN(pin) {
			m.pinErr = app.MsgInvalidPIN
			return m, nil
		}
		m.pinSubmitting = true
		m.pinErr = ""
		return m, m.cmdVerify(pin)
	}

	var cmd tea.Cmd
	m.pinInput, cmd = m.pinInput.Update(msg)
	return m, cmd
}

func (m appModel) handleVerified(msg verifiedMsg) (tea.Model, tea.Cmd) {
	m.pinSubmitting = false

	switch {
	case msg.err == nil:
	case errors.Is(msg.err, adapter.ErrWrongPIN):
		m.pinErr = app.MsgIncorrectPIN
		m.pinInput.Reset()
		return m, nil
	case errors.Is(msg.err, adapter.ErrInvalidPIN):
		m.pinErr = app.MsgInvalidPIN
		m.pinInput.Reset()
		return m, nil
	default:
		m.pinInput.Blur()
		m.screen = m.pinReturn
		return m.withError(msg.err), nil
	}

	m.verification = msg.status
	m.pinInput.Blur()
	m.pinInput.Reset()
	m.status = app.MsgVerified
	m.screen = m.pinReturn

	if m.screen == screenDetail {
		m.loading = true
		return m, m.cmdLoadDetail(m.detail.ID, m.detail.Kind)
	}
	return m, nil
}

func (m appModel) viewPIN() string {
	var b strings.Builder

	b.WriteString("Enter your 4 digit PIN to reveal sensitive details\n")
	b.WriteString("for the next 30 minutes.\n\n")
	b.WriteString(m.pinInput.View())
	if m.pinErr != "" {
		b.WriteString("\n\n")
		b.WriteString(errorStyle.Render(m.pinErr))
	}

	return renderPage("VERIFY", b.String(), "enter: submit  esc: cancel")
}
