package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-doc-keeper/internal/app"
	"github.com/MKhiriev/go-doc-keeper/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m appModel) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.screen = screenList
		m.status = ""
		m.detail = models.DocumentView{}
		m.fields = nil
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.copy):
		return m.copyDisplayed(), nil
	case key.Matches(msg, keys.pin):
		return m.openPIN()
	case key.Matches(msg, keys.clear):
		return m, m.cmdClearVerification()
	case key.Matches(msg, keys.reload):
		m.loading = true
		return m, m.cmdLoadDetail(m.detail.ID, m.detail.Kind)
	}

	return m, nil
}

func (m appModel) viewDetail() string {
	var b strings.Builder

	d := m.detail
	fmt.Fprintf(&b, "Kind:     %s\n", d.Kind)
	fmt.Fprintf(&b, "Category: %s\n", valueOrDash(d.Category))
	fmt.Fprintf(&b, "Date:     %s\n", valueOrDash(d.Date))
	b.WriteString("Status:   ")
	b.WriteString(verificationLine(m.verification))
	b.WriteString("\n")
	if d.Sensitive {
		b.WriteString(sensitiveStyle.Render("Contains sensitive data: " + strings.Join(d.Findings, ", ")))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(valueOrDash(d.Content))
	b.WriteString("\n")

	if len(m.fields) > 0 {
		b.WriteString("\nFields:\n")
		for _, f := range m.fields {
			value := valueOrDash(f.Value)
			if !f.Retrievable {
				value = helpStyle.Render("(fill manually)")
			}
			fmt.Fprintf(&b, "  %-28s %s\n", fitText(f.Label, 28)+":", value)
		}
	}

	if d.Masked || anyFieldMasked(m.fields) {
		b.WriteString("\n")
		b.WriteString(helpStyle.Render(app.MsgMaskedHint))
	}

	return renderPage(strings.ToUpper(d.Name), strings.TrimRight(b.String(), "\n"),
		"esc: back  c: copy  p: PIN  x: lock  r: reload  q: quit")
}

func anyFieldMasked(fields []models.FormFieldView) bool {
	for _, f := range fields {
		if f.Masked {
			return true
		}
	}
	return false
}
