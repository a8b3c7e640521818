package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-doc-keeper/internal/app"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m appModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.searching {
		return m.updateSearch(msg)
	}

	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(msg, keys.down):
		if m.idx < len(m.docs)-1 {
			m.idx++
		}
	case key.Matches(msg, keys.enter):
		if len(m.docs) == 0 {
			return m, nil
		}
		doc := m.docs[m.idx]
		m.loading = true
		m.status = ""
		return m, m.cmdLoadDetail(doc.ID, doc.Kind)
	case key.Matches(msg, keys.search):
		m.searching = true
		m.search.SetValue(m.query)
		cmd := m.search.Focus()
		return m, cmd
	case key.Matches(msg, keys.reload):
		m.loading = true
		return m, tea.Batch(m.cmdLoadDocuments(), m.cmdLoadStatus())
	case key.Matches(msg, keys.pin):
		return m.openPIN()
	case key.Matches(msg, keys.clear):
		return m, m.cmdClearVerification()
	case key.Matches(msg, keys.info):
		m.showBuildInfo = true
	}

	return m, nil
}

func (m appModel) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.enter):
		m.searching = false
		m.search.Blur()
		m.query = strings.TrimSpace(m.search.Value())
		m.idx = 0
		m.loading = true
		return m, m.cmdLoadDocuments()
	case key.Matches(msg, keys.esc):
		m.searching = false
		m.search.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	return m, cmd
}

func (m appModel) viewList() string {
	var b strings.Builder

	b.WriteString("Status: ")
	b.WriteString(verificationLine(m.verification))
	b.WriteString("\n")
	if m.searching {
		b.WriteString(m.search.View())
		b.WriteString("\n")
	} else if m.query != "" {
		b.WriteString(helpStyle.Render(fmt.Sprintf("filter: %q", m.query)))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if len(m.docs) == 0 && !m.loading {
		b.WriteString(app.MsgNoDocuments)
	}
	for i, doc := range m.docs {
		marker := "   "
		if doc.Sensitive {
			marker = sensitiveStyle.Render("[S]")
		}
		line := fmt.Sprintf("%s %-8s %-32s %s", marker, doc.Kind, fitText(doc.Name, 32), valueOrDash(doc.Date))
		if i == m.idx {
			line = selectedStyle.Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	return renderPage("DOCUMENTS", strings.TrimRight(b.String(), "\n"),
		"↑/↓: move  enter: open  /: search  r: reload  p: PIN  x: lock  v: about  q: quit")
}
