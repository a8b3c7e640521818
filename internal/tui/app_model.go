package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-doc-keeper/internal/app"
	"github.com/MKhiriev/go-doc-keeper/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type screen int

const (
	screenList screen = iota
	screenDetail
	screenPIN
)

// writeClipboard is replaced in tests.
var writeClipboard = clipboard.WriteAll

// appModel is the single bubbletea model of the client. It switches
// between the document list, the detail view and the PIN prompt.
type appModel struct {
	ctx       context.Context
	client    DocumentClient
	buildInfo models.AppBuildInfo

	screen     screen
	pinReturn  screen
	loading    bool
	spinner    spinner.Model
	quitByUser bool

	docs      []models.DocumentSummary
	idx       int
	searching bool
	search    textinput.Model
	query     string

	detail models.DocumentView
	fields []models.FormFieldView

	verification  models.VerificationStatus
	pinInput      textinput.Model
	pinErr        string
	pinSubmitting bool

	status        string
	overlay       *errorOverlayModel
	showBuildInfo bool
	serverVersion string
}

func newAppModel(ctx context.Context, client DocumentClient, buildInfo models.AppBuildInfo) appModel {
	search := textinput.New()
	search.Placeholder = "search name or content"
	search.Prompt = "/ "

	pin := textinput.New()
	pin.Placeholder = "••••"
	pin.Prompt = "PIN: "
	pin.EchoMode = textinput.EchoPassword
	pin.EchoCharacter = '•'
	pin.CharLimit = 4

	return appModel{
		ctx:       ctx,
		client:    client,
		buildInfo: buildInfo,
		screen:    screenList,
		loading:   true,
		spinner:   spinner.New(spinner.WithSpinner(spinner.Dot)),
		search:    search,
		pinInput:  pin,
	}
}

func (m appModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.cmdLoadDocuments(), m.cmdLoadStatus(), m.cmdServerVersion())
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case documentsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			return m.withError(msg.err), nil
		}
		m.docs = msg.docs
		if m.idx >= len(m.docs) {
			m.idx = len(m.docs) - 1
		}
		if m.idx < 0 {
			m.idx = 0
		}
		return m, nil
	case detailLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.screen = screenList
			return m.withError(msg.err), nil
		}
		m.detail = msg.view
		m.fields = msg.fields
		m.screen = screenDetail
		return m, nil
	case verifiedMsg:
		return m.handleVerified(msg)
	case statusLoadedMsg:
		if msg.err == nil {
			m.verification = msg.status
		}
		return m, nil
	case verificationClearedMsg:
		if msg.err != nil {
			return m.withError(msg.err), nil
		}
		m.verification = models.VerificationStatus{}
		m.status = app.MsgVerificationCleared
		if m.screen == screenDetail {
			m.loading = true
			return m, m.cmdLoadDetail(m.detail.ID, m.detail.Kind)
		}
		return m, nil
	case serverVersionMsg:
		m.serverVersion = msg.version
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if key.Matches(keyMsg, keys.forceQuit) {
		m.quitByUser = true
		return m, tea.Quit
	}

	if m.overlay != nil {
		if key.Matches(keyMsg, keys.enter, keys.esc) {
			if m.overlay.sessionLost {
				return m, tea.Quit
			}
			m.overlay = nil
		}
		return m, nil
	}

	if m.showBuildInfo {
		if key.Matches(keyMsg, keys.esc, keys.info) {
			m.showBuildInfo = false
		}
		return m, nil
	}

	switch m.screen {
	case screenPIN:
		return m.updatePIN(keyMsg)
	case screenDetail:
		return m.updateDetail(keyMsg)
	default:
		return m.updateList(keyMsg)
	}
}

func (m appModel) View() string {
	if m.overlay != nil {
		return appStyle.Render(m.overlay.View())
	}
	if m.showBuildInfo {
		return appStyle.Render(renderBuildInfoWindow(m.buildInfo, m.serverVersion))
	}

	var body string
	switch m.screen {
	case screenPIN:
		body = m.viewPIN()
	case screenDetail:
		body = m.viewDetail()
	default:
		body = m.viewList()
	}

	var b strings.Builder
	b.WriteString(body)
	if m.loading {
		b.WriteString("\n\n  ")
		b.WriteString(m.spinner.View())
		b.WriteString(" loading...")
	}
	if m.status != "" {
		b.WriteString("\n\n  ")
		b.WriteString(helpStyle.Render(m.status))
	}

	return appStyle.Render(b.String())
}

func (m appModel) withError(err error) appModel {
	m.overlay = newErrorOverlay(err)
	return m
}

// openPIN shows the PIN prompt and remembers where to return afterwards.
func (m appModel) openPIN() (appModel, tea.Cmd) {
	m.pinReturn = m.screen
	m.screen = screenPIN
	m.pinErr = ""
	m.status = ""
	m.pinInput.Reset()
	cmd := m.pinInput.Focus()
	return m, cmd
}

func (m appModel) copyDisplayed() appModel {
	text := m.detail.Content
	if strings.TrimSpace(text) == "" {
		m.status = app.MsgNothingToCopy
		return m
	}
	if err := writeClipboard(text); err != nil {
		return m.withError(err)
	}
	m.status = app.MsgCopied
	return m
}

func (m appModel) cmdLoadDocuments() tea.Cmd {
	filter := models.DocumentFilter{Query: m.query}
	return func() tea.Msg {
		docs, err := m.client.ListDocuments(m.ctx, filter)
		return documentsLoadedMsg{docs: docs, err: err}
	}
}

func (m appModel) cmdLoadDetail(id string, kind models.DocumentKind) tea.Cmd {
	return func() tea.Msg {
		view, err := m.client.GetDocument(m.ctx, id)
		if err != nil {
			return detailLoadedMsg{err: err}
		}
		if kind != models.KindForm {
			return detailLoadedMsg{view: view}
		}

		fields, err := m.client.GetFormFields(m.ctx, id)
		return detailLoadedMsg{view: view, fields: fields, err: err}
	}
}

func (m appModel) cmdVerify(pin string) tea.Cmd {
	return func() tea.Msg {
		status, err := m.client.Verify(m.ctx, pin)
		return verifiedMsg{status: status, err: err}
	}
}

func (m appModel) cmdLoadStatus() tea.Cmd {
	return func() tea.Msg {
		status, err := m.client.VerificationStatus(m.ctx)
		return statusLoadedMsg{status: status, err: err}
	}
}

func (m appModel) cmdClearVerification() tea.Cmd {
	return func() tea.Msg {
		return verificationClearedMsg{err: m.client.ClearVerification(m.ctx)}
	}
}

func (m appModel) cmdServerVersion() tea.Cmd {
	return func() tea.Msg {
		version, err := m.client.GetServerVersion(m.ctx)
		if err != nil {
			return serverVersionMsg{}
		}
		return serverVersionMsg{version: version}
	}
}
