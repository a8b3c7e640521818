package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-doc-keeper/internal/logger"
	"github.com/MKhiriev/go-doc-keeper/internal/mock"
	"github.com/MKhiriev/go-doc-keeper/internal/service"
	"github.com/MKhiriev/go-doc-keeper/internal/utils"
	"github.com/MKhiriev/go-doc-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ─────────────────────────────────────────────
// NewHandler
// ─────────────────────────────────────────────

func TestNewHandler_ReturnsNonNil(t *testing.T) {
	h := NewHandler(&service.Services{}, logger.Nop())

	require.NotNil(t, h)
	assert.NotNil(t, h.validator)
}

func TestNewHandler_StoresServices(t *testing.T) {
	svc := &service.Services{}
	h := NewHandler(svc, logger.Nop())

	assert.Equal(t, svc, h.services)
}

func TestNewHandler_StoresLogger(t *testing.T) {
	log := logger.Nop()
	h := NewHandler(&service.Services{}, log)

	assert.Equal(t, log, h.logger)
}

// ─────────────────────────────────────────────
// Helpers shared by the handler tests
// ─────────────────────────────────────────────

const (
	testSessionID = "session-1"
	testToken     = "signed-token"
)

// mockedServices bundles the service mocks behind a router.
type mockedServices struct {
	session      *mock.MockSessionService
	verification *mock.MockVerificationService
	documents    *mock.MockDocumentService
	content      *mock.MockContentService
	appInfo      *mock.MockAppInfoService

	router http.Handler
}

func newMockedServices(t *testing.T) *mockedServices {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := &mockedServices{
		session:      mock.NewMockSessionService(ctrl),
		verification: mock.NewMockVerificationService(ctrl),
		documents:    mock.NewMockDocumentService(ctrl),
		content:      mock.NewMockContentService(ctrl),
		appInfo:      mock.NewMockAppInfoService(ctrl),
	}

	h := NewHandler(&service.Services{
		SessionService:      m.session,
		VerificationService: m.verification,
		DocumentService:     m.documents,
		ContentService:      m.content,
		AppInfoService:      m.appInfo,
	}, logger.Nop())
	m.router = h.Init()

	return m
}

// expectSession makes testToken resolve to testSessionID.
func (m *mockedServices) expectSession() {
	m.session.EXPECT().
		ParseToken(gomock.Any(), testToken).
		Return(models.Token{SessionID: testSessionID}, nil).
		AnyTimes()
}

// do sends a request through the full router. body is JSON encoded unless
// it is already a string.
func (m *mockedServices) do(t *testing.T, method, path string, body any, withToken bool) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if withToken {
		req.Header.Set("Authorization", "Bearer "+testToken)
	}
	rec := httptest.NewRecorder()
	m.router.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var resp utils.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp.Error
}

// ─────────────────────────────────────────────
// Init: route registration
// ─────────────────────────────────────────────

func TestInit_ReturnsRouter(t *testing.T) {
	router := NewHandler(&service.Services{}, logger.Nop()).Init()

	require.NotNil(t, router)
}

// protectedRoutes lists every route that requires an open session.
var protectedRoutes = []struct {
	method string
	path   string
}{
	{http.MethodDelete, "/api/session"},
	{http.MethodPost, "/api/verification"},
	{http.MethodGet, "/api/verification"},
	{http.MethodDelete, "/api/verification"},
	{http.MethodGet, "/api/documents"},
	{http.MethodPost, "/api/documents"},
	{http.MethodGet, "/api/documents/doc-001"},
	{http.MethodPut, "/api/documents/doc-001"},
	{http.MethodGet, "/api/documents/form-001/fields"},
	{http.MethodPost, "/api/content/check"},
	{http.MethodPost, "/api/content/mask"},
}

func TestInit_ProtectedRoutes_RequireAuth(t *testing.T) {
	m := newMockedServices(t)

	for _, tt := range protectedRoutes {
		t.Run(tt.method+" "+tt.path+" without token → 401", func(t *testing.T) {
			rec := m.do(t, tt.method, tt.path, nil, false)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Equal(t, ErrEmptyAuthorizationHeader.Error(), decodeError(t, rec))
		})
	}
}

func TestInit_ProtectedRoutes_RejectInvalidToken(t *testing.T) {
	m := newMockedServices(t)
	m.session.EXPECT().
		ParseToken(gomock.Any(), "expired").
		Return(models.Token{}, service.ErrTokenIsExpiredOrInvalid).
		Times(len(protectedRoutes))

	for _, tt := range protectedRoutes {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			req.Header.Set("Authorization", "Bearer expired")
			rec := httptest.NewRecorder()
			m.router.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestInit_UnknownRoutes_Return404(t *testing.T) {
	m := newMockedServices(t)

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/nonexistent"},
		{http.MethodGet, "/totally/wrong"},
		{http.MethodGet, "/api/documents/doc-001/unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rec := m.do(t, tt.method, tt.path, nil, false)
			assert.Equal(t, http.StatusNotFound, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
		})
	}
}

func TestInit_WrongMethod_Returns404NotMethodNotAllowed(t *testing.T) {
	m := newMockedServices(t)

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/version/"},
		{http.MethodGet, "/api/session"},
		{http.MethodPatch, "/api/verification"},
		{http.MethodDelete, "/api/documents"},
		{http.MethodGet, "/api/content/check"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rec := m.do(t, tt.method, tt.path, nil, false)

			assert.Equal(t, http.StatusNotFound, rec.Code)
			assert.JSONEq(t, `{"error":"Not Found"}`, rec.Body.String())
		})
	}
}

func TestInit_TraceIDHeader(t *testing.T) {
	m := newMockedServices(t)
	m.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("1.0.0").Times(2)

	rec := m.do(t, http.MethodGet, "/api/version/", nil, false)
	assert.NotEmpty(t, rec.Header().Get(traceIDHeader))

	const customTraceID = "my-custom-trace-id-12345"
	req := httptest.NewRequest(http.MethodGet, "/api/version/", nil)
	req.Header.Set(traceIDHeader, customTraceID)
	rec = httptest.NewRecorder()
	m.router.ServeHTTP(rec, req)

	assert.Equal(t, customTraceID, rec.Header().Get(traceIDHeader))
}

// ─────────────────────────────────────────────
// statusFromError
// ─────────────────────────────────────────────

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"invalid data", service.ErrInvalidDataProvided, http.StatusBadRequest},
		{"invalid pin", service.ErrInvalidPIN, http.StatusBadRequest},
		{"wrong pin", service.ErrWrongPIN, http.StatusUnauthorized},
		{"closed session", service.ErrSessionIsClosed, http.StatusUnauthorized},
		{"not a form", service.ErrDocumentIsNotAForm, http.StatusBadRequest},
		{"unknown", io.ErrUnexpectedEOF, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromError(tt.err))
		})
	}
}
