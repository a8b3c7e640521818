package adapter

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-doc-keeper/internal/config"
	handlerhttp "github.com/MKhiriev/go-doc-keeper/internal/handler/http"
	"github.com/MKhiriev/go-doc-keeper/internal/logger"
	"github.com/MKhiriev/go-doc-keeper/internal/service"
	"github.com/MKhiriev/go-doc-keeper/internal/store"
	"github.com/MKhiriev/go-doc-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newServerStack starts the real router over an in-memory SQLite database
// seeded by the migrations.
func newServerStack(t *testing.T) *httptest.Server {
	t.Helper()
	log := logger.Nop()
	ctx := context.Background()

	db, err := store.NewConnectDB(ctx, config.DB{DSN: "file:" + t.Name() + "?mode=memory&cache=shared"}, log)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, db.Migrate())

	cfg := config.StructuredConfig{App: config.App{
		PIN:             "1234",
		TokenSignKey:    "e2e-sign-key",
		TokenIssuer:     "go-doc-keeper",
		SessionDuration: time.Hour,
		Version:         "0.0.1-e2e",
	}}
	services, err := service.NewServices(store.NewRepositories(db, log), cfg, log)
	require.NoError(t, err)

	srv := httptest.NewServer(handlerhttp.NewHandler(services, log).Init())
	t.Cleanup(srv.Close)
	return srv
}

func TestEndToEnd_VerificationUnlocksContent(t *testing.T) {
	srv := newServerStack(t)
	a := newTestAdapter(t, srv.URL)
	ctx := context.Background()

	version, err := a.GetServerVersion(ctx)
	require.NoError(t, err)
	assert.Equal(t, "0.0.1-e2e", version)

	require.NoError(t, a.OpenSession(ctx))

	locked, err := a.GetDocument(ctx, "doc-004")
	require.NoError(t, err)
	assert.True(t, locked.Sensitive)
	assert.True(t, locked.Masked)
	assert.NotContains(t, locked.Content, "123-45-6789")
	assert.Contains(t, locked.Content, "***-**-****")

	_, err = a.Verify(ctx, "9999")
	require.ErrorIs(t, err, ErrWrongPIN)

	_, err = a.Verify(ctx, "12a4")
	require.ErrorIs(t, err, ErrInvalidPIN)

	status, err := a.Verify(ctx, "1234")
	require.NoError(t, err)
	assert.True(t, status.Verified)
	assert.Equal(t, status.VerifiedAt+30*60*1000, status.ExpiresAt)

	unlocked, err := a.GetDocument(ctx, "doc-004")
	require.NoError(t, err)
	assert.False(t, unlocked.Masked)
	assert.Contains(t, unlocked.Content, "123-45-6789")

	require.NoError(t, a.ClearVerification(ctx))

	relocked, err := a.GetDocument(ctx, "doc-004")
	require.NoError(t, err)
	assert.True(t, relocked.Masked)

	require.NoError(t, a.CloseSession(ctx))

	a.SetToken("not-a-token")
	_, err = a.ListDocuments(ctx, models.DocumentFilter{})
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestEndToEnd_SearchHidesMaskedContent(t *testing.T) {
	srv := newServerStack(t)
	a := newTestAdapter(t, srv.URL)
	ctx := context.Background()
	require.NoError(t, a.OpenSession(ctx))

	search := func(q string) []string {
		t.Helper()
		docs, err := a.ListDocuments(ctx, models.DocumentFilter{Query: q})
		require.NoError(t, err)
		ids := []string{}
		for _, d := range docs {
			ids = append(ids, d.ID)
		}
		return ids
	}

	assert.Empty(t, search("123-45-6789"))
	assert.Contains(t, search("medical report"), "doc-004")
	assert.Contains(t, search("annual checkup"), "doc-004")

	_, err := a.Verify(ctx, "1234")
	require.NoError(t, err)

	assert.Equal(t, []string{"doc-004"}, search("123-45-6789"))

	require.NoError(t, a.ClearVerification(ctx))
	assert.Empty(t, search("123-45-6789"))
}

func TestEndToEnd_DocumentsAndForms(t *testing.T) {
	srv := newServerStack(t)
	a := newTestAdapter(t, srv.URL)
	ctx := context.Background()
	require.NoError(t, a.OpenSession(ctx))

	forms, err := a.ListDocuments(ctx, models.DocumentFilter{Kind: models.KindForm})
	require.NoError(t, err)
	assert.Len(t, forms, 5)

	fields, err := a.GetFormFields(ctx, "form-001")
	require.NoError(t, err)
	require.NotEmpty(t, fields)
	for _, f := range fields {
		assert.NotEqual(t, "123-45-6789", f.Value)
	}

	_, err = a.GetFormFields(ctx, "doc-001")
	assert.ErrorIs(t, err, ErrBadRequest)

	_, err = a.GetDocument(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	created, err := a.CreateDocument(ctx, models.DocumentCreate{
		ID: "doc-100", Kind: models.KindDocument, Name: "Note", Category: "Personal", Date: "2024-07-01", Content: "nothing to see",
	})
	require.NoError(t, err)
	assert.Equal(t, "doc-100", created.ID)

	_, err = a.CreateDocument(ctx, models.DocumentCreate{ID: "doc-100", Kind: models.KindDocument, Name: "Note", Content: "again"})
	assert.ErrorIs(t, err, ErrConflict)

	require.NoError(t, a.UpdateDocumentContent(ctx, models.ContentUpdate{ID: "doc-100", Content: "Balance: $9,999.00"}))

	view, err := a.GetDocument(ctx, "doc-100")
	require.NoError(t, err)
	assert.True(t, view.Masked)
	assert.Contains(t, view.Content, "$***.**")

	verdict, err := a.CheckContent(ctx, "card 4111 1111 1111 1111")
	require.NoError(t, err)
	assert.True(t, verdict.Sensitive)
}
