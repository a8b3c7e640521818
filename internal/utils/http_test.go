package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-doc-keeper/models"
)

func TestWriteJSON(t *testing.T) {
	tests := []struct {
		name     string
		data     any
		status   int
		wantBody string
	}{
		{
			name:     "document summary",
			data:     models.DocumentSummary{ID: "doc-001", Kind: models.KindForm, Name: "Bank Statement"},
			status:   http.StatusOK,
			wantBody: `{"id":"doc-001","kind":"form","name":"Bank Statement"`,
		},
		{name: "created status is kept", data: models.AppVersion{Version: "1.0.0"}, status: http.StatusCreated, wantBody: `{"version":"1.0.0"}`},
		{name: "nil encodes as null", data: nil, status: http.StatusOK, wantBody: "null"},
		{name: "empty list", data: []models.DocumentSummary{}, status: http.StatusOK, wantBody: "[]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()

			n, err := WriteJSON(w, tt.data, tt.status)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if n != w.Body.Len() {
				t.Errorf("reported %d bytes, body has %d", n, w.Body.Len())
			}
			if w.Code != tt.status {
				t.Errorf("status = %d, want %d", w.Code, tt.status)
			}
			if ct := w.Header().Get("Content-Type"); ct != "application/json" {
				t.Errorf("Content-Type = %q", ct)
			}
			if got := w.Body.String(); len(got) < len(tt.wantBody) || got[:len(tt.wantBody)] != tt.wantBody {
				t.Errorf("body = %s, want prefix %s", got, tt.wantBody)
			}
		})
	}
}

func TestWriteJSON_Unencodable(t *testing.T) {
	w := httptest.NewRecorder()

	if _, err := WriteJSON(w, make(chan int), http.StatusOK); err == nil {
		t.Fatal("expected an error for a channel")
	}
	if w.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", w.Code)
	}
}

func TestWriteError(t *testing.T) {
	w := httptest.NewRecorder()

	WriteError(w, "document not found", http.StatusNotFound)

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
	if w.Body.String() != `{"error":"document not found"}` {
		t.Errorf("unexpected body %s", w.Body.String())
	}
}
