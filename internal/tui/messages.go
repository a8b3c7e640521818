package tui

import "github.com/MKhiriev/go-doc-keeper/models"

type documentsLoadedMsg struct {
	docs []models.DocumentSummary
	err  error
}

type detailLoadedMsg struct {
	view   models.DocumentView
	fields []models.FormFieldView
	err    error
}

type verifiedMsg struct {
	status models.VerificationStatus
	err    error
}

type statusLoadedMsg struct {
	status models.VerificationStatus
	err    error
}

type verificationClearedMsg struct {
	err error
}

type serverVersionMsg struct {
	version string
}
