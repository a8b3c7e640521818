// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"

	"github.com/MKhiriev/go-doc-keeper/internal/logger"
	"github.com/MKhiriev/go-doc-keeper/models"
	tea "github.com/charmbracelet/bubbletea"
)

// DocumentClient is the part of the server adapter the terminal UI needs.
type DocumentClient interface {
	ListDocuments(ctx context.Context, filter models.DocumentFilter) ([]models.DocumentSummary, error)
	GetDocument(ctx context.Context, id string) (models.DocumentView, error)
	GetFormFields(ctx context.Context, formID string) ([]models.FormFieldView, error)
	Verify(ctx context.Context, pin string) (models.VerificationStatus, error)
	VerificationStatus(ctx context.Context) (models.VerificationStatus, error)
	ClearVerification(ctx context.Context) error
	GetServerVersion(ctx context.Context) (string, error)
}

type TUI struct {
	client    DocumentClient
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(client DocumentClient, buildInfo models.AppBuildInfo, logger *logger.Logger) *TUI {
	return &TUI{client: client, buildInfo: buildInfo, logger: logger}
}

// Run shows the document browser until the user quits. Leaving with
// ctrl+c returns [ErrUserQuit].
func (t *TUI) Run(ctx context.Context) error {
	model := newAppModel(ctx, t.client, t.buildInfo)
	finalModel, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		t.logger.Err(err).Str("func", "*TUI.Run").Msg("terminal program failed")
		return err
	}

	result, ok := finalModel.(appModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		return ErrUserQuit
	}

	return nil
}
