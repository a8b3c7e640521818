// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-doc-keeper/internal/logger"
	"github.com/MKhiriev/go-doc-keeper/models"
)

// documentRepository is the SQL implementation of [DocumentRepository].
// It works on PostgreSQL and SQLite alike; queries are generated with the
// placeholder style of the underlying [DB].
//
// Document contents are never logged, only ids and counts.
type documentRepository struct {
	*DB
	logger *logger.Logger
}

// NewDocumentRepository constructs a [DocumentRepository] backed by db.
func NewDocumentRepository(db *DB, logger *logger.Logger) DocumentRepository {
	logger.Debug().Msg("creating document repository")
	return &documentRepository{
		DB:     db,
		logger: logger,
	}
}

// ListDocuments implements [DocumentRepository].
func (r *documentRepository) ListDocuments(ctx context.Context, filter models.DocumentFilter) ([]models.Document, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListDocumentsQuery(r.builder, filter)
	if err != nil {
		log.Err(err).Str("func", "documentRepository.ListDocuments").Msg("failed to create query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "documentRepository.ListDocuments").
			Str("kind", string(filter.Kind)).
			Msg("failed to execute query for listing documents")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	documents := make([]models.Document, 0, 16)
	for rows.Next() {
		doc, scanErr := scanDocument(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "documentRepository.ListDocuments").Msg("failed to scan document row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		documents = append(documents, doc)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "documentRepository.ListDocuments").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return documents, nil
}

// GetDocument implements [DocumentRepository].
func (r *documentRepository) GetDocument(ctx context.Context, id string) (models.Document, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetDocumentQuery(r.builder, id)
	if err != nil {
		log.Err(err).Str("func", "documentRepository.GetDocument").Msg("failed to create query")
		return models.Document{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	doc, err := scanDocument(r.DB.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Document{}, ErrDocumentNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "documentRepository.GetDocument").Str("document_id", id).Msg("failed to get document")
		return models.Document{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return doc, nil
}

// CreateDocument implements [DocumentRepository].
func (r *documentRepository) CreateDocument(ctx context.Context, doc models.Document, fields []models.FormField) (models.Document, error) {
	log := logger.FromContext(ctx)

	if doc.CreatedAt.IsZero() {
		doc.CreatedAt = time.Now().UTC()
	}

	docQuery, docArgs, err := buildInsertDocumentQuery(r.builder, doc)
	if err != nil {
		log.Err(err).Str("func", "documentRepository.CreateDocument").Msg("failed to create query")
		return models.Document{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = r.withRetry(ctx, func(ctx context.Context) error {
		return r.insertDocument(ctx, doc, docQuery, docArgs, fields)
	})
	if err != nil {
		return models.Document{}, err
	}

	return doc, nil
}

// insertDocument writes doc and its form fields in one transaction.
func (r *documentRepository) insertDocument(ctx context.Context, doc models.Document, docQuery string, docArgs []any, fields []models.FormField) error {
	log := logger.FromContext(ctx)

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "documentRepository.insertDocument").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, docQuery, docArgs...); err != nil {
		if r.errorClassificator.Classify(err) == Conflict {
			return ErrDocumentAlreadyExists
		}
		log.Err(err).
			Str("func", "documentRepository.insertDocument").
			Str("document_id", doc.ID).
			Msg("failed to insert document")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if len(fields) > 0 {
		fieldsQuery, fieldsArgs, buildErr := buildInsertFormFieldsQuery(r.builder, doc.ID, fields)
		if buildErr != nil {
			log.Err(buildErr).Str("func", "documentRepository.insertDocument").Msg("failed to create form fields query")
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, buildErr)
		}

		if _, err = tx.ExecContext(ctx, fieldsQuery, fieldsArgs...); err != nil {
			log.Err(err).
				Str("func", "documentRepository.insertDocument").
				Str("document_id", doc.ID).
				Int("fields", len(fields)).
				Msg("failed to insert form fields")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "documentRepository.insertDocument").Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

// UpdateDocumentContent implements [DocumentRepository].
func (r *documentRepository) UpdateDocumentContent(ctx context.Context, id string, content string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateContentQuery(r.builder, id, content)
	if err != nil {
		log.Err(err).Str("func", "documentRepository.UpdateDocumentContent").Msg("failed to create query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var result sql.Result
	err = r.withRetry(ctx, func(ctx context.Context) error {
		var execErr error
		result, execErr = r.DB.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		log.Err(err).
			Str("func", "documentRepository.UpdateDocumentContent").
			Str("document_id", id).
			Msg("failed to update document content")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrDocumentNotFound
	}

	return nil
}

// GetFormFields implements [DocumentRepository].
func (r *documentRepository) GetFormFields(ctx context.Context, formID string) ([]models.FormField, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetFormFieldsQuery(r.builder, formID)
	if err != nil {
		log.Err(err).Str("func", "documentRepository.GetFormFields").Msg("failed to create query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "documentRepository.GetFormFields").
			Str("form_id", formID).
			Msg("failed to execute query for form fields")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	fields := make([]models.FormField, 0, 8)
	for rows.Next() {
		var field models.FormField
		if scanErr := rows.Scan(&field.Label, &field.Value, &field.Retrievable); scanErr != nil {
			log.Err(scanErr).Str("func", "documentRepository.GetFormFields").Msg("failed to scan form field row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		fields = append(fields, field)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "documentRepository.GetFormFields").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return fields, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDocument(row rowScanner) (models.Document, error) {
	var doc models.Document
	var kind string

	err := row.Scan(&doc.ID, &kind, &doc.Name, &doc.Category, &doc.Date, &doc.Content, &doc.CreatedAt)
	if err != nil {
		return models.Document{}, err
	}
	doc.Kind = models.DocumentKind(kind)

	return doc, nil
}
