package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-doc-keeper/internal/logger"
	"github.com/MKhiriev/go-doc-keeper/internal/sensitive"
	"github.com/MKhiriev/go-doc-keeper/internal/store"
	"github.com/MKhiriev/go-doc-keeper/models"
)

// RedactedFieldValue replaces the value of a form field whose label names a
// sensitive concept when masking would leave the value readable.
const RedactedFieldValue = "********"

type documentService struct {
	documentRepository  store.DocumentRepository
	verificationService VerificationService
	idGenerator         IDGenerator

	logger *logger.Logger
}

// NewDocumentService returns a DocumentService that gates content through
// verificationService.
func NewDocumentService(documentRepository store.DocumentRepository, verificationService VerificationService,
	idGenerator IDGenerator, logger *logger.Logger) DocumentService {
	return &documentService{
		documentRepository:  documentRepository,
		verificationService: verificationService,
		idGenerator:         idGenerator,
		logger:              logger,
	}
}

// ListDocuments returns summaries without content. The sensitive flag is
// computed from the stored content on every call. A search query of a
// session that is not verified matches the name and the masked content
// only, so the search cannot reveal what GetDocument hides.
func (d *documentService) ListDocuments(ctx context.Context, sessionID string, filter models.DocumentFilter) ([]models.DocumentSummary, error) {
	query := strings.TrimSpace(filter.Query)

	verified := true
	if query != "" {
		var err error
		if verified, err = d.verificationService.IsVerified(ctx, sessionID); err != nil {
			return nil, err
		}
	}

	repoFilter := filter
	if !verified {
		repoFilter.Query = ""
	}

	documents, err := d.documentRepository.ListDocuments(ctx, repoFilter)
	if err != nil {
		return nil, fmt.Errorf("listing documents failed: %w", err)
	}

	summaries := make([]models.DocumentSummary, 0, len(documents))
	for _, doc := range documents {
		if !verified && !matchesMasked(doc, query) {
			continue
		}
		summaries = append(summaries, models.DocumentSummary{
			ID:        doc.ID,
			Kind:      doc.Kind,
			Name:      doc.Name,
			Category:  doc.Category,
			Date:      doc.Date,
			Sensitive: sensitive.IsSensitive(doc.Content),
		})
	}

	return summaries, nil
}

// matchesMasked reports whether query occurs, case-insensitively, in the
// name of doc or in its content as an unverified session sees it.
func matchesMasked(doc models.Document, query string) bool {
	q := strings.ToLower(query)
	if strings.Contains(strings.ToLower(doc.Name), q) {
		return true
	}

	content := doc.Content
	if sensitive.IsSensitive(content) {
		content = sensitive.Mask(content)
	}
	return strings.Contains(strings.ToLower(content), q)
}

// GetDocument returns the document as the session may see it: sensitive
// content is masked unless the session is verified.
func (d *documentService) GetDocument(ctx context.Context, sessionID string, id string) (models.DocumentView, error) {
	doc, err := d.documentRepository.GetDocument(ctx, id)
	if err != nil {
		return models.DocumentView{}, fmt.Errorf("getting document failed: %w", err)
	}

	verified, err := d.verificationService.IsVerified(ctx, sessionID)
	if err != nil {
		return models.DocumentView{}, err
	}

	findings := sensitive.Detect(doc.Content)
	isSensitive := len(findings) > 0
	masked := isSensitive && !verified

	content := doc.Content
	if masked {
		content = sensitive.Mask(content)
	}

	logger.FromContext(ctx).Debug().
		Str("document_id", doc.ID).
		Bool("sensitive", isSensitive).
		Bool("masked", masked).
		Msg("document served")

	return models.DocumentView{
		ID:        doc.ID,
		Kind:      doc.Kind,
		Name:      doc.Name,
		Category:  doc.Category,
		Date:      doc.Date,
		Content:   content,
		Sensitive: isSensitive,
		Masked:    masked,
		Findings:  findings,
	}, nil
}

// GetFormFields returns the auto-fill values of a form. A field is sensitive
// when its value or its label is; sensitive values are masked for sessions
// that are not verified.
func (d *documentService) GetFormFields(ctx context.Context, sessionID string, formID string) ([]models.FormFieldView, error) {
	doc, err := d.documentRepository.GetDocument(ctx, formID)
	if err != nil {
		return nil, fmt.Errorf("getting form failed: %w", err)
	}
	if doc.Kind != models.KindForm {
		return nil, ErrDocumentIsNotAForm
	}

	fields, err := d.documentRepository.GetFormFields(ctx, formID)
	if err != nil {
		return nil, fmt.Errorf("getting form fields failed: %w", err)
	}

	verified, err := d.verificationService.IsVerified(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	views := make([]models.FormFieldView, 0, len(fields))
	for _, field := range fields {
		views = append(views, fieldView(field, verified))
	}

	return views, nil
}

func fieldView(field models.FormField, verified bool) models.FormFieldView {
	labelSensitive := sensitive.IsSensitive(field.Label)
	isSensitive := labelSensitive || sensitive.IsSensitive(field.Value)
	masked := isSensitive && !verified && field.Value != ""

	value := field.Value
	if masked {
		value = sensitive.Mask(value)
		if value == field.Value {
			value = RedactedFieldValue
		}
	}

	return models.FormFieldView{
		Label:       field.Label,
		Value:       value,
		Retrievable: field.Retrievable,
		Sensitive:   isSensitive,
		Masked:      masked,
	}
}

// CreateDocument stores a captured document or form. An empty ID is
// replaced by a generated one.
func (d *documentService) CreateDocument(ctx context.Context, request models.DocumentCreate) (models.Document, error) {
	doc := models.Document{
		ID:       request.ID,
		Kind:     request.Kind,
		Name:     request.Name,
		Category: request.Category,
		Date:     request.Date,
		Content:  request.Content,
	}
	if doc.ID == "" {
		doc.ID = d.idGenerator.Generate()
	}

	created, err := d.documentRepository.CreateDocument(ctx, doc, request.Fields)
	if err != nil {
		return models.Document{}, fmt.Errorf("creating document failed: %w", err)
	}

	logger.FromContext(ctx).Info().
		Str("document_id", created.ID).
		Str("kind", string(created.Kind)).
		Int("fields", len(request.Fields)).
		Msg("document created")

	return created, nil
}

// UpdateDocumentContent replaces the content of an existing document.
func (d *documentService) UpdateDocumentContent(ctx context.Context, update models.ContentUpdate) error {
	if err := d.documentRepository.UpdateDocumentContent(ctx, update.ID, update.Content); err != nil {
		return fmt.Errorf("updating document failed: %w", err)
	}

	logger.FromContext(ctx).Info().Str("document_id", update.ID).Msg("document content updated")
	return nil
}
