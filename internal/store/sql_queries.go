package store

import (
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-doc-keeper/models"
)

const (
	documentsTable  = "documents"
	formFieldsTable = "form_fields"
)

var documentColumns = []string{"id", "kind", "name", "category", "doc_date", "content", "created_at"}

// likeEscaper escapes LIKE wildcards so a search query matches literally.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func buildListDocumentsQuery(b sq.StatementBuilderType, filter models.DocumentFilter) (string, []any, error) {
	query := b.Select(documentColumns...).
		From(documentsTable).
		OrderBy("created_at DESC", "id")

	if filter.Kind != "" {
		query = query.Where(sq.Eq{"kind": string(filter.Kind)})
	}

	if q := strings.TrimSpace(filter.Query); q != "" {
		pattern := "%" + likeEscaper.Replace(strings.ToLower(q)) + "%"
		query = query.Where(sq.Or{
			sq.Expr(`LOWER(name) LIKE ? ESCAPE '\'`, pattern),
			sq.Expr(`LOWER(content) LIKE ? ESCAPE '\'`, pattern),
		})
	}

	return query.ToSql()
}

func buildGetDocumentQuery(b sq.StatementBuilderType, id string) (string, []any, error) {
	return b.Select(documentColumns...).
		From(documentsTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildInsertDocumentQuery(b sq.StatementBuilderType, doc models.Document) (string, []any, error) {
	return b.Insert(documentsTable).
		Columns(documentColumns...).
		Values(doc.ID, string(doc.Kind), doc.Name, doc.Category, doc.Date, doc.Content, doc.CreatedAt).
		ToSql()
}

func buildInsertFormFieldsQuery(b sq.StatementBuilderType, formID string, fields []models.FormField) (string, []any, error) {
	query := b.Insert(formFieldsTable).
		Columns("form_id", "position", "label", "value", "retrievable")

	for i, field := range fields {
		query = query.Values(formID, i, field.Label, field.Value, field.Retrievable)
	}

	return query.ToSql()
}

func buildUpdateContentQuery(b sq.StatementBuilderType, id string, content string) (string, []any, error) {
	return b.Update(documentsTable).
		Set("content", content).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildGetFormFieldsQuery(b sq.StatementBuilderType, formID string) (string, []any, error) {
	return b.Select("label", "value", "retrievable").
		From(formFieldsTable).
		Where(sq.Eq{"form_id": formID}).
		OrderBy("position").
		ToSql()
}
