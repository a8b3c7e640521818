package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-doc-keeper/internal/config"
	"github.com/MKhiriev/go-doc-keeper/internal/logger"
	"github.com/MKhiriev/go-doc-keeper/migrations"
)

// Dialect names understood by goose.
const (
	DialectPostgres = "pgx"
	DialectSQLite   = "sqlite3"
)

// DB wraps a *sql.DB together with everything that differs per backend:
// the goose dialect, the placeholder style of generated queries and the
// driver error classifier.
type DB struct {
	*sql.DB
	dialect            string
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewConnectDB opens the backend selected by cfg.DSN: a postgres URL opens
// PostgreSQL, anything else an SQLite file.
func NewConnectDB(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch {
	case cfg.DSN == "":
		return nil, ErrUnsupportedDSN
	case isPostgresDSN(cfg.DSN):
		return NewConnectPostgres(ctx, cfg.DSN, log)
	default:
		return NewConnectSQLite(ctx, cfg.DSN, log)
	}
}

func isPostgresDSN(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://")
}

// newDB assembles a DB for an already opened connection.
func newDB(conn *sql.DB, dialect string, log *logger.Logger) *DB {
	db := &DB{
		DB:      conn,
		dialect: dialect,
		logger:  log,
	}

	switch dialect {
	case DialectPostgres:
		db.builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
		db.errorClassificator = NewPostgresErrorClassifier()
	default:
		db.builder = sq.StatementBuilder.PlaceholderFormat(sq.Question)
		db.errorClassificator = NewSQLiteErrorClassifier()
	}

	return db
}

// Dialect returns the goose dialect name of the backend.
func (db *DB) Dialect() string {
	return db.dialect
}

// Migrate applies the embedded schema and seed migrations.
func (db *DB) Migrate() error {
	if err := migrations.Migrate(db.DB, db.dialect); err != nil {
		return fmt.Errorf("error migrating %s database: %w", db.dialect, err)
	}
	return nil
}
