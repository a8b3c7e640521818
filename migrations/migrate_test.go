// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package migrations

import (
	"database/sql"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	_ "github.com/mattn/go-sqlite3"
)

func TestMigrate_DBError(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()

	_ = mock // goose talks to the db on its own

	err = Migrate(db, "pgx")
	if err == nil {
		t.Fatal("expected error from Migrate, got nil")
	}

	if !strings.Contains(err.Error(), "migration error") {
		t.Errorf("expected wrapped migration error, got: %v", err)
	}
}

func TestMigrate_NilDB(t *testing.T) {
	var db *sql.DB

	err := Migrate(db, "sqlite3")
	if err == nil {
		t.Fatal("expected error when db is nil, got nil")
	}

	if !strings.Contains(err.Error(), "db is nil") {
		t.Errorf("expected 'db is nil' error, got: %v", err)
	}
}

func TestMigrate_UnknownDialect(t *testing.T) {
	db, _, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()

	err = Migrate(db, "oracle-9i")
	if err == nil || !strings.Contains(err.Error(), "setting dialect") {
		t.Errorf("expected dialect error, got: %v", err)
	}
}

func TestMigrate_SQLiteSeed(t *testing.T) {
	db, err := sql.Open("sqlite3", "file:migrate_test?mode=memory&cache=shared&_foreign_keys=on")
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(1)

	if err = Migrate(db, "sqlite3"); err != nil {
		t.Fatalf("unexpected migration error: %v", err)
	}

	var documents, forms, fields int
	if err = db.QueryRow(`SELECT COUNT(*) FROM documents WHERE kind = 'document'`).Scan(&documents); err != nil {
		t.Fatalf("count documents: %v", err)
	}
	if err = db.QueryRow(`SELECT COUNT(*) FROM documents WHERE kind = 'form'`).Scan(&forms); err != nil {
		t.Fatalf("count forms: %v", err)
	}
	if err = db.QueryRow(`SELECT COUNT(*) FROM form_fields WHERE form_id = 'form-001'`).Scan(&fields); err != nil {
		t.Fatalf("count fields: %v", err)
	}

	if documents != 8 {
		t.Errorf("expected 8 seeded documents, got %d", documents)
	}
	if forms != 5 {
		t.Errorf("expected 5 seeded forms, got %d", forms)
	}
	if fields != 8 {
		t.Errorf("expected 8 fields for form-001, got %d", fields)
	}

	var content string
	if err = db.QueryRow(`SELECT content FROM documents WHERE id = 'doc-001'`).Scan(&content); err != nil {
		t.Fatalf("read doc-001: %v", err)
	}
	if !strings.Contains(content, "\nTotal Amount: $1,245.50\n") {
		t.Errorf("multi-line content was not preserved: %q", content)
	}
}
