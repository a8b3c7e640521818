package store

import "github.com/MKhiriev/go-doc-keeper/internal/logger"

// Repositories groups every storage component handed to the service layer.
type Repositories struct {
	DocumentRepository DocumentRepository
	SessionStore       SessionStore
}

// NewRepositories wires the SQL document repository on db and a fresh
// in-memory session store.
func NewRepositories(db *DB, log *logger.Logger) *Repositories {
	return &Repositories{
		DocumentRepository: NewDocumentRepository(db, log),
		SessionStore:       NewMemorySessionStore(log),
	}
}
