package service

import (
	"github.com/MKhiriev/go-doc-keeper/internal/config"
	"github.com/MKhiriev/go-doc-keeper/internal/crypto"
	"github.com/MKhiriev/go-doc-keeper/internal/logger"
	"github.com/MKhiriev/go-doc-keeper/internal/store"
	"github.com/MKhiriev/go-doc-keeper/internal/utils"
)

type Services struct {
	SessionService      SessionService
	VerificationService VerificationService
	DocumentService     DocumentService
	ContentService      ContentService
	AppInfoService      AppInfoService
}

func NewServices(repositories *store.Repositories, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	idGenerator := utils.NewUUIDGenerator()

	verificationService, err := NewVerificationService(repositories.SessionStore, crypto.NewPinHasher(0), cfg.App, logger)
	if err != nil {
		return nil, err
	}

	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	documentService := NewDocumentValidationService().Wrap(
		NewDocumentService(repositories.DocumentRepository, verificationService, idGenerator, logger),
	)

	return &Services{
		SessionService:      NewSessionService(repositories.SessionStore, idGenerator, cfg.App, logger),
		VerificationService: verificationService,
		DocumentService:     documentService,
		ContentService:      NewContentService(cfg.App.TokenSignKey, logger),
		AppInfoService:      appInfoService,
	}, nil
}
