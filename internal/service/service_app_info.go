package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-doc-keeper/internal/config"
	"github.com/MKhiriev/go-doc-keeper/internal/logger"
)

// appInfoService reports the version of the running server build.
type appInfoService struct {
	version string
}

// NewAppInfoService fails when no version is configured: clients show the
// server version next to their own, and an empty one hides a broken build.
func NewAppInfoService(cfg config.App, logger *logger.Logger) (AppInfoService, error) {
	version := strings.TrimSpace(cfg.Version)
	if version == "" {
		return nil, fmt.Errorf("%w: set APP_VERSION or build with -ldflags", ErrVersionIsNotSpecified)
	}

	logger.Debug().Str("version", version).Msg("app info service ready")

	return &appInfoService{version: version}, nil
}

func (s *appInfoService) GetAppVersion(_ context.Context) string {
	return s.version
}
