package service

import (
	"context"

	"github.com/MKhiriev/go-doc-keeper/internal/logger"
	"github.com/MKhiriev/go-doc-keeper/internal/sensitive"
	"github.com/MKhiriev/go-doc-keeper/internal/utils"
	"github.com/MKhiriev/go-doc-keeper/models"
)

// contentService exposes the classifier and the masker for free text.
// Submitted text is never logged, only its keyed fingerprint.
type contentService struct {
	fingerprintKey string

	logger *logger.Logger
}

func NewContentService(fingerprintKey string, logger *logger.Logger) ContentService {
	return &contentService{
		fingerprintKey: fingerprintKey,
		logger:         logger,
	}
}

func (c *contentService) Check(ctx context.Context, content string) models.ContentVerdict {
	findings := sensitive.Detect(content)
	if findings == nil {
		findings = []string{}
	}

	logger.FromContext(ctx).Debug().
		Str("fingerprint", utils.Fingerprint(content, c.fingerprintKey)).
		Strs("findings", findings).
		Msg("content checked")

	return models.ContentVerdict{
		Sensitive: len(findings) > 0,
		Findings:  findings,
	}
}

func (c *contentService) Mask(ctx context.Context, content string) models.MaskedContent {
	masked := sensitive.Mask(content)

	logger.FromContext(ctx).Debug().
		Str("fingerprint", utils.Fingerprint(content, c.fingerprintKey)).
		Bool("changed", masked != content).
		Msg("content masked")

	return models.MaskedContent{Content: masked}
}
