// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// parseEnv reads a [StructuredConfig] from environment variables following
// the `env` and `envPrefix` tags of its fields.
//
// The PIN and the token sign key are trimmed: both are often mounted from
// secret files that end with a newline.
func parseEnv() (*StructuredConfig, error) {
	cfg, err := env.ParseAs[StructuredConfig]()
	if err != nil {
		return nil, fmt.Errorf("error getting env configs: %w", err)
	}

	cfg.App.PIN = strings.TrimSpace(cfg.App.PIN)
	cfg.App.TokenSignKey = strings.TrimSpace(cfg.App.TokenSignKey)

	return &cfg, nil
}
