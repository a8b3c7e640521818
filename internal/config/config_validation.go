// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-doc-keeper/internal/validators"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// server invariants before it is used at startup. Every failing group is
// reported; the result matches the group sentinels with errors.Is.
func (cfg *StructuredConfig) validate() error {
	var errs []error

	if !validators.IsValidPIN(cfg.App.PIN) {
		errs = append(errs, fmt.Errorf("%w: pin must be exactly 4 digits", ErrInvalidAppConfigs))
	}
	if cfg.App.TokenSignKey == "" {
		errs = append(errs, fmt.Errorf("%w: token sign key is empty", ErrInvalidAppConfigs))
	}
	if cfg.App.SessionDuration <= 0 {
		errs = append(errs, fmt.Errorf("%w: session duration must be positive", ErrInvalidAppConfigs))
	}

	if cfg.Storage.DB.DSN == "" {
		errs = append(errs, ErrInvalidStorageConfigs)
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		errs = append(errs, ErrInvalidServerConfigs)
	}

	if cfg.Workers.SweepInterval <= 0 {
		errs = append(errs, ErrInvalidWorkerConfigs)
	}

	return errors.Join(errs...)
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}
