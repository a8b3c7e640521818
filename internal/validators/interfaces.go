// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks request payloads before they reach the service
// layer: new documents and forms, content updates, the content tools input
// and PIN submissions.
//
// A validator can be restricted to a subset of fields by passing their
// names (see the Field* constants). Without names every default field of
// the payload type is checked.
package validators

import "context"

// Validator validates a request payload, optionally only the named fields.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
