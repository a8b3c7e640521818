// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// VerificationRecord is the per-session proof that a correct PIN was
// submitted. A record with Verified == false is the same as no record.
type VerificationRecord struct {
	// Verified is set when a correct PIN has been submitted.
	Verified bool `json:"verified"`

	// VerifiedAt is the epoch time in milliseconds of the PIN submission.
	VerifiedAt int64 `json:"verified_at"`
}

// VerificationStatus is the API representation of a session's
// verification state at a given moment.
type VerificationStatus struct {
	Verified bool `json:"verified"`

	// VerifiedAt and ExpiresAt are epoch millis; both are zero when the
	// session is not verified.
	VerifiedAt int64 `json:"verified_at,omitempty"`
	ExpiresAt  int64 `json:"expires_at,omitempty"`
}
