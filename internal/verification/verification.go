// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package verification

import (
	"time"

	"github.com/MKhiriev/go-doc-keeper/models"
)

// Window is how long a successful PIN entry keeps gated content unmasked.
const Window = 30 * time.Minute

// WindowMillis is Window in milliseconds.
const WindowMillis = int64(Window / time.Millisecond)

// Record returns a verified record stamped with nowMillis.
func Record(nowMillis int64) models.VerificationRecord {
	return models.VerificationRecord{Verified: true, VerifiedAt: nowMillis}
}

// IsVerified reports whether rec grants access at nowMillis.
// A nil record or one with Verified unset is never verified.
// The window is half-open: exactly WindowMillis after VerifiedAt is expired.
// A record stamped in the future is corrupt and never verified.
func IsVerified(rec *models.VerificationRecord, nowMillis int64) bool {
	if rec == nil || !rec.Verified || nowMillis < rec.VerifiedAt {
		return false
	}

	age := nowMillis - rec.VerifiedAt
	return age >= 0 && age < WindowMillis
}

// ExpiresAt returns the epoch millisecond deadline of rec, or 0 when rec
// is not a verified record.
func ExpiresAt(rec *models.VerificationRecord) int64 {
	if rec == nil || !rec.Verified {
		return 0
	}

	return rec.VerifiedAt + WindowMillis
}

// NowMillis converts t to epoch milliseconds.
func NowMillis(t time.Time) int64 {
	return t.UnixMilli()
}

// Status builds the externally visible state of rec at nowMillis.
func Status(rec *models.VerificationRecord, nowMillis int64) models.VerificationStatus {
	if !IsVerified(rec, nowMillis) {
		return models.VerificationStatus{}
	}

	return models.VerificationStatus{
		Verified:   true,
		VerifiedAt: rec.VerifiedAt,
		ExpiresAt:  ExpiresAt(rec),
	}
}
