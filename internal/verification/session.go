// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package verification

import "github.com/MKhiriev/go-doc-keeper/models"

// Session owns the verification slot of a single user session.
// The zero value is an unverified session.
//
// Session is not safe for concurrent use.
type Session struct {
	record *models.VerificationRecord
}

// NewSession returns a session restored from rec. A nil rec gives an
// unverified session.
func NewSession(rec *models.VerificationRecord) *Session {
	s := &Session{}
	if rec != nil {
		r := *rec
		s.record = &r
	}
	return s
}

// RecordVerification marks the session as verified at nowMillis.
func (s *Session) RecordVerification(nowMillis int64) {
	r := Record(nowMillis)
	s.record = &r
}

// IsVerified reports whether the session is verified at nowMillis.
func (s *Session) IsVerified(nowMillis int64) bool {
	return IsVerified(s.record, nowMillis)
}

// ClearVerification drops the record.
func (s *Session) ClearVerification() {
	s.record = nil
}

// Record returns a copy of the stored record and whether one exists.
func (s *Session) Record() (models.VerificationRecord, bool) {
	if s.record == nil {
		return models.VerificationRecord{}, false
	}
	return *s.record, true
}
