// Package verification decides whether a PIN verification is still valid.
//
// The package exposes pure functions over an explicit
// models.VerificationRecord and a small Session type that owns one such
// record. Time is always supplied by the caller as epoch milliseconds.
package verification
