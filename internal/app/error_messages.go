// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// go-doc-keeper terminal client and the docscan CLI.
//
// All Msg* constants are human-readable strings shown to the person at the
// keyboard. Keeping them in one place ensures consistent wording between
// the terminal UI and the command line tools.
package app

const (
	// MsgIncorrectPIN is shown when the server rejects a well-formed PIN.
	// The verification state of the session stays unchanged.
	MsgIncorrectPIN = "Incorrect PIN"

	// MsgInvalidPIN is shown when the entered PIN is not exactly four digits.
	MsgInvalidPIN = "PIN must be exactly 4 digits"

	// MsgMaskedHint is displayed under masked content.
	MsgMaskedHint = "Sensitive details are hidden. Press p and enter your PIN to reveal them."

	// MsgVerified is shown right after a successful PIN entry.
	MsgVerified = "Verified"

	// MsgVerificationCleared is shown after the verification was dropped.
	MsgVerificationCleared = "Verification cleared"

	// MsgCopied is shown after the displayed content was put on the clipboard.
	MsgCopied = "Copied to clipboard"

	// MsgNothingToCopy is shown when the copy key is pressed without content.
	MsgNothingToCopy = "Nothing to copy"

	// MsgNoDocuments is shown when a listing returns nothing.
	MsgNoDocuments = "No documents found"

	// MsgServerUnavailable replaces low-level network errors.
	MsgServerUnavailable = "Network is unavailable or the server is down"

	// MsgSessionExpired is shown when the server no longer accepts the
	// session token. The client has to be restarted to open a new session.
	MsgSessionExpired = "Session expired, restart the client"

	// MsgDocumentNotFound is shown when the selected document disappeared.
	MsgDocumentNotFound = "Document not found"

	// MsgSensitive labels content that matched at least one rule.
	MsgSensitive = "SENSITIVE"

	// MsgClean labels content that matched no rule.
	MsgClean = "clean"
)
