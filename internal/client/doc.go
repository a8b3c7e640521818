// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It opens a server session, hands the terminal over to the document
// browser and closes the session again when the browser exits.
package client
