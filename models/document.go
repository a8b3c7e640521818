// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// DocumentKind distinguishes captured documents from fillable forms.
// Both live in the same store and share the sensitivity gate.
type DocumentKind string

const (
	// KindDocument is a captured document (invoice, receipt, report...).
	KindDocument DocumentKind = "document"

	// KindForm is a form that can be displayed and auto-filled.
	KindForm DocumentKind = "form"
)

// Valid reports whether k is one of the known kinds.
func (k DocumentKind) Valid() bool {
	return k == KindDocument || k == KindForm
}

// Document is a stored document or form together with its extracted text.
//
// Content is the plain text produced by the capture step. It is stored
// unmasked; masking happens on every read depending on the verification
// state of the requesting session.
type Document struct {
	// ID is the unique identifier of the document.
	ID string `json:"id"`

	// Kind is either "document" or "form".
	Kind DocumentKind `json:"kind"`

	// Name is the human readable title, e.g. "Invoice - OfficeSupply Co.".
	Name string `json:"name"`

	// Category groups documents for display, e.g. "Financial Document".
	Category string `json:"category"`

	// Date is the document date in YYYY-MM-DD form.
	Date string `json:"date"`

	// Content is the extracted document text.
	Content string `json:"content"`

	// CreatedAt is set by the store when the document is first saved.
	CreatedAt time.Time `json:"created_at"`
}

// FormField is a single auto-fill entry of a form.
type FormField struct {
	// Label names the field, e.g. "Social Security Number".
	Label string `json:"label"`

	// Value is the stored value; empty when nothing could be retrieved.
	Value string `json:"value"`

	// Retrievable reports whether the value can be filled automatically.
	Retrievable bool `json:"retrievable"`
}

// DocumentFilter narrows the result of a document listing.
// Zero values mean "no restriction".
type DocumentFilter struct {
	// Kind restricts the listing to documents or forms.
	Kind DocumentKind

	// Query is a case-insensitive substring matched against name and content.
	Query string
}
