package models

// DocumentView is a document as shown to a particular session.
//
// Content holds the masked text when Masked is true. Findings lists the
// names of the sensitivity rules that fired on the stored content.
type DocumentView struct {
	ID        string       `json:"id"`
	Kind      DocumentKind `json:"kind"`
	Name      string       `json:"name"`
	Category  string       `json:"category"`
	Date      string       `json:"date"`
	Content   string       `json:"content"`
	Sensitive bool         `json:"sensitive"`
	Masked    bool         `json:"masked"`
	Findings  []string     `json:"findings,omitempty"`
}

// DocumentSummary is a list entry without content.
type DocumentSummary struct {
	ID        string       `json:"id"`
	Kind      DocumentKind `json:"kind"`
	Name      string       `json:"name"`
	Category  string       `json:"category"`
	Date      string       `json:"date"`
	Sensitive bool         `json:"sensitive"`
}

// FormFieldView is a form field as shown to a particular session.
type FormFieldView struct {
	Label       string `json:"label"`
	Value       string `json:"value"`
	Retrievable bool   `json:"retrievable"`
	Sensitive   bool   `json:"sensitive"`
	Masked      bool   `json:"masked"`
}

// ContentVerdict is the result of a sensitivity check.
type ContentVerdict struct {
	Sensitive bool     `json:"sensitive"`
	Findings  []string `json:"findings"`
}

// MaskedContent is the result of masking free text.
type MaskedContent struct {
	Content string `json:"content"`
}

// AppVersion is returned by the version endpoint.
type AppVersion struct {
	Version string `json:"version"`
}
