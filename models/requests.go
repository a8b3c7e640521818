package models

// PinRequest is the body of a PIN submission.
type PinRequest struct {
	PIN string `json:"pin"`
}

// ContentRequest carries free text to be checked or masked.
type ContentRequest struct {
	Content string `json:"content"`
}

// ContentUpdate replaces the content of an existing document.
type ContentUpdate struct {
	ID      string `json:"id"`
	Content string `json:"content"`
}

// DocumentCreate is the body of a document capture. ID is optional and
// generated by the server when empty. Fields are only allowed for forms.
type DocumentCreate struct {
	ID       string       `json:"id,omitempty"`
	Kind     DocumentKind `json:"kind"`
	Name     string       `json:"name"`
	Category string       `json:"category"`
	Date     string       `json:"date"`
	Content  string       `json:"content"`
	Fields   []FormField  `json:"fields,omitempty"`
}
