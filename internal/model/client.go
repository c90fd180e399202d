package model

import "time"

// CorporateClient is an organization whose compliance documents are tracked.
type CorporateClient struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// DocumentType is a category of document a client may be asked to provide
// (e.g. a tax-compliance certificate). Reference data, never mutated by risk evaluation.
type DocumentType struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
}

// Requirement states that a client must (Required) or may provide a document type.
// DocumentType carries the joined row; it is nil when the type could not be resolved.
type Requirement struct {
	ID             string        `json:"id"`
	ClientID       string        `json:"corporate_client_id"`
	DocumentTypeID string        `json:"document_type_id"`
	Required       bool          `json:"required"`
	DocumentType   *DocumentType `json:"document_type,omitempty"`
}
