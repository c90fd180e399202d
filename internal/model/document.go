package model

import "time"

// Upload is one recorded instance of a client document.
// A document type may have many uploads for the same client (renewals).
// StoragePath is empty when only metadata was recorded and no file was stored.
type Upload struct {
	ID             string     `json:"id"`
	ClientID       string     `json:"corporate_client_id"`
	DocumentTypeID string     `json:"document_type_id"`
	Filename       string     `json:"filename"`
	StoragePath    string     `json:"storage_path,omitempty"`
	ContentType    string     `json:"content_type,omitempty"`
	Size           int64      `json:"size"`
	UploadedAt     time.Time  `json:"uploaded_at"`
	ExpiresAt      *time.Time `json:"expires_at"`
}

// HasFile reports whether the upload has an object in storage.
func (u Upload) HasFile() bool {
	return u.StoragePath != ""
}

// ExpiringUpload is an upload joined with its client and document type names,
// as listed on the expiry calendar.
type ExpiringUpload struct {
	Upload
	ClientName       string `json:"client_name"`
	DocumentTypeName string `json:"document_type_name"`
}
