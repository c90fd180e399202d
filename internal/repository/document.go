package repository

import (
	"context"
	"time"

	"docrisk/internal/model"
)

// RequirementRepository persists client document checklists.
type RequirementRepository interface {
	// Upsert creates the requirement or updates its Required flag when the
	// client already has one for the document type.
	Upsert(ctx context.Context, r *model.Requirement) (*model.Requirement, error)

	// ListByClient returns a client's requirements joined with their document
	// type. A requirement whose type was deleted has an empty DocumentTypeID
	// and a nil DocumentType.
	ListByClient(ctx context.Context, clientID string) ([]model.Requirement, error)

	// Delete removes one requirement of a client, or returns sql.ErrNoRows.
	Delete(ctx context.Context, clientID, id string) error
}

// UploadRepository persists upload metadata. File content lives in storage.
type UploadRepository interface {
	Create(ctx context.Context, u *model.Upload) (*model.Upload, error)
	FindByID(ctx context.Context, id string) (*model.Upload, error)
	ListByClient(ctx context.Context, clientID string) ([]model.Upload, error)

	// ListExpiringBetween returns uploads whose expiry date lies in [from, to],
	// ordered by expiry.
	ListExpiringBetween(ctx context.Context, from, to time.Time) ([]model.ExpiringUpload, error)

	// Delete removes an upload by ID. It returns nil if the row did not exist.
	Delete(ctx context.Context, id string) error
}
