package repository

import (
	"context"

	"docrisk/internal/model"
)

// ClientRepository persists corporate clients.
type ClientRepository interface {
	// Create inserts a new client and returns the stored row.
	Create(ctx context.Context, c *model.CorporateClient) (*model.CorporateClient, error)

	// FindByID returns a client by its ID, or sql.ErrNoRows.
	FindByID(ctx context.Context, id string) (*model.CorporateClient, error)

	// List returns clients ordered by name with the total count.
	List(ctx context.Context, pq PageQuery) (*PageResult[model.CorporateClient], error)

	// Delete removes a client; its requirements and uploads are removed by cascade.
	Delete(ctx context.Context, id string) error
}

// DocumentTypeRepository persists the document type catalog.
type DocumentTypeRepository interface {
	Create(ctx context.Context, dt *model.DocumentType) (*model.DocumentType, error)
	FindByID(ctx context.Context, id string) (*model.DocumentType, error)
	List(ctx context.Context) ([]model.DocumentType, error)
	// Delete removes a document type. Requirements referencing it become "not configured".
	Delete(ctx context.Context, id string) error
}
