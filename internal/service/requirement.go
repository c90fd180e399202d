package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"docrisk/internal/model"
	"docrisk/internal/repository"
)

// RequirementService manages each client's document checklist.
type RequirementService interface {
	// Set adds the document type to the client's checklist, or updates the
	// Required flag if it is already there.
	Set(ctx context.Context, clientID, documentTypeID string, required bool) (*model.Requirement, error)
	List(ctx context.Context, clientID string) ([]model.Requirement, error)
	Remove(ctx context.Context, clientID, requirementID string) error
}

type requirementService struct {
	clients repository.ClientRepository
	types   repository.DocumentTypeRepository
	reqs    repository.RequirementRepository
}

// NewRequirementService constructs a new RequirementService.
func NewRequirementService(
	clients repository.ClientRepository,
	types repository.DocumentTypeRepository,
	reqs repository.RequirementRepository,
) RequirementService {
	return &requirementService{clients: clients, types: types, reqs: reqs}
}

func (s *requirementService) Set(ctx context.Context, clientID, documentTypeID string, required bool) (*model.Requirement, error) {
	if clientID == "" {
		return nil, ErrIDRequired
	}
	if documentTypeID == "" {
		return nil, invalid("document_type_id is required")
	}
	if _, err := s.clients.FindByID(ctx, clientID); err != nil {
		return nil, notFound(err, ErrClientNotFound)
	}
	dt, err := s.types.FindByID(ctx, documentTypeID)
	if err != nil {
		return nil, notFound(err, ErrDocumentTypeNotFound)
	}
	stored, err := s.reqs.Upsert(ctx, &model.Requirement{
		ID:             uuid.New().String(),
		ClientID:       clientID,
		DocumentTypeID: documentTypeID,
		Required:       required,
	})
	if err != nil {
		return nil, fmt.Errorf("upsert requirement: %w", err)
	}
	stored.DocumentType = dt
	return stored, nil
}

func (s *requirementService) List(ctx context.Context, clientID string) ([]model.Requirement, error) {
	if clientID == "" {
		return nil, ErrIDRequired
	}
	if _, err := s.clients.FindByID(ctx, clientID); err != nil {
		return nil, notFound(err, ErrClientNotFound)
	}
	return s.reqs.ListByClient(ctx, clientID)
}

func (s *requirementService) Remove(ctx context.Context, clientID, requirementID string) error {
	if clientID == "" || requirementID == "" {
		return ErrIDRequired
	}
	if err := s.reqs.Delete(ctx, clientID, requirementID); err != nil {
		return notFound(err, ErrRequirementNotFound)
	}
	return nil
}
