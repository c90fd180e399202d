package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"docrisk/internal/model"
	"docrisk/internal/repository"
)

// DocumentTypeService manages the catalog of document types.
type DocumentTypeService interface {
	Create(ctx context.Context, name string, description *string) (*model.DocumentType, error)
	List(ctx context.Context) ([]model.DocumentType, error)
	// Delete removes a type. Requirements that referenced it stay in place and
	// evaluate as missing (not configured).
	Delete(ctx context.Context, id string) error
}

type documentTypeService struct {
	repo repository.DocumentTypeRepository
}

// NewDocumentTypeService constructs a new DocumentTypeService.
func NewDocumentTypeService(repo repository.DocumentTypeRepository) DocumentTypeService {
	return &documentTypeService{repo: repo}
}

func (s *documentTypeService) Create(ctx context.Context, name string, description *string) (*model.DocumentType, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, invalid("name is required")
	}
	if description != nil {
		d := strings.TrimSpace(*description)
		if d == "" {
			description = nil
		} else {
			description = &d
		}
	}
	dt := &model.DocumentType{ID: uuid.New().String(), Name: name, Description: description}
	stored, err := s.repo.Create(ctx, dt)
	if err != nil {
		return nil, fmt.Errorf("create document type: %w", err)
	}
	return stored, nil
}

func (s *documentTypeService) List(ctx context.Context) ([]model.DocumentType, error) {
	return s.repo.List(ctx)
}

func (s *documentTypeService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrIDRequired
	}
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return notFound(err, ErrDocumentTypeNotFound)
	}
	return s.repo.Delete(ctx, id)
}
