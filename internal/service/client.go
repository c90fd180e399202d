package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"docrisk/internal/metrics"
	"docrisk/internal/model"
	"docrisk/internal/repository"
	"docrisk/internal/risk"
	"docrisk/internal/storage"
)

// ClientListItem is a client with its live risk summary.
type ClientListItem struct {
	model.CorporateClient
	Risk risk.Summary `json:"risk"`
}

// ClientListResult is the service-level DTO for paginated clients.
type ClientListResult struct {
	Items []ClientListItem `json:"data"`
	Total int              `json:"total"`
}

// ClientService manages corporate clients.
type ClientService interface {
	// Create registers a new client. The name is trimmed and must not be empty.
	Create(ctx context.Context, name string) (*model.CorporateClient, error)

	// List returns clients ordered by name, each evaluated against the same day.
	List(ctx context.Context, limit, offset int) (*ClientListResult, error)

	Get(ctx context.Context, id string) (*model.CorporateClient, error)

	// Delete removes the client's stored files, then the client with its
	// requirements and uploads.
	Delete(ctx context.Context, id string) error
}

type clientService struct {
	clients repository.ClientRepository
	uploads repository.UploadRepository
	store   storage.Storage
	engine  *risk.Engine
	eval    *evaluator
}

// NewClientService constructs a new ClientService.
func NewClientService(
	clients repository.ClientRepository,
	reqs repository.RequirementRepository,
	uploads repository.UploadRepository,
	store storage.Storage,
	engine *risk.Engine,
	rec metrics.Recorder,
	concurrency int,
) ClientService {
	return &clientService{
		clients: clients,
		uploads: uploads,
		store:   store,
		engine:  engine,
		eval:    newEvaluator(reqs, uploads, rec, concurrency),
	}
}

func (s *clientService) Create(ctx context.Context, name string) (*model.CorporateClient, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, invalid("name is required")
	}
	c := &model.CorporateClient{
		ID:        uuid.New().String(),
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}
	stored, err := s.clients.Create(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("create client: %w", err)
	}
	return stored, nil
}

func (s *clientService) List(ctx context.Context, limit, offset int) (*ClientListResult, error) {
	if limit <= 0 {
		limit = 10
	}
	if offset < 0 {
		offset = 0
	}
	res, err := s.clients.List(ctx, repository.PageQuery{Limit: limit, Offset: offset})
	if err != nil {
		return nil, err
	}
	reports, err := s.eval.evaluateAll(ctx, s.engine.Begin(), res.Items)
	if err != nil {
		return nil, err
	}
	items := make([]ClientListItem, len(res.Items))
	for i, c := range res.Items {
		items[i] = ClientListItem{CorporateClient: c, Risk: reports[i].Summary}
	}
	return &ClientListResult{Items: items, Total: res.Total}, nil
}

func (s *clientService) Get(ctx context.Context, id string) (*model.CorporateClient, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	c, err := s.clients.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, ErrClientNotFound)
	}
	return c, nil
}

func (s *clientService) Delete(ctx context.Context, id string) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	uploads, err := s.uploads.ListByClient(ctx, id)
	if err != nil {
		return fmt.Errorf("list uploads: %w", err)
	}
	// Files go first; a failure keeps the rows so the paths are not lost.
	for _, u := range uploads {
		if !u.HasFile() {
			continue
		}
		if err := s.store.Delete(ctx, u.StoragePath); err != nil {
			return fmt.Errorf("delete storage %s: %w", u.StoragePath, err)
		}
	}
	return s.clients.Delete(ctx, id)
}
