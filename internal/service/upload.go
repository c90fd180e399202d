package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"docrisk/internal/model"
	"docrisk/internal/repository"
	"docrisk/internal/storage"
)

// DownloadURLExpiry is how long a pre-signed download link stays valid.
const DownloadURLExpiry = 15 * time.Minute

// UploadInput describes one uploaded document version.
// Content may be nil for a metadata-only record.
type UploadInput struct {
	ClientID       string
	DocumentTypeID string
	Filename       string
	ContentType    string
	Size           int64
	ExpiresAt      *time.Time
	Content        io.Reader
}

// UploadService defines the use cases for client document uploads.
type UploadService interface {
	// Upload stores the file (if any) under uploads/<client>/<uuid><ext>, saves
	// the metadata, and rolls back storage if the metadata save fails.
	Upload(ctx context.Context, in UploadInput) (*model.Upload, error)

	// List returns every upload of a client, newest first.
	List(ctx context.Context, clientID string) ([]model.Upload, error)

	// Delete removes an upload from both storage and repository.
	Delete(ctx context.Context, clientID, uploadID string) error

	// DownloadURL returns a pre-signed URL for the stored file.
	DownloadURL(ctx context.Context, clientID, uploadID string) (string, error)
}

type uploadService struct {
	store   storage.Storage
	clients repository.ClientRepository
	types   repository.DocumentTypeRepository
	repo    repository.UploadRepository
}

// NewUploadService constructs a new UploadService.
func NewUploadService(
	store storage.Storage,
	clients repository.ClientRepository,
	types repository.DocumentTypeRepository,
	repo repository.UploadRepository,
) UploadService {
	return &uploadService{store: store, clients: clients, types: types, repo: repo}
}

func (s *uploadService) Upload(ctx context.Context, in UploadInput) (*model.Upload, error) {
	if in.ClientID == "" {
		return nil, ErrIDRequired
	}
	if in.DocumentTypeID == "" {
		return nil, invalid("document_type_id is required")
	}
	filename := path.Base(filepath.ToSlash(strings.TrimSpace(in.Filename)))
	if filename == "." || filename == "/" {
		filename = ""
	}
	if filename == "" {
		return nil, invalid("filename is required")
	}
	if _, err := s.clients.FindByID(ctx, in.ClientID); err != nil {
		return nil, notFound(err, ErrClientNotFound)
	}
	if _, err := s.types.FindByID(ctx, in.DocumentTypeID); err != nil {
		return nil, notFound(err, ErrDocumentTypeNotFound)
	}

	u := &model.Upload{
		ID:             uuid.New().String(),
		ClientID:       in.ClientID,
		DocumentTypeID: in.DocumentTypeID,
		Filename:       filename,
		ExpiresAt:      in.ExpiresAt,
		UploadedAt:     time.Now().UTC(),
	}

	var key string
	if in.Content != nil {
		key = path.Join("uploads", in.ClientID, uuid.New().String()+filepath.Ext(filename))
		objInfo, err := s.store.Put(ctx, key, in.Content, storage.PutObjectOptions{
			Size:        in.Size,
			ContentType: in.ContentType,
			Metadata: map[string]string{
				"original-filename": filename,
			},
		})
		if err != nil {
			return nil, fmt.Errorf("upload to storage: %w", err)
		}
		u.StoragePath = objInfo.Key
		u.Size = objInfo.Size
		u.ContentType = objInfo.ContentType
	}

	stored, err := s.repo.Create(ctx, u)
	if err != nil {
		if key == "" {
			return nil, fmt.Errorf("db save failed: %w", err)
		}
		// Rollback: delete the object from storage
		if delErr := s.store.Delete(ctx, key); delErr != nil {
			return nil, fmt.Errorf("db save failed: %v; rollback delete failed: %v", err, delErr)
		}
		return nil, fmt.Errorf("db save failed: %w", err)
	}
	return stored, nil
}

func (s *uploadService) List(ctx context.Context, clientID string) ([]model.Upload, error) {
	if clientID == "" {
		return nil, ErrIDRequired
	}
	if _, err := s.clients.FindByID(ctx, clientID); err != nil {
		return nil, notFound(err, ErrClientNotFound)
	}
	return s.repo.ListByClient(ctx, clientID)
}

// find returns the upload only if it belongs to the client.
func (s *uploadService) find(ctx context.Context, clientID, uploadID string) (*model.Upload, error) {
	if clientID == "" || uploadID == "" {
		return nil, ErrIDRequired
	}
	u, err := s.repo.FindByID(ctx, uploadID)
	if err != nil {
		return nil, notFound(err, ErrUploadNotFound)
	}
	if u.ClientID != clientID {
		return nil, ErrUploadNotFound
	}
	return u, nil
}

func (s *uploadService) Delete(ctx context.Context, clientID, uploadID string) error {
	u, err := s.find(ctx, clientID, uploadID)
	if err != nil {
		return err
	}
	// Delete from storage first; if this fails, keep DB row to avoid orphaned storage reference loss
	if u.HasFile() {
		if err := s.store.Delete(ctx, u.StoragePath); err != nil {
			return fmt.Errorf("delete storage: %w", err)
		}
	}
	return s.repo.Delete(ctx, uploadID)
}

func (s *uploadService) DownloadURL(ctx context.Context, clientID, uploadID string) (string, error) {
	u, err := s.find(ctx, clientID, uploadID)
	if err != nil {
		return "", err
	}
	if !u.HasFile() {
		return "", ErrNoFile
	}
	if _, err := s.store.Stat(ctx, u.StoragePath); err != nil {
		if errors.Is(err, storage.ErrObjectNotFound) {
			return "", ErrNoFile
		}
		return "", fmt.Errorf("stat %s: %w", u.StoragePath, err)
	}
	url, err := s.store.PresignGet(ctx, u.StoragePath, u.Filename, DownloadURLExpiry)
	if err != nil {
		return "", fmt.Errorf("presign: %w", err)
	}
	return url, nil
}
