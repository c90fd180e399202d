package postgres

import (
	"context"
	"database/sql"
	"time"

	"docrisk/internal/model"
	"docrisk/internal/repository"
)

// UploadPostgres is a PostgreSQL implementation of repository.UploadRepository.
type UploadPostgres struct {
	db *sql.DB
}

// NewUploadPostgres creates a new UploadPostgres repository.
func NewUploadPostgres(db *sql.DB) *UploadPostgres {
	return &UploadPostgres{db: db}
}

var _ repository.UploadRepository = (*UploadPostgres)(nil)

const uploadColumns = `id, corporate_client_id, document_type_id, filename, storage_path,
		       content_type, size, uploaded_at, expires_at`

// Create inserts a new upload row and returns the stored record.
func (r *UploadPostgres) Create(ctx context.Context, u *model.Upload) (*model.Upload, error) {
	const q = `
		INSERT INTO document_uploads (id, corporate_client_id, document_type_id, filename,
		                              storage_path, content_type, size, uploaded_at, expires_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + uploadColumns
	row := r.db.QueryRowContext(ctx, q,
		u.ID,
		u.ClientID,
		u.DocumentTypeID,
		u.Filename,
		u.StoragePath,
		u.ContentType,
		u.Size,
		u.UploadedAt,
		nullTime(u.ExpiresAt),
	)
	return scanUpload(row)
}

// FindByID fetches a single upload by its ID.
func (r *UploadPostgres) FindByID(ctx context.Context, id string) (*model.Upload, error) {
	const q = `SELECT ` + uploadColumns + ` FROM document_uploads WHERE id = $1`
	return scanUpload(r.db.QueryRowContext(ctx, q, id))
}

// ListByClient returns every upload of a client, newest first.
func (r *UploadPostgres) ListByClient(ctx context.Context, clientID string) ([]model.Upload, error) {
	const q = `
		SELECT ` + uploadColumns + `
		FROM document_uploads
		WHERE corporate_client_id = $1
		ORDER BY uploaded_at DESC, id DESC
	`
	rows, err := r.db.QueryContext(ctx, q, clientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Upload, 0)
	for rows.Next() {
		u, err := scanUpload(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *u)
	}
	return items, rows.Err()
}

// ListExpiringBetween returns uploads expiring within [from, to] with client and type names.
func (r *UploadPostgres) ListExpiringBetween(ctx context.Context, from, to time.Time) ([]model.ExpiringUpload, error) {
	const q = `
		SELECT u.id, u.corporate_client_id, u.document_type_id, u.filename, u.storage_path,
		       u.content_type, u.size, u.uploaded_at, u.expires_at,
		       c.name, COALESCE(dt.name, '')
		FROM document_uploads u
		JOIN corporate_clients c ON c.id = u.corporate_client_id
		LEFT JOIN document_types dt ON dt.id = u.document_type_id
		WHERE u.expires_at BETWEEN $1 AND $2
		ORDER BY u.expires_at ASC, c.name ASC
	`
	rows, err := r.db.QueryContext(ctx, q, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.ExpiringUpload, 0)
	for rows.Next() {
		var e model.ExpiringUpload
		u, err := scanUpload(rows, &e.ClientName, &e.DocumentTypeName)
		if err != nil {
			return nil, err
		}
		e.Upload = *u
		items = append(items, e)
	}
	return items, rows.Err()
}

// Delete removes an upload by ID. It does not return an error if the row does not exist.
func (r *UploadPostgres) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM document_uploads WHERE id = $1`
	_, err := r.db.ExecContext(ctx, q, id)
	return err
}

// scanUpload reads the upload columns followed by any extra destinations.
func scanUpload(s scanner, extra ...any) (*model.Upload, error) {
	var (
		u       model.Upload
		typeID  sql.NullString
		expires sql.NullTime
	)
	dest := append([]any{
		&u.ID,
		&u.ClientID,
		&typeID,
		&u.Filename,
		&u.StoragePath,
		&u.ContentType,
		&u.Size,
		&u.UploadedAt,
		&expires,
	}, extra...)
	if err := s.Scan(dest...); err != nil {
		return nil, err
	}
	u.DocumentTypeID = typeID.String
	if expires.Valid {
		t := expires.Time
		u.ExpiresAt = &t
	}
	return &u, nil
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}
