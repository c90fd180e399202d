package postgres

import (
	"context"
	"database/sql"

	"docrisk/internal/model"
	"docrisk/internal/repository"
)

// DocumentTypePostgres is a PostgreSQL implementation of repository.DocumentTypeRepository.
type DocumentTypePostgres struct {
	db *sql.DB
}

// NewDocumentTypePostgres creates a new DocumentTypePostgres repository.
func NewDocumentTypePostgres(db *sql.DB) *DocumentTypePostgres {
	return &DocumentTypePostgres{db: db}
}

var _ repository.DocumentTypeRepository = (*DocumentTypePostgres)(nil)

func (r *DocumentTypePostgres) Create(ctx context.Context, dt *model.DocumentType) (*model.DocumentType, error) {
	const q = `
		INSERT INTO document_types (id, name, description)
		VALUES ($1, $2, $3)
		RETURNING id, name, description
	`
	row := r.db.QueryRowContext(ctx, q, dt.ID, dt.Name, nullString(dt.Description))
	return scanDocumentType(row)
}

func (r *DocumentTypePostgres) FindByID(ctx context.Context, id string) (*model.DocumentType, error) {
	const q = `SELECT id, name, description FROM document_types WHERE id = $1`
	return scanDocumentType(r.db.QueryRowContext(ctx, q, id))
}

// List returns the whole catalog ordered by name.
func (r *DocumentTypePostgres) List(ctx context.Context) ([]model.DocumentType, error) {
	const q = `SELECT id, name, description FROM document_types ORDER BY name ASC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.DocumentType, 0)
	for rows.Next() {
		dt, err := scanDocumentType(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *dt)
	}
	return items, rows.Err()
}

func (r *DocumentTypePostgres) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM document_types WHERE id = $1`
	_, err := r.db.ExecContext(ctx, q, id)
	return err
}

type scanner interface {
	Scan(dest ...any) error
}

func scanDocumentType(s scanner) (*model.DocumentType, error) {
	var (
		dt   model.DocumentType
		desc sql.NullString
	)
	if err := s.Scan(&dt.ID, &dt.Name, &desc); err != nil {
		return nil, err
	}
	if desc.Valid {
		dt.Description = &desc.String
	}
	return &dt, nil
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}
