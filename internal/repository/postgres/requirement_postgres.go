package postgres

import (
	"context"
	"database/sql"

	"docrisk/internal/model"
	"docrisk/internal/repository"
)

// RequirementPostgres is a PostgreSQL implementation of repository.RequirementRepository.
type RequirementPostgres struct {
	db *sql.DB
}

// NewRequirementPostgres creates a new RequirementPostgres repository.
func NewRequirementPostgres(db *sql.DB) *RequirementPostgres {
	return &RequirementPostgres{db: db}
}

var _ repository.RequirementRepository = (*RequirementPostgres)(nil)

// Upsert inserts the requirement or flips Required on the existing one for the
// same client and document type. The returned row keeps the caller's DocumentType.
func (r *RequirementPostgres) Upsert(ctx context.Context, req *model.Requirement) (*model.Requirement, error) {
	const q = `
		INSERT INTO client_requirements (id, corporate_client_id, document_type_id, required)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (corporate_client_id, document_type_id)
		DO UPDATE SET required = EXCLUDED.required
		RETURNING id, corporate_client_id, document_type_id, required
	`
	var (
		out    model.Requirement
		typeID sql.NullString
	)
	if err := r.db.QueryRowContext(ctx, q, req.ID, req.ClientID, req.DocumentTypeID, req.Required).
		Scan(&out.ID, &out.ClientID, &typeID, &out.Required); err != nil {
		return nil, err
	}
	out.DocumentTypeID = typeID.String
	out.DocumentType = req.DocumentType
	return &out, nil
}

// ListByClient returns requirements with their document type (LEFT JOIN), by type name.
func (r *RequirementPostgres) ListByClient(ctx context.Context, clientID string) ([]model.Requirement, error) {
	const q = `
		SELECT r.id, r.corporate_client_id, r.document_type_id, r.required,
		       dt.id, dt.name, dt.description
		FROM client_requirements r
		LEFT JOIN document_types dt ON dt.id = r.document_type_id
		WHERE r.corporate_client_id = $1
		ORDER BY dt.name ASC NULLS LAST, r.id ASC
	`
	rows, err := r.db.QueryContext(ctx, q, clientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Requirement, 0)
	for rows.Next() {
		var (
			req                  model.Requirement
			typeID               sql.NullString
			dtID, dtName, dtDesc sql.NullString
		)
		if err := rows.Scan(&req.ID, &req.ClientID, &typeID, &req.Required, &dtID, &dtName, &dtDesc); err != nil {
			return nil, err
		}
		req.DocumentTypeID = typeID.String
		if dtID.Valid {
			req.DocumentType = &model.DocumentType{ID: dtID.String, Name: dtName.String}
			if dtDesc.Valid {
				req.DocumentType.Description = &dtDesc.String
			}
		}
		items = append(items, req)
	}
	return items, rows.Err()
}

// Delete removes one requirement of a client. sql.ErrNoRows means no such
// requirement for that client.
func (r *RequirementPostgres) Delete(ctx context.Context, clientID, id string) error {
	const q = `DELETE FROM client_requirements WHERE id = $1 AND corporate_client_id = $2`
	res, err := r.db.ExecContext(ctx, q, id, clientID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
