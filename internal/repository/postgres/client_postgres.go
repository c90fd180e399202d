package postgres

import (
	"context"
	"database/sql"

	"docrisk/internal/model"
	"docrisk/internal/repository"
)

// ClientPostgres is a PostgreSQL implementation of repository.ClientRepository.
// It uses database/sql with parameterized queries and contains no business logic.
type ClientPostgres struct {
	db *sql.DB
}

// NewClientPostgres creates a new ClientPostgres repository.
func NewClientPostgres(db *sql.DB) *ClientPostgres {
	return &ClientPostgres{db: db}
}

var _ repository.ClientRepository = (*ClientPostgres)(nil)

// Create inserts a new client row and returns the stored record.
func (r *ClientPostgres) Create(ctx context.Context, c *model.CorporateClient) (*model.CorporateClient, error) {
	const q = `
		INSERT INTO corporate_clients (id, name, created_at)
		VALUES ($1, $2, $3)
		RETURNING id, name, created_at
	`
	var out model.CorporateClient
	if err := r.db.QueryRowContext(ctx, q, c.ID, c.Name, c.CreatedAt).
		Scan(&out.ID, &out.Name, &out.CreatedAt); err != nil {
		return nil, err
	}
	return &out, nil
}

// FindByID fetches a single client by its ID.
func (r *ClientPostgres) FindByID(ctx context.Context, id string) (*model.CorporateClient, error) {
	const q = `
		SELECT id, name, created_at
		FROM corporate_clients
		WHERE id = $1
	`
	var c model.CorporateClient
	if err := r.db.QueryRowContext(ctx, q, id).Scan(&c.ID, &c.Name, &c.CreatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}

// List returns clients ordered by name using LIMIT/OFFSET pagination and a total count.
func (r *ClientPostgres) List(ctx context.Context, pq repository.PageQuery) (*repository.PageResult[model.CorporateClient], error) {
	const qCount = `SELECT COUNT(*) FROM corporate_clients`
	var total int
	if err := r.db.QueryRowContext(ctx, qCount).Scan(&total); err != nil {
		return nil, err
	}

	const qList = `
		SELECT id, name, created_at
		FROM corporate_clients
		ORDER BY name ASC, id ASC
		LIMIT $1 OFFSET $2
	`
	rows, err := r.db.QueryContext(ctx, qList, pq.Limit, pq.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.CorporateClient, 0)
	for rows.Next() {
		var c model.CorporateClient
		if err := rows.Scan(&c.ID, &c.Name, &c.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &repository.PageResult[model.CorporateClient]{
		Items: items,
		Total: total,
	}, nil
}

// Delete removes a client by ID. It does not return an error if the row does not exist.
func (r *ClientPostgres) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM corporate_clients WHERE id = $1`
	_, err := r.db.ExecContext(ctx, q, id)
	return err
}
