package postgres

import (
	"context"
	"database/sql"

	"dealerapi/internal/model"
	"dealerapi/internal/repository"
)

// LookupPostgres is a PostgreSQL implementation of repository.LookupRepository.
type LookupPostgres struct {
	db *sql.DB
}

// NewLookupPostgres creates a new LookupPostgres repository.
func NewLookupPostgres(db *sql.DB) *LookupPostgres {
	return &LookupPostgres{db: db}
}

var _ repository.LookupRepository = (*LookupPostgres)(nil)

// Create inserts a new lookup row and returns the stored record.
func (r *LookupPostgres) Create(ctx context.Context, l *model.Lookup) (*model.Lookup, error) {
	const q = `
		INSERT INTO lookups (id, kind, name, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id, kind, name, created_at
	`
	var out model.Lookup
	if err := r.db.QueryRowContext(ctx, q, l.ID, l.Kind, l.Name, l.CreatedAt).Scan(
		&out.ID,
		&out.Kind,
		&out.Name,
		&out.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListByKind returns all values of one kind, alphabetically.
func (r *LookupPostgres) ListByKind(ctx context.Context, kind model.LookupKind) ([]model.Lookup, error) {
	const q = `SELECT id, kind, name, created_at FROM lookups WHERE kind = $1 ORDER BY name ASC`
	rows, err := r.db.QueryContext(ctx, q, kind)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Lookup, 0)
	for rows.Next() {
		var l model.Lookup
		if err := rows.Scan(&l.ID, &l.Kind, &l.Name, &l.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, l)
	}
	return items, rows.Err()
}

// Delete removes a lookup by ID. It does not return an error if the row does not exist.
func (r *LookupPostgres) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM lookups WHERE id = $1`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	_, _ = res.RowsAffected()
	return nil
}
