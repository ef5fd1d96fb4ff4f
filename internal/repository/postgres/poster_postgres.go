package postgres

import (
	"context"
	"database/sql"

	"dealerapi/internal/model"
	"dealerapi/internal/repository"
)

// PosterPostgres is a PostgreSQL implementation of repository.PosterRepository.
type PosterPostgres struct {
	db *sql.DB
}

// NewPosterPostgres creates a new PosterPostgres repository.
func NewPosterPostgres(db *sql.DB) *PosterPostgres {
	return &PosterPostgres{db: db}
}

var _ repository.PosterRepository = (*PosterPostgres)(nil)

const posterColumns = `id, title, image_url, priority, is_active, created_at, updated_at`

func scanPoster(row interface{ Scan(...any) error }) (*model.Poster, error) {
	var p model.Poster
	if err := row.Scan(
		&p.ID,
		&p.Title,
		&p.ImageURL,
		&p.Priority,
		&p.IsActive,
		&p.CreatedAt,
		&p.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &p, nil
}

// Create inserts a new poster row and returns the stored record.
func (r *PosterPostgres) Create(ctx context.Context, p *model.Poster) (*model.Poster, error) {
	const q = `
		INSERT INTO posters (id, title, image_url, priority, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + posterColumns
	row := r.db.QueryRowContext(ctx, q,
		p.ID,
		p.Title,
		p.ImageURL,
		p.Priority,
		p.IsActive,
		p.CreatedAt,
		p.UpdatedAt,
	)
	return scanPoster(row)
}

// FindByID fetches a single poster by its ID.
func (r *PosterPostgres) FindByID(ctx context.Context, id string) (*model.Poster, error) {
	const q = `SELECT ` + posterColumns + ` FROM posters WHERE id = $1`
	return scanPoster(r.db.QueryRowContext(ctx, q, id))
}

// List returns posters ordered by ascending priority.
func (r *PosterPostgres) List(ctx context.Context, pq repository.PageQuery, f repository.PosterFilter) (*repository.PageResult[model.Poster], error) {
	where := ""
	if f.ActiveOnly {
		where = " WHERE is_active = TRUE"
	}

	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM posters`+where).Scan(&total); err != nil {
		return nil, err
	}

	q := `SELECT ` + posterColumns + ` FROM posters` + where + ` ORDER BY priority ASC, created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.db.QueryContext(ctx, q, pq.Limit, pq.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Poster, 0)
	for rows.Next() {
		p, err := scanPoster(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &repository.PageResult[model.Poster]{Items: items, Total: total}, nil
}

// Update overwrites all mutable fields of the row identified by p.ID.
func (r *PosterPostgres) Update(ctx context.Context, p *model.Poster) (*model.Poster, error) {
	const q = `
		UPDATE posters
		SET title = $2, image_url = $3, priority = $4, is_active = $5, updated_at = $6
		WHERE id = $1
		RETURNING ` + posterColumns
	row := r.db.QueryRowContext(ctx, q,
		p.ID,
		p.Title,
		p.ImageURL,
		p.Priority,
		p.IsActive,
		p.UpdatedAt,
	)
	return scanPoster(row)
}

// Delete removes a poster by ID. It does not return an error if the row does not exist.
func (r *PosterPostgres) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM posters WHERE id = $1`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	_, _ = res.RowsAffected()
	return nil
}

// UpdateImageURL rewrites only the image URL, leaving other fields untouched.
func (r *PosterPostgres) UpdateImageURL(ctx context.Context, id, imageURL string) error {
	const q = `UPDATE posters SET image_url = $2, updated_at = now() WHERE id = $1`
	_, err := r.db.ExecContext(ctx, q, id, imageURL)
	return err
}
