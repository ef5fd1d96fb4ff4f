package postgres

import (
	"context"
	"database/sql"

	"dealerapi/internal/model"
	"dealerapi/internal/repository"
)

// TestimonialPostgres is a PostgreSQL implementation of repository.TestimonialRepository.
type TestimonialPostgres struct {
	db *sql.DB
}

// NewTestimonialPostgres creates a new TestimonialPostgres repository.
func NewTestimonialPostgres(db *sql.DB) *TestimonialPostgres {
	return &TestimonialPostgres{db: db}
}

var _ repository.TestimonialRepository = (*TestimonialPostgres)(nil)

const testimonialColumns = `id, client_name, message, is_active, created_at, updated_at`

func scanTestimonial(row interface{ Scan(...any) error }) (*model.Testimonial, error) {
	var tm model.Testimonial
	if err := row.Scan(
		&tm.ID,
		&tm.ClientName,
		&tm.Message,
		&tm.IsActive,
		&tm.CreatedAt,
		&tm.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &tm, nil
}

// Create inserts a new testimonial row and returns the stored record.
func (r *TestimonialPostgres) Create(ctx context.Context, tm *model.Testimonial) (*model.Testimonial, error) {
	const q = `
		INSERT INTO testimonials (id, client_name, message, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + testimonialColumns
	row := r.db.QueryRowContext(ctx, q,
		tm.ID,
		tm.ClientName,
		tm.Message,
		tm.IsActive,
		tm.CreatedAt,
		tm.UpdatedAt,
	)
	return scanTestimonial(row)
}

// FindByID fetches a single testimonial by its ID.
func (r *TestimonialPostgres) FindByID(ctx context.Context, id string) (*model.Testimonial, error) {
	const q = `SELECT ` + testimonialColumns + ` FROM testimonials WHERE id = $1`
	return scanTestimonial(r.db.QueryRowContext(ctx, q, id))
}

// List returns testimonials newest first.
func (r *TestimonialPostgres) List(ctx context.Context, pq repository.PageQuery, f repository.TestimonialFilter) (*repository.PageResult[model.Testimonial], error) {
	where := ""
	if f.ActiveOnly {
		where = " WHERE is_active = TRUE"
	}

	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM testimonials`+where).Scan(&total); err != nil {
		return nil, err
	}

	q := `SELECT ` + testimonialColumns + ` FROM testimonials` + where + ` ORDER BY created_at DESC, id DESC LIMIT $1 OFFSET $2`
	rows, err := r.db.QueryContext(ctx, q, pq.Limit, pq.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Testimonial, 0)
	for rows.Next() {
		tm, err := scanTestimonial(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *tm)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &repository.PageResult[model.Testimonial]{Items: items, Total: total}, nil
}

// Update overwrites all mutable fields of the row identified by tm.ID.
func (r *TestimonialPostgres) Update(ctx context.Context, tm *model.Testimonial) (*model.Testimonial, error) {
	const q = `
		UPDATE testimonials
		SET client_name = $2, message = $3, is_active = $4, updated_at = $5
		WHERE id = $1
		RETURNING ` + testimonialColumns
	row := r.db.QueryRowContext(ctx, q,
		tm.ID,
		tm.ClientName,
		tm.Message,
		tm.IsActive,
		tm.UpdatedAt,
	)
	return scanTestimonial(row)
}

// Delete removes a testimonial by ID. It does not return an error if the row does not exist.
func (r *TestimonialPostgres) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM testimonials WHERE id = $1`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	_, _ = res.RowsAffected()
	return nil
}
