package repository

import (
	"context"

	"dealerapi/internal/model"
)

// PosterFilter narrows a poster listing.
type PosterFilter struct {
	ActiveOnly bool
}

// PosterRepository defines data access for posters.
type PosterRepository interface {
	Create(ctx context.Context, p *model.Poster) (*model.Poster, error)

	FindByID(ctx context.Context, id string) (*model.Poster, error)

	// List returns posters ordered by ascending priority (lower shows first).
	List(ctx context.Context, pq PageQuery, f PosterFilter) (*PageResult[model.Poster], error)

	Update(ctx context.Context, p *model.Poster) (*model.Poster, error)

	Delete(ctx context.Context, id string) error

	// UpdateImageURL rewrites only the image URL of a poster. Used by the
	// misrouted-key repair, which must not touch the other fields.
	UpdateImageURL(ctx context.Context, id, imageURL string) error
}
