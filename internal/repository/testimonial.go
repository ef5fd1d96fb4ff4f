package repository

import (
	"context"

	"dealerapi/internal/model"
)

// TestimonialFilter narrows a testimonial listing.
type TestimonialFilter struct {
	ActiveOnly bool
}

// TestimonialRepository defines data access for testimonials.
type TestimonialRepository interface {
	Create(ctx context.Context, tm *model.Testimonial) (*model.Testimonial, error)

	FindByID(ctx context.Context, id string) (*model.Testimonial, error)

	List(ctx context.Context, pq PageQuery, f TestimonialFilter) (*PageResult[model.Testimonial], error)

	Update(ctx context.Context, tm *model.Testimonial) (*model.Testimonial, error)

	Delete(ctx context.Context, id string) error
}
