package mocks

import (
	"context"

	"dealerapi/internal/model"
	"dealerapi/internal/repository"
	"github.com/stretchr/testify/mock"
)

type MockTestimonialRepository struct {
	mock.Mock
}

func (m *MockTestimonialRepository) Create(ctx context.Context, tm *model.Testimonial) (*model.Testimonial, error) {
	args := m.Called(ctx, tm)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Testimonial), args.Error(1)
}

func (m *MockTestimonialRepository) FindByID(ctx context.Context, id string) (*model.Testimonial, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Testimonial), args.Error(1)
}

func (m *MockTestimonialRepository) List(ctx context.Context, pq repository.PageQuery, f repository.TestimonialFilter) (*repository.PageResult[model.Testimonial], error) {
	args := m.Called(ctx, pq, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PageResult[model.Testimonial]), args.Error(1)
}

func (m *MockTestimonialRepository) Update(ctx context.Context, tm *model.Testimonial) (*model.Testimonial, error) {
	args := m.Called(ctx, tm)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Testimonial), args.Error(1)
}

func (m *MockTestimonialRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
