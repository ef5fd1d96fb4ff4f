package mocks

import (
	"context"

	"dealerapi/internal/model"
	"dealerapi/internal/service"

	"github.com/stretchr/testify/mock"
)

type MockTestimonialService struct {
	mock.Mock
}

func (m *MockTestimonialService) Create(ctx context.Context, tm *model.Testimonial) (*model.Testimonial, error) {
	args := m.Called(ctx, tm)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Testimonial), args.Error(1)
}

func (m *MockTestimonialService) Get(ctx context.Context, id string) (*model.Testimonial, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Testimonial), args.Error(1)
}

func (m *MockTestimonialService) List(ctx context.Context, limit, offset int, activeOnly bool) (*service.TestimonialListResult, error) {
	args := m.Called(ctx, limit, offset, activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.TestimonialListResult), args.Error(1)
}

func (m *MockTestimonialService) Update(ctx context.Context, tm *model.Testimonial) (*model.Testimonial, error) {
	args := m.Called(ctx, tm)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Testimonial), args.Error(1)
}

func (m *MockTestimonialService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
