package mocks

import (
	"context"

	"dealerapi/internal/model"
	"dealerapi/internal/service"

	"github.com/stretchr/testify/mock"
)

type MockPosterService struct {
	mock.Mock
}

func (m *MockPosterService) Create(ctx context.Context, p *model.Poster) (*model.Poster, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Poster), args.Error(1)
}

func (m *MockPosterService) Get(ctx context.Context, id string) (*model.Poster, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Poster), args.Error(1)
}

func (m *MockPosterService) List(ctx context.Context, limit, offset int, activeOnly bool) (*service.PosterListResult, error) {
	args := m.Called(ctx, limit, offset, activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.PosterListResult), args.Error(1)
}

func (m *MockPosterService) Update(ctx context.Context, p *model.Poster) (*model.Poster, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Poster), args.Error(1)
}

func (m *MockPosterService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
