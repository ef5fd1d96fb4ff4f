package mocks

import (
	"context"

	"dealerapi/internal/model"
	"dealerapi/internal/repository"
	"github.com/stretchr/testify/mock"
)

type MockPosterRepository struct {
	mock.Mock
}

func (m *MockPosterRepository) Create(ctx context.Context, p *model.Poster) (*model.Poster, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Poster), args.Error(1)
}

func (m *MockPosterRepository) FindByID(ctx context.Context, id string) (*model.Poster, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Poster), args.Error(1)
}

func (m *MockPosterRepository) List(ctx context.Context, pq repository.PageQuery, f repository.PosterFilter) (*repository.PageResult[model.Poster], error) {
	args := m.Called(ctx, pq, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PageResult[model.Poster]), args.Error(1)
}

func (m *MockPosterRepository) Update(ctx context.Context, p *model.Poster) (*model.Poster, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Poster), args.Error(1)
}

func (m *MockPosterRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPosterRepository) UpdateImageURL(ctx context.Context, id, imageURL string) error {
	args := m.Called(ctx, id, imageURL)
	return args.Error(0)
}
