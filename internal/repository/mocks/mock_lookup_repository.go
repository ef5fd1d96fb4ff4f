package mocks

import (
	"context"

	"dealerapi/internal/model"
	"github.com/stretchr/testify/mock"
)

type MockLookupRepository struct {
	mock.Mock
}

func (m *MockLookupRepository) Create(ctx context.Context, l *model.Lookup) (*model.Lookup, error) {
	args := m.Called(ctx, l)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Lookup), args.Error(1)
}

func (m *MockLookupRepository) ListByKind(ctx context.Context, kind model.LookupKind) ([]model.Lookup, error) {
	args := m.Called(ctx, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Lookup), args.Error(1)
}

func (m *MockLookupRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
