package mocks

import (
	"context"

	"dealerapi/internal/model"

	"github.com/stretchr/testify/mock"
)

type MockLookupService struct {
	mock.Mock
}

func (m *MockLookupService) Create(ctx context.Context, kind model.LookupKind, name string) (*model.Lookup, error) {
	args := m.Called(ctx, kind, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Lookup), args.Error(1)
}

func (m *MockLookupService) ListByKind(ctx context.Context, kind model.LookupKind) ([]model.Lookup, error) {
	args := m.Called(ctx, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Lookup), args.Error(1)
}

func (m *MockLookupService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
