package mocks

import (
	"context"

	"dealerapi/internal/model"
	"dealerapi/internal/repository"
	"github.com/stretchr/testify/mock"
)

type MockVehicleRepository struct {
	mock.Mock
}

func (m *MockVehicleRepository) Create(ctx context.Context, v *model.Vehicle) (*model.Vehicle, error) {
	args := m.Called(ctx, v)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Vehicle), args.Error(1)
}

func (m *MockVehicleRepository) FindByID(ctx context.Context, id string) (*model.Vehicle, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Vehicle), args.Error(1)
}

func (m *MockVehicleRepository) List(ctx context.Context, pq repository.PageQuery, f repository.VehicleFilter) (*repository.PageResult[model.Vehicle], error) {
	args := m.Called(ctx, pq, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PageResult[model.Vehicle]), args.Error(1)
}

func (m *MockVehicleRepository) Update(ctx context.Context, v *model.Vehicle) (*model.Vehicle, error) {
	args := m.Called(ctx, v)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Vehicle), args.Error(1)
}

func (m *MockVehicleRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
