package mocks

import (
	"context"

	"dealerapi/internal/model"
	"dealerapi/internal/repository"
	"dealerapi/internal/service"

	"github.com/stretchr/testify/mock"
)

type MockVehicleService struct {
	mock.Mock
}

func (m *MockVehicleService) Create(ctx context.Context, v *model.Vehicle) (*model.Vehicle, error) {
	args := m.Called(ctx, v)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Vehicle), args.Error(1)
}

func (m *MockVehicleService) Get(ctx context.Context, id string) (*model.Vehicle, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Vehicle), args.Error(1)
}

func (m *MockVehicleService) List(ctx context.Context, limit, offset int, f repository.VehicleFilter) (*service.VehicleListResult, error) {
	args := m.Called(ctx, limit, offset, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.VehicleListResult), args.Error(1)
}

func (m *MockVehicleService) Update(ctx context.Context, v *model.Vehicle) (*model.Vehicle, error) {
	args := m.Called(ctx, v)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Vehicle), args.Error(1)
}

func (m *MockVehicleService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
