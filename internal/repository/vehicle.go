package repository

import (
	"context"

	"dealerapi/internal/model"
)

// VehicleFilter narrows a vehicle listing. Nil pointer fields mean "no filter".
type VehicleFilter struct {
	Sold  *bool
	Brand string
}

// VehicleRepository defines data access for vehicles using SQL queries only.
// No business logic here — strictly persistence operations.
type VehicleRepository interface {
	// Create inserts a new vehicle row and returns the stored record.
	Create(ctx context.Context, v *model.Vehicle) (*model.Vehicle, error)

	// FindByID returns a vehicle by its ID.
	FindByID(ctx context.Context, id string) (*model.Vehicle, error)

	// List returns a page of vehicles, newest first, plus the total row count
	// for the given filter.
	List(ctx context.Context, pq PageQuery, f VehicleFilter) (*PageResult[model.Vehicle], error)

	// Update overwrites all mutable fields of the row identified by v.ID.
	Update(ctx context.Context, v *model.Vehicle) (*model.Vehicle, error)

	// Delete removes a vehicle by ID. It returns nil if the row did not exist.
	Delete(ctx context.Context, id string) error
}
