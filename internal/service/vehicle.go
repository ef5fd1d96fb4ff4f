package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"dealerapi/internal/model"
	"dealerapi/internal/repository"
	"dealerapi/pkg/asseturl"
)

// VehicleListResult is the service-level DTO for paginated vehicles.
type VehicleListResult struct {
	Items []model.Vehicle `json:"data"`
	Total int             `json:"total"`
}

// VehicleService defines the use cases for the vehicle inventory.
type VehicleService interface {
	Create(ctx context.Context, v *model.Vehicle) (*model.Vehicle, error)
	Get(ctx context.Context, id string) (*model.Vehicle, error)
	List(ctx context.Context, limit, offset int, f repository.VehicleFilter) (*VehicleListResult, error)
	Update(ctx context.Context, v *model.Vehicle) (*model.Vehicle, error)
	Delete(ctx context.Context, id string) error
}

type vehicleService struct {
	repo     repository.VehicleRepository
	resolver asseturl.Resolver
}

// NewVehicleService constructs a VehicleService. The resolver rewrites stored
// proxy-form image URLs to public-store form on every read.
func NewVehicleService(repo repository.VehicleRepository, resolver asseturl.Resolver) VehicleService {
	return &vehicleService{repo: repo, resolver: resolver}
}

func validateVehicle(v *model.Vehicle) error {
	if v.Brand == "" {
		return fmt.Errorf("%w: brand is required", ErrInvalid)
	}
	if v.ModelName == "" {
		return fmt.Errorf("%w: model name is required", ErrInvalid)
	}
	if v.Year < 1900 || v.Year > time.Now().Year()+1 {
		return fmt.Errorf("%w: year %d out of range", ErrInvalid, v.Year)
	}
	if v.Kilometers < 0 {
		return fmt.Errorf("%w: kilometers must not be negative", ErrInvalid)
	}
	if len(v.Images) > model.MaxVehicleImages {
		return fmt.Errorf("%w: at most %d images allowed", ErrInvalid, model.MaxVehicleImages)
	}
	return nil
}

func (s *vehicleService) Create(ctx context.Context, v *model.Vehicle) (*model.Vehicle, error) {
	if err := validateVehicle(v); err != nil {
		return nil, err
	}
	if v.ID == "" {
		v.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	if v.CreatedAt.IsZero() {
		v.CreatedAt = now
	}
	v.UpdatedAt = now

	stored, err := s.repo.Create(ctx, v)
	if err != nil {
		return nil, fmt.Errorf("create vehicle: %w", err)
	}
	return s.normalize(stored), nil
}

func (s *vehicleService) Get(ctx context.Context, id string) (*model.Vehicle, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	v, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return s.normalize(v), nil
}

func (s *vehicleService) List(ctx context.Context, limit, offset int, f repository.VehicleFilter) (*VehicleListResult, error) {
	if limit <= 0 {
		limit = 10
	}
	if offset < 0 {
		offset = 0
	}
	res, err := s.repo.List(ctx, repository.PageQuery{Limit: limit, Offset: offset}, f)
	if err != nil {
		return nil, err
	}
	for i := range res.Items {
		s.normalize(&res.Items[i])
	}
	return &VehicleListResult{Items: res.Items, Total: res.Total}, nil
}

func (s *vehicleService) Update(ctx context.Context, v *model.Vehicle) (*model.Vehicle, error) {
	if v.ID == "" {
		return nil, ErrIDRequired
	}
	if err := validateVehicle(v); err != nil {
		return nil, err
	}
	v.UpdatedAt = time.Now().UTC()

	stored, err := s.repo.Update(ctx, v)
	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("update vehicle: %w", err)
	}
	return s.normalize(stored), nil
}

func (s *vehicleService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrIDRequired
	}
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if isNoRows(err) {
			return ErrNotFound
		}
		return err
	}
	return s.repo.Delete(ctx, id)
}

// normalize rewrites every image URL to public-store form in place.
func (s *vehicleService) normalize(v *model.Vehicle) *model.Vehicle {
	for i, u := range v.Images {
		v.Images[i] = s.resolver.ToPublicForm(u)
	}
	return v
}
