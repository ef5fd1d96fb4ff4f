package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"dealerapi/internal/model"
	"dealerapi/internal/repository"
)

const (
	minTestimonialMessage = 10
	maxTestimonialMessage = 500
)

// TestimonialListResult is the service-level DTO for paginated testimonials.
type TestimonialListResult struct {
	Items []model.Testimonial `json:"data"`
	Total int                 `json:"total"`
}

// TestimonialService defines the use cases for client testimonials.
type TestimonialService interface {
	Create(ctx context.Context, tm *model.Testimonial) (*model.Testimonial, error)
	Get(ctx context.Context, id string) (*model.Testimonial, error)
	List(ctx context.Context, limit, offset int, activeOnly bool) (*TestimonialListResult, error)
	Update(ctx context.Context, tm *model.Testimonial) (*model.Testimonial, error)
	Delete(ctx context.Context, id string) error
}

type testimonialService struct {
	repo repository.TestimonialRepository
}

// NewTestimonialService constructs a TestimonialService.
func NewTestimonialService(repo repository.TestimonialRepository) TestimonialService {
	return &testimonialService{repo: repo}
}

func validateTestimonial(tm *model.Testimonial) error {
	tm.ClientName = strings.TrimSpace(tm.ClientName)
	tm.Message = strings.TrimSpace(tm.Message)
	if tm.ClientName == "" {
		return fmt.Errorf("%w: client name is required", ErrInvalid)
	}
	if len(tm.Message) < minTestimonialMessage {
		return fmt.Errorf("%w: message must be at least %d characters", ErrInvalid, minTestimonialMessage)
	}
	if len(tm.Message) > maxTestimonialMessage {
		return fmt.Errorf("%w: message must be at most %d characters", ErrInvalid, maxTestimonialMessage)
	}
	return nil
}

func (s *testimonialService) Create(ctx context.Context, tm *model.Testimonial) (*model.Testimonial, error) {
	if err := validateTestimonial(tm); err != nil {
		return nil, err
	}
	if tm.ID == "" {
		tm.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	if tm.CreatedAt.IsZero() {
		tm.CreatedAt = now
	}
	tm.UpdatedAt = now

	stored, err := s.repo.Create(ctx, tm)
	if err != nil {
		return nil, fmt.Errorf("create testimonial: %w", err)
	}
	return stored, nil
}

func (s *testimonialService) Get(ctx context.Context, id string) (*model.Testimonial, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	tm, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return tm, nil
}

func (s *testimonialService) List(ctx context.Context, limit, offset int, activeOnly bool) (*TestimonialListResult, error) {
	if limit <= 0 {
		limit = 10
	}
	if offset < 0 {
		offset = 0
	}
	res, err := s.repo.List(ctx, repository.PageQuery{Limit: limit, Offset: offset}, repository.TestimonialFilter{ActiveOnly: activeOnly})
	if err != nil {
		return nil, err
	}
	return &TestimonialListResult{Items: res.Items, Total: res.Total}, nil
}

func (s *testimonialService) Update(ctx context.Context, tm *model.Testimonial) (*model.Testimonial, error) {
	if tm.ID == "" {
		return nil, ErrIDRequired
	}
	if err := validateTestimonial(tm); err != nil {
		return nil, err
	}
	tm.UpdatedAt = time.Now().UTC()

	stored, err := s.repo.Update(ctx, tm)
	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("update testimonial: %w", err)
	}
	return stored, nil
}

func (s *testimonialService) Delete(ctx context.Context, id string) error {
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
