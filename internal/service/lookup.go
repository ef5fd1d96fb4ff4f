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

// LookupService manages the reference lists behind the admin form dropdowns.
type LookupService interface {
	Create(ctx context.Context, kind model.LookupKind, name string) (*model.Lookup, error)
	ListByKind(ctx context.Context, kind model.LookupKind) ([]model.Lookup, error)
	Delete(ctx context.Context, id string) error
}

type lookupService struct {
	repo repository.LookupRepository
}

// NewLookupService constructs a LookupService.
func NewLookupService(repo repository.LookupRepository) LookupService {
	return &lookupService{repo: repo}
}

func (s *lookupService) Create(ctx context.Context, kind model.LookupKind, name string) (*model.Lookup, error) {
	if !model.ValidLookupKind(kind) {
		return nil, fmt.Errorf("%w: unknown lookup kind %q", ErrInvalid, kind)
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalid)
	}
	l := &model.Lookup{
		ID:        uuid.New().String(),
		Kind:      kind,
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}
	stored, err := s.repo.Create(ctx, l)
	if err != nil {
		return nil, fmt.Errorf("create lookup: %w", err)
	}
	return stored, nil
}

func (s *lookupService) ListByKind(ctx context.Context, kind model.LookupKind) ([]model.Lookup, error) {
	if !model.ValidLookupKind(kind) {
		return nil, fmt.Errorf("%w: unknown lookup kind %q", ErrInvalid, kind)
	}
	return s.repo.ListByKind(ctx, kind)
}

func (s *lookupService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrIDRequired
	}
	return s.repo.Delete(ctx, id)
}
