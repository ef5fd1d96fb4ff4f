package repository

import (
	"context"

	"dealerapi/internal/model"
)

// LookupRepository defines data access for the reference lists backing the
// admin form dropdowns.
type LookupRepository interface {
	Create(ctx context.Context, l *model.Lookup) (*model.Lookup, error)

	// ListByKind returns all values of one kind, alphabetically.
	ListByKind(ctx context.Context, kind model.LookupKind) ([]model.Lookup, error)

	Delete(ctx context.Context, id string) error
}
