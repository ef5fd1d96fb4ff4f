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

// PosterListResult is the service-level DTO for paginated posters.
type PosterListResult struct {
	Items []model.Poster `json:"data"`
	Total int            `json:"total"`
}

// PosterService defines the use cases for promotional posters. Reads repair
// legacy image URLs that were written into the products folder and persist
// the fix back (see RepairMisrouted); the repair is best-effort and a failed
// persist only logs.
type PosterService interface {
	Create(ctx context.Context, p *model.Poster) (*model.Poster, error)
	Get(ctx context.Context, id string) (*model.Poster, error)
	List(ctx context.Context, limit, offset int, activeOnly bool) (*PosterListResult, error)
	Update(ctx context.Context, p *model.Poster) (*model.Poster, error)
	Delete(ctx context.Context, id string) error
}

type posterService struct {
	repo     repository.PosterRepository
	resolver asseturl.Resolver
}

// NewPosterService constructs a PosterService.
func NewPosterService(repo repository.PosterRepository, resolver asseturl.Resolver) PosterService {
	return &posterService{repo: repo, resolver: resolver}
}

func validatePoster(p *model.Poster) error {
	if p.Title == "" {
		return fmt.Errorf("%w: title is required", ErrInvalid)
	}
	if p.ImageURL == "" {
		return fmt.Errorf("%w: image url is required", ErrInvalid)
	}
	if p.Priority < 1 || p.Priority > 10 {
		return fmt.Errorf("%w: priority must be between 1 and 10", ErrInvalid)
	}
	return nil
}

func (s *posterService) Create(ctx context.Context, p *model.Poster) (*model.Poster, error) {
	if err := validatePoster(p); err != nil {
		return nil, err
	}
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	p.UpdatedAt = now

	stored, err := s.repo.Create(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("create poster: %w", err)
	}
	return s.repairAndNormalize(ctx, stored), nil
}

func (s *posterService) Get(ctx context.Context, id string) (*model.Poster, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return s.repairAndNormalize(ctx, p), nil
}

func (s *posterService) List(ctx context.Context, limit, offset int, activeOnly bool) (*PosterListResult, error) {
	if limit <= 0 {
		limit = 10
	}
	if offset < 0 {
		offset = 0
	}
	res, err := s.repo.List(ctx, repository.PageQuery{Limit: limit, Offset: offset}, repository.PosterFilter{ActiveOnly: activeOnly})
	if err != nil {
		return nil, err
	}
	for i := range res.Items {
		s.repairAndNormalize(ctx, &res.Items[i])
	}
	return &PosterListResult{Items: res.Items, Total: res.Total}, nil
}

func (s *posterService) Update(ctx context.Context, p *model.Poster) (*model.Poster, error) {
	if p.ID == "" {
		return nil, ErrIDRequired
	}
	if err := validatePoster(p); err != nil {
		return nil, err
	}
	p.UpdatedAt = time.Now().UTC()

	stored, err := s.repo.Update(ctx, p)
	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("update poster: %w", err)
	}
	return s.repairAndNormalize(ctx, stored), nil
}

func (s *posterService) Delete(ctx context.Context, id string) error {
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

// repairAndNormalize applies the misrouted-key repair (write-on-read) and
// rewrites the image URL to public-store form for rendering. A failed persist
// keeps the corrected URL for this response; the next read retries.
func (s *posterService) repairAndNormalize(ctx context.Context, p *model.Poster) *model.Poster {
	fixed, repaired := asseturl.RepairMisrouted(asseturl.OwnerPoster, p.ImageURL)
	if repaired {
		if err := s.repo.UpdateImageURL(ctx, p.ID, fixed); err != nil {
			logJSON(map[string]any{
				"level":     "error",
				"component": "poster_service",
				"event":     "misroute_repair_persist_failed",
				"poster_id": p.ID,
				"error":     err.Error(),
			})
		} else {
			logJSON(map[string]any{
				"component": "poster_service",
				"event":     "misroute_repaired",
				"poster_id": p.ID,
			})
		}
		p.ImageURL = fixed
	}
	p.ImageURL = s.resolver.ToPublicForm(p.ImageURL)
	return p
}
