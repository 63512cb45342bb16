package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/katyregal/salon-api/internal/core/domain"
	"github.com/katyregal/salon-api/internal/core/ports"
)

// CategoryCache abstracts the read-through cache for the category list (Redis).
type CategoryCache interface {
	Get(ctx context.Context) ([]string, bool, error)
	Set(ctx context.Context, categories []string) error
	Invalidate(ctx context.Context) error
}

// CatalogService implements catalog CRUD use-cases.
type CatalogService struct {
	repo   ports.CatalogRepository
	cache  CategoryCache
	logger zerolog.Logger
}

func NewCatalogService(repo ports.CatalogRepository, cache CategoryCache, logger zerolog.Logger) *CatalogService {
	return &CatalogService{repo: repo, cache: cache, logger: logger}
}

func (s *CatalogService) ListServices(ctx context.Context, filter ports.ListServicesFilter) ([]*domain.Service, error) {
	return s.repo.List(ctx, filter)
}

func (s *CatalogService) GetService(ctx context.Context, id string) (*domain.Service, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *CatalogService) CreateService(ctx context.Context, input ports.CreateServiceInput) (*domain.Service, error) {
	now := time.Now().UTC()
	svc := &domain.Service{
		Name:            input.Name,
		Description:     input.Description,
		Price:           input.Price,
		DurationMinutes: input.DurationMinutes,
		Category:        domain.Category(input.Category),
		Image:           input.Image,
		Active:          true,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if input.Active != nil {
		svc.Active = *input.Active
	}
	if svc.Image == "" {
		svc.Image = domain.DefaultServiceImage
	}

	if err := svc.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, svc); err != nil {
		s.logger.Error().Err(err).Str("name", svc.Name).Msg("failed to create service")
		return nil, err
	}

	s.invalidateCategories(ctx)
	s.logger.Info().Str("id", svc.ID).Str("name", svc.Name).Msg("service created")
	return svc, nil
}

// UpdateService applies a partial merge, then re-checks the catalog
// invariants against the merged record before persisting.
func (s *CatalogService) UpdateService(ctx context.Context, id string, input ports.UpdateServiceInput) (*domain.Service, error) {
	current, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	merged := *current
	patch := ports.ServicePatch{
		Name:            input.Name,
		Description:     input.Description,
		Price:           input.Price,
		DurationMinutes: input.DurationMinutes,
		Image:           input.Image,
		Active:          input.Active,
	}
	if input.Name != nil {
		merged.Name = *input.Name
	}
	if input.Description != nil {
		merged.Description = *input.Description
	}
	if input.Price != nil {
		merged.Price = *input.Price
	}
	if input.DurationMinutes != nil {
		merged.DurationMinutes = *input.DurationMinutes
	}
	if input.Category != nil {
		category := domain.Category(*input.Category)
		merged.Category = category
		patch.Category = &category
	}
	if input.Image != nil {
		merged.Image = *input.Image
	}
	if input.Active != nil {
		merged.Active = *input.Active
	}

	if err := merged.Validate(); err != nil {
		return nil, err
	}

	updated, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}

	s.invalidateCategories(ctx)
	s.logger.Info().Str("id", id).Msg("service updated")
	return updated, nil
}

func (s *CatalogService) DeleteService(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidateCategories(ctx)
	s.logger.Info().Str("id", id).Msg("service deleted")
	return nil
}

// Categories returns the distinct categories in use, served from the cache
// when warm. Cache failures degrade to a direct repository read.
func (s *CatalogService) Categories(ctx context.Context) ([]string, error) {
	if s.cache != nil {
		if cached, ok, err := s.cache.Get(ctx); err != nil {
			s.logger.Warn().Err(err).Msg("category cache read failed")
		} else if ok {
			return cached, nil
		}
	}

	categories, err := s.repo.DistinctCategories(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, categories); err != nil {
			s.logger.Warn().Err(err).Msg("category cache write failed")
		}
	}
	return categories, nil
}

func (s *CatalogService) invalidateCategories(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		s.logger.Warn().Err(err).Msg("category cache invalidation failed")
	}
}
