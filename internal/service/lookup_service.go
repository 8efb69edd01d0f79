package service

import (
	"context"
	"log/slog"

	"github.com/mariomediam/maps-backend/internal/domain"
	"github.com/mariomediam/maps-backend/internal/metrics"
)

type lookupService struct {
	repo    LookupRepository
	cache   LookupCache
	metrics *metrics.Metrics
	logger  *slog.Logger
}

// NewLookupService serves the read-only lookup tables. cache may be nil.
func NewLookupService(repo LookupRepository, cache LookupCache, m *metrics.Metrics, logger *slog.Logger) LookupService {
	return &lookupService{repo: repo, cache: cache, metrics: m, logger: logger}
}

func (s *lookupService) Categories(ctx context.Context, isActive *bool) ([]domain.Category, error) {
	name := "categories:all"
	if isActive != nil {
		name = "categories:inactive"
		if *isActive {
			name = "categories:active"
		}
	}
	return cached(ctx, s, name, func(ctx context.Context) ([]domain.Category, error) {
		return s.repo.ListCategories(ctx, isActive)
	})
}

func (s *lookupService) Category(ctx context.Context, id int64) (*domain.Category, error) {
	return s.repo.GetCategory(ctx, id)
}

func (s *lookupService) Priorities(ctx context.Context) ([]domain.Priority, error) {
	return cached(ctx, s, "priorities", s.repo.ListPriorities)
}

func (s *lookupService) ClosureTypes(ctx context.Context) ([]domain.ClosureType, error) {
	return cached(ctx, s, "closure_types", s.repo.ListClosureTypes)
}

func (s *lookupService) States() []domain.State {
	return domain.States()
}

// cached reads through the lookup cache. Cache failures only cost a database
// round trip.
func cached[T any](ctx context.Context, s *lookupService, name string, load func(context.Context) ([]T, error)) ([]T, error) {
	if s.cache != nil {
		var out []T
		hit, err := s.cache.Get(ctx, name, &out)
		if err != nil {
			s.logger.Warn("lookup cache read failed", slog.String("name", name), slog.Any("error", err))
		}
		s.metrics.CacheLookup(hit)
		if hit {
			return out, nil
		}
	}

	out, err := load(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, name, out); err != nil {
			s.logger.Warn("lookup cache write failed", slog.String("name", name), slog.Any("error", err))
		}
	}
	return out, nil
}
