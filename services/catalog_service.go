package services

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/lehoangkhoi01/fashion-shop-be/cache"
	"github.com/lehoangkhoi01/fashion-shop-be/errs"
	"github.com/lehoangkhoi01/fashion-shop-be/models"
	"github.com/lehoangkhoi01/fashion-shop-be/repository"

	"go.uber.org/zap"
)

// CatalogService mirrors ProductService for catalogs: read-through cache on
// lookups, synchronous invalidation on writes.
type CatalogService struct {
	repo  repository.CatalogRepository
	cache cache.Cache
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(repo repository.CatalogRepository, c cache.Cache) *CatalogService {
	return &CatalogService{repo: repo, cache: c}
}

// GetAllCatalogs returns all active catalogs, served from the cache when
// possible.
func (s *CatalogService) GetAllCatalogs(ctx context.Context) ([]models.CatalogView, error) {
	if data, err := s.cache.Get(ctx, cache.CatalogsAllKey); err == nil {
		var views []models.CatalogView
		unmarshalErr := json.Unmarshal(data, &views)
		if unmarshalErr == nil {
			return views, nil
		}
		zap.L().Warn("Failed to unmarshal cached catalog list", zap.Error(unmarshalErr))
	} else if !errors.Is(err, cache.ErrMiss) {
		zap.L().Warn("Catalog list cache read failed", zap.Error(err))
	}

	catalogs, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]models.CatalogView, 0, len(catalogs))
	for i := range catalogs {
		views = append(views, *catalogs[i].ToView())
	}

	s.populate(ctx, cache.CatalogsAllKey, views)
	return views, nil
}

// GetCatalogByID returns the catalog view, or (nil, nil) when no active
// catalog with that id exists. Absence is never cached.
func (s *CatalogService) GetCatalogByID(ctx context.Context, id uint) (*models.CatalogView, error) {
	key := cache.CatalogKey(id)
	if data, err := s.cache.Get(ctx, key); err == nil {
		var view models.CatalogView
		unmarshalErr := json.Unmarshal(data, &view)
		if unmarshalErr == nil {
			return &view, nil
		}
		zap.L().Warn("Failed to unmarshal cached catalog", zap.Uint("id", id), zap.Error(unmarshalErr))
	} else if !errors.Is(err, cache.ErrMiss) {
		zap.L().Warn("Catalog cache read failed", zap.Uint("id", id), zap.Error(err))
	}

	catalog, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	view := catalog.ToView()
	s.populate(ctx, key, view)
	return view, nil
}

// CreateCatalog persists a new catalog and invalidates the aggregate cache
// key before returning.
func (s *CatalogService) CreateCatalog(ctx context.Context, req *models.CreateCatalogRequest) (*models.CatalogView, error) {
	catalog := &models.Catalog{
		Name:        req.Name,
		Description: req.Description,
	}

	if err := s.repo.Create(ctx, catalog); err != nil {
		return nil, err
	}

	s.invalidate(ctx, cache.CatalogsAllKey)
	return catalog.ToView(), nil
}

// UpdateCatalog persists changes to an existing catalog and invalidates both
// the aggregate and the per-id cache keys.
func (s *CatalogService) UpdateCatalog(ctx context.Context, id uint, req *models.UpdateCatalogRequest) error {
	catalog, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return &errs.NotFoundError{Resource: "Catalog", ID: id}
		}
		return err
	}

	catalog.Name = req.Name
	catalog.Description = req.Description

	if err := s.repo.Update(ctx, catalog); err != nil {
		return err
	}

	s.invalidate(ctx, cache.CatalogsAllKey)
	s.invalidate(ctx, cache.CatalogKey(id))
	return nil
}

// DeleteCatalog soft-deletes the catalog and invalidates both cache keys.
func (s *CatalogService) DeleteCatalog(ctx context.Context, id uint) error {
	catalog, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return &errs.NotFoundError{Resource: "Catalog", ID: id}
		}
		return err
	}

	if err := s.repo.SoftDelete(ctx, catalog); err != nil {
		return err
	}

	s.invalidate(ctx, cache.CatalogsAllKey)
	s.invalidate(ctx, cache.CatalogKey(id))
	return nil
}

func (s *CatalogService) populate(ctx context.Context, key string, view interface{}) {
	data, err := json.Marshal(view)
	if err != nil {
		zap.L().Warn("Failed to marshal view for cache", zap.String("key", key), zap.Error(err))
		return
	}
	if err := s.cache.Set(ctx, key, data, cache.DefaultOptions()); err != nil {
		zap.L().Warn("Failed to populate cache", zap.String("key", key), zap.Error(err))
	}
}

func (s *CatalogService) invalidate(ctx context.Context, key string) {
	if err := s.cache.Remove(ctx, key); err != nil {
		zap.L().Error("Failed to invalidate cache key", zap.String("key", key), zap.Error(err))
	}
}
