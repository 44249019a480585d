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
	"gorm.io/datatypes"
)

// ProductListResponse is a page of products with pagination meta.
type ProductListResponse struct {
	Products []models.ProductView `json:"products"`
	Meta     PageMeta             `json:"meta"`
}

// ProductService serves product reads through the cache and invalidates it
// on every write. The cache is a latency optimization only: any cache
// failure degrades to a store read.
type ProductService struct {
	repo  repository.ProductRepository
	cache cache.Cache
}

// NewProductService creates a new ProductService.
func NewProductService(repo repository.ProductRepository, c cache.Cache) *ProductService {
	return &ProductService{repo: repo, cache: c}
}

// GetAllProducts returns all active products, served from the cache when
// possible.
func (s *ProductService) GetAllProducts(ctx context.Context) ([]models.ProductView, error) {
	if data, err := s.cache.Get(ctx, cache.ProductsAllKey); err == nil {
		var views []models.ProductView
		unmarshalErr := json.Unmarshal(data, &views)
		if unmarshalErr == nil {
			return views, nil
		}
		zap.L().Warn("Failed to unmarshal cached product list", zap.Error(unmarshalErr))
	} else if !errors.Is(err, cache.ErrMiss) {
		zap.L().Warn("Product list cache read failed", zap.Error(err))
	}

	products, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]models.ProductView, 0, len(products))
	for i := range products {
		views = append(views, *products[i].ToView())
	}

	s.populate(ctx, cache.ProductsAllKey, views)
	return views, nil
}

// GetProductByID returns the product view, or (nil, nil) when no active
// product with that id exists. Absence is never cached.
func (s *ProductService) GetProductByID(ctx context.Context, id uint) (*models.ProductView, error) {
	key := cache.ProductKey(id)
	if data, err := s.cache.Get(ctx, key); err == nil {
		var view models.ProductView
		unmarshalErr := json.Unmarshal(data, &view)
		if unmarshalErr == nil {
			return &view, nil
		}
		zap.L().Warn("Failed to unmarshal cached product", zap.Uint("id", id), zap.Error(unmarshalErr))
	} else if !errors.Is(err, cache.ErrMiss) {
		zap.L().Warn("Product cache read failed", zap.Uint("id", id), zap.Error(err))
	}

	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	view := product.ToView()
	s.populate(ctx, key, view)
	return view, nil
}

// GetProductsPaged returns a page of products directly from the store.
func (s *ProductService) GetProductsPaged(ctx context.Context, page, pageSize int) (*ProductListResponse, error) {
	products, total, err := s.repo.ListPaged(ctx, page, pageSize)
	if err != nil {
		return nil, err
	}

	views := make([]models.ProductView, 0, len(products))
	for i := range products {
		views = append(views, *products[i].ToView())
	}

	return &ProductListResponse{
		Products: views,
		Meta: PageMeta{
			Page:       page,
			PageSize:   pageSize,
			Total:      total,
			TotalPages: totalPages(total, pageSize),
			HasMore:    total > int64(page*pageSize),
		},
	}, nil
}

// CreateProduct persists a new product and invalidates the aggregate cache
// key before returning.
func (s *ProductService) CreateProduct(ctx context.Context, req *models.CreateProductRequest) (*models.ProductView, error) {
	product := &models.Product{
		Name:      req.Name,
		Sku:       req.Sku,
		Price:     req.Price,
		CatalogID: req.CatalogID,
	}
	if len(req.Properties) > 0 {
		product.Properties = datatypes.JSON(req.Properties)
	}

	if err := s.repo.Create(ctx, product); err != nil {
		return nil, err
	}

	s.invalidate(ctx, cache.ProductsAllKey)
	return product.ToView(), nil
}

// UpdateProduct persists changes to an existing product and invalidates both
// the aggregate and the per-id cache keys.
func (s *ProductService) UpdateProduct(ctx context.Context, id uint, req *models.UpdateProductRequest) error {
	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return &errs.NotFoundError{Resource: "Product", ID: id}
		}
		return err
	}

	product.Name = req.Name
	product.Sku = req.Sku
	product.Price = req.Price
	product.CatalogID = req.CatalogID
	if len(req.Properties) > 0 {
		product.Properties = datatypes.JSON(req.Properties)
	} else {
		product.Properties = nil
	}

	if err := s.repo.Update(ctx, product); err != nil {
		return err
	}

	s.invalidate(ctx, cache.ProductsAllKey)
	s.invalidate(ctx, cache.ProductKey(id))
	return nil
}

// DeleteProduct soft-deletes the product and invalidates both cache keys.
func (s *ProductService) DeleteProduct(ctx context.Context, id uint) error {
	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return &errs.NotFoundError{Resource: "Product", ID: id}
		}
		return err
	}

	if err := s.repo.SoftDelete(ctx, product); err != nil {
		return err
	}

	s.invalidate(ctx, cache.ProductsAllKey)
	s.invalidate(ctx, cache.ProductKey(id))
	return nil
}

// populate writes a freshly loaded view into the cache. Failures are logged
// and otherwise ignored.
func (s *ProductService) populate(ctx context.Context, key string, view interface{}) {
	data, err := json.Marshal(view)
	if err != nil {
		zap.L().Warn("Failed to marshal view for cache", zap.String("key", key), zap.Error(err))
		return
	}
	if err := s.cache.Set(ctx, key, data, cache.DefaultOptions()); err != nil {
		zap.L().Warn("Failed to populate cache", zap.String("key", key), zap.Error(err))
	}
}

// invalidate removes a cache key synchronously, before the surrounding write
// reports success. A failed removal is logged loudly but does not fail the
// write: the entry still expires by TTL.
func (s *ProductService) invalidate(ctx context.Context, key string) {
	if err := s.cache.Remove(ctx, key); err != nil {
		zap.L().Error("Failed to invalidate cache key", zap.String("key", key), zap.Error(err))
	}
}
