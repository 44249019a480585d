package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lehoangkhoi01/fashion-shop-be/models"

	"gorm.io/gorm"
)

// CatalogRepository defines the interface for catalog data access.
type CatalogRepository interface {
	GetByID(ctx context.Context, id uint) (*models.Catalog, error)
	ListAll(ctx context.Context) ([]models.Catalog, error)
	Create(ctx context.Context, catalog *models.Catalog) error
	Update(ctx context.Context, catalog *models.Catalog) error
	SoftDelete(ctx context.Context, catalog *models.Catalog) error
}

// GormCatalogRepository implements CatalogRepository using GORM.
type GormCatalogRepository struct {
	db *gorm.DB
}

// NewGormCatalogRepository creates a new instance of GormCatalogRepository.
func NewGormCatalogRepository(db *gorm.DB) CatalogRepository {
	return &GormCatalogRepository{db: db}
}

func (r *GormCatalogRepository) GetByID(ctx context.Context, id uint) (*models.Catalog, error) {
	var catalog models.Catalog
	err := r.db.WithContext(ctx).First(&catalog, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get catalog %d: %w", id, err)
	}
	return &catalog, nil
}

func (r *GormCatalogRepository) ListAll(ctx context.Context) ([]models.Catalog, error) {
	var catalogs []models.Catalog
	err := r.db.WithContext(ctx).Order("id").Find(&catalogs).Error
	if err != nil {
		return nil, fmt.Errorf("list catalogs: %w", err)
	}
	return catalogs, nil
}

func (r *GormCatalogRepository) Create(ctx context.Context, catalog *models.Catalog) error {
	if err := r.db.WithContext(ctx).Create(catalog).Error; err != nil {
		return fmt.Errorf("create catalog: %w", err)
	}
	return nil
}

func (r *GormCatalogRepository) Update(ctx context.Context, catalog *models.Catalog) error {
	if err := r.db.WithContext(ctx).Save(catalog).Error; err != nil {
		return fmt.Errorf("update catalog %d: %w", catalog.ID, err)
	}
	return nil
}

func (r *GormCatalogRepository) SoftDelete(ctx context.Context, catalog *models.Catalog) error {
	now := time.Now().UTC()
	err := r.db.WithContext(ctx).
		Model(catalog).
		Updates(map[string]interface{}{
			"is_deleted": true,
			"deleted_at": now,
		}).Error
	if err != nil {
		return fmt.Errorf("soft delete catalog %d: %w", catalog.ID, err)
	}
	return nil
}
