package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/lehoangkhoi01/fashion-shop-be/models"

	"gorm.io/gorm"
)

// InventoryRepository defines the interface for inventory data access.
// Uniqueness per product is enforced over active rows only: a soft-deleted
// row and a new active row may coexist for the same product.
type InventoryRepository interface {
	GetByProductID(ctx context.Context, productID uint) (*models.Inventory, error)
	Create(ctx context.Context, inv *models.Inventory) error
	// UpdateWithVersion persists the record only if its version token is
	// still current, bumping the token on success. A stale token yields
	// ErrVersionConflict.
	UpdateWithVersion(ctx context.Context, inv *models.Inventory) error
}

// GormInventoryRepository implements InventoryRepository using GORM.
type GormInventoryRepository struct {
	db *gorm.DB
}

// NewGormInventoryRepository creates a new instance of GormInventoryRepository.
func NewGormInventoryRepository(db *gorm.DB) InventoryRepository {
	return &GormInventoryRepository{db: db}
}

func (r *GormInventoryRepository) GetByProductID(ctx context.Context, productID uint) (*models.Inventory, error) {
	var inv models.Inventory
	err := r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		First(&inv).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get inventory for product %d: %w", productID, err)
	}
	return &inv, nil
}

func (r *GormInventoryRepository) Create(ctx context.Context, inv *models.Inventory) error {
	if inv.Version == 0 {
		inv.Version = 1
	}
	if err := r.db.WithContext(ctx).Create(inv).Error; err != nil {
		return fmt.Errorf("create inventory for product %d: %w", inv.ProductID, err)
	}
	return nil
}

func (r *GormInventoryRepository) UpdateWithVersion(ctx context.Context, inv *models.Inventory) error {
	res := r.db.WithContext(ctx).
		Model(&models.Inventory{}).
		Where("id = ? AND version = ?", inv.ID, inv.Version).
		Updates(map[string]interface{}{
			"quantity":     inv.Quantity,
			"last_updated": inv.LastUpdated,
			"version":      inv.Version + 1,
		})
	if res.Error != nil {
		return fmt.Errorf("update inventory for product %d: %w", inv.ProductID, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrVersionConflict
	}
	inv.Version++
	return nil
}
