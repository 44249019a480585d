package services

import (
	"context"
	"errors"
	"time"

	"github.com/lehoangkhoi01/fashion-shop-be/errs"
	"github.com/lehoangkhoi01/fashion-shop-be/models"
	"github.com/lehoangkhoi01/fashion-shop-be/repository"

	"go.uber.org/zap"
)

const (
	stockMaxRetries = 3
	stockRetryDelay = 50 * time.Millisecond
)

// StockManager is the inventory capability consumed by the order workflow.
type StockManager interface {
	CheckStock(ctx context.Context, productID uint, quantity int) (bool, error)
	DeductStock(ctx context.Context, productID uint, quantity int) error
	AddStock(ctx context.Context, productID uint, quantity int) error
}

// InventoryService owns all mutations of inventory quantities. Stock
// deduction runs under optimistic concurrency with a bounded retry loop so
// two concurrent orders can never both remove the same units.
type InventoryService struct {
	repo repository.InventoryRepository
}

// NewInventoryService creates a new InventoryService.
func NewInventoryService(repo repository.InventoryRepository) *InventoryService {
	return &InventoryService{repo: repo}
}

// GetStock returns the current inventory record for a product.
func (s *InventoryService) GetStock(ctx context.Context, productID uint) (*models.Inventory, error) {
	inv, err := s.repo.GetByProductID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, &errs.NotFoundError{Resource: "Inventory for product", ID: productID}
		}
		return nil, err
	}
	return inv, nil
}

// CheckStock reports whether an active inventory record exists for the
// product and holds at least the requested quantity. No side effects.
func (s *InventoryService) CheckStock(ctx context.Context, productID uint, quantity int) (bool, error) {
	inv, err := s.repo.GetByProductID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return inv.Quantity >= quantity, nil
}

// DeductStock removes quantity units from the product's inventory. The
// read-modify-write cycle is retried on version conflicts, re-reading the
// current quantity each attempt.
func (s *InventoryService) DeductStock(ctx context.Context, productID uint, quantity int) error {
	for attempt := 1; attempt <= stockMaxRetries; attempt++ {
		inv, err := s.repo.GetByProductID(ctx, productID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return &errs.NotFoundError{Resource: "Inventory for product", ID: productID}
			}
			return err
		}

		if inv.Quantity < quantity {
			return &errs.InsufficientStockError{
				ProductID: productID,
				Requested: quantity,
				Available: inv.Quantity,
			}
		}

		inv.Quantity -= quantity
		inv.LastUpdated = time.Now().UTC()

		err = s.repo.UpdateWithVersion(ctx, inv)
		if err == nil {
			zap.L().Debug("Stock deducted",
				zap.Uint("product_id", productID),
				zap.Int("quantity", quantity),
				zap.Int("remaining", inv.Quantity),
			)
			return nil
		}
		if !errors.Is(err, repository.ErrVersionConflict) {
			return err
		}

		zap.L().Warn("Stock deduction conflict, retrying",
			zap.Uint("product_id", productID),
			zap.Int("attempt", attempt),
		)
		if attempt < stockMaxRetries {
			if err := sleepCtx(ctx, stockRetryDelay); err != nil {
				return err
			}
		}
	}

	return &errs.ConcurrencyError{ProductID: productID, Attempts: stockMaxRetries}
}

// AddStock increments the product's inventory, creating the record lazily on
// first addition. Increments run under the same conflict-retry discipline as
// deductions.
func (s *InventoryService) AddStock(ctx context.Context, productID uint, quantity int) error {
	for attempt := 1; attempt <= stockMaxRetries; attempt++ {
		inv, err := s.repo.GetByProductID(ctx, productID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				inv = &models.Inventory{
					ProductID:   productID,
					Quantity:    quantity,
					LastUpdated: time.Now().UTC(),
				}
				if err := s.repo.Create(ctx, inv); err != nil {
					return err
				}
				zap.L().Info("Inventory record created",
					zap.Uint("product_id", productID),
					zap.Int("quantity", quantity),
				)
				return nil
			}
			return err
		}

		inv.Quantity += quantity
		inv.LastUpdated = time.Now().UTC()

		err = s.repo.UpdateWithVersion(ctx, inv)
		if err == nil {
			return nil
		}
		if !errors.Is(err, repository.ErrVersionConflict) {
			return err
		}

		zap.L().Warn("Stock addition conflict, retrying",
			zap.Uint("product_id", productID),
			zap.Int("attempt", attempt),
		)
		if attempt < stockMaxRetries {
			if err := sleepCtx(ctx, stockRetryDelay); err != nil {
				return err
			}
		}
	}

	return &errs.ConcurrencyError{ProductID: productID, Attempts: stockMaxRetries}
}

// sleepCtx waits for d, returning early if the context is cancelled.
func sleepCtx(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
