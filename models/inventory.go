package models

import "time"

// Inventory tracks stock for a single product. At most one active
// (non-soft-deleted) row may exist per product. Version is the
// optimistic-concurrency token bumped on every update; quantity is mutated
// only through the inventory service.
type Inventory struct {
	BaseModel
	ProductID   uint      `gorm:"not null;index" json:"product_id"`
	Quantity    int       `gorm:"not null;check:quantity >= 0" json:"quantity"`
	LastUpdated time.Time `json:"last_updated"`
	Version     int       `gorm:"not null;default:1" json:"-"`
}

// StockRequest is the payload for inventory add/deduct/check endpoints.
type StockRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required,min=1"`
}

// StockCheckResult reports availability for a single product.
type StockCheckResult struct {
	ProductID uint `json:"product_id"`
	Requested int  `json:"requested"`
	InStock   bool `json:"in_stock"`
}
