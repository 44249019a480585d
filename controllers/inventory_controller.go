package controllers

import (
	"context"
	"net/http"

	"github.com/lehoangkhoi01/fashion-shop-be/models"
	"github.com/lehoangkhoi01/fashion-shop-be/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// InventoryController handles stock management endpoints.
type InventoryController struct {
	service *services.InventoryService
	timeout func(parent context.Context) (context.Context, context.CancelFunc)
}

// NewInventoryController creates a new InventoryController.
func NewInventoryController(service *services.InventoryService) *InventoryController {
	return &InventoryController{
		service: service,
		timeout: func(parent context.Context) (context.Context, context.CancelFunc) {
			return context.WithTimeout(parent, DefaultContextTimeout)
		},
	}
}

// GetStock returns the inventory record for a product.
func (ic *InventoryController) GetStock(c *gin.Context) {
	productID, ok := parseID(c, "productId")
	if !ok {
		return
	}

	ctx, cancel := ic.timeout(c.Request.Context())
	defer cancel()

	inv, err := ic.service.GetStock(ctx, productID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, inv)
}

// CheckStock reports availability for a requested quantity.
func (ic *InventoryController) CheckStock(c *gin.Context) {
	var req models.StockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := ic.timeout(c.Request.Context())
	defer cancel()

	ok, err := ic.service.CheckStock(ctx, req.ProductID, req.Quantity)
	if err != nil {
		zap.L().Error("Stock check failed", zap.Uint("product_id", req.ProductID), zap.Error(err))
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.StockCheckResult{
		ProductID: req.ProductID,
		Requested: req.Quantity,
		InStock:   ok,
	})
}

// AddStock increments stock for a product, creating the inventory record on
// first addition.
func (ic *InventoryController) AddStock(c *gin.Context) {
	var req models.StockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := ic.timeout(c.Request.Context())
	defer cancel()

	if err := ic.service.AddStock(ctx, req.ProductID, req.Quantity); err != nil {
		zap.L().Error("Failed to add stock", zap.Uint("product_id", req.ProductID), zap.Error(err))
		respondError(c, err)
		return
	}

	c.Status(http.StatusOK)
}

// DeductStock removes stock for a product.
func (ic *InventoryController) DeductStock(c *gin.Context) {
	var req models.StockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := ic.timeout(c.Request.Context())
	defer cancel()

	if err := ic.service.DeductStock(ctx, req.ProductID, req.Quantity); err != nil {
		zap.L().Warn("Failed to deduct stock", zap.Uint("product_id", req.ProductID), zap.Error(err))
		respondError(c, err)
		return
	}

	c.Status(http.StatusOK)
}
