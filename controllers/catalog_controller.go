package controllers

import (
	"context"
	"net/http"

	"github.com/lehoangkhoi01/fashion-shop-be/models"
	"github.com/lehoangkhoi01/fashion-shop-be/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CatalogController handles catalog CRUD endpoints.
type CatalogController struct {
	service *services.CatalogService
	timeout func(parent context.Context) (context.Context, context.CancelFunc)
}

// NewCatalogController creates a new CatalogController.
func NewCatalogController(service *services.CatalogService) *CatalogController {
	return &CatalogController{
		service: service,
		timeout: func(parent context.Context) (context.Context, context.CancelFunc) {
			return context.WithTimeout(parent, DefaultContextTimeout)
		},
	}
}

// GetCatalogs returns all active catalogs (cached).
func (cc *CatalogController) GetCatalogs(c *gin.Context) {
	ctx, cancel := cc.timeout(c.Request.Context())
	defer cancel()

	catalogs, err := cc.service.GetAllCatalogs(ctx)
	if err != nil {
		zap.L().Error("Failed to fetch catalogs", zap.Error(err))
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, catalogs)
}

// GetCatalogByID returns a single catalog (cached).
func (cc *CatalogController) GetCatalogByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	ctx, cancel := cc.timeout(c.Request.Context())
	defer cancel()

	catalog, err := cc.service.GetCatalogByID(ctx, id)
	if err != nil {
		zap.L().Error("Failed to fetch catalog", zap.Uint("id", id), zap.Error(err))
		respondError(c, err)
		return
	}
	if catalog == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Catalog not found"})
		return
	}

	c.JSON(http.StatusOK, catalog)
}

// CreateCatalog creates a new catalog.
func (cc *CatalogController) CreateCatalog(c *gin.Context) {
	var req models.CreateCatalogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := cc.timeout(c.Request.Context())
	defer cancel()

	catalog, err := cc.service.CreateCatalog(ctx, &req)
	if err != nil {
		zap.L().Error("Failed to create catalog", zap.Error(err))
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, catalog)
}

// UpdateCatalog updates an existing catalog.
func (cc *CatalogController) UpdateCatalog(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req models.UpdateCatalogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := cc.timeout(c.Request.Context())
	defer cancel()

	if err := cc.service.UpdateCatalog(ctx, id, &req); err != nil {
		zap.L().Error("Failed to update catalog", zap.Uint("id", id), zap.Error(err))
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// DeleteCatalog soft-deletes a catalog.
func (cc *CatalogController) DeleteCatalog(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	ctx, cancel := cc.timeout(c.Request.Context())
	defer cancel()

	if err := cc.service.DeleteCatalog(ctx, id); err != nil {
		zap.L().Error("Failed to delete catalog", zap.Uint("id", id), zap.Error(err))
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
