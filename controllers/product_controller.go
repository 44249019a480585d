package controllers

import (
	"context"
	"net/http"

	"github.com/lehoangkhoi01/fashion-shop-be/models"
	"github.com/lehoangkhoi01/fashion-shop-be/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ProductController handles product CRUD endpoints.
type ProductController struct {
	service *services.ProductService
	timeout func(parent context.Context) (context.Context, context.CancelFunc)
}

// NewProductController creates a new ProductController.
func NewProductController(service *services.ProductService) *ProductController {
	return &ProductController{
		service: service,
		timeout: func(parent context.Context) (context.Context, context.CancelFunc) {
			return context.WithTimeout(parent, DefaultContextTimeout)
		},
	}
}

// GetProducts returns all active products (cached).
func (pc *ProductController) GetProducts(c *gin.Context) {
	ctx, cancel := pc.timeout(c.Request.Context())
	defer cancel()

	products, err := pc.service.GetAllProducts(ctx)
	if err != nil {
		zap.L().Error("Failed to fetch products", zap.Error(err))
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, products)
}

// GetProductsPaged returns a page of products.
func (pc *ProductController) GetProductsPaged(c *gin.Context) {
	ctx, cancel := pc.timeout(c.Request.Context())
	defer cancel()

	page, pageSize := pageParams(c)
	resp, err := pc.service.GetProductsPaged(ctx, page, pageSize)
	if err != nil {
		zap.L().Error("Failed to fetch product page", zap.Error(err))
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetProductByID returns a single product (cached).
func (pc *ProductController) GetProductByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	ctx, cancel := pc.timeout(c.Request.Context())
	defer cancel()

	product, err := pc.service.GetProductByID(ctx, id)
	if err != nil {
		zap.L().Error("Failed to fetch product", zap.Uint("id", id), zap.Error(err))
		respondError(c, err)
		return
	}
	if product == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	c.JSON(http.StatusOK, product)
}

// CreateProduct creates a new product.
func (pc *ProductController) CreateProduct(c *gin.Context) {
	var req models.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := pc.timeout(c.Request.Context())
	defer cancel()

	product, err := pc.service.CreateProduct(ctx, &req)
	if err != nil {
		zap.L().Error("Failed to create product", zap.Error(err))
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, product)
}

// UpdateProduct updates an existing product.
func (pc *ProductController) UpdateProduct(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req models.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := pc.timeout(c.Request.Context())
	defer cancel()

	if err := pc.service.UpdateProduct(ctx, id, &req); err != nil {
		zap.L().Error("Failed to update product", zap.Uint("id", id), zap.Error(err))
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// DeleteProduct soft-deletes a product.
func (pc *ProductController) DeleteProduct(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	ctx, cancel := pc.timeout(c.Request.Context())
	defer cancel()

	if err := pc.service.DeleteProduct(ctx, id); err != nil {
		zap.L().Error("Failed to delete product", zap.Uint("id", id), zap.Error(err))
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
