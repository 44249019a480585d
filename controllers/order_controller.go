package controllers

import (
	"context"
	"net/http"

	"github.com/lehoangkhoi01/fashion-shop-be/errs"
	"github.com/lehoangkhoi01/fashion-shop-be/models"
	"github.com/lehoangkhoi01/fashion-shop-be/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// OrderController handles order placement and lookup endpoints.
type OrderController struct {
	service *services.OrderService
	timeout func(parent context.Context) (context.Context, context.CancelFunc)
}

// NewOrderController creates a new OrderController.
func NewOrderController(service *services.OrderService) *OrderController {
	return &OrderController{
		service: service,
		timeout: func(parent context.Context) (context.Context, context.CancelFunc) {
			return context.WithTimeout(parent, DefaultContextTimeout)
		},
	}
}

// PlaceOrder runs the order-placement workflow. A product missing
// mid-workflow is a caller error, so the status mapping differs from plain
// lookups.
func (oc *OrderController) PlaceOrder(c *gin.Context) {
	var req models.PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := oc.timeout(c.Request.Context())
	defer cancel()

	order, err := oc.service.PlaceOrder(ctx, &req)
	if err != nil {
		zap.L().Warn("Order placement failed", zap.Error(err))
		c.JSON(errs.WorkflowStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, order)
}

// GetOrderByID returns a single order with resolved product names.
func (oc *OrderController) GetOrderByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	ctx, cancel := oc.timeout(c.Request.Context())
	defer cancel()

	order, err := oc.service.GetOrderByID(ctx, id)
	if err != nil {
		zap.L().Error("Failed to fetch order", zap.Uint("id", id), zap.Error(err))
		respondError(c, err)
		return
	}
	if order == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	c.JSON(http.StatusOK, order)
}

// GetOrdersByUserID returns all orders for a user.
func (oc *OrderController) GetOrdersByUserID(c *gin.Context) {
	userID, ok := parseID(c, "userId")
	if !ok {
		return
	}

	ctx, cancel := oc.timeout(c.Request.Context())
	defer cancel()

	orders, err := oc.service.GetOrdersByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("Failed to fetch user orders", zap.Uint("user_id", userID), zap.Error(err))
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, orders)
}

// GetOrders returns a page of orders.
func (oc *OrderController) GetOrders(c *gin.Context) {
	ctx, cancel := oc.timeout(c.Request.Context())
	defer cancel()

	page, pageSize := pageParams(c)
	resp, err := oc.service.ListOrders(ctx, page, pageSize)
	if err != nil {
		zap.L().Error("Failed to fetch orders", zap.Error(err))
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
