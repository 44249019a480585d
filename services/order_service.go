package services

import (
	"context"
	"errors"
	"time"

	"github.com/lehoangkhoi01/fashion-shop-be/errs"
	"github.com/lehoangkhoi01/fashion-shop-be/events"
	"github.com/lehoangkhoi01/fashion-shop-be/models"
	"github.com/lehoangkhoi01/fashion-shop-be/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// OrderListResponse is a page of orders with pagination meta.
type OrderListResponse struct {
	Orders []models.OrderView `json:"orders"`
	Meta   PageMeta           `json:"meta"`
}

// PageMeta describes a result page.
type PageMeta struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	Total      int64 `json:"total"`
	TotalPages int64 `json:"total_pages"`
	HasMore    bool  `json:"has_more"`
}

// OrderService runs the order-placement workflow: validate, check stock,
// price, deduct, persist, project.
type OrderService struct {
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
	stock       StockManager
	publisher   events.Publisher
}

// NewOrderService creates a new OrderService. publisher may be nil to
// disable event publishing.
func NewOrderService(orderRepo repository.OrderRepository, productRepo repository.ProductRepository, stock StockManager, publisher events.Publisher) *OrderService {
	return &OrderService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		stock:       stock,
		publisher:   publisher,
	}
}

// PlaceOrder validates the request, reserves stock for every line item,
// prices the order with unit prices frozen at order time, and persists it
// with status Pending. If any line fails after earlier lines already
// deducted stock, those deductions are released before the error returns.
func (s *OrderService) PlaceOrder(ctx context.Context, req *models.PlaceOrderRequest) (*models.OrderView, error) {
	if len(req.Items) == 0 {
		return nil, errs.NewValidation("order must contain at least one item")
	}
	if req.UserID == nil && req.GuestID == "" {
		return nil, errs.NewValidation("order must be associated with a user or a guest")
	}

	// Validate stock for every line before deducting anything.
	for _, item := range req.Items {
		ok, err := s.stock.CheckStock(ctx, item.ProductID, item.Quantity)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, &errs.InsufficientStockError{
				ProductID: item.ProductID,
				Requested: item.Quantity,
			}
		}
	}

	totalAmount := decimal.Zero
	orderItems := make([]models.OrderItem, 0, len(req.Items))
	productNames := make(map[uint]string, len(req.Items))

	for idx, item := range req.Items {
		product, err := s.productRepo.GetByID(ctx, item.ProductID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				err = &errs.NotFoundError{Resource: "Product", ID: item.ProductID}
			}
			s.releaseDeducted(ctx, req.Items[:idx])
			return nil, err
		}

		totalAmount = totalAmount.Add(product.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
		productNames[product.ID] = product.Name
		orderItems = append(orderItems, models.OrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: product.Price,
		})

		if err := s.stock.DeductStock(ctx, item.ProductID, item.Quantity); err != nil {
			s.releaseDeducted(ctx, req.Items[:idx])
			return nil, err
		}
	}

	order := &models.Order{
		OrderNumber:  uuid.NewString(),
		UserID:       req.UserID,
		GuestID:      req.GuestID,
		CustomerName: req.CustomerName,
		PhoneNumber:  req.PhoneNumber,
		Address:      req.Address,
		OrderDate:    time.Now().UTC(),
		TotalAmount:  totalAmount,
		Status:       models.OrderStatusPending,
		OrderItems:   orderItems,
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		s.releaseDeducted(ctx, req.Items)
		return nil, err
	}

	zap.L().Info("Order placed",
		zap.Uint("order_id", order.ID),
		zap.String("order_number", order.OrderNumber),
		zap.Int("items", len(order.OrderItems)),
		zap.String("total", totalAmount.String()),
	)

	s.publishOrderPlaced(ctx, order)

	return s.toView(order, productNames), nil
}

// GetOrderByID returns the order view, or (nil, nil) when no non-deleted
// order with that id exists.
func (s *OrderService) GetOrderByID(ctx context.Context, id uint) (*models.OrderView, error) {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return s.toView(order, s.resolveNames(ctx, order)), nil
}

// GetOrdersByUserID returns all non-deleted orders for a user, each enriched
// with resolved product names.
func (s *OrderService) GetOrdersByUserID(ctx context.Context, userID uint) ([]models.OrderView, error) {
	orders, err := s.orderRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	views := make([]models.OrderView, 0, len(orders))
	for i := range orders {
		views = append(views, *s.toView(&orders[i], s.resolveNames(ctx, &orders[i])))
	}
	return views, nil
}

// ListOrders returns a page of orders with pagination meta.
func (s *OrderService) ListOrders(ctx context.Context, page, pageSize int) (*OrderListResponse, error) {
	orders, total, err := s.orderRepo.FindPaged(ctx, page, pageSize)
	if err != nil {
		return nil, err
	}

	views := make([]models.OrderView, 0, len(orders))
	for i := range orders {
		views = append(views, *s.toView(&orders[i], s.resolveNames(ctx, &orders[i])))
	}

	return &OrderListResponse{
		Orders: views,
		Meta: PageMeta{
			Page:       page,
			PageSize:   pageSize,
			Total:      total,
			TotalPages: totalPages(total, pageSize),
			HasMore:    total > int64(page*pageSize),
		},
	}, nil
}

// releaseDeducted restores stock for line items already deducted in the
// current call. Release failures are logged, never surfaced: the caller is
// about to see the original error.
func (s *OrderService) releaseDeducted(ctx context.Context, items []models.OrderItemRequest) {
	for _, item := range items {
		if err := s.stock.AddStock(ctx, item.ProductID, item.Quantity); err != nil {
			zap.L().Error("Failed to release deducted stock",
				zap.Uint("product_id", item.ProductID),
				zap.Int("quantity", item.Quantity),
				zap.Error(err),
			)
		}
	}
}

func (s *OrderService) publishOrderPlaced(ctx context.Context, order *models.Order) {
	if s.publisher == nil {
		return
	}

	evt := events.OrderPlacedEvent{
		OrderID:     order.ID,
		OrderNumber: order.OrderNumber,
		UserID:      order.UserID,
		GuestID:     order.GuestID,
		TotalAmount: order.TotalAmount,
		Timestamp:   time.Now().UTC(),
	}
	for _, item := range order.OrderItems {
		evt.Items = append(evt.Items, events.OrderPlacedItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	if err := s.publisher.PublishOrderPlaced(ctx, evt); err != nil {
		zap.L().Warn("Failed to publish order-placed event",
			zap.String("order_number", order.OrderNumber),
			zap.Error(err),
		)
	}
}

// resolveNames looks up display names for the order's products at read time.
// Products that cannot be resolved are reported as "Unknown".
func (s *OrderService) resolveNames(ctx context.Context, order *models.Order) map[uint]string {
	names := make(map[uint]string, len(order.OrderItems))
	for _, item := range order.OrderItems {
		if _, seen := names[item.ProductID]; seen {
			continue
		}
		product, err := s.productRepo.GetByID(ctx, item.ProductID)
		if err != nil {
			continue
		}
		names[item.ProductID] = product.Name
	}
	return names
}

func (s *OrderService) toView(order *models.Order, productNames map[uint]string) *models.OrderView {
	items := make([]models.OrderItemView, 0, len(order.OrderItems))
	for _, item := range order.OrderItems {
		name, ok := productNames[item.ProductID]
		if !ok {
			name = "Unknown"
		}
		items = append(items, models.OrderItemView{
			ProductID:   item.ProductID,
			ProductName: name,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
		})
	}

	return &models.OrderView{
		ID:           order.ID,
		OrderNumber:  order.OrderNumber,
		UserID:       order.UserID,
		GuestID:      order.GuestID,
		CustomerName: order.CustomerName,
		PhoneNumber:  order.PhoneNumber,
		Address:      order.Address,
		OrderDate:    order.OrderDate,
		TotalAmount:  order.TotalAmount,
		Status:       order.Status,
		Items:        items,
	}
}

func totalPages(total int64, pageSize int) int64 {
	if pageSize == 0 {
		return 0
	}
	return (total + int64(pageSize) - 1) / int64(pageSize)
}
