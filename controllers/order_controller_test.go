package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/lehoangkhoi01/fashion-shop-be/models"
	"github.com/lehoangkhoi01/fashion-shop-be/repository"
	"github.com/lehoangkhoi01/fashion-shop-be/services"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// stubOrderRepo keeps placed orders in memory.
type stubOrderRepo struct {
	orders map[uint]*models.Order
	nextID uint
}

func newStubOrderRepo() *stubOrderRepo {
	return &stubOrderRepo{orders: make(map[uint]*models.Order), nextID: 1}
}

func (s *stubOrderRepo) GetByID(ctx context.Context, id uint) (*models.Order, error) {
	order, ok := s.orders[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *order
	return &cp, nil
}

func (s *stubOrderRepo) FindByUserID(ctx context.Context, userID uint) ([]models.Order, error) {
	var out []models.Order
	for id := uint(1); id < s.nextID; id++ {
		if order, ok := s.orders[id]; ok && order.UserID != nil && *order.UserID == userID {
			out = append(out, *order)
		}
	}
	return out, nil
}

func (s *stubOrderRepo) FindPaged(ctx context.Context, page, pageSize int) ([]models.Order, int64, error) {
	var all []models.Order
	for id := uint(1); id < s.nextID; id++ {
		if order, ok := s.orders[id]; ok {
			all = append(all, *order)
		}
	}
	return all, int64(len(all)), nil
}

func (s *stubOrderRepo) Create(ctx context.Context, order *models.Order) error {
	order.ID = s.nextID
	s.nextID++
	cp := *order
	s.orders[order.ID] = &cp
	return nil
}

// stubProductRepo serves a fixed product set.
type stubProductRepo struct {
	products map[uint]*models.Product
}

func (s *stubProductRepo) GetByID(ctx context.Context, id uint) (*models.Product, error) {
	p, ok := s.products[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (s *stubProductRepo) ListAll(ctx context.Context) ([]models.Product, error) {
	return nil, nil
}

func (s *stubProductRepo) ListPaged(ctx context.Context, page, pageSize int) ([]models.Product, int64, error) {
	return nil, 0, nil
}

func (s *stubProductRepo) Create(ctx context.Context, product *models.Product) error { return nil }
func (s *stubProductRepo) Update(ctx context.Context, product *models.Product) error { return nil }
func (s *stubProductRepo) SoftDelete(ctx context.Context, product *models.Product) error {
	return nil
}

// stubStock always has the configured quantities.
type stubStock struct {
	levels map[uint]int
}

func (s *stubStock) CheckStock(ctx context.Context, productID uint, quantity int) (bool, error) {
	return s.levels[productID] >= quantity, nil
}

func (s *stubStock) DeductStock(ctx context.Context, productID uint, quantity int) error {
	s.levels[productID] -= quantity
	return nil
}

func (s *stubStock) AddStock(ctx context.Context, productID uint, quantity int) error {
	s.levels[productID] += quantity
	return nil
}

func newOrderTestRouter(t *testing.T) (*gin.Engine, *stubOrderRepo) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	orderRepo := newStubOrderRepo()
	productRepo := &stubProductRepo{products: map[uint]*models.Product{}}
	shirt := &models.Product{Name: "Linen Shirt", Sku: "LS-001", Price: decimal.NewFromInt(100)}
	shirt.ID = 1
	productRepo.products[1] = shirt
	// Product 99 has stock but no catalog row, for the mid-workflow
	// lookup-failure path.
	stock := &stubStock{levels: map[uint]int{1: 10, 99: 5}}

	svc := services.NewOrderService(orderRepo, productRepo, stock, nil)
	ctrl := NewOrderController(svc)

	r := gin.New()
	r.POST("/orders", ctrl.PlaceOrder)
	r.GET("/orders/:id", ctrl.GetOrderByID)
	r.GET("/orders/user/:userId", ctrl.GetOrdersByUserID)
	return r, orderRepo
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestPlaceOrderEndpoint(t *testing.T) {
	r, _ := newOrderTestRouter(t)

	userID := uint(7)
	w := doJSON(t, r, http.MethodPost, "/orders", models.PlaceOrderRequest{
		UserID:       &userID,
		CustomerName: "John Doe",
		PhoneNumber:  "1234567890",
		Address:      "123 Main St",
		Items:        []models.OrderItemRequest{{ProductID: 1, Quantity: 2}},
	})

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var view models.OrderView
	if err := json.Unmarshal(w.Body.Bytes(), &view); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !view.TotalAmount.Equal(decimal.NewFromInt(200)) {
		t.Fatalf("expected total 200, got %s", view.TotalAmount)
	}
	if view.Status != models.OrderStatusPending {
		t.Fatalf("expected Pending, got %s", view.Status)
	}
}

func TestPlaceOrderEndpointEmptyItems(t *testing.T) {
	r, _ := newOrderTestRouter(t)

	userID := uint(7)
	w := doJSON(t, r, http.MethodPost, "/orders", models.PlaceOrderRequest{
		UserID:       &userID,
		CustomerName: "John Doe",
		PhoneNumber:  "1234567890",
		Address:      "123 Main St",
	})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
}

func TestPlaceOrderEndpointUnknownProduct(t *testing.T) {
	r, _ := newOrderTestRouter(t)

	// Mid-workflow lookup failure maps to 400, not 404.
	userID := uint(7)
	w := doJSON(t, r, http.MethodPost, "/orders", models.PlaceOrderRequest{
		UserID:       &userID,
		CustomerName: "John Doe",
		PhoneNumber:  "1234567890",
		Address:      "123 Main St",
		Items:        []models.OrderItemRequest{{ProductID: 99, Quantity: 1}},
	})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
}

func TestGetOrderEndpointNotFound(t *testing.T) {
	r, _ := newOrderTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/orders/123", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %s", w.Code, w.Body.String())
	}
}

func TestGetOrderEndpointBadID(t *testing.T) {
	r, _ := newOrderTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/orders/abc", nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
}

func TestGetOrdersByUserEndpoint(t *testing.T) {
	r, _ := newOrderTestRouter(t)

	userID := uint(7)
	w := doJSON(t, r, http.MethodPost, "/orders", models.PlaceOrderRequest{
		UserID:       &userID,
		CustomerName: "John Doe",
		PhoneNumber:  "1234567890",
		Address:      "123 Main St",
		Items:        []models.OrderItemRequest{{ProductID: 1, Quantity: 1}},
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	w = doJSON(t, r, http.MethodGet, "/orders/user/7", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var views []models.OrderView
	if err := json.Unmarshal(w.Body.Bytes(), &views); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(views) != 1 {
		t.Fatalf("expected 1 order, got %d", len(views))
	}
	if views[0].Items[0].ProductName != "Linen Shirt" {
		t.Fatalf("expected enriched product name, got %q", views[0].Items[0].ProductName)
	}
}
