package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order statuses. An order starts Pending and moves to Completed or
// Cancelled.
const (
	OrderStatusPending   = "Pending"
	OrderStatusCompleted = "Completed"
	OrderStatusCancelled = "Cancelled"
)

// Order is created only after stock was deducted for every line item.
// Exactly one of UserID / GuestID must be present.
type Order struct {
	BaseModel
	OrderNumber  string          `gorm:"size:64;uniqueIndex;not null" json:"order_number"`
	UserID       *uint           `gorm:"index" json:"user_id,omitempty"`
	GuestID      string          `gorm:"size:100" json:"guest_id,omitempty"`
	CustomerName string          `gorm:"size:200;not null" json:"customer_name"`
	PhoneNumber  string          `gorm:"size:50;not null" json:"phone_number"`
	Address      string          `gorm:"size:500;not null" json:"address"`
	OrderDate    time.Time       `json:"order_date"`
	TotalAmount  decimal.Decimal `gorm:"type:decimal(18,2)" json:"total_amount"`
	Status       string          `gorm:"size:50;not null;default:'Pending'" json:"status"`
	OrderItems   []OrderItem     `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
}

// OrderItem snapshots the unit price at order time; there is no update path
// once persisted.
type OrderItem struct {
	BaseModel
	OrderID   uint            `gorm:"not null;index" json:"-"`
	ProductID uint            `gorm:"not null" json:"product_id"`
	Quantity  int             `gorm:"not null" json:"quantity"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(18,2)" json:"unit_price"`
}

// PlaceOrderRequest is the payload for POST /orders.
type PlaceOrderRequest struct {
	UserID       *uint              `json:"user_id"`
	GuestID      string             `json:"guest_id" binding:"max=100"`
	CustomerName string             `json:"customer_name" binding:"required,max=200"`
	PhoneNumber  string             `json:"phone_number" binding:"required,max=50"`
	Address      string             `json:"address" binding:"required,max=500"`
	Items        []OrderItemRequest `json:"items" binding:"dive"`
}

// OrderItemRequest is one product/quantity pair within an order request.
type OrderItemRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required,min=1"`
}

// OrderView is the order projection returned to clients, with product names
// denormalized at read time.
type OrderView struct {
	ID           uint            `json:"id"`
	OrderNumber  string          `json:"order_number"`
	UserID       *uint           `json:"user_id,omitempty"`
	GuestID      string          `json:"guest_id,omitempty"`
	CustomerName string          `json:"customer_name"`
	PhoneNumber  string          `json:"phone_number"`
	Address      string          `json:"address"`
	OrderDate    time.Time       `json:"order_date"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
	Status       string          `json:"status"`
	Items        []OrderItemView `json:"items"`
}

// OrderItemView is one order line with its resolved product name.
type OrderItemView struct {
	ProductID   uint            `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}
