package model

import (
	"time"
)

// Payment and order status values
const (
	PaymentStatusPending   = "pending"
	PaymentStatusCompleted = "completed"

	OrderStatusCompleted = "completed"
	OrderStatusCancelled = "cancelled"
)

// Order is a completed sale for a tenant
type Order struct {
	ID            uint        `json:"id" gorm:"primarykey"`
	OrderNumber   string      `json:"orderNumber" gorm:"type:varchar(64);uniqueIndex;not null"`
	Date          time.Time   `json:"date" gorm:"not null"`
	CustomerName  string      `json:"customerName" gorm:"type:varchar(255)"`
	CustomerPhone string      `json:"customerPhone" gorm:"type:varchar(50)"`
	Subtotal      float64     `json:"subtotal" gorm:"not null"`
	Tax           float64     `json:"tax" gorm:"default:0"`
	Discount      float64     `json:"discount" gorm:"default:0"`
	Total         float64     `json:"total" gorm:"not null"`
	PaymentMethod string      `json:"paymentMethod" gorm:"type:varchar(50);not null"`
	PaymentStatus string      `json:"paymentStatus" gorm:"type:varchar(20);default:'completed'"`
	Status        string      `json:"status" gorm:"type:varchar(20);default:'completed'"`
	UserID        uint        `json:"userId" gorm:"index;not null"`
	Items         []OrderItem `json:"items" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt     time.Time   `json:"createdAt"`
	UpdatedAt     time.Time   `json:"updatedAt"`
}

// OrderItem is a single line of an order. Exactly one of ProductID or
// VariantID is set; UnitPrice is a snapshot taken at sale time.
type OrderItem struct {
	ID        uint            `json:"id" gorm:"primarykey"`
	OrderID   uint            `json:"orderId" gorm:"index;not null"`
	ProductID *uint           `json:"productId" gorm:"index"`
	VariantID *uint           `json:"variantId" gorm:"index"`
	Quantity  int             `json:"quantity" gorm:"not null"`
	UnitPrice float64         `json:"unitPrice" gorm:"not null"`
	Subtotal  float64         `json:"subtotal" gorm:"not null"`
	Product   *Product        `json:"product,omitempty" gorm:"foreignKey:ProductID"`
	Variant   *ProductVariant `json:"variant,omitempty" gorm:"foreignKey:VariantID"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

// Stock history mutation types
const (
	StockTypeOrder      = "order"
	StockTypeRestock    = "restock"
	StockTypeAdjustment = "adjustment"
)

// StockHistory is an append-only audit row for every stock mutation.
// NewStock always equals PreviousStock minus Quantity for decrements
// (plus, for restocks) and is written in the same transaction as the
// stock change it records.
type StockHistory struct {
	ID            uint      `json:"id" gorm:"primarykey"`
	Type          string    `json:"type" gorm:"type:varchar(20);not null"`
	Quantity      int       `json:"quantity" gorm:"not null"`
	PreviousStock int       `json:"previousStock" gorm:"not null"`
	NewStock      int       `json:"newStock" gorm:"not null"`
	ProductID     *uint     `json:"productId" gorm:"index"`
	VariantID     *uint     `json:"variantId" gorm:"index"`
	OrderID       *uint     `json:"orderId" gorm:"index"`
	UserID        uint      `json:"userId" gorm:"index;not null"`
	Note          string    `json:"note" gorm:"type:text"`
	CreatedAt     time.Time `json:"createdAt"`
}
