package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Sohidul-Islam/fashionglory-pos-server/internal/model"
	"github.com/Sohidul-Islam/fashionglory-pos-server/prometheus"
)

// OrderService owns the order lifecycle, including the transactional
// stock decrement and its audit trail.
type OrderService struct {
	db *gorm.DB
}

func NewOrderService(db *gorm.DB) *OrderService {
	return &OrderService{db: db}
}

// OrderItemRequest is one cart line. Exactly one of ProductID or
// VariantID must be set.
type OrderItemRequest struct {
	ProductID *uint   `json:"productId"`
	VariantID *uint   `json:"variantId"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
}

// CustomerInfo carries the optional customer contact fields
type CustomerInfo struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// CreateOrderRequest is the cart payload accepted by Create
type CreateOrderRequest struct {
	Customer      CustomerInfo       `json:"customer"`
	Items         []OrderItemRequest `json:"items"`
	Tax           float64            `json:"tax"`
	Discount      float64            `json:"discount"`
	PaymentMethod string             `json:"paymentMethod"`
}

// OrderFilter holds the supported getAll query parameters
type OrderFilter struct {
	Status    string
	StartDate *time.Time
	EndDate   *time.Time
}

// Create atomically inserts the order, its line items, the stock
// decrements and one stock-history row per line. Any failure rolls the
// whole order back; no partial order is ever visible to readers.
func (s *OrderService) Create(userID uint, req CreateOrderRequest) (*model.Order, error) {
	if len(req.Items) == 0 {
		return nil, validationf("order must contain at least one item")
	}
	if req.PaymentMethod == "" {
		return nil, validationf("payment method is required")
	}
	for i, item := range req.Items {
		if item.Quantity <= 0 {
			return nil, validationf("item %d: quantity must be positive", i)
		}
		if (item.ProductID == nil) == (item.VariantID == nil) {
			return nil, validationf("item %d: exactly one of productId or variantId is required", i)
		}
	}

	var subtotal float64
	for _, item := range req.Items {
		subtotal += float64(item.Quantity) * item.UnitPrice
	}
	total := subtotal + req.Tax - req.Discount

	order := model.Order{
		OrderNumber:   generateOrderNumber(),
		Date:          time.Now(),
		CustomerName:  req.Customer.Name,
		CustomerPhone: req.Customer.Phone,
		Subtotal:      subtotal,
		Tax:           req.Tax,
		Discount:      req.Discount,
		Total:         total,
		PaymentMethod: req.PaymentMethod,
		PaymentStatus: model.PaymentStatusCompleted,
		Status:        model.OrderStatusCompleted,
		UserID:        userID,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		for _, item := range req.Items {
			orderItem := model.OrderItem{
				OrderID:   order.ID,
				ProductID: item.ProductID,
				VariantID: item.VariantID,
				Quantity:  item.Quantity,
				UnitPrice: item.UnitPrice,
				Subtotal:  float64(item.Quantity) * item.UnitPrice,
			}
			if err := tx.Create(&orderItem).Error; err != nil {
				return err
			}

			if item.VariantID != nil {
				if err := s.decrementVariantStock(tx, userID, *item.VariantID, item.Quantity, &order); err != nil {
					return err
				}
			} else {
				if err := s.decrementProductStock(tx, userID, *item.ProductID, item.Quantity, &order); err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrInsufficientStock) {
			prometheus.RecordInsufficientStock()
			prometheus.RecordOrderFailure("insufficient_stock")
		} else if errors.Is(err, ErrNotFound) {
			prometheus.RecordOrderFailure("item_not_found")
		} else {
			prometheus.RecordOrderFailure("error")
		}
		return nil, err
	}

	prometheus.RecordOrderCreated()
	if err := s.db.Preload("Items").First(&order, order.ID).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

// decrementProductStock performs a single conditional decrement so
// that concurrent orders against the same row cannot drive the
// quantity below zero, then records the mutation.
func (s *OrderService) decrementProductStock(tx *gorm.DB, userID, productID uint, quantity int, order *model.Order) error {
	result := tx.Model(&model.Product{}).
		Where("id = ? AND user_id = ? AND quantity >= ?", productID, userID, quantity).
		UpdateColumn("quantity", gorm.Expr("quantity - ?", quantity))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		var count int64
		if err := tx.Model(&model.Product{}).
			Where("id = ? AND user_id = ?", productID, userID).
			Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return fmt.Errorf("product %d: %w", productID, ErrNotFound)
		}
		return fmt.Errorf("product %d: %w", productID, ErrInsufficientStock)
	}

	var product model.Product
	if err := tx.First(&product, productID).Error; err != nil {
		return err
	}

	prometheus.RecordStockDecrement()
	history := model.StockHistory{
		Type:          model.StockTypeOrder,
		Quantity:      quantity,
		PreviousStock: product.Quantity + quantity,
		NewStock:      product.Quantity,
		ProductID:     &product.ID,
		OrderID:       &order.ID,
		UserID:        userID,
		Note:          fmt.Sprintf("Stock deducted for order %s", order.OrderNumber),
	}
	return tx.Create(&history).Error
}

// decrementVariantStock is the variant counterpart of
// decrementProductStock; the variant is its own stock unit and the
// parent product quantity is left untouched.
func (s *OrderService) decrementVariantStock(tx *gorm.DB, userID, variantID uint, quantity int, order *model.Order) error {
	result := tx.Model(&model.ProductVariant{}).
		Where("id = ? AND user_id = ? AND quantity >= ?", variantID, userID, quantity).
		UpdateColumn("quantity", gorm.Expr("quantity - ?", quantity))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		var count int64
		if err := tx.Model(&model.ProductVariant{}).
			Where("id = ? AND user_id = ?", variantID, userID).
			Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return fmt.Errorf("variant %d: %w", variantID, ErrNotFound)
		}
		return fmt.Errorf("variant %d: %w", variantID, ErrInsufficientStock)
	}

	var variant model.ProductVariant
	if err := tx.First(&variant, variantID).Error; err != nil {
		return err
	}

	prometheus.RecordStockDecrement()
	history := model.StockHistory{
		Type:          model.StockTypeOrder,
		Quantity:      quantity,
		PreviousStock: variant.Quantity + quantity,
		NewStock:      variant.Quantity,
		VariantID:     &variant.ID,
		OrderID:       &order.ID,
		UserID:        userID,
		Note:          fmt.Sprintf("Stock deducted for order %s", order.OrderNumber),
	}
	return tx.Create(&history).Error
}

func (s *OrderService) GetAll(userID uint, filter OrderFilter) ([]model.Order, error) {
	query := s.db.Where("user_id = ?", userID).
		Preload("Items").Preload("Items.Product").Preload("Items.Variant").
		Order("date DESC")

	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.StartDate != nil {
		query = query.Where("date >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		query = query.Where("date <= ?", *filter.EndDate)
	}

	var orders []model.Order
	if err := query.Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (s *OrderService) GetByID(userID, id uint) (*model.Order, error) {
	var order model.Order
	err := s.db.Where("id = ? AND user_id = ?", id, userID).
		Preload("Items").Preload("Items.Product").Preload("Items.Variant").
		First(&order).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &order, nil
}

// Delete hard-deletes the order and its items. Stock is not restored;
// the stock history keeps the audit trail.
func (s *OrderService) Delete(userID, id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var order model.Order
		err := tx.Where("id = ? AND user_id = ?", id, userID).First(&order).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		if err := tx.Where("order_id = ?", order.ID).Delete(&model.OrderItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&order).Error
	})
}

// GetStockHistory lists the tenant's stock mutations, newest first
func (s *OrderService) GetStockHistory(userID uint, productID, variantID string) ([]model.StockHistory, error) {
	query := s.db.Where("user_id = ?", userID).Order("created_at DESC")
	if productID != "" {
		query = query.Where("product_id = ?", productID)
	}
	if variantID != "" {
		query = query.Where("variant_id = ?", variantID)
	}
	var history []model.StockHistory
	if err := query.Find(&history).Error; err != nil {
		return nil, err
	}
	return history, nil
}

// generateOrderNumber builds a unique, time-sortable order number with
// a random suffix to avoid same-second collisions.
func generateOrderNumber() string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
	return fmt.Sprintf("ORD-%s-%s", time.Now().Format("20060102150405"), suffix)
}
