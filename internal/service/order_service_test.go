package service

import (
	"errors"
	"strings"
	"testing"

	"github.com/Sohidul-Islam/fashionglory-pos-server/internal/model"
)

func TestCreateOrderDecrementsStockAndWritesHistory(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "orders@example.com")
	product := createTestProduct(t, db, user.ID, "SKU-1", 10, 50, 30)
	svc := NewOrderService(db)

	order, err := svc.Create(user.ID, CreateOrderRequest{
		Customer:      CustomerInfo{Name: "Alice", Phone: "0123"},
		Items:         []OrderItemRequest{{ProductID: &product.ID, Quantity: 3, UnitPrice: 50}},
		Tax:           5,
		Discount:      2,
		PaymentMethod: "cash",
	})
	if err != nil {
		t.Fatalf("create order: %v", err)
	}

	if !strings.HasPrefix(order.OrderNumber, "ORD-") {
		t.Errorf("unexpected order number %q", order.OrderNumber)
	}
	if order.Subtotal != 150 || order.Total != 153 {
		t.Errorf("subtotal=%v total=%v, want 150/153", order.Subtotal, order.Total)
	}
	if len(order.Items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(order.Items))
	}

	var reloaded model.Product
	if err := db.First(&reloaded, product.ID).Error; err != nil {
		t.Fatalf("reload product: %v", err)
	}
	if reloaded.Quantity != 7 {
		t.Errorf("quantity=%d, want 7", reloaded.Quantity)
	}

	var history model.StockHistory
	if err := db.Where("product_id = ?", product.ID).First(&history).Error; err != nil {
		t.Fatalf("load stock history: %v", err)
	}
	if history.Type != model.StockTypeOrder {
		t.Errorf("history type=%q, want %q", history.Type, model.StockTypeOrder)
	}
	if history.PreviousStock != 10 || history.NewStock != 7 || history.Quantity != 3 {
		t.Errorf("history prev=%d new=%d qty=%d, want 10/7/3",
			history.PreviousStock, history.NewStock, history.Quantity)
	}
	if history.OrderID == nil || *history.OrderID != order.ID {
		t.Errorf("history not linked to order %d", order.ID)
	}
}

func TestCreateOrderInsufficientStockRollsBack(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "rollback@example.com")
	first := createTestProduct(t, db, user.ID, "SKU-A", 5, 20, 10)
	second := createTestProduct(t, db, user.ID, "SKU-B", 1, 40, 25)
	svc := NewOrderService(db)

	_, err := svc.Create(user.ID, CreateOrderRequest{
		Items: []OrderItemRequest{
			{ProductID: &first.ID, Quantity: 2, UnitPrice: 20},
			{ProductID: &second.ID, Quantity: 3, UnitPrice: 40},
		},
		PaymentMethod: "cash",
	})
	if !errors.Is(err, ErrInsufficientStock) {
		t.Fatalf("expected ErrInsufficientStock, got %v", err)
	}

	var reloaded model.Product
	if err := db.First(&reloaded, first.ID).Error; err != nil {
		t.Fatalf("reload product: %v", err)
	}
	if reloaded.Quantity != 5 {
		t.Errorf("first product quantity=%d, want 5 after rollback", reloaded.Quantity)
	}

	var orders, items, history int64
	db.Model(&model.Order{}).Count(&orders)
	db.Model(&model.OrderItem{}).Count(&items)
	db.Model(&model.StockHistory{}).Count(&history)
	if orders != 0 || items != 0 || history != 0 {
		t.Errorf("leftover rows after rollback: orders=%d items=%d history=%d", orders, items, history)
	}
}

func TestCreateOrderUnknownProduct(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "unknown@example.com")
	svc := NewOrderService(db)

	_, err := svc.Create(user.ID, CreateOrderRequest{
		Items:         []OrderItemRequest{{ProductID: uintPtr(999), Quantity: 1, UnitPrice: 10}},
		PaymentMethod: "cash",
	})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCreateOrderValidation(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "validation@example.com")
	product := createTestProduct(t, db, user.ID, "SKU-V", 10, 10, 5)
	svc := NewOrderService(db)

	cases := []struct {
		name string
		req  CreateOrderRequest
	}{
		{"empty cart", CreateOrderRequest{PaymentMethod: "cash"}},
		{"missing payment method", CreateOrderRequest{
			Items: []OrderItemRequest{{ProductID: &product.ID, Quantity: 1, UnitPrice: 10}},
		}},
		{"zero quantity", CreateOrderRequest{
			Items:         []OrderItemRequest{{ProductID: &product.ID, Quantity: 0, UnitPrice: 10}},
			PaymentMethod: "cash",
		}},
		{"neither product nor variant", CreateOrderRequest{
			Items:         []OrderItemRequest{{Quantity: 1, UnitPrice: 10}},
			PaymentMethod: "cash",
		}},
		{"both product and variant", CreateOrderRequest{
			Items:         []OrderItemRequest{{ProductID: &product.ID, VariantID: uintPtr(1), Quantity: 1, UnitPrice: 10}},
			PaymentMethod: "cash",
		}},
	}
	for _, tc := range cases {
		if _, err := svc.Create(user.ID, tc.req); !errors.Is(err, ErrValidation) {
			t.Errorf("%s: expected ErrValidation, got %v", tc.name, err)
		}
	}
}

func TestCreateOrderVariantStockLeavesProductUntouched(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "variants@example.com")
	product := createTestProduct(t, db, user.ID, "SKU-VAR", 10, 100, 60)

	color := model.Color{Name: "Red", UserID: user.ID}
	size := model.Size{Name: "L", UserID: user.ID}
	if err := db.Create(&color).Error; err != nil {
		t.Fatalf("color: %v", err)
	}
	if err := db.Create(&size).Error; err != nil {
		t.Fatalf("size: %v", err)
	}
	variant := model.ProductVariant{
		ProductID: product.ID, ColorID: color.ID, SizeID: size.ID,
		SKU: "SKU-VAR-RL", Price: 110, CostPrice: 65, Quantity: 4, UserID: user.ID,
	}
	if err := db.Create(&variant).Error; err != nil {
		t.Fatalf("variant: %v", err)
	}

	svc := NewOrderService(db)
	_, err := svc.Create(user.ID, CreateOrderRequest{
		Items:         []OrderItemRequest{{VariantID: &variant.ID, Quantity: 4, UnitPrice: 110}},
		PaymentMethod: "card",
	})
	if err != nil {
		t.Fatalf("create order: %v", err)
	}

	var reloadedVariant model.ProductVariant
	if err := db.First(&reloadedVariant, variant.ID).Error; err != nil {
		t.Fatalf("reload variant: %v", err)
	}
	if reloadedVariant.Quantity != 0 {
		t.Errorf("variant quantity=%d, want 0", reloadedVariant.Quantity)
	}

	var reloadedProduct model.Product
	if err := db.First(&reloadedProduct, product.ID).Error; err != nil {
		t.Fatalf("reload product: %v", err)
	}
	if reloadedProduct.Quantity != 10 {
		t.Errorf("parent product quantity=%d, want 10", reloadedProduct.Quantity)
	}

	// A second order against the drained variant must fail
	_, err = svc.Create(user.ID, CreateOrderRequest{
		Items:         []OrderItemRequest{{VariantID: &variant.ID, Quantity: 1, UnitPrice: 110}},
		PaymentMethod: "card",
	})
	if !errors.Is(err, ErrInsufficientStock) {
		t.Fatalf("expected ErrInsufficientStock, got %v", err)
	}
}

func TestOrderTenantIsolation(t *testing.T) {
	db := setupTestDB(t)
	owner := createTestUser(t, db, "owner@example.com")
	other := createTestUser(t, db, "other@example.com")
	product := createTestProduct(t, db, owner.ID, "SKU-ISO", 10, 10, 5)
	svc := NewOrderService(db)

	order, err := svc.Create(owner.ID, CreateOrderRequest{
		Items:         []OrderItemRequest{{ProductID: &product.ID, Quantity: 1, UnitPrice: 10}},
		PaymentMethod: "cash",
	})
	if err != nil {
		t.Fatalf("create order: %v", err)
	}

	if _, err := svc.GetByID(other.ID, order.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for foreign tenant, got %v", err)
	}
	orders, err := svc.GetAll(other.ID, OrderFilter{})
	if err != nil {
		t.Fatalf("get all: %v", err)
	}
	if len(orders) != 0 {
		t.Errorf("foreign tenant sees %d orders, want 0", len(orders))
	}

	// Ordering against another tenant's product must not decrement it
	_, err = svc.Create(other.ID, CreateOrderRequest{
		Items:         []OrderItemRequest{{ProductID: &product.ID, Quantity: 1, UnitPrice: 10}},
		PaymentMethod: "cash",
	})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteOrderKeepsStockHistory(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "delete@example.com")
	product := createTestProduct(t, db, user.ID, "SKU-DEL", 10, 10, 5)
	svc := NewOrderService(db)

	order, err := svc.Create(user.ID, CreateOrderRequest{
		Items:         []OrderItemRequest{{ProductID: &product.ID, Quantity: 2, UnitPrice: 10}},
		PaymentMethod: "cash",
	})
	if err != nil {
		t.Fatalf("create order: %v", err)
	}

	if err := svc.Delete(user.ID, order.ID); err != nil {
		t.Fatalf("delete order: %v", err)
	}
	if _, err := svc.GetByID(user.ID, order.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}

	var items int64
	db.Model(&model.OrderItem{}).Where("order_id = ?", order.ID).Count(&items)
	if items != 0 {
		t.Errorf("order items remain after delete: %d", items)
	}

	history, err := svc.GetStockHistory(user.ID, "", "")
	if err != nil {
		t.Fatalf("stock history: %v", err)
	}
	if len(history) != 1 {
		t.Errorf("stock history rows=%d, want 1 (audit trail survives delete)", len(history))
	}

	// Stock is not restored on delete
	var reloaded model.Product
	if err := db.First(&reloaded, product.ID).Error; err != nil {
		t.Fatalf("reload product: %v", err)
	}
	if reloaded.Quantity != 8 {
		t.Errorf("quantity=%d, want 8", reloaded.Quantity)
	}
}

func TestGetStockHistoryFilters(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "history@example.com")
	first := createTestProduct(t, db, user.ID, "SKU-H1", 10, 10, 5)
	second := createTestProduct(t, db, user.ID, "SKU-H2", 10, 10, 5)
	svc := NewOrderService(db)

	for _, p := range []*model.Product{first, second} {
		if _, err := svc.Create(user.ID, CreateOrderRequest{
			Items:         []OrderItemRequest{{ProductID: &p.ID, Quantity: 1, UnitPrice: 10}},
			PaymentMethod: "cash",
		}); err != nil {
			t.Fatalf("create order: %v", err)
		}
	}

	all, err := svc.GetStockHistory(user.ID, "", "")
	if err != nil {
		t.Fatalf("stock history: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("history rows=%d, want 2", len(all))
	}

	filtered, err := svc.GetStockHistory(user.ID, "1", "")
	if err != nil {
		t.Fatalf("filtered history: %v", err)
	}
	if len(filtered) != 1 || filtered[0].ProductID == nil || *filtered[0].ProductID != first.ID {
		t.Errorf("filter by product returned %d rows", len(filtered))
	}
}
