package service

import (
	"errors"
	"testing"
	"time"

	"github.com/Sohidul-Islam/fashionglory-pos-server/internal/model"
)

func TestDashboardStats(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "dash@example.com")
	orders := NewOrderService(db)
	reports := NewReportService(db)

	profitable := createTestProduct(t, db, user.ID, "SKU-P", 20, 50, 30)
	// Sold below cost, and left under its alert threshold
	losing := createTestProduct(t, db, user.ID, "SKU-L", 4, 10, 15)
	losing.AlertThreshold = 5
	if err := db.Save(losing).Error; err != nil {
		t.Fatalf("save product: %v", err)
	}

	if _, err := orders.Create(user.ID, CreateOrderRequest{
		Items:         []OrderItemRequest{{ProductID: &profitable.ID, Quantity: 2, UnitPrice: 50}},
		PaymentMethod: "cash",
	}); err != nil {
		t.Fatalf("create order: %v", err)
	}
	if _, err := orders.Create(user.ID, CreateOrderRequest{
		Items:         []OrderItemRequest{{ProductID: &losing.ID, Quantity: 1, UnitPrice: 10}},
		PaymentMethod: "cash",
	}); err != nil {
		t.Fatalf("create order: %v", err)
	}

	stats, err := reports.GetDashboardStats(user.ID, DateRange{})
	if err != nil {
		t.Fatalf("dashboard stats: %v", err)
	}

	if stats.TotalOrders != 2 {
		t.Errorf("totalOrders=%d, want 2", stats.TotalOrders)
	}
	if stats.TotalRevenue != 110 {
		t.Errorf("totalRevenue=%v, want 110", stats.TotalRevenue)
	}
	// (50-30)*2 + (10-15)*1 = 35
	if stats.TotalProfit != 35 {
		t.Errorf("totalProfit=%v, want 35", stats.TotalProfit)
	}
	if stats.ItemsSold != 3 {
		t.Errorf("itemsSold=%d, want 3", stats.ItemsSold)
	}
	if stats.LowStockProducts != 1 {
		t.Errorf("lowStockProducts=%d, want 1", stats.LowStockProducts)
	}
}

func TestSalesReportClassifiesLines(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "sales@example.com")
	orders := NewOrderService(db)
	reports := NewReportService(db)

	gainer := createTestProduct(t, db, user.ID, "SKU-G", 10, 30, 20)
	loser := createTestProduct(t, db, user.ID, "SKU-X", 10, 10, 12)

	if _, err := orders.Create(user.ID, CreateOrderRequest{
		Items: []OrderItemRequest{
			{ProductID: &gainer.ID, Quantity: 1, UnitPrice: 30},
			{ProductID: &loser.ID, Quantity: 2, UnitPrice: 10},
		},
		PaymentMethod: "cash",
	}); err != nil {
		t.Fatalf("create order: %v", err)
	}

	report, err := reports.GetSalesReport(user.ID, DateRange{})
	if err != nil {
		t.Fatalf("sales report: %v", err)
	}
	if len(report.Days) != 1 {
		t.Fatalf("days=%d, want 1", len(report.Days))
	}
	if report.Days[0].OrderCount != 1 || report.Days[0].Revenue != 50 {
		t.Errorf("day=%+v, want orderCount 1 revenue 50", report.Days[0])
	}
	if report.ProfitLines != 1 || report.LossLines != 1 {
		t.Errorf("profitLines=%d lossLines=%d, want 1/1", report.ProfitLines, report.LossLines)
	}
	// 10 + (-4) = 6
	if report.TotalProfit != 6 {
		t.Errorf("totalProfit=%v, want 6", report.TotalProfit)
	}
}

func TestTopSellingItemsAndCustomers(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "top@example.com")
	orders := NewOrderService(db)
	reports := NewReportService(db)

	hot := createTestProduct(t, db, user.ID, "SKU-HOT", 100, 10, 5)
	cold := createTestProduct(t, db, user.ID, "SKU-COLD", 100, 10, 5)

	for i := 0; i < 3; i++ {
		if _, err := orders.Create(user.ID, CreateOrderRequest{
			Customer:      CustomerInfo{Name: "Alice", Phone: "0100"},
			Items:         []OrderItemRequest{{ProductID: &hot.ID, Quantity: 5, UnitPrice: 10}},
			PaymentMethod: "cash",
		}); err != nil {
			t.Fatalf("create order: %v", err)
		}
	}
	if _, err := orders.Create(user.ID, CreateOrderRequest{
		Customer:      CustomerInfo{Name: "Bob"},
		Items:         []OrderItemRequest{{ProductID: &cold.ID, Quantity: 2, UnitPrice: 10}},
		PaymentMethod: "cash",
	}); err != nil {
		t.Fatalf("create order: %v", err)
	}

	items, err := reports.GetTopSellingItems(user.ID, DateRange{}, 10)
	if err != nil {
		t.Fatalf("top items: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("items=%d, want 2", len(items))
	}
	if items[0].Quantity != 15 || items[0].ProductID == nil || *items[0].ProductID != hot.ID {
		t.Errorf("top item=%+v, want 15 units of the hot product", items[0])
	}

	customers, err := reports.GetTopCustomers(user.ID, DateRange{}, 1)
	if err != nil {
		t.Fatalf("top customers: %v", err)
	}
	if len(customers) != 1 {
		t.Fatalf("customers=%d, want 1 after limit", len(customers))
	}
	if customers[0].Name != "Alice" || customers[0].OrderCount != 3 || customers[0].TotalSpent != 150 {
		t.Errorf("top customer=%+v", customers[0])
	}
}

func TestReportDateRangeBounds(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "range@example.com")
	orders := NewOrderService(db)
	reports := NewReportService(db)

	product := createTestProduct(t, db, user.ID, "SKU-R", 100, 10, 5)
	order, err := orders.Create(user.ID, CreateOrderRequest{
		Items:         []OrderItemRequest{{ProductID: &product.ID, Quantity: 1, UnitPrice: 10}},
		PaymentMethod: "cash",
	})
	if err != nil {
		t.Fatalf("create order: %v", err)
	}

	// Backdate the order a week
	weekAgo := time.Now().Add(-7 * 24 * time.Hour)
	if err := db.Model(&model.Order{}).Where("id = ?", order.ID).Update("date", weekAgo).Error; err != nil {
		t.Fatalf("backdate: %v", err)
	}

	stats, err := reports.GetDashboardStats(user.ID, DateRange{Start: timePtr(time.Now().Add(-24 * time.Hour))})
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.TotalOrders != 0 {
		t.Errorf("backdated order counted inside window: %d", stats.TotalOrders)
	}

	stats, err = reports.GetDashboardStats(user.ID, DateRange{Start: timePtr(time.Now().Add(-14 * 24 * time.Hour))})
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.TotalOrders != 1 {
		t.Errorf("order missed by wide window: %d", stats.TotalOrders)
	}
}

func TestGenerateInvoice(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "invoice@example.com")
	orders := NewOrderService(db)
	reports := NewReportService(db)

	product := createTestProduct(t, db, user.ID, "SKU-INV", 10, 40, 20)
	order, err := orders.Create(user.ID, CreateOrderRequest{
		Customer:      CustomerInfo{Name: "Carol", Phone: "0300"},
		Items:         []OrderItemRequest{{ProductID: &product.ID, Quantity: 2, UnitPrice: 40}},
		Tax:           8,
		PaymentMethod: "card",
	})
	if err != nil {
		t.Fatalf("create order: %v", err)
	}

	invoice, err := reports.GenerateInvoice(user.ID, order.ID)
	if err != nil {
		t.Fatalf("generate invoice: %v", err)
	}
	if invoice.OrderNumber != order.OrderNumber || invoice.CustomerName != "Carol" {
		t.Errorf("invoice header=%+v", invoice)
	}
	if len(invoice.Lines) != 1 {
		t.Fatalf("lines=%d, want 1", len(invoice.Lines))
	}
	if invoice.Lines[0].Description != product.Name || invoice.Lines[0].Subtotal != 80 {
		t.Errorf("line=%+v", invoice.Lines[0])
	}
	if invoice.Total != 88 {
		t.Errorf("total=%v, want 88", invoice.Total)
	}

	other := createTestUser(t, db, "peeker@example.com")
	if _, err := reports.GenerateInvoice(other.ID, order.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for foreign tenant, got %v", err)
	}
}
