package service

import (
	"sort"
	"time"

	"gorm.io/gorm"

	"github.com/Sohidul-Islam/fashionglory-pos-server/internal/model"
)

// ReportService computes read-only, tenant-scoped aggregations over
// orders and their line items. Profit per line is
// (unitPrice - costPrice) * quantity against the product or variant
// cost at report time.
type ReportService struct {
	db *gorm.DB
}

func NewReportService(db *gorm.DB) *ReportService {
	return &ReportService{db: db}
}

// DateRange bounds a report; either side may be nil
type DateRange struct {
	Start *time.Time
	End   *time.Time
}

// DashboardStats is the summary block for the back-office landing page
type DashboardStats struct {
	TotalOrders      int64   `json:"totalOrders"`
	TotalRevenue     float64 `json:"totalRevenue"`
	TotalProfit      float64 `json:"totalProfit"`
	ItemsSold        int     `json:"itemsSold"`
	LowStockProducts int64   `json:"lowStockProducts"`
}

// DailySales is one row of the sales report
type DailySales struct {
	Date       string  `json:"date"`
	OrderCount int     `json:"orderCount"`
	Revenue    float64 `json:"revenue"`
	Profit     float64 `json:"profit"`
}

// SalesReport summarizes orders per day and classifies lines
type SalesReport struct {
	Days        []DailySales `json:"days"`
	ProfitLines int          `json:"profitLines"`
	LossLines   int          `json:"lossLines"`
	TotalProfit float64      `json:"totalProfit"`
}

// TopItem ranks a product or variant by units sold
type TopItem struct {
	ProductID *uint   `json:"productId,omitempty"`
	VariantID *uint   `json:"variantId,omitempty"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	Revenue   float64 `json:"revenue"`
}

// TopCustomer ranks a customer by total spend
type TopCustomer struct {
	Name       string  `json:"name"`
	Phone      string  `json:"phone"`
	OrderCount int     `json:"orderCount"`
	TotalSpent float64 `json:"totalSpent"`
}

// InvoiceLine is one printable invoice row
type InvoiceLine struct {
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
	Subtotal    float64 `json:"subtotal"`
}

// Invoice is the printable view of a single order
type Invoice struct {
	OrderNumber   string        `json:"orderNumber"`
	Date          time.Time     `json:"date"`
	CustomerName  string        `json:"customerName"`
	CustomerPhone string        `json:"customerPhone"`
	Lines         []InvoiceLine `json:"lines"`
	Subtotal      float64       `json:"subtotal"`
	Tax           float64       `json:"tax"`
	Discount      float64       `json:"discount"`
	Total         float64       `json:"total"`
	PaymentMethod string        `json:"paymentMethod"`
}

func (s *ReportService) ordersInRange(userID uint, r DateRange) ([]model.Order, error) {
	query := s.db.Where("user_id = ?", userID).
		Preload("Items").Preload("Items.Product").Preload("Items.Variant")
	if r.Start != nil {
		query = query.Where("date >= ?", *r.Start)
	}
	if r.End != nil {
		query = query.Where("date <= ?", *r.End)
	}
	var orders []model.Order
	if err := query.Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func lineCost(item model.OrderItem) float64 {
	if item.Variant != nil {
		return item.Variant.CostPrice
	}
	if item.Product != nil {
		return item.Product.CostPrice
	}
	return 0
}

func lineProfit(item model.OrderItem) float64 {
	return (item.UnitPrice - lineCost(item)) * float64(item.Quantity)
}

// GetDashboardStats summarizes order volume, revenue, profit and
// low-stock products for the tenant.
func (s *ReportService) GetDashboardStats(userID uint, r DateRange) (*DashboardStats, error) {
	orders, err := s.ordersInRange(userID, r)
	if err != nil {
		return nil, err
	}

	stats := DashboardStats{TotalOrders: int64(len(orders))}
	for _, order := range orders {
		stats.TotalRevenue += order.Total
		for _, item := range order.Items {
			stats.ItemsSold += item.Quantity
			stats.TotalProfit += lineProfit(item)
		}
	}

	err = s.db.Model(&model.Product{}).
		Where("user_id = ? AND quantity <= alert_threshold", userID).
		Count(&stats.LowStockProducts).Error
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

// GetSalesReport groups orders per calendar day and classifies each
// line as profit or loss.
func (s *ReportService) GetSalesReport(userID uint, r DateRange) (*SalesReport, error) {
	orders, err := s.ordersInRange(userID, r)
	if err != nil {
		return nil, err
	}

	byDay := map[string]*DailySales{}
	report := SalesReport{}
	for _, order := range orders {
		day := order.Date.Format("2006-01-02")
		entry, ok := byDay[day]
		if !ok {
			entry = &DailySales{Date: day}
			byDay[day] = entry
		}
		entry.OrderCount++
		entry.Revenue += order.Total
		for _, item := range order.Items {
			profit := lineProfit(item)
			entry.Profit += profit
			report.TotalProfit += profit
			if profit >= 0 {
				report.ProfitLines++
			} else {
				report.LossLines++
			}
		}
	}

	for _, entry := range byDay {
		report.Days = append(report.Days, *entry)
	}
	sort.Slice(report.Days, func(i, j int) bool {
		return report.Days[i].Date < report.Days[j].Date
	})
	return &report, nil
}

// GetTopSellingItems ranks products and variants by units sold
func (s *ReportService) GetTopSellingItems(userID uint, r DateRange, limit int) ([]TopItem, error) {
	orders, err := s.ordersInRange(userID, r)
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = 10
	}

	type key struct {
		productID uint
		variantID uint
	}
	totals := map[key]*TopItem{}
	for _, order := range orders {
		for _, item := range order.Items {
			k := key{}
			if item.ProductID != nil {
				k.productID = *item.ProductID
			}
			if item.VariantID != nil {
				k.variantID = *item.VariantID
			}
			entry, ok := totals[k]
			if !ok {
				entry = &TopItem{ProductID: item.ProductID, VariantID: item.VariantID}
				if item.Variant != nil && item.Variant.Product != nil {
					entry.Name = item.Variant.Product.Name
				} else if item.Variant != nil {
					entry.Name = item.Variant.SKU
				} else if item.Product != nil {
					entry.Name = item.Product.Name
				}
				totals[k] = entry
			}
			entry.Quantity += item.Quantity
			entry.Revenue += item.Subtotal
		}
	}

	items := make([]TopItem, 0, len(totals))
	for _, entry := range totals {
		items = append(items, *entry)
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].Quantity > items[j].Quantity
	})
	if len(items) > limit {
		items = items[:limit]
	}
	return items, nil
}

// GetTopCustomers ranks customers by total spend. Customers are keyed
// by phone when present, else by name.
func (s *ReportService) GetTopCustomers(userID uint, r DateRange, limit int) ([]TopCustomer, error) {
	orders, err := s.ordersInRange(userID, r)
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = 10
	}

	totals := map[string]*TopCustomer{}
	for _, order := range orders {
		k := order.CustomerPhone
		if k == "" {
			k = order.CustomerName
		}
		if k == "" {
			continue
		}
		entry, ok := totals[k]
		if !ok {
			entry = &TopCustomer{Name: order.CustomerName, Phone: order.CustomerPhone}
			totals[k] = entry
		}
		entry.OrderCount++
		entry.TotalSpent += order.Total
	}

	customers := make([]TopCustomer, 0, len(totals))
	for _, entry := range totals {
		customers = append(customers, *entry)
	}
	sort.Slice(customers, func(i, j int) bool {
		return customers[i].TotalSpent > customers[j].TotalSpent
	})
	if len(customers) > limit {
		customers = customers[:limit]
	}
	return customers, nil
}

// GenerateInvoice builds the printable view of one order
func (s *ReportService) GenerateInvoice(userID, orderID uint) (*Invoice, error) {
	var order model.Order
	err := s.db.Where("id = ? AND user_id = ?", orderID, userID).
		Preload("Items").Preload("Items.Product").
		Preload("Items.Variant").Preload("Items.Variant.Product").
		First(&order).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}

	invoice := Invoice{
		OrderNumber:   order.OrderNumber,
		Date:          order.Date,
		CustomerName:  order.CustomerName,
		CustomerPhone: order.CustomerPhone,
		Subtotal:      order.Subtotal,
		Tax:           order.Tax,
		Discount:      order.Discount,
		Total:         order.Total,
		PaymentMethod: order.PaymentMethod,
	}
	for _, item := range order.Items {
		description := ""
		switch {
		case item.Variant != nil && item.Variant.Product != nil:
			description = item.Variant.Product.Name + " (" + item.Variant.SKU + ")"
		case item.Variant != nil:
			description = item.Variant.SKU
		case item.Product != nil:
			description = item.Product.Name
		}
		invoice.Lines = append(invoice.Lines, InvoiceLine{
			Description: description,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			Subtotal:    item.Subtotal,
		})
	}
	return &invoice, nil
}
