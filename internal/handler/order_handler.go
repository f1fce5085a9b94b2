package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/Sohidul-Islam/fashionglory-pos-server/internal/middleware"
	"github.com/Sohidul-Islam/fashionglory-pos-server/internal/service"
	"github.com/Sohidul-Islam/fashionglory-pos-server/pkg/logger"
)

// OrderHandler exposes order creation, retrieval and the reporting
// views derived from orders.
type OrderHandler struct {
	orders  *service.OrderService
	reports *service.ReportService
}

func NewOrderHandler(orders *service.OrderService, reports *service.ReportService) *OrderHandler {
	return &OrderHandler{orders: orders, reports: reports}
}

// Create handles POST /api/orders
func (h *OrderHandler) Create(c echo.Context) error {
	user, _ := middleware.CurrentUser(c)

	var req service.CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		return respondBadRequest(c, "Invalid request data")
	}

	order, err := h.orders.Create(user.ID, req)
	if err != nil {
		return respondError(c, err, "Failed to create order")
	}

	logger.FromContext(c).Info("Order created",
		zap.Uint("user_id", user.ID),
		zap.String("order_number", order.OrderNumber),
		zap.Float64("total", order.Total),
		zap.Int("items", len(order.Items)))
	return respondCreated(c, "Order created successfully", order)
}

// GetAll handles GET /api/orders
func (h *OrderHandler) GetAll(c echo.Context) error {
	user, _ := middleware.CurrentUser(c)

	filter := service.OrderFilter{
		Status:    c.QueryParam("status"),
		StartDate: queryDate(c, "startDate"),
		EndDate:   queryDate(c, "endDate"),
	}
	orders, err := h.orders.GetAll(user.ID, filter)
	if err != nil {
		return respondError(c, err, "Failed to retrieve orders")
	}
	return respondOK(c, "Orders retrieved successfully", orders)
}

// GetByID handles GET /api/orders/:orderId
func (h *OrderHandler) GetByID(c echo.Context) error {
	user, _ := middleware.CurrentUser(c)
	id, ok := paramID(c, "orderId")
	if !ok {
		return respondBadRequest(c, "Invalid order id")
	}

	order, err := h.orders.GetByID(user.ID, id)
	if err != nil {
		return respondError(c, err, "Order not found")
	}
	return respondOK(c, "Order retrieved successfully", order)
}

// Delete handles DELETE /api/orders/:orderId
func (h *OrderHandler) Delete(c echo.Context) error {
	user, _ := middleware.CurrentUser(c)
	id, ok := paramID(c, "orderId")
	if !ok {
		return respondBadRequest(c, "Invalid order id")
	}

	if err := h.orders.Delete(user.ID, id); err != nil {
		return respondError(c, err, "Failed to delete order")
	}
	return respondOK(c, "Order deleted successfully", nil)
}

// StockHistory handles GET /api/orders/stock-history
func (h *OrderHandler) StockHistory(c echo.Context) error {
	user, _ := middleware.CurrentUser(c)

	history, err := h.orders.GetStockHistory(user.ID, c.QueryParam("productId"), c.QueryParam("variantId"))
	if err != nil {
		return respondError(c, err, "Failed to retrieve stock history")
	}
	return respondOK(c, "Stock history retrieved successfully", history)
}

func (h *OrderHandler) dateRange(c echo.Context) service.DateRange {
	return service.DateRange{
		Start: queryDate(c, "startDate"),
		End:   queryDate(c, "endDate"),
	}
}

// DashboardStats handles GET /api/orders/reports/dashboard
func (h *OrderHandler) DashboardStats(c echo.Context) error {
	user, _ := middleware.CurrentUser(c)

	stats, err := h.reports.GetDashboardStats(user.ID, h.dateRange(c))
	if err != nil {
		return respondError(c, err, "Failed to compute dashboard stats")
	}
	return respondOK(c, "Dashboard stats retrieved successfully", stats)
}

// SalesReport handles GET /api/orders/reports/sales
func (h *OrderHandler) SalesReport(c echo.Context) error {
	user, _ := middleware.CurrentUser(c)

	report, err := h.reports.GetSalesReport(user.ID, h.dateRange(c))
	if err != nil {
		return respondError(c, err, "Failed to compute sales report")
	}
	return respondOK(c, "Sales report retrieved successfully", report)
}

// TopSellingItems handles GET /api/orders/reports/top-items
func (h *OrderHandler) TopSellingItems(c echo.Context) error {
	user, _ := middleware.CurrentUser(c)

	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	items, err := h.reports.GetTopSellingItems(user.ID, h.dateRange(c), limit)
	if err != nil {
		return respondError(c, err, "Failed to compute top selling items")
	}
	return respondOK(c, "Top selling items retrieved successfully", items)
}

// TopCustomers handles GET /api/orders/reports/top-customers
func (h *OrderHandler) TopCustomers(c echo.Context) error {
	user, _ := middleware.CurrentUser(c)

	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	customers, err := h.reports.GetTopCustomers(user.ID, h.dateRange(c), limit)
	if err != nil {
		return respondError(c, err, "Failed to compute top customers")
	}
	return respondOK(c, "Top customers retrieved successfully", customers)
}

// Invoice handles GET /api/orders/:orderId/invoice
func (h *OrderHandler) Invoice(c echo.Context) error {
	user, _ := middleware.CurrentUser(c)
	id, ok := paramID(c, "orderId")
	if !ok {
		return respondBadRequest(c, "Invalid order id")
	}

	invoice, err := h.reports.GenerateInvoice(user.ID, id)
	if err != nil {
		return respondError(c, err, "Failed to generate invoice")
	}
	return respondOK(c, "Invoice generated successfully", invoice)
}
