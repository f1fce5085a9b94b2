package handler

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/Sohidul-Islam/fashionglory-pos-server/internal/middleware"
	"github.com/Sohidul-Islam/fashionglory-pos-server/internal/model"
	"github.com/Sohidul-Islam/fashionglory-pos-server/internal/service"
	"github.com/Sohidul-Islam/fashionglory-pos-server/pkg/logger"
)

// ProductHandler exposes the tenant-scoped product routes
type ProductHandler struct {
	products *service.ProductService
}

func NewProductHandler(products *service.ProductService) *ProductHandler {
	return &ProductHandler{products: products}
}

func (h *ProductHandler) Create(c echo.Context) error {
	user, _ := middleware.CurrentUser(c)

	var product model.Product
	if err := c.Bind(&product); err != nil {
		return respondBadRequest(c, "Invalid request data")
	}

	created, err := h.products.Create(user.ID, product)
	if err != nil {
		return respondError(c, err, "Failed to create product")
	}

	logger.FromContext(c).Info("Product created",
		zap.Uint("user_id", user.ID),
		zap.Uint("product_id", created.ID),
		zap.String("sku", created.SKU))
	return respondCreated(c, "Product created successfully", created)
}

func (h *ProductHandler) GetAll(c echo.Context) error {
	user, _ := middleware.CurrentUser(c)

	filter := service.ProductFilter{
		Name:       c.QueryParam("name"),
		SKU:        c.QueryParam("sku"),
		CategoryID: c.QueryParam("categoryId"),
		BrandID:    c.QueryParam("brandId"),
		UnitID:     c.QueryParam("unitId"),
	}
	products, err := h.products.GetAll(user.ID, filter)
	if err != nil {
		return respondError(c, err, "Failed to retrieve products")
	}
	return respondOK(c, "Products retrieved successfully", products)
}

func (h *ProductHandler) GetByID(c echo.Context) error {
	user, _ := middleware.CurrentUser(c)
	id, ok := paramID(c, "id")
	if !ok {
		return respondBadRequest(c, "Invalid product id")
	}

	product, err := h.products.GetByID(user.ID, id)
	if err != nil {
		return respondError(c, err, "Product not found")
	}
	return respondOK(c, "Product retrieved successfully", product)
}

func (h *ProductHandler) Update(c echo.Context) error {
	user, _ := middleware.CurrentUser(c)
	id, ok := paramID(c, "id")
	if !ok {
		return respondBadRequest(c, "Invalid product id")
	}

	var update service.ProductUpdate
	if err := c.Bind(&update); err != nil {
		return respondBadRequest(c, "Invalid request data")
	}

	product, err := h.products.Update(user.ID, id, update)
	if err != nil {
		return respondError(c, err, "Failed to update product")
	}
	return respondOK(c, "Product updated successfully", product)
}

func (h *ProductHandler) Delete(c echo.Context) error {
	user, _ := middleware.CurrentUser(c)
	id, ok := paramID(c, "id")
	if !ok {
		return respondBadRequest(c, "Invalid product id")
	}

	if err := h.products.Delete(user.ID, id); err != nil {
		return respondError(c, err, "Failed to delete product")
	}
	return respondOK(c, "Product deleted successfully", nil)
}
