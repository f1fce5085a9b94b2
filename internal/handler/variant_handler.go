package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/Sohidul-Islam/fashionglory-pos-server/internal/middleware"
	"github.com/Sohidul-Islam/fashionglory-pos-server/internal/model"
	"github.com/Sohidul-Islam/fashionglory-pos-server/internal/service"
)

// VariantHandler exposes the tenant-scoped product variant routes
type VariantHandler struct {
	variants *service.VariantService
}

func NewVariantHandler(variants *service.VariantService) *VariantHandler {
	return &VariantHandler{variants: variants}
}

func (h *VariantHandler) Create(c echo.Context) error {
	user, _ := middleware.CurrentUser(c)

	var variant model.ProductVariant
	if err := c.Bind(&variant); err != nil {
		return respondBadRequest(c, "Invalid request data")
	}

	created, err := h.variants.Create(user.ID, variant)
	if err != nil {
		return respondError(c, err, "Failed to create product variant")
	}
	return respondCreated(c, "Product variant created successfully", created)
}

func (h *VariantHandler) GetAll(c echo.Context) error {
	user, _ := middleware.CurrentUser(c)

	variants, err := h.variants.GetAll(user.ID, c.QueryParam("productId"))
	if err != nil {
		return respondError(c, err, "Failed to retrieve product variants")
	}
	return respondOK(c, "Product variants retrieved successfully", variants)
}

func (h *VariantHandler) GetByID(c echo.Context) error {
	user, _ := middleware.CurrentUser(c)
	id, ok := paramID(c, "id")
	if !ok {
		return respondBadRequest(c, "Invalid variant id")
	}

	variant, err := h.variants.GetByID(user.ID, id)
	if err != nil {
		return respondError(c, err, "Product variant not found")
	}
	return respondOK(c, "Product variant retrieved successfully", variant)
}

func (h *VariantHandler) Update(c echo.Context) error {
	user, _ := middleware.CurrentUser(c)
	id, ok := paramID(c, "id")
	if !ok {
		return respondBadRequest(c, "Invalid variant id")
	}

	var update service.VariantUpdate
	if err := c.Bind(&update); err != nil {
		return respondBadRequest(c, "Invalid request data")
	}

	variant, err := h.variants.Update(user.ID, id, update)
	if err != nil {
		return respondError(c, err, "Failed to update product variant")
	}
	return respondOK(c, "Product variant updated successfully", variant)
}

// UpdateStock handles POST /api/variants/stock/:id
func (h *VariantHandler) UpdateStock(c echo.Context) error {
	user, _ := middleware.CurrentUser(c)
	id, ok := paramID(c, "id")
	if !ok {
		return respondBadRequest(c, "Invalid variant id")
	}

	var req struct {
		Quantity *int `json:"quantity"`
	}
	if err := c.Bind(&req); err != nil || req.Quantity == nil || *req.Quantity < 0 {
		return respondBadRequest(c, "A non-negative quantity is required")
	}

	variant, err := h.variants.UpdateStock(user.ID, id, *req.Quantity)
	if err != nil {
		return respondError(c, err, "Failed to update stock")
	}
	return respondOK(c, "Stock updated successfully", variant)
}

func (h *VariantHandler) Delete(c echo.Context) error {
	user, _ := middleware.CurrentUser(c)
	id, ok := paramID(c, "id")
	if !ok {
		return respondBadRequest(c, "Invalid variant id")
	}

	if err := h.variants.Delete(user.ID, id); err != nil {
		return respondError(c, err, "Failed to delete product variant")
	}
	return respondOK(c, "Product variant deleted successfully", nil)
}
