package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/Sohidul-Islam/fashionglory-pos-server/internal/middleware"
	"github.com/Sohidul-Islam/fashionglory-pos-server/internal/model"
	"github.com/Sohidul-Islam/fashionglory-pos-server/internal/service"
)

// BrandHandler exposes the tenant-scoped brand routes
type BrandHandler struct {
	brands *service.BrandService
}

func NewBrandHandler(brands *service.BrandService) *BrandHandler {
	return &BrandHandler{brands: brands}
}

func (h *BrandHandler) Create(c echo.Context) error {
	user, _ := middleware.CurrentUser(c)

	var brand model.Brand
	if err := c.Bind(&brand); err != nil {
		return respondBadRequest(c, "Invalid request data")
	}

	created, err := h.brands.Create(user.ID, brand)
	if err != nil {
		return respondError(c, err, "Failed to create brand")
	}
	return respondCreated(c, "Brand created successfully", created)
}

func (h *BrandHandler) GetAll(c echo.Context) error {
	user, _ := middleware.CurrentUser(c)

	brands, err := h.brands.GetAll(user.ID, c.QueryParam("name"))
	if err != nil {
		return respondError(c, err, "Failed to retrieve brands")
	}
	return respondOK(c, "Brands retrieved successfully", brands)
}

func (h *BrandHandler) GetByID(c echo.Context) error {
	user, _ := middleware.CurrentUser(c)
	id, ok := paramID(c, "id")
	if !ok {
		return respondBadRequest(c, "Invalid brand id")
	}

	brand, err := h.brands.GetByID(user.ID, id)
	if err != nil {
		return respondError(c, err, "Brand not found")
	}
	return respondOK(c, "Brand retrieved successfully", brand)
}

func (h *BrandHandler) Update(c echo.Context) error {
	user, _ := middleware.CurrentUser(c)
	id, ok := paramID(c, "id")
	if !ok {
		return respondBadRequest(c, "Invalid brand id")
	}

	var update service.BrandUpdate
	if err := c.Bind(&update); err != nil {
		return respondBadRequest(c, "Invalid request data")
	}

	brand, err := h.brands.Update(user.ID, id, update)
	if err != nil {
		return respondError(c, err, "Failed to update brand")
	}
	return respondOK(c, "Brand updated successfully", brand)
}

func (h *BrandHandler) Delete(c echo.Context) error {
	user, _ := middleware.CurrentUser(c)
	id, ok := paramID(c, "id")
	if !ok {
		return respondBadRequest(c, "Invalid brand id")
	}

	if err := h.brands.Delete(user.ID, id); err != nil {
		return respondError(c, err, "Failed to delete brand")
	}
	return respondOK(c, "Brand deleted successfully", nil)
}
