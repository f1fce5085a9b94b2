package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/Sohidul-Islam/fashionglory-pos-server/internal/middleware"
	"github.com/Sohidul-Islam/fashionglory-pos-server/internal/model"
	"github.com/Sohidul-Islam/fashionglory-pos-server/internal/service"
)

// SizeHandler exposes the tenant-scoped size routes
type SizeHandler struct {
	sizes *service.SizeService
}

func NewSizeHandler(sizes *service.SizeService) *SizeHandler {
	return &SizeHandler{sizes: sizes}
}

func (h *SizeHandler) Create(c echo.Context) error {
	user, _ := middleware.CurrentUser(c)

	var size model.Size
	if err := c.Bind(&size); err != nil {
		return respondBadRequest(c, "Invalid request data")
	}

	created, err := h.sizes.Create(user.ID, size)
	if err != nil {
		return respondError(c, err, "Failed to create size")
	}
	return respondCreated(c, "Size created successfully", created)
}

func (h *SizeHandler) GetAll(c echo.Context) error {
	user, _ := middleware.CurrentUser(c)

	sizes, err := h.sizes.GetAll(user.ID, c.QueryParam("name"))
	if err != nil {
		return respondError(c, err, "Failed to retrieve sizes")
	}
	return respondOK(c, "Sizes retrieved successfully", sizes)
}

func (h *SizeHandler) GetByID(c echo.Context) error {
	user, _ := middleware.CurrentUser(c)
	id, ok := paramID(c, "id")
	if !ok {
		return respondBadRequest(c, "Invalid size id")
	}

	size, err := h.sizes.GetByID(user.ID, id)
	if err != nil {
		return respondError(c, err, "Size not found")
	}
	return respondOK(c, "Size retrieved successfully", size)
}

func (h *SizeHandler) Update(c echo.Context) error {
	user, _ := middleware.CurrentUser(c)
	id, ok := paramID(c, "id")
	if !ok {
		return respondBadRequest(c, "Invalid size id")
	}

	var update service.SizeUpdate
	if err := c.Bind(&update); err != nil {
		return respondBadRequest(c, "Invalid request data")
	}

	size, err := h.sizes.Update(user.ID, id, update)
	if err != nil {
		return respondError(c, err, "Failed to update size")
	}
	return respondOK(c, "Size updated successfully", size)
}

func (h *SizeHandler) Delete(c echo.Context) error {
	user, _ := middleware.CurrentUser(c)
	id, ok := paramID(c, "id")
	if !ok {
		return respondBadRequest(c, "Invalid size id")
	}

	if err := h.sizes.Delete(user.ID, id); err != nil {
		return respondError(c, err, "Failed to delete size")
	}
	return respondOK(c, "Size deleted successfully", nil)
}
