package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/Sohidul-Islam/fashionglory-pos-server/internal/middleware"
	"github.com/Sohidul-Islam/fashionglory-pos-server/internal/model"
	"github.com/Sohidul-Islam/fashionglory-pos-server/internal/service"
)

// ColorHandler exposes the tenant-scoped color routes
type ColorHandler struct {
	colors *service.ColorService
}

func NewColorHandler(colors *service.ColorService) *ColorHandler {
	return &ColorHandler{colors: colors}
}

func (h *ColorHandler) Create(c echo.Context) error {
	user, _ := middleware.CurrentUser(c)

	var color model.Color
	if err := c.Bind(&color); err != nil {
		return respondBadRequest(c, "Invalid request data")
	}

	created, err := h.colors.Create(user.ID, color)
	if err != nil {
		return respondError(c, err, "Failed to create color")
	}
	return respondCreated(c, "Color created successfully", created)
}

func (h *ColorHandler) GetAll(c echo.Context) error {
	user, _ := middleware.CurrentUser(c)

	colors, err := h.colors.GetAll(user.ID, c.QueryParam("name"))
	if err != nil {
		return respondError(c, err, "Failed to retrieve colors")
	}
	return respondOK(c, "Colors retrieved successfully", colors)
}

func (h *ColorHandler) GetByID(c echo.Context) error {
	user, _ := middleware.CurrentUser(c)
	id, ok := paramID(c, "id")
	if !ok {
		return respondBadRequest(c, "Invalid color id")
	}

	color, err := h.colors.GetByID(user.ID, id)
	if err != nil {
		return respondError(c, err, "Color not found")
	}
	return respondOK(c, "Color retrieved successfully", color)
}

func (h *ColorHandler) Update(c echo.Context) error {
	user, _ := middleware.CurrentUser(c)
	id, ok := paramID(c, "id")
	if !ok {
		return respondBadRequest(c, "Invalid color id")
	}

	var update service.ColorUpdate
	if err := c.Bind(&update); err != nil {
		return respondBadRequest(c, "Invalid request data")
	}

	color, err := h.colors.Update(user.ID, id, update)
	if err != nil {
		return respondError(c, err, "Failed to update color")
	}
	return respondOK(c, "Color updated successfully", color)
}

func (h *ColorHandler) Delete(c echo.Context) error {
	user, _ := middleware.CurrentUser(c)
	id, ok := paramID(c, "id")
	if !ok {
		return respondBadRequest(c, "Invalid color id")
	}

	if err := h.colors.Delete(user.ID, id); err != nil {
		return respondError(c, err, "Failed to delete color")
	}
	return respondOK(c, "Color deleted successfully", nil)
}
