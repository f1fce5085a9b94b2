package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/Sohidul-Islam/fashionglory-pos-server/internal/middleware"
	"github.com/Sohidul-Islam/fashionglory-pos-server/internal/model"
	"github.com/Sohidul-Islam/fashionglory-pos-server/internal/service"
)

// UnitHandler exposes the tenant-scoped measurement unit routes
type UnitHandler struct {
	units *service.UnitService
}

func NewUnitHandler(units *service.UnitService) *UnitHandler {
	return &UnitHandler{units: units}
}

func (h *UnitHandler) Create(c echo.Context) error {
	user, _ := middleware.CurrentUser(c)

	var unit model.Unit
	if err := c.Bind(&unit); err != nil {
		return respondBadRequest(c, "Invalid request data")
	}

	created, err := h.units.Create(user.ID, unit)
	if err != nil {
		return respondError(c, err, "Failed to create unit")
	}
	return respondCreated(c, "Unit created successfully", created)
}

func (h *UnitHandler) GetAll(c echo.Context) error {
	user, _ := middleware.CurrentUser(c)

	units, err := h.units.GetAll(user.ID, c.QueryParam("name"))
	if err != nil {
		return respondError(c, err, "Failed to retrieve units")
	}
	return respondOK(c, "Units retrieved successfully", units)
}

func (h *UnitHandler) GetByID(c echo.Context) error {
	user, _ := middleware.CurrentUser(c)
	id, ok := paramID(c, "id")
	if !ok {
		return respondBadRequest(c, "Invalid unit id")
	}

	unit, err := h.units.GetByID(user.ID, id)
	if err != nil {
		return respondError(c, err, "Unit not found")
	}
	return respondOK(c, "Unit retrieved successfully", unit)
}

func (h *UnitHandler) Update(c echo.Context) error {
	user, _ := middleware.CurrentUser(c)
	id, ok := paramID(c, "id")
	if !ok {
		return respondBadRequest(c, "Invalid unit id")
	}

	var update service.UnitUpdate
	if err := c.Bind(&update); err != nil {
		return respondBadRequest(c, "Invalid request data")
	}

	unit, err := h.units.Update(user.ID, id, update)
	if err != nil {
		return respondError(c, err, "Failed to update unit")
	}
	return respondOK(c, "Unit updated successfully", unit)
}

func (h *UnitHandler) Delete(c echo.Context) error {
	user, _ := middleware.CurrentUser(c)
	id, ok := paramID(c, "id")
	if !ok {
		return respondBadRequest(c, "Invalid unit id")
	}

	if err := h.units.Delete(user.ID, id); err != nil {
		return respondError(c, err, "Failed to delete unit")
	}
	return respondOK(c, "Unit deleted successfully", nil)
}
