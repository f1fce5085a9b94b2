package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/Sohidul-Islam/fashionglory-pos-server/internal/middleware"
	"github.com/Sohidul-Islam/fashionglory-pos-server/internal/model"
	"github.com/Sohidul-Islam/fashionglory-pos-server/internal/service"
)

// CategoryHandler exposes the tenant-scoped category routes
type CategoryHandler struct {
	categories *service.CategoryService
}

func NewCategoryHandler(categories *service.CategoryService) *CategoryHandler {
	return &CategoryHandler{categories: categories}
}

func (h *CategoryHandler) Create(c echo.Context) error {
	user, _ := middleware.CurrentUser(c)

	var category model.Category
	if err := c.Bind(&category); err != nil {
		return respondBadRequest(c, "Invalid request data")
	}

	created, err := h.categories.Create(user.ID, category)
	if err != nil {
		return respondError(c, err, "Failed to create category")
	}
	return respondCreated(c, "Category created successfully", created)
}

func (h *CategoryHandler) GetAll(c echo.Context) error {
	user, _ := middleware.CurrentUser(c)

	categories, err := h.categories.GetAll(user.ID, c.QueryParam("name"))
	if err != nil {
		return respondError(c, err, "Failed to retrieve categories")
	}
	return respondOK(c, "Categories retrieved successfully", categories)
}

func (h *CategoryHandler) GetByID(c echo.Context) error {
	user, _ := middleware.CurrentUser(c)
	id, ok := paramID(c, "id")
	if !ok {
		return respondBadRequest(c, "Invalid category id")
	}

	category, err := h.categories.GetByID(user.ID, id)
	if err != nil {
		return respondError(c, err, "Category not found")
	}
	return respondOK(c, "Category retrieved successfully", category)
}

func (h *CategoryHandler) Update(c echo.Context) error {
	user, _ := middleware.CurrentUser(c)
	id, ok := paramID(c, "id")
	if !ok {
		return respondBadRequest(c, "Invalid category id")
	}

	var update service.CategoryUpdate
	if err := c.Bind(&update); err != nil {
		return respondBadRequest(c, "Invalid request data")
	}

	category, err := h.categories.Update(user.ID, id, update)
	if err != nil {
		return respondError(c, err, "Failed to update category")
	}
	return respondOK(c, "Category updated successfully", category)
}

func (h *CategoryHandler) Delete(c echo.Context) error {
	user, _ := middleware.CurrentUser(c)
	id, ok := paramID(c, "id")
	if !ok {
		return respondBadRequest(c, "Invalid category id")
	}

	if err := h.categories.Delete(user.ID, id); err != nil {
		return respondError(c, err, "Failed to delete category")
	}
	return respondOK(c, "Category deleted successfully", nil)
}
