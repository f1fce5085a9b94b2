package handler

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/Sohidul-Islam/fashionglory-pos-server/internal/middleware"
	"github.com/Sohidul-Islam/fashionglory-pos-server/internal/service"
	"github.com/Sohidul-Islam/fashionglory-pos-server/pkg/logger"
)

// UserRoleHandler exposes the child-user (sub-account) routes
type UserRoleHandler struct {
	userRoles *service.UserRoleService
}

func NewUserRoleHandler(userRoles *service.UserRoleService) *UserRoleHandler {
	return &UserRoleHandler{userRoles: userRoles}
}

// AddChildUser handles POST /api/users/child-user
func (h *UserRoleHandler) AddChildUser(c echo.Context) error {
	user, _ := middleware.CurrentUser(c)

	var req service.ChildUserRequest
	if err := c.Bind(&req); err != nil {
		return respondBadRequest(c, "Invalid request data")
	}

	userRole, err := h.userRoles.AddChildUser(user.ID, req)
	if err != nil {
		return respondError(c, err, "Failed to create child user")
	}

	logger.FromContext(c).Info("Child user created",
		zap.Uint("parent_user_id", user.ID),
		zap.String("role", userRole.Role))
	return respondCreated(c, "Child user created successfully", echo.Map{"role": userRole})
}

// UpdateUserRole handles PUT /api/users/child-user/:userId
func (h *UserRoleHandler) UpdateUserRole(c echo.Context) error {
	user, _ := middleware.CurrentUser(c)
	id, ok := paramID(c, "userId")
	if !ok {
		return respondBadRequest(c, "Invalid user id")
	}

	var update service.UserRoleUpdate
	if err := c.Bind(&update); err != nil {
		return respondBadRequest(c, "Invalid request data")
	}

	userRole, err := h.userRoles.UpdateUserRole(user.ID, id, update)
	if err != nil {
		return respondError(c, err, "Failed to update user role")
	}
	return respondOK(c, "User role updated successfully", userRole)
}

// GetChildUsers handles GET /api/users/child-users
func (h *UserRoleHandler) GetChildUsers(c echo.Context) error {
	user, _ := middleware.CurrentUser(c)

	roles, err := h.userRoles.GetChildUsers(user.ID, c.QueryParam("role"), c.QueryParam("status"))
	if err != nil {
		return respondError(c, err, "Failed to retrieve child users")
	}
	return respondOK(c, "Child users retrieved successfully", roles)
}
