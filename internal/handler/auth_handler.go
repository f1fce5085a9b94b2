package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/Sohidul-Islam/fashionglory-pos-server/internal/middleware"
	"github.com/Sohidul-Islam/fashionglory-pos-server/internal/service"
	"github.com/Sohidul-Islam/fashionglory-pos-server/pkg/logger"
)

// AuthHandler exposes registration, login and profile routes
type AuthHandler struct {
	auth *service.AuthService
}

func NewAuthHandler(auth *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Register handles POST /api/register
func (h *AuthHandler) Register(c echo.Context) error {
	var req service.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return respondBadRequest(c, "Invalid request data")
	}

	user, err := h.auth.Register(req)
	if err != nil {
		return respondError(c, err, "Registration failed")
	}

	logger.FromContext(c).Info("User registered",
		zap.Uint("user_id", user.ID),
		zap.String("email", user.Email))
	return respondCreated(c, "User registered successfully", user)
}

// Login handles POST /api/login
func (h *AuthHandler) Login(c echo.Context) error {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.Bind(&req); err != nil {
		return respondBadRequest(c, "Invalid request data")
	}

	user, token, err := h.auth.Login(req.Email, req.Password)
	if err != nil {
		return respondError(c, err, "Login failed")
	}

	logger.FromContext(c).Info("User logged in", zap.Uint("user_id", user.ID))
	return c.JSON(http.StatusOK, Envelope{
		Status:  true,
		Message: "Login successful",
		Data: echo.Map{
			"user":  user,
			"token": token,
		},
	})
}

// Profile handles GET /api/profile
func (h *AuthHandler) Profile(c echo.Context) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return respondBadRequest(c, "Missing authenticated user")
	}

	profile, err := h.auth.Profile(user.ID)
	if err != nil {
		return respondError(c, err, "Failed to retrieve profile")
	}
	return respondOK(c, "Profile retrieved successfully", profile)
}

// UpdateProfile handles POST /api/profile
func (h *AuthHandler) UpdateProfile(c echo.Context) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return respondBadRequest(c, "Missing authenticated user")
	}

	var update service.ProfileUpdate
	if err := c.Bind(&update); err != nil {
		return respondBadRequest(c, "Invalid request data")
	}

	updated, err := h.auth.UpdateProfile(user.ID, update)
	if err != nil {
		return respondError(c, err, "Update profile failed")
	}
	return respondOK(c, "Profile updated successfully", updated)
}

// ResetPassword handles POST /api/reset-password
func (h *AuthHandler) ResetPassword(c echo.Context) error {
	var req struct {
		Email       string `json:"email"`
		NewPassword string `json:"newPassword"`
	}
	if err := c.Bind(&req); err != nil {
		return respondBadRequest(c, "Invalid request data")
	}

	if err := h.auth.ResetPassword(req.Email, req.NewPassword); err != nil {
		return respondError(c, err, "Password reset failed")
	}
	return respondOK(c, "Password reset successfully", nil)
}
