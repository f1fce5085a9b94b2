package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/Sohidul-Islam/fashionglory-pos-server/internal/service"
	"github.com/Sohidul-Islam/fashionglory-pos-server/pkg/logger"
)

// Envelope is the uniform response body for every API route
type Envelope struct {
	Status  bool        `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
	Error   string      `json:"error,omitempty"`
}

func respondOK(c echo.Context, message string, data interface{}) error {
	return c.JSON(http.StatusOK, Envelope{Status: true, Message: message, Data: data})
}

func respondCreated(c echo.Context, message string, data interface{}) error {
	return c.JSON(http.StatusCreated, Envelope{Status: true, Message: message, Data: data})
}

func respondBadRequest(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, Envelope{Status: false, Message: message})
}

// respondError maps a service error to the transport status code.
// Expected failures carry the underlying message; unexpected ones are
// logged and surfaced as a generic failure.
func respondError(c echo.Context, err error, failureMessage string) error {
	switch {
	case errors.Is(err, service.ErrNotFound):
		return c.JSON(http.StatusNotFound, Envelope{Status: false, Message: failureMessage, Error: err.Error()})
	case errors.Is(err, service.ErrNoActiveSubscription), errors.Is(err, service.ErrLimitExceeded):
		return c.JSON(http.StatusForbidden, Envelope{Status: false, Message: failureMessage, Error: err.Error()})
	case errors.Is(err, service.ErrInvalidCredentials):
		return c.JSON(http.StatusUnauthorized, Envelope{Status: false, Message: failureMessage, Error: err.Error()})
	case errors.Is(err, service.ErrValidation),
		errors.Is(err, service.ErrDuplicate),
		errors.Is(err, service.ErrInvalidCoupon),
		errors.Is(err, service.ErrInsufficientStock):
		return c.JSON(http.StatusBadRequest, Envelope{Status: false, Message: failureMessage, Error: err.Error()})
	default:
		logger.FromContext(c).Error(failureMessage, zap.Error(err))
		return c.JSON(http.StatusInternalServerError, Envelope{Status: false, Message: failureMessage, Error: err.Error()})
	}
}
