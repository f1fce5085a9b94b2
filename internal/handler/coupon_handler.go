package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/Sohidul-Islam/fashionglory-pos-server/internal/model"
	"github.com/Sohidul-Islam/fashionglory-pos-server/internal/service"
)

// CouponHandler exposes coupon administration routes
type CouponHandler struct {
	coupons *service.CouponService
}

func NewCouponHandler(coupons *service.CouponService) *CouponHandler {
	return &CouponHandler{coupons: coupons}
}

func (h *CouponHandler) Create(c echo.Context) error {
	var coupon model.Coupon
	if err := c.Bind(&coupon); err != nil {
		return respondBadRequest(c, "Invalid request data")
	}

	created, err := h.coupons.Create(coupon)
	if err != nil {
		return respondError(c, err, "Failed to create coupon")
	}
	return respondCreated(c, "Coupon created successfully", created)
}

func (h *CouponHandler) GetAll(c echo.Context) error {
	coupons, err := h.coupons.GetAll(c.QueryParam("status"))
	if err != nil {
		return respondError(c, err, "Failed to retrieve coupons")
	}
	return respondOK(c, "Coupons retrieved successfully", coupons)
}

func (h *CouponHandler) GetByID(c echo.Context) error {
	id, ok := paramID(c, "id")
	if !ok {
		return respondBadRequest(c, "Invalid coupon id")
	}

	coupon, err := h.coupons.GetByID(id)
	if err != nil {
		return respondError(c, err, "Coupon not found")
	}
	return respondOK(c, "Coupon retrieved successfully", coupon)
}

func (h *CouponHandler) Update(c echo.Context) error {
	id, ok := paramID(c, "id")
	if !ok {
		return respondBadRequest(c, "Invalid coupon id")
	}

	var update service.CouponUpdate
	if err := c.Bind(&update); err != nil {
		return respondBadRequest(c, "Invalid request data")
	}

	coupon, err := h.coupons.Update(id, update)
	if err != nil {
		return respondError(c, err, "Failed to update coupon")
	}
	return respondOK(c, "Coupon updated successfully", coupon)
}

func (h *CouponHandler) Delete(c echo.Context) error {
	id, ok := paramID(c, "id")
	if !ok {
		return respondBadRequest(c, "Invalid coupon id")
	}

	if err := h.coupons.Delete(id); err != nil {
		return respondError(c, err, "Failed to delete coupon")
	}
	return respondOK(c, "Coupon deleted successfully", nil)
}
