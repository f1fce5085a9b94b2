package handler

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/Sohidul-Islam/fashionglory-pos-server/internal/middleware"
	"github.com/Sohidul-Islam/fashionglory-pos-server/internal/model"
	"github.com/Sohidul-Islam/fashionglory-pos-server/internal/service"
	"github.com/Sohidul-Islam/fashionglory-pos-server/pkg/logger"
)

// SubscriptionHandler exposes plan administration, subscribing and
// limit inspection routes.
type SubscriptionHandler struct {
	subscriptions *service.SubscriptionService
}

func NewSubscriptionHandler(subscriptions *service.SubscriptionService) *SubscriptionHandler {
	return &SubscriptionHandler{subscriptions: subscriptions}
}

// CreatePlan handles POST /api/subscriptions/plans
func (h *SubscriptionHandler) CreatePlan(c echo.Context) error {
	var plan model.SubscriptionPlan
	if err := c.Bind(&plan); err != nil {
		return respondBadRequest(c, "Invalid request data")
	}

	created, err := h.subscriptions.CreatePlan(plan)
	if err != nil {
		return respondError(c, err, "Failed to create subscription plan")
	}
	return respondCreated(c, "Subscription plan created successfully", created)
}

// GetAllPlans handles GET /api/subscriptions/plans (public)
func (h *SubscriptionHandler) GetAllPlans(c echo.Context) error {
	plans, err := h.subscriptions.GetAllPlans(c.QueryParam("status"))
	if err != nil {
		return respondError(c, err, "Failed to retrieve subscription plans")
	}
	return respondOK(c, "Subscription plans retrieved successfully", plans)
}

// GetPlanByID handles GET /api/subscriptions/plans/:id (public)
func (h *SubscriptionHandler) GetPlanByID(c echo.Context) error {
	id, ok := paramID(c, "id")
	if !ok {
		return respondBadRequest(c, "Invalid plan id")
	}

	plan, err := h.subscriptions.GetPlanByID(id)
	if err != nil {
		return respondError(c, err, "Subscription plan not found")
	}
	return respondOK(c, "Subscription plan retrieved successfully", plan)
}

// UpdatePlan handles PUT /api/subscriptions/plans/:id
func (h *SubscriptionHandler) UpdatePlan(c echo.Context) error {
	id, ok := paramID(c, "id")
	if !ok {
		return respondBadRequest(c, "Invalid plan id")
	}

	var update service.PlanUpdate
	if err := c.Bind(&update); err != nil {
		return respondBadRequest(c, "Invalid request data")
	}

	plan, err := h.subscriptions.UpdatePlan(id, update)
	if err != nil {
		return respondError(c, err, "Failed to update subscription plan")
	}
	return respondOK(c, "Subscription plan updated successfully", plan)
}

// DeletePlan handles POST /api/subscriptions/plans/delete/:id
func (h *SubscriptionHandler) DeletePlan(c echo.Context) error {
	id, ok := paramID(c, "id")
	if !ok {
		return respondBadRequest(c, "Invalid plan id")
	}

	if err := h.subscriptions.DeletePlan(id); err != nil {
		return respondError(c, err, "Failed to delete subscription plan")
	}
	return respondOK(c, "Subscription plan deleted successfully", nil)
}

// Subscribe handles POST /api/subscriptions/subscribe
func (h *SubscriptionHandler) Subscribe(c echo.Context) error {
	user, _ := middleware.CurrentUser(c)

	var req service.SubscribeRequest
	if err := c.Bind(&req); err != nil {
		return respondBadRequest(c, "Invalid request data")
	}

	subscription, err := h.subscriptions.Subscribe(user.ID, req)
	if err != nil {
		return respondError(c, err, "Failed to subscribe to plan")
	}

	logger.FromContext(c).Info("User subscribed to plan",
		zap.Uint("user_id", user.ID),
		zap.Uint("plan_id", subscription.SubscriptionPlanID),
		zap.Float64("amount", subscription.Amount))
	return respondOK(c, "Successfully subscribed to plan", subscription)
}

// MySubscription handles GET /api/subscriptions/my-subscription
func (h *SubscriptionHandler) MySubscription(c echo.Context) error {
	user, _ := middleware.CurrentUser(c)

	subscription, err := h.subscriptions.MySubscription(user.ID)
	if err != nil {
		return respondError(c, err, "Failed to retrieve user subscription")
	}
	return respondOK(c, "User subscription retrieved successfully", subscription)
}

// Limits handles GET /api/subscriptions/limits
func (h *SubscriptionHandler) Limits(c echo.Context) error {
	user, _ := middleware.CurrentUser(c)

	report, err := h.subscriptions.CheckSubscriptionLimits(user.ID)
	if err != nil {
		return respondError(c, err, "Failed to evaluate subscription limits")
	}
	return respondOK(c, "Subscription limits retrieved successfully", report)
}

// CheckExpired handles POST /api/subscriptions/check-expired; intended
// to be hit by an external scheduler.
func (h *SubscriptionHandler) CheckExpired(c echo.Context) error {
	expired, err := h.subscriptions.CheckAllSubscriptions()
	if err != nil {
		return respondError(c, err, "Failed to sweep expired subscriptions")
	}
	return respondOK(c, "Expired subscriptions updated", echo.Map{"expired": expired})
}
