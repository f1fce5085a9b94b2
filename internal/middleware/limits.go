package middleware

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/Sohidul-Islam/fashionglory-pos-server/internal/model"
	"github.com/Sohidul-Islam/fashionglory-pos-server/internal/service"
	"github.com/Sohidul-Islam/fashionglory-pos-server/pkg/logger"
	"github.com/Sohidul-Islam/fashionglory-pos-server/prometheus"
)

const subscriptionContextKey = "subscription"

// Limits bundles the subscription gate middleware. The chain mirrors
// the write paths it protects: status first, then the specific ceiling.
type Limits struct {
	subscriptions *service.SubscriptionService
	products      *service.ProductService
	userRoles     *service.UserRoleService
	uploadDir     string
}

func NewLimits(subscriptions *service.SubscriptionService, products *service.ProductService, userRoles *service.UserRoleService, uploadDir string) *Limits {
	return &Limits{subscriptions: subscriptions, products: products, userRoles: userRoles, uploadDir: uploadDir}
}

// CheckSubscriptionStatus requires an active, payment-completed
// subscription and stashes it in the context for later gates.
func (l *Limits) CheckSubscriptionStatus(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, ok := CurrentUser(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, echo.Map{
				"status":  false,
				"message": "No token provided",
			})
		}

		subscription, err := l.subscriptions.ActiveSubscription(user.ID)
		if err != nil {
			if errors.Is(err, service.ErrNoActiveSubscription) {
				prometheus.RecordLimitDenial("subscription")
				return c.JSON(http.StatusForbidden, echo.Map{
					"status":  false,
					"message": "No active subscription found. Please subscribe to continue.",
				})
			}
			logger.FromContext(c).Error("Error checking subscription status", zap.Error(err))
			return c.JSON(http.StatusInternalServerError, echo.Map{
				"status":  false,
				"message": "Error checking subscription status",
				"error":   err.Error(),
			})
		}

		c.Set(subscriptionContextKey, subscription)
		return next(c)
	}
}

// CheckProductLimit rejects product creation once the plan's
// maxProducts ceiling is reached.
func (l *Limits) CheckProductLimit(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, _ := CurrentUser(c)
		subscription, ok := c.Get(subscriptionContextKey).(*model.UserSubscription)
		if !ok || user == nil {
			return c.JSON(http.StatusForbidden, echo.Map{
				"status":  false,
				"message": "No active subscription found. Please subscribe to continue.",
			})
		}

		count, err := l.products.CountForTenant(user.ID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{
				"status":  false,
				"message": "Error checking product limit",
				"error":   err.Error(),
			})
		}
		if count >= int64(subscription.SubscriptionPlan.MaxProducts) {
			prometheus.RecordLimitDenial("products")
			return c.JSON(http.StatusForbidden, echo.Map{
				"status":  false,
				"message": "Product limit reached for your subscription plan",
			})
		}
		return next(c)
	}
}

// CheckUserLimit rejects child-user creation once the plan's maxUsers
// ceiling is reached. The service re-checks inside its transaction;
// this gate keeps the denial before any body parsing.
func (l *Limits) CheckUserLimit(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, _ := CurrentUser(c)
		subscription, ok := c.Get(subscriptionContextKey).(*model.UserSubscription)
		if !ok || user == nil {
			return c.JSON(http.StatusForbidden, echo.Map{
				"status":  false,
				"message": "No active subscription found. Please subscribe to continue.",
			})
		}

		count, err := l.userRoles.CountActive(user.ID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{
				"status":  false,
				"message": "Error checking user limit",
				"error":   err.Error(),
			})
		}
		if count >= int64(subscription.SubscriptionPlan.MaxUsers) {
			prometheus.RecordLimitDenial("users")
			return c.JSON(http.StatusForbidden, echo.Map{
				"status":  false,
				"message": "User limit reached for your subscription plan",
			})
		}
		return next(c)
	}
}

// CheckStorageLimit rejects uploads that would push the tenant's
// stored bytes past the plan ceiling. Best effort: concurrent uploads
// may race between the check and the write.
func (l *Limits) CheckStorageLimit(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, _ := CurrentUser(c)
		subscription, ok := c.Get(subscriptionContextKey).(*model.UserSubscription)
		if !ok || user == nil {
			return c.JSON(http.StatusForbidden, echo.Map{
				"status":  false,
				"message": "No active subscription found. Please subscribe to continue.",
			})
		}

		form, err := c.MultipartForm()
		if err != nil || form == nil {
			// No file attached; nothing to gate
			return next(c)
		}
		var incoming int64
		for _, files := range form.File {
			for _, file := range files {
				incoming += file.Size
			}
		}
		if incoming == 0 {
			return next(c)
		}

		maxStorage, err := service.ParseStorageSize(subscription.SubscriptionPlan.MaxStorage)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{
				"status":  false,
				"message": "Error checking storage limit",
				"error":   err.Error(),
			})
		}
		currentStorage, err := service.CalculateUserStorage(l.uploadDir, user.ID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{
				"status":  false,
				"message": "Error checking storage limit",
				"error":   err.Error(),
			})
		}

		if currentStorage+incoming > maxStorage {
			prometheus.RecordLimitDenial("storage")
			return c.JSON(http.StatusForbidden, echo.Map{
				"status":  false,
				"message": "Storage limit exceeded for your subscription plan",
			})
		}
		return next(c)
	}
}
