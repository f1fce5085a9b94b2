package service

import (
	"errors"
	"fmt"
)

// Sentinel errors shared by every service. Handlers translate these to
// transport status codes; services never pick HTTP codes themselves.
var (
	// ErrNotFound covers both missing rows and rows owned by another
	// tenant. The two cases are deliberately indistinguishable.
	ErrNotFound = errors.New("not found")

	// ErrDuplicate reports a natural-key collision (email, SKU,
	// color/unit name, variant combination).
	ErrDuplicate = errors.New("already exists")

	// ErrInvalidCredentials reports a failed password check.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInsufficientStock reports a stock decrement that would drop a
	// quantity below zero.
	ErrInsufficientStock = errors.New("insufficient stock")

	// ErrNoActiveSubscription reports a limit check without an active,
	// payment-completed subscription.
	ErrNoActiveSubscription = errors.New("no active subscription found")

	// ErrLimitExceeded reports a subscription plan ceiling being hit.
	ErrLimitExceeded = errors.New("subscription limit reached")

	// ErrInvalidCoupon reports a coupon that cannot be redeemed.
	ErrInvalidCoupon = errors.New("invalid coupon")

	// ErrValidation reports a malformed or incomplete request payload.
	ErrValidation = errors.New("validation failed")
)

// validationf wraps ErrValidation with a descriptive message
func validationf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: "+format, append([]interface{}{ErrValidation}, args...)...)
}
