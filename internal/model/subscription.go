package model

import (
	"time"
)

// Subscription status values
const (
	SubscriptionStatusPending   = "pending"
	SubscriptionStatusActive    = "active"
	SubscriptionStatusCancelled = "cancelled"
	SubscriptionStatusExpired   = "expired"
)

// SubscriptionPlan is a priced tier defining the usage ceilings a
// tenant may not exceed.
type SubscriptionPlan struct {
	ID          uint      `json:"id" gorm:"primarykey"`
	Name        string    `json:"name" gorm:"type:varchar(255);not null"`
	Description string    `json:"description" gorm:"type:text"`
	Price       float64   `json:"price" gorm:"not null"`
	Duration    int       `json:"duration" gorm:"not null;comment:duration in months"`
	MaxProducts int       `json:"maxProducts" gorm:"default:0"`
	MaxUsers    int       `json:"maxUsers" gorm:"default:0"`
	MaxStorage  string    `json:"maxStorage" gorm:"type:varchar(20);default:'1GB'"`
	Status      string    `json:"status" gorm:"type:varchar(20);default:'active'"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// UserSubscription ties a tenant to a plan for a period. At most one
// subscription per user is active at any instant; creating a new one
// cancels the previously active rows at write time.
type UserSubscription struct {
	ID                 uint              `json:"id" gorm:"primarykey"`
	UserID             uint              `json:"userId" gorm:"index;not null"`
	SubscriptionPlanID uint              `json:"subscriptionPlanId" gorm:"index;not null"`
	StartDate          time.Time         `json:"startDate" gorm:"not null"`
	EndDate            time.Time         `json:"endDate" gorm:"not null"`
	Status             string            `json:"status" gorm:"type:varchar(20);default:'pending'"`
	PaymentStatus      string            `json:"paymentStatus" gorm:"type:varchar(20);default:'pending'"`
	Amount             float64           `json:"amount" gorm:"default:0"`
	Discount           float64           `json:"discount" gorm:"default:0"`
	CouponCode         string            `json:"couponCode" gorm:"type:varchar(50)"`
	SubscriptionPlan   *SubscriptionPlan `json:"subscriptionPlan,omitempty" gorm:"foreignKey:SubscriptionPlanID"`
	CreatedAt          time.Time         `json:"createdAt"`
	UpdatedAt          time.Time         `json:"updatedAt"`
}

// IsActive reports whether the subscription authorizes limit checks
func (s *UserSubscription) IsActive(now time.Time) bool {
	return s.Status == SubscriptionStatusActive &&
		s.PaymentStatus == PaymentStatusCompleted &&
		s.EndDate.After(now)
}

// Coupon discount types
const (
	DiscountTypePercentage = "percentage"
	DiscountTypeFixed      = "fixed"
)

// Coupon is a redeemable discount code for subscription purchases
type Coupon struct {
	ID            uint       `json:"id" gorm:"primarykey"`
	Code          string     `json:"code" gorm:"type:varchar(50);uniqueIndex;not null"`
	DiscountType  string     `json:"discountType" gorm:"type:varchar(20);not null"`
	DiscountValue float64    `json:"discountValue" gorm:"not null"`
	MaxUses       int        `json:"maxUses" gorm:"default:0;comment:0 means unlimited"`
	UsedCount     int        `json:"usedCount" gorm:"default:0"`
	Status        string     `json:"status" gorm:"type:varchar(20);default:'active'"`
	ExpiresAt     *time.Time `json:"expiresAt"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}
