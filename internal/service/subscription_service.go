package service

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/Sohidul-Islam/fashionglory-pos-server/internal/model"
	"github.com/Sohidul-Islam/fashionglory-pos-server/prometheus"
)

// SubscriptionService owns plans, user subscriptions, coupon
// redemption and limit evaluation.
type SubscriptionService struct {
	db        *gorm.DB
	uploadDir string
}

func NewSubscriptionService(db *gorm.DB, uploadDir string) *SubscriptionService {
	return &SubscriptionService{db: db, uploadDir: uploadDir}
}

// PlanUpdate carries optional fields for partial plan updates
type PlanUpdate struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Duration    *int     `json:"duration"`
	MaxProducts *int     `json:"maxProducts"`
	MaxUsers    *int     `json:"maxUsers"`
	MaxStorage  *string  `json:"maxStorage"`
	Status      *string  `json:"status"`
}

// SubscribeRequest is the payload for subscribing to a plan
type SubscribeRequest struct {
	PlanID        uint   `json:"planId"`
	PaymentStatus string `json:"paymentStatus"`
	CouponCode    string `json:"couponCode"`
}

// LimitUsage reports one plan ceiling against current usage
type LimitUsage struct {
	Used       float64 `json:"used"`
	Limit      float64 `json:"limit"`
	Remaining  float64 `json:"remaining"`
	Percentage float64 `json:"percentage"`
}

// LimitReport is the full usage view for a tenant. Storage values are
// normalized to MB.
type LimitReport struct {
	Products LimitUsage `json:"products"`
	Users    LimitUsage `json:"users"`
	Storage  LimitUsage `json:"storage"`
}

func (s *SubscriptionService) CreatePlan(plan model.SubscriptionPlan) (*model.SubscriptionPlan, error) {
	if plan.Name == "" || plan.Duration <= 0 {
		return nil, validationf("plan name and a positive duration are required")
	}
	if plan.MaxStorage != "" {
		if _, err := ParseStorageSize(plan.MaxStorage); err != nil {
			return nil, err
		}
	}
	plan.ID = 0
	if err := s.db.Create(&plan).Error; err != nil {
		return nil, err
	}
	prometheus.RecordSubscriptionOperation("create_plan")
	return &plan, nil
}

func (s *SubscriptionService) GetAllPlans(status string) ([]model.SubscriptionPlan, error) {
	query := s.db.Order("price ASC")
	if status != "" {
		query = query.Where("status = ?", status)
	}
	var plans []model.SubscriptionPlan
	if err := query.Find(&plans).Error; err != nil {
		return nil, err
	}
	return plans, nil
}

func (s *SubscriptionService) GetPlanByID(id uint) (*model.SubscriptionPlan, error) {
	var plan model.SubscriptionPlan
	if err := s.db.First(&plan, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &plan, nil
}

func (s *SubscriptionService) UpdatePlan(id uint, update PlanUpdate) (*model.SubscriptionPlan, error) {
	plan, err := s.GetPlanByID(id)
	if err != nil {
		return nil, err
	}
	if update.MaxStorage != nil && *update.MaxStorage != "" {
		if _, err := ParseStorageSize(*update.MaxStorage); err != nil {
			return nil, err
		}
	}
	applyString(&plan.Name, update.Name)
	applyString(&plan.Description, update.Description)
	applyFloat(&plan.Price, update.Price)
	applyInt(&plan.Duration, update.Duration)
	applyInt(&plan.MaxProducts, update.MaxProducts)
	applyInt(&plan.MaxUsers, update.MaxUsers)
	applyString(&plan.MaxStorage, update.MaxStorage)
	applyString(&plan.Status, update.Status)
	if err := s.db.Save(plan).Error; err != nil {
		return nil, err
	}
	return plan, nil
}

// DeletePlan refuses to remove a plan that still has active,
// unexpired subscriptions.
func (s *SubscriptionService) DeletePlan(id uint) error {
	if _, err := s.GetPlanByID(id); err != nil {
		return err
	}

	var active int64
	err := s.db.Model(&model.UserSubscription{}).
		Where("subscription_plan_id = ? AND status = ? AND end_date > ?",
			id, model.SubscriptionStatusActive, time.Now()).
		Count(&active).Error
	if err != nil {
		return err
	}
	if active > 0 {
		return validationf("cannot delete plan with active subscriptions")
	}
	return s.db.Delete(&model.SubscriptionPlan{}, id).Error
}

// Subscribe creates a subscription for the user, redeeming the coupon
// (if any) and cancelling the user's other active subscriptions in the
// same transaction, so at most one subscription is active at a time.
func (s *SubscriptionService) Subscribe(userID uint, req SubscribeRequest) (*model.UserSubscription, error) {
	plan, err := s.GetPlanByID(req.PlanID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	var discount float64
	var coupon *model.Coupon
	if req.CouponCode != "" {
		coupon, discount, err = s.validateCoupon(req.CouponCode, plan.Price, now)
		if err != nil {
			return nil, err
		}
	}

	paymentStatus := req.PaymentStatus
	if paymentStatus == "" {
		paymentStatus = model.PaymentStatusPending
	}
	status := model.SubscriptionStatusPending
	if paymentStatus == model.PaymentStatusCompleted {
		status = model.SubscriptionStatusActive
	}

	subscription := model.UserSubscription{
		UserID:             userID,
		SubscriptionPlanID: plan.ID,
		StartDate:          now,
		EndDate:            now.Add(time.Duration(plan.Duration) * 30 * 24 * time.Hour),
		Status:             status,
		PaymentStatus:      paymentStatus,
		Amount:             plan.Price - discount,
		Discount:           discount,
		CouponCode:         req.CouponCode,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.UserSubscription{}).
			Where("user_id = ? AND status = ?", userID, model.SubscriptionStatusActive).
			Update("status", model.SubscriptionStatusCancelled).Error; err != nil {
			return err
		}

		if err := tx.Create(&subscription).Error; err != nil {
			return err
		}

		if coupon != nil {
			// Guarded increment so a concurrent redemption cannot push
			// the coupon past its usage limit.
			query := tx.Model(&model.Coupon{}).Where("id = ?", coupon.ID)
			if coupon.MaxUses > 0 {
				query = query.Where("used_count < ?", coupon.MaxUses)
			}
			result := query.UpdateColumn("used_count", gorm.Expr("used_count + 1"))
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return ErrInvalidCoupon
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	prometheus.RecordSubscriptionOperation("subscribe")
	subscription.SubscriptionPlan = plan
	return &subscription, nil
}

// validateCoupon checks existence, status, expiry, remaining uses and
// applicability against the plan price, returning the discount amount.
func (s *SubscriptionService) validateCoupon(code string, planPrice float64, now time.Time) (*model.Coupon, float64, error) {
	var coupon model.Coupon
	if err := s.db.Where("code = ?", code).First(&coupon).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, 0, ErrInvalidCoupon
		}
		return nil, 0, err
	}

	if coupon.Status != "active" {
		return nil, 0, ErrInvalidCoupon
	}
	if coupon.ExpiresAt != nil && coupon.ExpiresAt.Before(now) {
		return nil, 0, ErrInvalidCoupon
	}
	if coupon.MaxUses > 0 && coupon.UsedCount >= coupon.MaxUses {
		return nil, 0, ErrInvalidCoupon
	}

	var discount float64
	switch coupon.DiscountType {
	case model.DiscountTypePercentage:
		value := coupon.DiscountValue
		if value > 100 {
			value = 100
		}
		discount = planPrice * value / 100
	case model.DiscountTypeFixed:
		if coupon.DiscountValue >= planPrice {
			return nil, 0, ErrInvalidCoupon
		}
		discount = coupon.DiscountValue
	default:
		return nil, 0, ErrInvalidCoupon
	}
	return &coupon, discount, nil
}

// MySubscription returns the user's active subscription, lazily
// marking it expired when its end date has passed.
func (s *SubscriptionService) MySubscription(userID uint) (*model.UserSubscription, error) {
	now := time.Now()

	// Lazy expiry for this user's past-due rows
	err := s.db.Model(&model.UserSubscription{}).
		Where("user_id = ? AND status = ? AND end_date <= ?",
			userID, model.SubscriptionStatusActive, now).
		Update("status", model.SubscriptionStatusExpired).Error
	if err != nil {
		return nil, err
	}

	var subscription model.UserSubscription
	err = s.db.Where("user_id = ? AND status = ? AND end_date > ?",
		userID, model.SubscriptionStatusActive, now).
		Preload("SubscriptionPlan").
		Order("end_date DESC").
		First(&subscription).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &subscription, nil
}

// ActiveSubscription returns the subscription that authorizes limit
// checks: active, unexpired and payment-completed.
func (s *SubscriptionService) ActiveSubscription(userID uint) (*model.UserSubscription, error) {
	var subscription model.UserSubscription
	err := s.db.Where("user_id = ? AND status = ? AND end_date > ? AND payment_status = ?",
		userID, model.SubscriptionStatusActive, time.Now(), model.PaymentStatusCompleted).
		Preload("SubscriptionPlan").
		First(&subscription).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoActiveSubscription
		}
		return nil, err
	}
	return &subscription, nil
}

// CheckAllSubscriptions bulk-expires every active subscription whose
// end date has passed. Idempotent; safe to run concurrently with
// itself.
func (s *SubscriptionService) CheckAllSubscriptions() (int64, error) {
	result := s.db.Model(&model.UserSubscription{}).
		Where("status = ? AND end_date <= ?", model.SubscriptionStatusActive, time.Now()).
		Update("status", model.SubscriptionStatusExpired)
	if result.Error != nil {
		return 0, result.Error
	}
	prometheus.RecordSubscriptionOperation("expiry_sweep")
	return result.RowsAffected, nil
}

// CheckSubscriptionLimits evaluates product, user and storage usage
// against the active plan's ceilings. Storage is reported in MB.
func (s *SubscriptionService) CheckSubscriptionLimits(userID uint) (*LimitReport, error) {
	subscription, err := s.ActiveSubscription(userID)
	if err != nil {
		return nil, err
	}
	plan := subscription.SubscriptionPlan

	var productCount int64
	if err := s.db.Model(&model.Product{}).Where("user_id = ?", userID).Count(&productCount).Error; err != nil {
		return nil, err
	}

	var userCount int64
	err = s.db.Model(&model.UserRole{}).
		Where("parent_user_id = ? AND role IN ?", userID, []string{"manager", "employee"}).
		Count(&userCount).Error
	if err != nil {
		return nil, err
	}

	usedBytes, err := CalculateUserStorage(s.uploadDir, userID)
	if err != nil {
		return nil, err
	}
	maxBytes, err := ParseStorageSize(plan.MaxStorage)
	if err != nil {
		return nil, err
	}

	const mb = 1024 * 1024
	report := LimitReport{
		Products: limitUsage(float64(productCount), float64(plan.MaxProducts)),
		Users:    limitUsage(float64(userCount), float64(plan.MaxUsers)),
		Storage:  limitUsage(float64(usedBytes)/mb, float64(maxBytes)/mb),
	}
	return &report, nil
}

func limitUsage(used, limit float64) LimitUsage {
	usage := LimitUsage{Used: used, Limit: limit}
	usage.Remaining = limit - used
	if usage.Remaining < 0 {
		usage.Remaining = 0
	}
	if limit > 0 {
		usage.Percentage = used / limit * 100
	}
	return usage
}
