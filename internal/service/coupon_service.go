package service

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/Sohidul-Islam/fashionglory-pos-server/internal/model"
)

// CouponService owns coupon administration. Redemption happens inside
// SubscriptionService.Subscribe so the usage counter moves in the same
// transaction as the subscription row.
type CouponService struct {
	db *gorm.DB
}

func NewCouponService(db *gorm.DB) *CouponService {
	return &CouponService{db: db}
}

// CouponUpdate carries optional fields for partial updates. Code is
// intentionally absent; a redeemed code never changes meaning.
type CouponUpdate struct {
	DiscountValue *float64   `json:"discountValue"`
	MaxUses       *int       `json:"maxUses"`
	Status        *string    `json:"status"`
	ExpiresAt     *time.Time `json:"expiresAt"`
}

func (s *CouponService) Create(coupon model.Coupon) (*model.Coupon, error) {
	coupon.Code = strings.TrimSpace(coupon.Code)
	if coupon.Code == "" {
		return nil, validationf("coupon code is required")
	}
	if coupon.DiscountType != model.DiscountTypePercentage && coupon.DiscountType != model.DiscountTypeFixed {
		return nil, validationf("discountType must be %q or %q", model.DiscountTypePercentage, model.DiscountTypeFixed)
	}
	if coupon.DiscountValue <= 0 {
		return nil, validationf("discountValue must be positive")
	}

	var count int64
	if err := s.db.Model(&model.Coupon{}).Where("code = ?", coupon.Code).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrDuplicate
	}

	coupon.ID = 0
	coupon.UsedCount = 0
	if coupon.Status == "" {
		coupon.Status = "active"
	}
	if err := s.db.Create(&coupon).Error; err != nil {
		return nil, err
	}
	return &coupon, nil
}

func (s *CouponService) GetAll(status string) ([]model.Coupon, error) {
	query := s.db.Order("created_at DESC")
	if status != "" {
		query = query.Where("status = ?", status)
	}
	var coupons []model.Coupon
	if err := query.Find(&coupons).Error; err != nil {
		return nil, err
	}
	return coupons, nil
}

func (s *CouponService) GetByID(id uint) (*model.Coupon, error) {
	var coupon model.Coupon
	if err := s.db.First(&coupon, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &coupon, nil
}

func (s *CouponService) Update(id uint, update CouponUpdate) (*model.Coupon, error) {
	coupon, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	applyFloat(&coupon.DiscountValue, update.DiscountValue)
	applyInt(&coupon.MaxUses, update.MaxUses)
	applyString(&coupon.Status, update.Status)
	if update.ExpiresAt != nil {
		coupon.ExpiresAt = update.ExpiresAt
	}
	if err := s.db.Save(coupon).Error; err != nil {
		return nil, err
	}
	return coupon, nil
}

func (s *CouponService) Delete(id uint) error {
	result := s.db.Delete(&model.Coupon{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
