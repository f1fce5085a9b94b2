package service

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/Sohidul-Islam/fashionglory-pos-server/internal/model"
)

// VariantService owns product variants. A variant is an independent
// stock unit keyed by the unique (product, color, size) triple.
type VariantService struct {
	db *gorm.DB
}

func NewVariantService(db *gorm.DB) *VariantService {
	return &VariantService{db: db}
}

// VariantUpdate carries optional fields for partial updates
type VariantUpdate struct {
	ProductID *uint    `json:"productId"`
	ColorID   *uint    `json:"colorId"`
	SizeID    *uint    `json:"sizeId"`
	SKU       *string  `json:"sku"`
	Price     *float64 `json:"price"`
	CostPrice *float64 `json:"costPrice"`
	Quantity  *int     `json:"quantity"`
}

func (s *VariantService) Create(userID uint, variant model.ProductVariant) (*model.ProductVariant, error) {
	if variant.ProductID == 0 || variant.ColorID == 0 || variant.SizeID == 0 {
		return nil, validationf("productId, colorId and sizeId are required")
	}

	// The parent product must belong to the same tenant
	var productCount int64
	err := s.db.Model(&model.Product{}).
		Where("id = ? AND user_id = ?", variant.ProductID, userID).
		Count(&productCount).Error
	if err != nil {
		return nil, err
	}
	if productCount == 0 {
		return nil, ErrNotFound
	}

	var count int64
	err = s.db.Model(&model.ProductVariant{}).
		Where("product_id = ? AND color_id = ? AND size_id = ?",
			variant.ProductID, variant.ColorID, variant.SizeID).
		Count(&count).Error
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrDuplicate
	}

	variant.ID = 0
	variant.UserID = userID
	if err := s.db.Create(&variant).Error; err != nil {
		return nil, err
	}
	return &variant, nil
}

func (s *VariantService) GetAll(userID uint, productID string) ([]model.ProductVariant, error) {
	query := s.db.Where("user_id = ?", userID).
		Preload("Product").Preload("Color").Preload("Size")
	if productID != "" {
		query = query.Where("product_id = ?", productID)
	}
	var variants []model.ProductVariant
	if err := query.Find(&variants).Error; err != nil {
		return nil, err
	}
	return variants, nil
}

func (s *VariantService) GetByID(userID, id uint) (*model.ProductVariant, error) {
	var variant model.ProductVariant
	err := s.db.Where("id = ? AND user_id = ?", id, userID).
		Preload("Product").Preload("Color").Preload("Size").
		First(&variant).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &variant, nil
}

func (s *VariantService) Update(userID, id uint, update VariantUpdate) (*model.ProductVariant, error) {
	var variant model.ProductVariant
	err := s.db.Where("id = ? AND user_id = ?", id, userID).First(&variant).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	// Re-check triple uniqueness when any key of the combination moves
	if update.ProductID != nil || update.ColorID != nil || update.SizeID != nil {
		productID := variant.ProductID
		colorID := variant.ColorID
		sizeID := variant.SizeID
		applyUint(&productID, update.ProductID)
		applyUint(&colorID, update.ColorID)
		applyUint(&sizeID, update.SizeID)

		var existing model.ProductVariant
		err := s.db.Where("product_id = ? AND color_id = ? AND size_id = ?",
			productID, colorID, sizeID).First(&existing).Error
		if err == nil && existing.ID != variant.ID {
			return nil, ErrDuplicate
		}
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}

		variant.ProductID = productID
		variant.ColorID = colorID
		variant.SizeID = sizeID
	}

	applyString(&variant.SKU, update.SKU)
	applyFloat(&variant.Price, update.Price)
	applyFloat(&variant.CostPrice, update.CostPrice)
	applyInt(&variant.Quantity, update.Quantity)

	if err := s.db.Save(&variant).Error; err != nil {
		return nil, err
	}
	return &variant, nil
}

// UpdateStock sets the variant quantity directly and records the
// adjustment in the stock history.
func (s *VariantService) UpdateStock(userID, id uint, quantity int) (*model.ProductVariant, error) {
	var variant model.ProductVariant
	err := s.db.Where("id = ? AND user_id = ?", id, userID).First(&variant).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	previous := variant.Quantity
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&variant).Update("quantity", quantity).Error; err != nil {
			return err
		}
		history := model.StockHistory{
			Type:          model.StockTypeAdjustment,
			Quantity:      previous - quantity,
			PreviousStock: previous,
			NewStock:      quantity,
			VariantID:     &variant.ID,
			UserID:        userID,
			Note:          fmt.Sprintf("Manual stock adjustment for variant %d", variant.ID),
		}
		return tx.Create(&history).Error
	})
	if err != nil {
		return nil, err
	}
	variant.Quantity = quantity
	return &variant, nil
}

func (s *VariantService) Delete(userID, id uint) error {
	result := s.db.Where("id = ? AND user_id = ?", id, userID).Delete(&model.ProductVariant{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
