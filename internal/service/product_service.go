package service

import (
	"errors"

	"gorm.io/gorm"

	"github.com/Sohidul-Islam/fashionglory-pos-server/internal/model"
)

// ProductService owns tenant-scoped product persistence
type ProductService struct {
	db *gorm.DB
}

func NewProductService(db *gorm.DB) *ProductService {
	return &ProductService{db: db}
}

// ProductFilter holds the supported getAll query parameters; empty
// values are ignored when building the where clause.
type ProductFilter struct {
	Name       string
	SKU        string
	CategoryID string
	BrandID    string
	UnitID     string
}

// ProductUpdate carries optional fields for partial updates
type ProductUpdate struct {
	Name           *string  `json:"name"`
	SKU            *string  `json:"sku"`
	Description    *string  `json:"description"`
	Price          *float64 `json:"price"`
	CostPrice      *float64 `json:"costPrice"`
	Quantity       *int     `json:"quantity"`
	AlertThreshold *int     `json:"alertThreshold"`
	ImageURL       *string  `json:"imageUrl"`
	CategoryID     *uint    `json:"categoryId"`
	BrandID        *uint    `json:"brandId"`
	UnitID         *uint    `json:"unitId"`
}

func (s *ProductService) Create(userID uint, product model.Product) (*model.Product, error) {
	if product.Name == "" || product.SKU == "" {
		return nil, validationf("product name and sku are required")
	}

	var count int64
	err := s.db.Model(&model.Product{}).
		Where("sku = ? AND user_id = ?", product.SKU, userID).
		Count(&count).Error
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrDuplicate
	}

	product.ID = 0
	product.UserID = userID
	if err := s.db.Create(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (s *ProductService) GetAll(userID uint, filter ProductFilter) ([]model.Product, error) {
	query := s.db.Where("user_id = ?", userID).
		Preload("Category").Preload("Brand").Preload("Unit")

	if filter.Name != "" {
		query = query.Where("name LIKE ?", "%"+filter.Name+"%")
	}
	if filter.SKU != "" {
		query = query.Where("sku = ?", filter.SKU)
	}
	if filter.CategoryID != "" {
		query = query.Where("category_id = ?", filter.CategoryID)
	}
	if filter.BrandID != "" {
		query = query.Where("brand_id = ?", filter.BrandID)
	}
	if filter.UnitID != "" {
		query = query.Where("unit_id = ?", filter.UnitID)
	}

	var products []model.Product
	if err := query.Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (s *ProductService) GetByID(userID, id uint) (*model.Product, error) {
	var product model.Product
	err := s.db.Where("id = ? AND user_id = ?", id, userID).
		Preload("Category").Preload("Brand").Preload("Unit").
		First(&product).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &product, nil
}

func (s *ProductService) Update(userID, id uint, update ProductUpdate) (*model.Product, error) {
	var product model.Product
	err := s.db.Where("id = ? AND user_id = ?", id, userID).First(&product).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if update.SKU != nil && *update.SKU != "" && *update.SKU != product.SKU {
		var count int64
		err := s.db.Model(&model.Product{}).
			Where("sku = ? AND user_id = ? AND id != ?", *update.SKU, userID, id).
			Count(&count).Error
		if err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, ErrDuplicate
		}
	}

	applyString(&product.Name, update.Name)
	applyString(&product.SKU, update.SKU)
	applyString(&product.Description, update.Description)
	applyFloat(&product.Price, update.Price)
	applyFloat(&product.CostPrice, update.CostPrice)
	applyInt(&product.Quantity, update.Quantity)
	applyInt(&product.AlertThreshold, update.AlertThreshold)
	applyString(&product.ImageURL, update.ImageURL)
	applyUintPtr(&product.CategoryID, update.CategoryID)
	applyUintPtr(&product.BrandID, update.BrandID)
	applyUintPtr(&product.UnitID, update.UnitID)

	if err := s.db.Save(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (s *ProductService) Delete(userID, id uint) error {
	result := s.db.Where("id = ? AND user_id = ?", id, userID).Delete(&model.Product{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// CountForTenant reports how many products the tenant currently owns;
// used by the subscription limit checks.
func (s *ProductService) CountForTenant(userID uint) (int64, error) {
	var count int64
	err := s.db.Model(&model.Product{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}
