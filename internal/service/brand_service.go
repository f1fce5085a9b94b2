package service

import (
	"errors"

	"gorm.io/gorm"

	"github.com/Sohidul-Islam/fashionglory-pos-server/internal/model"
)

// BrandService owns tenant-scoped brand persistence
type BrandService struct {
	db *gorm.DB
}

func NewBrandService(db *gorm.DB) *BrandService {
	return &BrandService{db: db}
}

// BrandUpdate carries optional fields for partial updates
type BrandUpdate struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

func (s *BrandService) Create(userID uint, brand model.Brand) (*model.Brand, error) {
	if brand.Name == "" {
		return nil, validationf("brand name is required")
	}
	brand.ID = 0
	brand.UserID = userID
	if err := s.db.Create(&brand).Error; err != nil {
		return nil, err
	}
	return &brand, nil
}

func (s *BrandService) GetAll(userID uint, name string) ([]model.Brand, error) {
	query := s.db.Where("user_id = ?", userID)
	if name != "" {
		query = query.Where("name = ?", name)
	}
	var brands []model.Brand
	if err := query.Find(&brands).Error; err != nil {
		return nil, err
	}
	return brands, nil
}

func (s *BrandService) GetByID(userID, id uint) (*model.Brand, error) {
	var brand model.Brand
	err := s.db.Where("id = ? AND user_id = ?", id, userID).First(&brand).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &brand, nil
}

func (s *BrandService) Update(userID, id uint, update BrandUpdate) (*model.Brand, error) {
	brand, err := s.GetByID(userID, id)
	if err != nil {
		return nil, err
	}
	applyString(&brand.Name, update.Name)
	applyString(&brand.Description, update.Description)
	if err := s.db.Save(brand).Error; err != nil {
		return nil, err
	}
	return brand, nil
}

func (s *BrandService) Delete(userID, id uint) error {
	result := s.db.Where("id = ? AND user_id = ?", id, userID).Delete(&model.Brand{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
