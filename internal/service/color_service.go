package service

import (
	"errors"

	"gorm.io/gorm"

	"github.com/Sohidul-Islam/fashionglory-pos-server/internal/model"
)

// ColorService owns tenant-scoped colors. Name is unique per tenant
// and cannot be renamed once created, since variants reference it.
type ColorService struct {
	db *gorm.DB
}

func NewColorService(db *gorm.DB) *ColorService {
	return &ColorService{db: db}
}

// ColorUpdate carries optional fields for partial updates. Name is
// intentionally absent; renames are forbidden.
type ColorUpdate struct {
	HexCode *string `json:"hexCode"`
}

func (s *ColorService) Create(userID uint, color model.Color) (*model.Color, error) {
	if color.Name == "" {
		return nil, validationf("color name is required")
	}

	var count int64
	err := s.db.Model(&model.Color{}).
		Where("name = ? AND user_id = ?", color.Name, userID).
		Count(&count).Error
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrDuplicate
	}

	color.ID = 0
	color.UserID = userID
	if err := s.db.Create(&color).Error; err != nil {
		return nil, err
	}
	return &color, nil
}

func (s *ColorService) GetAll(userID uint, name string) ([]model.Color, error) {
	query := s.db.Where("user_id = ?", userID)
	if name != "" {
		query = query.Where("name = ?", name)
	}
	var colors []model.Color
	if err := query.Find(&colors).Error; err != nil {
		return nil, err
	}
	return colors, nil
}

func (s *ColorService) GetByID(userID, id uint) (*model.Color, error) {
	var color model.Color
	err := s.db.Where("id = ? AND user_id = ?", id, userID).First(&color).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &color, nil
}

func (s *ColorService) Update(userID, id uint, update ColorUpdate) (*model.Color, error) {
	color, err := s.GetByID(userID, id)
	if err != nil {
		return nil, err
	}
	applyString(&color.HexCode, update.HexCode)
	if err := s.db.Save(color).Error; err != nil {
		return nil, err
	}
	return color, nil
}

func (s *ColorService) Delete(userID, id uint) error {
	result := s.db.Where("id = ? AND user_id = ?", id, userID).Delete(&model.Color{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
