package service

import (
	"errors"

	"gorm.io/gorm"

	"github.com/Sohidul-Islam/fashionglory-pos-server/internal/model"
)

// SizeService owns tenant-scoped sizes. Name is unique per tenant.
type SizeService struct {
	db *gorm.DB
}

func NewSizeService(db *gorm.DB) *SizeService {
	return &SizeService{db: db}
}

// SizeUpdate carries optional fields for partial updates
type SizeUpdate struct {
	SortOrder *int `json:"sortOrder"`
}

func (s *SizeService) Create(userID uint, size model.Size) (*model.Size, error) {
	if size.Name == "" {
		return nil, validationf("size name is required")
	}

	var count int64
	err := s.db.Model(&model.Size{}).
		Where("name = ? AND user_id = ?", size.Name, userID).
		Count(&count).Error
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrDuplicate
	}

	size.ID = 0
	size.UserID = userID
	if err := s.db.Create(&size).Error; err != nil {
		return nil, err
	}
	return &size, nil
}

func (s *SizeService) GetAll(userID uint, name string) ([]model.Size, error) {
	query := s.db.Where("user_id = ?", userID).Order("sort_order ASC")
	if name != "" {
		query = query.Where("name = ?", name)
	}
	var sizes []model.Size
	if err := query.Find(&sizes).Error; err != nil {
		return nil, err
	}
	return sizes, nil
}

func (s *SizeService) GetByID(userID, id uint) (*model.Size, error) {
	var size model.Size
	err := s.db.Where("id = ? AND user_id = ?", id, userID).First(&size).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &size, nil
}

func (s *SizeService) Update(userID, id uint, update SizeUpdate) (*model.Size, error) {
	size, err := s.GetByID(userID, id)
	if err != nil {
		return nil, err
	}
	applyInt(&size.SortOrder, update.SortOrder)
	if err := s.db.Save(size).Error; err != nil {
		return nil, err
	}
	return size, nil
}

func (s *SizeService) Delete(userID, id uint) error {
	result := s.db.Where("id = ? AND user_id = ?", id, userID).Delete(&model.Size{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
