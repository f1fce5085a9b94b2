package service

import (
	"errors"

	"gorm.io/gorm"

	"github.com/Sohidul-Islam/fashionglory-pos-server/internal/model"
)

// CategoryService owns tenant-scoped category persistence
type CategoryService struct {
	db *gorm.DB
}

func NewCategoryService(db *gorm.DB) *CategoryService {
	return &CategoryService{db: db}
}

// CategoryUpdate carries optional fields for partial updates
type CategoryUpdate struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

func (s *CategoryService) Create(userID uint, category model.Category) (*model.Category, error) {
	if category.Name == "" {
		return nil, validationf("category name is required")
	}
	category.ID = 0
	category.UserID = userID
	if err := s.db.Create(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (s *CategoryService) GetAll(userID uint, name string) ([]model.Category, error) {
	query := s.db.Where("user_id = ?", userID)
	if name != "" {
		query = query.Where("name = ?", name)
	}
	var categories []model.Category
	if err := query.Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (s *CategoryService) GetByID(userID, id uint) (*model.Category, error) {
	var category model.Category
	err := s.db.Where("id = ? AND user_id = ?", id, userID).First(&category).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &category, nil
}

func (s *CategoryService) Update(userID, id uint, update CategoryUpdate) (*model.Category, error) {
	category, err := s.GetByID(userID, id)
	if err != nil {
		return nil, err
	}
	applyString(&category.Name, update.Name)
	applyString(&category.Description, update.Description)
	if err := s.db.Save(category).Error; err != nil {
		return nil, err
	}
	return category, nil
}

func (s *CategoryService) Delete(userID, id uint) error {
	result := s.db.Where("id = ? AND user_id = ?", id, userID).Delete(&model.Category{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
