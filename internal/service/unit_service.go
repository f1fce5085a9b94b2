package service

import (
	"errors"

	"gorm.io/gorm"

	"github.com/Sohidul-Islam/fashionglory-pos-server/internal/model"
)

// UnitService owns tenant-scoped measurement units. ShortName is the
// natural key: unique per tenant and immutable after creation.
type UnitService struct {
	db *gorm.DB
}

func NewUnitService(db *gorm.DB) *UnitService {
	return &UnitService{db: db}
}

// UnitUpdate carries optional fields for partial updates. ShortName is
// intentionally absent; renames are forbidden.
type UnitUpdate struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

func (s *UnitService) Create(userID uint, unit model.Unit) (*model.Unit, error) {
	if unit.Name == "" || unit.ShortName == "" {
		return nil, validationf("unit name and shortName are required")
	}

	var count int64
	err := s.db.Model(&model.Unit{}).
		Where("short_name = ? AND user_id = ?", unit.ShortName, userID).
		Count(&count).Error
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrDuplicate
	}

	unit.ID = 0
	unit.UserID = userID
	if err := s.db.Create(&unit).Error; err != nil {
		return nil, err
	}
	return &unit, nil
}

func (s *UnitService) GetAll(userID uint, name string) ([]model.Unit, error) {
	query := s.db.Where("user_id = ?", userID)
	if name != "" {
		query = query.Where("name = ?", name)
	}
	var units []model.Unit
	if err := query.Find(&units).Error; err != nil {
		return nil, err
	}
	return units, nil
}

func (s *UnitService) GetByID(userID, id uint) (*model.Unit, error) {
	var unit model.Unit
	err := s.db.Where("id = ? AND user_id = ?", id, userID).First(&unit).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &unit, nil
}

func (s *UnitService) Update(userID, id uint, update UnitUpdate) (*model.Unit, error) {
	unit, err := s.GetByID(userID, id)
	if err != nil {
		return nil, err
	}
	applyString(&unit.Name, update.Name)
	applyString(&unit.Description, update.Description)
	if err := s.db.Save(unit).Error; err != nil {
		return nil, err
	}
	return unit, nil
}

func (s *UnitService) Delete(userID, id uint) error {
	result := s.db.Where("id = ? AND user_id = ?", id, userID).Delete(&model.Unit{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
