package service

import (
	"encoding/json"
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Sohidul-Islam/fashionglory-pos-server/internal/model"
)

// UserRoleService owns sub-accounts (managers and employees) under a
// parent tenant.
type UserRoleService struct {
	db           *gorm.DB
	subscription *SubscriptionService
}

func NewUserRoleService(db *gorm.DB, subscription *SubscriptionService) *UserRoleService {
	return &UserRoleService{db: db, subscription: subscription}
}

// ChildUserRequest is the payload for creating a sub-account
type ChildUserRequest struct {
	Email       string                 `json:"email"`
	FullName    string                 `json:"fullName"`
	Password    string                 `json:"password"`
	Role        string                 `json:"role"`
	Permissions map[string]interface{} `json:"permissions"`
}

// UserRoleUpdate carries optional fields for partial updates.
// Supplied permissions are merged over the stored map, not replaced.
type UserRoleUpdate struct {
	Role        *string                `json:"role"`
	Permissions map[string]interface{} `json:"permissions"`
	Status      *string                `json:"status"`
}

// AddChildUser creates a sub-account inside a transaction after
// re-checking the subscription's user ceiling.
func (s *UserRoleService) AddChildUser(parentID uint, req ChildUserRequest) (*model.UserRole, error) {
	if req.Email == "" || req.Role == "" {
		return nil, validationf("email and role are required")
	}
	if req.Role != "manager" && req.Role != "employee" {
		return nil, validationf("role must be manager or employee")
	}

	subscription, err := s.subscription.ActiveSubscription(parentID)
	if err != nil {
		return nil, err
	}

	var userRole model.UserRole
	err = s.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		err := tx.Model(&model.UserRole{}).
			Where("parent_user_id = ? AND status = ?", parentID, "active").
			Count(&count).Error
		if err != nil {
			return err
		}
		if count >= int64(subscription.SubscriptionPlan.MaxUsers) {
			return ErrLimitExceeded
		}

		permissions := req.Permissions
		if len(permissions) == 0 {
			permissions = DefaultPermissions(req.Role)
		}
		encoded, err := json.Marshal(permissions)
		if err != nil {
			return err
		}

		userRole = model.UserRole{
			ParentUserID: parentID,
			Email:        req.Email,
			FullName:     req.FullName,
			Role:         req.Role,
			Permissions:  string(encoded),
			Status:       "active",
		}
		if req.Password != "" {
			hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
			if err != nil {
				return err
			}
			userRole.Password = string(hashed)
		}
		return tx.Create(&userRole).Error
	})
	if err != nil {
		return nil, err
	}
	return &userRole, nil
}

// UpdateUserRole merges role, permissions and status; permissions are
// merged key-by-key over the existing map.
func (s *UserRoleService) UpdateUserRole(parentID, id uint, update UserRoleUpdate) (*model.UserRole, error) {
	var userRole model.UserRole
	err := s.db.Where("id = ? AND parent_user_id = ?", id, parentID).First(&userRole).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	applyString(&userRole.Role, update.Role)
	applyString(&userRole.Status, update.Status)

	if len(update.Permissions) > 0 {
		existing := map[string]interface{}{}
		if userRole.Permissions != "" {
			// A malformed stored map is treated as empty
			_ = json.Unmarshal([]byte(userRole.Permissions), &existing)
		}
		for key, value := range update.Permissions {
			existing[key] = value
		}
		encoded, err := json.Marshal(existing)
		if err != nil {
			return nil, err
		}
		userRole.Permissions = string(encoded)
	}

	if err := s.db.Save(&userRole).Error; err != nil {
		return nil, err
	}
	return &userRole, nil
}

// GetChildUsers lists sub-accounts with optional role/status filters
func (s *UserRoleService) GetChildUsers(parentID uint, role, status string) ([]model.UserRole, error) {
	query := s.db.Where("parent_user_id = ?", parentID)
	if role != "" {
		query = query.Where("role = ?", role)
	}
	if status != "" {
		query = query.Where("status = ?", status)
	}
	var roles []model.UserRole
	if err := query.Find(&roles).Error; err != nil {
		return nil, err
	}
	return roles, nil
}

// CountActive reports the tenant's active sub-accounts; used by the
// subscription limit checks.
func (s *UserRoleService) CountActive(parentID uint) (int64, error) {
	var count int64
	err := s.db.Model(&model.UserRole{}).
		Where("parent_user_id = ? AND status = ?", parentID, "active").
		Count(&count).Error
	return count, err
}

// DefaultPermissions returns the permission map applied when a child
// user is created without an explicit one.
func DefaultPermissions(role string) map[string]interface{} {
	switch role {
	case "manager":
		return map[string]interface{}{
			"products": []string{"view", "create", "edit", "delete"},
			"orders":   []string{"view", "create", "edit", "delete"},
			"reports":  []string{"view"},
			"settings": []string{"view", "edit"},
		}
	case "employee":
		return map[string]interface{}{
			"products": []string{"view"},
			"orders":   []string{"view", "create"},
			"reports":  []string{"view"},
			"settings": []string{"view"},
		}
	default:
		return map[string]interface{}{}
	}
}
