package service

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Sohidul-Islam/fashionglory-pos-server/internal/model"
	"github.com/Sohidul-Islam/fashionglory-pos-server/pkg/jwtutil"
)

// AuthService owns registration, login and profile management
type AuthService struct {
	db *gorm.DB
}

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{db: db}
}

// RegisterRequest carries the fields accepted at registration
type RegisterRequest struct {
	Email           string `json:"email"`
	Password        string `json:"password"`
	FullName        string `json:"fullName"`
	Phone           string `json:"phone"`
	BusinessName    string `json:"businessName"`
	BusinessAddress string `json:"businessAddress"`
}

// ProfileUpdate carries optional profile fields; only non-nil,
// non-empty values overwrite stored state.
type ProfileUpdate struct {
	FullName        *string `json:"fullName"`
	Phone           *string `json:"phone"`
	BusinessName    *string `json:"businessName"`
	BusinessAddress *string `json:"businessAddress"`
	ImageURL        *string `json:"imageUrl"`
}

// Register creates a tenant account with a bcrypt-hashed password
func (s *AuthService) Register(req RegisterRequest) (*model.User, error) {
	if req.Email == "" || req.Password == "" {
		return nil, validationf("email and password are required")
	}

	var count int64
	if err := s.db.Model(&model.User{}).Where("email = ?", req.Email).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrDuplicate
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := model.User{
		Email:           req.Email,
		Password:        string(hashed),
		FullName:        req.FullName,
		Phone:           req.Phone,
		BusinessName:    req.BusinessName,
		BusinessAddress: req.BusinessAddress,
		Status:          "active",
	}
	if err := s.db.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// Login verifies credentials and issues a signed token
func (s *AuthService) Login(email, password string) (*model.User, string, error) {
	var user model.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrNotFound
		}
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := jwtutil.GenerateToken(user.ID)
	if err != nil {
		return nil, "", err
	}
	return &user, token, nil
}

// Profile loads a user by ID
func (s *AuthService) Profile(userID uint) (*model.User, error) {
	var user model.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// UpdateProfile merges only the explicitly supplied non-empty fields
func (s *AuthService) UpdateProfile(userID uint, update ProfileUpdate) (*model.User, error) {
	var user model.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	applyString(&user.FullName, update.FullName)
	applyString(&user.Phone, update.Phone)
	applyString(&user.BusinessName, update.BusinessName)
	applyString(&user.BusinessAddress, update.BusinessAddress)
	applyString(&user.ImageURL, update.ImageURL)

	if err := s.db.Save(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// ResetPassword replaces the stored hash for the given email
func (s *AuthService) ResetPassword(email, newPassword string) error {
	if newPassword == "" {
		return validationf("new password is required")
	}

	var user model.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.db.Model(&user).Update("password", string(hashed)).Error
}

// applyString overwrites dst only when src is present and non-empty.
// An explicit empty string never clears a field.
func applyString(dst *string, src *string) {
	if src != nil && *src != "" {
		*dst = *src
	}
}
