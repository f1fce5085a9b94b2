package model

import (
	"time"
)

// User is the tenant root: every catalog, order and subscription row
// belongs to exactly one User.
type User struct {
	ID              uint      `json:"id" gorm:"primarykey"`
	Email           string    `json:"email" gorm:"type:varchar(255);uniqueIndex;not null"`
	Password        string    `json:"-" gorm:"type:varchar(255);not null"`
	FullName        string    `json:"fullName" gorm:"type:varchar(255)"`
	Phone           string    `json:"phone" gorm:"type:varchar(50)"`
	BusinessName    string    `json:"businessName" gorm:"type:varchar(255)"`
	BusinessAddress string    `json:"businessAddress" gorm:"type:text"`
	ImageURL        string    `json:"imageUrl" gorm:"type:text"`
	Status          string    `json:"status" gorm:"type:varchar(20);default:'active'"`
	EmailVerified   bool      `json:"emailVerified" gorm:"default:false"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// UserRole is a sub-account under a parent User with a restricted
// permission set.
type UserRole struct {
	ID           uint      `json:"id" gorm:"primarykey"`
	ParentUserID uint      `json:"parentUserId" gorm:"index;not null"`
	Email        string    `json:"email" gorm:"type:varchar(255);not null"`
	FullName     string    `json:"fullName" gorm:"type:varchar(255)"`
	Password     string    `json:"-" gorm:"type:varchar(255)"`
	Role         string    `json:"role" gorm:"type:varchar(20);not null"`
	Permissions  string    `json:"permissions" gorm:"type:text"`
	Status       string    `json:"status" gorm:"type:varchar(20);default:'active'"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
