package model

import (
	"time"
)

// Category groups products within a tenant
type Category struct {
	ID          uint      `json:"id" gorm:"primarykey"`
	Name        string    `json:"name" gorm:"type:varchar(255);not null"`
	Description string    `json:"description" gorm:"type:text"`
	UserID      uint      `json:"userId" gorm:"index;not null"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Brand is a tenant-scoped product brand
type Brand struct {
	ID          uint      `json:"id" gorm:"primarykey"`
	Name        string    `json:"name" gorm:"type:varchar(255);not null"`
	Description string    `json:"description" gorm:"type:text"`
	UserID      uint      `json:"userId" gorm:"index;not null"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Unit is a tenant-scoped measurement unit. ShortName is unique per
// tenant and immutable after creation.
type Unit struct {
	ID          uint      `json:"id" gorm:"primarykey"`
	Name        string    `json:"name" gorm:"type:varchar(255);not null"`
	ShortName   string    `json:"shortName" gorm:"type:varchar(50);not null;index:idx_units_short_name_user,unique"`
	Description string    `json:"description" gorm:"type:text"`
	UserID      uint      `json:"userId" gorm:"not null;index:idx_units_short_name_user,unique"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Color is a tenant-scoped lookup for variants. Name is unique per
// tenant and immutable after creation.
type Color struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	Name      string    `json:"name" gorm:"type:varchar(100);not null;index:idx_colors_name_user,unique"`
	HexCode   string    `json:"hexCode" gorm:"type:varchar(10)"`
	UserID    uint      `json:"userId" gorm:"not null;index:idx_colors_name_user,unique"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Size is a tenant-scoped lookup for variants
type Size struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	Name      string    `json:"name" gorm:"type:varchar(100);not null;index:idx_sizes_name_user,unique"`
	SortOrder int       `json:"sortOrder" gorm:"default:0"`
	UserID    uint      `json:"userId" gorm:"not null;index:idx_sizes_name_user,unique"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
