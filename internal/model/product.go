package model

import (
	"time"
)

// Product is the primary stock unit of a tenant's catalog
type Product struct {
	ID             uint      `json:"id" gorm:"primarykey"`
	Name           string    `json:"name" gorm:"type:varchar(255);not null"`
	SKU            string    `json:"sku" gorm:"type:varchar(100);not null"`
	Description    string    `json:"description" gorm:"type:text"`
	Price          float64   `json:"price" gorm:"not null"`
	CostPrice      float64   `json:"costPrice" gorm:"default:0"`
	Quantity       int       `json:"quantity" gorm:"default:0"`
	AlertThreshold int       `json:"alertThreshold" gorm:"default:0"`
	ImageURL       string    `json:"imageUrl" gorm:"type:text"`
	UserID         uint      `json:"userId" gorm:"index;not null"`
	CategoryID     *uint     `json:"categoryId" gorm:"index"`
	BrandID        *uint     `json:"brandId" gorm:"index"`
	UnitID         *uint     `json:"unitId" gorm:"index"`
	Category       *Category `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	Brand          *Brand    `json:"brand,omitempty" gorm:"foreignKey:BrandID"`
	Unit           *Unit     `json:"unit,omitempty" gorm:"foreignKey:UnitID"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// ProductVariant specializes a Product by color and size and tracks
// its own stock independently of the parent product.
// The (ProductID, ColorID, SizeID) triple is unique.
type ProductVariant struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	ProductID uint      `json:"productId" gorm:"not null;index:idx_variant_combo,unique"`
	ColorID   uint      `json:"colorId" gorm:"not null;index:idx_variant_combo,unique"`
	SizeID    uint      `json:"sizeId" gorm:"not null;index:idx_variant_combo,unique"`
	SKU       string    `json:"sku" gorm:"type:varchar(100)"`
	Price     float64   `json:"price" gorm:"default:0"`
	CostPrice float64   `json:"costPrice" gorm:"default:0"`
	Quantity  int       `json:"quantity" gorm:"default:0"`
	UserID    uint      `json:"userId" gorm:"index;not null"`
	Product   *Product  `json:"product,omitempty" gorm:"foreignKey:ProductID"`
	Color     *Color    `json:"color,omitempty" gorm:"foreignKey:ColorID"`
	Size      *Size     `json:"size,omitempty" gorm:"foreignKey:SizeID"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
