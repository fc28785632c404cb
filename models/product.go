package models

import (
	"time"

	"gorm.io/gorm"
)

type Product struct {
	ID          uint             `gorm:"primaryKey;autoIncrement" json:"id"`
	Slug        string           `gorm:"uniqueIndex;not null" json:"slug"`
	Name        string           `gorm:"not null" json:"name"`
	Description string           `json:"description"`
	Category    string           `gorm:"index" json:"category"`
	Images      []string         `gorm:"serializer:json" json:"images"`
	IsActive    bool             `gorm:"default:true" json:"is_active"`
	Variants    []ProductVariant `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"variants"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
	DeletedAt   gorm.DeletedAt   `gorm:"index" json:"-"`
}

// ProductVariant is one sellable SKU: a size/color combination sold as a
// pack of 1, 2 or 3 units. All money is in paise.
//
// When UseSharedStock is set, every pack-size variant of the same
// product/color/size draws from one unit pool (BaseStock, kept identical
// across the group). Otherwise Stock is the variant's own counter.
type ProductVariant struct {
	ID             uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductID      uint      `gorm:"index" json:"product_id"`
	Size           string    `gorm:"not null" json:"size"`
	Color          string    `gorm:"not null" json:"color"`
	Pack           int       `gorm:"default:1" json:"pack"`
	Price          int64     `gorm:"not null" json:"price"`
	Stock          int       `json:"stock"`
	BaseStock      int       `json:"base_stock"`
	UseSharedStock bool      `json:"use_shared_stock"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
