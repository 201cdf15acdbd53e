package entity

import (
	"gorm.io/gorm"
)

type Restaurant struct {
	gorm.Model

	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description"`
	Location    string   `json:"location"`
	Cuisine     []string `gorm:"serializer:json" json:"cuisine"`
	PriceRange  string   `json:"price_range"`
	Image       string   `json:"image"`
	IsActive    bool     `gorm:"default:true" json:"is_active"`

	AccountID uint    `gorm:"uniqueIndex;not null" json:"account_id"`
	Account   Account `gorm:"foreignKey:AccountID" json:"-"`
}
